package amazonauth

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"net/http"
)

const (
	accessTokenField  = "access_token"
	refreshTokenField = "refresh_token"
)

// Credentials are the bearer tokens presented by the client.
type Credentials struct {
	AccessToken  string
	RefreshToken string
}

// Request exposes the three locations a client may present tokens in.
// Implementations return "" for absent fields.
type Request interface {
	// FormValue returns a field from the request body.
	FormValue(name string) string
	// QueryValue returns a query-string parameter.
	QueryValue(name string) string
	// HeaderValue returns a request header.
	HeaderValue(name string) string
}

// source extracts a candidate value from a request location.
type source func(Request) (string, bool)

func fromForm(name string) source {
	return func(r Request) (string, bool) {
		v := r.FormValue(name)
		if v == "" {
			return "", false
		}
		return v, true
	}
}

func fromQuery(name string) source {
	return func(r Request) (string, bool) {
		v := r.QueryValue(name)
		if v == "" {
			return "", false
		}
		return v, true
	}
}

func fromHeader(name string) source {
	return func(r Request) (string, bool) {
		v := r.HeaderValue(name)
		if v == "" {
			return "", false
		}
		return v, true
	}
}

// firstMatch tries sources in order and returns the first non-empty value.
func firstMatch(r Request, sources ...source) string {
	for _, src := range sources {
		if v, ok := src(r); ok {
			return v
		}
	}
	return ""
}

// extractCredentials reads both tokens with body > query > header priority.
// The two fields are resolved independently, so an access token in the body
// can pair with a refresh token from a header.
func extractCredentials(r Request) Credentials {
	return Credentials{
		AccessToken: firstMatch(r,
			fromForm(accessTokenField),
			fromQuery(accessTokenField),
			fromHeader(accessTokenField),
		),
		RefreshToken: firstMatch(r,
			fromForm(refreshTokenField),
			fromQuery(refreshTokenField),
			fromHeader(refreshTokenField),
		),
	}
}

// httpRequest adapts *http.Request to the Request interface. JSON bodies are
// buffered and decoded once at construction, with the body restored so
// downstream handlers can still read it; form bodies go through PostFormValue.
type httpRequest struct {
	r        *http.Request
	jsonBody map[string]any
}

// NewHTTPRequest wraps a net/http request for credential extraction.
func NewHTTPRequest(r *http.Request) Request {
	hr := &httpRequest{r: r}
	if r.Body != nil && isJSONContentType(r.Header.Get("Content-Type")) {
		body, err := io.ReadAll(r.Body)
		if err == nil {
			r.Body = io.NopCloser(bytes.NewReader(body))
			var fields map[string]any
			if json.Unmarshal(body, &fields) == nil {
				hr.jsonBody = fields
			}
		}
	}
	return hr
}

func (hr *httpRequest) FormValue(name string) string {
	if hr.jsonBody != nil {
		v, _ := hr.jsonBody[name].(string)
		return v
	}
	return hr.r.PostFormValue(name)
}

func (hr *httpRequest) QueryValue(name string) string {
	return hr.r.URL.Query().Get(name)
}

func (hr *httpRequest) HeaderValue(name string) string {
	return hr.r.Header.Get(name)
}

func isJSONContentType(ct string) bool {
	mt, _, err := mime.ParseMediaType(ct)
	return err == nil && mt == "application/json"
}
