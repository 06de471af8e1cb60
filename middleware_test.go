package amazonauth_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/amazonauth"
)

// stubAuthenticator returns a fixed outcome regardless of the request.
type stubAuthenticator struct {
	outcome amazonauth.Outcome
}

func (s stubAuthenticator) Name() string { return "stub" }

func (s stubAuthenticator) Authenticate(context.Context, amazonauth.Request) amazonauth.Outcome {
	return s.outcome
}

func serve(t *testing.T, mw func(http.Handler) http.Handler, next http.Handler) *httptest.ResponseRecorder {
	t.Helper()
	if next == nil {
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	}
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	mw(next).ServeHTTP(w, r)
	return w
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("success stores user on context and calls next", func(t *testing.T) {
		t.Parallel()
		auth := stubAuthenticator{outcome: amazonauth.Success("jane", amazonauth.Info{"scope": "all"})}

		var gotUser any
		var gotInfo amazonauth.Info
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUser = amazonauth.UserFromContext(r.Context())
			gotInfo = amazonauth.InfoFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		})

		w := serve(t, amazonauth.Middleware(auth), next)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "jane", gotUser)
		require.Equal(t, amazonauth.Info{"scope": "all"}, gotInfo)
	})

	t.Run("failure writes 401 with message", func(t *testing.T) {
		t.Parallel()
		auth := stubAuthenticator{outcome: amazonauth.Fail(amazonauth.Info{"message": "rejected"})}

		w := serve(t, amazonauth.Middleware(auth), nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Equal(t, "rejected", body["message"])
	})

	t.Run("failure without message falls back", func(t *testing.T) {
		t.Parallel()
		auth := stubAuthenticator{outcome: amazonauth.Fail(nil)}

		w := serve(t, amazonauth.Middleware(auth), nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Equal(t, "unauthorized", body["message"])
	})

	t.Run("provider error writes 401 with details", func(t *testing.T) {
		t.Parallel()
		auth := stubAuthenticator{outcome: amazonauth.Error(&amazonauth.ProviderError{
			Code:        "invalid_token",
			Description: "token expired",
			StatusCode:  http.StatusUnauthorized,
		})}

		w := serve(t, amazonauth.Middleware(auth), nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Equal(t, "invalid_token", body["error"])
		require.Equal(t, "token expired", body["error_description"])
	})

	t.Run("fetch failure writes 502", func(t *testing.T) {
		t.Parallel()
		auth := stubAuthenticator{outcome: amazonauth.Error(amazonauth.ErrFetchFailed)}

		w := serve(t, amazonauth.Middleware(auth), nil)
		require.Equal(t, http.StatusBadGateway, w.Code)
	})

	t.Run("verify error writes 500", func(t *testing.T) {
		t.Parallel()
		auth := stubAuthenticator{outcome: amazonauth.Error(errors.New("db down"))}

		w := serve(t, amazonauth.Middleware(auth), nil)
		require.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("custom handlers override defaults", func(t *testing.T) {
		t.Parallel()
		auth := stubAuthenticator{outcome: amazonauth.Fail(amazonauth.Info{"message": "nope"})}

		mw := amazonauth.Middleware(auth,
			amazonauth.WithFailureHandler(func(w http.ResponseWriter, _ *http.Request, info amazonauth.Info) {
				http.Error(w, info.Message(), http.StatusForbidden)
			}),
		)

		w := serve(t, mw, nil)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("end to end with strategy", func(t *testing.T) {
		t.Parallel()
		s, _ := newTestStrategy(t, profileHandler(map[string]any{"user_id": "123"}), okVerify("jane", nil))

		var gotUser any
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUser = amazonauth.UserFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		})

		r := httptest.NewRequest(http.MethodGet, "/?access_token=token", nil)
		w := httptest.NewRecorder()
		amazonauth.Middleware(s)(next).ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "jane", gotUser)
	})
}
