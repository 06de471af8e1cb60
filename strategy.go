package amazonauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"golang.org/x/oauth2"
	amazonOAuth "golang.org/x/oauth2/amazon"
)

const defaultProfileURL = "https://api.amazon.com/user/profile"

// VerifyFunc maps a validated Amazon identity to an application user.
// Returning an error reports a system fault; returning a nil user (without
// an error) rejects the credentials, with info explaining why.
type VerifyFunc func(ctx context.Context, tokens Credentials, profile *Profile) (user any, info Info, err error)

// Authenticator is the host-facing strategy capability. A host middleware
// invokes Authenticate once per request and acts on the returned Outcome.
type Authenticator interface {
	// Name returns the identifier the strategy is registered under.
	Name() string

	// Authenticate validates the credentials carried by r and resolves them
	// to exactly one terminal Outcome.
	Authenticate(ctx context.Context, r Request) Outcome
}

// Strategy authenticates requests bearing a Login with Amazon access token.
// It exchanges the token for a user profile at the Amazon profile endpoint
// and delegates the final accept/reject decision to the application's
// verify function.
//
// A Strategy is stateless after construction and safe for concurrent use.
type Strategy struct {
	config      *oauth2.Config
	verify      VerifyFunc
	profileURL  string
	name        string
	httpClient  *http.Client
	log         *slog.Logger
	passRequest bool
}

var _ Authenticator = (*Strategy)(nil)

// New creates an Amazon token authentication strategy.
// Returns an error if ClientID, ClientSecret, or verify is missing.
func New(cfg Config, verify VerifyFunc, opts ...Option) (*Strategy, error) {
	if cfg.ClientID == "" {
		return nil, ErrMissingClientID
	}
	if cfg.ClientSecret == "" {
		return nil, ErrMissingClientSecret
	}
	if verify == nil {
		return nil, ErrMissingVerify
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	endpoint := amazonOAuth.Endpoint
	if cfg.AuthURL != "" {
		endpoint.AuthURL = cfg.AuthURL
	}
	if cfg.TokenURL != "" {
		endpoint.TokenURL = cfg.TokenURL
	}

	profileURL := cfg.ProfileURL
	if profileURL == "" {
		profileURL = defaultProfileURL
	}

	name := o.name
	if name == "" {
		name = ProviderName
	}

	log := o.log
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Strategy{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       cfg.Scopes,
			Endpoint:     endpoint,
		},
		verify:      verify,
		profileURL:  profileURL,
		name:        name,
		httpClient:  o.httpClient,
		log:         log,
		passRequest: o.passRequest,
	}, nil
}

// Name returns the strategy identifier.
func (s *Strategy) Name() string {
	return s.name
}

// Authenticate runs the token validation pipeline: extract credentials,
// fetch the user profile, invoke the verify function. It always returns
// exactly one terminal outcome and performs at most one outbound request.
func (s *Strategy) Authenticate(ctx context.Context, r Request) Outcome {
	creds := extractCredentials(r)
	if creds.AccessToken == "" {
		return Fail(Info{"message": "You should provide access_token"})
	}

	profile, err := s.fetchProfile(ctx, creds.AccessToken)
	if err != nil {
		return Error(err)
	}

	if s.passRequest {
		ctx = contextWithRequest(ctx, r)
	}

	user, info, err := s.verify(ctx, creds, profile)
	if err != nil {
		return Error(err)
	}
	if user == nil {
		return Fail(info)
	}
	return Success(user, info)
}

// AuthCodeURL generates the authorization URL for the redirect flow.
func (s *Strategy) AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string {
	return s.config.AuthCodeURL(state, opts...)
}

// Exchange trades an authorization code for tokens.
func (s *Strategy) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	ctx = s.contextWithHTTPClient(ctx)
	return s.config.Exchange(ctx, code)
}

// fetchProfile retrieves and normalizes the user profile. The profile
// endpoint rejects query-string tokens, so the access token travels in the
// Authorization header via the oauth2 transport.
func (s *Strategy) fetchProfile(ctx context.Context, accessToken string) (*Profile, error) {
	ctx = s.contextWithHTTPClient(ctx)
	client := s.config.Client(ctx, &oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"})

	resp, err := client.Get(s.profileURL)
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, fmt.Errorf("fetch profile: %w", err))
	}
	if resp == nil {
		return nil, errors.Join(ErrNilResponse, errors.New("unexpected nil response from amazon profile endpoint"))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, fmt.Errorf("read profile response: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, s.classifyFetchError(resp.StatusCode, body)
	}

	return normalizeProfile(body)
}

// classifyFetchError distinguishes structured provider errors from opaque
// transport-level failures.
func (s *Strategy) classifyFetchError(status int, body []byte) error {
	var pe ProviderError
	if err := json.Unmarshal(body, &pe); err == nil && pe.Code != "" {
		pe.StatusCode = status
		return &pe
	}

	s.log.Debug("amazon profile request failed without structured error body",
		slog.Int("status", status))

	return errors.Join(ErrFetchFailed, fmt.Errorf("profile request failed: status=%d body=%s", status, body))
}

func (s *Strategy) contextWithHTTPClient(ctx context.Context) context.Context {
	if s.httpClient != nil {
		return context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)
	}
	return ctx
}
