// Package amazonauth authenticates HTTP requests bearing a Login with Amazon
// access token.
//
// The package implements a token authentication strategy: it extracts an
// access token from the request (body, query string, or headers, in that
// priority order), exchanges it for a user profile at Amazon's profile
// endpoint, and delegates the final accept/reject decision to an
// application-supplied verify function. Every Authenticate call resolves to
// exactly one of three outcomes: success, failure, or error.
//
// # Features
//
//   - Token extraction from body, query, and headers with fixed priority
//   - Profile fetch over golang.org/x/oauth2 with the token in the
//     Authorization header (the profile API rejects query-string tokens)
//   - Normalized profile shape with a stable user ID and non-nil collections
//   - Structured provider errors (error / error_description) surfaced via
//     errors.As, generic failures via sentinel errors and errors.Is
//   - Functional options for custom HTTP clients, logging, and strategy name
//   - net/http middleware adapter with overridable outcome handlers
//
// # Usage
//
// Construct a strategy with your application's verify function:
//
//	strategy, err := amazonauth.New(
//		amazonauth.Config{
//			ClientID:     os.Getenv("AMAZON_OAUTH_CLIENT_ID"),
//			ClientSecret: os.Getenv("AMAZON_OAUTH_CLIENT_SECRET"),
//		},
//		func(ctx context.Context, tokens amazonauth.Credentials, profile *amazonauth.Profile) (any, amazonauth.Info, error) {
//			user, err := users.FindByAmazonID(ctx, profile.ID)
//			if err != nil {
//				return nil, nil, err
//			}
//			if user == nil {
//				return nil, amazonauth.Info{"message": "unknown user"}, nil
//			}
//			return user, nil, nil
//		},
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Protect routes with the middleware:
//
//	r.Use(amazonauth.Middleware(strategy))
//
//	r.Get("/me", func(w http.ResponseWriter, r *http.Request) {
//		user := amazonauth.UserFromContext(r.Context())
//		// ...
//	})
//
// Or drive the strategy directly from a custom host:
//
//	outcome := strategy.Authenticate(ctx, amazonauth.NewHTTPRequest(req))
//	switch outcome.Status {
//	case amazonauth.StatusSuccess:
//		// outcome.User, outcome.Info
//	case amazonauth.StatusFailure:
//		// outcome.Info.Message()
//	case amazonauth.StatusError:
//		// outcome.Err
//	}
//
// # Testing
//
// Use WithHTTPClient to route profile requests to a test server:
//
//	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//		// mock profile responses
//	}))
//	defer ts.Close()
//
//	strategy, err := amazonauth.New(cfg, verify, amazonauth.WithHTTPClient(ts.Client()))
//
// # Error Handling
//
// The package provides sentinel errors for specific failure modes:
//
//   - ErrMissingClientID: Constructor called without client ID
//   - ErrMissingClientSecret: Constructor called without client secret
//   - ErrMissingVerify: Constructor called without verify function
//   - ErrFetchFailed: Profile request failed without a structured error body
//   - ErrNilResponse: Profile endpoint returned a nil response
//   - ErrDecodeFailed: Failed to decode the profile JSON response
//
// When Amazon returns a structured error body, the outcome error is a
// *ProviderError carrying the error code, description, and HTTP status:
//
//	var pe *amazonauth.ProviderError
//	if errors.As(outcome.Err, &pe) {
//		// pe.Code, pe.Description
//	}
//
// A missing access token is not an error: it is reported as a failure
// outcome, before any network call is made.
//
// # Security
//
//   - The access token is sent only in the Authorization header, never in URLs
//   - No tokens or profile data are retained between Authenticate calls
//   - Keep client secrets out of source control (use environment variables)
//   - Timeouts are the HTTP client's concern; inject one via WithHTTPClient
package amazonauth
