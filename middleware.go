package amazonauth

import (
	"encoding/json"
	"errors"
	"net/http"
)

// SuccessHandler handles a successful authentication. It decides what to do
// with the resolved user before (or instead of) calling next.
type SuccessHandler func(w http.ResponseWriter, r *http.Request, user any, info Info, next http.Handler)

// FailureHandler handles rejected credentials.
type FailureHandler func(w http.ResponseWriter, r *http.Request, info Info)

// ErrorHandler handles authentication faults.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// MiddlewareOption configures the middleware outcome handlers.
type MiddlewareOption func(*middlewareConfig)

type middlewareConfig struct {
	onSuccess SuccessHandler
	onFailure FailureHandler
	onError   ErrorHandler
}

// WithSuccessHandler overrides the default success behavior.
func WithSuccessHandler(h SuccessHandler) MiddlewareOption {
	return func(cfg *middlewareConfig) {
		cfg.onSuccess = h
	}
}

// WithFailureHandler overrides the default failure behavior.
func WithFailureHandler(h FailureHandler) MiddlewareOption {
	return func(cfg *middlewareConfig) {
		cfg.onFailure = h
	}
}

// WithErrorHandler overrides the default error behavior.
func WithErrorHandler(h ErrorHandler) MiddlewareOption {
	return func(cfg *middlewareConfig) {
		cfg.onError = h
	}
}

// Middleware adapts a strategy into standard net/http middleware. By default
// a success stores the user on the request context (see UserFromContext) and
// calls the next handler; a failure writes 401 JSON; an error writes 401 for
// structured provider errors, 502 for upstream fetch failures, and 500
// otherwise.
func Middleware(auth Authenticator, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := middlewareConfig{
		onSuccess: defaultSuccessHandler,
		onFailure: defaultFailureHandler,
		onError:   defaultErrorHandler,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			outcome := auth.Authenticate(r.Context(), NewHTTPRequest(r))
			switch outcome.Status {
			case StatusSuccess:
				cfg.onSuccess(w, r, outcome.User, outcome.Info, next)
			case StatusFailure:
				cfg.onFailure(w, r, outcome.Info)
			default:
				cfg.onError(w, r, outcome.Err)
			}
		})
	}
}

func defaultSuccessHandler(w http.ResponseWriter, r *http.Request, user any, info Info, next http.Handler) {
	ctx := ContextWithUser(r.Context(), user, info)
	next.ServeHTTP(w, r.WithContext(ctx))
}

func defaultFailureHandler(w http.ResponseWriter, _ *http.Request, info Info) {
	msg := info.Message()
	if msg == "" {
		msg = "unauthorized"
	}
	writeJSON(w, http.StatusUnauthorized, map[string]string{"message": msg})
}

func defaultErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	var pe *ProviderError
	switch {
	case errors.As(err, &pe):
		writeJSON(w, http.StatusUnauthorized, map[string]string{
			"error":             pe.Code,
			"error_description": pe.Description,
		})
	case errors.Is(err, ErrFetchFailed), errors.Is(err, ErrDecodeFailed), errors.Is(err, ErrNilResponse):
		writeJSON(w, http.StatusBadGateway, map[string]string{"message": "authentication upstream unavailable"})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal server error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
