package amazonauth

import (
	"log/slog"
	"net/http"
)

// Option configures a Strategy.
type Option func(*options)

type options struct {
	httpClient  *http.Client
	log         *slog.Logger
	name        string
	passRequest bool
}

// WithHTTPClient sets a custom HTTP client for profile requests.
// This is useful for testing with httptest servers or injecting
// custom transports (e.g., logging, timeouts).
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithLogger sets a structured logger for the strategy. Logging is
// discarded by default.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithName overrides the name the strategy reports to its host.
// Defaults to ProviderName.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithPassRequest makes the triggering Request available to the verify
// function through RequestFromContext.
func WithPassRequest() Option {
	return func(o *options) {
		o.passRequest = true
	}
}
