package amazonauth

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingClientID is returned when the OAuth client ID is not provided.
	ErrMissingClientID = errors.New("amazonauth: missing client ID")

	// ErrMissingClientSecret is returned when the OAuth client secret is not provided.
	ErrMissingClientSecret = errors.New("amazonauth: missing client secret")

	// ErrMissingVerify is returned when no verify function is provided.
	ErrMissingVerify = errors.New("amazonauth: missing verify function")

	// ErrNilResponse is returned when the profile endpoint returns a nil response.
	ErrNilResponse = errors.New("amazonauth: nil response from provider")

	// ErrFetchFailed is returned when fetching the user profile fails without
	// a structured error body from the provider.
	ErrFetchFailed = errors.New("amazonauth: failed to fetch user profile")

	// ErrDecodeFailed is returned when decoding the profile response fails.
	ErrDecodeFailed = errors.New("amazonauth: failed to decode profile response")
)

// ProviderError carries the structured error body the Amazon identity API
// returns on most failures. Use errors.As to recover it from an Outcome.
type ProviderError struct {
	Code        string `json:"error"`
	Description string `json:"error_description"`
	StatusCode  int    `json:"-"`
}

func (e *ProviderError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("amazonauth: provider returned %q (status=%d)", e.Code, e.StatusCode)
	}
	return fmt.Sprintf("amazonauth: provider returned %q: %s (status=%d)", e.Code, e.Description, e.StatusCode)
}
