package authapi

import "errors"

var (
	// ErrInvalidBaseURL is returned by NewClient for unusable base URLs.
	ErrInvalidBaseURL = errors.New("invalid base URL")

	// ErrInvalidPayload is returned when a request body cannot be marshaled.
	ErrInvalidPayload = errors.New("invalid request payload")

	// ErrTimeout is returned when the configured time budget elapsed before
	// a response arrived.
	ErrTimeout = errors.New("request timed out")

	// ErrNetwork is returned for transport failures that produced no
	// response: DNS errors, refused connections, TLS failures.
	ErrNetwork = errors.New("network failure")
)
