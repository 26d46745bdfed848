package authform

import "errors"

var (
	// ErrMissingClient is returned by NewController when no transport
	// client is provided.
	ErrMissingClient = errors.New("transport client is required")

	// ErrMissingSurface is returned by NewController when a form surface
	// is nil.
	ErrMissingSurface = errors.New("form surface is required")

	// ErrUnknownForm is returned when a command names a form the
	// controller does not manage.
	ErrUnknownForm = errors.New("unknown form")

	// ErrValidationFailed is returned by Submit when client-side
	// validation rejects the form. The underlying validation errors are
	// joined and can be extracted with validator.ExtractValidationErrors.
	ErrValidationFailed = errors.New("form validation failed")

	// ErrSubmissionInFlight is returned by Submit while a previous
	// submission of the same form is still waiting for its outcome.
	ErrSubmissionInFlight = errors.New("submission already in flight")

	// ErrSubmissionDeclined is returned by Submit when the server
	// answered with a non-2xx status. The outcome has already been
	// rendered to the surface by the time Submit returns.
	ErrSubmissionDeclined = errors.New("submission declined by server")

	// ErrSubmissionSuperseded is returned by Submit when the form was
	// reset while the request was in flight, so the outcome was dropped.
	ErrSubmissionSuperseded = errors.New("submission superseded by a form reset")
)
