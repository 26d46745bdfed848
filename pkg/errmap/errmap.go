package errmap

import (
	"maps"

	"github.com/dmitrymomot/authform/pkg/authapi"
)

// Kind tags which variant of a Mapped value is meaningful.
type Kind string

const (
	// KindFieldErrors carries per-field messages from the server.
	KindFieldErrors Kind = "field_errors"
	// KindGeneral carries a single form-level message from the server.
	KindGeneral Kind = "general"
	// KindFallback means the response carried nothing usable; the caller
	// shows its own generic failure copy.
	KindFallback Kind = "fallback"
)

// Mapped is the display-ready interpretation of a failed submission.
// Exactly one variant is meaningful, selected by Kind: FieldErrors for
// KindFieldErrors, General for KindGeneral, and neither for KindFallback.
type Mapped struct {
	Kind        Kind
	FieldErrors map[string]string
	General     string
}

// Map interprets a failed submission result in strict priority order:
//
//  1. a non-empty per-field error map wins
//  2. otherwise a non-empty general message
//  3. otherwise the fallback, covering nil payloads, empty bodies and
//     unrecognizable responses
//
// An errors map that is present but empty carries nothing usable and falls
// through. The input is not mutated; field errors are copied.
func Map(result authapi.SubmissionResult) Mapped {
	if result.Payload != nil && len(result.Payload.Errors) > 0 {
		return Mapped{
			Kind:        KindFieldErrors,
			FieldErrors: maps.Clone(result.Payload.Errors),
		}
	}

	if result.Payload != nil && result.Payload.Message != "" {
		return Mapped{
			Kind:    KindGeneral,
			General: result.Payload.Message,
		}
	}

	return Mapped{Kind: KindFallback}
}
