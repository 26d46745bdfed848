package authform

// StatusKind is the visual category of a form-level status message.
type StatusKind string

const (
	// StatusLoading pairs the message with an in-progress indicator.
	StatusLoading StatusKind = "loading"
	// StatusSuccess styles the message as a successful outcome.
	StatusSuccess StatusKind = "success"
	// StatusError styles the message as a failure.
	StatusError StatusKind = "error"
)

// Surface is the rendering collaborator for one form. The controller owns
// every decision about what to display and when; the surface only reads
// field values and applies presentation changes.
//
// Checkbox-like fields report their value as text: "on", "true", "1",
// "yes" and "checked" count as set, anything else as unset.
//
// Implementations must not call back into the Controller from within these
// methods. Calls for a given form are already serialized by the controller,
// so surface methods never run concurrently for the same form.
type Surface interface {
	// FieldValue returns the current raw value of a field.
	FieldValue(field string) string

	// ShowFieldError decorates a field with an error message, replacing
	// any previous decoration.
	ShowFieldError(field, message string)

	// ClearFieldError returns a field to its neutral, undecorated look.
	// Clearing an already clear field is a no-op.
	ClearFieldError(field string)

	// MarkFieldValid decorates a field as successfully validated.
	MarkFieldValid(field string)

	// ShowStatus displays the form-level status line. The announce flag
	// asks assistive technology to read the message out.
	ShowStatus(text string, kind StatusKind, announce bool)

	// ClearStatus removes the form-level status line.
	ClearStatus()

	// SetSubmitEnabled toggles the form's submit controls.
	SetSubmitEnabled(enabled bool)

	// ResetFields restores every field to its initial empty value.
	ResetFields()
}

// TabSurface switches the visible form in a tabbed layout. It is optional:
// controllers without one simply skip tab activation.
type TabSurface interface {
	ActivateTab(tab TabID)
}
