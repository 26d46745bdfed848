// Package authform is a controller for login and registration forms: it
// validates input, drives a per-form lifecycle state machine, submits JSON
// to a backend and maps server errors back onto fields.
//
// The controller owns every behavioral decision. Rendering is delegated to
// a Surface implementation, which only reads field values and applies
// presentation changes, so the whole flow is unit testable with an
// in-memory fake and portable between rendering layers.
//
// Key Features:
//
//   - Collect-all client-side validation with per-field rule chains
//   - Explicit idle/loading/error/success lifecycle per form
//   - Duplicate submits rejected while a request is in flight
//   - Server field errors mapped back onto named fields
//   - Timed success window with automatic reset, safe against races
//
// Basic Usage:
//
//	client, err := authapi.NewClient(authapi.Config{BaseURL: "https://api.example.com"})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctrl, err := authform.NewController(client, loginSurface, registerSurface,
//		authform.WithTabSurface(tabs),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer ctrl.Close()
//
//	// Wire commands to the rendering layer's events.
//	ctrl.Input(authform.FormLogin, authform.FieldEmail)
//	ctrl.SwitchTab(authform.TabRegister)
//
//	if err := ctrl.Submit(ctx, authform.FormLogin); err != nil {
//		// The outcome is already rendered; the error is informational.
//		log.Printf("login: %v", err)
//	}
//
// Submission Outcomes:
//
// Submit renders every outcome to the surface before returning. The error
// return tells the host application what happened:
//
//	err := ctrl.Submit(ctx, authform.FormRegister)
//	switch {
//	case err == nil:
//		// 2xx: success message shown, auto-reset scheduled
//	case errors.Is(err, authform.ErrValidationFailed):
//		// field errors shown, nothing was sent
//	case errors.Is(err, authform.ErrSubmissionDeclined):
//		// non-2xx: server errors mapped to fields or status
//	case errors.Is(err, authapi.ErrTimeout), errors.Is(err, authapi.ErrNetwork):
//		// transport failure message shown
//	}
//
// Custom Copy:
//
// Status messages come from a replaceable catalog:
//
//	catalog, err := messages.LoadFile("copy.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	ctrl, err := authform.NewController(client, login, register,
//		authform.WithMessages(catalog),
//	)
//
// The package follows these principles:
//   - The surface renders, the controller decides
//   - What was validated is exactly what is sent
//   - Failures are rendered, not raised
//   - A reset always wins over stale timers and responses
package authform
