package authform

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/authform/pkg/authapi"
	"github.com/dmitrymomot/authform/pkg/errmap"
	"github.com/dmitrymomot/authform/pkg/formstate"
	"github.com/dmitrymomot/authform/pkg/logger"
	"github.com/dmitrymomot/authform/pkg/messages"
	"github.com/dmitrymomot/authform/pkg/sanitizer"
	"github.com/dmitrymomot/authform/pkg/validator"
)

// defaultResetDelay is how long the success message stays visible before the
// form resets to idle.
const defaultResetDelay = 1500 * time.Millisecond

// Clock returns the current time. Injectable so age validation can be tested
// against a fixed date.
type Clock func() time.Time

// Controller drives the login and registration forms: it validates input,
// submits it, interprets the outcome and tells the surfaces what to display.
// Zero value is not usable; use NewController to create instances.
type Controller struct {
	client     *authapi.Client
	tabs       TabSurface
	catalog    messages.Catalog
	resetDelay time.Duration
	clock      Clock
	log        *slog.Logger

	login    *form
	register *form
}

// form is the per-form half of the controller: one surface, one lifecycle
// machine, one lock.
type form struct {
	id      FormID
	surface Surface
	fields  []string
	machine *formstate.Machine

	mu sync.Mutex
	// seq is bumped on every lifecycle transition. In-flight submissions
	// and pending reset timers capture it and drop their outcome when it
	// moved on, so a reset can never be undone by a stale completion.
	seq   uint64
	timer *time.Timer
}

// fire applies a lifecycle event and bumps the sequence counter on success.
// Callers hold f.mu and have already ensured the transition is legal.
func (f *form) fire(event formstate.Event) {
	if _, err := f.machine.Fire(event); err == nil {
		f.seq++
	}
}

func (f *form) stopTimer() {
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
}

// NewController wires a transport client to one surface per form.
// The returned controller is safe for concurrent use.
func NewController(client *authapi.Client, login, register Surface, opts ...Option) (*Controller, error) {
	if client == nil {
		return nil, ErrMissingClient
	}
	if login == nil || register == nil {
		return nil, ErrMissingSurface
	}

	c := &Controller{
		client:     client,
		catalog:    messages.Default(),
		resetDelay: defaultResetDelay,
		clock:      time.Now,
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.login = c.newForm(FormLogin, login, loginFields())
	c.register = c.newForm(FormRegister, register, registerFields())

	return c, nil
}

func (c *Controller) newForm(id FormID, surface Surface, fields []string) *form {
	f := &form{
		id:      id,
		surface: surface,
		fields:  fields,
	}

	f.machine = formstate.New(formstate.WithObserver(func(from, to formstate.State, event formstate.Event) {
		c.log.Debug("form state changed",
			logger.Form(id),
			slog.String("from", string(from)),
			slog.String("to", string(to)),
			logger.Event(string(event)),
		)
	}))

	return f
}

func (c *Controller) form(id FormID) (*form, error) {
	switch id {
	case FormLogin:
		return c.login, nil
	case FormRegister:
		return c.register, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownForm, id)
	}
}

// State returns the current lifecycle state of a form.
func (c *Controller) State(id FormID) (formstate.State, error) {
	f, err := c.form(id)
	if err != nil {
		return "", err
	}
	return f.machine.Current(), nil
}

// Submit validates the form and, when it passes, sends it to the backend and
// renders the outcome. Every outcome is rendered to the surface before Submit
// returns; the returned error is informational for the host application:
// nil on success, ErrValidationFailed, ErrSubmissionDeclined, a transport
// error, or ErrSubmissionSuperseded when a reset raced the response.
//
// A second Submit while the same form is loading returns
// ErrSubmissionInFlight without any side effects. A Submit during the
// success display window is dropped quietly: the controls are disabled and
// the pending auto-reset keeps its schedule.
func (c *Controller) Submit(ctx context.Context, id FormID) error {
	f, err := c.form(id)
	if err != nil {
		return err
	}

	f.mu.Lock()

	if f.machine.Is(formstate.StateLoading) {
		f.mu.Unlock()
		return ErrSubmissionInFlight
	}
	if f.machine.Is(formstate.StateSuccess) {
		f.mu.Unlock()
		c.log.DebugContext(ctx, "submit ignored during success window", logger.Form(id))
		return nil
	}

	values := snapshotValues(f.surface, f.fields)

	var rules []validator.FieldRules
	if f.id == FormLogin {
		rules = loginRules(values)
	} else {
		rules = registerRules(values, c.clock())
	}

	// Clear previous decorations, run every rule, then decorate each field
	// by its own outcome. All invalid fields show at once.
	for _, field := range f.fields {
		f.surface.ClearFieldError(field)
	}

	verr := validator.ApplyFields(rules...)
	verrs := validator.ExtractValidationErrors(verr)
	for _, field := range f.fields {
		if failures := verrs.GetErrors(field); len(failures) > 0 {
			f.surface.ShowFieldError(field, failures[0].Message)
		} else {
			f.surface.MarkFieldValid(field)
		}
	}

	if verr != nil {
		f.fire(formstate.EventReject)
		f.surface.ShowStatus(c.catalog.ValidationSummary, StatusError, true)
		f.mu.Unlock()

		c.log.DebugContext(ctx, "form validation rejected",
			logger.Form(id),
			slog.Any("fields", verrs.Fields()),
		)
		return fmt.Errorf("%w: %w", ErrValidationFailed, verr)
	}

	f.fire(formstate.EventSubmit)
	seq := f.seq
	f.stopTimer()
	f.surface.ShowStatus(c.catalog.Working, StatusLoading, true)
	f.surface.SetSubmitEnabled(false)
	f.mu.Unlock()

	c.log.DebugContext(ctx, "submitting form",
		logger.Form(id),
		slog.String("email", sanitizer.MaskEmail(values[FieldEmail])),
	)

	// The lock is released for the duration of the request. The machine is
	// pinned at loading, which rejects concurrent submits of this form while
	// letting Input and tab switches through.
	var result authapi.SubmissionResult
	var sendErr error
	if f.id == FormLogin {
		result, sendErr = c.client.Login(ctx, authapi.Credentials{
			Email:    values[FieldEmail],
			Password: values[FieldPassword],
		})
	} else {
		result, sendErr = c.client.Register(ctx, authapi.Profile{
			FullName:    values[FieldFullName],
			Email:       values[FieldEmail],
			Phone:       values[FieldPhone],
			DateOfBirth: values[FieldDateOfBirth],
			Gender:      values[FieldGender],
			Password:    values[FieldPassword],
		})
	}

	return c.complete(ctx, f, seq, result, sendErr)
}

// complete applies a submission outcome to the form, unless the form moved
// on while the request was in flight.
func (c *Controller) complete(ctx context.Context, f *form, seq uint64, result authapi.SubmissionResult, sendErr error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	// Any transition since submit bumped the sequence, so a mismatch means
	// the form was reset mid-flight and this outcome belongs to a dead
	// submission.
	if f.seq != seq {
		c.log.DebugContext(ctx, "submission outcome dropped",
			logger.Form(f.id),
			logger.RequestID(result.RequestID),
		)
		return ErrSubmissionSuperseded
	}

	if sendErr != nil {
		f.fire(formstate.EventFail)

		msg := c.catalog.Network
		if errors.Is(sendErr, authapi.ErrTimeout) {
			msg = c.catalog.Timeout
		}
		f.surface.ShowStatus(msg, StatusError, true)
		f.surface.SetSubmitEnabled(true)

		c.log.WarnContext(ctx, "form submission failed",
			logger.Form(f.id),
			logger.RequestID(result.RequestID),
			logger.Duration(result.Duration),
			logger.Error(sendErr),
		)
		return sendErr
	}

	if result.OK {
		f.fire(formstate.EventResolve)

		msg := c.catalog.Success
		if result.Payload != nil && result.Payload.Message != "" {
			msg = result.Payload.Message
		}
		f.surface.ShowStatus(msg, StatusSuccess, true)
		c.scheduleReset(f, f.seq)

		c.log.InfoContext(ctx, "form submission succeeded",
			logger.Form(f.id),
			slog.Int("status", result.StatusCode),
			logger.RequestID(result.RequestID),
			logger.Duration(result.Duration),
		)
		return nil
	}

	f.fire(formstate.EventFail)

	mapped := errmap.Map(result)
	switch mapped.Kind {
	case errmap.KindFieldErrors:
		for _, field := range f.fields {
			f.surface.ClearFieldError(field)
		}
		for field, msg := range mapped.FieldErrors {
			f.surface.ShowFieldError(field, msg)
		}
		f.surface.ShowStatus(c.catalog.ServerFieldErrors, StatusError, true)
	case errmap.KindGeneral:
		f.surface.ShowStatus(mapped.General, StatusError, true)
	default:
		f.surface.ShowStatus(c.catalog.Unexpected, StatusError, true)
	}
	f.surface.SetSubmitEnabled(true)

	c.log.WarnContext(ctx, "form submission declined",
		logger.Form(f.id),
		slog.Int("status", result.StatusCode),
		slog.String("kind", string(mapped.Kind)),
		logger.RequestID(result.RequestID),
		logger.Duration(result.Duration),
	)
	return fmt.Errorf("%w: status %d", ErrSubmissionDeclined, result.StatusCode)
}

// scheduleReset arms the success auto-reset. The caller holds f.mu.
func (c *Controller) scheduleReset(f *form, seq uint64) {
	f.timer = time.AfterFunc(c.resetDelay, func() {
		c.expireSuccess(f, seq)
	})
}

// expireSuccess ends the success display window: clear everything, empty the
// fields and return to idle. A stale timer observes a moved-on sequence and
// does nothing.
func (c *Controller) expireSuccess(f *form, seq uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.seq != seq {
		return
	}

	f.fire(formstate.EventExpire)
	f.timer = nil

	for _, field := range f.fields {
		f.surface.ClearFieldError(field)
	}
	f.surface.ClearStatus()
	f.surface.ResetFields()
	f.surface.SetSubmitEnabled(true)

	c.log.Debug("success window expired", logger.Form(f.id))
}

// Input records a field edit: the field's own decoration is cleared, and the
// form-level status goes with it unless a submission is in flight, whose
// status must survive typing.
func (c *Controller) Input(id FormID, field string) error {
	f, err := c.form(id)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.surface.ClearFieldError(field)
	if !f.machine.Is(formstate.StateLoading) {
		f.surface.ClearStatus()
	}

	return nil
}

// SwitchTab activates the named tab when a tab surface is configured and
// resets both forms to idle. Field values are kept; only errors, status and
// lifecycle state are cleared.
func (c *Controller) SwitchTab(tab TabID) {
	if c.tabs != nil {
		c.tabs.ActivateTab(tab)
	}

	c.resetForm(c.login, false)
	c.resetForm(c.register, false)

	c.log.Debug("tab activated", slog.String("tab", string(tab)))
}

// CancelRegistration abandons the registration flow: both forms reset to
// idle and the register form's field values are emptied.
func (c *Controller) CancelRegistration() {
	c.resetForm(c.login, false)
	c.resetForm(c.register, true)

	c.log.Debug("registration cancelled")
}

// resetForm returns one form to idle, invalidating any in-flight submission
// outcome and any pending success timer.
func (c *Controller) resetForm(f *form, clearValues bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.stopTimer()
	f.fire(formstate.EventReset)

	for _, field := range f.fields {
		f.surface.ClearFieldError(field)
	}
	f.surface.ClearStatus()
	f.surface.SetSubmitEnabled(true)
	if clearValues {
		f.surface.ResetFields()
	}
}

// Close stops pending reset timers and orphans in-flight submissions. The
// surfaces are left as they are.
func (c *Controller) Close() {
	for _, f := range []*form{c.login, c.register} {
		f.mu.Lock()
		f.stopTimer()
		f.seq++
		f.mu.Unlock()
	}
}
