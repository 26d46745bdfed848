package consoleui_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authform"
	"github.com/dmitrymomot/authform/pkg/authapi"
	"github.com/dmitrymomot/authform/pkg/authapi/authapitest"
	"github.com/dmitrymomot/authform/pkg/consoleui"
)

// scriptedDriver feeds canned answers to prompt flows. failOn names the
// method that should abort instead of answering.
type scriptedDriver struct {
	inputs    []string
	passwords []string
	selects   []string
	confirms  []bool
	failOn    string

	in, pw, sel, cf int
}

func (d *scriptedDriver) Input(message, def string) (string, error) {
	if d.failOn == "input" {
		return "", consoleui.ErrAborted
	}
	v := d.inputs[d.in]
	d.in++
	return v, nil
}

func (d *scriptedDriver) Password(message string) (string, error) {
	if d.failOn == "password" {
		return "", consoleui.ErrAborted
	}
	v := d.passwords[d.pw]
	d.pw++
	return v, nil
}

func (d *scriptedDriver) Select(message string, options []string) (string, error) {
	if d.failOn == "select" {
		return "", consoleui.ErrAborted
	}
	v := d.selects[d.sel]
	d.sel++
	return v, nil
}

func (d *scriptedDriver) Confirm(message string, def bool) (bool, error) {
	if d.failOn == "confirm" {
		return false, consoleui.ErrAborted
	}
	v := d.confirms[d.cf]
	d.cf++
	return v, nil
}

func TestConsole_ValueStore(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := consoleui.New("login", consoleui.WithOutput(&buf))

	assert.Empty(t, c.FieldValue(authform.FieldEmail))

	c.Set(authform.FieldEmail, "user@example.com")
	assert.Equal(t, "user@example.com", c.FieldValue(authform.FieldEmail))

	c.ResetFields()
	assert.Empty(t, c.FieldValue(authform.FieldEmail))
	assert.Contains(t, buf.String(), "[login] form reset")
}

func TestConsole_RendersFieldErrors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := consoleui.New("register", consoleui.WithOutput(&buf))

	c.ShowFieldError(authform.FieldEmail, "Please enter a valid email address")
	assert.Contains(t, buf.String(), "[register] ✗ email: Please enter a valid email address")

	// Clearing changes state, not the transcript.
	before := buf.String()
	c.ClearFieldError(authform.FieldEmail)
	c.ClearFieldError(authform.FieldEmail)
	assert.Equal(t, before, buf.String())
}

func TestConsole_RendersStatus(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := consoleui.New("login", consoleui.WithOutput(&buf))

	c.ShowStatus("Submitting...", authform.StatusLoading, true)
	assert.Contains(t, buf.String(), "[login] … Submitting...")
	assert.Equal(t, "Submitting...", c.Status())

	c.ShowStatus("Signed in.", authform.StatusSuccess, true)
	assert.Contains(t, buf.String(), "[login] ✓ Signed in.")

	c.ShowStatus("Nope.", authform.StatusError, true)
	assert.Contains(t, buf.String(), "[login] ✗ Nope.")

	c.ClearStatus()
	assert.Empty(t, c.Status())
}

func TestConsole_SubmitEnabled(t *testing.T) {
	t.Parallel()

	c := consoleui.New("login", consoleui.WithOutput(&bytes.Buffer{}))

	assert.True(t, c.SubmitEnabled())
	c.SetSubmitEnabled(false)
	assert.False(t, c.SubmitEnabled())
	c.SetSubmitEnabled(true)
	assert.True(t, c.SubmitEnabled())
}

func TestTabs_Activate(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	tabs := consoleui.NewTabs(&buf)

	tabs.ActivateTab(authform.TabRegister)

	assert.Equal(t, authform.TabRegister, tabs.Active())
	assert.Contains(t, buf.String(), "=== register ===")
}

func TestPrompter_FillLogin(t *testing.T) {
	t.Parallel()

	driver := &scriptedDriver{
		inputs:    []string{"user@example.com"},
		passwords: []string{"StrongPass1"},
	}
	p := consoleui.NewPrompter(consoleui.WithDriver(driver))
	c := consoleui.New("login", consoleui.WithOutput(&bytes.Buffer{}))

	require.NoError(t, p.FillLogin(c))

	assert.Equal(t, "user@example.com", c.FieldValue(authform.FieldEmail))
	assert.Equal(t, "StrongPass1", c.FieldValue(authform.FieldPassword))
}

func TestPrompter_FillRegistration(t *testing.T) {
	t.Parallel()

	driver := &scriptedDriver{
		inputs:    []string{"Ivan Petrov", "ivan@example.com", "+79991234567", "1990-05-10"},
		passwords: []string{"StrongPass1", "StrongPass1"},
		selects:   []string{"male"},
		confirms:  []bool{true},
	}
	p := consoleui.NewPrompter(consoleui.WithDriver(driver))
	c := consoleui.New("register", consoleui.WithOutput(&bytes.Buffer{}))

	require.NoError(t, p.FillRegistration(c))

	assert.Equal(t, "Ivan Petrov", c.FieldValue(authform.FieldFullName))
	assert.Equal(t, "ivan@example.com", c.FieldValue(authform.FieldEmail))
	assert.Equal(t, "+79991234567", c.FieldValue(authform.FieldPhone))
	assert.Equal(t, "1990-05-10", c.FieldValue(authform.FieldDateOfBirth))
	assert.Equal(t, "male", c.FieldValue(authform.FieldGender))
	assert.Equal(t, "StrongPass1", c.FieldValue(authform.FieldPassword))
	assert.Equal(t, "StrongPass1", c.FieldValue(authform.FieldConfirmPassword))
	assert.Equal(t, "true", c.FieldValue(authform.FieldTerms))
}

func TestPrompter_AbortStopsTheFlow(t *testing.T) {
	t.Parallel()

	driver := &scriptedDriver{
		inputs: []string{"user@example.com"},
		failOn: "password",
	}
	p := consoleui.NewPrompter(consoleui.WithDriver(driver))
	c := consoleui.New("login", consoleui.WithOutput(&bytes.Buffer{}))

	err := p.FillLogin(c)
	require.ErrorIs(t, err, consoleui.ErrAborted)

	// Answers before the abort are kept for the next attempt.
	assert.Equal(t, "user@example.com", c.FieldValue(authform.FieldEmail))
	assert.Empty(t, c.FieldValue(authform.FieldPassword))
}

func TestConsole_AsControllerSurface(t *testing.T) {
	t.Parallel()

	srv := authapitest.New()
	defer srv.Close()
	srv.Seed("user@example.com", "StrongPass1")

	client, err := authapi.NewClient(authapi.Config{BaseURL: srv.URL(), Timeout: 2 * time.Second})
	require.NoError(t, err)

	var buf bytes.Buffer
	login := consoleui.New("login", consoleui.WithOutput(&buf))
	register := consoleui.New("register", consoleui.WithOutput(&buf))

	ctrl, err := authform.NewController(client, login, register,
		authform.WithResetDelay(time.Minute),
	)
	require.NoError(t, err)
	t.Cleanup(ctrl.Close)

	// Empty form: field errors and the validation summary hit the terminal.
	err = ctrl.Submit(context.Background(), authform.FormLogin)
	require.ErrorIs(t, err, authform.ErrValidationFailed)
	assert.Contains(t, buf.String(), "[login] ✗ email: This field is required")
	assert.Contains(t, buf.String(), "[login] ✗ password: This field is required")
	assert.Contains(t, buf.String(), "[login] ✗ Please fix the errors above.")

	// Filled form: the loading line and the server's success message follow.
	login.Set(authform.FieldEmail, "user@example.com")
	login.Set(authform.FieldPassword, "StrongPass1")
	require.NoError(t, ctrl.Submit(context.Background(), authform.FormLogin))
	assert.Contains(t, buf.String(), "[login] … Submitting...")
	assert.Contains(t, buf.String(), "[login] ✓ "+authapitest.MsgSignedIn)
	assert.False(t, login.SubmitEnabled())
}
