package consoleui

import (
	"strconv"

	"github.com/dmitrymomot/authform"
)

var genderOptions = []string{"male", "female", "other"}

// Prompter drives interactive field entry for both forms. It only collects
// values; validation and submission remain the controller's job.
type Prompter struct {
	driver PromptDriver
}

// PrompterOption configures a Prompter during construction.
type PrompterOption func(*Prompter)

// WithDriver replaces the survey-backed prompt driver.
func WithDriver(driver PromptDriver) PrompterOption {
	return func(p *Prompter) {
		if driver != nil {
			p.driver = driver
		}
	}
}

// NewPrompter creates a prompter using the terminal survey driver unless
// another driver is supplied.
func NewPrompter(opts ...PrompterOption) *Prompter {
	p := &Prompter{driver: surveyDriver{}}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// FillLogin asks for the login fields and stores the answers on the console.
// Current values are offered as defaults, so a re-prompt after a failed
// attempt keeps what the user already typed.
func (p *Prompter) FillLogin(c *Console) error {
	email, err := p.driver.Input("Email:", c.FieldValue(authform.FieldEmail))
	if err != nil {
		return err
	}
	c.Set(authform.FieldEmail, email)

	password, err := p.driver.Password("Password:")
	if err != nil {
		return err
	}
	c.Set(authform.FieldPassword, password)

	return nil
}

// FillRegistration asks for the registration fields and stores the answers
// on the console.
func (p *Prompter) FillRegistration(c *Console) error {
	prompts := []struct {
		field   string
		message string
	}{
		{authform.FieldFullName, "Full name:"},
		{authform.FieldEmail, "Email:"},
		{authform.FieldPhone, "Phone:"},
		{authform.FieldDateOfBirth, "Date of birth (YYYY-MM-DD):"},
	}
	for _, prompt := range prompts {
		value, err := p.driver.Input(prompt.message, c.FieldValue(prompt.field))
		if err != nil {
			return err
		}
		c.Set(prompt.field, value)
	}

	gender, err := p.driver.Select("Gender:", genderOptions)
	if err != nil {
		return err
	}
	c.Set(authform.FieldGender, gender)

	password, err := p.driver.Password("Password:")
	if err != nil {
		return err
	}
	c.Set(authform.FieldPassword, password)

	confirm, err := p.driver.Password("Confirm password:")
	if err != nil {
		return err
	}
	c.Set(authform.FieldConfirmPassword, confirm)

	terms, err := p.driver.Confirm("Accept the terms and conditions?", false)
	if err != nil {
		return err
	}
	c.Set(authform.FieldTerms, strconv.FormatBool(terms))

	return nil
}
