package authform

import (
	"strings"
	"time"

	"github.com/dmitrymomot/authform/pkg/sanitizer"
	"github.com/dmitrymomot/authform/pkg/validator"
)

// FormID identifies one of the two managed forms.
type FormID string

const (
	FormLogin    FormID = "login"
	FormRegister FormID = "register"
)

// TabID identifies a pane in a tabbed layout. The two tabs mirror the two
// forms, so the values coincide with FormID.
type TabID string

const (
	TabLogin    TabID = "login"
	TabRegister TabID = "register"
)

// Field names. They double as the wire names in request payloads and in
// server-side field error maps, so surfaces and servers agree on spelling.
const (
	FieldFullName        = "fullName"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldDateOfBirth     = "dob"
	FieldGender          = "gender"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
	FieldTerms           = "terms"
)

const (
	// MinPasswordLen is the minimum password length accepted by both forms.
	MinPasswordLen = 8
	// MinRegistrationAge is the minimum age in whole years for registration.
	MinRegistrationAge = 18
)

// loginFields lists the login form's fields in display order. Display order
// is also clearing and decoration order.
func loginFields() []string {
	return []string{FieldEmail, FieldPassword}
}

// registerFields lists the registration form's fields in display order.
func registerFields() []string {
	return []string{
		FieldFullName,
		FieldEmail,
		FieldPhone,
		FieldDateOfBirth,
		FieldGender,
		FieldPassword,
		FieldConfirmPassword,
		FieldTerms,
	}
}

// formValues is a snapshot of a form's field values taken at submit time.
// The same snapshot feeds validation and the request payload, so what was
// validated is exactly what is sent.
type formValues map[string]string

// snapshotValues reads every field from the surface and normalizes it.
//
// All values are composed to NFC first so that visually identical input
// behaves identically. The email is lowercased and trimmed, the full name
// collapses runs of whitespace, and most other fields are trimmed. Passwords
// pass through untouched: leading or trailing whitespace in a password is
// part of the password.
func snapshotValues(s Surface, fields []string) formValues {
	values := make(formValues, len(fields))

	for _, field := range fields {
		raw := s.FieldValue(field)

		switch field {
		case FieldPassword, FieldConfirmPassword:
			values[field] = raw
		case FieldEmail:
			values[field] = sanitizer.Apply(raw, sanitizer.NormalizeUnicode, sanitizer.NormalizeEmail)
		case FieldFullName:
			values[field] = sanitizer.Apply(raw, sanitizer.NormalizeUnicode, sanitizer.RemoveExtraWhitespace)
		default:
			values[field] = sanitizer.Apply(raw, sanitizer.NormalizeUnicode, sanitizer.Trim)
		}
	}

	return values
}

// isChecked interprets a checkbox-like field value. HTML surfaces report a
// bare "on" for a checked box; richer surfaces may report booleans as text.
func isChecked(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "true", "1", "yes", "checked":
		return true
	default:
		return false
	}
}

// passwordChain is the shared password rule chain. Both forms enforce the
// full policy, so an account created here is always signable-in here.
func passwordChain(field, value string) validator.FieldRules {
	return validator.Chain(field,
		validator.RequiredString(field, value),
		validator.MinLenString(field, value, MinPasswordLen),
		validator.PasswordUppercase(field, value),
		validator.PasswordDigit(field, value),
	)
}

func emailChain(field, value string) validator.FieldRules {
	return validator.Chain(field,
		validator.RequiredString(field, value),
		validator.ValidEmail(field, value),
	)
}

// loginRules builds the ordered rule set for the login form.
func loginRules(v formValues) []validator.FieldRules {
	return []validator.FieldRules{
		emailChain(FieldEmail, v[FieldEmail]),
		passwordChain(FieldPassword, v[FieldPassword]),
	}
}

// registerRules builds the ordered rule set for the registration form. The
// age rule only runs when the date parsed, so an unparseable date reports a
// format error rather than a nonsense age.
func registerRules(v formValues, now time.Time) []validator.FieldRules {
	dobChain := validator.Chain(FieldDateOfBirth,
		validator.RequiredString(FieldDateOfBirth, v[FieldDateOfBirth]),
		validator.ValidDate(FieldDateOfBirth, v[FieldDateOfBirth]),
	)
	if dob, err := validator.ParseDate(v[FieldDateOfBirth]); err == nil {
		dobChain.Rules = append(dobChain.Rules, validator.MinAgeAt(FieldDateOfBirth, dob, MinRegistrationAge, now))
	}

	return []validator.FieldRules{
		validator.Chain(FieldFullName,
			validator.RequiredString(FieldFullName, v[FieldFullName]),
			validator.CompleteName(FieldFullName, v[FieldFullName]),
		),
		emailChain(FieldEmail, v[FieldEmail]),
		validator.Chain(FieldPhone,
			validator.RequiredString(FieldPhone, v[FieldPhone]),
			validator.RussianMobile(FieldPhone, v[FieldPhone]),
		),
		dobChain,
		validator.Chain(FieldGender,
			validator.RequiredString(FieldGender, v[FieldGender]),
		),
		passwordChain(FieldPassword, v[FieldPassword]),
		validator.Chain(FieldConfirmPassword,
			validator.RequiredString(FieldConfirmPassword, v[FieldConfirmPassword]),
			validator.PasswordConfirm(FieldConfirmPassword, v[FieldConfirmPassword], v[FieldPassword]),
		),
		validator.Chain(FieldTerms,
			validator.Accepted(FieldTerms, isChecked(v[FieldTerms])),
		),
	}
}
