package validator

import "regexp"

var (
	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	digitRegex     = regexp.MustCompile(`[0-9]`)
)

func PasswordUppercase(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return uppercaseRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeMissingUppercase,
			Message: "Password must contain at least one uppercase letter",
		},
	}
}

func PasswordDigit(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return digitRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeMissingDigit,
			Message: "Password must contain at least one digit",
		},
	}
}

// PasswordConfirm validates that the confirmation value matches the password
// exactly. No trimming: whitespace differences are real differences here.
func PasswordConfirm(field, value, password string) Rule {
	return Rule{
		Check: func() bool {
			return value == password
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeMismatch,
			Message: "Passwords do not match",
		},
	}
}

// Accepted validates that a boolean flag, such as a terms-of-service
// checkbox, is set.
func Accepted(field string, ok bool) Rule {
	return Rule{
		Check: func() bool {
			return ok
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeNotAccepted,
			Message: "You must accept the terms and conditions",
		},
	}
}
