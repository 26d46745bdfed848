package validator

import (
	"fmt"
	"strings"
)

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeRequired,
			Message: "This field is required",
		},
	}
}

func MinLenString(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeTooShort,
			Message: fmt.Sprintf("Must be at least %d characters long", min),
		},
	}
}

// CompleteName validates that a name contains at least two words, e.g. a
// given name and a family name.
func CompleteName(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return len(strings.Fields(value)) >= 2
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeIncompleteName,
			Message: "Please enter your first and last name",
		},
	}
}

// Convenience aliases for common string validation cases

func Required(field, value string) Rule {
	return RequiredString(field, value)
}

func MinLen(field, value string, min int) Rule {
	return MinLenString(field, value, min)
}
