package validator

import (
	"regexp"

	"github.com/dmitrymomot/authform/pkg/sanitizer"
)

var (
	// Shape check only: local part, @, domain with a dot. Deliverability is
	// the server's problem; the client just catches obvious typos.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Russian mobile numbers: 10 digits, optionally prefixed with the
	// country code 7 or the trunk prefix 8.
	russianMobileRegex = regexp.MustCompile(`^(?:[78])?\d{10}$`)
)

// ValidEmail validates the common shape of an email address.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return emailRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeInvalidFormat,
			Message: "Please enter a valid email address",
		},
	}
}

// RussianMobile validates a Russian mobile number. Formatting characters are
// ignored, so "+7 (999) 123-45-67" and "89991234567" both pass.
func RussianMobile(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return russianMobileRegex.MatchString(sanitizer.NormalizePhone(value))
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeInvalidFormat,
			Message: "Please enter a valid phone number",
		},
	}
}
