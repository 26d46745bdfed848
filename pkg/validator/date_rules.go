package validator

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for date inputs.
const DateLayout = "2006-01-02"

// ParseDate parses a date input value using DateLayout.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(value))
}

// ValidDate validates that a value parses as an ISO date (YYYY-MM-DD).
// Impossible calendar dates such as 2024-02-30 fail too.
func ValidDate(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, err := ParseDate(value)
			return err == nil
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeInvalidFormat,
			Message: "Please enter a valid date",
		},
	}
}

// MinAgeAt validates minimum age at the given reference time. The age is the
// number of whole years elapsed: one year is subtracted when the birthday has
// not yet occurred in the reference year.
func MinAgeAt(field string, birthdate time.Time, minAge int, now time.Time) Rule {
	return Rule{
		Check: func() bool {
			age := now.Year() - birthdate.Year()

			// Adjust if birthday hasn't occurred this year
			if now.Month() < birthdate.Month() ||
				(now.Month() == birthdate.Month() && now.Day() < birthdate.Day()) {
				age--
			}

			return age >= minAge
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeUnderage,
			Message: fmt.Sprintf("You must be at least %d years old", minAge),
		},
	}
}

// MinAge validates minimum age as of the current wall clock.
func MinAge(field string, birthdate time.Time, minAge int) Rule {
	return MinAgeAt(field, birthdate, minAge, time.Now())
}
