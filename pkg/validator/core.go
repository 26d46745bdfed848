package validator

import (
	"errors"
	"fmt"
	"strings"
)

// Code classifies a validation failure independently of its display message.
// Callers branch on codes; messages are what end users see.
type Code string

const (
	CodeRequired         Code = "required"
	CodeInvalidFormat    Code = "invalid_format"
	CodeTooShort         Code = "too_short"
	CodeMissingUppercase Code = "missing_uppercase"
	CodeMissingDigit     Code = "missing_digit"
	CodeIncompleteName   Code = "incomplete_name"
	CodeUnderage         Code = "underage"
	CodeMismatch         Code = "mismatch"
	CodeNotAccepted      Code = "not_accepted"
)

// ValidationError represents a single validation failure for one field.
type ValidationError struct {
	Field   string
	Code    Code
	Message string
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var errs []ValidationError
	for _, err := range ve {
		if err.Field == field {
			errs = append(errs, err)
		}
	}
	return errs
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// FieldRules is an ordered rule chain for one field. Chain order decides
// which failure is reported: evaluation stops at the first failing rule.
type FieldRules struct {
	Field string
	Rules []Rule
}

// Chain builds the ordered rule set for a single field.
func Chain(field string, rules ...Rule) FieldRules {
	return FieldRules{Field: field, Rules: rules}
}

// Apply executes every rule and returns all validation errors. Rules are
// never short-circuited; each failing rule contributes its error.
func Apply(rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// ApplyFields evaluates each field's rule chain in order and records at most
// the first failure per field. Every field is always visited, so one invalid
// field never hides problems in the others.
func ApplyFields(fields ...FieldRules) error {
	var errs ValidationErrors

	for _, f := range fields {
		for _, rule := range f.Rules {
			if !rule.Check() {
				errs = append(errs, rule.Error)
				break
			}
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
