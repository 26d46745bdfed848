// Package validator provides the rule-building blocks used to validate
// authentication form input: required fields, email and phone shapes,
// password strength, names, dates of birth and confirmation values.
//
// The package promotes declarative validation by letting you build small Rule
// values that encapsulate a boolean Check function together with a field
// name, a machine-readable failure Code and a user-facing message. Rules are
// evaluated with the Apply helper, which aggregates all failures into a
// ValidationErrors slice that satisfies the error interface, or with
// ApplyFields, which evaluates an ordered chain per field and reports only
// the first failure for each field while still visiting every field.
//
// # Architecture
//
// Each source file groups a family of rules for a specific domain
// (`string_rules.go`, `format_rules.go`, `password_rules.go`,
// `date_rules.go`). Every exported validation function simply constructs and
// returns a Rule instance; there is no hidden global state, therefore the
// package is completely stateless, allocation-light, and goroutine-safe.
//
// Core building blocks:
//   - Rule             – lightweight struct containing Check func and error meta
//   - ValidationError  – describes a single failure with a typed Code
//   - ValidationErrors – slice type that implements the error interface
//   - FieldRules       – ordered rule chain for one field, built with Chain
//
// # Usage
//
//	err := validator.ApplyFields(
//	    validator.Chain("email",
//	        validator.RequiredString("email", email),
//	        validator.ValidEmail("email", email),
//	    ),
//	    validator.Chain("password",
//	        validator.RequiredString("password", password),
//	        validator.MinLenString("password", password, 8),
//	        validator.PasswordUppercase("password", password),
//	        validator.PasswordDigit("password", password),
//	    ),
//	)
//	if err != nil {
//	    for _, verr := range validator.ExtractValidationErrors(err) {
//	        // show verr.Message at verr.Field
//	    }
//	}
//
// # Error Handling
//
// ValidationErrors implements the error interface, so `errors.As` detects
// validation problems while preserving per-field details. Individual field
// errors can be inspected with the helper methods Has, Get, GetErrors and
// Fields; failure classes are compared via the Code constants.
//
// # Performance Considerations
//
// All helpers are simple comparisons or pattern checks against pre-compiled
// regular expressions. Expensive validations (e.g. uniqueness lookups) belong
// on the server and arrive back as submission errors, not as Rules.
package validator
