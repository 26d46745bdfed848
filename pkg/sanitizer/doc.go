// Package sanitizer provides helper functions for normalising raw form input
// before it is validated or submitted.
//
// The helpers fall into two groups:
//
//   - Strings – trimming, case folding, whitespace normalisation and Unicode
//     NFC composition.
//
//   - Format – normalisation for e-mail addresses and phone numbers.
//
// All helpers are stateless, never return an error and fall back to the
// original input when normalisation does not apply. The higher-order Apply and
// Compose helpers build reusable normalisation pipelines:
//
//	cleanName := sanitizer.Compose(
//	    sanitizer.NormalizeUnicode,
//	    sanitizer.RemoveExtraWhitespace,
//	)
//
//	name := cleanName("  Jane   van  Dyke \n") // "Jane van Dyke"
//
// # Usage
//
// Import the package using its module-qualified path:
//
//	import "github.com/dmitrymomot/authform/pkg/sanitizer"
//
// Example – e-mail address normalisation:
//
//	raw   := "  John.Doe...@Example.COM "
//	email := sanitizer.NormalizeEmail(raw)
//	// email == "john.doe@example.com"
//
// Because there is no global state the helpers are safe for concurrent use.
package sanitizer
