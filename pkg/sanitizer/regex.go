package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Email local-part cleanup
	dotRegex = regexp.MustCompile(`\.+`)

	// Phone digit extraction
	nonDigitRegex = regexp.MustCompile(`\D`)

	// Whitespace normalization
	whitespaceRegex = regexp.MustCompile(`\s+`)
)
