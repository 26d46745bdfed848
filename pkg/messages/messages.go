package messages

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog holds the user-facing status copy rendered around form submissions.
// Field errors carry their own text from the validators or the server; the
// catalog covers everything form-level.
type Catalog struct {
	// Working is shown with the loading indicator while a submission is in flight.
	Working string `yaml:"working"`
	// ValidationSummary is shown when local validation rejects the form.
	ValidationSummary string `yaml:"validation_summary"`
	// ServerFieldErrors is shown when the server rejected individual fields.
	ServerFieldErrors string `yaml:"server_field_errors"`
	// Success is shown after a successful submission without a server message.
	Success string `yaml:"success"`
	// Timeout is shown when the request exceeded the configured time budget.
	Timeout string `yaml:"timeout"`
	// Network is shown when the request failed before producing a response.
	Network string `yaml:"network"`
	// Unexpected is the last-resort message for unrecognized server responses.
	Unexpected string `yaml:"unexpected"`
}

// Default returns the built-in English catalog.
func Default() Catalog {
	return Catalog{
		Working:           "Submitting...",
		ValidationSummary: "Please fix the errors above.",
		ServerFieldErrors: "Please check the errors above.",
		Success:           "Success!",
		Timeout:           "The request timed out. Please try again.",
		Network:           "A network error occurred. Please check your connection and try again.",
		Unexpected:        "An unexpected error occurred. Please try again.",
	}
}

// Load reads a YAML catalog and overlays it on the defaults, so a file only
// needs the keys it wants to change. An explicitly empty key overrides the
// default with an empty string.
func Load(r io.Reader) (Catalog, error) {
	catalog := Default()

	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&catalog); err != nil && err != io.EOF {
		return Default(), fmt.Errorf("%w: %w", ErrFailedToParseCatalog, err)
	}

	return catalog, nil
}

// LoadFile reads a YAML catalog from the given path and overlays it on the
// defaults.
func LoadFile(path string) (Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return Default(), fmt.Errorf("%w: %w", ErrFailedToOpenCatalog, err)
	}
	defer f.Close()

	return Load(f)
}
