package consoleui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrymomot/authform"
)

// Console renders one form on a terminal and stores its field values.
// It implements authform.Surface; all behavioral decisions stay with the
// controller.
type Console struct {
	label string
	out   io.Writer

	mu      sync.Mutex
	values  map[string]string
	errors  map[string]string
	valid   map[string]bool
	status  string
	enabled bool
}

var _ authform.Surface = (*Console)(nil)

// Option configures a Console during construction.
type Option func(*Console)

// WithOutput redirects rendering, os.Stdout by default.
func WithOutput(out io.Writer) Option {
	return func(c *Console) {
		if out != nil {
			c.out = out
		}
	}
}

// New creates a console surface. The label prefixes every rendered line so
// two forms can share one terminal.
func New(label string, opts ...Option) *Console {
	c := &Console{
		label:   label,
		out:     os.Stdout,
		values:  make(map[string]string),
		errors:  make(map[string]string),
		valid:   make(map[string]bool),
		enabled: true,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Set stores a field value, as typing into the field would.
func (c *Console) Set(field, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[field] = value
}

// SubmitEnabled reports whether the submit controls are currently enabled.
func (c *Console) SubmitEnabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled
}

// Status returns the current form-level status line, empty when cleared.
func (c *Console) Status() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

func (c *Console) FieldValue(field string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values[field]
}

func (c *Console) ShowFieldError(field, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errors[field] = message
	delete(c.valid, field)
	fmt.Fprintf(c.out, "[%s] ✗ %s: %s\n", c.label, field, message)
}

func (c *Console) ClearFieldError(field string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.errors, field)
	delete(c.valid, field)
}

func (c *Console) MarkFieldValid(field string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.valid[field] = true
	delete(c.errors, field)
}

func (c *Console) ShowStatus(text string, kind authform.StatusKind, announce bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = text
	fmt.Fprintf(c.out, "[%s] %s %s\n", c.label, statusGlyph(kind), text)
}

func (c *Console) ClearStatus() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = ""
}

func (c *Console) SetSubmitEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = enabled
}

func (c *Console) ResetFields() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values = make(map[string]string)
	fmt.Fprintf(c.out, "[%s] form reset\n", c.label)
}

func statusGlyph(kind authform.StatusKind) string {
	switch kind {
	case authform.StatusLoading:
		return "…"
	case authform.StatusSuccess:
		return "✓"
	default:
		return "✗"
	}
}

// Tabs renders tab switches. It implements authform.TabSurface.
type Tabs struct {
	out io.Writer

	mu     sync.Mutex
	active authform.TabID
}

var _ authform.TabSurface = (*Tabs)(nil)

// NewTabs creates a tab surface writing to out, os.Stdout when nil.
func NewTabs(out io.Writer) *Tabs {
	if out == nil {
		out = os.Stdout
	}
	return &Tabs{out: out}
}

func (t *Tabs) ActivateTab(tab authform.TabID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active = tab
	fmt.Fprintf(t.out, "=== %s ===\n", tab)
}

// Active returns the most recently activated tab.
func (t *Tabs) Active() authform.TabID {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}
