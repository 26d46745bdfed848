package authform

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/authform/pkg/messages"
)

// Option configures a Controller during construction.
type Option func(*Controller)

// WithTabSurface attaches a tab surface so SwitchTab can activate panes.
// Without one, SwitchTab still resets both forms.
func WithTabSurface(tabs TabSurface) Option {
	return func(c *Controller) {
		if tabs != nil {
			c.tabs = tabs
		}
	}
}

// WithMessages replaces the built-in status message catalog.
func WithMessages(catalog messages.Catalog) Option {
	return func(c *Controller) {
		c.catalog = catalog
	}
}

// WithResetDelay sets how long the success message stays visible before the
// form auto-resets. Non-positive values are ignored.
func WithResetDelay(delay time.Duration) Option {
	return func(c *Controller) {
		if delay > 0 {
			c.resetDelay = delay
		}
	}
}

// WithClock injects the time source used by date-based validation rules.
func WithClock(clock Clock) Option {
	return func(c *Controller) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithLogger sets the logger for controller and lifecycle events.
// The default discards everything.
func WithLogger(log *slog.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}
