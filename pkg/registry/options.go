package registry

import (
	"log/slog"

	"github.com/dmitrymomot/optguard/pkg/hooks"
)

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for dispatch diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(r *Registry) {
		if log != nil {
			r.log = log
		}
	}
}

// WithHooks sets the hooks registry that persist filters are attached to.
// Share it with the option manager so writes run through the filters.
func WithHooks(h *hooks.Registry[any]) Option {
	return func(r *Registry) {
		if h != nil {
			r.hooks = h
		}
	}
}

// WithHookPriority sets the priority of the attached persist filters.
func WithHookPriority(priority int) Option {
	return func(r *Registry) {
		r.priority = priority
	}
}
