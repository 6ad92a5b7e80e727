package rules

import (
	"context"

	"github.com/dmitrymomot/optguard/pkg/sanitizer"
)

// Default rule names.
const (
	OneZero                = "one_zero"
	AbsInt                 = "absint"
	NoHTML                 = "no_html"
	SafeHTML               = "safe_html"
	URL                    = "url"
	EmailAddress           = "email_address"
	RequiresUnfilteredHTML = "requires_unfiltered_html"
	UnfilteredOrSafeHTML   = "unfiltered_or_safe_html"
)

// CapabilityUnfilteredHTML is the capability that lets a principal store
// markup without filtering.
const CapabilityUnfilteredHTML = "unfiltered_html"

// Rule transforms a candidate option value into the value to persist.
type Rule interface {
	Apply(ctx context.Context, candidate, current any) any
}

// Func adapts a function to the Rule interface.
type Func func(ctx context.Context, candidate, current any) any

func (f Func) Apply(ctx context.Context, candidate, current any) any {
	return f(ctx, candidate, current)
}

// CapabilityChecker reports whether the principal acting in ctx holds a
// capability.
type CapabilityChecker interface {
	HasCapability(ctx context.Context, capability string) bool
}

// CapabilityFunc adapts a function to the CapabilityChecker interface.
type CapabilityFunc func(ctx context.Context, capability string) bool

func (f CapabilityFunc) HasCapability(ctx context.Context, capability string) bool {
	return f(ctx, capability)
}

// Value lifts a single-argument transform into a Rule that ignores the
// current value.
func Value(fn func(any) any) Rule {
	return Func(func(_ context.Context, candidate, _ any) any {
		return fn(candidate)
	})
}

// Text lifts a string transform into a Rule. The candidate is converted with
// sanitizer.ToString first, so non-scalar candidates are treated as "".
func Text(fn func(string) string) Rule {
	return Func(func(_ context.Context, candidate, _ any) any {
		return fn(sanitizer.ToString(candidate))
	})
}

// RequiresCapability keeps the candidate only when the principal holds
// capability; otherwise the edit is discarded and current is returned.
// A nil checker grants nothing.
func RequiresCapability(checker CapabilityChecker, capability string) Rule {
	return Func(func(ctx context.Context, candidate, current any) any {
		if hasCapability(ctx, checker, capability) {
			return candidate
		}
		return current
	})
}

// CapabilityOr keeps the candidate when the principal holds capability and
// otherwise passes it through fallback.
func CapabilityOr(checker CapabilityChecker, capability string, fallback Rule) Rule {
	return Func(func(ctx context.Context, candidate, current any) any {
		if hasCapability(ctx, checker, capability) {
			return candidate
		}
		return fallback.Apply(ctx, candidate, current)
	})
}

func hasCapability(ctx context.Context, checker CapabilityChecker, capability string) bool {
	return checker != nil && checker.HasCapability(ctx, capability)
}
