package rules

import (
	"context"
	"maps"
	"slices"

	"github.com/dmitrymomot/optguard/pkg/hooks"
	"github.com/dmitrymomot/optguard/pkg/sanitizer"
)

// FilterName is the hook name under which catalog extensions are registered.
const FilterName = "available_sanitizer_rules"

// Set maps rule names to rules.
type Set map[string]Rule

// Has reports whether name is in the set.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the rule names, sorted.
func (s Set) Names() []string {
	return slices.Sorted(maps.Keys(s))
}

// Clone returns a shallow copy of the set.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	maps.Copy(out, s)
	return out
}

// Extension receives a copy of the rule set and returns the set to use.
type Extension func(ctx context.Context, set Set) Set

// Defaults returns a fresh set of the eight default rules. checker backs the
// two permission-gated rules.
func Defaults(checker CapabilityChecker) Set {
	safeHTML := Text(sanitizer.SafeHTML)

	return Set{
		OneZero:                Value(func(v any) any { return sanitizer.OneZero(v) }),
		AbsInt:                 Value(func(v any) any { return sanitizer.AbsInt(v) }),
		NoHTML:                 Text(sanitizer.StripTags),
		SafeHTML:               safeHTML,
		URL:                    Text(sanitizer.EscURL),
		EmailAddress:           Text(sanitizer.SanitizeEmail),
		RequiresUnfilteredHTML: RequiresCapability(checker, CapabilityUnfilteredHTML),
		UnfilteredOrSafeHTML:   CapabilityOr(checker, CapabilityUnfilteredHTML, safeHTML),
	}
}

// Catalog is the rule catalog with its extension point.
type Catalog struct {
	defaults Set
	filters  *hooks.Registry[Set]
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithRule adds or replaces a rule in the default set.
func WithRule(name string, rule Rule) Option {
	return func(c *Catalog) {
		if name != "" && rule != nil {
			c.defaults[name] = rule
		}
	}
}

// WithFilters shares a hooks registry with other collaborators instead of
// using a private one.
func WithFilters(filters *hooks.Registry[Set]) Option {
	return func(c *Catalog) {
		if filters != nil {
			c.filters = filters
		}
	}
}

// NewCatalog creates a catalog seeded with Defaults(checker).
func NewCatalog(checker CapabilityChecker, opts ...Option) *Catalog {
	c := &Catalog{
		defaults: Defaults(checker),
		filters:  hooks.New[Set](),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Extend registers an extension. Extensions run in ascending priority order
// and later extensions see the output of earlier ones. An extension that
// returns nil leaves the set unchanged.
func (c *Catalog) Extend(fn Extension, priority int) {
	if fn == nil {
		return
	}
	c.filters.Add(FilterName, func(ctx context.Context, _ string, set Set) Set {
		if out := fn(ctx, set); out != nil {
			return out
		}
		return set
	}, priority)
}

// Set returns the effective rule set: the defaults merged with every
// extension. The returned set is a copy owned by the caller.
func (c *Catalog) Set(ctx context.Context) Set {
	return c.filters.Apply(ctx, FilterName, c.defaults.Clone())
}

// Lookup returns the effective rule registered under name.
func (c *Catalog) Lookup(ctx context.Context, name string) (Rule, bool) {
	rule, ok := c.Set(ctx)[name]
	if !ok || rule == nil {
		return nil, false
	}
	return rule, true
}
