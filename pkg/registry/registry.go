package registry

import (
	"context"
	"errors"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/dmitrymomot/optguard/pkg/hooks"
	"github.com/dmitrymomot/optguard/pkg/logger"
	"github.com/dmitrymomot/optguard/pkg/optionstore"
	"github.com/dmitrymomot/optguard/pkg/rules"
)

// Registry holds the option associations and dispatches persisted values to
// their rules. It is safe for concurrent use.
type Registry struct {
	catalog  *rules.Catalog
	store    optionstore.Getter
	hooks    *hooks.Registry[any]
	priority int
	log      *slog.Logger

	mu           sync.RWMutex
	associations map[string]Association
}

// New creates a registry that resolves rule names through catalog and reads
// current values from store.
func New(catalog *rules.Catalog, store optionstore.Getter, opts ...Option) *Registry {
	r := &Registry{
		catalog:      catalog,
		store:        store,
		hooks:        hooks.New[any](),
		priority:     hooks.DefaultPriority,
		log:          slog.Default(),
		associations: make(map[string]Association),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Hooks returns the hooks registry persist filters are attached to.
func (r *Registry) Hooks() *hooks.Registry[any] {
	return r.hooks
}

// Register associates rule with option, or with each named field of option
// when subOptions are given. Empty field names are ignored. The last
// registration for a key wins, and switching an option between whole-value
// and per-field form replaces its previous association. It always returns
// true.
func (r *Registry) Register(option, rule string, subOptions ...string) bool {
	fields := slices.DeleteFunc(slices.Clone(subOptions), func(s string) bool { return s == "" })

	r.mu.Lock()
	current, exists := r.associations[option]
	switch {
	case len(fields) == 0:
		current = Association{Rule: rule}
	default:
		if !current.Structured() {
			current = Association{}
		}
		for _, field := range fields {
			current.setField(field, rule)
		}
	}
	r.associations[option] = current
	r.mu.Unlock()

	if !exists {
		r.hooks.Add(hooks.PersistHook(option), func(ctx context.Context, _ string, value any) any {
			return r.OnPersist(ctx, value, option)
		}, r.priority)
	}
	return true
}

// Resolve applies the rule named rule to candidate. An unknown rule returns
// candidate unchanged.
func (r *Registry) Resolve(ctx context.Context, rule string, candidate, current any) any {
	fn, ok := r.catalog.Lookup(ctx, rule)
	if !ok {
		r.log.WarnContext(ctx, "unknown sanitization rule, value stored unfiltered",
			logger.Rule(rule))
		return candidate
	}
	return fn.Apply(ctx, candidate, current)
}

// OnPersist returns the value to store for option given the candidate value.
func (r *Registry) OnPersist(ctx context.Context, candidate any, option string) any {
	assoc, ok := r.Lookup(option)
	if !ok {
		return candidate
	}

	if !assoc.Structured() {
		return r.Resolve(ctx, assoc.Rule, candidate, r.current(ctx, option))
	}

	record, ok := candidate.(map[string]any)
	if !ok {
		r.log.DebugContext(ctx, "candidate is not a record, fields left unsanitized",
			logger.OptionName(option))
		return candidate
	}
	stored, _ := r.current(ctx, option).(map[string]any)

	out := maps.Clone(record)
	if out == nil {
		out = make(map[string]any, len(assoc.Fields))
	}
	for _, f := range assoc.Fields {
		out[f.Field] = r.Resolve(ctx, f.Rule, fieldOrEmpty(out, f.Field), fieldOrEmpty(stored, f.Field))
	}
	return out
}

// Lookup returns a copy of the association registered for option.
func (r *Registry) Lookup(option string) (Association, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	assoc, ok := r.associations[option]
	if !ok {
		return Association{}, false
	}
	return assoc.clone(), true
}

// Options returns the registered option names, sorted.
func (r *Registry) Options() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.associations))
}

func (r *Registry) current(ctx context.Context, option string) any {
	if r.store == nil {
		return nil
	}
	value, err := r.store.Get(ctx, option)
	if err != nil {
		if !errors.Is(err, optionstore.ErrNotFound) {
			r.log.ErrorContext(ctx, "failed to read current option value",
				logger.OptionName(option), logger.Error(err))
		}
		return nil
	}
	return value
}

func fieldOrEmpty(record map[string]any, field string) any {
	if v, ok := record[field]; ok && v != nil {
		return v
	}
	return ""
}
