// Package hooks provides named, prioritized filter chains.
//
// A filter receives a value and returns the value the next filter (or the
// caller) sees. Filters registered under the same name run in ascending
// priority order; filters with equal priority run in registration order.
//
//	h := hooks.New[any]()
//	h.Add(hooks.PersistHook("site_title"), func(ctx context.Context, name string, v any) any {
//	    return strings.TrimSpace(v.(string))
//	}, hooks.DefaultPriority)
//
//	v := h.Apply(ctx, hooks.PersistHook("site_title"), "  Hello  ") // "Hello"
//
// Applying a name with no filters returns the value unchanged. A Registry is
// safe for concurrent use; filters added while Apply is running take effect on
// the next call.
package hooks
