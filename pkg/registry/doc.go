// Package registry associates options with sanitization rules and applies
// them whenever an option is about to be persisted.
//
// An association binds either the whole option to one rule, or individual
// fields of a record-valued option to rules:
//
//	reg := registry.New(catalog, store, registry.WithHooks(h))
//	reg.Register("site_email", rules.EmailAddress)
//	reg.Register("theme_opts", rules.NoHTML, "title", "tagline")
//	reg.Register("theme_opts", rules.URL, "color")
//
// The first registration of an option attaches one filter to the hooks
// registry under hooks.PersistHook(option). The option manager runs that chain
// before writing, so the filter's result is what gets stored.
//
// Dispatch fails open. An unregistered option, an unknown rule name and a
// non-record candidate for a field mapping all pass the candidate through
// unchanged. Validate reports unknown rule names so callers can refuse to
// start with a broken configuration.
package registry
