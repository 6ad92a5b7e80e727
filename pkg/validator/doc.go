// Package validator provides small declarative validation rules.
//
// A Rule pairs a Check function with a ValidationError describing the
// failure. Apply evaluates rules and aggregates failures into
// ValidationErrors, which implements error:
//
//	err := validator.Apply(
//	    validator.RequiredString("option", name),
//	    validator.ValidEmail("admin_email", email),
//	    validator.KnownRule("theme_opts.title", "no_html", catalog.Has),
//	)
//	if errs := validator.ExtractValidationErrors(err); errs.Has("admin_email") {
//	    // ...
//	}
//
// Each ValidationError carries a Code (CodeRequired, CodeUnknownRule, ...)
// for callers that branch on the reason rather than the message.
// The package has no global state and is safe for concurrent use.
package validator
