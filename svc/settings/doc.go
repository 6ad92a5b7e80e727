// Package settings wires the option sanitization layer together.
//
// A Service owns the option store selected by OPTIONS_STORE, the role
// authorizer, the rule catalog, the rule registry and the option manager.
// Associations can be loaded from a YAML file at startup and registered
// programmatically afterwards:
//
//	svc, err := settings.NewFromEnv(ctx)
//	if err != nil {
//	    return err
//	}
//	defer svc.Close(ctx)
//
//	svc.Register("theme_opts", rules.OneZero, "show_header")
//	changed, err := svc.Update(ctx, "theme_opts", map[string]any{"show_header": "yes"})
package settings
