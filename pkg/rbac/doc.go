// Package rbac decides which capabilities the acting principal holds.
//
// Roles map to capability lists and may inherit other roles. Capabilities are
// plain names ("unfiltered_html", "manage_options") and may be grouped with
// dots; a trailing wildcard grants a whole group ("options.*") and "*" grants
// everything.
//
//	auth, err := rbac.NewAuthorizer(ctx, rbac.NewInMemRoleSource(rbac.DefaultRoles()))
//	if err != nil {
//	    return err
//	}
//
//	ctx = rbac.WithPrincipal(ctx, rbac.Principal{ID: userID, Role: rbac.RoleEditor})
//	checker := rbac.NewCapabilityChecker(auth)
//	checker.HasCapability(ctx, rbac.CapUnfilteredHTML) // true
//
// A context without a principal, or a principal with an unknown role, holds no
// capabilities.
package rbac
