package rbac

import "errors"

var (
	ErrInvalidRole           = errors.New("rbac.invalid_role")
	ErrMissingCapability     = errors.New("rbac.missing_capability")
	ErrPrincipalNotInContext = errors.New("rbac.principal_not_in_context")
	ErrCircularInheritance   = errors.New("rbac.circular_inheritance")
	ErrInheritanceTooDeep    = errors.New("rbac.inheritance_too_deep")
)
