package rbac

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

// Authorizer answers capability questions for roles.
type Authorizer interface {
	// Can returns nil when role holds capability, directly or inherited.
	Can(role, capability string) error
	// CanAny returns nil when role holds at least one of capabilities.
	CanAny(role string, capabilities ...string) error
	// CanFromContext checks the role of the principal stored in ctx.
	CanFromContext(ctx context.Context, capability string) error
	// VerifyRole returns ErrInvalidRole for an unknown role.
	VerifyRole(role string) error
	// Roles returns role names ordered by inheritance depth, base roles first.
	Roles() []string
}

type authorizer struct {
	// resolved holds every role's effective capabilities. Read-only after
	// construction.
	resolved map[string][]string
	ordered  []string
}

// NewAuthorizer loads roles from source and resolves inheritance once.
func NewAuthorizer(ctx context.Context, source RoleSource) (Authorizer, error) {
	roles, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}
	if roles == nil {
		roles = make(map[string]Role)
	}

	depths, err := inheritanceDepths(roles)
	if err != nil {
		return nil, err
	}

	a := &authorizer{
		resolved: make(map[string][]string, len(roles)),
		ordered:  roleNames(roles),
	}
	for name := range roles {
		a.resolved[name] = normalize(collect(name, roles, make(map[string]bool)))
	}
	slices.SortStableFunc(a.ordered, func(x, y string) int {
		return depths[x] - depths[y]
	})
	return a, nil
}

func (a *authorizer) Can(role, capability string) error {
	held, ok := a.resolved[role]
	if !ok {
		return ErrInvalidRole
	}
	if !matchesAny(held, capability) {
		return ErrMissingCapability
	}
	return nil
}

func (a *authorizer) CanAny(role string, capabilities ...string) error {
	held, ok := a.resolved[role]
	if !ok {
		return ErrInvalidRole
	}
	if len(capabilities) == 0 {
		return nil
	}
	for _, c := range capabilities {
		if matchesAny(held, c) {
			return nil
		}
	}
	return ErrMissingCapability
}

func (a *authorizer) CanFromContext(ctx context.Context, capability string) error {
	p, ok := PrincipalFromContext(ctx)
	if !ok {
		return errors.Join(ErrPrincipalNotInContext, ErrMissingCapability)
	}
	return a.Can(p.Role, capability)
}

func (a *authorizer) VerifyRole(role string) error {
	if _, ok := a.resolved[role]; !ok {
		return ErrInvalidRole
	}
	return nil
}

func (a *authorizer) Roles() []string {
	return slices.Clone(a.ordered)
}

// collect gathers direct and inherited capabilities. Unknown inherited roles
// contribute nothing.
func collect(name string, roles map[string]Role, seen map[string]bool) []string {
	if seen[name] {
		return nil
	}
	seen[name] = true

	role, ok := roles[name]
	if !ok {
		return nil
	}
	out := slices.Clone(role.Capabilities)
	for _, parent := range role.Inherits {
		out = append(out, collect(parent, roles, seen)...)
	}
	return out
}

// inheritanceDepths returns the inheritance depth of every role and rejects
// cycles and chains deeper than MaxInheritanceDepth.
func inheritanceDepths(roles map[string]Role) (map[string]int, error) {
	depths := make(map[string]int, len(roles))
	onPath := make(map[string]bool)

	var visit func(name string) (int, error)
	visit = func(name string) (int, error) {
		if d, ok := depths[name]; ok {
			return d, nil
		}
		if onPath[name] {
			return 0, errors.Join(ErrCircularInheritance, fmt.Errorf("role %q inherits itself", name))
		}
		role, ok := roles[name]
		if !ok {
			return 0, nil
		}

		onPath[name] = true
		depth := 0
		for _, parent := range role.Inherits {
			d, err := visit(parent)
			if err != nil {
				return 0, err
			}
			depth = max(depth, d+1)
		}
		onPath[name] = false

		if depth > MaxInheritanceDepth {
			return 0, errors.Join(ErrInheritanceTooDeep,
				fmt.Errorf("role %q exceeds the maximum inheritance depth of %d", name, MaxInheritanceDepth))
		}
		depths[name] = depth
		return depth, nil
	}

	for _, name := range roleNames(roles) {
		if _, err := visit(name); err != nil {
			return nil, err
		}
	}
	return depths, nil
}
