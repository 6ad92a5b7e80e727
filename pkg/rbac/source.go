package rbac

import (
	"context"
	"maps"
	"slices"
	"sync"
)

// RoleSource provides role definitions.
type RoleSource interface {
	Load(ctx context.Context) (map[string]Role, error)
}

type inMemRoleSource struct {
	mu    sync.RWMutex
	roles map[string]Role
}

// NewInMemRoleSource returns a RoleSource over a copy of roles.
func NewInMemRoleSource(roles map[string]Role) RoleSource {
	return &inMemRoleSource{roles: cloneRoles(roles)}
}

func (s *inMemRoleSource) Load(context.Context) (map[string]Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneRoles(s.roles), nil
}

func cloneRoles(roles map[string]Role) map[string]Role {
	out := make(map[string]Role, len(roles))
	for name, role := range roles {
		out[name] = Role{
			Capabilities: slices.Clone(role.Capabilities),
			Inherits:     slices.Clone(role.Inherits),
		}
	}
	return out
}

// RoleSourceFunc adapts a function to the RoleSource interface.
type RoleSourceFunc func(ctx context.Context) (map[string]Role, error)

func (f RoleSourceFunc) Load(ctx context.Context) (map[string]Role, error) {
	return f(ctx)
}

// roleNames returns the sorted role names.
func roleNames(roles map[string]Role) []string {
	return slices.Sorted(maps.Keys(roles))
}
