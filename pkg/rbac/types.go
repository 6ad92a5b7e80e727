package rbac

// MaxInheritanceDepth bounds role inheritance chains.
const MaxInheritanceDepth = 10

// Role is a set of capabilities plus the roles it inherits from.
type Role struct {
	Capabilities []string
	Inherits     []string
}

// Has reports whether the role grants capability directly. Inherited
// capabilities are not considered.
func (r Role) Has(capability string) bool {
	return matchesAny(r.Capabilities, capability)
}
