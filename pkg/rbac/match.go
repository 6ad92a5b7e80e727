package rbac

import (
	"slices"
	"strings"
)

const (
	// Wildcard grants every capability.
	Wildcard = "*"
	// GroupDelimiter separates capability groups ("options.manage").
	GroupDelimiter = "."
)

// Matches reports whether a granted pattern covers capability. A pattern
// matches itself, "*" matches everything, and "group.*" matches every
// capability below group.
func Matches(capability, pattern string) bool {
	if capability == pattern || pattern == Wildcard {
		return true
	}
	if prefix, ok := strings.CutSuffix(pattern, Wildcard); ok {
		prefix = strings.TrimSuffix(prefix, GroupDelimiter)
		return prefix != "" && strings.HasPrefix(capability, prefix+GroupDelimiter)
	}
	return false
}

func matchesAny(granted []string, capability string) bool {
	for _, pattern := range granted {
		if Matches(capability, pattern) {
			return true
		}
	}
	return false
}

// normalize drops empty entries and duplicates and sorts the result.
func normalize(capabilities []string) []string {
	out := make([]string, 0, len(capabilities))
	for _, c := range capabilities {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
