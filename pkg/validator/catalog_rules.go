package validator

import "fmt"

// KnownRule fails when name is not a rule in the catalog. exists is usually
// rules.Set.Has.
func KnownRule(field, name string, exists func(string) bool) Rule {
	return Rule{
		Check: func() bool {
			return name != "" && exists != nil && exists(name)
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeUnknownRule,
			Message: fmt.Sprintf("unknown sanitization rule %q", name),
			Value:   name,
		},
	}
}
