package validator

import (
	"slices"
	"strings"
)

// RequiredString fails when value is empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: ValidationError{Field: field, Code: CodeRequired, Message: "field is required"},
	}
}

// OneOf fails unless value is one of allowed.
func OneOf(field, value string, allowed ...string) Rule {
	return Rule{
		Check: func() bool { return slices.Contains(allowed, value) },
		Error: ValidationError{
			Field:   field,
			Code:    CodeOneOf,
			Message: "must be one of: " + strings.Join(allowed, ", "),
			Value:   value,
		},
	}
}
