package registry

import "slices"

// Association is the rule configuration of one option. Exactly one of Rule
// and Fields is set.
type Association struct {
	// Rule applies to the whole option value.
	Rule string
	// Fields maps record field names to rule names, in registration order.
	Fields []FieldRule
}

// FieldRule binds one record field to a rule.
type FieldRule struct {
	Field string
	Rule  string
}

// Structured reports whether the association targets record fields.
func (a Association) Structured() bool {
	return len(a.Fields) > 0
}

// RuleNames returns every rule name the association refers to.
func (a Association) RuleNames() []string {
	if !a.Structured() {
		return []string{a.Rule}
	}
	names := make([]string, 0, len(a.Fields))
	for _, f := range a.Fields {
		names = append(names, f.Rule)
	}
	return names
}

func (a Association) clone() Association {
	return Association{Rule: a.Rule, Fields: slices.Clone(a.Fields)}
}

// setField overwrites the rule of an existing field in place, keeping its
// position, or appends a new one.
func (a *Association) setField(field, rule string) {
	for i := range a.Fields {
		if a.Fields[i].Field == field {
			a.Fields[i].Rule = rule
			return
		}
	}
	a.Fields = append(a.Fields, FieldRule{Field: field, Rule: rule})
}
