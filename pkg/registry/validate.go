package registry

import (
	"context"
	"errors"

	"github.com/dmitrymomot/optguard/pkg/validator"
)

// Validate checks every association against the effective rule catalog. It
// returns validator.ValidationErrors joined with ErrInvalidAssociations, with
// one entry per option (or option.field) that names an unknown rule, and one
// for an empty option name. ErrUnknownRule is joined only when a rule name
// failed.
func (r *Registry) Validate(ctx context.Context) error {
	set := r.catalog.Set(ctx)

	var names, rules []validator.Rule
	for _, option := range r.Options() {
		if option == "" {
			names = append(names, validator.RequiredString("option", option))
		}
		assoc, _ := r.Lookup(option)
		if !assoc.Structured() {
			rules = append(rules, validator.KnownRule(option, assoc.Rule, set.Has))
			continue
		}
		for _, f := range assoc.Fields {
			rules = append(rules, validator.KnownRule(option+"."+f.Field, f.Rule, set.Has))
		}
	}

	err := validator.Apply(append(names, rules...)...)
	if err == nil {
		return nil
	}
	if validator.Apply(rules...) != nil {
		return errors.Join(ErrInvalidAssociations, ErrUnknownRule, err)
	}
	return errors.Join(ErrInvalidAssociations, err)
}
