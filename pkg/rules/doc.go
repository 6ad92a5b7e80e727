// Package rules defines the catalog of named sanitization rules applied to
// option values before they are persisted.
//
// Every rule implements the same two-argument contract:
//
//	Apply(ctx, candidate, current any) any
//
// candidate is the value about to be stored and current is the value stored
// now. Rules that only transform the candidate ignore current. The eight
// default rules are:
//
//	one_zero                  truthiness coerced to 1 or 0
//	absint                    non-negative integer
//	no_html                   all markup removed
//	safe_html                 post-content allow-list
//	url                       URL escaped for storage, unsafe schemes emptied
//	email_address             sanitized address or ""
//	requires_unfiltered_html  candidate if the principal may post unfiltered
//	                          markup, otherwise current
//	unfiltered_or_safe_html   candidate if the principal may post unfiltered
//	                          markup, otherwise safe_html(candidate)
//
// A Catalog exposes the defaults through an extension point. Extensions
// receive a copy of the rule set and return the set to use, so they can add
// rules or override defaults by reusing a name:
//
//	catalog := rules.NewCatalog(checker)
//	catalog.Extend(func(ctx context.Context, set rules.Set) rules.Set {
//	    set["slug"] = rules.Text(slug.Make)
//	    return set
//	}, hooks.DefaultPriority)
package rules
