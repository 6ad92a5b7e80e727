// Package sanitizer provides the stateless value transforms behind the option
// sanitization rules.
//
// The helpers fall into three groups:
//
//   - Coercion: ToString, Truthy, OneZero, ToInt and AbsInt convert loosely
//     typed option values (strings from forms, float64 from JSON, bools)
//     using the host platform's conversion rules.
//
//   - Markup: StripTags removes every tag, SafeHTML keeps a post-content
//     allow-list. Both are backed by bluemonday policies and are idempotent.
//
//   - Format: EscURL and SanitizeEmail normalise URLs and e-mail addresses
//     for storage, returning an empty string when the input cannot be made
//     safe.
//
// None of the helpers returns an error; each falls back to a safe result.
// All of them are safe for concurrent use.
package sanitizer
