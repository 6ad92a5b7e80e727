package rules_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/optguard/pkg/rules"
)

func allow(held ...string) rules.CapabilityChecker {
	return rules.CapabilityFunc(func(_ context.Context, capability string) bool {
		for _, c := range held {
			if c == capability {
				return true
			}
		}
		return false
	})
}

func TestText(t *testing.T) {
	t.Parallel()

	upper := rules.Text(strings.ToUpper)
	ctx := context.Background()

	assert.Equal(t, "ABC", upper.Apply(ctx, "abc", "old"))
	assert.Equal(t, "42", upper.Apply(ctx, 42, nil))
	assert.Equal(t, "", upper.Apply(ctx, []any{"a"}, nil))
	assert.Equal(t, "", upper.Apply(ctx, nil, "old"))
}

func TestRequiresCapability(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	tests := []struct {
		name     string
		checker  rules.CapabilityChecker
		expected any
	}{
		{name: "granted keeps candidate", checker: allow(rules.CapabilityUnfilteredHTML), expected: "<script>x</script>"},
		{name: "denied keeps current", checker: allow("edit_posts"), expected: "old"},
		{name: "nil checker denies", checker: nil, expected: "old"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rule := rules.RequiresCapability(tt.checker, rules.CapabilityUnfilteredHTML)
			assert.Equal(t, tt.expected, rule.Apply(ctx, "<script>x</script>", "old"))
		})
	}
}

func TestCapabilityOr(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fallback := rules.Text(strings.ToUpper)

	granted := rules.CapabilityOr(allow(rules.CapabilityUnfilteredHTML), rules.CapabilityUnfilteredHTML, fallback)
	denied := rules.CapabilityOr(allow(), rules.CapabilityUnfilteredHTML, fallback)

	assert.Equal(t, "raw", granted.Apply(ctx, "raw", "old"))
	assert.Equal(t, "RAW", denied.Apply(ctx, "raw", "old"))
}
