package rbac_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/optguard/pkg/rbac"
	"github.com/dmitrymomot/optguard/pkg/rules"
)

var _ rules.CapabilityChecker = (*rbac.CapabilityChecker)(nil)

func TestCapabilityChecker(t *testing.T) {
	t.Parallel()

	auth := newAuthorizer(t, rbac.DefaultRoles())
	checker := rbac.NewCapabilityChecker(auth)

	tests := []struct {
		name     string
		ctx      context.Context
		expected bool
	}{
		{name: "administrator", ctx: rbac.WithPrincipal(context.Background(), rbac.Principal{ID: uuid.New(), Role: rbac.RoleAdministrator}), expected: true},
		{name: "editor", ctx: rbac.WithPrincipal(context.Background(), rbac.Principal{ID: uuid.New(), Role: rbac.RoleEditor}), expected: true},
		{name: "author", ctx: rbac.WithPrincipal(context.Background(), rbac.Principal{ID: uuid.New(), Role: rbac.RoleAuthor}), expected: false},
		{name: "contributor", ctx: rbac.WithPrincipal(context.Background(), rbac.Principal{ID: uuid.New(), Role: rbac.RoleContributor}), expected: false},
		{name: "subscriber", ctx: rbac.WithPrincipal(context.Background(), rbac.Principal{ID: uuid.New(), Role: rbac.RoleSubscriber}), expected: false},
		{name: "unknown role", ctx: rbac.WithPrincipal(context.Background(), rbac.Principal{ID: uuid.New(), Role: "ghost"}), expected: false},
		{name: "no principal", ctx: context.Background(), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, checker.HasCapability(tt.ctx, rbac.CapUnfilteredHTML))
		})
	}
}

func TestCapabilityChecker_LogsDenials(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	checker := rbac.NewCapabilityChecker(newAuthorizer(t, rbac.DefaultRoles()), rbac.WithCheckerLogger(log))

	id := uuid.New()
	ctx := rbac.WithPrincipal(context.Background(), rbac.Principal{ID: id, Role: rbac.RoleAuthor})
	assert.False(t, checker.HasCapability(ctx, rbac.CapUnfilteredHTML))

	out := buf.String()
	assert.Contains(t, out, "capability denied")
	assert.Contains(t, out, id.String())
	assert.Contains(t, out, rbac.CapUnfilteredHTML)
}

func TestCapabilityChecker_NilAuthorizer(t *testing.T) {
	t.Parallel()

	ctx := rbac.WithPrincipal(context.Background(), rbac.Principal{Role: rbac.RoleAdministrator})
	assert.False(t, rbac.NewCapabilityChecker(nil).HasCapability(ctx, rbac.CapUnfilteredHTML))
}

func TestRulesWithDefaultRoles(t *testing.T) {
	t.Parallel()

	checker := rbac.NewCapabilityChecker(newAuthorizer(t, rbac.DefaultRoles()))
	set := rules.Defaults(checker)

	editor := rbac.WithPrincipal(context.Background(), rbac.Principal{Role: rbac.RoleEditor})
	author := rbac.WithPrincipal(context.Background(), rbac.Principal{Role: rbac.RoleAuthor})

	rule := set[rules.UnfilteredOrSafeHTML]
	assert.Equal(t, "<script>x</script>", rule.Apply(editor, "<script>x</script>", nil))
	assert.Equal(t, "", rule.Apply(author, "<script>x</script>", nil))
}
