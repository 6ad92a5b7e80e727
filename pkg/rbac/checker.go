package rbac

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/optguard/pkg/logger"
)

// CapabilityChecker answers HasCapability for the principal in the context.
// It satisfies rules.CapabilityChecker.
type CapabilityChecker struct {
	auth Authorizer
	log  *slog.Logger
}

// CheckerOption configures a CapabilityChecker.
type CheckerOption func(*CapabilityChecker)

// WithCheckerLogger sets the logger used to record denied checks.
func WithCheckerLogger(log *slog.Logger) CheckerOption {
	return func(c *CapabilityChecker) {
		if log != nil {
			c.log = log
		}
	}
}

func NewCapabilityChecker(auth Authorizer, opts ...CheckerOption) *CapabilityChecker {
	c := &CapabilityChecker{auth: auth, log: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HasCapability reports whether the principal in ctx holds capability.
// Denials are logged at debug level.
func (c *CapabilityChecker) HasCapability(ctx context.Context, capability string) bool {
	if c.auth == nil {
		return false
	}

	err := c.auth.CanFromContext(ctx, capability)
	if err == nil {
		return true
	}

	attrs := []any{logger.Capability(capability), logger.Error(err)}
	if p, ok := PrincipalFromContext(ctx); ok {
		attrs = append(attrs, logger.PrincipalID(p.ID), logger.Role(p.Role))
	}
	c.log.DebugContext(ctx, "capability denied", attrs...)
	return false
}
