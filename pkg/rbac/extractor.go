package rbac

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/optguard/pkg/logger"
)

// LoggerExtractor tags log records with the ID of the principal in the
// context, when there is one.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		p, ok := PrincipalFromContext(ctx)
		if !ok || p.ID == uuid.Nil {
			return slog.Attr{}, false
		}
		return logger.PrincipalID(p.ID.String()), true
	}
}
