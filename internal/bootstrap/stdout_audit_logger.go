package bootstrap

import (
	"context"

	"go.uber.org/zap"
)

// StdoutAuditLogger writes audit entries through the global zap logger.
// Good enough for single-node deployments; swap for a persistent sink
// when compliance needs a queryable trail.
type StdoutAuditLogger struct{}

func NewStdoutAuditLogger() *StdoutAuditLogger {
	return &StdoutAuditLogger{}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	zap.L().Named("audit").Info(entry.Action,
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	)
}
