package token

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// AlertSink receives security signals raised by the rotation engine.
// Implementations must not block the caller for long.
type AlertSink interface {
	NotifyRefreshTokenReuse(ctx context.Context, accountID uuid.UUID)
}

// LogAlertSink reports reuse as a WARN log record.
type LogAlertSink struct {
	log *slog.Logger
}

// NewLogAlertSink creates the default alert sink.
func NewLogAlertSink(logger *slog.Logger) *LogAlertSink {
	return &LogAlertSink{log: logger.With("component", "security_alerts")}
}

func (s *LogAlertSink) NotifyRefreshTokenReuse(ctx context.Context, accountID uuid.UUID) {
	s.log.WarnContext(ctx, "refresh token reuse detected",
		slog.String("account_id", accountID.String()))
}
