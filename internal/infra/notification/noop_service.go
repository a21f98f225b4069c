package notification

import (
	"context"
	"log/slog"

	"storefront/internal/domain/service"
)

type noopService struct {
	logger *slog.Logger
}

// NewNoopService returns a NotificationService that only logs. Used when
// Firebase is not configured, e.g. local development.
func NewNoopService(logger *slog.Logger) service.NotificationService {
	return &noopService{logger: logger}
}

func (s *noopService) NotifyTopic(ctx context.Context, topic, title, body string, data map[string]string) error {
	if s.logger != nil {
		s.logger.LogAttrs(ctx, slog.LevelDebug, "push notification skipped (no provider configured)",
			slog.String("topic", topic),
			slog.String("title", title),
		)
	}

	return nil
}
