package service

import "context"

// NotificationService abstracts panel push notifications. Implementations are
// best-effort: checkout never fails because a push could not be delivered.
type NotificationService interface {
	// NotifyTopic sends a push notification to every panel device subscribed
	// to the given topic (one topic per business).
	NotifyTopic(ctx context.Context, topic, title, body string, data map[string]string) error
}
