package service

import (
	"context"
)

// OrderEvent is published after a checkout commits, for downstream consumers
// (analytics, panel live feeds) to process asynchronously.
type OrderEvent struct {
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
	BusinessID  string `json:"business_id"`
	Vertical    string `json:"vertical"`
	Total       string `json:"total"` // Decimal string, currency per business
	CouponCode  string `json:"coupon_code,omitempty"`
	ItemCount   int    `json:"item_count"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order-created event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
