package entity

import (
	"crypto/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the canonical order lifecycle state. The fastfood and
// e-commerce verticals use different vocabulary on the wire (see
// ParseOrderStatus / Display), but share this state machine:
//
//	pending -> preparing -> on_way -> delivered
//
// with cancelled reachable from any non-terminal state.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusOnWay     OrderStatus = "on_way"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// statusTransitions is the explicit allow-list of forward transitions.
// Backward moves are rejected rather than merely absent.
var statusTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:   {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusOnWay, StatusCancelled},
	StatusOnWay:     {StatusDelivered, StatusCancelled},
	StatusDelivered: {},
	StatusCancelled: {},
}

// statusAliases maps vertical-specific wire vocabulary to canonical statuses.
// E-commerce storefronts say "processing" and "shipped" where fastfood says
// "preparing" and "on_way".
var statusAliases = map[Vertical]map[string]OrderStatus{
	VerticalEcommerce: {
		"processing": StatusPreparing,
		"shipped":    StatusOnWay,
	},
}

// statusDisplay is the inverse of statusAliases for rendering.
var statusDisplay = map[Vertical]map[OrderStatus]string{
	VerticalEcommerce: {
		StatusPreparing: "processing",
		StatusOnWay:     "shipped",
	},
}

// ParseOrderStatus resolves a wire status string for the given vertical into
// a canonical status. Canonical names are always accepted; the vertical's
// aliases are accepted on top.
func ParseOrderStatus(v Vertical, raw string) (OrderStatus, bool) {
	if aliases, ok := statusAliases[v]; ok {
		if s, ok := aliases[raw]; ok {
			return s, true
		}
	}

	s := OrderStatus(raw)
	if _, ok := statusTransitions[s]; ok {
		return s, true
	}

	return "", false
}

// Display renders the status in the vertical's own vocabulary.
func (s OrderStatus) Display(v Vertical) string {
	if names, ok := statusDisplay[v]; ok {
		if name, ok := names[s]; ok {
			return name
		}
	}

	return string(s)
}

// CanTransitionTo reports whether moving to next is a legal transition.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// Terminal reports whether no further transitions are possible.
func (s OrderStatus) Terminal() bool {
	return len(statusTransitions[s]) == 0
}

// CustomerInfo is the contact block captured at checkout. Orders are placed
// by anonymous storefront visitors, so this is the only customer record.
type CustomerInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
	Email   string `json:"email,omitempty"`
	Note    string `json:"note,omitempty"`
}

// OrderItem is a denormalized line-item snapshot: name and price are copied
// from the product at purchase time and never follow later catalog edits.
type OrderItem struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Total     decimal.Decimal `json:"total"`
}

// StatusChange is one entry of an order's append-only status history.
type StatusChange struct {
	Status    OrderStatus `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
}

// Order is the aggregate written once by checkout and afterwards mutated only
// by status transitions (status, history, internal note, updatedAt).
type Order struct {
	ID            uuid.UUID       `json:"id"`
	BusinessID    uuid.UUID       `json:"business_id"`
	OrderNumber   string          `json:"order_number"`
	Customer      CustomerInfo    `json:"customer"`
	Items         []OrderItem     `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	ShippingCost  decimal.Decimal `json:"shipping_cost"`
	Discount      decimal.Decimal `json:"discount"`
	Total         decimal.Decimal `json:"total"`
	CouponID      *uuid.UUID      `json:"coupon_id,omitempty"`
	CouponCode    string          `json:"coupon_code,omitempty"`
	Status        OrderStatus     `json:"status"`
	// StatusDisplay is Status rendered in the business vertical's vocabulary
	// (see OrderStatus.Display). Derived on read, never persisted.
	StatusDisplay string         `json:"status_display,omitempty"`
	StatusHistory []StatusChange `json:"status_history"`
	DeliveryType  string         `json:"delivery_type,omitempty"` // fastfood: pickup|delivery
	PaymentMethod string         `json:"payment_method"`
	PaymentStatus string         `json:"payment_status"`
	InternalNote  string         `json:"internal_note,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// Subtotal sums line totals.
func SubtotalOf(items []OrderItem) decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Total)
	}

	return subtotal
}

// TotalOf derives the final charge: subtotal + shipping - discount.
func TotalOf(subtotal, shippingCost, discount decimal.Decimal) decimal.Decimal {
	return subtotal.Add(shippingCost).Sub(discount)
}

// AppendStatus records a transition: appends exactly one history entry and
// advances Status and UpdatedAt. Legality is the caller's concern.
func (o *Order) AppendStatus(status OrderStatus, now time.Time) {
	o.Status = status
	o.StatusHistory = append(o.StatusHistory, StatusChange{Status: status, Timestamp: now})
	o.UpdatedAt = now
}

const orderNumberAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

// NewOrderNumber builds a human-readable order number: date plus a random
// suffix. Practically unique per business, not globally guaranteed.
func NewOrderNumber(now time.Time) string {
	buf := make([]byte, 6)
	// rand.Read never fails on supported platforms.
	_, _ = rand.Read(buf)
	for i, b := range buf {
		buf[i] = orderNumberAlphabet[int(b)%len(orderNumberAlphabet)]
	}

	return "SF-" + now.Format("20060102") + "-" + string(buf)
}
