package service

import "storefront/internal/domain/entity"

// WhatsAppService builds wa.me deep links that open a prefilled order summary
// chat with the business. Formatting is pure; nothing is sent over the wire.
type WhatsAppService interface {
	// OrderLink formats the order into a wa.me deep link for the business's
	// WhatsApp number. Returns an empty string when the business has none.
	OrderLink(business *entity.Business, order *entity.Order) string
}
