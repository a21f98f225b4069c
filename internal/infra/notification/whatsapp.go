package notification

import (
	"fmt"
	"net/url"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

type whatsAppService struct{}

// NewWhatsAppService creates the wa.me deep link builder.
func NewWhatsAppService() service.WhatsAppService {
	return &whatsAppService{}
}

// OrderLink formats the order summary into a wa.me deep link. The customer
// taps it to open a prefilled chat with the business; nothing is sent from
// the server side.
func (s *whatsAppService) OrderLink(business *entity.Business, order *entity.Order) string {
	if business == nil || order == nil {
		return ""
	}

	phone := normalizePhone(business.WhatsAppPhone)
	if phone == "" {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Order %s\n", order.OrderNumber)
	for _, item := range order.Items {
		fmt.Fprintf(&b, "%dx %s - %s %s\n", item.Quantity, item.Name, item.Total.StringFixed(2), business.Currency)
	}
	if order.Discount.IsPositive() {
		fmt.Fprintf(&b, "Discount (%s): -%s %s\n", order.CouponCode, order.Discount.StringFixed(2), business.Currency)
	}
	if order.ShippingCost.IsPositive() {
		fmt.Fprintf(&b, "Shipping: %s %s\n", order.ShippingCost.StringFixed(2), business.Currency)
	}
	fmt.Fprintf(&b, "Total: %s %s\n", order.Total.StringFixed(2), business.Currency)
	fmt.Fprintf(&b, "Name: %s", order.Customer.Name)
	if order.Customer.Address != "" {
		fmt.Fprintf(&b, "\nAddress: %s", order.Customer.Address)
	}
	if order.Customer.Note != "" {
		fmt.Fprintf(&b, "\nNote: %s", order.Customer.Note)
	}

	return "https://wa.me/" + phone + "?text=" + url.QueryEscape(b.String())
}

// normalizePhone strips formatting characters so the number fits the wa.me
// path segment (digits only, international format without '+').
func normalizePhone(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	return digits.String()
}
