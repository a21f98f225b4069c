package notification

import (
	"net/url"
	"strings"
	"testing"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBusiness() *entity.Business {
	return &entity.Business{
		ID:            uuid.New(),
		Name:          "Burger Corner",
		Slug:          "burger-corner",
		Vertical:      entity.VerticalFastfood,
		WhatsAppPhone: "+90 (532) 123-45-67",
		Currency:      "TRY",
	}
}

func testOrder() *entity.Order {
	return &entity.Order{
		OrderNumber: "SF-20260829-ABC234",
		Customer: entity.CustomerInfo{
			Name:    "Ali Veli",
			Phone:   "+905551112233",
			Address: "Ataturk Cad. 1",
		},
		Items: []entity.OrderItem{
			{Name: "Cheeseburger", Price: decimal.NewFromInt(100), Quantity: 2, Total: decimal.NewFromInt(200)},
		},
		Subtotal:     decimal.NewFromInt(200),
		ShippingCost: decimal.NewFromInt(10),
		Discount:     decimal.NewFromInt(15),
		CouponCode:   "welcome10",
		Total:        decimal.NewFromInt(195),
	}
}

func TestWhatsAppService_OrderLink(t *testing.T) {
	svc := NewWhatsAppService()

	link := svc.OrderLink(testBusiness(), testOrder())
	require.NotEmpty(t, link)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "wa.me", parsed.Host)
	// Number is digits only, no '+' or separators
	assert.Equal(t, "/905321234567", parsed.Path)

	text := parsed.Query().Get("text")
	assert.Contains(t, text, "Order SF-20260829-ABC234")
	assert.Contains(t, text, "2x Cheeseburger - 200.00 TRY")
	assert.Contains(t, text, "Discount (welcome10): -15.00 TRY")
	assert.Contains(t, text, "Shipping: 10.00 TRY")
	assert.Contains(t, text, "Total: 195.00 TRY")
	assert.Contains(t, text, "Name: Ali Veli")
	assert.Contains(t, text, "Address: Ataturk Cad. 1")
}

func TestWhatsAppService_OrderLinkWithoutNumber(t *testing.T) {
	svc := NewWhatsAppService()

	business := testBusiness()
	business.WhatsAppPhone = ""

	assert.Empty(t, svc.OrderLink(business, testOrder()))
	assert.Empty(t, svc.OrderLink(nil, testOrder()))
	assert.Empty(t, svc.OrderLink(business, nil))
}

func TestWhatsAppService_OrderLinkOmitsZeroLines(t *testing.T) {
	svc := NewWhatsAppService()

	order := testOrder()
	order.Discount = decimal.Zero
	order.CouponCode = ""
	order.ShippingCost = decimal.Zero
	order.Total = decimal.NewFromInt(200)
	order.Customer.Address = ""

	link := svc.OrderLink(testBusiness(), order)
	parsed, err := url.Parse(link)
	require.NoError(t, err)

	text := parsed.Query().Get("text")
	assert.NotContains(t, text, "Discount")
	assert.NotContains(t, text, "Shipping")
	assert.NotContains(t, text, "Address")
	assert.True(t, strings.HasSuffix(text, "Name: Ali Veli"))
}
