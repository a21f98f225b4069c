package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table. Customer contact fields are
// flattened; the status history is an append-only JSONB array.
type OrderModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BusinessID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_orders_business"`
	OrderNumber     string          `gorm:"type:varchar(30);not null;index"`
	CustomerName    string          `gorm:"type:varchar(100);not null"`
	CustomerPhone   string          `gorm:"type:varchar(30);not null"`
	CustomerAddress string          `gorm:"type:text"`
	CustomerEmail   string          `gorm:"type:varchar(255)"`
	CustomerNote    string          `gorm:"type:text"`
	Subtotal        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ShippingCost    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Discount        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Total           decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CouponID        *uuid.UUID      `gorm:"type:uuid"`
	CouponCode      string          `gorm:"type:varchar(50)"`
	Status          string          `gorm:"type:varchar(20);not null;index:idx_orders_status"`
	StatusHistory   []byte          `gorm:"type:jsonb;not null"`
	DeliveryType    string          `gorm:"type:varchar(20)"`
	PaymentMethod   string          `gorm:"type:varchar(30)"`
	PaymentStatus   string          `gorm:"type:varchar(20)"`
	InternalNote    string          `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Items []*OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table: denormalized name/price
// snapshots taken at purchase time.
type OrderItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Name      string          `gorm:"type:varchar(200);not null"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Quantity  int             `gorm:"not null"`
	Total     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
