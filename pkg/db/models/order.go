package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stan-9/fashion-sales-backend/pkg/enums"
)

// Order is a sales order header. Monetary fields satisfy
// total = subtotal - discount + tax, with tax computed on the discounted base.
type Order struct {
	ID            int64               `gorm:"column:id;primaryKey;autoIncrement"`
	CustomerID    *int64              `gorm:"column:customer_id"`
	OrderNumber   string              `gorm:"column:order_number;not null;uniqueIndex"`
	OrderDate     time.Time           `gorm:"column:order_date;autoCreateTime"`
	Status        enums.OrderStatus   `gorm:"column:status;not null;default:'pending'"`
	Subtotal      decimal.Decimal     `gorm:"column:subtotal;type:numeric(10,2);not null"`
	Tax           decimal.Decimal     `gorm:"column:tax;type:numeric(10,2);not null"`
	Discount      decimal.Decimal     `gorm:"column:discount;type:numeric(10,2);not null"`
	Total         decimal.Decimal     `gorm:"column:total;type:numeric(10,2);not null"`
	PaymentStatus enums.PaymentStatus `gorm:"column:payment_status;not null;default:'pending'"`
	PaymentMethod *string             `gorm:"column:payment_method"`
	Notes         *string             `gorm:"column:notes"`
	Items         []OrderItem         `gorm:"foreignKey:OrderID"`
	CreatedAt     time.Time           `gorm:"column:created_at;autoCreateTime"`
}
