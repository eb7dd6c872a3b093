package models

import "github.com/shopspring/decimal"

// OrderItem snapshots a line at the moment of sale. UnitPrice is the catalog
// price at purchase time; rows are never updated after the order is placed.
type OrderItem struct {
	ID         int64           `gorm:"column:id;primaryKey;autoIncrement"`
	OrderID    int64           `gorm:"column:order_id;not null"`
	ProductID  int64           `gorm:"column:product_id;not null"`
	Quantity   int             `gorm:"column:quantity;not null"`
	UnitPrice  decimal.Decimal `gorm:"column:unit_price;type:numeric(10,2);not null"`
	TotalPrice decimal.Decimal `gorm:"column:total_price;type:numeric(10,2);not null"`
}
