package order

import (
	"time"

	"github.com/stan-9/fashion-sales-backend/pkg/db/models"
	"github.com/stan-9/fashion-sales-backend/pkg/enums"
)

// CreateOrderItemInput is one cart line. Unit prices are resolved from the
// catalog on the server, never taken from the client.
type CreateOrderItemInput struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,min=1"`
}

// CreateOrderInput is the payload accepted by the order creation endpoint.
type CreateOrderInput struct {
	CustomerID    *int64                 `json:"customer_id,omitempty"`
	Items         []CreateOrderItemInput `json:"items" validate:"required,min=1,dive"`
	Discount      float64                `json:"discount" validate:"gte=0"`
	PaymentMethod *string                `json:"payment_method,omitempty"`
	Notes         *string                `json:"notes,omitempty"`
}

// OrderItemDTO is one persisted order line.
type OrderItemDTO struct {
	ID         int64   `json:"id"`
	ProductID  int64   `json:"product_id"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

// OrderDTO is the order payload returned to clients.
type OrderDTO struct {
	ID            int64               `json:"id"`
	CustomerID    *int64              `json:"customer_id,omitempty"`
	OrderNumber   string              `json:"order_number"`
	OrderDate     time.Time           `json:"order_date"`
	Status        enums.OrderStatus   `json:"status"`
	Subtotal      float64             `json:"subtotal"`
	Tax           float64             `json:"tax"`
	Discount      float64             `json:"discount"`
	Total         float64             `json:"total"`
	PaymentStatus enums.PaymentStatus `json:"payment_status"`
	PaymentMethod *string             `json:"payment_method,omitempty"`
	Notes         *string             `json:"notes,omitempty"`
	Items         []OrderItemDTO      `json:"items,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
}

// OrderListRow joins the customer identity onto the order header.
type OrderListRow struct {
	models.Order
	FirstName     *string `gorm:"column:first_name"`
	LastName      *string `gorm:"column:last_name"`
	CustomerEmail *string `gorm:"column:customer_email"`
}

// OrderListItemDTO is one row of the order listing.
type OrderListItemDTO struct {
	OrderDTO
	FirstName     *string `json:"first_name,omitempty"`
	LastName      *string `json:"last_name,omitempty"`
	CustomerEmail *string `json:"customer_email,omitempty"`
}

// ListOrdersInput carries the supported listing filters.
type ListOrdersInput struct {
	Status     *enums.OrderStatus
	CustomerID *int64
}

// NewOrderDTO maps a persisted order (and any loaded items) onto the DTO.
func NewOrderDTO(o *models.Order) *OrderDTO {
	if o == nil {
		return nil
	}
	dto := &OrderDTO{
		ID:            o.ID,
		CustomerID:    o.CustomerID,
		OrderNumber:   o.OrderNumber,
		OrderDate:     o.OrderDate,
		Status:        o.Status,
		Subtotal:      o.Subtotal.InexactFloat64(),
		Tax:           o.Tax.InexactFloat64(),
		Discount:      o.Discount.InexactFloat64(),
		Total:         o.Total.InexactFloat64(),
		PaymentStatus: o.PaymentStatus,
		PaymentMethod: o.PaymentMethod,
		Notes:         o.Notes,
		CreatedAt:     o.CreatedAt,
	}
	for _, item := range o.Items {
		dto.Items = append(dto.Items, OrderItemDTO{
			ID:         item.ID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice.InexactFloat64(),
			TotalPrice: item.TotalPrice.InexactFloat64(),
		})
	}
	return dto
}

// NewOrderListItemDTO maps a joined listing row.
func NewOrderListItemDTO(row *OrderListRow) *OrderListItemDTO {
	if row == nil {
		return nil
	}
	return &OrderListItemDTO{
		OrderDTO:      *NewOrderDTO(&row.Order),
		FirstName:     row.FirstName,
		LastName:      row.LastName,
		CustomerEmail: row.CustomerEmail,
	}
}
