package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/stan-9/fashion-sales-backend/pkg/db"
	"github.com/stan-9/fashion-sales-backend/pkg/db/models"
	"github.com/stan-9/fashion-sales-backend/pkg/enums"
	pkgerrors "github.com/stan-9/fashion-sales-backend/pkg/errors"
)

// Service exposes order listing and creation.
type Service interface {
	ListOrders(ctx context.Context, input ListOrdersInput) ([]OrderListItemDTO, error)
	GetOrder(ctx context.Context, id int64) (*OrderDTO, error)
	CreateOrder(ctx context.Context, input CreateOrderInput) (*OrderDTO, error)
}

type catalogReader interface {
	FindActiveByIDs(ctx context.Context, ids []int64) (map[int64]models.Product, error)
}

type customerReader interface {
	FindByID(ctx context.Context, id int64) (*models.Customer, error)
}

type service struct {
	repo      *Repository
	dbClient  *db.Client
	catalog   catalogReader
	customers customerReader
	now       func() time.Time
}

// ServiceParams bundles the dependencies required to build an order service.
type ServiceParams struct {
	Repo      *Repository
	DB        *db.Client
	Catalog   catalogReader
	Customers customerReader
}

// NewService constructs an order service instance.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("order repository required")
	}
	if params.DB == nil {
		return nil, fmt.Errorf("db client required")
	}
	if params.Catalog == nil {
		return nil, fmt.Errorf("catalog reader required")
	}
	return &service{
		repo:      params.Repo,
		dbClient:  params.DB,
		catalog:   params.Catalog,
		customers: params.Customers,
		now:       time.Now,
	}, nil
}

func (s *service) ListOrders(ctx context.Context, input ListOrdersInput) ([]OrderListItemDTO, error) {
	rows, err := s.repo.List(ctx, input)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list orders")
	}
	out := make([]OrderListItemDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewOrderListItemDTO(&rows[i]))
	}
	return out, nil
}

func (s *service) GetOrder(ctx context.Context, id int64) (*OrderDTO, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load order")
	}
	return NewOrderDTO(order), nil
}

// CreateOrder resolves unit prices from the catalog, computes the money
// breakdown server-side, and writes the header plus all lines in a single
// transaction. A failed line insert rolls the whole order back and is
// reported with its own error code so operators can spot it.
func (s *service) CreateOrder(ctx context.Context, input CreateOrderInput) (*OrderDTO, error) {
	if len(input.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "at least one item is required")
	}
	if input.Discount < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "discount must be non-negative")
	}

	if input.CustomerID != nil && s.customers != nil {
		if _, err := s.customers.FindByID(ctx, *input.CustomerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load customer")
		}
	}

	ids := make([]int64, 0, len(input.Items))
	for _, item := range input.Items {
		if item.Quantity < 1 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
		}
		ids = append(ids, item.ProductID)
	}

	catalog, err := s.catalog.FindActiveByIDs(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load products")
	}

	lines := make([]PricingLine, 0, len(input.Items))
	items := make([]models.OrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		p, ok := catalog[item.ProductID]
		if !ok {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("product %d not available", item.ProductID))
		}
		qty := decimal.NewFromInt(int64(item.Quantity))
		lines = append(lines, PricingLine{Quantity: item.Quantity, UnitPrice: p.Price})
		items = append(items, models.OrderItem{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  p.Price,
			TotalPrice: p.Price.Mul(qty),
		})
	}

	pricing, err := CalculatePricing(lines, decimal.NewFromFloat(input.Discount).Round(2))
	if err != nil {
		return nil, err
	}

	now := s.now()
	order := &models.Order{
		CustomerID:    input.CustomerID,
		OrderNumber:   fmt.Sprintf("ORD-%d", now.UnixMilli()),
		OrderDate:     now,
		Status:        enums.OrderStatusPending,
		PaymentStatus: enums.PaymentStatusPending,
		Subtotal:      pricing.Subtotal.Round(2),
		Tax:           pricing.Tax.Round(2),
		Discount:      pricing.Discount.Round(2),
		Total:         pricing.Total.Round(2),
		PaymentMethod: input.PaymentMethod,
		Notes:         input.Notes,
	}

	err = s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.CreateHeader(ctx, order); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create order")
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := repo.CreateItems(ctx, items); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodePartialWrite, err, "create order items")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetOrder(ctx, order.ID)
}
