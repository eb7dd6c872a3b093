package order

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stan-9/fashion-sales-backend/pkg/db/models"
	"github.com/stan-9/fashion-sales-backend/pkg/enums"
)

func TestRepositoryCreateAndFindByIDPreloadsItems(t *testing.T) {
	client := openTestClient(t)
	repo := NewRepository(client.DB())
	ctx := context.Background()

	p := seedOrderProduct(t, client.DB(), "Wool Coat", "120.00")

	header := &models.Order{
		OrderNumber:   "ORD-1000",
		Status:        enums.OrderStatusPending,
		PaymentStatus: enums.PaymentStatusPending,
		Subtotal:      decimal.RequireFromString("240.00"),
		Tax:           decimal.RequireFromString("19.20"),
		Discount:      decimal.Zero,
		Total:         decimal.RequireFromString("259.20"),
	}
	require.NoError(t, repo.CreateHeader(ctx, header))
	require.NotZero(t, header.ID)

	items := []models.OrderItem{{
		OrderID:    header.ID,
		ProductID:  p.ID,
		Quantity:   2,
		UnitPrice:  decimal.RequireFromString("120.00"),
		TotalPrice: decimal.RequireFromString("240.00"),
	}}
	require.NoError(t, repo.CreateItems(ctx, items))

	found, err := repo.FindByID(ctx, header.ID)
	require.NoError(t, err)
	assert.Equal(t, "ORD-1000", found.OrderNumber)
	require.Len(t, found.Items, 1)
	assert.Equal(t, p.ID, found.Items[0].ProductID)
	assert.True(t, found.Items[0].TotalPrice.Equal(decimal.RequireFromString("240.00")))
}

func TestRepositoryCreateItemsRejectsMissingHeader(t *testing.T) {
	client := openTestClient(t)
	repo := NewRepository(client.DB())
	ctx := context.Background()

	p := seedOrderProduct(t, client.DB(), "Silk Scarf", "25.00")

	err := repo.CreateItems(ctx, []models.OrderItem{{
		OrderID:    9999,
		ProductID:  p.ID,
		Quantity:   1,
		UnitPrice:  decimal.RequireFromString("25.00"),
		TotalPrice: decimal.RequireFromString("25.00"),
	}})
	assert.Error(t, err)

	assert.NoError(t, repo.CreateItems(ctx, nil))
}
