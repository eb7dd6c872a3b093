package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	ordersvc "github.com/stan-9/fashion-sales-backend/internal/orders"
	"github.com/stan-9/fashion-sales-backend/pkg/enums"
	pkgerrors "github.com/stan-9/fashion-sales-backend/pkg/errors"
)

type stubOrderService struct {
	listed []ordersvc.OrderListItemDTO
	order  *ordersvc.OrderDTO
	err    error

	gotList   *ordersvc.ListOrdersInput
	gotCreate *ordersvc.CreateOrderInput
}

func (s *stubOrderService) ListOrders(ctx context.Context, input ordersvc.ListOrdersInput) ([]ordersvc.OrderListItemDTO, error) {
	s.gotList = &input
	return s.listed, s.err
}

func (s *stubOrderService) GetOrder(ctx context.Context, id int64) (*ordersvc.OrderDTO, error) {
	return s.order, s.err
}

func (s *stubOrderService) CreateOrder(ctx context.Context, input ordersvc.CreateOrderInput) (*ordersvc.OrderDTO, error) {
	s.gotCreate = &input
	return s.order, s.err
}

func TestOrderListParsesStatusFilter(t *testing.T) {
	svc := &stubOrderService{}
	handler := OrderList(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/orders?status=completed&customer_id=9", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.gotList == nil || svc.gotList.Status == nil || *svc.gotList.Status != enums.OrderStatusCompleted {
		t.Fatalf("expected completed filter got %+v", svc.gotList)
	}
	if svc.gotList.CustomerID == nil || *svc.gotList.CustomerID != 9 {
		t.Fatalf("expected customer filter 9 got %v", svc.gotList.CustomerID)
	}
}

func TestOrderListRejectsUnknownStatus(t *testing.T) {
	handler := OrderList(&stubOrderService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/orders?status=shipped", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestOrderCreatePassesItemsThrough(t *testing.T) {
	svc := &stubOrderService{order: &ordersvc.OrderDTO{ID: 1, OrderNumber: "ORD-1", Total: 64.78}}
	handler := OrderCreate(svc, nil)

	body := []byte(`{"customer_id":4,"items":[{"product_id":2,"quantity":2}],"discount":0}`)
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}
	if svc.gotCreate == nil || len(svc.gotCreate.Items) != 1 || svc.gotCreate.Items[0].ProductID != 2 {
		t.Fatalf("unexpected create input %+v", svc.gotCreate)
	}

	var envelope struct {
		Data ordersvc.OrderDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.OrderNumber != "ORD-1" {
		t.Fatalf("unexpected payload %+v", envelope.Data)
	}
}

func TestOrderCreateRejectsEmptyItems(t *testing.T) {
	handler := OrderCreate(&stubOrderService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader([]byte(`{"items":[]}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}

	var payload struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if payload.Error.Code != string(pkgerrors.CodeValidation) {
		t.Fatalf("unexpected code %s", payload.Error.Code)
	}
}
