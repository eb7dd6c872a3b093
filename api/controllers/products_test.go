package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	productsvc "github.com/stan-9/fashion-sales-backend/internal/products"
	pkgerrors "github.com/stan-9/fashion-sales-backend/pkg/errors"
)

type stubProductService struct {
	listed  []productsvc.ProductDTO
	product *productsvc.ProductDTO
	err     error

	gotList   *productsvc.ListProductsInput
	gotDelete int64
}

func (s *stubProductService) ListProducts(ctx context.Context, input productsvc.ListProductsInput) ([]productsvc.ProductDTO, error) {
	s.gotList = &input
	return s.listed, s.err
}

func (s *stubProductService) GetProduct(ctx context.Context, id int64) (*productsvc.ProductDTO, error) {
	return s.product, s.err
}

func (s *stubProductService) CreateProduct(ctx context.Context, input productsvc.CreateProductInput) (*productsvc.ProductDTO, error) {
	return s.product, s.err
}

func (s *stubProductService) UpdateProduct(ctx context.Context, id int64, input productsvc.UpdateProductInput) (*productsvc.ProductDTO, error) {
	return s.product, s.err
}

func (s *stubProductService) DeleteProduct(ctx context.Context, id int64) error {
	s.gotDelete = id
	return s.err
}

func TestProductListParsesFilters(t *testing.T) {
	svc := &stubProductService{listed: []productsvc.ProductDTO{{ID: 1, Name: "Slim Jeans"}}}
	handler := ProductList(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/products?category=3&search=jeans&lowStock=true", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.gotList == nil {
		t.Fatal("expected list call")
	}
	if svc.gotList.CategoryID == nil || *svc.gotList.CategoryID != 3 {
		t.Fatalf("expected category filter 3 got %v", svc.gotList.CategoryID)
	}
	if svc.gotList.Search != "jeans" || !svc.gotList.LowStock {
		t.Fatalf("unexpected filters %+v", svc.gotList)
	}

	var envelope struct {
		Data []productsvc.ProductDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].Name != "Slim Jeans" {
		t.Fatalf("unexpected payload %+v", envelope.Data)
	}
}

func TestProductListRejectsBadCategory(t *testing.T) {
	handler := ProductList(&stubProductService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/products?category=abc", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestProductCreateReturns201(t *testing.T) {
	svc := &stubProductService{product: &productsvc.ProductDTO{ID: 7, Name: "Linen Shirt", Price: 39.99}}
	handler := ProductCreate(svc, nil)

	body := []byte(`{"name":"Linen Shirt","price":39.99}`)
	req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}
}

func TestProductCreateRejectsMissingName(t *testing.T) {
	handler := ProductCreate(&stubProductService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewReader([]byte(`{"price":10}`)))
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

func TestProductDeleteUsesPathParam(t *testing.T) {
	svc := &stubProductService{}
	router := chi.NewRouter()
	router.Delete("/api/products/{productId}", ProductDelete(svc, nil))

	req := httptest.NewRequest(http.MethodDelete, "/api/products/12", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.gotDelete != 12 {
		t.Fatalf("expected delete id 12 got %d", svc.gotDelete)
	}
}
