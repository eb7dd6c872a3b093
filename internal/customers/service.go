package customer

import (
	"context"
	"fmt"
	"strings"

	"github.com/stan-9/fashion-sales-backend/pkg/db"
	"github.com/stan-9/fashion-sales-backend/pkg/db/models"
	pkgerrors "github.com/stan-9/fashion-sales-backend/pkg/errors"
)

// Service exposes customer directory operations.
type Service interface {
	ListCustomers(ctx context.Context, search string) ([]CustomerDTO, error)
	CreateCustomer(ctx context.Context, input CreateCustomerInput) (*CustomerDTO, error)
}

type service struct {
	repo *Repository
}

// NewService constructs a customer service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("customer repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListCustomers(ctx context.Context, search string) ([]CustomerDTO, error) {
	customers, err := s.repo.List(ctx, search)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list customers")
	}
	return FromModels(customers), nil
}

func (s *service) CreateCustomer(ctx context.Context, input CreateCustomerInput) (*CustomerDTO, error) {
	customer := &models.Customer{
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     input.Email,
		Phone:     input.Phone,
		Address:   input.Address,
		City:      input.City,
		State:     input.State,
		ZipCode:   input.ZipCode,
		Country:   input.Country,
	}
	if customer.FirstName == "" || customer.LastName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "first_name and last_name are required")
	}

	if _, err := s.repo.Create(ctx, customer); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create customer")
	}
	return FromModel(customer), nil
}
