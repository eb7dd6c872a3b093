package controllers

import (
	"net/http"

	"github.com/stan-9/fashion-sales-backend/api/responses"
	"github.com/stan-9/fashion-sales-backend/api/validators"
	customersvc "github.com/stan-9/fashion-sales-backend/internal/customers"
	pkgerrors "github.com/stan-9/fashion-sales-backend/pkg/errors"
	"github.com/stan-9/fashion-sales-backend/pkg/logger"
)

// CustomerList serves the customer directory with an optional search filter.
func CustomerList(svc customersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "customer service unavailable"))
			return
		}

		search := validators.SanitizeString(r.URL.Query().Get("search"), 200)

		customers, err := svc.ListCustomers(r.Context(), search)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, customers)
	}
}

// CustomerCreate registers a new customer record.
func CustomerCreate(svc customersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "customer service unavailable"))
			return
		}

		var payload customersvc.CreateCustomerInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		customer, err := svc.CreateCustomer(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, customer)
	}
}
