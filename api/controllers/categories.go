package controllers

import (
	"net/http"

	"github.com/stan-9/fashion-sales-backend/api/responses"
	categorysvc "github.com/stan-9/fashion-sales-backend/internal/categories"
	pkgerrors "github.com/stan-9/fashion-sales-backend/pkg/errors"
	"github.com/stan-9/fashion-sales-backend/pkg/logger"
)

// CategoryList serves the category reference data.
func CategoryList(svc categorysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "category service unavailable"))
			return
		}

		categories, err := svc.ListCategories(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, categories)
	}
}
