package controllers

import (
	"net/http"

	"github.com/stan-9/fashion-sales-backend/api/responses"
	insightsvc "github.com/stan-9/fashion-sales-backend/internal/insights"
	pkgerrors "github.com/stan-9/fashion-sales-backend/pkg/errors"
	"github.com/stan-9/fashion-sales-backend/pkg/logger"
)

// InsightReport serves the per-product sales, rating and forecast report.
func InsightReport(svc insightsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "insight service unavailable"))
			return
		}

		payload, err := svc.BuildPayload(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, payload)
	}
}
