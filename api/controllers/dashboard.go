package controllers

import (
	"net/http"

	"github.com/stan-9/fashion-sales-backend/api/responses"
	dashboardsvc "github.com/stan-9/fashion-sales-backend/internal/dashboard"
	pkgerrors "github.com/stan-9/fashion-sales-backend/pkg/errors"
	"github.com/stan-9/fashion-sales-backend/pkg/logger"
)

// DashboardStats serves the headline counters for the admin dashboard.
func DashboardStats(svc dashboardsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}

		stats, err := svc.Stats(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, stats)
	}
}
