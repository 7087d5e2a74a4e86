package controllers

import (
	"net/http"
	"strconv"

	"github.com/medihouse/medihouse-backend/api/responses"
	"github.com/medihouse/medihouse-backend/api/validators"
	reportsvc "github.com/medihouse/medihouse-backend/internal/reports"
	pkgerrors "github.com/medihouse/medihouse-backend/pkg/errors"
	"github.com/medihouse/medihouse-backend/pkg/logger"
)

// SalesReport streams an xlsx download of order lines in the chosen range.
func SalesReport(svc reportsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "report service unavailable"))
			return
		}

		startDate, err := validators.ParseQueryDate(r, "startDate")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		endDate, err := validators.ParseQueryDate(r, "endDate")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		report, err := svc.Generate(r.Context(), startDate, endDate)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="`+report.Filename+`"`)
		w.Header().Set("Content-Length", strconv.Itoa(len(report.Content)))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(report.Content); err != nil && logg != nil {
			logg.Error(r.Context(), "report.write", err)
		}
	}
}
