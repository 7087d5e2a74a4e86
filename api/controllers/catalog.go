package controllers

import (
	"net/http"

	"github.com/medihouse/medihouse-backend/api/responses"
	catalogsvc "github.com/medihouse/medihouse-backend/internal/catalog"
	pkgerrors "github.com/medihouse/medihouse-backend/pkg/errors"
	"github.com/medihouse/medihouse-backend/pkg/logger"
)

// GetCatalog serves the storefront product listing grouped by manufacturer.
func GetCatalog(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		catalog, err := svc.GetCatalog(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		// the listing changes rarely; let CDNs keep it briefly
		w.Header().Set("Cache-Control", "public, s-maxage=300, stale-while-revalidate=600")
		responses.WriteSuccess(w, catalog)
	}
}
