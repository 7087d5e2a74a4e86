package controllers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/medihouse/medihouse-backend/api/responses"
	stocksvc "github.com/medihouse/medihouse-backend/internal/stock"
	"github.com/medihouse/medihouse-backend/pkg/config"
	pkgerrors "github.com/medihouse/medihouse-backend/pkg/errors"
	"github.com/medihouse/medihouse-backend/pkg/logger"
)

// UploadStock ingests a multipart Excel file and applies absolute stock levels.
func UploadStock(svc stocksvc.Service, cfg config.UploadConfig, logg *logger.Logger) http.HandlerFunc {
	maxBytes := int64(cfg.MaxUploadMB) << 20

	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "stock service unavailable"))
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		if err := r.ParseMultipartForm(maxBytes); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "could not read upload"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "No file uploaded"))
			return
		}
		defer file.Close()

		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(header.Filename), "."))
		if ext != "xls" && ext != "xlsx" {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "Invalid file type. Please upload an Excel file (.xls or .xlsx)"))
			return
		}

		result, err := svc.ProcessUpload(r.Context(), file)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
