package validators

import (
	"net/http"
	"strings"
	"time"

	pkgerrors "github.com/medihouse/medihouse-backend/pkg/errors"
)

// ParseQueryDate reads an optional YYYY-MM-DD query parameter.
func ParseQueryDate(r *http.Request, key string) (string, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return "", nil
	}
	if _, err := time.Parse("2006-01-02", raw); err != nil {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "date must be in YYYY-MM-DD format").WithDetails(map[string]any{"field": key})
	}
	return raw, nil
}
