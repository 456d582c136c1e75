package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"jobboard/internal/domain"
	"jobboard/internal/observability/metrics"
	"jobboard/internal/observability/middleware"
	"jobboard/internal/service"
	"jobboard/internal/store"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// detail is the top-level error envelope.
func writeDetail(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"detail": msg})
}

// writeError classifies a service error into the HTTP contract: field-level
// validation detail as {"field": ["msg"]}, duplicates as non-field errors,
// permission failures as 403, scoped invisibility as 404, and storage
// uniqueness races that slipped past pre-flight as 409.
func writeError(w http.ResponseWriter, r *http.Request, resource string, err error) {
	reqID := middleware.RequestIDFromContext(r.Context())

	var fieldErr *service.FieldError
	switch {
	case errors.As(err, &fieldErr):
		writeJSON(w, http.StatusBadRequest, map[string][]string{fieldErr.Field: {fieldErr.Message}})
	case errors.Is(err, domain.ErrAlreadyApplied),
		errors.Is(err, domain.ErrInterviewExists),
		errors.Is(err, domain.ErrDuplicateCompanyProfile),
		errors.Is(err, domain.ErrDuplicateProfile):
		writeJSON(w, http.StatusBadRequest, map[string][]string{"non_field_errors": {upperFirst(err.Error()) + "."}})
	case errors.Is(err, domain.ErrPermissionDenied):
		metrics.AccessDeniedTotal.WithLabelValues(resource).Inc()
		slog.Warn("access denied", "resource", resource, "path", r.URL.Path, "request_id", reqID)
		writeDetail(w, http.StatusForbidden, "You do not have permission to perform this action.")
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, store.ErrRecordNotFound):
		writeDetail(w, http.StatusNotFound, "Not found.")
	case errors.Is(err, store.ErrDuplicateKey):
		writeDetail(w, http.StatusConflict, "Conflict: the record already exists.")
	default:
		slog.Error("request failed", "resource", resource, "error", err, "path", r.URL.Path, "request_id", reqID)
		writeDetail(w, http.StatusInternalServerError, "Internal server error.")
	}
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeDetail(w, http.StatusBadRequest, "Malformed request body.")
		return false
	}
	return true
}
