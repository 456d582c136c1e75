package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobboard/internal/store"
)

// A duplicate-key error surfacing from storage means a concurrent create won
// the race after pre-flight passed; the client gets a conflict, not a 500.
func TestWriteErrorMapsDuplicateKeyToConflict(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/applications", nil)

	writeError(rec, req, "application", store.ErrDuplicateKey)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusConflict)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["detail"] != "Conflict: the record already exists." {
		t.Fatalf("detail = %q", body["detail"])
	}
}
