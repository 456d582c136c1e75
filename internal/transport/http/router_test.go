package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"jobboard/internal/authn"
	"jobboard/internal/domain"
	"jobboard/internal/observability/metrics"
	"jobboard/internal/service"
	"jobboard/internal/storage"
	"jobboard/internal/store"
	transporthttp "jobboard/internal/transport/http"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	// Curried metric vectors must be registered before any handler runs.
	metrics.MustRegister("jobboard-test")
	os.Exit(m.Run())
}

type fixture struct {
	srv      *httptest.Server
	store    *store.Store
	verifier *authn.Verifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	st := store.New(db)
	if err := st.AutoMigrate(); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	files, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatalf("file store: %v", err)
	}

	verifier := authn.NewVerifier("test-secret", "http://issuer.test")
	server := transporthttp.NewServer(transporthttp.Deps{
		Identity: service.NewIdentityService(st),
		Profiles: service.NewProfileService(st),
		Catalog:  service.NewCatalogService(st),
		Jobs:     service.NewJobService(st),
		Pipeline: service.NewPipelineService(st),
		Files:    files,
		Verifier: verifier,
	})

	srv := httptest.NewServer(transporthttp.NewRouter(server, ""))
	t.Cleanup(srv.Close)
	return &fixture{srv: srv, store: st, verifier: verifier}
}

func (f *fixture) seedIdentity(t *testing.T, role domain.Role, staff bool) (domain.Identity, string) {
	t.Helper()

	id := uuid.New()
	now := time.Now().UTC()
	err := f.store.Users().Create(context.Background(), &domain.User{
		ID:        id,
		Email:     id.String() + "@example.com",
		Role:      role,
		IsActive:  true,
		IsStaff:   staff,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	identity := domain.Identity{ID: id, Role: role, IsStaff: staff}
	token, err := f.verifier.Sign(identity, time.Hour)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return identity, token
}

func (f *fixture) do(t *testing.T, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()

	var payload *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		payload = bytes.NewReader(raw)
	} else {
		payload = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, f.srv.URL+path, payload)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := f.srv.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, buf.Bytes()
}

func TestPublicJobListNeedsNoToken(t *testing.T) {
	f := newFixture(t)

	resp, body := f.do(t, http.MethodGet, "/jobs", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /jobs = %d: %s", resp.StatusCode, body)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	f := newFixture(t)

	resp, body := f.do(t, http.MethodGet, "/applications", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("GET /applications without token = %d: %s", resp.StatusCode, body)
	}
	var env map[string]string
	if err := json.Unmarshal(body, &env); err != nil || env["detail"] == "" {
		t.Fatalf("401 should carry a detail envelope: %s", body)
	}
}

func TestCheckEmailEndpoint(t *testing.T) {
	f := newFixture(t)
	_, _ = f.seedIdentity(t, domain.RoleApplicant, false)

	resp, body := f.do(t, http.MethodPost, "/users/check-email", "", map[string]string{"email": "nobody@example.com"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("check-email = %d: %s", resp.StatusCode, body)
	}
	var out struct {
		Exists bool `json:"exists"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Exists {
		t.Fatal("unknown email reported as existing")
	}

	resp, body = f.do(t, http.MethodPost, "/users/check-email", "", map[string]string{"email": ""})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("blank email = %d: %s", resp.StatusCode, body)
	}
	var fieldErrs map[string][]string
	if err := json.Unmarshal(body, &fieldErrs); err != nil {
		t.Fatalf("decode field errors: %v", err)
	}
	if got := fieldErrs["email"]; len(got) != 1 || got[0] != "Email is required." {
		t.Fatalf("unexpected email error: %v", fieldErrs)
	}
}

func TestApplicationPipelineEndToEnd(t *testing.T) {
	f := newFixture(t)
	_, employerToken := f.seedIdentity(t, domain.RoleEmployer, false)
	_, applicantToken := f.seedIdentity(t, domain.RoleApplicant, false)

	resp, body := f.do(t, http.MethodPost, "/jobs", employerToken, map[string]any{
		"title":           "Go Engineer",
		"description":     "Services and tooling.",
		"location":        "Remote",
		"jobType":         "full_time",
		"experienceLevel": "senior",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create job = %d: %s", resp.StatusCode, body)
	}
	var job struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &job); err != nil {
		t.Fatalf("decode job: %v", err)
	}

	apply := map[string]any{
		"jobId":  job.ID,
		"resume": "resumes/cv.pdf",
		"status": "hired",
	}
	resp, body = f.do(t, http.MethodPost, "/applications", applicantToken, apply)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("apply = %d: %s", resp.StatusCode, body)
	}
	var app struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(body, &app); err != nil {
		t.Fatalf("decode application: %v", err)
	}
	if app.Status != "submitted" {
		t.Fatalf("status = %q, client-sent status must be ignored", app.Status)
	}

	resp, body = f.do(t, http.MethodPost, "/applications", applicantToken, apply)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("duplicate apply = %d: %s", resp.StatusCode, body)
	}
	var dupErr map[string][]string
	if err := json.Unmarshal(body, &dupErr); err != nil {
		t.Fatalf("decode duplicate error: %v", err)
	}
	if got := dupErr["non_field_errors"]; len(got) != 1 || got[0] != "You have already applied for this job." {
		t.Fatalf("unexpected duplicate message: %v", dupErr)
	}

	schedule := map[string]any{
		"applicationId": app.ID,
		"date":          time.Now().Add(72 * time.Hour).UTC().Format(time.RFC3339),
		"location":      "HQ, Room 2",
	}
	resp, body = f.do(t, http.MethodPost, "/interviews", employerToken, schedule)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("schedule interview = %d: %s", resp.StatusCode, body)
	}

	resp, body = f.do(t, http.MethodPost, "/interviews", employerToken, schedule)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("second interview = %d: %s", resp.StatusCode, body)
	}
	if err := json.Unmarshal(body, &dupErr); err != nil {
		t.Fatalf("decode interview error: %v", err)
	}
	if got := dupErr["non_field_errors"]; len(got) != 1 || got[0] != "This application already has an interview scheduled." {
		t.Fatalf("unexpected interview message: %v", dupErr)
	}
}

func TestWriteAsymmetry403Versus404(t *testing.T) {
	f := newFixture(t)
	owner, ownerToken := f.seedIdentity(t, domain.RoleEmployer, false)
	_, rivalToken := f.seedIdentity(t, domain.RoleEmployer, false)
	_, applicantToken := f.seedIdentity(t, domain.RoleApplicant, false)

	resp, body := f.do(t, http.MethodPost, "/jobs", ownerToken, map[string]any{
		"title":           "Owned Job",
		"description":     "d",
		"location":        "l",
		"jobType":         "contract",
		"experienceLevel": "mid",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create job = %d: %s", resp.StatusCode, body)
	}
	var job struct {
		ID         string `json:"id"`
		EmployerID string `json:"employerId"`
	}
	if err := json.Unmarshal(body, &job); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if job.EmployerID != owner.ID.String() {
		t.Fatalf("employer = %s, want %s", job.EmployerID, owner.ID)
	}

	patch := map[string]any{"title": "Hijacked"}

	// Wrong role: rejected outright.
	resp, body = f.do(t, http.MethodPatch, "/jobs/"+job.ID, applicantToken, patch)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("applicant patch = %d: %s", resp.StatusCode, body)
	}

	// Right role, wrong owner: invisible.
	resp, body = f.do(t, http.MethodPatch, "/jobs/"+job.ID, rivalToken, patch)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("rival patch = %d: %s", resp.StatusCode, body)
	}

	resp, _ = f.do(t, http.MethodPatch, "/jobs/"+job.ID, ownerToken, patch)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("owner patch = %d", resp.StatusCode)
	}
}

func TestCompanyProfilesRejectWrongRoleReads(t *testing.T) {
	f := newFixture(t)
	_, applicantToken := f.seedIdentity(t, domain.RoleApplicant, false)

	resp, body := f.do(t, http.MethodGet, "/company-profiles", applicantToken, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("applicant company-profile list = %d: %s", resp.StatusCode, body)
	}
}

func TestNotesListIsEmptyNotForbiddenForApplicants(t *testing.T) {
	f := newFixture(t)
	_, applicantToken := f.seedIdentity(t, domain.RoleApplicant, false)

	resp, body := f.do(t, http.MethodGet, "/notes", applicantToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("applicant notes list = %d: %s", resp.StatusCode, body)
	}
	var notes []json.RawMessage
	if err := json.Unmarshal(body, &notes); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(notes) != 0 {
		t.Fatalf("want empty list, got %d entries", len(notes))
	}
}

func TestUserSearchAndFullName(t *testing.T) {
	f := newFixture(t)
	_, staffToken := f.seedIdentity(t, domain.RoleEmployer, true)
	f.seedIdentity(t, domain.RoleApplicant, false)

	resp, body := f.do(t, http.MethodPost, "/users", staffToken, map[string]string{
		"email":     "nadia.karim@example.com",
		"firstName": "Nadia",
		"lastName":  "Karim",
		"role":      "applicant",
		"password":  "pw-123456",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create user = %d: %s", resp.StatusCode, body)
	}
	var created struct {
		FullName string `json:"fullName"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.FullName != "Nadia Karim" {
		t.Fatalf("fullName = %q", created.FullName)
	}

	resp, body = f.do(t, http.MethodGet, "/users?search=karim", staffToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("search = %d: %s", resp.StatusCode, body)
	}
	var users []struct {
		Email string `json:"email"`
	}
	if err := json.Unmarshal(body, &users); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(users) != 1 || users[0].Email != "nadia.karim@example.com" {
		t.Fatalf("search should match exactly the created user, got %+v", users)
	}
}

func TestHealthz(t *testing.T) {
	f := newFixture(t)

	resp, body := f.do(t, http.MethodGet, "/healthz", "", nil)
	if resp.StatusCode != http.StatusOK || string(body) != "ok" {
		t.Fatalf("healthz = %d %q", resp.StatusCode, body)
	}
}
