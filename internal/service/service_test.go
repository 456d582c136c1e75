package service_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"jobboard/internal/domain"
	"jobboard/internal/store"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestStore opens a per-test in-memory database. The DSN is keyed on the
// test name so parallel packages never share state.
func newTestStore(t *testing.T) *store.Store {
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
	return st
}

func seedUser(t *testing.T, st *store.Store, role domain.Role, staff bool) domain.Identity {
	t.Helper()

	id := uuid.New()
	now := time.Now().UTC()
	err := st.Users().Create(context.Background(), &domain.User{
		ID:        id,
		Email:     fmt.Sprintf("%s@example.com", id),
		Username:  "u-" + id.String()[:8],
		Role:      role,
		IsActive:  true,
		IsStaff:   staff,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return domain.Identity{ID: id, Role: role, IsStaff: staff}
}

func seedEmployer(t *testing.T, st *store.Store) domain.Identity {
	return seedUser(t, st, domain.RoleEmployer, false)
}

func seedApplicant(t *testing.T, st *store.Store) domain.Identity {
	return seedUser(t, st, domain.RoleApplicant, false)
}

func seedStaff(t *testing.T, st *store.Store) domain.Identity {
	return seedUser(t, st, domain.RoleEmployer, true)
}

func seedJob(t *testing.T, st *store.Store, employerID domain.UserID) *domain.Job {
	t.Helper()

	now := time.Now().UTC()
	job := &domain.Job{
		ID:              uuid.New(),
		EmployerID:      employerID,
		Title:           "Backend Engineer",
		Description:     "Build things.",
		Location:        "Berlin",
		JobType:         domain.JobTypeFullTime,
		ExperienceLevel: domain.ExperienceMid,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := st.Jobs().Create(context.Background(), job); err != nil {
		t.Fatalf("seed job: %v", err)
	}
	return job
}

func seedApplication(t *testing.T, st *store.Store, jobID domain.JobID, applicantID domain.UserID) *domain.Application {
	t.Helper()

	now := time.Now().UTC()
	app := &domain.Application{
		ID:          uuid.New(),
		JobID:       jobID,
		ApplicantID: applicantID,
		Resume:      "resumes/" + uuid.NewString() + ".pdf",
		Status:      domain.StatusSubmitted,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := st.Applications().Create(context.Background(), app); err != nil {
		t.Fatalf("seed application: %v", err)
	}
	return app
}

func strptr(s string) *string { return &s }
