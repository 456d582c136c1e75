package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"jobboard/internal/domain"
	"jobboard/internal/dto"
	"jobboard/internal/service"
)

func TestCreateCategoryDerivesSlug(t *testing.T) {
	st := newTestStore(t)
	svc := service.NewCatalogService(st)
	staff := seedStaff(t, st)

	cat, err := svc.CreateCategory(context.Background(), staff, dto.CreateCategoryRequest{Name: "Data & AI"})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	if cat.Slug != "data-ai" {
		t.Fatalf("slug = %q, want data-ai", cat.Slug)
	}
}

func TestUpdateCategoryKeepsSlug(t *testing.T) {
	st := newTestStore(t)
	svc := service.NewCatalogService(st)
	staff := seedStaff(t, st)
	ctx := context.Background()

	cat, err := svc.CreateCategory(ctx, staff, dto.CreateCategoryRequest{Name: "Engineering"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	updated, err := svc.UpdateCategory(ctx, staff, cat.ID, dto.UpdateCategoryRequest{Name: strptr("Software Engineering")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Software Engineering" {
		t.Fatalf("name = %q", updated.Name)
	}
	if updated.Slug != "engineering" {
		t.Fatalf("rename must not regenerate slug, got %q", updated.Slug)
	}
}

func TestCreateCategoryDuplicate(t *testing.T) {
	st := newTestStore(t)
	svc := service.NewCatalogService(st)
	staff := seedStaff(t, st)
	ctx := context.Background()

	if _, err := svc.CreateCategory(ctx, staff, dto.CreateCategoryRequest{Name: "Design"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	// Same derived slug counts as a duplicate even under a different name.
	_, err := svc.CreateCategory(ctx, staff, dto.CreateCategoryRequest{Name: "design!"})
	if !errors.Is(err, domain.ErrDuplicateCategory) {
		t.Fatalf("want ErrDuplicateCategory, got %v", err)
	}
}

func TestCategoryWritesRequireStaff(t *testing.T) {
	st := newTestStore(t)
	svc := service.NewCatalogService(st)
	employer := seedEmployer(t, st)

	_, err := svc.CreateCategory(context.Background(), employer, dto.CreateCategoryRequest{Name: "Ops"})
	if !errors.Is(err, domain.ErrPermissionDenied) {
		t.Fatalf("want ErrPermissionDenied, got %v", err)
	}
}

func TestCreateTagLengthBound(t *testing.T) {
	st := newTestStore(t)
	svc := service.NewCatalogService(st)
	staff := seedStaff(t, st)
	ctx := context.Background()

	if _, err := svc.CreateTag(ctx, staff, dto.CreateTagRequest{Name: strings.Repeat("x", 50)}); err != nil {
		t.Fatalf("50-char tag should pass: %v", err)
	}
	_, err := svc.CreateTag(ctx, staff, dto.CreateTagRequest{Name: strings.Repeat("y", 51)})
	if !errors.Is(err, domain.ErrFieldTooLong) {
		t.Fatalf("want ErrFieldTooLong, got %v", err)
	}
}

func TestCreateTagDuplicate(t *testing.T) {
	st := newTestStore(t)
	svc := service.NewCatalogService(st)
	staff := seedStaff(t, st)
	ctx := context.Background()

	if _, err := svc.CreateTag(ctx, staff, dto.CreateTagRequest{Name: "golang"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := svc.CreateTag(ctx, staff, dto.CreateTagRequest{Name: "golang"})
	if !errors.Is(err, domain.ErrDuplicateTag) {
		t.Fatalf("want ErrDuplicateTag, got %v", err)
	}
}

func TestCompanyProfileWrongRoleRejected(t *testing.T) {
	st := newTestStore(t)
	svc := service.NewCatalogService(st)
	applicant := seedApplicant(t, st)
	ctx := context.Background()

	if _, err := svc.ListCompanyProfiles(ctx, applicant); !errors.Is(err, domain.ErrPermissionDenied) {
		t.Fatalf("list: want ErrPermissionDenied, got %v", err)
	}
	_, err := svc.CreateCompanyProfile(ctx, applicant, dto.CreateCompanyProfileRequest{
		CompanyName: "Acme", Location: "Berlin",
	})
	if !errors.Is(err, domain.ErrPermissionDenied) {
		t.Fatalf("create: want ErrPermissionDenied, got %v", err)
	}
}

func TestCompanyProfileOnePerUser(t *testing.T) {
	st := newTestStore(t)
	svc := service.NewCatalogService(st)
	employer := seedEmployer(t, st)
	ctx := context.Background()

	req := dto.CreateCompanyProfileRequest{CompanyName: "Acme", Location: "Berlin"}
	if _, err := svc.CreateCompanyProfile(ctx, employer, req); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.CreateCompanyProfile(ctx, employer, req)
	if !errors.Is(err, domain.ErrDuplicateCompanyProfile) {
		t.Fatalf("want ErrDuplicateCompanyProfile, got %v", err)
	}
}

func TestCompanyProfileForeignRowInvisible(t *testing.T) {
	st := newTestStore(t)
	svc := service.NewCatalogService(st)
	owner := seedEmployer(t, st)
	other := seedEmployer(t, st)
	ctx := context.Background()

	prof, err := svc.CreateCompanyProfile(ctx, owner, dto.CreateCompanyProfileRequest{
		CompanyName: "Acme", Location: "Berlin",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.GetCompanyProfile(ctx, other, prof.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("foreign company profile should be invisible, got %v", err)
	}
}

func TestDeleteCategoryDetachesJobs(t *testing.T) {
	st := newTestStore(t)
	svc := service.NewCatalogService(st)
	staff := seedStaff(t, st)
	employer := seedEmployer(t, st)
	ctx := context.Background()

	cat, err := svc.CreateCategory(ctx, staff, dto.CreateCategoryRequest{Name: "Backend"})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	job := seedJob(t, st, employer.ID)
	job.CategoryID = &cat.ID
	if err := st.Jobs().Update(ctx, job); err != nil {
		t.Fatalf("attach category: %v", err)
	}

	if err := svc.DeleteCategory(ctx, staff, cat.ID); err != nil {
		t.Fatalf("delete category: %v", err)
	}
	got, err := st.Jobs().GetByID(ctx, job.ID)
	if err != nil {
		t.Fatalf("reload job: %v", err)
	}
	if got.CategoryID != nil {
		t.Fatal("job should survive with a nulled category reference")
	}
}
