package service_test

import (
	"context"
	"errors"
	"testing"

	"jobboard/internal/domain"
	"jobboard/internal/dto"
	"jobboard/internal/service"
	"jobboard/internal/store"
)

func validJobRequest() dto.CreateJobRequest {
	return dto.CreateJobRequest{
		Title:           "Platform Engineer",
		Description:     "Own the deployment pipeline.",
		Location:        "Remote",
		JobType:         "full_time",
		ExperienceLevel: "senior",
	}
}

func TestCreateJobWrongRoleRejected(t *testing.T) {
	st := newTestStore(t)
	svc := service.NewJobService(st)
	applicant := seedApplicant(t, st)

	_, err := svc.CreateJob(context.Background(), applicant, validJobRequest())
	if !errors.Is(err, domain.ErrPermissionDenied) {
		t.Fatalf("want ErrPermissionDenied, got %v", err)
	}
}

func TestCreateJobValidatesEnums(t *testing.T) {
	st := newTestStore(t)
	svc := service.NewJobService(st)
	employer := seedEmployer(t, st)
	ctx := context.Background()

	req := validJobRequest()
	req.JobType = "gig"
	_, err := svc.CreateJob(ctx, employer, req)
	if !errors.Is(err, domain.ErrInvalidChoice) {
		t.Fatalf("bad job type: want ErrInvalidChoice, got %v", err)
	}

	req = validJobRequest()
	req.ExperienceLevel = "principal"
	_, err = svc.CreateJob(ctx, employer, req)
	if !errors.Is(err, domain.ErrInvalidChoice) {
		t.Fatalf("bad level: want ErrInvalidChoice, got %v", err)
	}

	req = validJobRequest()
	req.Deadline = strptr("31-12-2026")
	_, err = svc.CreateJob(ctx, employer, req)
	var fe *service.FieldError
	if !errors.As(err, &fe) || fe.Field != "deadline" {
		t.Fatalf("bad deadline: want deadline field error, got %v", err)
	}
}

func TestPublicReadsActiveOnly(t *testing.T) {
	st := newTestStore(t)
	svc := service.NewJobService(st)
	employer := seedEmployer(t, st)
	ctx := context.Background()

	visible := seedJob(t, st, employer.ID)
	hidden := seedJob(t, st, employer.ID)
	hidden.IsActive = false
	if err := st.Jobs().Update(ctx, hidden); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	jobs, err := svc.ListJobs(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(jobs) != 1 || jobs[0].ID != visible.ID {
		t.Fatalf("list should contain only the active job, got %d rows", len(jobs))
	}
	if _, err := svc.GetJob(ctx, hidden.ID); !errors.Is(err, store.ErrRecordNotFound) {
		t.Fatalf("inactive job should read as missing, got %v", err)
	}
}

func TestUpdateForeignJobReadsAsMissing(t *testing.T) {
	st := newTestStore(t)
	svc := service.NewJobService(st)
	owner := seedEmployer(t, st)
	intruder := seedEmployer(t, st)
	job := seedJob(t, st, owner.ID)

	_, err := svc.UpdateJob(context.Background(), intruder, job.ID, dto.UpdateJobRequest{
		Title: strptr("hijacked"),
	})
	if !errors.Is(err, store.ErrRecordNotFound) {
		t.Fatalf("foreign job should be invisible to a fellow employer, got %v", err)
	}
}

func TestUpdateJobWrongRoleForbidden(t *testing.T) {
	st := newTestStore(t)
	svc := service.NewJobService(st)
	owner := seedEmployer(t, st)
	applicant := seedApplicant(t, st)
	job := seedJob(t, st, owner.ID)

	_, err := svc.UpdateJob(context.Background(), applicant, job.ID, dto.UpdateJobRequest{
		Title: strptr("nope"),
	})
	if !errors.Is(err, domain.ErrPermissionDenied) {
		t.Fatalf("wrong-role writer gets 403, not 404: %v", err)
	}
}

func TestUpdateJobReplacesTagSet(t *testing.T) {
	st := newTestStore(t)
	jobs := service.NewJobService(st)
	catalog := service.NewCatalogService(st)
	staff := seedStaff(t, st)
	employer := seedEmployer(t, st)
	ctx := context.Background()

	tagGo, err := catalog.CreateTag(ctx, staff, dto.CreateTagRequest{Name: "go"})
	if err != nil {
		t.Fatalf("tag: %v", err)
	}
	tagSQL, err := catalog.CreateTag(ctx, staff, dto.CreateTagRequest{Name: "sql"})
	if err != nil {
		t.Fatalf("tag: %v", err)
	}

	req := validJobRequest()
	req.TagIDs = []string{tagGo.ID.String(), tagSQL.ID.String()}
	job, err := jobs.CreateJob(ctx, employer, req)
	if err != nil {
		t.Fatalf("create job: %v", err)
	}
	if len(job.Tags) != 2 {
		t.Fatalf("want 2 tags, got %d", len(job.Tags))
	}

	updated, err := jobs.UpdateJob(ctx, employer, job.ID, dto.UpdateJobRequest{
		TagIDs: []string{tagSQL.ID.String()},
	})
	if err != nil {
		t.Fatalf("update job: %v", err)
	}
	if len(updated.Tags) != 1 || updated.Tags[0].ID != tagSQL.ID {
		t.Fatalf("tag set should be fully replaced, got %v", updated.Tags)
	}
}

func TestCreateJobUnknownTagRejected(t *testing.T) {
	st := newTestStore(t)
	svc := service.NewJobService(st)
	employer := seedEmployer(t, st)

	req := validJobRequest()
	req.TagIDs = []string{"00000000-0000-0000-0000-000000000001"}
	_, err := svc.CreateJob(context.Background(), employer, req)
	if !errors.Is(err, domain.ErrInvalidChoice) {
		t.Fatalf("want ErrInvalidChoice for unknown tag, got %v", err)
	}
}

func TestDeleteJobCascadesOwnership(t *testing.T) {
	st := newTestStore(t)
	svc := service.NewJobService(st)
	owner := seedEmployer(t, st)
	job := seedJob(t, st, owner.ID)
	ctx := context.Background()

	if err := svc.DeleteJob(ctx, owner, job.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := st.Jobs().GetByID(ctx, job.ID); !errors.Is(err, store.ErrRecordNotFound) {
		t.Fatalf("job should be gone, got %v", err)
	}
}
