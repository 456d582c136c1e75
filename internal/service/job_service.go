package service

import (
	"context"
	"time"

	"jobboard/internal/access"
	"jobboard/internal/domain"
	"jobboard/internal/dto"
	"jobboard/internal/store"

	"github.com/google/uuid"
)

// JobService owns the posting lifecycle. Reads are public and limited to
// active rows; writes are employer-only and scoped to the owner, so a
// foreign job id behaves like a missing one.
type JobService struct {
	store *store.Store
}

func NewJobService(st *store.Store) *JobService {
	return &JobService{store: st}
}

func (s *JobService) ListJobs(ctx context.Context) ([]domain.Job, error) {
	return s.store.Jobs().ListActive(ctx)
}

func (s *JobService) GetJob(ctx context.Context, id domain.JobID) (*domain.Job, error) {
	return s.store.Jobs().GetActive(ctx, id)
}

func (s *JobService) CreateJob(ctx context.Context, actor domain.Identity, req dto.CreateJobRequest) (*domain.Job, error) {
	if access.Decide(access.ResourceJob, access.ActionCreate, actor).Denied() {
		return nil, domain.ErrPermissionDenied
	}

	if req.Title == "" {
		return nil, fieldErr("title", "Title must be provided.", domain.ErrMissingField)
	}
	if req.Description == "" {
		return nil, fieldErr("description", "Description must be provided.", domain.ErrMissingField)
	}
	if req.Location == "" {
		return nil, fieldErr("location", "Location must be provided.", domain.ErrMissingField)
	}
	jobType := domain.JobType(req.JobType)
	if !jobType.Valid() {
		return nil, fieldErr("jobType", "Not a valid job type.", domain.ErrInvalidChoice)
	}
	level := domain.ExperienceLevel(req.ExperienceLevel)
	if !level.Valid() {
		return nil, fieldErr("experienceLevel", "Not a valid experience level.", domain.ErrInvalidChoice)
	}

	now := time.Now().UTC()
	job := &domain.Job{
		ID:              uuid.New(),
		EmployerID:      actor.ID,
		Title:           req.Title,
		Description:     req.Description,
		Requirements:    req.Requirements,
		Location:        req.Location,
		JobType:         jobType,
		ExperienceLevel: level,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if req.IsActive != nil {
		job.IsActive = *req.IsActive
	}

	if req.CategoryID != nil {
		catID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, fieldErr("categoryId", "Not a valid category id.", domain.ErrInvalidChoice)
		}
		if _, err := s.store.Categories().GetByID(ctx, catID); err != nil {
			if err == store.ErrRecordNotFound {
				return nil, fieldErr("categoryId", "Category does not exist.", domain.ErrInvalidChoice)
			}
			return nil, err
		}
		job.CategoryID = &catID
	}

	if req.Deadline != nil {
		d, err := time.Parse("2006-01-02", *req.Deadline)
		if err != nil {
			return nil, fieldErr("deadline", "Date has wrong format. Use YYYY-MM-DD.", domain.ErrInvalidChoice)
		}
		job.Deadline = &d
	}

	tags, err := s.resolveTags(ctx, req.TagIDs)
	if err != nil {
		return nil, err
	}
	job.Tags = tags

	if err := s.store.Jobs().Create(ctx, job); err != nil {
		return nil, err
	}
	return s.store.Jobs().GetOwned(ctx, job.ID, actor.ID)
}

// UpdateJob applies a partial update. A present tagIds replaces the whole
// tag set; memberships not in the new set are removed.
func (s *JobService) UpdateJob(ctx context.Context, actor domain.Identity, id domain.JobID, req dto.UpdateJobRequest) (*domain.Job, error) {
	job, err := s.getMutableJob(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, fieldErr("title", "Title must be provided.", domain.ErrMissingField)
		}
		job.Title = *req.Title
	}
	if req.Description != nil {
		if *req.Description == "" {
			return nil, fieldErr("description", "Description must be provided.", domain.ErrMissingField)
		}
		job.Description = *req.Description
	}
	if req.Requirements != nil {
		job.Requirements = *req.Requirements
	}
	if req.Location != nil {
		if *req.Location == "" {
			return nil, fieldErr("location", "Location must be provided.", domain.ErrMissingField)
		}
		job.Location = *req.Location
	}
	if req.JobType != nil {
		jobType := domain.JobType(*req.JobType)
		if !jobType.Valid() {
			return nil, fieldErr("jobType", "Not a valid job type.", domain.ErrInvalidChoice)
		}
		job.JobType = jobType
	}
	if req.ExperienceLevel != nil {
		level := domain.ExperienceLevel(*req.ExperienceLevel)
		if !level.Valid() {
			return nil, fieldErr("experienceLevel", "Not a valid experience level.", domain.ErrInvalidChoice)
		}
		job.ExperienceLevel = level
	}
	if req.SalaryMin != nil {
		job.SalaryMin = req.SalaryMin
	}
	if req.SalaryMax != nil {
		job.SalaryMax = req.SalaryMax
	}
	if req.CategoryID != nil {
		if *req.CategoryID == "" {
			job.CategoryID = nil
		} else {
			catID, err := uuid.Parse(*req.CategoryID)
			if err != nil {
				return nil, fieldErr("categoryId", "Not a valid category id.", domain.ErrInvalidChoice)
			}
			if _, err := s.store.Categories().GetByID(ctx, catID); err != nil {
				if err == store.ErrRecordNotFound {
					return nil, fieldErr("categoryId", "Category does not exist.", domain.ErrInvalidChoice)
				}
				return nil, err
			}
			job.CategoryID = &catID
		}
	}
	if req.Deadline != nil {
		d, err := time.Parse("2006-01-02", *req.Deadline)
		if err != nil {
			return nil, fieldErr("deadline", "Date has wrong format. Use YYYY-MM-DD.", domain.ErrInvalidChoice)
		}
		job.Deadline = &d
	}
	if req.IsActive != nil {
		job.IsActive = *req.IsActive
	}
	job.UpdatedAt = time.Now().UTC()

	if err := s.store.Jobs().Update(ctx, job); err != nil {
		return nil, err
	}
	if req.TagIDs != nil {
		tags, err := s.resolveTags(ctx, req.TagIDs)
		if err != nil {
			return nil, err
		}
		if err := s.store.Jobs().ReplaceTags(ctx, job, tags); err != nil {
			return nil, err
		}
	}
	return s.store.Jobs().GetOwned(ctx, job.ID, actor.ID)
}

func (s *JobService) DeleteJob(ctx context.Context, actor domain.Identity, id domain.JobID) error {
	if _, err := s.getMutableJob(ctx, actor, id); err != nil {
		return err
	}
	return s.store.Jobs().Delete(ctx, id)
}

func (s *JobService) getMutableJob(ctx context.Context, actor domain.Identity, id domain.JobID) (*domain.Job, error) {
	switch access.Decide(access.ResourceJob, access.ActionUpdate, actor) {
	case access.AllowOwn:
	default:
		// Wrong-role writers are rejected, not hidden.
		return nil, domain.ErrPermissionDenied
	}
	return s.store.Jobs().GetOwned(ctx, id, actor.ID)
}

func (s *JobService) resolveTags(ctx context.Context, rawIDs []string) ([]domain.Tag, error) {
	if len(rawIDs) == 0 {
		return nil, nil
	}
	ids := make([]domain.TagID, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fieldErr("tagIds", "Not a valid tag id.", domain.ErrInvalidChoice)
		}
		ids = append(ids, id)
	}
	tags, err := s.store.Tags().GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(tags) != len(ids) {
		return nil, fieldErr("tagIds", "One or more tags do not exist.", domain.ErrInvalidChoice)
	}
	return tags, nil
}
