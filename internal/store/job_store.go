package store

import (
	"context"

	"jobboard/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JobStore struct{ db *gorm.DB }

func (s *Store) Jobs() *JobStore { return &JobStore{db: s.DB} }

func (j *JobStore) Create(ctx context.Context, job *domain.Job) error {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	return translate(j.db.WithContext(ctx).Create(job).Error)
}

// GetActive fetches one job through the public read scope.
func (j *JobStore) GetActive(ctx context.Context, id domain.JobID) (*domain.Job, error) {
	var job domain.Job
	err := j.db.WithContext(ctx).Preload("Category").Preload("Tags").
		First(&job, "id = ? AND is_active = ?", id, true).Error
	if err != nil {
		return nil, translate(err)
	}
	return &job, nil
}

// GetOwned fetches one job through an employer's write scope. A job owned by
// someone else is indistinguishable from a missing one.
func (j *JobStore) GetOwned(ctx context.Context, id domain.JobID, employerID domain.UserID) (*domain.Job, error) {
	var job domain.Job
	err := j.db.WithContext(ctx).Preload("Category").Preload("Tags").
		First(&job, "id = ? AND employer_id = ?", id, employerID).Error
	if err != nil {
		return nil, translate(err)
	}
	return &job, nil
}

func (j *JobStore) GetByID(ctx context.Context, id domain.JobID) (*domain.Job, error) {
	var job domain.Job
	err := j.db.WithContext(ctx).Preload("Category").Preload("Tags").
		First(&job, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &job, nil
}

func (j *JobStore) ListActive(ctx context.Context) ([]domain.Job, error) {
	var jobs []domain.Job
	err := j.db.WithContext(ctx).Preload("Category").Preload("Tags").
		Where("is_active = ?", true).Order("created_at DESC").Find(&jobs).Error
	return jobs, translate(err)
}

func (j *JobStore) Update(ctx context.Context, job *domain.Job) error {
	return translate(j.db.WithContext(ctx).Omit("Tags", "Category").Save(job).Error)
}

// ReplaceTags swaps the full tag set: memberships absent from tags are
// removed, not merged.
func (j *JobStore) ReplaceTags(ctx context.Context, job *domain.Job, tags []domain.Tag) error {
	return translate(j.db.WithContext(ctx).Model(job).Association("Tags").Replace(tags))
}

func (j *JobStore) Delete(ctx context.Context, id domain.JobID) error {
	res := j.db.WithContext(ctx).Select("Tags").Delete(&domain.Job{ID: id})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
