package store

import (
	"context"

	"jobboard/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationStore struct{ db *gorm.DB }

func (s *Store) Applications() *ApplicationStore { return &ApplicationStore{db: s.DB} }

func (a *ApplicationStore) Create(ctx context.Context, app *domain.Application) error {
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}
	return translate(a.db.WithContext(ctx).Create(app).Error)
}

func (a *ApplicationStore) GetByID(ctx context.Context, id domain.ApplicationID) (*domain.Application, error) {
	var app domain.Application
	err := a.db.WithContext(ctx).Preload("Job").Preload("Applicant").
		First(&app, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &app, nil
}

func (a *ApplicationStore) ExistsForJobAndApplicant(ctx context.Context, jobID domain.JobID, applicantID domain.UserID) (bool, error) {
	var n int64
	err := a.db.WithContext(ctx).Model(&domain.Application{}).
		Where("job_id = ? AND applicant_id = ?", jobID, applicantID).Count(&n).Error
	return n > 0, translate(err)
}

func (a *ApplicationStore) ListAll(ctx context.Context) ([]domain.Application, error) {
	var apps []domain.Application
	err := a.db.WithContext(ctx).Preload("Job").Preload("Applicant").
		Order("created_at DESC").Find(&apps).Error
	return apps, translate(err)
}

// ListForEmployer returns applications against the employer's jobs.
func (a *ApplicationStore) ListForEmployer(ctx context.Context, employerID domain.UserID) ([]domain.Application, error) {
	var apps []domain.Application
	err := a.db.WithContext(ctx).Preload("Job").Preload("Applicant").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.employer_id = ?", employerID).
		Order("applications.created_at DESC").Find(&apps).Error
	return apps, translate(err)
}

func (a *ApplicationStore) ListForApplicant(ctx context.Context, applicantID domain.UserID) ([]domain.Application, error) {
	var apps []domain.Application
	err := a.db.WithContext(ctx).Preload("Job").
		Where("applicant_id = ?", applicantID).
		Order("created_at DESC").Find(&apps).Error
	return apps, translate(err)
}

func (a *ApplicationStore) Update(ctx context.Context, app *domain.Application) error {
	return translate(a.db.WithContext(ctx).Omit("Job", "Applicant").Save(app).Error)
}

func (a *ApplicationStore) Delete(ctx context.Context, id domain.ApplicationID) error {
	res := a.db.WithContext(ctx).Delete(&domain.Application{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
