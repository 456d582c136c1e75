package store

import (
	"context"

	"jobboard/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InterviewStore struct{ db *gorm.DB }

func (s *Store) Interviews() *InterviewStore { return &InterviewStore{db: s.DB} }

func (i *InterviewStore) Create(ctx context.Context, iv *domain.InterviewSchedule) error {
	if iv.ID == uuid.Nil {
		iv.ID = uuid.New()
	}
	return translate(i.db.WithContext(ctx).Create(iv).Error)
}

func (i *InterviewStore) GetByID(ctx context.Context, id domain.InterviewID) (*domain.InterviewSchedule, error) {
	var iv domain.InterviewSchedule
	err := i.db.WithContext(ctx).
		Preload("Application").Preload("Application.Job").Preload("Application.Applicant").
		First(&iv, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &iv, nil
}

func (i *InterviewStore) ExistsForApplication(ctx context.Context, appID domain.ApplicationID) (bool, error) {
	var n int64
	err := i.db.WithContext(ctx).Model(&domain.InterviewSchedule{}).
		Where("application_id = ?", appID).Count(&n).Error
	return n > 0, translate(err)
}

func (i *InterviewStore) List(ctx context.Context) ([]domain.InterviewSchedule, error) {
	var ivs []domain.InterviewSchedule
	err := i.db.WithContext(ctx).
		Preload("Application").Preload("Application.Job").Preload("Application.Applicant").
		Order("date ASC").Find(&ivs).Error
	return ivs, translate(err)
}

func (i *InterviewStore) Update(ctx context.Context, iv *domain.InterviewSchedule) error {
	return translate(i.db.WithContext(ctx).Omit("Application", "ScheduledBy").Save(iv).Error)
}

func (i *InterviewStore) Delete(ctx context.Context, id domain.InterviewID) error {
	res := i.db.WithContext(ctx).Delete(&domain.InterviewSchedule{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
