package store

import (
	"context"

	"jobboard/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmployerProfileStore struct{ db *gorm.DB }

func (s *Store) EmployerProfiles() *EmployerProfileStore {
	return &EmployerProfileStore{db: s.DB}
}

func (p *EmployerProfileStore) Create(ctx context.Context, prof *domain.EmployerProfile) error {
	if prof.ID == uuid.Nil {
		prof.ID = uuid.New()
	}
	return translate(p.db.WithContext(ctx).Create(prof).Error)
}

func (p *EmployerProfileStore) GetByID(ctx context.Context, id domain.UserID) (*domain.EmployerProfile, error) {
	var prof domain.EmployerProfile
	if err := p.db.WithContext(ctx).First(&prof, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &prof, nil
}

func (p *EmployerProfileStore) GetByUser(ctx context.Context, userID domain.UserID) (*domain.EmployerProfile, error) {
	var prof domain.EmployerProfile
	if err := p.db.WithContext(ctx).First(&prof, "user_id = ?", userID).Error; err != nil {
		return nil, translate(err)
	}
	return &prof, nil
}

func (p *EmployerProfileStore) ExistsForUser(ctx context.Context, userID domain.UserID) (bool, error) {
	var n int64
	err := p.db.WithContext(ctx).Model(&domain.EmployerProfile{}).Where("user_id = ?", userID).Count(&n).Error
	return n > 0, translate(err)
}

func (p *EmployerProfileStore) List(ctx context.Context) ([]domain.EmployerProfile, error) {
	var profs []domain.EmployerProfile
	err := p.db.WithContext(ctx).Order("created_at DESC").Find(&profs).Error
	return profs, translate(err)
}

func (p *EmployerProfileStore) ListByUser(ctx context.Context, userID domain.UserID) ([]domain.EmployerProfile, error) {
	var profs []domain.EmployerProfile
	err := p.db.WithContext(ctx).Where("user_id = ?", userID).Find(&profs).Error
	return profs, translate(err)
}

func (p *EmployerProfileStore) Update(ctx context.Context, prof *domain.EmployerProfile) error {
	return translate(p.db.WithContext(ctx).Save(prof).Error)
}

func (p *EmployerProfileStore) Delete(ctx context.Context, id domain.UserID) error {
	res := p.db.WithContext(ctx).Delete(&domain.EmployerProfile{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

type ApplicantProfileStore struct{ db *gorm.DB }

func (s *Store) ApplicantProfiles() *ApplicantProfileStore {
	return &ApplicantProfileStore{db: s.DB}
}

func (p *ApplicantProfileStore) Create(ctx context.Context, prof *domain.ApplicantProfile) error {
	if prof.ID == uuid.Nil {
		prof.ID = uuid.New()
	}
	return translate(p.db.WithContext(ctx).Create(prof).Error)
}

func (p *ApplicantProfileStore) GetByID(ctx context.Context, id domain.UserID) (*domain.ApplicantProfile, error) {
	var prof domain.ApplicantProfile
	if err := p.db.WithContext(ctx).First(&prof, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &prof, nil
}

func (p *ApplicantProfileStore) GetByUser(ctx context.Context, userID domain.UserID) (*domain.ApplicantProfile, error) {
	var prof domain.ApplicantProfile
	if err := p.db.WithContext(ctx).First(&prof, "user_id = ?", userID).Error; err != nil {
		return nil, translate(err)
	}
	return &prof, nil
}

func (p *ApplicantProfileStore) List(ctx context.Context) ([]domain.ApplicantProfile, error) {
	var profs []domain.ApplicantProfile
	err := p.db.WithContext(ctx).Order("created_at DESC").Find(&profs).Error
	return profs, translate(err)
}

func (p *ApplicantProfileStore) ListByUser(ctx context.Context, userID domain.UserID) ([]domain.ApplicantProfile, error) {
	var profs []domain.ApplicantProfile
	err := p.db.WithContext(ctx).Where("user_id = ?", userID).Find(&profs).Error
	return profs, translate(err)
}

func (p *ApplicantProfileStore) Update(ctx context.Context, prof *domain.ApplicantProfile) error {
	return translate(p.db.WithContext(ctx).Save(prof).Error)
}

func (p *ApplicantProfileStore) Delete(ctx context.Context, id domain.UserID) error {
	res := p.db.WithContext(ctx).Delete(&domain.ApplicantProfile{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
