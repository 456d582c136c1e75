package store

import (
	"context"

	"jobboard/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoteStore struct{ db *gorm.DB }

func (s *Store) Notes() *NoteStore { return &NoteStore{db: s.DB} }

func (n *NoteStore) Create(ctx context.Context, note *domain.ApplicantNote) error {
	if note.ID == uuid.Nil {
		note.ID = uuid.New()
	}
	return translate(n.db.WithContext(ctx).Create(note).Error)
}

func (n *NoteStore) GetByID(ctx context.Context, id domain.NoteID) (*domain.ApplicantNote, error) {
	var note domain.ApplicantNote
	err := n.db.WithContext(ctx).
		Preload("Application").Preload("Application.Job").Preload("Application.Applicant").
		First(&note, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &note, nil
}

// ListForEmployer returns notes on applications against the employer's jobs,
// newest first.
func (n *NoteStore) ListForEmployer(ctx context.Context, employerID domain.UserID) ([]domain.ApplicantNote, error) {
	var notes []domain.ApplicantNote
	err := n.db.WithContext(ctx).
		Preload("Application").Preload("Application.Job").Preload("Application.Applicant").
		Joins("JOIN applications ON applications.id = applicant_notes.application_id").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.employer_id = ?", employerID).
		Order("applicant_notes.created_at DESC").Find(&notes).Error
	return notes, translate(err)
}

func (n *NoteStore) Update(ctx context.Context, note *domain.ApplicantNote) error {
	return translate(n.db.WithContext(ctx).Omit("Application", "Author").Save(note).Error)
}

func (n *NoteStore) Delete(ctx context.Context, id domain.NoteID) error {
	res := n.db.WithContext(ctx).Delete(&domain.ApplicantNote{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
