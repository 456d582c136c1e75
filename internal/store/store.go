package store

import (
	"context"
	"errors"

	"jobboard/internal/domain"

	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	// ErrDuplicateKey wraps the storage-level unique-constraint violation.
	// It is the last-resort arbiter when two concurrent creates race past
	// the service layer's pre-flight checks.
	ErrDuplicateKey = errors.New("duplicate key")
)

type Store struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Store { return &Store{DB: db} }

func (s *Store) WithTx(ctx context.Context, fn func(tx *Store) error) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{DB: tx})
	})
}

// AutoMigrate creates the schema, including the composite and one-to-one
// unique indexes the invariants rely on.
func (s *Store) AutoMigrate() error {
	return s.DB.AutoMigrate(
		&domain.User{},
		&domain.EmployerProfile{},
		&domain.ApplicantProfile{},
		&domain.Category{},
		&domain.Tag{},
		&domain.CompanyProfile{},
		&domain.Job{},
		&domain.Application{},
		&domain.InterviewSchedule{},
		&domain.ApplicantNote{},
	)
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrRecordNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateKey
	}
	return err
}
