package store

import (
	"context"
	"strings"

	"jobboard/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserStore struct{ db *gorm.DB }

func (s *Store) Users() *UserStore { return &UserStore{db: s.DB} }

func (u *UserStore) Create(ctx context.Context, usr *domain.User) error {
	if usr.ID == uuid.Nil {
		usr.ID = uuid.New()
	}
	return translate(u.db.WithContext(ctx).Create(usr).Error)
}

func (u *UserStore) GetByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	var user domain.User
	if err := u.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// EmailExists expects an already-lowercased email; every caller goes through
// the service layer's normalization.
func (u *UserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	var n int64
	err := u.db.WithContext(ctx).Model(&domain.User{}).Where("email = ?", email).Count(&n).Error
	return n > 0, translate(err)
}

// List returns all users, optionally narrowed by a case-insensitive
// substring match over email, first name and last name.
func (u *UserStore) List(ctx context.Context, search string) ([]domain.User, error) {
	q := u.db.WithContext(ctx).Order("created_at DESC")
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		q = q.Where("email LIKE ? OR LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?",
			pattern, pattern, pattern)
	}
	var users []domain.User
	err := q.Find(&users).Error
	return users, translate(err)
}

func (u *UserStore) Update(ctx context.Context, usr *domain.User) error {
	return translate(u.db.WithContext(ctx).Save(usr).Error)
}

func (u *UserStore) Delete(ctx context.Context, id domain.UserID) error {
	res := u.db.WithContext(ctx).Delete(&domain.User{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
