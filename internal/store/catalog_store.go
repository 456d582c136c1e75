package store

import (
	"context"

	"jobboard/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryStore struct{ db *gorm.DB }

func (s *Store) Categories() *CategoryStore { return &CategoryStore{db: s.DB} }

func (c *CategoryStore) Create(ctx context.Context, cat *domain.Category) error {
	if cat.ID == uuid.Nil {
		cat.ID = uuid.New()
	}
	return translate(c.db.WithContext(ctx).Create(cat).Error)
}

func (c *CategoryStore) GetByID(ctx context.Context, id domain.CategoryID) (*domain.Category, error) {
	var cat domain.Category
	if err := c.db.WithContext(ctx).First(&cat, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &cat, nil
}

func (c *CategoryStore) List(ctx context.Context) ([]domain.Category, error) {
	var cats []domain.Category
	err := c.db.WithContext(ctx).Order("name ASC").Find(&cats).Error
	return cats, translate(err)
}

func (c *CategoryStore) NameOrSlugExists(ctx context.Context, name, slug string) (bool, error) {
	var n int64
	err := c.db.WithContext(ctx).Model(&domain.Category{}).
		Where("name = ? OR slug = ?", name, slug).Count(&n).Error
	return n > 0, translate(err)
}

func (c *CategoryStore) Update(ctx context.Context, cat *domain.Category) error {
	return translate(c.db.WithContext(ctx).Save(cat).Error)
}

// Delete nulls category references on jobs first; a category removal must
// never cascade into job rows.
func (c *CategoryStore) Delete(ctx context.Context, id domain.CategoryID) error {
	if err := c.db.WithContext(ctx).Model(&domain.Job{}).
		Where("category_id = ?", id).Update("category_id", nil).Error; err != nil {
		return translate(err)
	}
	res := c.db.WithContext(ctx).Delete(&domain.Category{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

type TagStore struct{ db *gorm.DB }

func (s *Store) Tags() *TagStore { return &TagStore{db: s.DB} }

func (t *TagStore) Create(ctx context.Context, tag *domain.Tag) error {
	if tag.ID == uuid.Nil {
		tag.ID = uuid.New()
	}
	return translate(t.db.WithContext(ctx).Create(tag).Error)
}

func (t *TagStore) GetByID(ctx context.Context, id domain.TagID) (*domain.Tag, error) {
	var tag domain.Tag
	if err := t.db.WithContext(ctx).First(&tag, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &tag, nil
}

func (t *TagStore) GetByIDs(ctx context.Context, ids []domain.TagID) ([]domain.Tag, error) {
	var tags []domain.Tag
	if len(ids) == 0 {
		return tags, nil
	}
	err := t.db.WithContext(ctx).Where("id IN ?", ids).Find(&tags).Error
	return tags, translate(err)
}

func (t *TagStore) List(ctx context.Context) ([]domain.Tag, error) {
	var tags []domain.Tag
	err := t.db.WithContext(ctx).Order("name ASC").Find(&tags).Error
	return tags, translate(err)
}

func (t *TagStore) NameExists(ctx context.Context, name string) (bool, error) {
	var n int64
	err := t.db.WithContext(ctx).Model(&domain.Tag{}).Where("name = ?", name).Count(&n).Error
	return n > 0, translate(err)
}

func (t *TagStore) Delete(ctx context.Context, id domain.TagID) error {
	res := t.db.WithContext(ctx).Delete(&domain.Tag{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

type CompanyProfileStore struct{ db *gorm.DB }

func (s *Store) CompanyProfiles() *CompanyProfileStore {
	return &CompanyProfileStore{db: s.DB}
}

func (c *CompanyProfileStore) Create(ctx context.Context, prof *domain.CompanyProfile) error {
	if prof.ID == uuid.Nil {
		prof.ID = uuid.New()
	}
	return translate(c.db.WithContext(ctx).Create(prof).Error)
}

func (c *CompanyProfileStore) GetByID(ctx context.Context, id domain.CompanyProfileID) (*domain.CompanyProfile, error) {
	var prof domain.CompanyProfile
	if err := c.db.WithContext(ctx).First(&prof, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &prof, nil
}

func (c *CompanyProfileStore) ExistsForUser(ctx context.Context, userID domain.UserID) (bool, error) {
	var n int64
	err := c.db.WithContext(ctx).Model(&domain.CompanyProfile{}).Where("user_id = ?", userID).Count(&n).Error
	return n > 0, translate(err)
}

func (c *CompanyProfileStore) ListByUser(ctx context.Context, userID domain.UserID) ([]domain.CompanyProfile, error) {
	var profs []domain.CompanyProfile
	err := c.db.WithContext(ctx).Where("user_id = ?", userID).Find(&profs).Error
	return profs, translate(err)
}

func (c *CompanyProfileStore) Update(ctx context.Context, prof *domain.CompanyProfile) error {
	return translate(c.db.WithContext(ctx).Save(prof).Error)
}

func (c *CompanyProfileStore) Delete(ctx context.Context, id domain.CompanyProfileID) error {
	res := c.db.WithContext(ctx).Delete(&domain.CompanyProfile{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
