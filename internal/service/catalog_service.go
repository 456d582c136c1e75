package service

import (
	"context"

	"jobboard/internal/access"
	"jobboard/internal/domain"
	"jobboard/internal/dto"
	"jobboard/internal/slug"
	"jobboard/internal/store"
)

const tagNameMaxLen = 50

// CatalogService covers categories, tags and catalog company profiles.
// Category and tag reads are public; their writes are back-office (staff).
type CatalogService struct {
	store *store.Store
}

func NewCatalogService(st *store.Store) *CatalogService {
	return &CatalogService{store: st}
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.store.Categories().List(ctx)
}

func (s *CatalogService) GetCategory(ctx context.Context, id domain.CategoryID) (*domain.Category, error) {
	return s.store.Categories().GetByID(ctx, id)
}

// CreateCategory derives the slug from the name when none is supplied. The
// slug is stored once and never recomputed on later renames.
func (s *CatalogService) CreateCategory(ctx context.Context, actor domain.Identity, req dto.CreateCategoryRequest) (*domain.Category, error) {
	if !actor.IsStaff {
		return nil, domain.ErrPermissionDenied
	}
	if req.Name == "" {
		return nil, fieldErr("name", "Name must be provided.", domain.ErrMissingField)
	}
	sl := req.Slug
	if sl == "" {
		sl = slug.Make(req.Name)
	}

	exists, err := s.store.Categories().NameOrSlugExists(ctx, req.Name, sl)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fieldErr("name", "A category with this name or slug already exists.", domain.ErrDuplicateCategory)
	}

	cat := &domain.Category{Name: req.Name, Slug: sl}
	if err := s.store.Categories().Create(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// UpdateCategory renames without touching the slug.
func (s *CatalogService) UpdateCategory(ctx context.Context, actor domain.Identity, id domain.CategoryID, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	if !actor.IsStaff {
		return nil, domain.ErrPermissionDenied
	}
	cat, err := s.store.Categories().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		if *req.Name == "" {
			return nil, fieldErr("name", "Name must be provided.", domain.ErrMissingField)
		}
		cat.Name = *req.Name
	}
	if err := s.store.Categories().Update(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, actor domain.Identity, id domain.CategoryID) error {
	if !actor.IsStaff {
		return domain.ErrPermissionDenied
	}
	return s.store.Categories().Delete(ctx, id)
}

func (s *CatalogService) ListTags(ctx context.Context) ([]domain.Tag, error) {
	return s.store.Tags().List(ctx)
}

func (s *CatalogService) GetTag(ctx context.Context, id domain.TagID) (*domain.Tag, error) {
	return s.store.Tags().GetByID(ctx, id)
}

func (s *CatalogService) CreateTag(ctx context.Context, actor domain.Identity, req dto.CreateTagRequest) (*domain.Tag, error) {
	if !actor.IsStaff {
		return nil, domain.ErrPermissionDenied
	}
	if req.Name == "" {
		return nil, fieldErr("name", "Name must be provided.", domain.ErrMissingField)
	}
	if len(req.Name) > tagNameMaxLen {
		return nil, fieldErr("name", "Ensure this field has no more than 50 characters.", domain.ErrFieldTooLong)
	}
	exists, err := s.store.Tags().NameExists(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fieldErr("name", "A tag with this name already exists.", domain.ErrDuplicateTag)
	}
	tag := &domain.Tag{Name: req.Name}
	if err := s.store.Tags().Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *CatalogService) DeleteTag(ctx context.Context, actor domain.Identity, id domain.TagID) error {
	if !actor.IsStaff {
		return domain.ErrPermissionDenied
	}
	return s.store.Tags().Delete(ctx, id)
}

// Company profiles: wrong-role actors are rejected outright on every verb,
// reads included. This differs from the quietly-filtered profile resources
// on purpose.

func (s *CatalogService) ListCompanyProfiles(ctx context.Context, actor domain.Identity) ([]domain.CompanyProfile, error) {
	if access.Decide(access.ResourceCompanyProfile, access.ActionList, actor) != access.ScopeOwn {
		return nil, domain.ErrPermissionDenied
	}
	return s.store.CompanyProfiles().ListByUser(ctx, actor.ID)
}

func (s *CatalogService) GetCompanyProfile(ctx context.Context, actor domain.Identity, id domain.CompanyProfileID) (*domain.CompanyProfile, error) {
	if access.Decide(access.ResourceCompanyProfile, access.ActionRetrieve, actor).Denied() {
		return nil, domain.ErrPermissionDenied
	}
	prof, err := s.store.CompanyProfiles().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if prof.UserID != actor.ID {
		return nil, domain.ErrNotFound
	}
	return prof, nil
}

func (s *CatalogService) CreateCompanyProfile(ctx context.Context, actor domain.Identity, req dto.CreateCompanyProfileRequest) (*domain.CompanyProfile, error) {
	if access.Decide(access.ResourceCompanyProfile, access.ActionCreate, actor).Denied() {
		return nil, domain.ErrPermissionDenied
	}
	if req.CompanyName == "" {
		return nil, fieldErr("companyName", "Company name must be provided.", domain.ErrMissingField)
	}
	if req.Location == "" {
		return nil, fieldErr("location", "Location must be provided.", domain.ErrMissingField)
	}
	exists, err := s.store.CompanyProfiles().ExistsForUser(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateCompanyProfile
	}
	prof := &domain.CompanyProfile{
		UserID:      actor.ID,
		CompanyName: req.CompanyName,
		Website:     req.Website,
		Location:    req.Location,
		Description: req.Description,
	}
	if err := s.store.CompanyProfiles().Create(ctx, prof); err != nil {
		return nil, err
	}
	return prof, nil
}

func (s *CatalogService) UpdateCompanyProfile(ctx context.Context, actor domain.Identity, id domain.CompanyProfileID, req dto.UpdateCompanyProfileRequest) (*domain.CompanyProfile, error) {
	prof, err := s.getMutableCompanyProfile(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if req.CompanyName != nil {
		if *req.CompanyName == "" {
			return nil, fieldErr("companyName", "Company name must be provided.", domain.ErrMissingField)
		}
		prof.CompanyName = *req.CompanyName
	}
	if req.Website != nil {
		prof.Website = *req.Website
	}
	if req.Location != nil {
		if *req.Location == "" {
			return nil, fieldErr("location", "Location must be provided.", domain.ErrMissingField)
		}
		prof.Location = *req.Location
	}
	if req.Description != nil {
		prof.Description = *req.Description
	}
	if err := s.store.CompanyProfiles().Update(ctx, prof); err != nil {
		return nil, err
	}
	return prof, nil
}

// AttachLogo stores the uploaded logo reference.
func (s *CatalogService) AttachLogo(ctx context.Context, actor domain.Identity, id domain.CompanyProfileID, logoRef string) (*domain.CompanyProfile, error) {
	prof, err := s.getMutableCompanyProfile(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	prof.Logo = logoRef
	if err := s.store.CompanyProfiles().Update(ctx, prof); err != nil {
		return nil, err
	}
	return prof, nil
}

func (s *CatalogService) DeleteCompanyProfile(ctx context.Context, actor domain.Identity, id domain.CompanyProfileID) error {
	if _, err := s.getMutableCompanyProfile(ctx, actor, id); err != nil {
		return err
	}
	return s.store.CompanyProfiles().Delete(ctx, id)
}

func (s *CatalogService) getMutableCompanyProfile(ctx context.Context, actor domain.Identity, id domain.CompanyProfileID) (*domain.CompanyProfile, error) {
	switch access.Decide(access.ResourceCompanyProfile, access.ActionUpdate, actor) {
	case access.AllowOwn, access.Allow:
	default:
		return nil, domain.ErrPermissionDenied
	}
	prof, err := s.store.CompanyProfiles().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if prof.UserID != actor.ID {
		return nil, domain.ErrNotFound
	}
	return prof, nil
}
