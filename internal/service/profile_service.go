package service

import (
	"context"
	"errors"
	"time"

	"jobboard/internal/access"
	"jobboard/internal/domain"
	"jobboard/internal/dto"
	"jobboard/internal/store"

	"github.com/google/uuid"
)

// ProfileService covers the per-role profile records. Profiles are
// auto-provisioned at account creation; the create paths here exist for the
// resource surface and fail cleanly when a profile already exists.
type ProfileService struct {
	store *store.Store
}

func NewProfileService(st *store.Store) *ProfileService {
	return &ProfileService{store: st}
}

func (s *ProfileService) ListEmployerProfiles(ctx context.Context, actor domain.Identity) ([]domain.EmployerProfile, error) {
	switch access.Decide(access.ResourceEmployerProfile, access.ActionList, actor) {
	case access.ScopeAll:
		return s.store.EmployerProfiles().List(ctx)
	case access.ScopeOwn:
		return s.store.EmployerProfiles().ListByUser(ctx, actor.ID)
	}
	return nil, domain.ErrPermissionDenied
}

func (s *ProfileService) GetEmployerProfile(ctx context.Context, actor domain.Identity, id domain.UserID) (*domain.EmployerProfile, error) {
	prof, err := s.store.EmployerProfiles().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	switch access.Decide(access.ResourceEmployerProfile, access.ActionRetrieve, actor) {
	case access.ScopeAll:
		return prof, nil
	case access.ScopeOwn:
		if prof.UserID != actor.ID {
			return nil, domain.ErrNotFound
		}
		return prof, nil
	}
	return nil, domain.ErrPermissionDenied
}

func (s *ProfileService) CreateEmployerProfile(ctx context.Context, actor domain.Identity, req dto.CreateEmployerProfileRequest) (*domain.EmployerProfile, error) {
	if access.Decide(access.ResourceEmployerProfile, access.ActionCreate, actor).Denied() {
		return nil, domain.ErrPermissionDenied
	}
	exists, err := s.store.EmployerProfiles().ExistsForUser(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateProfile
	}
	prof := &domain.EmployerProfile{
		ID:                 uuid.New(),
		UserID:             actor.ID,
		CompanyName:        req.CompanyName,
		CompanyWebsite:     req.CompanyWebsite,
		CompanyDescription: req.CompanyDescription,
		CreatedAt:          time.Now().UTC(),
	}
	if err := s.store.EmployerProfiles().Create(ctx, prof); err != nil {
		return nil, err
	}
	return prof, nil
}

func (s *ProfileService) UpdateEmployerProfile(ctx context.Context, actor domain.Identity, id domain.UserID, req dto.UpdateEmployerProfileRequest) (*domain.EmployerProfile, error) {
	prof, err := s.getMutableEmployerProfile(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if req.CompanyName != nil {
		prof.CompanyName = *req.CompanyName
	}
	if req.CompanyWebsite != nil {
		prof.CompanyWebsite = *req.CompanyWebsite
	}
	if req.CompanyDescription != nil {
		prof.CompanyDescription = *req.CompanyDescription
	}
	if err := s.store.EmployerProfiles().Update(ctx, prof); err != nil {
		return nil, err
	}
	return prof, nil
}

func (s *ProfileService) DeleteEmployerProfile(ctx context.Context, actor domain.Identity, id domain.UserID) error {
	if _, err := s.getMutableEmployerProfile(ctx, actor, id); err != nil {
		return err
	}
	return s.store.EmployerProfiles().Delete(ctx, id)
}

// getMutableEmployerProfile resolves a profile through the mutation gate:
// staff may touch any row, owners their own; everything else is invisible.
func (s *ProfileService) getMutableEmployerProfile(ctx context.Context, actor domain.Identity, id domain.UserID) (*domain.EmployerProfile, error) {
	prof, err := s.store.EmployerProfiles().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	switch access.Decide(access.ResourceEmployerProfile, access.ActionUpdate, actor) {
	case access.Allow:
		return prof, nil
	case access.AllowOwn:
		if prof.UserID != actor.ID {
			return nil, domain.ErrNotFound
		}
		return prof, nil
	}
	return nil, domain.ErrPermissionDenied
}

func (s *ProfileService) ListApplicantProfiles(ctx context.Context, actor domain.Identity) ([]domain.ApplicantProfile, error) {
	switch access.Decide(access.ResourceApplicantProfile, access.ActionList, actor) {
	case access.ScopeAll:
		return s.store.ApplicantProfiles().List(ctx)
	case access.ScopeOwn:
		return s.store.ApplicantProfiles().ListByUser(ctx, actor.ID)
	}
	return nil, domain.ErrPermissionDenied
}

func (s *ProfileService) GetApplicantProfile(ctx context.Context, actor domain.Identity, id domain.UserID) (*domain.ApplicantProfile, error) {
	prof, err := s.store.ApplicantProfiles().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	switch access.Decide(access.ResourceApplicantProfile, access.ActionRetrieve, actor) {
	case access.ScopeAll:
		return prof, nil
	case access.ScopeOwn:
		if prof.UserID != actor.ID {
			return nil, domain.ErrNotFound
		}
		return prof, nil
	}
	return nil, domain.ErrPermissionDenied
}

func (s *ProfileService) CreateApplicantProfile(ctx context.Context, actor domain.Identity, req dto.CreateApplicantProfileRequest) (*domain.ApplicantProfile, error) {
	if access.Decide(access.ResourceApplicantProfile, access.ActionCreate, actor).Denied() {
		return nil, domain.ErrPermissionDenied
	}
	if _, err := s.store.ApplicantProfiles().GetByUser(ctx, actor.ID); err == nil {
		return nil, domain.ErrDuplicateProfile
	} else if !errors.Is(err, store.ErrRecordNotFound) {
		return nil, err
	}
	prof := &domain.ApplicantProfile{
		ID:        uuid.New(),
		UserID:    actor.ID,
		Bio:       req.Bio,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.ApplicantProfiles().Create(ctx, prof); err != nil {
		return nil, err
	}
	return prof, nil
}

func (s *ProfileService) UpdateApplicantProfile(ctx context.Context, actor domain.Identity, id domain.UserID, req dto.UpdateApplicantProfileRequest) (*domain.ApplicantProfile, error) {
	prof, err := s.getMutableApplicantProfile(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if req.Bio != nil {
		prof.Bio = *req.Bio
	}
	if err := s.store.ApplicantProfiles().Update(ctx, prof); err != nil {
		return nil, err
	}
	return prof, nil
}

// AttachResume stores the uploaded file reference on the profile.
func (s *ProfileService) AttachResume(ctx context.Context, actor domain.Identity, id domain.UserID, resumeRef string) (*domain.ApplicantProfile, error) {
	prof, err := s.getMutableApplicantProfile(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	prof.Resume = resumeRef
	if err := s.store.ApplicantProfiles().Update(ctx, prof); err != nil {
		return nil, err
	}
	return prof, nil
}

func (s *ProfileService) DeleteApplicantProfile(ctx context.Context, actor domain.Identity, id domain.UserID) error {
	if _, err := s.getMutableApplicantProfile(ctx, actor, id); err != nil {
		return err
	}
	return s.store.ApplicantProfiles().Delete(ctx, id)
}

func (s *ProfileService) getMutableApplicantProfile(ctx context.Context, actor domain.Identity, id domain.UserID) (*domain.ApplicantProfile, error) {
	prof, err := s.store.ApplicantProfiles().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	switch access.Decide(access.ResourceApplicantProfile, access.ActionUpdate, actor) {
	case access.Allow:
		return prof, nil
	case access.AllowOwn:
		if prof.UserID != actor.ID {
			return nil, domain.ErrNotFound
		}
		return prof, nil
	}
	return nil, domain.ErrPermissionDenied
}
