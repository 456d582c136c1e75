package service

import (
	"context"
	"strings"
	"time"

	"jobboard/internal/access"
	"jobboard/internal/authn"
	"jobboard/internal/domain"
	"jobboard/internal/dto"
	"jobboard/internal/store"

	"github.com/google/uuid"
)

// IdentityService manages accounts and their auto-provisioned profiles.
// Registration and token issuance live in an external service; this covers
// the back-office user surface and the email-existence check.
type IdentityService struct {
	store *store.Store
}

func NewIdentityService(st *store.Store) *IdentityService {
	return &IdentityService{store: st}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser creates the account and its role-matched profile in one
// transaction. No reader may ever observe a user without its profile.
func (s *IdentityService) CreateUser(ctx context.Context, actor domain.Identity, req dto.CreateUserRequest) (*domain.User, error) {
	if access.Decide(access.ResourceUser, access.ActionCreate, actor).Denied() {
		return nil, domain.ErrPermissionDenied
	}

	email := normalizeEmail(req.Email)
	if email == "" {
		return nil, fieldErr("email", "Email must be provided.", domain.ErrMissingField)
	}
	role := domain.Role(req.Role)
	if !role.Valid() {
		return nil, fieldErr("role", "Role must be employer or applicant.", domain.ErrInvalidChoice)
	}
	if req.Password == "" {
		return nil, fieldErr("password", "Password must be provided.", domain.ErrMissingField)
	}

	// Pre-flight for a clean error; the unique index wins any race.
	exists, err := s.store.Users().EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fieldErr("email", "A user with this email already exists.", domain.ErrDuplicateEmail)
	}

	hash, salt, params, algo, err := authn.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:             uuid.New(),
		Email:          email,
		Username:       req.Username,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Role:           role,
		IsActive:       true,
		PasswordAlgo:   algo,
		PasswordHash:   hash,
		PasswordSalt:   salt,
		PasswordParams: params,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = s.store.WithTx(ctx, func(tx *store.Store) error {
		if err := tx.Users().Create(ctx, user); err != nil {
			return err
		}
		switch role {
		case domain.RoleEmployer:
			return tx.EmployerProfiles().Create(ctx, &domain.EmployerProfile{
				ID:        uuid.New(),
				UserID:    user.ID,
				CreatedAt: now,
			})
		case domain.RoleApplicant:
			return tx.ApplicantProfiles().Create(ctx, &domain.ApplicantProfile{
				ID:        uuid.New(),
				UserID:    user.ID,
				CreatedAt: now,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// ListUsers scopes to the access decision; search narrows the scoped set by
// a case-insensitive substring over email and names.
func (s *IdentityService) ListUsers(ctx context.Context, actor domain.Identity, search string) ([]domain.User, error) {
	switch access.Decide(access.ResourceUser, access.ActionList, actor) {
	case access.ScopeAll:
		return s.store.Users().List(ctx, search)
	case access.ScopeOwn:
		self, err := s.store.Users().GetByID(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		if search != "" && !userMatches(self, search) {
			return []domain.User{}, nil
		}
		return []domain.User{*self}, nil
	}
	return nil, domain.ErrPermissionDenied
}

func userMatches(u *domain.User, search string) bool {
	needle := strings.ToLower(search)
	return strings.Contains(u.Email, needle) ||
		strings.Contains(strings.ToLower(u.FirstName), needle) ||
		strings.Contains(strings.ToLower(u.LastName), needle)
}

func (s *IdentityService) GetUser(ctx context.Context, actor domain.Identity, id domain.UserID) (*domain.User, error) {
	switch access.Decide(access.ResourceUser, access.ActionRetrieve, actor) {
	case access.ScopeAll:
	case access.ScopeOwn:
		// Other rows are invisible, not forbidden.
		if id != actor.ID {
			return nil, domain.ErrNotFound
		}
	default:
		return nil, domain.ErrPermissionDenied
	}
	user, err := s.store.Users().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *IdentityService) Me(ctx context.Context, actor domain.Identity) (*domain.User, error) {
	return s.store.Users().GetByID(ctx, actor.ID)
}

// UpdateUser lets staff edit anyone and everyone else edit themselves. Role,
// active flag and timestamps are server-controlled and never touched here.
func (s *IdentityService) UpdateUser(ctx context.Context, actor domain.Identity, id domain.UserID, req dto.UpdateUserRequest) (*domain.User, error) {
	switch access.Decide(access.ResourceUser, access.ActionUpdate, actor) {
	case access.Allow:
	case access.AllowOwn:
		if id != actor.ID {
			return nil, domain.ErrPermissionDenied
		}
	default:
		return nil, domain.ErrPermissionDenied
	}

	user, err := s.store.Users().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		if email == "" {
			return nil, fieldErr("email", "Email must be provided.", domain.ErrMissingField)
		}
		if email != user.Email {
			exists, err := s.store.Users().EmailExists(ctx, email)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, fieldErr("email", "A user with this email already exists.", domain.ErrDuplicateEmail)
			}
			user.Email = email
		}
	}
	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Password != nil && *req.Password != "" {
		// An idempotent PUT echoing the current password must not rotate
		// the stored salt.
		if !authn.VerifyPassword(*req.Password, user.PasswordHash, user.PasswordSalt, user.PasswordParams, user.PasswordAlgo) {
			hash, salt, params, algo, err := authn.HashPassword(*req.Password)
			if err != nil {
				return nil, err
			}
			user.PasswordAlgo = algo
			user.PasswordHash = hash
			user.PasswordSalt = salt
			user.PasswordParams = params
		}
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.store.Users().Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *IdentityService) DeleteUser(ctx context.Context, actor domain.Identity, id domain.UserID) error {
	switch access.Decide(access.ResourceUser, access.ActionDelete, actor) {
	case access.Allow:
	case access.AllowOwn:
		if id != actor.ID {
			return domain.ErrPermissionDenied
		}
	default:
		return domain.ErrPermissionDenied
	}
	return s.store.Users().Delete(ctx, id)
}

// CheckEmail reports whether an account with the email exists,
// case-insensitively. Open to unauthenticated callers.
func (s *IdentityService) CheckEmail(ctx context.Context, email string) (bool, error) {
	email = normalizeEmail(email)
	if email == "" {
		return false, fieldErr("email", "Email is required.", domain.ErrMissingField)
	}
	return s.store.Users().EmailExists(ctx, email)
}
