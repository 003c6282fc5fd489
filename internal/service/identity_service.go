package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cityeyes/internal/errors"
	"cityeyes/internal/model"
	"cityeyes/internal/repository"
)

// Role is the resolved authorization tier of a caller. The stored
// role/admin_verified column pair collapses into a single tagged value here
// so an unverified admin cannot be mistaken for a privileged one.
type Role int

const (
	RoleAnonymous Role = iota
	RoleUser
	// RoleAdminPending is role=admin without super-admin verification.
	// Elevated UI may be shown, but for authorization it equals RoleUser.
	RoleAdminPending
	RoleAdminVerified
	RoleSuperAdmin
)

// String returns the role name for logging and responses.
func (r Role) String() string {
	switch r {
	case RoleUser:
		return "user"
	case RoleAdminPending:
		return "admin-pending"
	case RoleAdminVerified:
		return "admin-verified"
	case RoleSuperAdmin:
		return "super-admin"
	default:
		return "anonymous"
	}
}

// Identity is a caller resolved to a role tier. Profile is nil only for a
// super admin that has no profile row.
type Identity struct {
	ProfileID uuid.UUID
	Email     string
	Role      Role
	Profile   *model.Profile
}

// RequireRole is the guard applied as a precondition to every privileged
// operation: it fails closed before any mutation is attempted.
func RequireRole(caller *Identity, minimum Role) error {
	if caller == nil || caller.Role == RoleAnonymous {
		return errors.ErrUnauthenticated
	}
	if caller.Role < minimum {
		return errors.ErrUnauthorized
	}
	return nil
}

// IdentityService resolves verified caller identities into role tiers.
type IdentityService interface {
	Resolve(ctx context.Context, profileID uuid.UUID, email string) (*Identity, error)
}

type identityService struct {
	profileRepo repository.ProfileRepository
	superAdmins map[string]bool
}

// NewIdentityService creates a new identity service. superAdmins is the
// configured set of identities that bypass every other check.
func NewIdentityService(profileRepo repository.ProfileRepository, superAdmins map[string]bool) IdentityService {
	return &identityService{
		profileRepo: profileRepo,
		superAdmins: superAdmins,
	}
}

// Resolve classifies the caller. Resolution order: super-admin set first,
// then profile lookup, then the role/verified pair. Read-only.
func (s *identityService) Resolve(ctx context.Context, profileID uuid.UUID, email string) (*Identity, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))

	if s.superAdmins[normalized] {
		identity := &Identity{ProfileID: profileID, Email: normalized, Role: RoleSuperAdmin}
		// Best effort: a super admin usually has a profile row too.
		if profile, err := s.profileRepo.FindByID(ctx, profileID); err == nil {
			identity.Profile = profile
		}
		return identity, nil
	}

	if profileID == uuid.Nil {
		return nil, errors.ErrUnauthenticated
	}

	profile, err := s.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUnauthenticated
		}
		return nil, err
	}

	role := RoleUser
	if profile.Role == model.ProfileRoleAdmin {
		if profile.AdminVerified {
			role = RoleAdminVerified
		} else {
			role = RoleAdminPending
		}
	}

	return &Identity{
		ProfileID: profile.ID,
		Email:     profile.Email,
		Role:      role,
		Profile:   profile,
	}, nil
}
