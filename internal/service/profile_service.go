package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cityeyes/internal/cache"
	"cityeyes/internal/errors"
	"cityeyes/internal/model"
	"cityeyes/internal/repository"
)

const (
	profileCacheTTL    = 5 * time.Minute
	profileSearchLimit = 10
)

// ProfileService handles profile reads, preferences, admin search and the
// super-admin-only admin authorization operation.
type ProfileService interface {
	Get(ctx context.Context, id uuid.UUID) (*model.Profile, error)
	Search(ctx context.Context, caller *Identity, query string) ([]model.Profile, error)
	AuthorizeAdmin(ctx context.Context, caller *Identity, profileID uuid.UUID) error
	UpdatePreferences(ctx context.Context, caller *Identity, preferences string) error
	RewardHistory(ctx context.Context, caller *Identity) ([]model.RewardEvent, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
	eventRepo   repository.RewardEventRepository
	cache       *cache.Client
}

// NewProfileService creates a new profile service.
func NewProfileService(
	profileRepo repository.ProfileRepository,
	eventRepo repository.RewardEventRepository,
	cache *cache.Client,
) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		eventRepo:   eventRepo,
		cache:       cache,
	}
}

func (s *profileService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("profile:%s", id)
}

// Get retrieves a profile by ID with caching.
func (s *profileService) Get(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Profile
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	profile, err := s.profileRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrProfileNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(profile); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, profileCacheTTL)
	}
	return profile, nil
}

// Search finds profiles by display-name substring, capped at 10 results.
func (s *profileService) Search(ctx context.Context, caller *Identity, query string) ([]model.Profile, error) {
	if err := RequireRole(caller, RoleAdminVerified); err != nil {
		return nil, err
	}
	return s.profileRepo.SearchByName(ctx, query, profileSearchLimit)
}

// AuthorizeAdmin promotes a profile to verified admin. Only the configured
// super admin may do this; a verified admin may not mint other admins.
// Re-authorizing an already verified admin is a no-op, not an error.
func (s *profileService) AuthorizeAdmin(ctx context.Context, caller *Identity, profileID uuid.UUID) error {
	if err := RequireRole(caller, RoleSuperAdmin); err != nil {
		return err
	}

	// Existence is checked up front: MySQL reports zero changed rows both
	// for a missing profile and for one already holding the verified role.
	if _, err := s.profileRepo.FindByID(ctx, profileID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrProfileNotFound
		}
		return fmt.Errorf("find profile: %w", err)
	}

	if _, err := s.profileRepo.GrantVerifiedAdmin(ctx, profileID); err != nil {
		return fmt.Errorf("authorize admin: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(profileID))
	return nil
}

// UpdatePreferences replaces the caller's free-form preference blob.
func (s *profileService) UpdatePreferences(ctx context.Context, caller *Identity, preferences string) error {
	if err := RequireRole(caller, RoleUser); err != nil {
		return err
	}

	if err := s.profileRepo.UpdatePreferences(ctx, caller.ProfileID, preferences); err != nil {
		return fmt.Errorf("update preferences: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(caller.ProfileID))
	return nil
}

// RewardHistory returns the caller's reward audit trail.
func (s *profileService) RewardHistory(ctx context.Context, caller *Identity) ([]model.RewardEvent, error) {
	if err := RequireRole(caller, RoleUser); err != nil {
		return nil, err
	}
	return s.eventRepo.ListByProfile(ctx, caller.ProfileID)
}
