package service

import (
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cityeyes/internal/cache"
	"cityeyes/internal/errors"
	"cityeyes/internal/model"
	"cityeyes/internal/repository"
	"cityeyes/internal/storage"
)

const (
	incidentFeedCacheKey = "incidents:live"
	incidentFeedCacheTTL = 15 * time.Second
)

// IncidentService handles the incident lifecycle: active on report, resolved
// by any authenticated user, silently expired out of live queries after the
// fixed window.
type IncidentService interface {
	Report(ctx context.Context, caller *Identity, input IncidentInput, photo *multipart.FileHeader) (*model.Incident, error)
	Resolve(ctx context.Context, caller *Identity, id uuid.UUID) error
	Delete(ctx context.Context, caller *Identity, id uuid.UUID) error
	ListLive(ctx context.Context) ([]model.Incident, error)
	ListMine(ctx context.Context, caller *Identity) ([]model.Incident, error)
}

type incidentService struct {
	incidentRepo repository.IncidentRepository
	validator    *SubmissionValidator
	rewards      RewardService
	cache        *cache.Client
}

// NewIncidentService creates a new incident service.
func NewIncidentService(
	incidentRepo repository.IncidentRepository,
	validator *SubmissionValidator,
	rewards RewardService,
	cache *cache.Client,
) IncidentService {
	return &incidentService{
		incidentRepo: incidentRepo,
		validator:    validator,
		rewards:      rewards,
		cache:        cache,
	}
}

// Report validates and stores a new active incident with the fixed expiry
// window.
func (s *incidentService) Report(ctx context.Context, caller *Identity, input IncidentInput, photo *multipart.FileHeader) (*model.Incident, error) {
	if err := RequireRole(caller, RoleUser); err != nil {
		return nil, err
	}

	incident, err := s.validator.NormalizeIncident(input, caller.ProfileID)
	if err != nil {
		return nil, err
	}
	incident.ImageURL = s.validator.AttachPhoto(ctx, storage.BucketIncidentPhotos, caller.ProfileID, photo)
	incident.Status = model.IncidentStatusActive
	incident.ExpiresAt = time.Now().Add(model.IncidentTTL)

	if err := s.incidentRepo.Create(ctx, incident); err != nil {
		return nil, fmt.Errorf("create incident: %w", err)
	}

	_ = s.cache.Delete(ctx, incidentFeedCacheKey)
	return incident, nil
}

// Resolve marks a live incident resolved by the caller and rewards them
// exactly once. Any authenticated user may resolve, not just the reporter.
func (s *incidentService) Resolve(ctx context.Context, caller *Identity, id uuid.UUID) error {
	if err := RequireRole(caller, RoleUser); err != nil {
		return err
	}

	now := time.Now()
	rows, err := s.incidentRepo.Resolve(ctx, id, caller.ProfileID, now)
	if err != nil {
		return fmt.Errorf("resolve incident: %w", err)
	}
	if rows == 0 {
		// Distinguish a missing incident from one already resolved/expired.
		if _, err := s.incidentRepo.FindByID(ctx, id); err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrIncidentNotFound
			}
			return fmt.Errorf("find incident: %w", err)
		}
		return errors.ErrIncidentNotActive
	}

	_ = s.cache.Delete(ctx, incidentFeedCacheKey)

	if err := s.rewards.Apply(ctx, caller.ProfileID, model.RewardCauseIncidentResolved, id); err != nil {
		return fmt.Errorf("reward resolver: %w", err)
	}
	return nil
}

// Delete removes an incident.
func (s *incidentService) Delete(ctx context.Context, caller *Identity, id uuid.UUID) error {
	if err := RequireRole(caller, RoleAdminVerified); err != nil {
		return err
	}

	rows, err := s.incidentRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete incident: %w", err)
	}
	if rows == 0 {
		return errors.ErrIncidentNotFound
	}

	_ = s.cache.Delete(ctx, incidentFeedCacheKey)
	return nil
}

// ListLive returns the incidents shown on the map, cache-aside. Expiry is
// evaluated at query time; nothing is written for expired rows.
func (s *incidentService) ListLive(ctx context.Context) ([]model.Incident, error) {
	if data, _ := s.cache.Get(ctx, incidentFeedCacheKey); data != nil {
		var cached []model.Incident
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	incidents, err := s.incidentRepo.ListLive(ctx, time.Now())
	if err != nil {
		return nil, fmt.Errorf("list incidents: %w", err)
	}

	if payload, err := json.Marshal(incidents); err == nil {
		_ = s.cache.Set(ctx, incidentFeedCacheKey, payload, incidentFeedCacheTTL)
	}
	return incidents, nil
}

// ListMine returns the caller's own reports.
func (s *incidentService) ListMine(ctx context.Context, caller *Identity) ([]model.Incident, error) {
	if err := RequireRole(caller, RoleUser); err != nil {
		return nil, err
	}
	return s.incidentRepo.ListByReporter(ctx, caller.ProfileID)
}
