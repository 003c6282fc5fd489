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
	landmarkFeedCacheKey = "landmarks:verified"
	landmarkFeedCacheTTL = 30 * time.Second
)

// LandmarkService handles the landmark lifecycle: unverified on submission,
// verified once by an admin, deletable by an admin at any point.
type LandmarkService interface {
	Submit(ctx context.Context, caller *Identity, input LandmarkInput, photo *multipart.FileHeader) (*model.Landmark, error)
	Verify(ctx context.Context, caller *Identity, id uuid.UUID) error
	Delete(ctx context.Context, caller *Identity, id uuid.UUID) error
	ListLive(ctx context.Context) ([]model.Landmark, error)
	ListPending(ctx context.Context, caller *Identity) ([]model.Landmark, error)
	ListMine(ctx context.Context, caller *Identity) ([]model.Landmark, error)
}

type landmarkService struct {
	landmarkRepo repository.LandmarkRepository
	validator    *SubmissionValidator
	rewards      RewardService
	cache        *cache.Client
}

// NewLandmarkService creates a new landmark service.
func NewLandmarkService(
	landmarkRepo repository.LandmarkRepository,
	validator *SubmissionValidator,
	rewards RewardService,
	cache *cache.Client,
) LandmarkService {
	return &landmarkService{
		landmarkRepo: landmarkRepo,
		validator:    validator,
		rewards:      rewards,
		cache:        cache,
	}
}

// Submit validates and stores a new unverified landmark owned by the caller.
func (s *landmarkService) Submit(ctx context.Context, caller *Identity, input LandmarkInput, photo *multipart.FileHeader) (*model.Landmark, error) {
	if err := RequireRole(caller, RoleUser); err != nil {
		return nil, err
	}

	landmark, err := s.validator.NormalizeLandmark(input, caller.ProfileID)
	if err != nil {
		return nil, err
	}
	landmark.ImageURL = s.validator.AttachPhoto(ctx, storage.BucketLandmarkPhotos, caller.ProfileID, photo)
	landmark.IsVerified = false

	if err := s.landmarkRepo.Create(ctx, landmark); err != nil {
		return nil, fmt.Errorf("create landmark: %w", err)
	}
	return landmark, nil
}

// Verify flips the landmark to verified and rewards its submitter exactly
// once. Re-verifying an already verified landmark is a no-op, not an error.
func (s *landmarkService) Verify(ctx context.Context, caller *Identity, id uuid.UUID) error {
	if err := RequireRole(caller, RoleAdminVerified); err != nil {
		return err
	}

	landmark, err := s.landmarkRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrLandmarkNotFound
		}
		return fmt.Errorf("find landmark: %w", err)
	}

	rows, err := s.landmarkRepo.MarkVerified(ctx, id)
	if err != nil {
		return fmt.Errorf("verify landmark: %w", err)
	}
	if rows == 0 {
		// Already verified: a concurrent or repeated verify won. The reward
		// was applied by whoever flipped the flag.
		return nil
	}

	_ = s.cache.Delete(ctx, landmarkFeedCacheKey)

	if err := s.rewards.Apply(ctx, landmark.SubmittedBy, model.RewardCauseLandmarkVerified, landmark.ID); err != nil {
		return fmt.Errorf("reward submitter: %w", err)
	}
	return nil
}

// Delete removes a landmark, verified or not.
func (s *landmarkService) Delete(ctx context.Context, caller *Identity, id uuid.UUID) error {
	if err := RequireRole(caller, RoleAdminVerified); err != nil {
		return err
	}

	rows, err := s.landmarkRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete landmark: %w", err)
	}
	if rows == 0 {
		return errors.ErrLandmarkNotFound
	}

	_ = s.cache.Delete(ctx, landmarkFeedCacheKey)
	return nil
}

// ListLive returns the verified landmarks shown on the map, cache-aside.
func (s *landmarkService) ListLive(ctx context.Context) ([]model.Landmark, error) {
	if data, _ := s.cache.Get(ctx, landmarkFeedCacheKey); data != nil {
		var cached []model.Landmark
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	landmarks, err := s.landmarkRepo.ListVerified(ctx)
	if err != nil {
		return nil, fmt.Errorf("list landmarks: %w", err)
	}

	if payload, err := json.Marshal(landmarks); err == nil {
		_ = s.cache.Set(ctx, landmarkFeedCacheKey, payload, landmarkFeedCacheTTL)
	}
	return landmarks, nil
}

// ListPending returns the admin review queue.
func (s *landmarkService) ListPending(ctx context.Context, caller *Identity) ([]model.Landmark, error) {
	if err := RequireRole(caller, RoleAdminVerified); err != nil {
		return nil, err
	}
	return s.landmarkRepo.ListUnverified(ctx)
}

// ListMine returns the caller's own submissions, including unverified ones.
func (s *landmarkService) ListMine(ctx context.Context, caller *Identity) ([]model.Landmark, error) {
	if err := RequireRole(caller, RoleUser); err != nil {
		return nil, err
	}
	return s.landmarkRepo.ListBySubmitter(ctx, caller.ProfileID)
}
