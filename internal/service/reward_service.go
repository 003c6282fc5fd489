package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"cityeyes/internal/cache"
	"cityeyes/internal/errors"
	"cityeyes/internal/model"
	"cityeyes/internal/repository"
)

// Fixed reward magnitudes per triggering cause.
const (
	LandmarkVerifiedTrustDelta   = 10
	LandmarkVerifiedCreditsDelta = 50
	IncidentResolvedTrustDelta   = 5
	IncidentResolvedCreditsDelta = 20
)

// RewardService applies trust/credit increments to a beneficiary exactly
// once per triggering lifecycle event. At-most-once delivery is the
// caller's job: the lifecycle services invoke Apply only after a
// conditional state transition reported a changed row.
type RewardService interface {
	Apply(ctx context.Context, beneficiary uuid.UUID, cause model.RewardCause, subjectID uuid.UUID) error
}

type rewardService struct {
	profileRepo repository.ProfileRepository
	eventRepo   repository.RewardEventRepository
	cache       *cache.Client
	// compatMode switches to the legacy read-modify-write path. It loses
	// updates under concurrent rewards for the same profile and exists only
	// for stores without atomic increments.
	compatMode bool
	// Channel for async reward audit logging
	eventChannel chan model.RewardEvent
}

// NewRewardService creates a new reward service and starts its audit worker.
func NewRewardService(
	profileRepo repository.ProfileRepository,
	eventRepo repository.RewardEventRepository,
	cache *cache.Client,
	compatMode bool,
) RewardService {
	service := &rewardService{
		profileRepo:  profileRepo,
		eventRepo:    eventRepo,
		cache:        cache,
		compatMode:   compatMode,
		eventChannel: make(chan model.RewardEvent, 100),
	}

	go service.auditWorker(context.Background())

	return service
}

// deltasFor returns the fixed deltas for a cause.
func deltasFor(cause model.RewardCause) (trustDelta, creditsDelta int64, err error) {
	switch cause {
	case model.RewardCauseLandmarkVerified:
		return LandmarkVerifiedTrustDelta, LandmarkVerifiedCreditsDelta, nil
	case model.RewardCauseIncidentResolved:
		return IncidentResolvedTrustDelta, IncidentResolvedCreditsDelta, nil
	default:
		return 0, 0, fmt.Errorf("unknown reward cause %q", cause)
	}
}

// Apply credits the beneficiary's profile for the given cause.
func (s *rewardService) Apply(ctx context.Context, beneficiary uuid.UUID, cause model.RewardCause, subjectID uuid.UUID) error {
	trustDelta, creditsDelta, err := deltasFor(cause)
	if err != nil {
		return err
	}

	if s.compatMode {
		if err := s.applyCompat(ctx, beneficiary, trustDelta, creditsDelta); err != nil {
			return err
		}
	} else {
		rows, err := s.profileRepo.IncrementScores(ctx, beneficiary, trustDelta, creditsDelta)
		if err != nil {
			return fmt.Errorf("apply reward: %w", err)
		}
		if rows == 0 {
			return errors.ErrProfileNotFound
		}
	}

	// Invalidate the cached profile so scores are fresh on the next read.
	_ = s.cache.Delete(ctx, fmt.Sprintf("profile:%s", beneficiary))

	s.recordEvent(ctx, model.RewardEvent{
		ProfileID:    beneficiary,
		Cause:        cause,
		TrustDelta:   trustDelta,
		CreditsDelta: creditsDelta,
		SubjectID:    subjectID,
	})

	return nil
}

// applyCompat is the degraded read-modify-write path. Two concurrent rewards
// for the same profile can clobber each other here; the atomic path above is
// the only one safe under concurrency.
func (s *rewardService) applyCompat(ctx context.Context, beneficiary uuid.UUID, trustDelta, creditsDelta int64) error {
	profile, err := s.profileRepo.FindByID(ctx, beneficiary)
	if err != nil {
		return errors.ErrProfileNotFound
	}
	profile.TrustScore += trustDelta
	profile.IntelCredits += creditsDelta
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return fmt.Errorf("apply reward (compat): %w", err)
	}
	return nil
}

// recordEvent queues an audit row without blocking the reward path.
func (s *rewardService) recordEvent(ctx context.Context, event model.RewardEvent) {
	select {
	case s.eventChannel <- event:
	default:
		// Channel full, write synchronously as fallback
		if err := s.eventRepo.Create(ctx, &event); err != nil {
			log.Printf("reward audit write failed: %v", err)
		}
	}
}

// auditWorker batches reward events into the audit table.
func (s *rewardService) auditWorker(ctx context.Context) {
	batch := make([]model.RewardEvent, 0, 10)
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		if err := s.eventRepo.CreateBatch(ctx, batch); err != nil {
			log.Printf("reward audit batch failed: %v", err)
		}
		batch = batch[:0]
	}

	for {
		select {
		case event, ok := <-s.eventChannel:
			if !ok {
				flush()
				return
			}
			batch = append(batch, event)
			if len(batch) >= 10 {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-ctx.Done():
			return
		}
	}
}
