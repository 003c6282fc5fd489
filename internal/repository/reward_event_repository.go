package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cityeyes/internal/model"
)

// RewardEventRepository defines reward audit persistence operations.
type RewardEventRepository interface {
	Create(ctx context.Context, event *model.RewardEvent) error
	CreateBatch(ctx context.Context, events []model.RewardEvent) error
	ListByProfile(ctx context.Context, profileID uuid.UUID) ([]model.RewardEvent, error)
}

type rewardEventRepository struct {
	db *gorm.DB
}

// NewRewardEventRepository creates a new reward event repository.
func NewRewardEventRepository(db *gorm.DB) RewardEventRepository {
	return &rewardEventRepository{db: db}
}

// Create creates a single reward event.
func (r *rewardEventRepository) Create(ctx context.Context, event *model.RewardEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// CreateBatch creates multiple reward events in a single statement batch.
func (r *rewardEventRepository) CreateBatch(ctx context.Context, events []model.RewardEvent) error {
	if len(events) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(events, 100).Error
}

// ListByProfile lists the reward history for a profile.
func (r *rewardEventRepository) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]model.RewardEvent, error) {
	var events []model.RewardEvent
	if err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("created_at DESC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
