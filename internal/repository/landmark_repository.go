package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cityeyes/internal/model"
)

// LandmarkRepository defines landmark persistence operations.
type LandmarkRepository interface {
	Create(ctx context.Context, landmark *model.Landmark) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Landmark, error)
	// MarkVerified flips is_verified only when it is still false and reports
	// how many rows changed. Zero rows on an existing landmark means a
	// concurrent or repeated verify already won; callers must not reward in
	// that case.
	MarkVerified(ctx context.Context, id uuid.UUID) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	ListVerified(ctx context.Context) ([]model.Landmark, error)
	ListUnverified(ctx context.Context) ([]model.Landmark, error)
	ListBySubmitter(ctx context.Context, submitter uuid.UUID) ([]model.Landmark, error)
}

type landmarkRepository struct {
	db *gorm.DB
}

// NewLandmarkRepository creates a new landmark repository.
func NewLandmarkRepository(db *gorm.DB) LandmarkRepository {
	return &landmarkRepository{db: db}
}

// Create creates a new landmark.
func (r *landmarkRepository) Create(ctx context.Context, landmark *model.Landmark) error {
	return r.db.WithContext(ctx).Create(landmark).Error
}

// FindByID finds a landmark by ID.
func (r *landmarkRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Landmark, error) {
	var landmark model.Landmark
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&landmark).Error; err != nil {
		return nil, err
	}
	return &landmark, nil
}

// MarkVerified performs the one-way unverified -> verified transition.
func (r *landmarkRepository) MarkVerified(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Landmark{}).
		Where("id = ? AND is_verified = ?", id, false).
		Update("is_verified", true)
	return res.RowsAffected, res.Error
}

// Delete removes a landmark.
func (r *landmarkRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Landmark{})
	return res.RowsAffected, res.Error
}

// ListVerified lists all verified landmarks.
func (r *landmarkRepository) ListVerified(ctx context.Context) ([]model.Landmark, error) {
	var landmarks []model.Landmark
	if err := r.db.WithContext(ctx).
		Where("is_verified = ?", true).
		Order("created_at DESC").
		Find(&landmarks).Error; err != nil {
		return nil, err
	}
	return landmarks, nil
}

// ListUnverified lists the admin review queue.
func (r *landmarkRepository) ListUnverified(ctx context.Context) ([]model.Landmark, error) {
	var landmarks []model.Landmark
	if err := r.db.WithContext(ctx).
		Where("is_verified = ?", false).
		Order("created_at ASC").
		Find(&landmarks).Error; err != nil {
		return nil, err
	}
	return landmarks, nil
}

// ListBySubmitter lists all landmarks submitted by a profile.
func (r *landmarkRepository) ListBySubmitter(ctx context.Context, submitter uuid.UUID) ([]model.Landmark, error) {
	var landmarks []model.Landmark
	if err := r.db.WithContext(ctx).
		Where("submitted_by = ?", submitter).
		Order("created_at DESC").
		Find(&landmarks).Error; err != nil {
		return nil, err
	}
	return landmarks, nil
}
