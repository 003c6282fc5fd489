package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cityeyes/internal/model"
)

// ProfileRepository defines profile persistence operations.
type ProfileRepository interface {
	Create(ctx context.Context, profile *model.Profile) error
	Update(ctx context.Context, profile *model.Profile) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Profile, error)
	FindByEmail(ctx context.Context, email string) (*model.Profile, error)
	SearchByName(ctx context.Context, query string, limit int) ([]model.Profile, error)
	// GrantVerifiedAdmin sets role=admin and admin_verified=true. The only
	// path by which a profile becomes a verified admin.
	GrantVerifiedAdmin(ctx context.Context, id uuid.UUID) (int64, error)
	// IncrementScores applies trust/credit deltas with a single SQL-side
	// atomic add. Safe under concurrent rewards for the same profile.
	IncrementScores(ctx context.Context, id uuid.UUID, trustDelta, creditsDelta int64) (int64, error)
	UpdatePreferences(ctx context.Context, id uuid.UUID, preferences string) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// Create creates a new profile.
func (r *profileRepository) Create(ctx context.Context, profile *model.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

// Update updates an existing profile.
func (r *profileRepository) Update(ctx context.Context, profile *model.Profile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

// FindByID finds a profile by ID.
func (r *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindByEmail finds a profile by email.
func (r *profileRepository) FindByEmail(ctx context.Context, email string) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// SearchByName finds profiles whose display name contains the query.
func (r *profileRepository) SearchByName(ctx context.Context, query string, limit int) ([]model.Profile, error) {
	var profiles []model.Profile
	if err := r.db.WithContext(ctx).
		Where("full_name LIKE ?", "%"+query+"%").
		Limit(limit).
		Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

// GrantVerifiedAdmin promotes a profile to verified admin.
func (r *profileRepository) GrantVerifiedAdmin(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Profile{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"role":           model.ProfileRoleAdmin,
			"admin_verified": true,
		})
	return res.RowsAffected, res.Error
}

// IncrementScores adds the deltas to the stored counters in one UPDATE.
func (r *profileRepository) IncrementScores(ctx context.Context, id uuid.UUID, trustDelta, creditsDelta int64) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Profile{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"trust_score":   gorm.Expr("trust_score + ?", trustDelta),
			"intel_credits": gorm.Expr("intel_credits + ?", creditsDelta),
		})
	return res.RowsAffected, res.Error
}

// UpdatePreferences replaces the free-form preference blob.
func (r *profileRepository) UpdatePreferences(ctx context.Context, id uuid.UUID, preferences string) error {
	return r.db.WithContext(ctx).Model(&model.Profile{}).
		Where("id = ?", id).
		Update("preferences", preferences).Error
}
