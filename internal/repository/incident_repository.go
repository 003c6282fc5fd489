package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cityeyes/internal/model"
)

// IncidentRepository defines incident persistence operations.
type IncidentRepository interface {
	Create(ctx context.Context, incident *model.Incident) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Incident, error)
	// Resolve performs the active -> resolved transition only while the
	// incident is still live and reports how many rows changed. Zero rows on
	// an existing incident means it was already resolved or has expired;
	// callers must not reward in that case.
	Resolve(ctx context.Context, id uuid.UUID, resolvedBy uuid.UUID, now time.Time) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	// ListLive returns incidents with status=active and expires_at in the
	// future. Expiry is purely a query predicate; no row is ever written on
	// expiry.
	ListLive(ctx context.Context, now time.Time) ([]model.Incident, error)
	ListByReporter(ctx context.Context, reporter uuid.UUID) ([]model.Incident, error)
}

type incidentRepository struct {
	db *gorm.DB
}

// NewIncidentRepository creates a new incident repository.
func NewIncidentRepository(db *gorm.DB) IncidentRepository {
	return &incidentRepository{db: db}
}

// Create creates a new incident.
func (r *incidentRepository) Create(ctx context.Context, incident *model.Incident) error {
	return r.db.WithContext(ctx).Create(incident).Error
}

// FindByID finds an incident by ID.
func (r *incidentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Incident, error) {
	var incident model.Incident
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&incident).Error; err != nil {
		return nil, err
	}
	return &incident, nil
}

// Resolve performs the conditional active -> resolved transition.
func (r *incidentRepository) Resolve(ctx context.Context, id uuid.UUID, resolvedBy uuid.UUID, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Incident{}).
		Where("id = ? AND status = ? AND expires_at > ?", id, model.IncidentStatusActive, now).
		Updates(map[string]interface{}{
			"status":      model.IncidentStatusResolved,
			"resolved_at": now,
			"resolved_by": resolvedBy,
		})
	return res.RowsAffected, res.Error
}

// Delete removes an incident.
func (r *incidentRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Incident{})
	return res.RowsAffected, res.Error
}

// ListLive lists incidents that are active and not yet expired.
func (r *incidentRepository) ListLive(ctx context.Context, now time.Time) ([]model.Incident, error) {
	var incidents []model.Incident
	if err := r.db.WithContext(ctx).
		Where("status = ? AND expires_at > ?", model.IncidentStatusActive, now).
		Order("created_at DESC").
		Find(&incidents).Error; err != nil {
		return nil, err
	}
	return incidents, nil
}

// ListByReporter lists all incidents reported by a profile.
func (r *incidentRepository) ListByReporter(ctx context.Context, reporter uuid.UUID) ([]model.Incident, error) {
	var incidents []model.Incident
	if err := r.db.WithContext(ctx).
		Where("reported_by = ?", reporter).
		Order("created_at DESC").
		Find(&incidents).Error; err != nil {
		return nil, err
	}
	return incidents, nil
}
