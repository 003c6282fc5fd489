package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RewardCause identifies the lifecycle transition that triggered a reward.
type RewardCause string

const (
	RewardCauseLandmarkVerified RewardCause = "landmark_verified"
	RewardCauseIncidentResolved RewardCause = "incident_resolved"
)

// RewardEvent is an audit record for every reward applied to a profile.
// Events are written asynchronously and are never on the critical path of
// the reward itself.
type RewardEvent struct {
	ID           uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	ProfileID    uuid.UUID      `json:"profile_id" gorm:"type:char(36);not null;index"`
	Cause        RewardCause    `json:"cause" gorm:"type:varchar(40);not null;index"`
	TrustDelta   int64          `json:"trust_delta" gorm:"not null"`
	CreditsDelta int64          `json:"credits_delta" gorm:"not null"`
	SubjectID    uuid.UUID      `json:"subject_id" gorm:"type:char(36)"` // landmark or incident
	CreatedAt    time.Time      `json:"created_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (e *RewardEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
