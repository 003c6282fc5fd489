package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileRole is the stored role string. "admin" alone grants nothing;
// elevated access also requires AdminVerified (set only by a super admin).
type ProfileRole string

const (
	ProfileRoleUser  ProfileRole = "user"
	ProfileRoleAdmin ProfileRole = "admin"
)

// Profile represents a registered user with their reputation counters.
type Profile struct {
	ID            uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	FullName      string         `json:"full_name" gorm:"size:255;not null;index"`
	Email         string         `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash  string         `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role          ProfileRole    `json:"role" gorm:"type:varchar(20);not null;default:'user';index"`
	AdminVerified bool           `json:"admin_verified" gorm:"default:false;index"`
	TrustScore    int64          `json:"trust_score" gorm:"not null;default:0"`
	IntelCredits  int64          `json:"intel_credits" gorm:"not null;default:0"`
	Preferences   string         `json:"preferences,omitempty" gorm:"type:text"` // Free-form JSON blob
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
