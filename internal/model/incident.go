package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IncidentTTL is the fixed window during which a reported incident stays
// live. Expiry is evaluated lazily at read time; no background sweep exists.
const IncidentTTL = 4 * time.Hour

// IncidentType classifies a hazard/event report.
type IncidentType string

const (
	IncidentTypeTraffic  IncidentType = "TRAFFIC"
	IncidentTypeHazard   IncidentType = "HAZARD"
	IncidentTypeAccident IncidentType = "ACCIDENT"
	IncidentTypePolice   IncidentType = "POLICE"
)

// KnownIncidentTypes lists the types the strict validator accepts.
var KnownIncidentTypes = []IncidentType{
	IncidentTypeTraffic,
	IncidentTypeHazard,
	IncidentTypeAccident,
	IncidentTypePolice,
}

// IncidentSeverity grades an incident report.
type IncidentSeverity string

const (
	IncidentSeverityLow    IncidentSeverity = "LOW"
	IncidentSeverityMedium IncidentSeverity = "MEDIUM"
	IncidentSeverityHigh   IncidentSeverity = "HIGH"
)

// KnownIncidentSeverities lists the severities the strict validator accepts.
var KnownIncidentSeverities = []IncidentSeverity{
	IncidentSeverityLow,
	IncidentSeverityMedium,
	IncidentSeverityHigh,
}

// IncidentStatus represents the lifecycle status of an incident.
type IncidentStatus string

const (
	IncidentStatusActive   IncidentStatus = "active"
	IncidentStatusResolved IncidentStatus = "resolved"
)

// Incident represents a transient hazard/event report. Once resolved it
// stays resolved; unresolved incidents simply fall out of live queries after
// ExpiresAt.
type Incident struct {
	ID          uuid.UUID        `json:"id" gorm:"type:char(36);primaryKey"`
	Type        IncidentType     `json:"type" gorm:"type:varchar(40);not null;index"`
	Description string           `json:"description" gorm:"type:text"`
	Severity    IncidentSeverity `json:"severity" gorm:"type:varchar(20);not null"`
	Latitude    float64          `json:"latitude" gorm:"not null"`
	Longitude   float64          `json:"longitude" gorm:"not null"`
	ImageURL    string           `json:"image_url,omitempty" gorm:"size:512"`
	ReportedBy  uuid.UUID        `json:"reported_by" gorm:"type:char(36);not null;index"`
	Status      IncidentStatus   `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`
	ExpiresAt   time.Time        `json:"expires_at" gorm:"not null;index"`
	ResolvedAt  *time.Time       `json:"resolved_at,omitempty"`
	ResolvedBy  *uuid.UUID       `json:"resolved_by,omitempty" gorm:"type:char(36)"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `json:"-" gorm:"index"`

	// Relations
	Reporter Profile `json:"-" gorm:"foreignKey:ReportedBy"`
}

// BeforeCreate sets UUID before creating the record.
func (i *Incident) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// IsLive reports whether the incident should appear on the map: still
// active and not yet past its expiry.
func (i *Incident) IsLive(now time.Time) bool {
	return i.Status == IncidentStatusActive && now.Before(i.ExpiresAt)
}
