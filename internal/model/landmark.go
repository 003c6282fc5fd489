package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LandmarkCategory classifies a point-of-interest submission. The list is
// advisory in lenient mode and enforced in strict mode.
type LandmarkCategory string

const (
	LandmarkCategoryFuel    LandmarkCategory = "FUEL"
	LandmarkCategoryMedical LandmarkCategory = "MEDICAL"
	LandmarkCategoryTrade   LandmarkCategory = "TRADE"
	LandmarkCategoryRest    LandmarkCategory = "REST"
	LandmarkCategoryNav     LandmarkCategory = "NAV"
)

// KnownLandmarkCategories lists the categories the strict validator accepts.
var KnownLandmarkCategories = []LandmarkCategory{
	LandmarkCategoryFuel,
	LandmarkCategoryMedical,
	LandmarkCategoryTrade,
	LandmarkCategoryRest,
	LandmarkCategoryNav,
}

// Landmark represents a point-of-interest submission. IsVerified moves
// false to true exactly once; a verified landmark is only ever deleted,
// never reset.
type Landmark struct {
	ID          uuid.UUID        `json:"id" gorm:"type:char(36);primaryKey"`
	Name        string           `json:"name" gorm:"size:255;not null"`
	Category    LandmarkCategory `json:"category" gorm:"type:varchar(40);not null;index"`
	Description string           `json:"description" gorm:"type:text"`
	Latitude    float64          `json:"latitude" gorm:"not null"`
	Longitude   float64          `json:"longitude" gorm:"not null"`
	ImageURL    string           `json:"image_url,omitempty" gorm:"size:512"`
	SubmittedBy uuid.UUID        `json:"submitted_by" gorm:"type:char(36);not null;index"`
	IsVerified  bool             `json:"is_verified" gorm:"default:false;index"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `json:"-" gorm:"index"`

	// Relations
	Submitter Profile `json:"-" gorm:"foreignKey:SubmittedBy"`
}

// BeforeCreate sets UUID before creating the record.
func (l *Landmark) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
