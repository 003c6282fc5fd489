package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"cityeyes/internal/errors"
	"cityeyes/internal/model"
	"cityeyes/internal/storage"
)

// LandmarkInput carries the raw field values of a landmark submission.
// Coordinates arrive as strings, exactly as the form posts them.
type LandmarkInput struct {
	Name        string
	Category    string
	Description string
	Latitude    string
	Longitude   string
}

// IncidentInput carries the raw field values of an incident report.
type IncidentInput struct {
	Type        string
	Description string
	Severity    string
	Latitude    string
	Longitude   string
}

// SubmissionValidator normalizes inbound submissions before they reach the
// lifecycle store. In lenient mode (the default) enum strings are treated as
// UI suggestions and coordinates are not range-checked; strict mode enforces
// membership and bounds. Ownership always comes from the resolved caller.
type SubmissionValidator struct {
	strict bool
	store  storage.ObjectStore
}

// NewSubmissionValidator creates a submission validator.
func NewSubmissionValidator(strict bool, store storage.ObjectStore) *SubmissionValidator {
	return &SubmissionValidator{strict: strict, store: store}
}

// NormalizeLandmark validates a landmark submission and produces a record
// owned by the submitter.
func (v *SubmissionValidator) NormalizeLandmark(input LandmarkInput, submitter uuid.UUID) (*model.Landmark, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", errors.ErrInvalidSubmission)
	}

	category := strings.ToUpper(strings.TrimSpace(input.Category))
	if category == "" {
		return nil, fmt.Errorf("%w: category is required", errors.ErrInvalidSubmission)
	}
	if v.strict && !knownLandmarkCategory(category) {
		return nil, fmt.Errorf("%w: unknown category %q", errors.ErrInvalidSubmission, category)
	}

	lat, lon, err := v.parseCoordinates(input.Latitude, input.Longitude)
	if err != nil {
		return nil, err
	}

	return &model.Landmark{
		Name:        name,
		Category:    model.LandmarkCategory(category),
		Description: strings.TrimSpace(input.Description),
		Latitude:    lat,
		Longitude:   lon,
		SubmittedBy: submitter,
	}, nil
}

// NormalizeIncident validates an incident report and produces a record
// owned by the reporter.
func (v *SubmissionValidator) NormalizeIncident(input IncidentInput, reporter uuid.UUID) (*model.Incident, error) {
	incidentType := strings.ToUpper(strings.TrimSpace(input.Type))
	if incidentType == "" {
		return nil, fmt.Errorf("%w: type is required", errors.ErrInvalidSubmission)
	}
	if v.strict && !knownIncidentType(incidentType) {
		return nil, fmt.Errorf("%w: unknown type %q", errors.ErrInvalidSubmission, incidentType)
	}

	severity := strings.ToUpper(strings.TrimSpace(input.Severity))
	if severity == "" {
		return nil, fmt.Errorf("%w: severity is required", errors.ErrInvalidSubmission)
	}
	if v.strict && !knownIncidentSeverity(severity) {
		return nil, fmt.Errorf("%w: unknown severity %q", errors.ErrInvalidSubmission, severity)
	}

	lat, lon, err := v.parseCoordinates(input.Latitude, input.Longitude)
	if err != nil {
		return nil, err
	}

	return &model.Incident{
		Type:        model.IncidentType(incidentType),
		Description: strings.TrimSpace(input.Description),
		Severity:    model.IncidentSeverity(severity),
		Latitude:    lat,
		Longitude:   lon,
		ReportedBy:  reporter,
	}, nil
}

// AttachPhoto uploads an optional submission photo and returns its public
// URL. Upload failures degrade to an empty URL; the submission itself must
// never fail because of media.
func (v *SubmissionValidator) AttachPhoto(ctx context.Context, bucket string, owner uuid.UUID, file *multipart.FileHeader) string {
	if v.store == nil || file == nil || file.Size == 0 {
		return ""
	}

	src, err := file.Open()
	if err != nil {
		log.Printf("photo upload skipped: open %s: %v", file.Filename, err)
		return ""
	}
	defer src.Close()

	key := fmt.Sprintf("%s/%s%s", owner, uuid.New(), filepath.Ext(file.Filename))
	url, err := v.store.Put(ctx, bucket, key, src)
	if err != nil {
		log.Printf("photo upload skipped: store %s: %v", key, err)
		return ""
	}
	return url
}

// parseCoordinates parses both coordinates as finite floats. NaN and ±Inf
// are rejected in both modes; range bounds only apply in strict mode.
func (v *SubmissionValidator) parseCoordinates(rawLat, rawLon string) (float64, float64, error) {
	lat, err := parseFinite(rawLat)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: latitude %q", errors.ErrInvalidCoordinates, rawLat)
	}
	lon, err := parseFinite(rawLon)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: longitude %q", errors.ErrInvalidCoordinates, rawLon)
	}

	if v.strict {
		if lat < -90 || lat > 90 {
			return 0, 0, fmt.Errorf("%w: latitude %v out of range", errors.ErrInvalidCoordinates, lat)
		}
		if lon < -180 || lon > 180 {
			return 0, 0, fmt.Errorf("%w: longitude %v out of range", errors.ErrInvalidCoordinates, lon)
		}
	}

	return lat, lon, nil
}

func parseFinite(raw string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not finite")
	}
	return f, nil
}

func knownLandmarkCategory(category string) bool {
	for _, known := range model.KnownLandmarkCategories {
		if string(known) == category {
			return true
		}
	}
	return false
}

func knownIncidentType(incidentType string) bool {
	for _, known := range model.KnownIncidentTypes {
		if string(known) == incidentType {
			return true
		}
	}
	return false
}

func knownIncidentSeverity(severity string) bool {
	for _, known := range model.KnownIncidentSeverities {
		if string(known) == severity {
			return true
		}
	}
	return false
}
