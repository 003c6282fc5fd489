package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"cityeyes/internal/errors"
	"cityeyes/internal/model"
)

func TestSubmissionValidator_NormalizeLandmark(t *testing.T) {
	submitter := uuid.New()

	tests := []struct {
		name    string
		strict  bool
		input   LandmarkInput
		wantErr error
		check   func(*testing.T, *model.Landmark)
	}{
		{
			name:   "normalizes category and trims fields",
			strict: false,
			input: LandmarkInput{
				Name:        "  Makola Market ",
				Category:    " trade ",
				Description: " Main trading hub ",
				Latitude:    "5.5449",
				Longitude:   "-0.2102",
			},
			check: func(t *testing.T, l *model.Landmark) {
				assert.Equal(t, "Makola Market", l.Name)
				assert.Equal(t, model.LandmarkCategoryTrade, l.Category)
				assert.Equal(t, "Main trading hub", l.Description)
				assert.Equal(t, submitter, l.SubmittedBy)
			},
		},
		{
			name:   "lenient mode keeps an unknown category",
			strict: false,
			input: LandmarkInput{
				Name:      "Food Truck",
				Category:  "street-food",
				Latitude:  "5.60",
				Longitude: "-0.18",
			},
			check: func(t *testing.T, l *model.Landmark) {
				assert.Equal(t, model.LandmarkCategory("STREET-FOOD"), l.Category)
			},
		},
		{
			name:   "strict mode rejects an unknown category",
			strict: true,
			input: LandmarkInput{
				Name:      "Food Truck",
				Category:  "street-food",
				Latitude:  "5.60",
				Longitude: "-0.18",
			},
			wantErr: errors.ErrInvalidSubmission,
		},
		{
			name:   "lenient mode keeps out-of-range coordinates",
			strict: false,
			input: LandmarkInput{
				Name:      "Nowhere",
				Category:  "NAV",
				Latitude:  "250.0",
				Longitude: "-400.0",
			},
			check: func(t *testing.T, l *model.Landmark) {
				assert.Equal(t, 250.0, l.Latitude)
				assert.Equal(t, -400.0, l.Longitude)
			},
		},
		{
			name:   "strict mode rejects out-of-range latitude",
			strict: true,
			input: LandmarkInput{
				Name:      "Nowhere",
				Category:  "NAV",
				Latitude:  "250.0",
				Longitude: "-0.18",
			},
			wantErr: errors.ErrInvalidCoordinates,
		},
		{
			name:   "non-numeric latitude is rejected in both modes",
			strict: false,
			input: LandmarkInput{
				Name:      "Somewhere",
				Category:  "FUEL",
				Latitude:  "up north",
				Longitude: "-0.18",
			},
			wantErr: errors.ErrInvalidCoordinates,
		},
		{
			name:   "NaN is rejected even in lenient mode",
			strict: false,
			input: LandmarkInput{
				Name:      "Somewhere",
				Category:  "FUEL",
				Latitude:  "NaN",
				Longitude: "-0.18",
			},
			wantErr: errors.ErrInvalidCoordinates,
		},
		{
			name:   "infinity is rejected even in lenient mode",
			strict: false,
			input: LandmarkInput{
				Name:      "Somewhere",
				Category:  "FUEL",
				Latitude:  "5.60",
				Longitude: "+Inf",
			},
			wantErr: errors.ErrInvalidCoordinates,
		},
		{
			name:   "name is required",
			strict: false,
			input: LandmarkInput{
				Name:      "   ",
				Category:  "FUEL",
				Latitude:  "5.60",
				Longitude: "-0.18",
			},
			wantErr: errors.ErrInvalidSubmission,
		},
		{
			name:   "category is required",
			strict: false,
			input: LandmarkInput{
				Name:      "Somewhere",
				Category:  "",
				Latitude:  "5.60",
				Longitude: "-0.18",
			},
			wantErr: errors.ErrInvalidSubmission,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewSubmissionValidator(tt.strict, nil)
			landmark, err := v.NormalizeLandmark(tt.input, submitter)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, landmark)
				return
			}
			assert.NoError(t, err)
			tt.check(t, landmark)
		})
	}
}

func TestSubmissionValidator_NormalizeIncident(t *testing.T) {
	reporter := uuid.New()

	tests := []struct {
		name    string
		strict  bool
		input   IncidentInput
		wantErr error
		check   func(*testing.T, *model.Incident)
	}{
		{
			name:   "normalizes type and severity",
			strict: true,
			input: IncidentInput{
				Type:      " hazard ",
				Severity:  "high",
				Latitude:  "5.5580",
				Longitude: "-0.1982",
			},
			check: func(t *testing.T, i *model.Incident) {
				assert.Equal(t, model.IncidentTypeHazard, i.Type)
				assert.Equal(t, model.IncidentSeverityHigh, i.Severity)
				assert.Equal(t, reporter, i.ReportedBy)
			},
		},
		{
			name:   "lenient mode keeps an unknown type",
			strict: false,
			input: IncidentInput{
				Type:      "parade",
				Severity:  "low",
				Latitude:  "5.60",
				Longitude: "-0.18",
			},
			check: func(t *testing.T, i *model.Incident) {
				assert.Equal(t, model.IncidentType("PARADE"), i.Type)
			},
		},
		{
			name:   "strict mode rejects an unknown severity",
			strict: true,
			input: IncidentInput{
				Type:      "TRAFFIC",
				Severity:  "apocalyptic",
				Latitude:  "5.60",
				Longitude: "-0.18",
			},
			wantErr: errors.ErrInvalidSubmission,
		},
		{
			name:   "type is required",
			strict: false,
			input: IncidentInput{
				Type:      "",
				Severity:  "low",
				Latitude:  "5.60",
				Longitude: "-0.18",
			},
			wantErr: errors.ErrInvalidSubmission,
		},
		{
			name:   "severity is required",
			strict: false,
			input: IncidentInput{
				Type:      "TRAFFIC",
				Severity:  " ",
				Latitude:  "5.60",
				Longitude: "-0.18",
			},
			wantErr: errors.ErrInvalidSubmission,
		},
		{
			name:   "non-numeric longitude is rejected",
			strict: false,
			input: IncidentInput{
				Type:      "TRAFFIC",
				Severity:  "low",
				Latitude:  "5.60",
				Longitude: "west",
			},
			wantErr: errors.ErrInvalidCoordinates,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewSubmissionValidator(tt.strict, nil)
			incident, err := v.NormalizeIncident(tt.input, reporter)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, incident)
				return
			}
			assert.NoError(t, err)
			tt.check(t, incident)
		})
	}
}
