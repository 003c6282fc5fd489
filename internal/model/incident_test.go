package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIncident_IsLive(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		incident Incident
		want     bool
	}{
		{
			name: "active before expiry",
			incident: Incident{
				Status:    IncidentStatusActive,
				ExpiresAt: now.Add(time.Hour),
			},
			want: true,
		},
		{
			name: "active past expiry",
			incident: Incident{
				Status:    IncidentStatusActive,
				ExpiresAt: now.Add(-time.Minute),
			},
			want: false,
		},
		{
			name: "exactly at expiry",
			incident: Incident{
				Status:    IncidentStatusActive,
				ExpiresAt: now,
			},
			want: false,
		},
		{
			name: "resolved before expiry",
			incident: Incident{
				Status:    IncidentStatusResolved,
				ExpiresAt: now.Add(time.Hour),
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.incident.IsLive(now))
		})
	}
}
