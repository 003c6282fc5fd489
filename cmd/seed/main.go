package main

import (
	"context"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"cityeyes/internal/config"
	"cityeyes/internal/db"
	"cityeyes/internal/model"
	"cityeyes/internal/repository"
)

const seedPassword = "password123"

type seedProfile struct {
	FullName      string
	Email         string
	Role          model.ProfileRole
	AdminVerified bool
}

var seedProfiles = []seedProfile{
	{FullName: "Akosua Mensah", Email: "akosua@example.com", Role: model.ProfileRoleUser},
	{FullName: "Kwame Boateng", Email: "kwame@example.com", Role: model.ProfileRoleUser},
	{FullName: "Efua Owusu", Email: "efua@example.com", Role: model.ProfileRoleAdmin, AdminVerified: true},
	{FullName: "Yaw Darko", Email: "yaw@example.com", Role: model.ProfileRoleAdmin},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.Profile{},
		&model.Landmark{},
		&model.Incident{},
		&model.RewardEvent{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	profileRepo := repository.NewProfileRepository(gormDB)
	landmarkRepo := repository.NewLandmarkRepository(gormDB)
	incidentRepo := repository.NewIncidentRepository(gormDB)
	ctx := context.Background()

	profiles, err := seedProfilesIntoDB(ctx, profileRepo)
	if err != nil {
		log.Fatalf("Failed to seed profiles: %v", err)
	}
	log.Printf("Seeded %d profiles (password %q)", len(profiles), seedPassword)

	submitter := profiles["akosua@example.com"]

	landmarks := []model.Landmark{
		{
			Name:        "Shell Station",
			Category:    model.LandmarkCategoryFuel,
			Description: "24h fuel and air pump",
			Latitude:    5.6037,
			Longitude:   -0.1870,
			SubmittedBy: submitter.ID,
			IsVerified:  true,
		},
		{
			Name:        "Ridge Hospital",
			Category:    model.LandmarkCategoryMedical,
			Description: "Emergency ward entrance on the east side",
			Latitude:    5.5666,
			Longitude:   -0.1963,
			SubmittedBy: submitter.ID,
		},
		{
			Name:        "Makola Market",
			Category:    model.LandmarkCategoryTrade,
			Description: "Main trading hub, busy after 09:00",
			Latitude:    5.5449,
			Longitude:   -0.2102,
			SubmittedBy: submitter.ID,
		},
	}
	for i := range landmarks {
		if err := landmarkRepo.Create(ctx, &landmarks[i]); err != nil {
			log.Fatalf("Failed to seed landmark %q: %v", landmarks[i].Name, err)
		}
	}
	log.Printf("Seeded %d landmarks", len(landmarks))

	reporter := profiles["kwame@example.com"]
	now := time.Now()

	incidents := []model.Incident{
		{
			Type:        model.IncidentTypeTraffic,
			Description: "Standstill on the N1 interchange",
			Severity:    model.IncidentSeverityMedium,
			Latitude:    5.6060,
			Longitude:   -0.2300,
			ReportedBy:  reporter.ID,
			Status:      model.IncidentStatusActive,
			ExpiresAt:   now.Add(model.IncidentTTL),
		},
		{
			Type:        model.IncidentTypeHazard,
			Description: "Open manhole near the bus stop",
			Severity:    model.IncidentSeverityHigh,
			Latitude:    5.5580,
			Longitude:   -0.1982,
			ReportedBy:  reporter.ID,
			Status:      model.IncidentStatusActive,
			ExpiresAt:   now.Add(model.IncidentTTL),
		},
	}
	for i := range incidents {
		if err := incidentRepo.Create(ctx, &incidents[i]); err != nil {
			log.Fatalf("Failed to seed incident %q: %v", incidents[i].Description, err)
		}
	}
	log.Printf("Seeded %d incidents", len(incidents))

	log.Println("Seed completed successfully!")
}

// seedProfilesIntoDB creates the demo profiles, skipping ones that exist.
func seedProfilesIntoDB(ctx context.Context, repo repository.ProfileRepository) (map[string]*model.Profile, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), 10)
	if err != nil {
		return nil, err
	}

	out := make(map[string]*model.Profile, len(seedProfiles))
	for _, sp := range seedProfiles {
		existing, err := repo.FindByEmail(ctx, sp.Email)
		if err == nil {
			log.Printf("Profile %s already exists, skipping", sp.Email)
			out[sp.Email] = existing
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}

		profile := &model.Profile{
			FullName:      sp.FullName,
			Email:         sp.Email,
			PasswordHash:  string(hash),
			Role:          sp.Role,
			AdminVerified: sp.AdminVerified,
		}
		if err := repo.Create(ctx, profile); err != nil {
			return nil, err
		}
		out[sp.Email] = profile
	}
	return out, nil
}
