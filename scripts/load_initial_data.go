package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"claims-analytics-backend/internal/config"
	"claims-analytics-backend/internal/database"
	"claims-analytics-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Simple structures that directly match DB schema
type OrganizationData struct {
	Name        string `yaml:"name"`
	DisplayName string `yaml:"display_name"`
}

type ProfileData struct {
	UserID           string `yaml:"user_id"`
	Email            string `yaml:"email"`
	FullName         string `yaml:"full_name"`
	OrganizationName string `yaml:"organization_name,omitempty"`
}

type ConfigurationData struct {
	Name             string                 `yaml:"name"`
	OrganizationName string                 `yaml:"organization_name"`
	IsDefault        bool                   `yaml:"is_default"`
	Config           map[string]interface{} `yaml:"config"`
}

type SeedData struct {
	Organizations  []OrganizationData  `yaml:"organizations"`
	Profiles       []ProfileData       `yaml:"profiles"`
	Configurations []ConfigurationData `yaml:"configurations"`
}

func main() {
	seedFile := "data/seed.yaml"
	if len(os.Args) > 1 {
		seedFile = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	raw, err := os.ReadFile(seedFile)
	if err != nil {
		log.Fatalf("Failed to read seed file %s: %v", seedFile, err)
	}

	var data SeedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		log.Fatalf("Failed to parse seed file: %v", err)
	}

	if err := loadSeedData(db, &data); err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}

	log.Printf("Seed data loaded: %d organizations, %d profiles, %d configurations",
		len(data.Organizations), len(data.Profiles), len(data.Configurations))
}

func loadSeedData(db *gorm.DB, data *SeedData) error {
	orgsByName := make(map[string]*models.Organization)

	for _, orgData := range data.Organizations {
		org := &models.Organization{
			Name:        orgData.Name,
			DisplayName: orgData.DisplayName,
		}
		err := db.Where("name = ?", orgData.Name).FirstOrCreate(org).Error
		if err != nil {
			return fmt.Errorf("failed to create organization %s: %w", orgData.Name, err)
		}
		orgsByName[orgData.Name] = org
	}

	for _, profileData := range data.Profiles {
		profile := &models.Profile{
			UserID:   profileData.UserID,
			Email:    profileData.Email,
			FullName: profileData.FullName,
		}
		if profileData.OrganizationName != "" {
			org, ok := orgsByName[profileData.OrganizationName]
			if !ok {
				return fmt.Errorf("profile %s references unknown organization %s",
					profileData.UserID, profileData.OrganizationName)
			}
			profile.OrganizationID = &org.ID
		}
		err := db.Where("user_id = ?", profileData.UserID).FirstOrCreate(profile).Error
		if err != nil {
			return fmt.Errorf("failed to create profile %s: %w", profileData.UserID, err)
		}
	}

	for _, cfgData := range data.Configurations {
		org, ok := orgsByName[cfgData.OrganizationName]
		if !ok {
			return fmt.Errorf("configuration %s references unknown organization %s",
				cfgData.Name, cfgData.OrganizationName)
		}

		payload, err := json.Marshal(cfgData.Config)
		if err != nil {
			return fmt.Errorf("failed to encode configuration %s: %w", cfgData.Name, err)
		}

		configuration := &models.Configuration{
			OrganizationID: org.ID,
			Name:           cfgData.Name,
			Config:         payload,
			IsDefault:      cfgData.IsDefault,
		}
		err = db.Where("organization_id = ? AND name = ?", org.ID, cfgData.Name).
			FirstOrCreate(configuration).Error
		if err != nil {
			return fmt.Errorf("failed to create configuration %s: %w", cfgData.Name, err)
		}
	}

	return nil
}
