package repository

import (
	"claims-analytics-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ConfigurationRepository handles database operations for configurations
type ConfigurationRepository struct {
	db *gorm.DB
}

// NewConfigurationRepository creates a new configuration repository
func NewConfigurationRepository(db *gorm.DB) *ConfigurationRepository {
	return &ConfigurationRepository{db: db}
}

// Create inserts a configuration. A default insert takes a row lock on the
// organization before clearing the previous default, so concurrent default
// writers for the same organization are serialized and at most one default
// row survives.
func (r *ConfigurationRepository) Create(cfg *models.Configuration) error {
	if !cfg.IsDefault {
		return r.db.Create(cfg).Error
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		var org models.Organization
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", cfg.OrganizationID).
			First(&org).Error
		if err != nil {
			return err
		}

		err = tx.Model(&models.Configuration{}).
			Where("organization_id = ? AND is_default", cfg.OrganizationID).
			Update("is_default", false).Error
		if err != nil {
			return err
		}
		return tx.Create(cfg).Error
	})
}

// ListByOrganization retrieves an organization's configurations, newest first
func (r *ConfigurationRepository) ListByOrganization(orgID uuid.UUID) ([]models.Configuration, error) {
	var configs []models.Configuration
	err := r.db.Where("organization_id = ?", orgID).
		Order("created_at DESC").
		Find(&configs).Error
	if err != nil {
		return nil, err
	}
	return configs, nil
}
