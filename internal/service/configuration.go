package service

import (
	"encoding/json"
	"fmt"

	"claims-analytics-backend/internal/database/models"
	apperrors "claims-analytics-backend/internal/errors"
	"claims-analytics-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CreateConfigurationRequest represents the request to create a configuration
type CreateConfigurationRequest struct {
	Name      string          `json:"name" validate:"required,min=1,max=100"`
	Config    json.RawMessage `json:"config" validate:"required"`
	IsDefault bool            `json:"is_default"`
}

// ConfigurationService handles business logic for configurations
type ConfigurationService struct {
	repo      repository.ConfigurationRepositoryInterface
	validator *validator.Validate
}

// NewConfigurationService creates a new configuration service
func NewConfigurationService(repo repository.ConfigurationRepositoryInterface, validator *validator.Validate) *ConfigurationService {
	return &ConfigurationService{
		repo:      repo,
		validator: validator,
	}
}

// List retrieves the organization's configurations, newest first
func (s *ConfigurationService) List(orgID uuid.UUID) ([]models.Configuration, error) {
	configs, err := s.repo.ListByOrganization(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list configurations: %w", err)
	}
	if configs == nil {
		configs = []models.Configuration{}
	}
	return configs, nil
}

// Create validates and stores a configuration. The default-flag swap happens
// transactionally in the repository.
func (s *ConfigurationService) Create(orgID uuid.UUID, req *CreateConfigurationRequest) (*models.Configuration, error) {
	if req.Name == "" {
		return nil, apperrors.NewValidationError("name", "name is required")
	}
	if len(req.Config) == 0 || string(req.Config) == "null" {
		return nil, apperrors.NewValidationError("config", "config is required")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	cfg := &models.Configuration{
		OrganizationID: orgID,
		Name:           req.Name,
		Config:         req.Config,
		IsDefault:      req.IsDefault,
	}

	if err := s.repo.Create(cfg); err != nil {
		return nil, fmt.Errorf("failed to create configuration: %w", err)
	}

	return cfg, nil
}
