package handlers

import (
	"net/http"

	apperrors "claims-analytics-backend/internal/errors"
	"claims-analytics-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ConfigurationsHandler handles analytics configuration endpoints
type ConfigurationsHandler struct {
	identity       service.IdentityServiceInterface
	configurations service.ConfigurationServiceInterface
}

// NewConfigurationsHandler creates a new configurations handler
func NewConfigurationsHandler(identity service.IdentityServiceInterface, configurations service.ConfigurationServiceInterface) *ConfigurationsHandler {
	return &ConfigurationsHandler{
		identity:       identity,
		configurations: configurations,
	}
}

// List returns the organization's configurations
// @Summary List configurations
// @Description Get all analytics configurations for the authenticated user's organization
// @Tags configurations
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Configurations"
// @Failure 400 {object} ErrorResponse "Profile not associated with an organization"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Router /api/configurations [get]
func (h *ConfigurationsHandler) List(c *gin.Context) {
	principal, err := h.identity.Resolve(c)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	configs, err := h.configurations.List(principal.OrganizationID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"configurations": configs})
}

// Create stores a new configuration
// @Summary Create configuration
// @Description Create an analytics configuration; marking it default clears the previous default
// @Tags configurations
// @Accept json
// @Produce json
// @Param configuration body service.CreateConfigurationRequest true "Configuration to create"
// @Success 201 {object} map[string]interface{} "Created configuration"
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Router /api/configurations [post]
func (h *ConfigurationsHandler) Create(c *gin.Context) {
	principal, err := h.identity.Resolve(c)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	var req service.CreateConfigurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondServiceError(c, apperrors.NewValidationError("", "invalid request body"))
		return
	}

	cfg, err := h.configurations.Create(principal.OrganizationID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, gin.H{"configuration": cfg})
}
