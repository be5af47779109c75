package handlers

import (
	"net/http"

	apperrors "claims-analytics-backend/internal/errors"
	"claims-analytics-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// HighCostClaimantsHandler handles high-cost claimant endpoints
type HighCostClaimantsHandler struct {
	identity  service.IdentityServiceInterface
	claimants service.HighCostClaimantServiceInterface
}

// NewHighCostClaimantsHandler creates a new high-cost claimants handler
func NewHighCostClaimantsHandler(identity service.IdentityServiceInterface, claimants service.HighCostClaimantServiceInterface) *HighCostClaimantsHandler {
	return &HighCostClaimantsHandler{
		identity:  identity,
		claimants: claimants,
	}
}

// Import stores a batch of high-cost claimant records
// @Summary Import high-cost claimants
// @Description Import high-cost claimant records; invalid records are rejected individually with the failing field's message
// @Tags high-cost-claimants
// @Accept json
// @Produce json
// @Param claimants body service.ImportHighCostClaimantsRequest true "Claimant records to import"
// @Success 200 {object} map[string]interface{} "Import result"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Router /api/high-cost-claimants [post]
func (h *HighCostClaimantsHandler) Import(c *gin.Context) {
	principal, err := h.identity.Resolve(c)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	var req service.ImportHighCostClaimantsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondServiceError(c, apperrors.NewValidationError("", "invalid request body"))
		return
	}

	result, err := h.claimants.Import(principal.OrganizationID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"result": result})
}

// List returns one page of the organization's high-cost claimants
// @Summary List high-cost claimants
// @Description Get a paginated list of high-cost claimants ordered by total paid
// @Tags high-cost-claimants
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(50)
// @Success 200 {object} map[string]interface{} "Claimants page"
// @Failure 400 {object} ErrorResponse "Profile not associated with an organization"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Router /api/high-cost-claimants [get]
func (h *HighCostClaimantsHandler) List(c *gin.Context) {
	principal, err := h.identity.Resolve(c)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	page, limit := parsePagination(c)
	result, err := h.claimants.List(principal.OrganizationID, page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{
		"claimants":  result.Claimants,
		"pagination": result.Pagination,
	})
}
