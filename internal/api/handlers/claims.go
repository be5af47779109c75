package handlers

import (
	"net/http"

	"claims-analytics-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ClaimsHandler handles claim record endpoints
type ClaimsHandler struct {
	identity service.IdentityServiceInterface
	claims   service.ClaimServiceInterface
}

// NewClaimsHandler creates a new claims handler
func NewClaimsHandler(identity service.IdentityServiceInterface, claims service.ClaimServiceInterface) *ClaimsHandler {
	return &ClaimsHandler{
		identity: identity,
		claims:   claims,
	}
}

// List returns one page of the organization's claims
// @Summary List claims
// @Description Get a paginated list of claim records for the authenticated user's organization
// @Tags claims
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(50)
// @Param upload_session_id query string false "Filter by upload session"
// @Param month query string false "Filter by month (YYYY-MM)"
// @Param service_type query string false "Filter by service type"
// @Param claimant_id query string false "Filter by claimant"
// @Success 200 {object} map[string]interface{} "Claims page"
// @Failure 400 {object} ErrorResponse "Profile not associated with an organization"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Router /api/claims [get]
func (h *ClaimsHandler) List(c *gin.Context) {
	principal, err := h.identity.Resolve(c)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	page, limit := parsePagination(c)
	params := service.ClaimListParams{
		Page:            page,
		Limit:           limit,
		UploadSessionID: c.Query("upload_session_id"),
		MonthKey:        c.Query("month"),
		ServiceType:     c.Query("service_type"),
		ClaimantID:      c.Query("claimant_id"),
	}

	result, err := h.claims.List(principal.OrganizationID, params)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{
		"claims":     result.Claims,
		"pagination": result.Pagination,
	})
}
