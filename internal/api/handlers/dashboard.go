package handlers

import (
	"net/http"

	"claims-analytics-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler handles the dashboard stats endpoint
type DashboardHandler struct {
	identity  service.IdentityServiceInterface
	dashboard service.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(identity service.IdentityServiceInterface, dashboard service.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{
		identity:  identity,
		dashboard: dashboard,
	}
}

// Stats returns the organization's dashboard aggregates
// @Summary Dashboard statistics
// @Description Get claim totals, recent uploads, monthly and service-type breakdowns for the organization
// @Tags dashboard
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Dashboard statistics"
// @Failure 400 {object} ErrorResponse "Profile not associated with an organization"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Router /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	principal, err := h.identity.Resolve(c)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	stats, err := h.dashboard.Stats(principal.OrganizationID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"stats": stats})
}
