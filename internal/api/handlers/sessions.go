package handlers

import (
	"net/http"

	"claims-analytics-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SessionsHandler handles upload session endpoints
type SessionsHandler struct {
	identity service.IdentityServiceInterface
	sessions service.UploadSessionServiceInterface
}

// NewSessionsHandler creates a new sessions handler
func NewSessionsHandler(identity service.IdentityServiceInterface, sessions service.UploadSessionServiceInterface) *SessionsHandler {
	return &SessionsHandler{
		identity: identity,
		sessions: sessions,
	}
}

// List returns one page of the organization's upload sessions
// @Summary List upload sessions
// @Description Get a paginated list of upload sessions with claim counts for the organization
// @Tags sessions
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Param status query string false "Filter by status (processing, completed, failed)"
// @Success 200 {object} map[string]interface{} "Sessions page"
// @Failure 400 {object} ErrorResponse "Profile not associated with an organization"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Router /api/sessions [get]
func (h *SessionsHandler) List(c *gin.Context) {
	principal, err := h.identity.Resolve(c)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	page, limit := parsePagination(c)
	params := service.SessionListParams{
		Page:   page,
		Limit:  limit,
		Status: c.Query("status"),
	}

	result, err := h.sessions.List(principal.OrganizationID, params)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{
		"sessions":   result.Sessions,
		"pagination": result.Pagination,
	})
}
