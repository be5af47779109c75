package handlers

import (
	"net/http"
	"strconv"

	apperrors "claims-analytics-backend/internal/errors"
	"claims-analytics-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"error message"`
}

// respondSuccess writes the success envelope with the payload fields merged
// at the top level.
func respondSuccess(c *gin.Context, status int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Success: false, Message: message})
}

// respondServiceError maps service-layer errors to the response envelope.
// Anything unclassified is logged and reported as a generic 500; upstream
// details never leak to the client.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case apperrors.IsAuthentication(err):
		respondError(c, http.StatusUnauthorized, "Authentication required")
	case apperrors.IsProfileIncomplete(err):
		respondError(c, http.StatusBadRequest, "Profile is not associated with an organization")
	case apperrors.IsValidation(err):
		respondError(c, http.StatusBadRequest, err.Error())
	case apperrors.IsNotFound(err):
		respondError(c, http.StatusNotFound, err.Error())
	default:
		logger.FromGinContext(c).Errorf("request failed: %v", err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// parsePagination reads page and limit from the query string. Values that are
// missing or fail to parse come back as zero; the services normalize from
// there.
func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	return page, limit
}
