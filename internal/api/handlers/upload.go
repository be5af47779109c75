package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	apperrors "claims-analytics-backend/internal/errors"
	"claims-analytics-backend/internal/logger"
	"claims-analytics-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UploadHandler handles claims file uploads
type UploadHandler struct {
	identity service.IdentityServiceInterface
	ingest   service.IngestServiceInterface
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(identity service.IdentityServiceInterface, ingest service.IngestServiceInterface) *UploadHandler {
	return &UploadHandler{
		identity: identity,
		ingest:   ingest,
	}
}

// Upload ingests a claims CSV file
// @Summary Upload claims file
// @Description Upload a CSV of claim records; rows are ingested into the organization and progress is tracked per session
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Claims CSV file"
// @Success 200 {object} map[string]interface{} "Upload session"
// @Failure 400 {object} ErrorResponse "Missing or invalid file"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Router /api/upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	principal, err := h.identity.Resolve(c)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondServiceError(c, apperrors.NewValidationError("file", "file is required"))
		return
	}
	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".csv") {
		respondServiceError(c, apperrors.NewValidationError("file", "only CSV files are accepted"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondServiceError(c, apperrors.NewValidationError("file", "failed to read uploaded file"))
		return
	}
	defer file.Close()

	session, err := h.ingest.ProcessCSV(principal.OrganizationID, principal.Profile.ID, fileHeader.Filename, file)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	logger.FromGinContext(c).WithField("upload_session", session.ID).
		Infof("upload finished with status %s", session.Status)

	respondSuccess(c, http.StatusOK, gin.H{"session": session})
}
