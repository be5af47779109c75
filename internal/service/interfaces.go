package service

import (
	"io"

	"claims-analytics-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// IdentityServiceInterface resolves the authenticated principal to its tenant
type IdentityServiceInterface interface {
	Resolve(c *gin.Context) (*Principal, error)
}

// ClaimServiceInterface defines the interface for the claim service
type ClaimServiceInterface interface {
	List(orgID uuid.UUID, params ClaimListParams) (*ClaimListResponse, error)
}

// UploadSessionServiceInterface defines the interface for the upload session service
type UploadSessionServiceInterface interface {
	List(orgID uuid.UUID, params SessionListParams) (*SessionListResponse, error)
}

// ConfigurationServiceInterface defines the interface for the configuration service
type ConfigurationServiceInterface interface {
	List(orgID uuid.UUID) ([]models.Configuration, error)
	Create(orgID uuid.UUID, req *CreateConfigurationRequest) (*models.Configuration, error)
}

// DashboardServiceInterface defines the interface for the dashboard service
type DashboardServiceInterface interface {
	Stats(orgID uuid.UUID) (*DashboardStats, error)
}

// IngestServiceInterface defines the interface for the claims ingestion service
type IngestServiceInterface interface {
	ProcessCSV(orgID, profileID uuid.UUID, fileName string, r io.Reader) (*models.UploadSession, error)
}

// HighCostClaimantServiceInterface defines the interface for the high-cost claimant service
type HighCostClaimantServiceInterface interface {
	Import(orgID uuid.UUID, req *ImportHighCostClaimantsRequest) (*ImportResult, error)
	List(orgID uuid.UUID, page, limit int) (*HighCostClaimantListResponse, error)
}
