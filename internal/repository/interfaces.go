package repository

import (
	"claims-analytics-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetByName(name string) (*models.Organization, error)
}

// ProfileRepositoryInterface defines the interface for profile repository operations
type ProfileRepositoryInterface interface {
	Create(profile *models.Profile) error
	GetByID(id uuid.UUID) (*models.Profile, error)
	GetByUserID(userID string) (*models.Profile, error)
}

// ClaimRepositoryInterface defines the interface for claim repository operations
type ClaimRepositoryInterface interface {
	CreateBatch(claims []models.ClaimRecord) error
	ListByOrganization(orgID uuid.UUID, filter ClaimFilter, limit, offset int) ([]models.ClaimRecord, int64, error)
	CountAndSum(orgID uuid.UUID) (int64, float64, error)
	MonthlyTotals(orgID uuid.UUID, months int) ([]MonthlyTotal, error)
	TopServiceTypes(orgID uuid.UUID, limit int) ([]ServiceTypeTotal, error)
	TopClaimants(orgID uuid.UUID, limit int) ([]ClaimantTotal, error)
}

// UploadSessionRepositoryInterface defines the interface for upload session repository operations
type UploadSessionRepositoryInterface interface {
	Create(session *models.UploadSession) error
	Update(session *models.UploadSession) error
	GetByID(orgID, id uuid.UUID) (*models.UploadSession, error)
	ListByOrganization(orgID uuid.UUID, status models.UploadSessionStatus, limit, offset int) ([]models.UploadSession, int64, error)
	RecentByOrganization(orgID uuid.UUID, limit int) ([]models.UploadSession, error)
	RecentForProfile(profileID uuid.UUID, limit int) ([]models.UploadSession, error)
	ClaimCounts(sessionIDs []uuid.UUID) (map[uuid.UUID]int64, error)
}

// ConfigurationRepositoryInterface defines the interface for configuration repository operations
type ConfigurationRepositoryInterface interface {
	Create(cfg *models.Configuration) error
	ListByOrganization(orgID uuid.UUID) ([]models.Configuration, error)
}

// HighCostClaimantRepositoryInterface defines the interface for high-cost claimant repository operations
type HighCostClaimantRepositoryInterface interface {
	CreateBatch(claimants []models.HighCostClaimant) error
	ListByOrganization(orgID uuid.UUID, limit, offset int) ([]models.HighCostClaimant, int64, error)
}
