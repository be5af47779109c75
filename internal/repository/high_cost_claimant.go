package repository

import (
	"claims-analytics-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HighCostClaimantRepository handles database operations for high-cost claimants
type HighCostClaimantRepository struct {
	db *gorm.DB
}

// NewHighCostClaimantRepository creates a new high-cost claimant repository
func NewHighCostClaimantRepository(db *gorm.DB) *HighCostClaimantRepository {
	return &HighCostClaimantRepository{db: db}
}

// CreateBatch inserts validated claimant records in one statement
func (r *HighCostClaimantRepository) CreateBatch(claimants []models.HighCostClaimant) error {
	if len(claimants) == 0 {
		return nil
	}
	return r.db.Create(&claimants).Error
}

// ListByOrganization retrieves an organization's high-cost claimants ordered
// by total paid, largest first, plus the unpaginated total.
func (r *HighCostClaimantRepository) ListByOrganization(orgID uuid.UUID, limit, offset int) ([]models.HighCostClaimant, int64, error) {
	var claimants []models.HighCostClaimant
	var total int64

	query := r.db.Model(&models.HighCostClaimant{}).Where("organization_id = ?", orgID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("total DESC").Limit(limit).Offset(offset).Find(&claimants).Error
	if err != nil {
		return nil, 0, err
	}

	return claimants, total, nil
}
