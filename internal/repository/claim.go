package repository

import (
	"claims-analytics-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClaimFilter holds the recognized claim list filters. Zero values mean the
// filter is not applied; every query is additionally scoped by organization.
type ClaimFilter struct {
	UploadSessionID *uuid.UUID
	MonthKey        string
	ServiceType     string
	ClaimantID      string
}

// MonthlyTotal is one month bucket of the dashboard rollup
type MonthlyTotal struct {
	MonthKey    string  `json:"month_key"`
	TotalAmount float64 `json:"total_amount"`
	ClaimCount  int64   `json:"claim_count"`
}

// ServiceTypeTotal is one service-type bucket of the dashboard rollup
type ServiceTypeTotal struct {
	ServiceType string  `json:"service_type"`
	TotalAmount float64 `json:"total_amount"`
	ClaimCount  int64   `json:"claim_count"`
}

// ClaimantTotal is one claimant bucket of the dashboard rollup
type ClaimantTotal struct {
	ClaimantID  string  `json:"claimant_id"`
	TotalAmount float64 `json:"total_amount"`
	ClaimCount  int64   `json:"claim_count"`
}

// ClaimRepository handles database operations for claim records
type ClaimRepository struct {
	db *gorm.DB
}

// NewClaimRepository creates a new claim repository
func NewClaimRepository(db *gorm.DB) *ClaimRepository {
	return &ClaimRepository{db: db}
}

// CreateBatch inserts claim records in one statement
func (r *ClaimRepository) CreateBatch(claims []models.ClaimRecord) error {
	if len(claims) == 0 {
		return nil
	}
	return r.db.Create(&claims).Error
}

// ListByOrganization retrieves claims scoped to one organization with
// optional filters, newest claim date first, plus the unpaginated total.
func (r *ClaimRepository) ListByOrganization(orgID uuid.UUID, filter ClaimFilter, limit, offset int) ([]models.ClaimRecord, int64, error) {
	var claims []models.ClaimRecord
	var total int64

	query := r.db.Model(&models.ClaimRecord{}).Where("organization_id = ?", orgID)
	if filter.UploadSessionID != nil {
		query = query.Where("upload_session_id = ?", *filter.UploadSessionID)
	}
	if filter.MonthKey != "" {
		query = query.Where("month_key = ?", filter.MonthKey)
	}
	if filter.ServiceType != "" {
		query = query.Where("service_type = ?", filter.ServiceType)
	}
	if filter.ClaimantID != "" {
		query = query.Where("claimant_id = ?", filter.ClaimantID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("claim_date DESC").Limit(limit).Offset(offset).Find(&claims).Error
	if err != nil {
		return nil, 0, err
	}

	return claims, total, nil
}

// CountAndSum returns the claim count and summed amount for one organization
func (r *ClaimRepository) CountAndSum(orgID uuid.UUID) (int64, float64, error) {
	var row struct {
		Count int64
		Sum   float64
	}
	err := r.db.Model(&models.ClaimRecord{}).
		Select("COUNT(*) AS count, COALESCE(SUM(amount), 0) AS sum").
		Where("organization_id = ?", orgID).
		Scan(&row).Error
	if err != nil {
		return 0, 0, err
	}
	return row.Count, row.Sum, nil
}

// MonthlyTotals returns per-month totals for the most recent month keys
func (r *ClaimRepository) MonthlyTotals(orgID uuid.UUID, months int) ([]MonthlyTotal, error) {
	var totals []MonthlyTotal
	err := r.db.Model(&models.ClaimRecord{}).
		Select("month_key, COALESCE(SUM(amount), 0) AS total_amount, COUNT(*) AS claim_count").
		Where("organization_id = ?", orgID).
		Group("month_key").
		Order("month_key DESC").
		Limit(months).
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return totals, nil
}

// TopServiceTypes returns the service types with the largest summed amounts
func (r *ClaimRepository) TopServiceTypes(orgID uuid.UUID, limit int) ([]ServiceTypeTotal, error) {
	var totals []ServiceTypeTotal
	err := r.db.Model(&models.ClaimRecord{}).
		Select("service_type, COALESCE(SUM(amount), 0) AS total_amount, COUNT(*) AS claim_count").
		Where("organization_id = ?", orgID).
		Group("service_type").
		Order("total_amount DESC").
		Limit(limit).
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return totals, nil
}

// TopClaimants returns the claimants with the largest summed amounts
func (r *ClaimRepository) TopClaimants(orgID uuid.UUID, limit int) ([]ClaimantTotal, error) {
	var totals []ClaimantTotal
	err := r.db.Model(&models.ClaimRecord{}).
		Select("claimant_id, COALESCE(SUM(amount), 0) AS total_amount, COUNT(*) AS claim_count").
		Where("organization_id = ?", orgID).
		Group("claimant_id").
		Order("total_amount DESC").
		Limit(limit).
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return totals, nil
}
