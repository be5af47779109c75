package repository

import (
	"claims-analytics-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UploadSessionRepository handles database operations for upload sessions
type UploadSessionRepository struct {
	db *gorm.DB
}

// NewUploadSessionRepository creates a new upload session repository
func NewUploadSessionRepository(db *gorm.DB) *UploadSessionRepository {
	return &UploadSessionRepository{db: db}
}

// Create creates a new upload session
func (r *UploadSessionRepository) Create(session *models.UploadSession) error {
	return r.db.Create(session).Error
}

// Update persists the session's counters and status
func (r *UploadSessionRepository) Update(session *models.UploadSession) error {
	return r.db.Save(session).Error
}

// GetByID retrieves an upload session by ID within one organization
func (r *UploadSessionRepository) GetByID(orgID, id uuid.UUID) (*models.UploadSession, error) {
	var session models.UploadSession
	err := r.db.First(&session, "organization_id = ? AND id = ?", orgID, id).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// ListByOrganization retrieves upload sessions for one organization, newest
// first, with the owning profile joined. An empty status means no status
// filter.
func (r *UploadSessionRepository) ListByOrganization(orgID uuid.UUID, status models.UploadSessionStatus, limit, offset int) ([]models.UploadSession, int64, error) {
	var sessions []models.UploadSession
	var total int64

	query := r.db.Model(&models.UploadSession{}).Where("organization_id = ?", orgID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Profile").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&sessions).Error
	if err != nil {
		return nil, 0, err
	}

	return sessions, total, nil
}

// RecentByOrganization retrieves the most recent sessions for the dashboard
func (r *UploadSessionRepository) RecentByOrganization(orgID uuid.UUID, limit int) ([]models.UploadSession, error) {
	var sessions []models.UploadSession
	err := r.db.Where("organization_id = ?", orgID).
		Order("created_at DESC").
		Limit(limit).
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// RecentForProfile retrieves the most recent sessions owned by one profile,
// used by the progress stream poller.
func (r *UploadSessionRepository) RecentForProfile(profileID uuid.UUID, limit int) ([]models.UploadSession, error) {
	var sessions []models.UploadSession
	err := r.db.Where("profile_id = ?", profileID).
		Order("created_at DESC").
		Limit(limit).
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// ClaimCounts returns the number of claim rows per upload session in one
// grouped query.
func (r *UploadSessionRepository) ClaimCounts(sessionIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(sessionIDs))
	if len(sessionIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		UploadSessionID uuid.UUID
		Count           int64
	}
	err := r.db.Model(&models.ClaimRecord{}).
		Select("upload_session_id, COUNT(*) AS count").
		Where("upload_session_id IN ?", sessionIDs).
		Group("upload_session_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.UploadSessionID] = row.Count
	}
	return counts, nil
}
