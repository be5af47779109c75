package service

import (
	"fmt"

	"claims-analytics-backend/internal/database/models"
	"claims-analytics-backend/internal/repository"

	"github.com/google/uuid"
)

// SessionListParams holds the recognized query parameters for the session
// list. A status outside the known set is ignored, not rejected.
type SessionListParams struct {
	Page   int
	Limit  int
	Status string
}

// SessionSummary is one upload session with its owner and claim count
type SessionSummary struct {
	models.UploadSession
	ClaimCount int64 `json:"claim_count"`
}

// SessionListResponse is the paginated session list payload
type SessionListResponse struct {
	Sessions   []SessionSummary `json:"sessions"`
	Pagination Pagination       `json:"pagination"`
}

// UploadSessionService handles business logic for upload sessions
type UploadSessionService struct {
	repo repository.UploadSessionRepositoryInterface
}

// NewUploadSessionService creates a new upload session service
func NewUploadSessionService(repo repository.UploadSessionRepositoryInterface) *UploadSessionService {
	return &UploadSessionService{repo: repo}
}

const (
	sessionDefaultLimit = 20
	sessionMaxLimit     = 100
)

// List retrieves one page of upload sessions for the organization, each with
// its embedded profile and claim count.
func (s *UploadSessionService) List(orgID uuid.UUID, params SessionListParams) (*SessionListResponse, error) {
	page, limit := clampPage(params.Page, params.Limit, sessionDefaultLimit, sessionMaxLimit)

	status := models.UploadSessionStatus(params.Status)
	if !status.IsValid() {
		status = ""
	}

	offset := (page - 1) * limit
	sessions, total, err := s.repo.ListByOrganization(orgID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list upload sessions: %w", err)
	}

	sessionIDs := make([]uuid.UUID, len(sessions))
	for i, session := range sessions {
		sessionIDs[i] = session.ID
	}
	counts, err := s.repo.ClaimCounts(sessionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to count session claims: %w", err)
	}

	summaries := make([]SessionSummary, len(sessions))
	for i, session := range sessions {
		summaries[i] = SessionSummary{
			UploadSession: session,
			ClaimCount:    counts[session.ID],
		}
	}

	return &SessionListResponse{
		Sessions:   summaries,
		Pagination: NewPagination(page, limit, total),
	}, nil
}
