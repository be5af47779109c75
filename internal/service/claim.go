package service

import (
	"fmt"

	"claims-analytics-backend/internal/database/models"
	"claims-analytics-backend/internal/repository"

	"github.com/google/uuid"
)

// ClaimListParams holds the recognized query parameters for the claim list.
// Filter values arrive as raw query strings; unrecognized or malformed ones
// are ignored rather than rejected.
type ClaimListParams struct {
	Page            int
	Limit           int
	UploadSessionID string
	MonthKey        string
	ServiceType     string
	ClaimantID      string
}

// ClaimListResponse is the paginated claim list payload
type ClaimListResponse struct {
	Claims     []models.ClaimRecord `json:"claims"`
	Pagination Pagination           `json:"pagination"`
}

// ClaimService handles business logic for claim records
type ClaimService struct {
	repo repository.ClaimRepositoryInterface
}

// NewClaimService creates a new claim service
func NewClaimService(repo repository.ClaimRepositoryInterface) *ClaimService {
	return &ClaimService{repo: repo}
}

const (
	claimDefaultLimit = 50
	claimMaxLimit     = 1000
)

// List retrieves one page of claims for the organization
func (s *ClaimService) List(orgID uuid.UUID, params ClaimListParams) (*ClaimListResponse, error) {
	page, limit := clampPage(params.Page, params.Limit, claimDefaultLimit, claimMaxLimit)

	filter := repository.ClaimFilter{
		MonthKey:    params.MonthKey,
		ServiceType: params.ServiceType,
		ClaimantID:  params.ClaimantID,
	}
	// A malformed upload session id is dropped, matching the permissive
	// treatment of the other filters.
	if params.UploadSessionID != "" {
		if sessionID, err := uuid.Parse(params.UploadSessionID); err == nil {
			filter.UploadSessionID = &sessionID
		}
	}

	offset := (page - 1) * limit
	claims, total, err := s.repo.ListByOrganization(orgID, filter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list claims: %w", err)
	}

	if claims == nil {
		claims = []models.ClaimRecord{}
	}

	return &ClaimListResponse{
		Claims:     claims,
		Pagination: NewPagination(page, limit, total),
	}, nil
}

// clampPage normalizes pagination inputs: non-positive pages become 1,
// non-positive limits fall back to the default and oversized limits are
// clamped to the endpoint's cap.
func clampPage(page, limit, defaultLimit, maxLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}
