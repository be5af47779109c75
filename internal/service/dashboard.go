package service

import (
	"fmt"

	"claims-analytics-backend/internal/database/models"
	"claims-analytics-backend/internal/repository"

	"github.com/google/uuid"
)

// DashboardSummary is the headline block of the stats payload
type DashboardSummary struct {
	TotalClaims    int64   `json:"totalClaims"`
	TotalAmount    float64 `json:"totalAmount"`
	AvgClaimAmount float64 `json:"avgClaimAmount"`
}

// DashboardStats aggregates everything the dashboard renders in one payload
type DashboardStats struct {
	Summary        DashboardSummary              `json:"summary"`
	RecentSessions []models.UploadSession        `json:"recentSessions"`
	MonthlyTotals  []repository.MonthlyTotal     `json:"monthlyTotals"`
	ServiceTypes   []repository.ServiceTypeTotal `json:"serviceTypes"`
	TopClaimants   []repository.ClaimantTotal    `json:"topClaimants"`
}

// DashboardService assembles the aggregate queries behind the stats endpoint
type DashboardService struct {
	claimRepo   repository.ClaimRepositoryInterface
	sessionRepo repository.UploadSessionRepositoryInterface
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(claimRepo repository.ClaimRepositoryInterface, sessionRepo repository.UploadSessionRepositoryInterface) *DashboardService {
	return &DashboardService{
		claimRepo:   claimRepo,
		sessionRepo: sessionRepo,
	}
}

const (
	recentSessionCount = 5
	monthlyTotalMonths = 12
	topBucketCount     = 10
)

// Stats re-issues the five aggregate queries on every call; nothing is
// cached between requests.
func (s *DashboardService) Stats(orgID uuid.UUID) (*DashboardStats, error) {
	count, sum, err := s.claimRepo.CountAndSum(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate claims: %w", err)
	}

	summary := DashboardSummary{
		TotalClaims: count,
		TotalAmount: sum,
	}
	if count > 0 {
		summary.AvgClaimAmount = sum / float64(count)
	}

	sessions, err := s.sessionRepo.RecentByOrganization(orgID, recentSessionCount)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent sessions: %w", err)
	}

	monthly, err := s.claimRepo.MonthlyTotals(orgID, monthlyTotalMonths)
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly totals: %w", err)
	}

	serviceTypes, err := s.claimRepo.TopServiceTypes(orgID, topBucketCount)
	if err != nil {
		return nil, fmt.Errorf("failed to load service type totals: %w", err)
	}

	claimants, err := s.claimRepo.TopClaimants(orgID, topBucketCount)
	if err != nil {
		return nil, fmt.Errorf("failed to load top claimants: %w", err)
	}

	if sessions == nil {
		sessions = []models.UploadSession{}
	}
	if monthly == nil {
		monthly = []repository.MonthlyTotal{}
	}
	if serviceTypes == nil {
		serviceTypes = []repository.ServiceTypeTotal{}
	}
	if claimants == nil {
		claimants = []repository.ClaimantTotal{}
	}

	return &DashboardStats{
		Summary:        summary,
		RecentSessions: sessions,
		MonthlyTotals:  monthly,
		ServiceTypes:   serviceTypes,
		TopClaimants:   claimants,
	}, nil
}
