package service

import (
	"fmt"

	"claims-analytics-backend/internal/database/models"
	"claims-analytics-backend/internal/repository"

	"github.com/google/uuid"
)

// HighCostClaimantRecord is one record of the import payload. The field set
// is the fixed import schema: required strings, non-negative numbers and Y|N
// flags.
type HighCostClaimantRecord struct {
	MemberID          string  `json:"member_id"`
	DiagnosisCategory string  `json:"diagnosis_category"`
	FacilityPaid      float64 `json:"facility_paid"`
	ProfessionalPaid  float64 `json:"professional_paid"`
	PharmacyPaid      float64 `json:"pharmacy_paid"`
	Total             float64 `json:"total"`
	HitStopLoss       string  `json:"hit_stop_loss"`
	Enrolled          string  `json:"enrolled"`
}

// ImportHighCostClaimantsRequest is the import endpoint's body
type ImportHighCostClaimantsRequest struct {
	Claimants []HighCostClaimantRecord `json:"claimants"`
}

// RejectedRecord reports why one record was not accepted. Validation is
// all-or-nothing per record and surfaces the first failing field's message.
type RejectedRecord struct {
	Index   int    `json:"index"`
	Message string `json:"message"`
}

// ImportResult summarizes one import call
type ImportResult struct {
	Imported int              `json:"imported"`
	Rejected []RejectedRecord `json:"rejected"`
}

// HighCostClaimantListResponse is the paginated claimant list payload
type HighCostClaimantListResponse struct {
	Claimants  []models.HighCostClaimant `json:"claimants"`
	Pagination Pagination                `json:"pagination"`
}

// HighCostClaimantService handles validation and storage of high-cost
// claimant imports
type HighCostClaimantService struct {
	repo repository.HighCostClaimantRepositoryInterface
}

// NewHighCostClaimantService creates a new high-cost claimant service
func NewHighCostClaimantService(repo repository.HighCostClaimantRepositoryInterface) *HighCostClaimantService {
	return &HighCostClaimantService{repo: repo}
}

const (
	highCostDefaultLimit = 50
	highCostMaxLimit     = 500
)

// Import validates each record against the fixed schema and persists the
// valid ones. Invalid records are reported back with the first failing
// field's message; they never block valid records in the same payload.
func (s *HighCostClaimantService) Import(orgID uuid.UUID, req *ImportHighCostClaimantsRequest) (*ImportResult, error) {
	result := &ImportResult{Rejected: []RejectedRecord{}}

	var accepted []models.HighCostClaimant
	for i, record := range req.Claimants {
		if message := validateHighCostRecord(&record); message != "" {
			result.Rejected = append(result.Rejected, RejectedRecord{Index: i, Message: message})
			continue
		}
		accepted = append(accepted, models.HighCostClaimant{
			OrganizationID:    orgID,
			MemberID:          record.MemberID,
			DiagnosisCategory: record.DiagnosisCategory,
			FacilityPaid:      record.FacilityPaid,
			ProfessionalPaid:  record.ProfessionalPaid,
			PharmacyPaid:      record.PharmacyPaid,
			Total:             record.Total,
			HitStopLoss:       record.HitStopLoss,
			Enrolled:          record.Enrolled,
		})
	}

	if err := s.repo.CreateBatch(accepted); err != nil {
		return nil, fmt.Errorf("failed to store high-cost claimants: %w", err)
	}

	result.Imported = len(accepted)
	return result, nil
}

// List retrieves one page of the organization's high-cost claimants
func (s *HighCostClaimantService) List(orgID uuid.UUID, page, limit int) (*HighCostClaimantListResponse, error) {
	page, limit = clampPage(page, limit, highCostDefaultLimit, highCostMaxLimit)

	offset := (page - 1) * limit
	claimants, total, err := s.repo.ListByOrganization(orgID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list high-cost claimants: %w", err)
	}

	if claimants == nil {
		claimants = []models.HighCostClaimant{}
	}

	return &HighCostClaimantListResponse{
		Claimants:  claimants,
		Pagination: NewPagination(page, limit, total),
	}, nil
}

// validateHighCostRecord applies the fixed import schema. It returns the
// first failing field's message, or "" when the record is valid.
func validateHighCostRecord(record *HighCostClaimantRecord) string {
	type stringField struct {
		name  string
		value string
	}
	for _, f := range []stringField{
		{"member_id", record.MemberID},
		{"diagnosis_category", record.DiagnosisCategory},
	} {
		if f.value == "" {
			return fmt.Sprintf("%s is required", f.name)
		}
	}

	type numericField struct {
		name  string
		value float64
	}
	for _, f := range []numericField{
		{"facility_paid", record.FacilityPaid},
		{"professional_paid", record.ProfessionalPaid},
		{"pharmacy_paid", record.PharmacyPaid},
		{"total", record.Total},
	} {
		if f.value < 0 {
			return fmt.Sprintf("%s must not be negative", f.name)
		}
	}

	type flagField struct {
		name  string
		value string
	}
	for _, f := range []flagField{
		{"hit_stop_loss", record.HitStopLoss},
		{"enrolled", record.Enrolled},
	} {
		if f.value != "Y" && f.value != "N" {
			return fmt.Sprintf("%s must be Y or N", f.name)
		}
	}

	return ""
}
