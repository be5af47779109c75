package models

import "github.com/google/uuid"

// HighCostClaimant describes a validated high-cost member: diagnosis
// category, paid-amount breakdown and stop-loss flags. Records are accepted
// all-or-nothing by the import validator before they reach this table.
type HighCostClaimant struct {
	BaseModel
	OrganizationID    uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index"`
	MemberID          string    `json:"member_id" gorm:"size:100;not null;index"`
	DiagnosisCategory string    `json:"diagnosis_category" gorm:"size:200;not null"`
	FacilityPaid      float64   `json:"facility_paid" gorm:"type:numeric(14,2);not null"`
	ProfessionalPaid  float64   `json:"professional_paid" gorm:"type:numeric(14,2);not null"`
	PharmacyPaid      float64   `json:"pharmacy_paid" gorm:"type:numeric(14,2);not null"`
	Total             float64   `json:"total" gorm:"type:numeric(14,2);not null"`
	// Y or N flags, validated by the import schema.
	HitStopLoss string `json:"hit_stop_loss" gorm:"size:1;not null"`
	Enrolled    string `json:"enrolled" gorm:"size:1;not null"`
}

// TableName returns the table name for HighCostClaimant
func (HighCostClaimant) TableName() string {
	return "high_cost_claimants"
}
