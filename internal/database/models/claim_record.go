package models

import (
	"time"

	"github.com/google/uuid"
)

// ClaimRecord is one healthcare claim line. Records are immutable once
// written; the upload session id links each row to its ingestion attempt.
type ClaimRecord struct {
	BaseModel
	OrganizationID  uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index"`
	UploadSessionID uuid.UUID `json:"upload_session_id" gorm:"type:uuid;not null;index"`
	ClaimantID      string    `json:"claimant_id" gorm:"size:100;not null;index"`
	ClaimDate       time.Time `json:"claim_date" gorm:"not null;index"`
	// MonthKey is the YYYY-MM bucket derived from ClaimDate, used by the
	// dashboard monthly rollup.
	MonthKey    string  `json:"month_key" gorm:"size:7;not null;index"`
	ServiceType string  `json:"service_type" gorm:"size:100;not null;index"`
	Amount      float64 `json:"amount" gorm:"type:numeric(14,2);not null"`
}

// TableName returns the table name for ClaimRecord
func (ClaimRecord) TableName() string {
	return "claim_records"
}
