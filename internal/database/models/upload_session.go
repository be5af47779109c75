package models

import "github.com/google/uuid"

// UploadSessionStatus enumerates the lifecycle states of an ingestion attempt.
// Transitions are processing -> completed or processing -> failed; both are
// terminal.
type UploadSessionStatus string

const (
	UploadStatusProcessing UploadSessionStatus = "processing"
	UploadStatusCompleted  UploadSessionStatus = "completed"
	UploadStatusFailed     UploadSessionStatus = "failed"
)

// IsValid reports whether s is a recognized upload session status.
func (s UploadSessionStatus) IsValid() bool {
	switch s {
	case UploadStatusProcessing, UploadStatusCompleted, UploadStatusFailed:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed from s.
func (s UploadSessionStatus) IsTerminal() bool {
	return s == UploadStatusCompleted || s == UploadStatusFailed
}

// UploadSession tracks one claims ingestion attempt with progress counters
// and a terminal status.
type UploadSession struct {
	BaseModel
	OrganizationID uuid.UUID           `json:"organization_id" gorm:"type:uuid;not null;index"`
	ProfileID      uuid.UUID           `json:"profile_id" gorm:"type:uuid;not null;index"`
	FileName       string              `json:"file_name" gorm:"size:255;not null"`
	Status         UploadSessionStatus `json:"status" gorm:"size:20;not null;default:'processing';index"`
	TotalRows      int                 `json:"total_rows" gorm:"not null;default:0"`
	ProcessedRows  int                 `json:"processed_rows" gorm:"not null;default:0"`
	FailedRows     int                 `json:"failed_rows" gorm:"not null;default:0"`
	ErrorMessage   string              `json:"error_message" gorm:"size:500"`

	Profile      *Profile      `json:"profile,omitempty" gorm:"foreignKey:ProfileID"`
	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID"`
}

// TableName returns the table name for UploadSession
func (UploadSession) TableName() string {
	return "upload_sessions"
}
