package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Configuration is a named, organization-scoped settings blob. At most one
// row per organization carries IsDefault; the create path swaps the flag
// inside a single transaction.
type Configuration struct {
	BaseModel
	OrganizationID uuid.UUID       `json:"organization_id" gorm:"type:uuid;not null;index"`
	Name           string          `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Config         json.RawMessage `json:"config" gorm:"type:jsonb;not null"`
	IsDefault      bool            `json:"is_default" gorm:"not null;default:false;index"`
}

// TableName returns the table name for Configuration
func (Configuration) TableName() string {
	return "configurations"
}
