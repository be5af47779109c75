package models

import "github.com/google/uuid"

// Profile is the user record joined 1:1 to an authenticated principal and
// many:1 to an Organization. It is read on every request to resolve tenancy;
// a profile without an organization is treated as incomplete.
type Profile struct {
	BaseModel
	UserID         string     `json:"user_id" gorm:"uniqueIndex;not null;size:100" validate:"required,max=100"`
	Email          string     `json:"email" gorm:"uniqueIndex;not null;size:200" validate:"required,email,max=200"`
	FullName       string     `json:"full_name" gorm:"size:200" validate:"max=200"`
	OrganizationID *uuid.UUID `json:"organization_id" gorm:"type:uuid;index"`

	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID"`
}

// TableName returns the table name for Profile
func (Profile) TableName() string {
	return "profiles"
}
