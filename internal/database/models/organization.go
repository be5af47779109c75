package models

// Organization represents the root entity for multi-tenancy. Every claims,
// session and configuration row carries exactly one organization id and all
// reads and writes are filtered by it.
type Organization struct {
	BaseModel
	Name        string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	DisplayName string `json:"display_name" gorm:"size:200"`

	// Relationships
	Profiles       []Profile       `json:"profiles,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	UploadSessions []UploadSession `json:"upload_sessions,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Configurations []Configuration `json:"configurations,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
