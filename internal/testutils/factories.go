package testutils

import (
	"encoding/json"
	"time"

	"claims-analytics-backend/internal/database/models"

	"github.com/google/uuid"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	id := uuid.New()
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "test-org-" + id.String()[:8],
		DisplayName: "Test Organization",
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	org.DisplayName = name
	return org
}

// ProfileFactory provides methods to create test Profile data
type ProfileFactory struct{}

// NewProfileFactory creates a new ProfileFactory
func NewProfileFactory() *ProfileFactory {
	return &ProfileFactory{}
}

// Create creates a test Profile with default values
func (f *ProfileFactory) Create() *models.Profile {
	id := uuid.New()
	return &models.Profile{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:   "user-" + id.String()[:8],
		Email:    "jane.doe@test.com",
		FullName: "Jane Doe",
	}
}

// WithOrganization sets the organization ID for the profile
func (f *ProfileFactory) WithOrganization(orgID uuid.UUID) *models.Profile {
	profile := f.Create()
	profile.OrganizationID = &orgID
	return profile
}

// WithUserID sets a custom user ID for the profile
func (f *ProfileFactory) WithUserID(userID string) *models.Profile {
	profile := f.Create()
	profile.UserID = userID
	return profile
}

// UploadSessionFactory provides methods to create test UploadSession data
type UploadSessionFactory struct{}

// NewUploadSessionFactory creates a new UploadSessionFactory
func NewUploadSessionFactory() *UploadSessionFactory {
	return &UploadSessionFactory{}
}

// Create creates a test UploadSession with default values
func (f *UploadSessionFactory) Create(orgID, profileID uuid.UUID) *models.UploadSession {
	return &models.UploadSession{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: orgID,
		ProfileID:      profileID,
		FileName:       "claims.csv",
		Status:         models.UploadStatusCompleted,
		TotalRows:      100,
		ProcessedRows:  100,
	}
}

// WithStatus sets a custom status with matching counters
func (f *UploadSessionFactory) WithStatus(orgID, profileID uuid.UUID, status models.UploadSessionStatus) *models.UploadSession {
	session := f.Create(orgID, profileID)
	session.Status = status
	if status == models.UploadStatusFailed {
		session.ProcessedRows = 0
		session.FailedRows = session.TotalRows
		session.ErrorMessage = "malformed CSV"
	}
	return session
}

// ClaimRecordFactory provides methods to create test ClaimRecord data
type ClaimRecordFactory struct{}

// NewClaimRecordFactory creates a new ClaimRecordFactory
func NewClaimRecordFactory() *ClaimRecordFactory {
	return &ClaimRecordFactory{}
}

// Create creates a test ClaimRecord with default values
func (f *ClaimRecordFactory) Create(orgID, sessionID uuid.UUID) *models.ClaimRecord {
	claimDate := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	return &models.ClaimRecord{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID:  orgID,
		UploadSessionID: sessionID,
		ClaimantID:      "CLM-1001",
		ClaimDate:       claimDate,
		MonthKey:        claimDate.Format("2006-01"),
		ServiceType:     "Inpatient",
		Amount:          1250.50,
	}
}

// WithMonth sets the claim date and month key from a month string (YYYY-MM)
func (f *ClaimRecordFactory) WithMonth(orgID, sessionID uuid.UUID, monthKey string) *models.ClaimRecord {
	claim := f.Create(orgID, sessionID)
	if date, err := time.Parse("2006-01", monthKey); err == nil {
		claim.ClaimDate = date
		claim.MonthKey = monthKey
	}
	return claim
}

// WithAmount sets a custom amount for the claim
func (f *ClaimRecordFactory) WithAmount(orgID, sessionID uuid.UUID, amount float64) *models.ClaimRecord {
	claim := f.Create(orgID, sessionID)
	claim.Amount = amount
	return claim
}

// ConfigurationFactory provides methods to create test Configuration data
type ConfigurationFactory struct{}

// NewConfigurationFactory creates a new ConfigurationFactory
func NewConfigurationFactory() *ConfigurationFactory {
	return &ConfigurationFactory{}
}

// Create creates a test Configuration with default values
func (f *ConfigurationFactory) Create(orgID uuid.UUID) *models.Configuration {
	return &models.Configuration{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: orgID,
		Name:           "Default View",
		Config:         json.RawMessage(`{"chart":"monthly","threshold":50000}`),
	}
}

// WithDefault marks the configuration as the organization default
func (f *ConfigurationFactory) WithDefault(orgID uuid.UUID) *models.Configuration {
	cfg := f.Create(orgID)
	cfg.IsDefault = true
	return cfg
}

// HighCostClaimantFactory provides methods to create test HighCostClaimant data
type HighCostClaimantFactory struct{}

// NewHighCostClaimantFactory creates a new HighCostClaimantFactory
func NewHighCostClaimantFactory() *HighCostClaimantFactory {
	return &HighCostClaimantFactory{}
}

// Create creates a test HighCostClaimant with default values
func (f *HighCostClaimantFactory) Create(orgID uuid.UUID) *models.HighCostClaimant {
	return &models.HighCostClaimant{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID:    orgID,
		MemberID:          "M-2001",
		DiagnosisCategory: "Oncology",
		FacilityPaid:      80000,
		ProfessionalPaid:  15000,
		PharmacyPaid:      5000,
		Total:             100000,
		HitStopLoss:       "Y",
		Enrolled:          "Y",
	}
}

// WithTotal sets a custom total for the claimant
func (f *HighCostClaimantFactory) WithTotal(orgID uuid.UUID, total float64) *models.HighCostClaimant {
	claimant := f.Create(orgID)
	claimant.Total = total
	return claimant
}

// FactorySet provides access to all factories
type FactorySet struct {
	Organization     *OrganizationFactory
	Profile          *ProfileFactory
	UploadSession    *UploadSessionFactory
	ClaimRecord      *ClaimRecordFactory
	Configuration    *ConfigurationFactory
	HighCostClaimant *HighCostClaimantFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization:     NewOrganizationFactory(),
		Profile:          NewProfileFactory(),
		UploadSession:    NewUploadSessionFactory(),
		ClaimRecord:      NewClaimRecordFactory(),
		Configuration:    NewConfigurationFactory(),
		HighCostClaimant: NewHighCostClaimantFactory(),
	}
}

// CreateTenant creates an organization with a profile attached to it
func (fs *FactorySet) CreateTenant() (*models.Organization, *models.Profile) {
	org := fs.Organization.Create()
	profile := fs.Profile.WithOrganization(org.ID)
	return org, profile
}
