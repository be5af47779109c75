package repository

import (
	"testing"
	"time"

	"claims-analytics-backend/internal/database/models"
	"claims-analytics-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// UploadSessionRepositoryTestSuite tests the UploadSessionRepository
type UploadSessionRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UploadSessionRepository
	claimRepo     *ClaimRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *UploadSessionRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUploadSessionRepository(suite.baseTestSuite.DB)
	suite.claimRepo = NewClaimRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *UploadSessionRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UploadSessionRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UploadSessionRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *UploadSessionRepositoryTestSuite) seedTenant() (*models.Organization, *models.Profile) {
	org, profile := suite.factories.CreateTenant()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(org).Error)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(profile).Error)
	return org, profile
}

// TestCreateAndUpdate tests the session lifecycle transitions
func (suite *UploadSessionRepositoryTestSuite) TestCreateAndUpdate() {
	org, profile := suite.seedTenant()

	session := &models.UploadSession{
		OrganizationID: org.ID,
		ProfileID:      profile.ID,
		FileName:       "claims.csv",
		Status:         models.UploadStatusProcessing,
	}
	suite.NoError(suite.repo.Create(session))
	suite.NotEqual(uuid.Nil, session.ID)

	session.Status = models.UploadStatusCompleted
	session.TotalRows = 10
	session.ProcessedRows = 10
	suite.NoError(suite.repo.Update(session))

	loaded, err := suite.repo.GetByID(org.ID, session.ID)
	suite.NoError(err)
	suite.Equal(models.UploadStatusCompleted, loaded.Status)
	suite.Equal(10, loaded.TotalRows)
}

// TestGetByIDScoping tests that sessions are invisible to other organizations
func (suite *UploadSessionRepositoryTestSuite) TestGetByIDScoping() {
	org, profile := suite.seedTenant()
	otherOrg, _ := suite.seedTenant()

	session := suite.factories.UploadSession.Create(org.ID, profile.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(session).Error)

	_, err := suite.repo.GetByID(otherOrg.ID, session.ID)

	suite.Error(err)
}

// TestListByOrganizationStatusFilter tests the optional status filter
func (suite *UploadSessionRepositoryTestSuite) TestListByOrganizationStatusFilter() {
	org, profile := suite.seedTenant()

	completed := suite.factories.UploadSession.Create(org.ID, profile.ID)
	failed := suite.factories.UploadSession.WithStatus(org.ID, profile.ID, models.UploadStatusFailed)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(completed).Error)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(failed).Error)

	sessions, total, err := suite.repo.ListByOrganization(org.ID, models.UploadStatusFailed, 20, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(sessions, 1)
	suite.Equal(models.UploadStatusFailed, sessions[0].Status)

	sessions, total, err = suite.repo.ListByOrganization(org.ID, "", 20, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(sessions, 2)
}

// TestListByOrganizationPreloadsProfile tests that the owning profile is embedded
func (suite *UploadSessionRepositoryTestSuite) TestListByOrganizationPreloadsProfile() {
	org, profile := suite.seedTenant()

	session := suite.factories.UploadSession.Create(org.ID, profile.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(session).Error)

	sessions, _, err := suite.repo.ListByOrganization(org.ID, "", 20, 0)

	suite.NoError(err)
	suite.Require().Len(sessions, 1)
	suite.Equal(profile.UserID, sessions[0].Profile.UserID)
}

// TestRecentForProfile tests ordering and the result cap
func (suite *UploadSessionRepositoryTestSuite) TestRecentForProfile() {
	org, profile := suite.seedTenant()

	older := suite.factories.UploadSession.Create(org.ID, profile.ID)
	older.CreatedAt = time.Now().Add(-time.Hour)
	newer := suite.factories.UploadSession.Create(org.ID, profile.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(older).Error)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(newer).Error)

	sessions, err := suite.repo.RecentForProfile(profile.ID, 1)

	suite.NoError(err)
	suite.Require().Len(sessions, 1)
	suite.Equal(newer.ID, sessions[0].ID)
}

// TestClaimCounts tests the per-session claim count query
func (suite *UploadSessionRepositoryTestSuite) TestClaimCounts() {
	org, profile := suite.seedTenant()

	session := suite.factories.UploadSession.Create(org.ID, profile.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(session).Error)

	suite.NoError(suite.claimRepo.CreateBatch([]models.ClaimRecord{
		*suite.factories.ClaimRecord.Create(org.ID, session.ID),
		*suite.factories.ClaimRecord.Create(org.ID, session.ID),
		*suite.factories.ClaimRecord.Create(org.ID, session.ID),
	}))

	counts, err := suite.repo.ClaimCounts([]uuid.UUID{session.ID})

	suite.NoError(err)
	suite.Equal(int64(3), counts[session.ID])
}

// TestClaimCountsEmptyInput tests that no session ids yields an empty map
func (suite *UploadSessionRepositoryTestSuite) TestClaimCountsEmptyInput() {
	counts, err := suite.repo.ClaimCounts(nil)

	suite.NoError(err)
	suite.Empty(counts)
}

func TestUploadSessionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UploadSessionRepositoryTestSuite))
}
