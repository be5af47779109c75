package service_test

import (
	"testing"

	"claims-analytics-backend/internal/database/models"
	"claims-analytics-backend/internal/mocks"
	"claims-analytics-backend/internal/repository"
	"claims-analytics-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ClaimServiceTestSuite defines the test suite for ClaimService
type ClaimServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *mocks.MockClaimRepositoryInterface
	claimService *service.ClaimService
}

// SetupTest sets up the test suite
func (suite *ClaimServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockClaimRepositoryInterface(suite.ctrl)
	suite.claimService = service.NewClaimService(suite.mockRepo)
}

// TearDownTest cleans up after each test
func (suite *ClaimServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListDefaults tests that missing pagination falls back to defaults
func (suite *ClaimServiceTestSuite) TestListDefaults() {
	orgID := uuid.New()

	suite.mockRepo.EXPECT().
		ListByOrganization(orgID, repository.ClaimFilter{}, 50, 0).
		Return([]models.ClaimRecord{}, int64(0), nil).
		Times(1)

	response, err := suite.claimService.List(orgID, service.ClaimListParams{})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), 1, response.Pagination.Page)
	assert.Equal(suite.T(), 50, response.Pagination.Limit)
	assert.Equal(suite.T(), 0, response.Pagination.TotalPages)
	assert.NotNil(suite.T(), response.Claims)
}

// TestListClampsOversizedLimit tests that the limit is capped
func (suite *ClaimServiceTestSuite) TestListClampsOversizedLimit() {
	orgID := uuid.New()

	suite.mockRepo.EXPECT().
		ListByOrganization(orgID, repository.ClaimFilter{}, 1000, 0).
		Return([]models.ClaimRecord{}, int64(0), nil).
		Times(1)

	_, err := suite.claimService.List(orgID, service.ClaimListParams{Limit: 5000})

	assert.NoError(suite.T(), err)
}

// TestListNegativePage tests that a negative page is normalized to the first page
func (suite *ClaimServiceTestSuite) TestListNegativePage() {
	orgID := uuid.New()

	suite.mockRepo.EXPECT().
		ListByOrganization(orgID, repository.ClaimFilter{}, 50, 0).
		Return([]models.ClaimRecord{}, int64(0), nil).
		Times(1)

	response, err := suite.claimService.List(orgID, service.ClaimListParams{Page: -3})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, response.Pagination.Page)
}

// TestListOffsetFromPage tests that later pages produce the expected offset
func (suite *ClaimServiceTestSuite) TestListOffsetFromPage() {
	orgID := uuid.New()

	suite.mockRepo.EXPECT().
		ListByOrganization(orgID, repository.ClaimFilter{}, 25, 50).
		Return([]models.ClaimRecord{}, int64(120), nil).
		Times(1)

	response, err := suite.claimService.List(orgID, service.ClaimListParams{Page: 3, Limit: 25})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(120), response.Pagination.Total)
	assert.Equal(suite.T(), 5, response.Pagination.TotalPages)
}

// TestListDropsMalformedSessionFilter tests that a bogus upload session id is ignored
func (suite *ClaimServiceTestSuite) TestListDropsMalformedSessionFilter() {
	orgID := uuid.New()

	suite.mockRepo.EXPECT().
		ListByOrganization(orgID, repository.ClaimFilter{}, 50, 0).
		Return([]models.ClaimRecord{}, int64(0), nil).
		Times(1)

	_, err := suite.claimService.List(orgID, service.ClaimListParams{UploadSessionID: "not-a-uuid"})

	assert.NoError(suite.T(), err)
}

// TestListAppliesFilters tests that recognized filters reach the repository
func (suite *ClaimServiceTestSuite) TestListAppliesFilters() {
	orgID := uuid.New()
	sessionID := uuid.New()

	expectedFilter := repository.ClaimFilter{
		UploadSessionID: &sessionID,
		MonthKey:        "2025-06",
		ServiceType:     "Inpatient",
		ClaimantID:      "CLM-1001",
	}

	suite.mockRepo.EXPECT().
		ListByOrganization(orgID, expectedFilter, 50, 0).
		Return([]models.ClaimRecord{{ClaimantID: "CLM-1001"}}, int64(1), nil).
		Times(1)

	response, err := suite.claimService.List(orgID, service.ClaimListParams{
		UploadSessionID: sessionID.String(),
		MonthKey:        "2025-06",
		ServiceType:     "Inpatient",
		ClaimantID:      "CLM-1001",
	})

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Claims, 1)
	assert.Equal(suite.T(), 1, response.Pagination.TotalPages)
}

func TestClaimServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClaimServiceTestSuite))
}
