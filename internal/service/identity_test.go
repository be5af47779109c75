package service_test

import (
	"net/http/httptest"
	"testing"

	"claims-analytics-backend/internal/database/models"
	apperrors "claims-analytics-backend/internal/errors"
	"claims-analytics-backend/internal/mocks"
	"claims-analytics-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// IdentityServiceTestSuite defines the test suite for IdentityService
type IdentityServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockProfileRepo *mocks.MockProfileRepositoryInterface
	identityService *service.IdentityService
}

// SetupTest sets up the test suite
func (suite *IdentityServiceTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockProfileRepo = mocks.NewMockProfileRepositoryInterface(suite.ctrl)
	suite.identityService = service.NewIdentityService(suite.mockProfileRepo)
}

// TearDownTest cleans up after each test
func (suite *IdentityServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *IdentityServiceTestSuite) ginContext(userID string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if userID != "" {
		c.Set("user_id", userID)
	}
	return c
}

// TestResolve tests resolving an authenticated user to its organization
func (suite *IdentityServiceTestSuite) TestResolve() {
	orgID := uuid.New()
	profile := &models.Profile{
		UserID:         "user-1",
		OrganizationID: &orgID,
	}

	suite.mockProfileRepo.EXPECT().
		GetByUserID("user-1").
		Return(profile, nil).
		Times(1)

	principal, err := suite.identityService.Resolve(suite.ginContext("user-1"))

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), principal)
	assert.Equal(suite.T(), orgID, principal.OrganizationID)
	assert.Equal(suite.T(), "user-1", principal.Profile.UserID)
}

// TestResolveNoSession tests that missing session context is an authentication error
func (suite *IdentityServiceTestSuite) TestResolveNoSession() {
	principal, err := suite.identityService.Resolve(suite.ginContext(""))

	assert.Nil(suite.T(), principal)
	assert.True(suite.T(), apperrors.IsAuthentication(err))
}

// TestResolveUnknownProfile tests that a missing profile maps to the incomplete error
func (suite *IdentityServiceTestSuite) TestResolveUnknownProfile() {
	suite.mockProfileRepo.EXPECT().
		GetByUserID("ghost").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	principal, err := suite.identityService.Resolve(suite.ginContext("ghost"))

	assert.Nil(suite.T(), principal)
	assert.True(suite.T(), apperrors.IsProfileIncomplete(err))
}

// TestResolveNoOrganization tests that a profile without a tenant maps to the incomplete error
func (suite *IdentityServiceTestSuite) TestResolveNoOrganization() {
	suite.mockProfileRepo.EXPECT().
		GetByUserID("user-1").
		Return(&models.Profile{UserID: "user-1"}, nil).
		Times(1)

	principal, err := suite.identityService.Resolve(suite.ginContext("user-1"))

	assert.Nil(suite.T(), principal)
	assert.True(suite.T(), apperrors.IsProfileIncomplete(err))
}

func TestIdentityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(IdentityServiceTestSuite))
}
