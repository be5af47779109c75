package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"claims-analytics-backend/internal/api/handlers"
	"claims-analytics-backend/internal/database/models"
	apperrors "claims-analytics-backend/internal/errors"
	"claims-analytics-backend/internal/mocks"
	"claims-analytics-backend/internal/service"
	"claims-analytics-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ConfigurationsHandlerTestSuite defines the test suite for ConfigurationsHandler
type ConfigurationsHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockIdentity *mocks.MockIdentityServiceInterface
	mockConfigs  *mocks.MockConfigurationServiceInterface
	httpSuite    *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *ConfigurationsHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockIdentity = mocks.NewMockIdentityServiceInterface(suite.ctrl)
	suite.mockConfigs = mocks.NewMockConfigurationServiceInterface(suite.ctrl)

	handler := handlers.NewConfigurationsHandler(suite.mockIdentity, suite.mockConfigs)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.GET("/api/configurations", handler.List)
	suite.httpSuite.Router.POST("/api/configurations", handler.Create)
}

// TearDownTest cleans up after each test
func (suite *ConfigurationsHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestList tests listing configurations
func (suite *ConfigurationsHandlerTestSuite) TestList() {
	orgID := uuid.New()

	suite.mockIdentity.EXPECT().
		Resolve(gomock.Any()).
		Return(&service.Principal{OrganizationID: orgID}, nil).
		Times(1)
	suite.mockConfigs.EXPECT().
		List(orgID).
		Return([]models.Configuration{{Name: "Default View"}}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/configurations", nil)

	response := testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusOK)
	assert.Len(suite.T(), response["configurations"], 1)
}

// TestCreate tests creating a configuration
func (suite *ConfigurationsHandlerTestSuite) TestCreate() {
	orgID := uuid.New()

	suite.mockIdentity.EXPECT().
		Resolve(gomock.Any()).
		Return(&service.Principal{OrganizationID: orgID}, nil).
		Times(1)
	suite.mockConfigs.EXPECT().
		Create(orgID, gomock.Any()).
		Return(&models.Configuration{Name: "Monthly View", IsDefault: true}, nil).
		Times(1)

	body := map[string]interface{}{
		"name":       "Monthly View",
		"config":     map[string]string{"chart": "monthly"},
		"is_default": true,
	}
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/configurations", body)

	testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusCreated)
}

// TestCreateInvalidBody tests that malformed JSON is a 400
func (suite *ConfigurationsHandlerTestSuite) TestCreateInvalidBody() {
	suite.mockIdentity.EXPECT().
		Resolve(gomock.Any()).
		Return(&service.Principal{OrganizationID: uuid.New()}, nil).
		Times(1)

	req, _ := http.NewRequest(http.MethodPost, "/api/configurations", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	suite.httpSuite.Router.ServeHTTP(recorder, req)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestCreateValidationError tests that service validation errors are a 400
func (suite *ConfigurationsHandlerTestSuite) TestCreateValidationError() {
	orgID := uuid.New()

	suite.mockIdentity.EXPECT().
		Resolve(gomock.Any()).
		Return(&service.Principal{OrganizationID: orgID}, nil).
		Times(1)
	suite.mockConfigs.EXPECT().
		Create(orgID, gomock.Any()).
		Return(nil, apperrors.NewValidationError("name", "name is required")).
		Times(1)

	body := map[string]interface{}{
		"name":   "",
		"config": map[string]string{"chart": "monthly"},
	}
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/configurations", body)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "name is required")
}

func TestConfigurationsHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigurationsHandlerTestSuite))
}
