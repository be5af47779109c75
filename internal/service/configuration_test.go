package service_test

import (
	"encoding/json"
	"testing"

	apperrors "claims-analytics-backend/internal/errors"
	"claims-analytics-backend/internal/mocks"
	"claims-analytics-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ConfigurationServiceTestSuite defines the test suite for ConfigurationService
type ConfigurationServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockRepo      *mocks.MockConfigurationRepositoryInterface
	configService *service.ConfigurationService
	validator     *validator.Validate
}

// SetupTest sets up the test suite
func (suite *ConfigurationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockConfigurationRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.configService = service.NewConfigurationService(suite.mockRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *ConfigurationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreate tests creating a configuration
func (suite *ConfigurationServiceTestSuite) TestCreate() {
	orgID := uuid.New()
	req := &service.CreateConfigurationRequest{
		Name:   "Monthly View",
		Config: json.RawMessage(`{"chart":"monthly"}`),
	}

	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	cfg, err := suite.configService.Create(orgID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), cfg)
	assert.Equal(suite.T(), orgID, cfg.OrganizationID)
	assert.Equal(suite.T(), "Monthly View", cfg.Name)
	assert.False(suite.T(), cfg.IsDefault)
}

// TestCreateEmptyName tests that a missing name is rejected
func (suite *ConfigurationServiceTestSuite) TestCreateEmptyName() {
	req := &service.CreateConfigurationRequest{
		Config: json.RawMessage(`{"chart":"monthly"}`),
	}

	cfg, err := suite.configService.Create(uuid.New(), req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), cfg)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestCreateMissingConfig tests that an empty config payload is rejected
func (suite *ConfigurationServiceTestSuite) TestCreateMissingConfig() {
	req := &service.CreateConfigurationRequest{Name: "Monthly View"}

	cfg, err := suite.configService.Create(uuid.New(), req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), cfg)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestCreateNullConfig tests that a JSON null config payload is rejected
func (suite *ConfigurationServiceTestSuite) TestCreateNullConfig() {
	req := &service.CreateConfigurationRequest{
		Name:   "Monthly View",
		Config: json.RawMessage(`null`),
	}

	cfg, err := suite.configService.Create(uuid.New(), req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), cfg)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestCreateDefault tests that the default flag is carried through
func (suite *ConfigurationServiceTestSuite) TestCreateDefault() {
	req := &service.CreateConfigurationRequest{
		Name:      "Default View",
		Config:    json.RawMessage(`{"chart":"monthly"}`),
		IsDefault: true,
	}

	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	cfg, err := suite.configService.Create(uuid.New(), req)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), cfg.IsDefault)
}

// TestListEmpty tests that a nil repository result becomes an empty slice
func (suite *ConfigurationServiceTestSuite) TestListEmpty() {
	orgID := uuid.New()

	suite.mockRepo.EXPECT().
		ListByOrganization(orgID).
		Return(nil, nil).
		Times(1)

	configs, err := suite.configService.List(orgID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), configs)
	assert.Empty(suite.T(), configs)
}

func TestConfigurationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigurationServiceTestSuite))
}
