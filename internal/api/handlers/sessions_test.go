package handlers_test

import (
	"net/http"
	"testing"

	"claims-analytics-backend/internal/api/handlers"
	"claims-analytics-backend/internal/database/models"
	"claims-analytics-backend/internal/mocks"
	"claims-analytics-backend/internal/service"
	"claims-analytics-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// SessionsHandlerTestSuite defines the test suite for SessionsHandler
type SessionsHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockIdentity *mocks.MockIdentityServiceInterface
	mockSessions *mocks.MockUploadSessionServiceInterface
	httpSuite    *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *SessionsHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockIdentity = mocks.NewMockIdentityServiceInterface(suite.ctrl)
	suite.mockSessions = mocks.NewMockUploadSessionServiceInterface(suite.ctrl)

	handler := handlers.NewSessionsHandler(suite.mockIdentity, suite.mockSessions)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.GET("/api/sessions", handler.List)
}

// TearDownTest cleans up after each test
func (suite *SessionsHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestList tests the sessions page envelope
func (suite *SessionsHandlerTestSuite) TestList() {
	orgID := uuid.New()

	suite.mockIdentity.EXPECT().
		Resolve(gomock.Any()).
		Return(&service.Principal{OrganizationID: orgID}, nil).
		Times(1)
	suite.mockSessions.EXPECT().
		List(orgID, service.SessionListParams{Status: "completed"}).
		Return(&service.SessionListResponse{
			Sessions: []service.SessionSummary{
				{
					UploadSession: models.UploadSession{FileName: "claims.csv", Status: models.UploadStatusCompleted},
					ClaimCount:    7,
				},
			},
			Pagination: service.NewPagination(1, 20, 1),
		}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/sessions?status=completed", nil)

	response := testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusOK)

	sessions := response["sessions"].([]interface{})
	assert.Len(suite.T(), sessions, 1)
	first := sessions[0].(map[string]interface{})
	assert.Equal(suite.T(), float64(7), first["claim_count"])
}

func TestSessionsHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SessionsHandlerTestSuite))
}
