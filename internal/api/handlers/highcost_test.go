package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
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

// HighCostClaimantsHandlerTestSuite defines the test suite for HighCostClaimantsHandler
type HighCostClaimantsHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockIdentity  *mocks.MockIdentityServiceInterface
	mockClaimants *mocks.MockHighCostClaimantServiceInterface
	httpSuite     *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *HighCostClaimantsHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockIdentity = mocks.NewMockIdentityServiceInterface(suite.ctrl)
	suite.mockClaimants = mocks.NewMockHighCostClaimantServiceInterface(suite.ctrl)

	handler := handlers.NewHighCostClaimantsHandler(suite.mockIdentity, suite.mockClaimants)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.GET("/api/high-cost-claimants", handler.List)
	suite.httpSuite.Router.POST("/api/high-cost-claimants", handler.Import)
}

// TearDownTest cleans up after each test
func (suite *HighCostClaimantsHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestImport tests the import result envelope
func (suite *HighCostClaimantsHandlerTestSuite) TestImport() {
	orgID := uuid.New()

	suite.mockIdentity.EXPECT().
		Resolve(gomock.Any()).
		Return(&service.Principal{OrganizationID: orgID}, nil).
		Times(1)
	suite.mockClaimants.EXPECT().
		Import(orgID, gomock.Any()).
		Return(&service.ImportResult{
			Imported: 1,
			Rejected: []service.RejectedRecord{{Index: 1, Message: "total must not be negative"}},
		}, nil).
		Times(1)

	body := map[string]interface{}{
		"claimants": []map[string]interface{}{
			{"member_id": "M-1", "diagnosis_category": "Oncology", "total": 100, "hit_stop_loss": "Y", "enrolled": "Y"},
			{"member_id": "M-2", "diagnosis_category": "Cardiology", "total": -1, "hit_stop_loss": "N", "enrolled": "N"},
		},
	}
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/high-cost-claimants", body)

	response := testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusOK)

	result := response["result"].(map[string]interface{})
	assert.Equal(suite.T(), float64(1), result["imported"])
	assert.Len(suite.T(), result["rejected"], 1)
}

// TestImportInvalidBody tests that malformed JSON is a 400
func (suite *HighCostClaimantsHandlerTestSuite) TestImportInvalidBody() {
	suite.mockIdentity.EXPECT().
		Resolve(gomock.Any()).
		Return(&service.Principal{OrganizationID: uuid.New()}, nil).
		Times(1)

	req, _ := http.NewRequest(http.MethodPost, "/api/high-cost-claimants", bytes.NewBufferString("not json"))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	suite.httpSuite.Router.ServeHTTP(recorder, req)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestList tests the claimants page envelope
func (suite *HighCostClaimantsHandlerTestSuite) TestList() {
	orgID := uuid.New()

	suite.mockIdentity.EXPECT().
		Resolve(gomock.Any()).
		Return(&service.Principal{OrganizationID: orgID}, nil).
		Times(1)
	suite.mockClaimants.EXPECT().
		List(orgID, 1, 10).
		Return(&service.HighCostClaimantListResponse{
			Claimants:  []models.HighCostClaimant{{MemberID: "M-1"}},
			Pagination: service.NewPagination(1, 10, 1),
		}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/high-cost-claimants?page=1&limit=10", nil)

	response := testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusOK)
	assert.Len(suite.T(), response["claimants"], 1)
}

func TestHighCostClaimantsHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HighCostClaimantsHandlerTestSuite))
}
