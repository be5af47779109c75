package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"claims-analytics-backend/internal/auth"
	"claims-analytics-backend/internal/database/models"
	"claims-analytics-backend/internal/mocks"
	"claims-analytics-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// AuthTestSuite defines the test suite for the session auth service
type AuthTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockProfileRepo *mocks.MockProfileRepositoryInterface
	service         *auth.Service
}

// SetupTest sets up the test suite
func (suite *AuthTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockProfileRepo = mocks.NewMockProfileRepositoryInterface(suite.ctrl)

	service, err := auth.NewService("test-secret", "claims_session", time.Hour, suite.mockProfileRepo)
	require.NoError(suite.T(), err)
	suite.service = service
}

// TearDownTest cleans up after each test
func (suite *AuthTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestTokenRoundTrip tests generating and validating a session token
func (suite *AuthTestSuite) TestTokenRoundTrip() {
	profile := &models.Profile{UserID: "user-1", Email: "jane.doe@test.com"}

	token, err := suite.service.GenerateSessionToken(profile)
	require.NoError(suite.T(), err)
	require.NotEmpty(suite.T(), token)

	claims, err := suite.service.ValidateSessionToken(token)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "user-1", claims.UserID)
	assert.Equal(suite.T(), "jane.doe@test.com", claims.Email)
	assert.Equal(suite.T(), "user-1", claims.Subject)
}

// TestValidateGarbageToken tests that junk tokens are rejected
func (suite *AuthTestSuite) TestValidateGarbageToken() {
	claims, err := suite.service.ValidateSessionToken("not.a.token")

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), claims)
}

// TestValidateTokenWrongSecret tests that a token signed with another secret is rejected
func (suite *AuthTestSuite) TestValidateTokenWrongSecret() {
	other, err := auth.NewService("other-secret", "claims_session", time.Hour, suite.mockProfileRepo)
	require.NoError(suite.T(), err)

	token, err := other.GenerateSessionToken(&models.Profile{UserID: "user-1"})
	require.NoError(suite.T(), err)

	claims, err := suite.service.ValidateSessionToken(token)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), claims)
}

// TestNewServiceRequiresSecret tests that an empty secret is rejected
func (suite *AuthTestSuite) TestNewServiceRequiresSecret() {
	service, err := auth.NewService("", "claims_session", time.Hour, suite.mockProfileRepo)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), service)
}

func (suite *AuthTestSuite) protectedRouter() *testutils.HTTPTestSuite {
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.Use(auth.NewMiddleware(suite.service).RequireSession())
	httpSuite.Router.GET("/protected", func(c *gin.Context) {
		userID, _ := auth.GetUserID(c)
		email, _ := auth.GetUserEmail(c)
		c.JSON(http.StatusOK, gin.H{"success": true, "user_id": userID, "email": email})
	})
	return httpSuite
}

// TestRequireSessionNoCookie tests that a missing cookie yields the 401 envelope
func (suite *AuthTestSuite) TestRequireSessionNoCookie() {
	httpSuite := suite.protectedRouter()

	recorder := httpSuite.MakeRequest(http.MethodGet, "/protected", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "Authentication required")
}

// TestRequireSessionInvalidCookie tests that a tampered cookie yields the 401 envelope
func (suite *AuthTestSuite) TestRequireSessionInvalidCookie() {
	httpSuite := suite.protectedRouter()

	cookie := &http.Cookie{Name: "claims_session", Value: "tampered"}
	recorder := httpSuite.MakeRequestWithCookie(http.MethodGet, "/protected", nil, cookie)

	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
}

// TestRequireSessionValidCookie tests that a valid cookie sets the user context
func (suite *AuthTestSuite) TestRequireSessionValidCookie() {
	token, err := suite.service.GenerateSessionToken(&models.Profile{UserID: "user-1", Email: "jane.doe@test.com"})
	require.NoError(suite.T(), err)

	httpSuite := suite.protectedRouter()

	cookie := &http.Cookie{Name: "claims_session", Value: token}
	recorder := httpSuite.MakeRequestWithCookie(http.MethodGet, "/protected", nil, cookie)

	response := testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusOK)
	assert.Equal(suite.T(), "user-1", response["user_id"])
	assert.Equal(suite.T(), "jane.doe@test.com", response["email"])
}

// TestLogin tests the credential exchange
func (suite *AuthTestSuite) TestLogin() {
	profile := &models.Profile{UserID: "user-1", Email: "jane.doe@test.com"}
	suite.mockProfileRepo.EXPECT().
		GetByUserID("user-1").
		Return(profile, nil).
		Times(1)

	router := gin.New()
	handler := auth.NewHandler(suite.service, false)
	router.POST("/api/auth/login", handler.Login)

	req := loginRequest(suite.T(), `{"user_id":"user-1"}`)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	cookies := recorder.Result().Cookies()
	require.Len(suite.T(), cookies, 1)
	assert.Equal(suite.T(), "claims_session", cookies[0].Name)
	assert.True(suite.T(), cookies[0].HttpOnly)
	assert.NotEmpty(suite.T(), cookies[0].Value)

	claims, err := suite.service.ValidateSessionToken(cookies[0].Value)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "user-1", claims.UserID)
}

// TestLoginUnknownUser tests that an unknown user id yields the 401 envelope
func (suite *AuthTestSuite) TestLoginUnknownUser() {
	suite.mockProfileRepo.EXPECT().
		GetByUserID("ghost").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	router := gin.New()
	handler := auth.NewHandler(suite.service, false)
	router.POST("/api/auth/login", handler.Login)

	req := loginRequest(suite.T(), `{"user_id":"ghost"}`)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
}

// TestLogout tests that logout clears the cookie
func (suite *AuthTestSuite) TestLogout() {
	router := gin.New()
	handler := auth.NewHandler(suite.service, false)
	router.POST("/api/auth/logout", handler.Logout)

	req, _ := http.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	cookies := recorder.Result().Cookies()
	require.Len(suite.T(), cookies, 1)
	assert.Empty(suite.T(), cookies[0].Value)
	assert.True(suite.T(), cookies[0].MaxAge < 0)
}

func loginRequest(t *testing.T, body string) *http.Request {
	req, err := http.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestAuthTestSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}
