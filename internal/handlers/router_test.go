package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"

	"github.com/SscSPs/campus_connect/internal/core/domain"
	portssvc "github.com/SscSPs/campus_connect/internal/core/ports/services"
	"github.com/SscSPs/campus_connect/internal/handlers"
	"github.com/SscSPs/campus_connect/internal/middleware"
	"github.com/SscSPs/campus_connect/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// envelope mirrors dto.Response with the payload left raw.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Count   *int            `json:"count"`
	Data    json.RawMessage `json:"data"`
}

// routerSuite builds the full router over mocked services.
type routerSuite struct {
	suite.Suite
	router          *gin.Engine
	mockAuth        *MockAuthService
	mockLostFound   *MockLostFoundService
	mockMarketplace *MockMarketplaceService
	authRateLimit   string
}

func (suite *routerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockAuth = new(MockAuthService)
	suite.mockLostFound = new(MockLostFoundService)
	suite.mockMarketplace = new(MockMarketplaceService)

	rate := suite.authRateLimit
	if rate == "" {
		rate = "1000-M"
	}
	authLimiter, err := middleware.NewLimiter(rate, "")
	suite.Require().NoError(err)

	cfg := &config.Config{IsProduction: true}
	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Auth:        suite.mockAuth,
		LostFound:   suite.mockLostFound,
		Marketplace: suite.mockMarketplace,
	}, authLimiter, nil)
}

func (suite *routerSuite) TearDownTest() {
	suite.mockAuth.AssertExpectations(suite.T())
	suite.mockLostFound.AssertExpectations(suite.T())
	suite.mockMarketplace.AssertExpectations(suite.T())
}

// signIn makes token resolve to user in the auth middleware.
func (suite *routerSuite) signIn(token string, user *domain.User) {
	suite.mockAuth.On("VerifyIdentity", mock.Anything, token).Return(user, nil).Maybe()
}

func (suite *routerSuite) do(method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	var env envelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	return w, env
}

func (suite *routerSuite) requireStatus(w *httptest.ResponseRecorder, want int) {
	suite.Require().Equal(want, w.Code, "body: %s", w.Body.String())
}

func newUser(id string) *domain.User {
	return &domain.User{UserID: id, Name: "Asha Rao", Email: "asha@college.edu", AuthProvider: domain.ProviderLocal}
}
