package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/corebanc/bankledger_app/internal/apperrors"
	"github.com/corebanc/bankledger_app/internal/core/domain"
	portssvc "github.com/corebanc/bankledger_app/internal/core/ports/services"
	"github.com/corebanc/bankledger_app/internal/dto"
	"github.com/corebanc/bankledger_app/internal/handlers"
)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) RegisterClient(ctx context.Context, req dto.RegisterClientRequest) (*domain.Client, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Test Suite ---
type AuthHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockAuthService *MockAuthService
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockAuthService = new(MockAuthService)
	handlers.RegisterAuthRoutes(suite.router, suite.mockAuthService)
}

// doAuthRequest posts a JSON body from a fixed client IP so the per-IP login
// limiter sees one caller.
func (suite *AuthHandlerTestSuite) doAuthRequest(url string, body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "203.0.113.7:51000"

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func validRegisterBody() dto.RegisterClientRequest {
	return dto.RegisterClientRequest{
		Name:            "Grace Hopper",
		BirthDate:       time.Date(1990, time.March, 14, 0, 0, 0, 0, time.UTC),
		DocumentNumber:  "12345678901",
		Email:           "grace@example.com",
		Password:        "Sup3r$ecret",
		ConfirmPassword: "Sup3r$ecret",
	}
}

// --- Test Cases ---

func (suite *AuthHandlerTestSuite) TestRegister_Success() {
	body := validRegisterBody()
	client := domain.NewClient(body.Name, body.DocumentNumber, body.BirthDate, body.Email, "hash")

	suite.mockAuthService.On("RegisterClient", mock.Anything, body).Return(&client, nil).Once()

	w := suite.doAuthRequest("/api/v1/auth/register", body)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.ClientResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(client.ClientID, resp.ClientID)
	suite.Equal(body.Email, resp.Email)
	suite.mockAuthService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestRegister_DuplicateEmail() {
	body := validRegisterBody()

	suite.mockAuthService.On("RegisterClient", mock.Anything, body).
		Return(nil, fmt.Errorf("%w: email already registered", apperrors.ErrConflict)).Once()

	w := suite.doAuthRequest("/api/v1/auth/register", body)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	body := dto.LoginRequest{Email: "grace@example.com", Password: "Sup3r$ecret"}
	resp := &dto.LoginResponse{Token: "signed-token", Client: dto.ClientResponse{Email: body.Email}}

	suite.mockAuthService.On("Login", mock.Anything, body).Return(resp, nil).Once()

	w := suite.doAuthRequest("/api/v1/auth/login", body)

	suite.Equal(http.StatusOK, w.Code)
	var got dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal("signed-token", got.Token)
}

func (suite *AuthHandlerTestSuite) TestLogin_RateLimited() {
	body := dto.LoginRequest{Email: "grace@example.com", Password: "wrong-password"}

	suite.mockAuthService.On("Login", mock.Anything, body).
		Return(nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrAuthentication)).Times(5)

	for i := 0; i < 5; i++ {
		w := suite.doAuthRequest("/api/v1/auth/login", body)
		suite.Equal(http.StatusUnauthorized, w.Code)
	}

	w := suite.doAuthRequest("/api/v1/auth/login", body)
	suite.Equal(http.StatusTooManyRequests, w.Code)
	suite.mockAuthService.AssertNumberOfCalls(suite.T(), "Login", 5)
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
