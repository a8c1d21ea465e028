package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/corebanc/bankledger_app/internal/apperrors"
	"github.com/corebanc/bankledger_app/internal/core/domain"
	portssvc "github.com/corebanc/bankledger_app/internal/core/ports/services"
	"github.com/corebanc/bankledger_app/internal/core/services"
	"github.com/corebanc/bankledger_app/internal/dto"
	"github.com/corebanc/bankledger_app/internal/platform/config"
	"github.com/corebanc/bankledger_app/internal/utils"
)

type AuthServiceTestSuite struct {
	suite.Suite
	mockClientRepo *MockClientRepository
	service        portssvc.AuthSvcFacade
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockClientRepo = new(MockClientRepository)
	cfg := &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: 5 * time.Minute,
		JWTIssuer:         "bankledger-app",
		JWTAudience:       "bankledger-clients",
	}
	suite.service = services.NewAuthService(cfg, suite.mockClientRepo)
}

func validRegisterRequest() dto.RegisterClientRequest {
	return dto.RegisterClientRequest{
		Name:            "Test Client",
		BirthDate:       testBirthDate(),
		DocumentNumber:  "12345678901",
		Email:           "client@example.com",
		Password:        "Sup3r$ecret",
		ConfirmPassword: "Sup3r$ecret",
	}
}

// --- RegisterClient Tests ---

func (suite *AuthServiceTestSuite) TestRegisterClient_Success() {
	ctx := context.Background()
	req := validRegisterRequest()

	suite.mockClientRepo.On("FindClientByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockClientRepo.On("FindClientByDocument", ctx, req.DocumentNumber).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockClientRepo.On("SaveClient", ctx, mock.MatchedBy(func(client domain.Client) bool {
		return client.Email == req.Email &&
			client.DocumentNumber == req.DocumentNumber &&
			client.PasswordHash != req.Password &&
			utils.CheckPasswordHash(req.Password, client.PasswordHash)
	})).Return(nil).Once()

	client, err := suite.service.RegisterClient(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(client)
	suite.NotEmpty(client.ClientID)
	suite.Equal(req.Name, client.Name)
	suite.mockClientRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestRegisterClient_EmailTaken() {
	ctx := context.Background()
	req := validRegisterRequest()
	existing := domain.NewClient("Existing", "99999999999", testBirthDate(), req.Email, "hash")

	suite.mockClientRepo.On("FindClientByEmail", ctx, req.Email).Return(&existing, nil).Once()

	client, err := suite.service.RegisterClient(ctx, req)

	suite.Require().ErrorIs(err, apperrors.ErrConflict)
	suite.Nil(client)
	suite.mockClientRepo.AssertNotCalled(suite.T(), "SaveClient", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestRegisterClient_DocumentTaken() {
	ctx := context.Background()
	req := validRegisterRequest()
	existing := domain.NewClient("Existing", req.DocumentNumber, testBirthDate(), "other@example.com", "hash")

	suite.mockClientRepo.On("FindClientByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockClientRepo.On("FindClientByDocument", ctx, req.DocumentNumber).Return(&existing, nil).Once()

	client, err := suite.service.RegisterClient(ctx, req)

	suite.Require().ErrorIs(err, apperrors.ErrConflict)
	suite.Nil(client)
	suite.mockClientRepo.AssertNotCalled(suite.T(), "SaveClient", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestRegisterClient_WeakPassword() {
	ctx := context.Background()
	req := validRegisterRequest()
	req.Password = "alllowercase1$"
	req.ConfirmPassword = req.Password

	suite.mockClientRepo.On("FindClientByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockClientRepo.On("FindClientByDocument", ctx, req.DocumentNumber).Return(nil, apperrors.ErrNotFound).Once()

	client, err := suite.service.RegisterClient(ctx, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(client)
	suite.mockClientRepo.AssertNotCalled(suite.T(), "SaveClient", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestRegisterClient_PasswordMismatch() {
	ctx := context.Background()
	req := validRegisterRequest()
	req.ConfirmPassword = "D1fferent$ecret"

	suite.mockClientRepo.On("FindClientByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockClientRepo.On("FindClientByDocument", ctx, req.DocumentNumber).Return(nil, apperrors.ErrNotFound).Once()

	client, err := suite.service.RegisterClient(ctx, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(client)
}

// --- Login Tests ---

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	password := "Sup3r$ecret"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	client := domain.NewClient("Test Client", "12345678901", testBirthDate(), "client@example.com", hash)

	suite.mockClientRepo.On("FindClientByEmail", ctx, client.Email).Return(&client, nil).Once()

	resp, err := suite.service.Login(ctx, dto.LoginRequest{Email: client.Email, Password: password})

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.NotEmpty(resp.Token)
	suite.Equal(client.ClientID, resp.Client.ClientID)

	claims, err := utils.ParseAndValidateJWT(resp.Token, "test-secret", "bankledger-app", "bankledger-clients")
	suite.Require().NoError(err)
	suite.Equal(client.ClientID, claims.Subject)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownEmail() {
	ctx := context.Background()

	suite.mockClientRepo.On("FindClientByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.Login(ctx, dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"})

	suite.Require().ErrorIs(err, apperrors.ErrAuthentication)
	suite.Nil(resp)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("Sup3r$ecret")
	suite.Require().NoError(err)
	client := domain.NewClient("Test Client", "12345678901", testBirthDate(), "client@example.com", hash)

	suite.mockClientRepo.On("FindClientByEmail", ctx, client.Email).Return(&client, nil).Once()

	resp, err := suite.service.Login(ctx, dto.LoginRequest{Email: client.Email, Password: "Wr0ng$ecret"})

	suite.Require().ErrorIs(err, apperrors.ErrAuthentication)
	suite.Nil(resp)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
