package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/corebanc/bankledger_app/internal/apperrors"
	"github.com/corebanc/bankledger_app/internal/core/domain"
	portssvc "github.com/corebanc/bankledger_app/internal/core/ports/services"
	"github.com/corebanc/bankledger_app/internal/core/services"
)

type ClientServiceTestSuite struct {
	suite.Suite
	mockClientRepo  *MockClientRepository
	mockAccountRepo *MockAccountRepository
	service         portssvc.ClientSvcFacade
}

func (suite *ClientServiceTestSuite) SetupTest() {
	suite.mockClientRepo = new(MockClientRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewClientService(suite.mockClientRepo, suite.mockAccountRepo)
}

func (suite *ClientServiceTestSuite) TestGetClientByID_Success() {
	ctx := context.Background()
	client := domain.NewClient("Test Client", "12345678901", testBirthDate(), "client@example.com", "hash")
	accounts := []domain.Account{*newAccount(domain.Checking, domain.Active, "100")}

	suite.mockClientRepo.On("FindClientByID", ctx, client.ClientID).Return(&client, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByClientID", ctx, client.ClientID).Return(accounts, nil).Once()

	found, err := suite.service.GetClientByID(ctx, client.ClientID)

	suite.Require().NoError(err)
	suite.Equal(client.ClientID, found.ClientID)
	suite.Len(found.Accounts, 1)
}

func (suite *ClientServiceTestSuite) TestGetClientByID_NotFound() {
	ctx := context.Background()
	clientID := uuid.NewString()

	suite.mockClientRepo.On("FindClientByID", ctx, clientID).Return(nil, apperrors.ErrNotFound).Once()

	found, err := suite.service.GetClientByID(ctx, clientID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(found)
}

func (suite *ClientServiceTestSuite) TestSearchAccounts_ByClientID() {
	ctx := context.Background()
	clientID := uuid.NewString()
	accounts := []domain.Account{*newAccount(domain.Savings, domain.Active, "50")}

	suite.mockAccountRepo.On("FindAccountsByClientID", ctx, clientID).Return(accounts, nil).Once()

	found, err := suite.service.SearchAccounts(ctx, &clientID, "")

	suite.Require().NoError(err)
	suite.Len(found, 1)
	suite.mockClientRepo.AssertNotCalled(suite.T(), "FindClientByDocument", mock.Anything, mock.Anything)
}

func (suite *ClientServiceTestSuite) TestSearchAccounts_ByDocumentNumber() {
	ctx := context.Background()
	client := domain.NewClient("Test Client", "12345678901", testBirthDate(), "client@example.com", "hash")
	accounts := []domain.Account{*newAccount(domain.Checking, domain.Active, "75")}

	suite.mockClientRepo.On("FindClientByDocument", ctx, client.DocumentNumber).Return(&client, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByClientID", ctx, client.ClientID).Return(accounts, nil).Once()

	found, err := suite.service.SearchAccounts(ctx, nil, client.DocumentNumber)

	suite.Require().NoError(err)
	suite.Len(found, 1)
}

func (suite *ClientServiceTestSuite) TestSearchAccounts_MissingIdentifiers() {
	ctx := context.Background()

	found, err := suite.service.SearchAccounts(ctx, nil, "")

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(found)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountsByClientID", mock.Anything, mock.Anything)
}

func (suite *ClientServiceTestSuite) TestSearchAccounts_NoAccounts() {
	ctx := context.Background()
	clientID := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountsByClientID", ctx, clientID).Return(nil, nil).Once()

	found, err := suite.service.SearchAccounts(ctx, &clientID, "")

	suite.Require().NoError(err)
	suite.NotNil(found)
	suite.Empty(found)
}

func TestClientServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClientServiceTestSuite))
}
