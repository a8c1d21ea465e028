// Package services defines the facades the presentation layer programs
// against.
package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/corebanc/bankledger_app/internal/core/domain"
	"github.com/corebanc/bankledger_app/internal/dto"
)

// AccountSvcFacade exposes the ledger operations.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	Deposit(ctx context.Context, accountID string, amount decimal.Decimal) (*domain.Account, error)
	Withdraw(ctx context.Context, accountID string, amount decimal.Decimal) (*domain.Account, error)
	Transfer(ctx context.Context, req dto.TransferRequest) (*dto.TransferResponse, error)
	GetStatement(ctx context.Context, accountID string, params dto.StatementParams) ([]domain.Transaction, error)
}

// ClientSvcFacade exposes client lookups.
type ClientSvcFacade interface {
	GetClientByID(ctx context.Context, clientID string) (*domain.Client, error)
	SearchAccounts(ctx context.Context, clientID *string, documentNumber string) ([]domain.Account, error)
}

// AuthSvcFacade exposes registration and credential verification.
type AuthSvcFacade interface {
	RegisterClient(ctx context.Context, req dto.RegisterClientRequest) (*domain.Client, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

// ServiceContainer bundles the service facades for route registration.
type ServiceContainer struct {
	Account AccountSvcFacade
	Client  ClientSvcFacade
	Auth    AuthSvcFacade
}
