package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/corebanc/bankledger_app/internal/apperrors"
	"github.com/corebanc/bankledger_app/internal/core/domain"
	portsrepo "github.com/corebanc/bankledger_app/internal/core/ports/repositories"
	portssvc "github.com/corebanc/bankledger_app/internal/core/ports/services"
	"github.com/corebanc/bankledger_app/internal/middleware"
)

type clientService struct {
	clientRepo  portsrepo.ClientRepository
	accountRepo portsrepo.AccountRepository
}

// NewClientService creates the client lookup service.
func NewClientService(clientRepo portsrepo.ClientRepository, accountRepo portsrepo.AccountRepository) portssvc.ClientSvcFacade {
	return &clientService{
		clientRepo:  clientRepo,
		accountRepo: accountRepo,
	}
}

func (s *clientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find client by ID", slog.String("error", err.Error()), slog.String("client_id", clientID))
		}
		return nil, err
	}

	accounts, err := s.accountRepo.FindAccountsByClientID(ctx, clientID)
	if err != nil {
		logger.Error("Failed to list accounts for client", slog.String("error", err.Error()), slog.String("client_id", clientID))
		return nil, err
	}
	client.Accounts = accounts
	return client, nil
}

// SearchAccounts lists the accounts of a client identified either by ID or by
// document number. At least one identifier must be supplied.
func (s *clientService) SearchAccounts(ctx context.Context, clientID *string, documentNumber string) ([]domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	var resolvedClientID string
	switch {
	case clientID != nil && *clientID != "":
		resolvedClientID = *clientID
	case documentNumber != "":
		client, err := s.clientRepo.FindClientByDocument(ctx, documentNumber)
		if err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				logger.Error("Failed to find client by document", slog.String("error", err.Error()))
			}
			return nil, err
		}
		resolvedClientID = client.ClientID
	default:
		return nil, fmt.Errorf("%w: a client ID or document number is required", apperrors.ErrValidation)
	}

	accounts, err := s.accountRepo.FindAccountsByClientID(ctx, resolvedClientID)
	if err != nil {
		logger.Error("Failed to list accounts for client", slog.String("error", err.Error()), slog.String("client_id", resolvedClientID))
		return nil, err
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}
