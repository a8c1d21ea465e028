package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/corebanc/bankledger_app/internal/apperrors"
	"github.com/corebanc/bankledger_app/internal/core/domain"
	portsrepo "github.com/corebanc/bankledger_app/internal/core/ports/repositories"
	portssvc "github.com/corebanc/bankledger_app/internal/core/ports/services"
	"github.com/corebanc/bankledger_app/internal/dto"
	"github.com/corebanc/bankledger_app/internal/middleware"
)

type accountService struct {
	accountRepo     portsrepo.AccountRepository
	clientRepo      portsrepo.ClientRepository
	transactionRepo portsrepo.TransactionRepository
	factories       map[domain.AccountType]domain.AccountFactory
}

// NewAccountService creates the ledger operations service. The factories map
// decides which account types can be opened; a type missing from it is
// rejected as a validation failure.
func NewAccountService(accountRepo portsrepo.AccountRepository, clientRepo portsrepo.ClientRepository, transactionRepo portsrepo.TransactionRepository, factories map[domain.AccountType]domain.AccountFactory) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo:     accountRepo,
		clientRepo:      clientRepo,
		transactionRepo: transactionRepo,
		factories:       factories,
	}
}

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	client, err := s.clientRepo.FindClientByID(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: client %s", apperrors.ErrNotFound, req.ClientID)
		}
		logger.Error("Failed to load client for account creation", slog.String("error", err.Error()), slog.String("client_id", req.ClientID))
		return nil, err
	}

	factory, ok := s.factories[req.Type]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported account type %q", apperrors.ErrValidation, req.Type)
	}

	lastNumber, err := s.accountRepo.FindLastAccountNumber(ctx)
	if err != nil {
		logger.Error("Failed to determine next account number", slog.String("error", err.Error()))
		return nil, err
	}

	account := factory(lastNumber+1, client.ClientID, req.Status)
	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to save account", slog.String("error", err.Error()), slog.String("account_id", account.AccountID))
		return nil, err
	}
	account.Holder = client

	logger.Info("Account created",
		slog.String("account_id", account.AccountID),
		slog.Int64("number", account.Number),
		slog.String("type", string(account.Type)),
	)
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account by ID", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) Deposit(ctx context.Context, accountID string, amount decimal.Decimal) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	txn, err := account.Deposit(amount)
	if err != nil {
		return nil, err
	}

	if err := s.accountRepo.SaveLedgerMovement(ctx, []*domain.Account{account}, []domain.Transaction{txn}); err != nil {
		logger.Error("Failed to persist deposit", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, err
	}

	logger.Info("Deposit completed", slog.String("account_id", accountID), slog.String("amount", amount.String()))
	account.Transactions = []domain.Transaction{txn}
	return account, nil
}

func (s *accountService) Withdraw(ctx context.Context, accountID string, amount decimal.Decimal) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	txns, err := account.Withdraw(amount)
	if err != nil {
		return nil, err
	}

	if err := s.accountRepo.SaveLedgerMovement(ctx, []*domain.Account{account}, txns); err != nil {
		logger.Error("Failed to persist withdrawal", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, err
	}

	logger.Info("Withdrawal completed", slog.String("account_id", accountID), slog.String("amount", amount.String()))
	account.Transactions = txns
	return account, nil
}

// Transfer debits the source account (fee included) and credits the target
// with the gross amount. Both mutations and all transaction records commit as
// one ledger movement.
func (s *accountService) Transfer(ctx context.Context, req dto.TransferRequest) (*dto.TransferResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.SourceAccountID == req.TargetAccountID {
		return nil, fmt.Errorf("%w: source and target accounts must differ", apperrors.ErrValidation)
	}

	source, err := s.accountRepo.FindAccountByID(ctx, req.SourceAccountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: source account %s", apperrors.ErrNotFound, req.SourceAccountID)
		}
		return nil, err
	}
	target, err := s.accountRepo.FindAccountByID(ctx, req.TargetAccountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: target account %s", apperrors.ErrNotFound, req.TargetAccountID)
		}
		return nil, err
	}

	if source.Status != domain.Active || target.Status != domain.Active {
		return nil, fmt.Errorf("%w: both accounts must be active", apperrors.ErrValidation)
	}

	feeAmount := source.FeeFor(req.Amount)

	txns, err := source.Withdraw(req.Amount)
	if err != nil {
		return nil, err
	}
	depositTxn, err := target.Deposit(req.Amount)
	if err != nil {
		return nil, err
	}
	txns = append(txns, depositTxn)

	accounts := []*domain.Account{source, target}
	if err := s.accountRepo.SaveLedgerMovement(ctx, accounts, txns); err != nil {
		logger.Error("Failed to persist transfer",
			slog.String("error", err.Error()),
			slog.String("source_account_id", req.SourceAccountID),
			slog.String("target_account_id", req.TargetAccountID),
		)
		return nil, err
	}

	logger.Info("Transfer completed",
		slog.String("source_account_id", req.SourceAccountID),
		slog.String("target_account_id", req.TargetAccountID),
		slog.String("amount", req.Amount.String()),
		slog.String("fee", feeAmount.String()),
	)
	resp := dto.ToTransferResponse(source, target, req.Amount, feeAmount)
	return &resp, nil
}

func (s *accountService) GetStatement(ctx context.Context, accountID string, params dto.StatementParams) ([]domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, err
	}

	filter, err := buildStatementFilter(params)
	if err != nil {
		return nil, err
	}

	txns, err := s.transactionRepo.ListTransactionsForAccount(ctx, accountID, filter)
	if err != nil {
		logger.Error("Failed to list statement transactions", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, err
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}

// buildStatementFilter validates and normalizes the statement query
// parameters. Sort values are matched case-insensitively.
func buildStatementFilter(params dto.StatementParams) (portsrepo.StatementFilter, error) {
	if params.StartDate != nil && params.EndDate != nil && params.StartDate.After(*params.EndDate) {
		return portsrepo.StatementFilter{}, fmt.Errorf("%w: startDate must not be after endDate", apperrors.ErrValidation)
	}

	sortBy := strings.ToLower(params.SortBy)
	if sortBy == "" {
		sortBy = "timestamp"
	}
	switch sortBy {
	case "timestamp", "amount":
	default:
		return portsrepo.StatementFilter{}, fmt.Errorf("%w: unsupported sortBy %q", apperrors.ErrValidation, params.SortBy)
	}

	sortOrder := strings.ToLower(params.SortOrder)
	if sortOrder == "" {
		sortOrder = "desc"
	}
	switch sortOrder {
	case "asc", "desc":
	default:
		return portsrepo.StatementFilter{}, fmt.Errorf("%w: unsupported sortOrder %q", apperrors.ErrValidation, params.SortOrder)
	}

	return portsrepo.StatementFilter{
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
		SortBy:    sortBy,
		SortOrder: sortOrder,
	}, nil
}
