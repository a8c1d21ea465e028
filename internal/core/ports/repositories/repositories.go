// Package repositories defines the persistence boundary consumed by the core
// services. Implementations live under internal/repositories.
package repositories

import (
	"context"
	"time"

	"github.com/corebanc/bankledger_app/internal/core/domain"
)

// StatementFilter narrows and orders a statement query. Date bounds are
// inclusive; SortBy is "timestamp" or "amount" and SortOrder "asc" or "desc",
// validated by the service before the repository sees them.
type StatementFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	SortBy    string
	SortOrder string
}

// ClientRepository persists and loads clients.
type ClientRepository interface {
	SaveClient(ctx context.Context, client domain.Client) error
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)
	FindClientByEmail(ctx context.Context, email string) (*domain.Client, error)
	FindClientByDocument(ctx context.Context, documentNumber string) (*domain.Client, error)
}

// AccountRepository persists and loads accounts. SaveLedgerMovement is the
// unit-of-work boundary: all account mutations and transaction records of one
// ledger operation commit together or not at all.
type AccountRepository interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	// FindAccountByID loads an account together with its holder.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	FindAccountsByClientID(ctx context.Context, clientID string) ([]domain.Account, error)
	// FindLastAccountNumber returns the highest assigned account number, or the
	// configured floor when no accounts exist yet.
	FindLastAccountNumber(ctx context.Context) (int64, error)
	// SaveLedgerMovement applies the balance changes the transactions describe
	// under row locks and records the transactions, all in one database
	// transaction. It serializes conflicting movements: the implementation must
	// apply deltas, not absolute balances, and write the authoritative
	// post-movement balances back into the given accounts.
	SaveLedgerMovement(ctx context.Context, accounts []*domain.Account, transactions []domain.Transaction) error
}

// TransactionRepository reads the append-only transaction log.
type TransactionRepository interface {
	ListTransactionsForAccount(ctx context.Context, accountID string, filter StatementFilter) ([]domain.Transaction, error)
}

// RepositoryProvider bundles the repositories for service wiring.
type RepositoryProvider struct {
	ClientRepo      ClientRepository
	AccountRepo     AccountRepository
	TransactionRepo TransactionRepository
}
