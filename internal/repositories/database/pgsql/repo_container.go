package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/corebanc/bankledger_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the pgsql repositories. numberFloor is the base
// for sequential account numbering.
func NewRepositoryProvider(dbPool *pgxpool.Pool, numberFloor int64) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ClientRepo:      newPgxClientRepository(dbPool),
		AccountRepo:     newPgxAccountRepository(dbPool, numberFloor),
		TransactionRepo: newPgxTransactionRepository(dbPool),
	}
}
