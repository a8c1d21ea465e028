package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/corebanc/bankledger_app/internal/core/domain"
	portsrepo "github.com/corebanc/bankledger_app/internal/core/ports/repositories"
	"github.com/corebanc/bankledger_app/internal/models"
	"github.com/corebanc/bankledger_app/internal/utils/mapping"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(db Querier) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

// sortColumns whitelists the sortable columns. The service validates the sort
// parameters; this map keeps caller input out of the SQL regardless.
var sortColumns = map[string]string{
	"timestamp": "timestamp",
	"amount":    "amount",
}

func (r *PgxTransactionRepository) ListTransactionsForAccount(ctx context.Context, accountID string, filter portsrepo.StatementFilter) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, type, amount, timestamp, source_account_id, target_account_id
		FROM transactions
		WHERE (source_account_id = $1 OR target_account_id = $1)
	`
	args := []any{accountID}

	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		query += fmt.Sprintf(" AND timestamp >= $%d", len(args))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		query += fmt.Sprintf(" AND timestamp <= $%d", len(args))
	}

	column, ok := sortColumns[strings.ToLower(filter.SortBy)]
	if !ok {
		column = "timestamp"
	}
	direction := "ASC"
	if strings.EqualFold(filter.SortOrder, "desc") {
		direction = "DESC"
	}
	query += fmt.Sprintf(" ORDER BY %s %s;", column, direction)

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for account %s: %w", accountID, err)
	}
	defer rows.Close()

	var modelTxns []models.Transaction
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(
			&m.TransactionID,
			&m.Type,
			&m.Amount,
			&m.Timestamp,
			&m.SourceAccountID,
			&m.TargetAccountID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		modelTxns = append(modelTxns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transaction rows: %w", err)
	}

	return mapping.ToDomainTransactionSlice(modelTxns), nil
}
