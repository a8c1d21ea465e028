package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/corebanc/bankledger_app/internal/apperrors"
	"github.com/corebanc/bankledger_app/internal/core/domain"
	portsrepo "github.com/corebanc/bankledger_app/internal/core/ports/repositories"
	"github.com/corebanc/bankledger_app/internal/models"
	"github.com/corebanc/bankledger_app/internal/utils/mapping"
)

type PgxAccountRepository struct {
	BaseRepository
	numberFloor int64
}

func newPgxAccountRepository(db Querier, numberFloor int64) portsrepo.AccountRepository {
	return &PgxAccountRepository{
		BaseRepository: BaseRepository{DB: db},
		numberFloor:    numberFloor,
	}
}

var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

const accountWithHolderQuery = `
	SELECT a.account_id, a.number, a.balance, a.fee, a.status, a.type, a.client_id,
	       c.client_id, c.name, c.birth_date, c.document_number, c.email, c.password_hash, c.created_at
	FROM accounts a
	JOIN clients c ON c.client_id = a.client_id
`

func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	modelAccount := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (account_id, number, balance, fee, status, type, client_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.DB.Exec(ctx, query,
		modelAccount.AccountID,
		modelAccount.Number,
		modelAccount.Balance,
		modelAccount.Fee,
		modelAccount.Status,
		modelAccount.Type,
		modelAccount.ClientID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: account number %d already assigned", apperrors.ErrConflict, modelAccount.Number)
		}
		return fmt.Errorf("failed to save account: %w", err)
	}
	return nil
}

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	row := r.DB.QueryRow(ctx, accountWithHolderQuery+" WHERE a.account_id = $1;", accountID)

	account, err := scanAccountWithHolder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}
	return account, nil
}

func (r *PgxAccountRepository) FindAccountsByClientID(ctx context.Context, clientID string) ([]domain.Account, error) {
	rows, err := r.DB.Query(ctx, accountWithHolderQuery+" WHERE a.client_id = $1 ORDER BY a.number;", clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts for client %s: %w", clientID, err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		account, err := scanAccountWithHolder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, *account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read account rows: %w", err)
	}
	return accounts, nil
}

func (r *PgxAccountRepository) FindLastAccountNumber(ctx context.Context) (int64, error) {
	query := `SELECT COALESCE(MAX(number), $1) FROM accounts;`

	var lastNumber int64
	if err := r.DB.QueryRow(ctx, query, r.numberFloor).Scan(&lastNumber); err != nil {
		return 0, fmt.Errorf("failed to find last account number: %w", err)
	}
	return lastNumber, nil
}

// SaveLedgerMovement persists the balance mutations and transaction records of
// one ledger operation as a single database transaction. The touched account
// rows are locked first, then each balance is moved by the delta the
// transactions describe, so concurrent movements on the same account cannot
// overwrite each other's writes. The authoritative post-movement balances are
// written back into the given accounts; a movement that would drive a balance
// below zero fails with ErrInsufficientFunds and persists nothing.
func (r *PgxAccountRepository) SaveLedgerMovement(ctx context.Context, accounts []*domain.Account, transactions []domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // no-op once committed

	accountIDs := make([]string, len(accounts))
	for i, acc := range accounts {
		accountIDs[i] = acc.AccountID
	}

	lockQuery := `SELECT account_id FROM accounts WHERE account_id = ANY($1) FOR UPDATE;`
	rows, err := tx.Query(ctx, lockQuery, accountIDs)
	if err != nil {
		return fmt.Errorf("failed to lock accounts for update: %w", err)
	}
	locked := 0
	for rows.Next() {
		locked++
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to lock accounts for update: %w", err)
	}
	if locked != len(accountIDs) {
		return fmt.Errorf("%w: account disappeared during ledger movement", apperrors.ErrNotFound)
	}

	deltas := balanceDeltas(transactions)
	balanceQuery := `UPDATE accounts SET balance = balance + $1 WHERE account_id = $2 RETURNING balance;`
	for _, acc := range accounts {
		delta, ok := deltas[acc.AccountID]
		if !ok {
			continue
		}
		var newBalance decimal.Decimal
		if err := tx.QueryRow(ctx, balanceQuery, delta, acc.AccountID).Scan(&newBalance); err != nil {
			if isCheckViolation(err) {
				return fmt.Errorf("%w: balance of account %s cannot cover the movement", apperrors.ErrInsufficientFunds, acc.AccountID)
			}
			return fmt.Errorf("failed to update balance for account %s: %w", acc.AccountID, err)
		}
		acc.Balance = newBalance
	}

	txnQuery := `
		INSERT INTO transactions (transaction_id, type, amount, timestamp, source_account_id, target_account_id)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, txn := range transactions {
		modelTxn := mapping.ToModelTransaction(txn)
		if _, err := tx.Exec(ctx, txnQuery,
			modelTxn.TransactionID,
			modelTxn.Type,
			modelTxn.Amount,
			modelTxn.Timestamp,
			modelTxn.SourceAccountID,
			modelTxn.TargetAccountID,
		); err != nil {
			return fmt.Errorf("failed to insert transaction %s: %w", txn.TransactionID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// balanceDeltas folds the transaction list into one balance change per
// account: deposits credit the target, withdrawals and fees debit the source.
func balanceDeltas(transactions []domain.Transaction) map[string]decimal.Decimal {
	deltas := make(map[string]decimal.Decimal, len(transactions))
	for _, txn := range transactions {
		switch txn.Type {
		case domain.Deposit:
			if txn.TargetAccountID != nil {
				deltas[*txn.TargetAccountID] = deltas[*txn.TargetAccountID].Add(txn.Amount)
			}
		case domain.Withdraw, domain.Fee:
			if txn.SourceAccountID != nil {
				deltas[*txn.SourceAccountID] = deltas[*txn.SourceAccountID].Sub(txn.Amount)
			}
		}
	}
	return deltas
}

// scanAccountWithHolder scans a row produced by accountWithHolderQuery.
func scanAccountWithHolder(row pgx.Row) (*domain.Account, error) {
	var modelAccount models.Account
	var modelClient models.Client
	err := row.Scan(
		&modelAccount.AccountID,
		&modelAccount.Number,
		&modelAccount.Balance,
		&modelAccount.Fee,
		&modelAccount.Status,
		&modelAccount.Type,
		&modelAccount.ClientID,
		&modelClient.ClientID,
		&modelClient.Name,
		&modelClient.BirthDate,
		&modelClient.DocumentNumber,
		&modelClient.Email,
		&modelClient.PasswordHash,
		&modelClient.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	account := mapping.ToDomainAccount(modelAccount)
	holder := mapping.ToDomainClient(modelClient)
	account.Holder = &holder
	return &account, nil
}
