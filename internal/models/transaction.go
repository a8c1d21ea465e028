package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the persistence model for the transactions table. Rows are
// append-only.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	Type            string          `db:"type"`
	Amount          decimal.Decimal `db:"amount"`
	Timestamp       time.Time       `db:"timestamp"`
	SourceAccountID *string         `db:"source_account_id"`
	TargetAccountID *string         `db:"target_account_id"`
}
