package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/corebanc/bankledger_app/internal/apperrors"
)

// TransactionType identifies the kind of ledger movement a transaction records.
type TransactionType string

const (
	Deposit  TransactionType = "DEPOSIT"
	Withdraw TransactionType = "WITHDRAW"
	Fee      TransactionType = "FEE"
)

// Transaction is an immutable record of a single ledger movement. It is created
// exactly once by an account operation and persisted append-only.
type Transaction struct {
	TransactionID   string          `json:"transactionID"`
	Type            TransactionType `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	Timestamp       time.Time       `json:"timestamp"`
	SourceAccountID *string         `json:"sourceAccountID,omitempty"`
	TargetAccountID *string         `json:"targetAccountID,omitempty"`
}

// NewTransaction builds a transaction and enforces the counterparty rules at
// construction: deposits require a target account, withdrawals and fees require
// a source account. Unknown types are rejected.
func NewTransaction(txnType TransactionType, amount decimal.Decimal, sourceAccountID, targetAccountID *string) (Transaction, error) {
	switch txnType {
	case Deposit:
		if targetAccountID == nil {
			return Transaction{}, fmt.Errorf("%w: deposits require a target account", apperrors.ErrInvalidTransaction)
		}
	case Withdraw:
		if sourceAccountID == nil {
			return Transaction{}, fmt.Errorf("%w: withdrawals require a source account", apperrors.ErrInvalidTransaction)
		}
	case Fee:
		if sourceAccountID == nil {
			return Transaction{}, fmt.Errorf("%w: fees require a source account", apperrors.ErrInvalidTransaction)
		}
	default:
		return Transaction{}, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrInvalidTransaction, txnType)
	}

	return Transaction{
		TransactionID:   uuid.NewString(),
		Type:            txnType,
		Amount:          amount,
		Timestamp:       time.Now().UTC(),
		SourceAccountID: sourceAccountID,
		TargetAccountID: targetAccountID,
	}, nil
}
