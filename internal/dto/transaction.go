package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/corebanc/bankledger_app/internal/core/domain"
)

// StatementParams defines the query parameters of a statement request.
// Sort values are validated case-insensitively by the service.
type StatementParams struct {
	StartDate *time.Time `form:"startDate" time_format:"2006-01-02T15:04:05Z07:00"`
	EndDate   *time.Time `form:"endDate" time_format:"2006-01-02T15:04:05Z07:00"`
	SortBy    string     `form:"sortBy,default=timestamp"`
	SortOrder string     `form:"sortOrder,default=desc"`
}

// TransactionResponse defines the data returned for a single ledger movement.
type TransactionResponse struct {
	TransactionID   string                 `json:"transactionID"`
	Type            domain.TransactionType `json:"type"`
	Amount          decimal.Decimal        `json:"amount"`
	Timestamp       time.Time              `json:"timestamp"`
	SourceAccountID *string                `json:"sourceAccountID,omitempty"`
	TargetAccountID *string                `json:"targetAccountID,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to its DTO.
func ToTransactionResponse(txn domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		Type:            txn.Type,
		Amount:          txn.Amount,
		Timestamp:       txn.Timestamp,
		SourceAccountID: txn.SourceAccountID,
		TargetAccountID: txn.TargetAccountID,
	}
}

// ToTransactionResponses converts a slice of transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(txn)
	}
	return res
}
