package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/corebanc/bankledger_app/internal/core/domain"
)

// TransferRequest defines the data needed to move funds between two accounts.
type TransferRequest struct {
	SourceAccountID string          `json:"sourceAccountID" binding:"required,uuid"`
	TargetAccountID string          `json:"targetAccountID" binding:"required,uuid"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
}

// TransferResponse summarizes a completed transfer, including the fee charged
// to the source account.
type TransferResponse struct {
	Amount              decimal.Decimal `json:"amount"`
	FeeAmount           decimal.Decimal `json:"feeAmount"`
	Total               decimal.Decimal `json:"total"`
	Timestamp           time.Time       `json:"timestamp"`
	SourceAccountID     string          `json:"sourceAccountID"`
	SourceAccountNumber int64           `json:"sourceAccountNumber"`
	SourceAccountHolder string          `json:"sourceAccountHolder"`
	TargetAccountID     string          `json:"targetAccountID"`
	TargetAccountNumber int64           `json:"targetAccountNumber"`
	TargetAccountHolder string          `json:"targetAccountHolder"`
}

// ToTransferResponse builds the transfer summary from the two mutated accounts.
func ToTransferResponse(source, target *domain.Account, amount, feeAmount decimal.Decimal) TransferResponse {
	resp := TransferResponse{
		Amount:              amount,
		FeeAmount:           feeAmount,
		Total:               amount.Add(feeAmount),
		Timestamp:           time.Now().UTC(),
		SourceAccountID:     source.AccountID,
		SourceAccountNumber: source.Number,
		TargetAccountID:     target.AccountID,
		TargetAccountNumber: target.Number,
	}
	if source.Holder != nil {
		resp.SourceAccountHolder = source.Holder.Name
	}
	if target.Holder != nil {
		resp.TargetAccountHolder = target.Holder.Name
	}
	return resp
}
