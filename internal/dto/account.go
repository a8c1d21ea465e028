package dto

import (
	"github.com/shopspring/decimal"

	"github.com/corebanc/bankledger_app/internal/core/domain"
)

// CreateAccountRequest defines the data needed to open an account.
type CreateAccountRequest struct {
	ClientID string               `json:"clientID" binding:"required,uuid"`
	Type     domain.AccountType   `json:"type" binding:"required,oneof=CHECKING SAVINGS"`
	Status   domain.AccountStatus `json:"status" binding:"required,oneof=ACTIVE INACTIVE"`
}

// AmountRequest carries the amount for a deposit or withdrawal. Positivity is
// enforced by the domain, which owns the InvalidAmount rule.
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID string               `json:"accountID"`
	Number    int64                `json:"number"`
	Balance   decimal.Decimal      `json:"balance"`
	Fee       decimal.Decimal      `json:"fee"`
	Status    domain.AccountStatus `json:"status"`
	Type      domain.AccountType   `json:"type"`
	Holder    *ClientResponse      `json:"holder,omitempty"`
}

// ToAccountResponse converts a domain.Account to an AccountResponse DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	resp := AccountResponse{
		AccountID: acc.AccountID,
		Number:    acc.Number,
		Balance:   acc.Balance,
		Fee:       acc.Fee,
		Status:    acc.Status,
		Type:      acc.Type,
	}
	if acc.Holder != nil {
		holder := ToClientResponse(acc.Holder)
		resp.Holder = &holder
	}
	return resp
}

// ToAccountResponses converts a slice of accounts.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}
