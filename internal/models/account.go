package models

import "github.com/shopspring/decimal"

// Account is the persistence model for the accounts table.
type Account struct {
	AccountID string          `db:"account_id"`
	Number    int64           `db:"number"`
	Balance   decimal.Decimal `db:"balance"`
	Fee       decimal.Decimal `db:"fee"`
	Status    string          `db:"status"`
	Type      string          `db:"type"`
	ClientID  string          `db:"client_id"`
}
