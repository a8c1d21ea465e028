package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountFactory builds a concrete account variant with its variant defaults.
type AccountFactory func(number int64, clientID string, status AccountStatus) Account

// checkingFeeRate is the withdrawal fee fraction applied to checking accounts.
var checkingFeeRate = decimal.NewFromFloat(0.005)

// NewAccountFactories returns the mapping from account type to its factory.
// Built once at startup and passed explicitly to the account service; a type
// absent from the map is an unsupported type, which the service reports as a
// validation failure.
func NewAccountFactories() map[AccountType]AccountFactory {
	return map[AccountType]AccountFactory{
		Checking: func(number int64, clientID string, status AccountStatus) Account {
			return newAccount(Checking, number, clientID, status, checkingFeeRate)
		},
		Savings: func(number int64, clientID string, status AccountStatus) Account {
			return newAccount(Savings, number, clientID, status, decimal.Zero)
		},
	}
}

func newAccount(accountType AccountType, number int64, clientID string, status AccountStatus, fee decimal.Decimal) Account {
	return Account{
		AccountID: uuid.NewString(),
		Number:    number,
		Balance:   decimal.Zero,
		Fee:       fee,
		Status:    status,
		Type:      accountType,
		ClientID:  clientID,
	}
}
