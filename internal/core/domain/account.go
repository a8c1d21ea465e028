package domain

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/corebanc/bankledger_app/internal/apperrors"
)

// AccountType distinguishes the account variants. The variant determines the
// fee policy fixed at account opening; behavior is otherwise shared.
type AccountType string

const (
	Checking AccountType = "CHECKING"
	Savings  AccountType = "SAVINGS"
)

// AccountStatus is the activity gate for mutating operations. No transitions
// are defined here; status is set at creation.
type AccountStatus string

const (
	Active   AccountStatus = "ACTIVE"
	Inactive AccountStatus = "INACTIVE"
)

// Account is the ledger aggregate. Balance mutations happen only through
// Deposit and Withdraw, which validate the account state and produce the
// transactions recording the movement.
type Account struct {
	AccountID    string          `json:"accountID"`
	Number       int64           `json:"number"`
	Balance      decimal.Decimal `json:"balance"`
	Fee          decimal.Decimal `json:"fee"`
	Status       AccountStatus   `json:"status"`
	Type         AccountType     `json:"type"`
	ClientID     string          `json:"clientID"`
	Holder       *Client         `json:"holder,omitempty"`
	Transactions []Transaction   `json:"transactions,omitempty"`
}

func (a *Account) ensureActive() error {
	if a.Status != Active {
		return apperrors.ErrAccountNotActive
	}
	return nil
}

func ensureAmountPositive(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return apperrors.ErrInvalidAmount
	}
	return nil
}

// FeeFor returns the fee charged for withdrawing the given amount, rounded
// half-away-from-zero to 2 decimal places. The same value is used for the
// affordability check, the balance decrement and the fee transaction.
func (a *Account) FeeFor(amount decimal.Decimal) decimal.Decimal {
	return a.Fee.Mul(amount).Round(2)
}

// Deposit credits the account and returns the transaction recording it.
// The balance change and the transaction form one unit; on error neither
// happens.
func (a *Account) Deposit(amount decimal.Decimal) (Transaction, error) {
	if err := a.ensureActive(); err != nil {
		return Transaction{}, err
	}
	if err := ensureAmountPositive(amount); err != nil {
		return Transaction{}, err
	}

	txn, err := NewTransaction(Deposit, amount, nil, &a.AccountID)
	if err != nil {
		return Transaction{}, err
	}
	a.Balance = a.Balance.Add(amount)
	return txn, nil
}

// Withdraw debits the account and returns the ordered transactions recording
// it: the withdrawal first, then a fee transaction when the account carries a
// fee policy. The affordability check covers the amount plus its fee before
// any mutation is applied.
func (a *Account) Withdraw(amount decimal.Decimal) ([]Transaction, error) {
	if err := a.ensureActive(); err != nil {
		return nil, err
	}
	if err := ensureAmountPositive(amount); err != nil {
		return nil, err
	}

	feeAmount := a.FeeFor(amount)
	if a.Balance.LessThan(amount.Add(feeAmount)) {
		return nil, fmt.Errorf("%w: balance %s cannot cover %s plus fee %s",
			apperrors.ErrInsufficientFunds, a.Balance.String(), amount.String(), feeAmount.String())
	}

	withdrawal, err := NewTransaction(Withdraw, amount, &a.AccountID, nil)
	if err != nil {
		return nil, err
	}
	txns := []Transaction{withdrawal}

	if feeAmount.IsPositive() {
		feeTxn, err := NewTransaction(Fee, feeAmount, &a.AccountID, nil)
		if err != nil {
			return nil, err
		}
		txns = append(txns, feeTxn)
	}

	a.Balance = a.Balance.Sub(amount)
	if feeAmount.IsPositive() {
		a.Balance = a.Balance.Sub(feeAmount)
	}
	return txns, nil
}
