package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corebanc/bankledger_app/internal/apperrors"
	"github.com/corebanc/bankledger_app/internal/core/domain"
)

func newTestAccount(accountType domain.AccountType, status domain.AccountStatus, balance string) domain.Account {
	factories := domain.NewAccountFactories()
	acc := factories[accountType](10001, "client-1", status)
	acc.Balance = decimal.RequireFromString(balance)
	return acc
}

func TestAccount_Deposit(t *testing.T) {
	tests := []struct {
		name        string
		account     domain.Account
		amount      string
		wantErr     error
		wantBalance string
	}{
		{
			name:        "credits active account",
			account:     newTestAccount(domain.Checking, domain.Active, "100.00"),
			amount:      "50.25",
			wantBalance: "150.25",
		},
		{
			name:        "rejects zero amount",
			account:     newTestAccount(domain.Checking, domain.Active, "100.00"),
			amount:      "0",
			wantErr:     apperrors.ErrInvalidAmount,
			wantBalance: "100.00",
		},
		{
			name:        "rejects negative amount",
			account:     newTestAccount(domain.Savings, domain.Active, "100.00"),
			amount:      "-5",
			wantErr:     apperrors.ErrInvalidAmount,
			wantBalance: "100.00",
		},
		{
			name:        "rejects inactive account",
			account:     newTestAccount(domain.Checking, domain.Inactive, "100.00"),
			amount:      "10",
			wantErr:     apperrors.ErrAccountNotActive,
			wantBalance: "100.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn, err := tt.account.Deposit(decimal.RequireFromString(tt.amount))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, domain.Deposit, txn.Type)
				assert.True(t, txn.Amount.Equal(decimal.RequireFromString(tt.amount)))
				require.NotNil(t, txn.TargetAccountID)
				assert.Equal(t, tt.account.AccountID, *txn.TargetAccountID)
				assert.Nil(t, txn.SourceAccountID)
			}
			assert.True(t, tt.account.Balance.Equal(decimal.RequireFromString(tt.wantBalance)),
				"balance is %s, want %s", tt.account.Balance, tt.wantBalance)
		})
	}
}

func TestAccount_Withdraw_WithFee(t *testing.T) {
	// Checking account: 0.5% fee per withdrawal.
	acc := newTestAccount(domain.Checking, domain.Active, "1000.00")

	txns, err := acc.Withdraw(decimal.RequireFromString("300"))
	require.NoError(t, err)

	require.Len(t, txns, 2)
	assert.Equal(t, domain.Withdraw, txns[0].Type)
	assert.True(t, txns[0].Amount.Equal(decimal.RequireFromString("300")))
	assert.Equal(t, domain.Fee, txns[1].Type)
	assert.True(t, txns[1].Amount.Equal(decimal.RequireFromString("1.50")), "fee is %s", txns[1].Amount)

	for _, txn := range txns {
		require.NotNil(t, txn.SourceAccountID)
		assert.Equal(t, acc.AccountID, *txn.SourceAccountID)
		assert.Nil(t, txn.TargetAccountID)
	}

	assert.True(t, acc.Balance.Equal(decimal.RequireFromString("698.50")), "balance is %s", acc.Balance)
}

func TestAccount_Withdraw_WithoutFee(t *testing.T) {
	acc := newTestAccount(domain.Savings, domain.Active, "1000.00")

	txns, err := acc.Withdraw(decimal.RequireFromString("300"))
	require.NoError(t, err)

	require.Len(t, txns, 1)
	assert.Equal(t, domain.Withdraw, txns[0].Type)
	assert.True(t, acc.Balance.Equal(decimal.RequireFromString("700.00")))
}

func TestAccount_Withdraw_Failures(t *testing.T) {
	tests := []struct {
		name    string
		account domain.Account
		amount  string
		wantErr error
	}{
		{
			name:    "insufficient funds on savings",
			account: newTestAccount(domain.Savings, domain.Active, "50.00"),
			amount:  "100",
			wantErr: apperrors.ErrInsufficientFunds,
		},
		{
			name: "affordability includes the fee",
			// Balance covers the amount but not amount + 0.5% fee.
			account: newTestAccount(domain.Checking, domain.Active, "100.00"),
			amount:  "100",
			wantErr: apperrors.ErrInsufficientFunds,
		},
		{
			name:    "inactive account",
			account: newTestAccount(domain.Checking, domain.Inactive, "1000.00"),
			amount:  "10",
			wantErr: apperrors.ErrAccountNotActive,
		},
		{
			name:    "non-positive amount",
			account: newTestAccount(domain.Checking, domain.Active, "1000.00"),
			amount:  "0",
			wantErr: apperrors.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.account.Balance

			txns, err := tt.account.Withdraw(decimal.RequireFromString(tt.amount))

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, txns)
			assert.True(t, tt.account.Balance.Equal(before), "failed withdraw must not change the balance")
		})
	}
}

func TestAccount_Withdraw_ExactAffordabilityBoundary(t *testing.T) {
	// 100 + 0.50 fee == 100.50: exactly affordable.
	acc := newTestAccount(domain.Checking, domain.Active, "100.50")

	txns, err := acc.Withdraw(decimal.RequireFromString("100"))
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.True(t, acc.Balance.IsZero(), "balance is %s", acc.Balance)
}

func TestAccount_FeeFor_RoundsToTwoPlaces(t *testing.T) {
	acc := newTestAccount(domain.Checking, domain.Active, "0")

	// 0.005 * 33.33 = 0.16665 -> 0.17 half-away-from-zero.
	fee := acc.FeeFor(decimal.RequireFromString("33.33"))
	assert.True(t, fee.Equal(decimal.RequireFromString("0.17")), "fee is %s", fee)
}
