package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corebanc/bankledger_app/internal/core/domain"
)

func TestNewAccountFactories(t *testing.T) {
	factories := domain.NewAccountFactories()

	t.Run("checking accounts carry the withdrawal fee", func(t *testing.T) {
		factory, ok := factories[domain.Checking]
		require.True(t, ok)

		acc := factory(10001, "client-1", domain.Active)
		assert.NotEmpty(t, acc.AccountID)
		assert.Equal(t, int64(10001), acc.Number)
		assert.Equal(t, domain.Checking, acc.Type)
		assert.Equal(t, domain.Active, acc.Status)
		assert.Equal(t, "client-1", acc.ClientID)
		assert.True(t, acc.Balance.IsZero())
		assert.True(t, acc.Fee.Equal(decimal.RequireFromString("0.005")), "fee is %s", acc.Fee)
	})

	t.Run("savings accounts are fee free", func(t *testing.T) {
		factory, ok := factories[domain.Savings]
		require.True(t, ok)

		acc := factory(10002, "client-1", domain.Inactive)
		assert.Equal(t, domain.Savings, acc.Type)
		assert.Equal(t, domain.Inactive, acc.Status)
		assert.True(t, acc.Fee.IsZero())
	})

	t.Run("unsupported types are absent from the map", func(t *testing.T) {
		_, ok := factories[domain.AccountType("CREDIT")]
		assert.False(t, ok)
	})
}
