//go:build unit

package wallet_test

import (
	"testing"

	"store-offers-api/internal/domain/wallet"
	"store-offers-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCharge(t *testing.T) {
	testCases := []struct {
		name     string
		currency string
		amount   int64
		errIs    error
	}{
		{name: "valid", currency: "gold", amount: 10},
		{name: "zero amount", currency: "gold", amount: 0},
		{name: "blank currency", currency: " ", amount: 10, errIs: wallet.ErrBlankCurrency},
		{name: "negative amount", currency: "gold", amount: -1, errIs: wallet.ErrNegativeAmount},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := wallet.NewCharge(tc.currency, tc.amount)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, wallet.Charge{Currency: tc.currency, Amount: tc.amount}, c)
		})
	}
}

func TestBalances(t *testing.T) {
	b := wallet.Balances{"gold": 100, "gem": 0}

	t.Run("owned includes zero balances", func(t *testing.T) {
		assert.True(t, b.Owns("gem"))
		assert.False(t, b.Owns("silver"))
		assert.Equal(t, []string{"gem", "gold"}, b.Owned())
	})

	t.Run("covers sums charges per currency", func(t *testing.T) {
		assert.True(t, b.Covers([]wallet.Charge{{Currency: "gold", Amount: 60}, {Currency: "gold", Amount: 40}}))
		assert.False(t, b.Covers([]wallet.Charge{{Currency: "gold", Amount: 60}, {Currency: "gold", Amount: 41}}))
		assert.True(t, b.Covers([]wallet.Charge{{Currency: "silver", Amount: 0}}))
		assert.False(t, b.Covers([]wallet.Charge{{Currency: "gem", Amount: 1}}))
	})
}

func TestBalances_Debit(t *testing.T) {
	b := wallet.Balances{"gold": 10}

	require.NoError(t, b.Debit("gold", 4))
	assert.Equal(t, int64(6), b.Get("gold"))

	err := b.Debit("gold", 7)
	assert.ErrorIs(t, err, wallet.ErrInsufficientFunds)
	assert.True(t, errs.Is(err, errs.ErrInsufficientFunds))
	assert.Equal(t, int64(6), b.Get("gold"), "failed debit must not change the balance")

	assert.ErrorIs(t, b.Debit("gold", -1), wallet.ErrNegativeAmount)
}

func TestSumCharges(t *testing.T) {
	got := wallet.SumCharges([]wallet.Charge{
		{Currency: "gold", Amount: 5},
		{Currency: "gem", Amount: 2},
		{Currency: "gold", Amount: 3},
		{Currency: "silver", Amount: 0},
	})
	assert.Equal(t, []wallet.Charge{
		{Currency: "gem", Amount: 2},
		{Currency: "gold", Amount: 8},
	}, got)
}
