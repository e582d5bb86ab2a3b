package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Invariant pending = max(amount - paid, 0) dijaga di titik tulis terakhir.
func TestLedgerEntry_BeforeSave_Invariant(t *testing.T) {
	m := LedgerEntry{
		LedgerEntryFeeTypes:      FeeTypeSet{"tuition", "Tuition", "library"},
		LedgerEntryAmount:        decimal.NewFromInt(500),
		LedgerEntryPaidAmount:    decimal.NewFromInt(300),
		LedgerEntryPendingAmount: decimal.NewFromInt(9999), // nilai basi dari client
	}
	require.NoError(t, m.BeforeSave(nil))

	assert.True(t, m.LedgerEntryPendingAmount.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, FeeTypeSet{"library", "tuition"}, m.LedgerEntryFeeTypes)
}

func TestLedgerEntry_BeforeSave_ClampNegatif(t *testing.T) {
	m := LedgerEntry{
		LedgerEntryAmount:     decimal.NewFromInt(-50),
		LedgerEntryPaidAmount: decimal.NewFromInt(-10),
	}
	require.NoError(t, m.BeforeSave(nil))

	assert.True(t, m.LedgerEntryAmount.IsZero())
	assert.True(t, m.LedgerEntryPaidAmount.IsZero())
	assert.True(t, m.LedgerEntryPendingAmount.IsZero())
}

func TestLedgerEntry_BeforeSave_Overpay(t *testing.T) {
	m := LedgerEntry{
		LedgerEntryAmount:     decimal.NewFromInt(500),
		LedgerEntryPaidAmount: decimal.NewFromInt(700),
	}
	require.NoError(t, m.BeforeSave(nil))
	assert.True(t, m.LedgerEntryPendingAmount.IsZero())
}

func TestPaymentMode(t *testing.T) {
	for _, m := range []PaymentMode{
		PaymentModeCash, PaymentModeCard, PaymentModeUPI,
		PaymentModeBankTransfer, PaymentModeCheque,
	} {
		assert.True(t, m.Valid())
		assert.NotEmpty(t, m.Label())
	}
	assert.False(t, PaymentMode("gateway").Valid())
	assert.Equal(t, "Bank Transfer", PaymentModeBankTransfer.Label())
}
