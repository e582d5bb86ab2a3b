package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"schoolku_backend/internals/features/finance/feecollection/model"
)

func ledgerRow(class string, paid time.Time, amount, pending int64) model.LedgerEntry {
	return model.LedgerEntry{
		LedgerEntryClassName:     class,
		LedgerEntryPaidDate:      paid,
		LedgerEntryAmount:        decimal.NewFromInt(amount),
		LedgerEntryPendingAmount: decimal.NewFromInt(pending),
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Skenario spec: filter 2024-01-01..2024-01-31 atas ledger berisi entry
// di dalam dan di luar rentang ⇒ total hanya dari yang in-range.
func TestSummarize_RentangTanggal(t *testing.T) {
	entries := []model.LedgerEntry{
		ledgerRow("10", day(2024, 1, 1), 500, 200),  // in (batas bawah inklusif)
		ledgerRow("10", day(2024, 1, 31), 300, 0),   // in (batas atas inklusif)
		ledgerRow("10", day(2023, 12, 31), 999, 99), // out
		ledgerRow("10", day(2024, 2, 1), 888, 88),   // out
	}

	sum := Summarize(entries, day(2024, 1, 1), day(2024, 1, 31), "")

	assert.Equal(t, 2, sum.Count)
	assert.True(t, sum.TotalAmount.Equal(decimal.NewFromInt(800)), "got %s", sum.TotalAmount)
	assert.True(t, sum.TotalPending.Equal(decimal.NewFromInt(200)))
	// collected = max(amount - pending, 0) per row: 300 + 300
	assert.True(t, sum.TotalCollected.Equal(decimal.NewFromInt(600)))
}

func TestSummarize_FilterKelasToleran(t *testing.T) {
	entries := []model.LedgerEntry{
		ledgerRow(" 10 ", day(2024, 1, 5), 500, 0),
		ledgerRow("10", day(2024, 1, 6), 200, 0),
		ledgerRow("9", day(2024, 1, 7), 100, 0),
	}

	sum := Summarize(entries, time.Time{}, time.Time{}, "10")
	assert.Equal(t, 2, sum.Count)
	assert.True(t, sum.TotalAmount.Equal(decimal.NewFromInt(700)))
}

// Field kosong dihitung 0, bukan NaN.
func TestSummarize_FieldKosongJadiNol(t *testing.T) {
	entries := []model.LedgerEntry{
		{LedgerEntryClassName: "10", LedgerEntryPaidDate: day(2024, 1, 5)}, // amount/pending zero value
		ledgerRow("10", day(2024, 1, 6), 500, 100),
	}

	sum := Summarize(entries, day(2024, 1, 1), day(2024, 1, 31), "")
	assert.Equal(t, 2, sum.Count)
	assert.True(t, sum.TotalAmount.Equal(decimal.NewFromInt(500)))
	assert.True(t, sum.TotalPending.Equal(decimal.NewFromInt(100)))
	assert.True(t, sum.TotalCollected.Equal(decimal.NewFromInt(400)))
}

// pending yang lebih besar dari amount (data lama rusak) tidak boleh
// membuat collected negatif.
func TestSummarize_CollectedTidakNegatif(t *testing.T) {
	entries := []model.LedgerEntry{
		ledgerRow("10", day(2024, 1, 5), 100, 300),
	}
	sum := Summarize(entries, time.Time{}, time.Time{}, "")
	assert.True(t, sum.TotalCollected.IsZero())
}

func TestSummarize_TotalHanyaDariSetTerfilter(t *testing.T) {
	entries := []model.LedgerEntry{
		ledgerRow("10", day(2024, 1, 5), 500, 0),
		ledgerRow("10", day(2025, 6, 5), 100000, 0),
	}
	sum := Summarize(entries, day(2024, 1, 1), day(2024, 12, 31), "")
	assert.Equal(t, 1, sum.Count)
	assert.True(t, sum.TotalAmount.Equal(decimal.NewFromInt(500)))
}

func TestInRange(t *testing.T) {
	assert.True(t, InRange(day(2024, 1, 15), day(2024, 1, 1), day(2024, 1, 31)))
	assert.True(t, InRange(day(2024, 1, 1), day(2024, 1, 1), day(2024, 1, 31)))
	assert.True(t, InRange(day(2024, 1, 31), day(2024, 1, 1), day(2024, 1, 31)))
	assert.False(t, InRange(day(2024, 2, 1), day(2024, 1, 1), day(2024, 1, 31)))

	// zero value = tanpa batas
	assert.True(t, InRange(day(1999, 1, 1), time.Time{}, time.Time{}))
	assert.True(t, InRange(day(2024, 5, 1), day(2024, 1, 1), time.Time{}))
}
