// file: internals/features/finance/feecollection/service/summary.go
package service

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	catalogsvc "schoolku_backend/internals/features/finance/feecatalog/service"
	"schoolku_backend/internals/features/finance/feecollection/model"
)

/*
Summary/reporting — agregasi ledger per rentang tanggal (inklusif) + kelas.
Total HANYA dari set yang lolos filter. Field kosong dihitung 0 (zero value
decimal memang 0, jadi tidak ada jalur NaN).
*/

type LedgerSummary struct {
	Count          int             `json:"count"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	TotalPending   decimal.Decimal `json:"total_pending"`
	TotalCollected decimal.Decimal `json:"total_collected"`
}

// sameOrAfter/sameOrBefore membandingkan per-hari (paid_date = kolom date).
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// InRange: from/to zero value = tanpa batas di sisi itu.
func InRange(paid, from, to time.Time) bool {
	d := dateOnly(paid)
	if !from.IsZero() && d.Before(dateOnly(from)) {
		return false
	}
	if !to.IsZero() && d.After(dateOnly(to)) {
		return false
	}
	return true
}

// Summarize memfilter ledger lalu menjumlahkan kolom.
// collected per row = max(amount - pending, 0).
func Summarize(entries []model.LedgerEntry, from, to time.Time, class string) LedgerSummary {
	sum := LedgerSummary{
		TotalAmount:    decimal.Zero,
		TotalPending:   decimal.Zero,
		TotalCollected: decimal.Zero,
	}
	wantClass := strings.TrimSpace(class)

	for _, e := range entries {
		if !InRange(e.LedgerEntryPaidDate, from, to) {
			continue
		}
		if wantClass != "" &&
			!catalogsvc.MatchesClassSection(e.LedgerEntryClassName, "", wantClass, "") {
			continue
		}

		amount := e.LedgerEntryAmount
		if amount.IsNegative() {
			amount = decimal.Zero
		}
		pending := e.LedgerEntryPendingAmount
		if pending.IsNegative() {
			pending = decimal.Zero
		}
		collected := amount.Sub(pending)
		if collected.IsNegative() {
			collected = decimal.Zero
		}

		sum.Count++
		sum.TotalAmount = sum.TotalAmount.Add(amount)
		sum.TotalPending = sum.TotalPending.Add(pending)
		sum.TotalCollected = sum.TotalCollected.Add(collected)
	}
	return sum
}
