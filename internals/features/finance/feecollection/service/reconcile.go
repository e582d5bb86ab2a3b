// file: internals/features/finance/feecollection/service/reconcile.go
package service

import (
	"github.com/shopspring/decimal"

	catalogmodel "schoolku_backend/internals/features/finance/feecatalog/model"
	catalogsvc "schoolku_backend/internals/features/finance/feecatalog/service"
	"schoolku_backend/internals/features/finance/feecollection/model"
)

/*
Reconciliation engine — murni dan idempotent.

Dua aturan, urutan stabil:
  Rule A: amount selalu turunan katalog utk (class, section, selected).
  Rule B: pending = max(amount - paid, 0).

Tiap aturan hanya menulis kalau nilainya BERUBAH dan melaporkan hal itu,
jadi aman dijalankan di tiap keystroke tanpa drift / loop.
*/

// PendingOf menghitung sisa tagihan; tidak pernah negatif.
func PendingOf(amount, paid decimal.Decimal) decimal.Decimal {
	p := amount.Sub(paid)
	if p.IsNegative() {
		return decimal.Zero
	}
	return p
}

// CollectionSession = state form collection yang sedang berjalan.
type CollectionSession struct {
	StudentClass   string
	StudentSection string

	SelectedFeeTypes model.FeeTypeSet

	Amount        decimal.Decimal
	PaidAmount    decimal.Decimal
	PendingAmount decimal.Decimal
}

// ApplyCatalog = Rule A. Return true kalau amount berubah.
func (s *CollectionSession) ApplyCatalog(catalog []catalogmodel.FeeCatalogEntry) bool {
	want := catalogsvc.AmountForSelection(s.StudentClass, s.StudentSection, s.SelectedFeeTypes, catalog)
	if s.Amount.Equal(want) {
		return false
	}
	s.Amount = want
	return true
}

// DerivePending = Rule B. Return true kalau pending berubah.
func (s *CollectionSession) DerivePending() bool {
	want := PendingOf(s.Amount, s.PaidAmount)
	if s.PendingAmount.Equal(want) {
		return false
	}
	s.PendingAmount = want
	return true
}

// Recompute menjalankan Rule A lalu Rule B dalam satu pass, supaya
// perubahan fee_type di aksi yang sama langsung menghasilkan pending yang
// benar tanpa state intermediate basi. Return true kalau ada yang berubah.
func (s *CollectionSession) Recompute(catalog []catalogmodel.FeeCatalogEntry) bool {
	a := s.ApplyCatalog(catalog)
	b := s.DerivePending()
	return a || b
}

// SessionFromEntry membangun session dari satu row ledger.
func SessionFromEntry(e model.LedgerEntry) CollectionSession {
	return CollectionSession{
		StudentClass:     e.LedgerEntryClassName,
		StudentSection:   e.LedgerEntrySection,
		SelectedFeeTypes: model.NewFeeTypeSet(e.LedgerEntryFeeTypes...),
		Amount:           e.LedgerEntryAmount,
		PaidAmount:       e.LedgerEntryPaidAmount,
		PendingAmount:    PendingOf(e.LedgerEntryAmount, e.LedgerEntryPaidAmount),
	}
}

// ReconstructSession menyiapkan state edit: cari row ledger milik siswa yang
// sama dengan fee_type set yang sama (dibandingkan sebagai himpunan tak
// berurut), fallback ke record yang sedang di-edit. Ini yang bikin operator
// melihat total terdahulu yang akurat, bukan field kosong.
func ReconstructSession(target model.LedgerEntry, ledger []model.LedgerEntry) CollectionSession {
	for _, e := range ledger {
		if e.LedgerEntryID == target.LedgerEntryID {
			continue
		}
		if e.LedgerEntryStudentID == target.LedgerEntryStudentID &&
			e.LedgerEntryFeeTypes.Equal(target.LedgerEntryFeeTypes) {
			return SessionFromEntry(e)
		}
	}
	return SessionFromEntry(target)
}
