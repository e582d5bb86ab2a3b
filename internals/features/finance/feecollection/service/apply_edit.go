// file: internals/features/finance/feecollection/service/apply_edit.go
package service

import (
	"errors"

	"github.com/shopspring/decimal"

	catalogmodel "schoolku_backend/internals/features/finance/feecatalog/model"
	"schoolku_backend/internals/features/finance/feecollection/model"
)

/*
Dua mode edit yang saling eksklusif, eksplisit dari operator:

  settle_pending → total kewajiban (amount) DIKUNCI, operator hanya
                   menambah pembayaran; fee_type tidak bisa diubah.
  add_fee        → fee_type set boleh diganti/diperluas; amount dihitung
                   ulang dari katalog (Rule A) sebelum pending diturunkan.

Satu operasi ApplyEdit dengan branch eksplisit, bukan toggle visibilitas
field di satu endpoint.
*/

type EditIntent string

const (
	EditIntentSettlePending EditIntent = "settle_pending"
	EditIntentAddFee        EditIntent = "add_fee"
)

var (
	ErrUnknownEditIntent = errors.New("unknown edit intent")
	ErrNegativePayment   = errors.New("paid amount must not be negative")
	ErrEmptyFeeTypes     = errors.New("fee type selection must not be empty")
)

type EditRequest struct {
	Intent EditIntent

	// settle_pending: tambahan pembayaran kali ini (bukan total baru)
	AdditionalPaid decimal.Decimal

	// add_fee: fee_type set pengganti
	FeeTypes model.FeeTypeSet
}

type EditResult struct {
	// Pembayaran sebelum edit ini — ditampilkan read-only sebagai konteks.
	PreviousPaidAmount decimal.Decimal
}

// ApplyEdit memutasi entry in-place sesuai intent. Tiap edit MENGGANTI total
// row yang sama; tidak pernah append row baru. Receipt number tidak disentuh.
func ApplyEdit(entry *model.LedgerEntry, req EditRequest, catalog []catalogmodel.FeeCatalogEntry) (EditResult, error) {
	res := EditResult{PreviousPaidAmount: entry.LedgerEntryPaidAmount}

	switch req.Intent {
	case EditIntentSettlePending:
		if req.AdditionalPaid.IsNegative() {
			return res, ErrNegativePayment
		}
		entry.LedgerEntryPaidAmount = entry.LedgerEntryPaidAmount.Add(req.AdditionalPaid)

	case EditIntentAddFee:
		fts := model.NewFeeTypeSet(req.FeeTypes...)
		if fts.IsEmpty() {
			return res, ErrEmptyFeeTypes
		}
		sess := SessionFromEntry(*entry)
		sess.SelectedFeeTypes = fts
		sess.Recompute(catalog)

		entry.LedgerEntryFeeTypes = fts
		entry.LedgerEntryAmount = sess.Amount
		if !req.AdditionalPaid.IsZero() {
			if req.AdditionalPaid.IsNegative() {
				return res, ErrNegativePayment
			}
			entry.LedgerEntryPaidAmount = entry.LedgerEntryPaidAmount.Add(req.AdditionalPaid)
		}

	default:
		return res, ErrUnknownEditIntent
	}

	entry.LedgerEntryPendingAmount = PendingOf(entry.LedgerEntryAmount, entry.LedgerEntryPaidAmount)
	return res, nil
}
