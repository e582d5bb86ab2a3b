// file: internals/features/finance/feecollection/dto/fee_collection_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"schoolku_backend/internals/features/finance/feecollection/model"
)

/* =======================================================
   CREATE — satu transaksi pembayaran baru.
   ReceiptNumber datang dari client (di-generate saat form dibuka via
   GET /receipt-number) supaya yang tampil = yang tersimpan.
======================================================= */

type FeeCollectionCreateRequest struct {
	StudentID uuid.UUID        `json:"student_id" validate:"required"`
	FeeTypes  model.FeeTypeSet `json:"fee_types" validate:"required,min=1"`

	PaymentMode string    `json:"payment_mode" validate:"required,oneof=cash card upi bank_transfer cheque"`
	PaidDate    time.Time `json:"paid_date" validate:"required"`

	PaidAmount decimal.Decimal `json:"paid_amount"`

	ReceiptNumber string  `json:"receipt_number" validate:"required"`
	Description   *string `json:"description,omitempty"`
}

/* =======================================================
   EDIT — dua intent eksplisit (settle_pending | add_fee).
======================================================= */

type FeeCollectionEditRequest struct {
	Intent string `json:"intent" validate:"required,oneof=settle_pending add_fee"`

	// settle_pending: tambahan bayar. add_fee: opsional.
	PaidAmount decimal.Decimal `json:"paid_amount"`

	// add_fee saja; diabaikan untuk settle_pending.
	FeeTypes model.FeeTypeSet `json:"fee_types,omitempty"`
}

/* =======================================================
   RESPONSES
======================================================= */

type FeeCollectionResponse struct {
	LedgerEntryID uuid.UUID `json:"ledger_entry_id"`
	SchoolID      uuid.UUID `json:"school_id"`
	StudentID     uuid.UUID `json:"student_id"`

	ClassName string `json:"class_name"`
	Section   string `json:"section"`

	FeeTypes model.FeeTypeSet `json:"fee_types"`

	Amount        decimal.Decimal `json:"amount"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	PendingAmount decimal.Decimal `json:"pending_amount"`

	PaymentMode   model.PaymentMode `json:"payment_mode"`
	PaidDate      time.Time         `json:"paid_date"`
	ReceiptNumber string            `json:"receipt_number"`
	Description   *string           `json:"description,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EditContextResponse = state terdahulu untuk form edit
// (priviosPaidAmount di UI lama; sekarang previous_paid_amount).
type EditContextResponse struct {
	LedgerEntryID      uuid.UUID        `json:"ledger_entry_id"`
	FeeTypes           model.FeeTypeSet `json:"fee_types"`
	Amount             decimal.Decimal  `json:"amount"`
	PreviousPaidAmount decimal.Decimal  `json:"previous_paid_amount"`
	PendingAmount      decimal.Decimal  `json:"pending_amount"`
}

func ToFeeCollectionResponse(m model.LedgerEntry) FeeCollectionResponse {
	return FeeCollectionResponse{
		LedgerEntryID: m.LedgerEntryID,
		SchoolID:      m.LedgerEntrySchoolID,
		StudentID:     m.LedgerEntryStudentID,
		ClassName:     m.LedgerEntryClassName,
		Section:       m.LedgerEntrySection,
		FeeTypes:      m.LedgerEntryFeeTypes,
		Amount:        m.LedgerEntryAmount,
		PaidAmount:    m.LedgerEntryPaidAmount,
		PendingAmount: m.LedgerEntryPendingAmount,
		PaymentMode:   m.LedgerEntryPaymentMode,
		PaidDate:      m.LedgerEntryPaidDate,
		ReceiptNumber: m.LedgerEntryReceiptNumber,
		Description:   m.LedgerEntryDescription,
		CreatedAt:     m.LedgerEntryCreatedAt,
		UpdatedAt:     m.LedgerEntryUpdatedAt,
	}
}

func ToFeeCollectionResponses(ms []model.LedgerEntry) []FeeCollectionResponse {
	out := make([]FeeCollectionResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToFeeCollectionResponse(m))
	}
	return out
}
