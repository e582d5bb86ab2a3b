// file: internals/features/finance/feecollection/model/ledger_entry_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

/* ==============================
   ENUM — payment mode
============================== */

type PaymentMode string

const (
	PaymentModeCash         PaymentMode = "cash"
	PaymentModeCard         PaymentMode = "card"
	PaymentModeUPI          PaymentMode = "upi"
	PaymentModeBankTransfer PaymentMode = "bank_transfer"
	PaymentModeCheque       PaymentMode = "cheque"
)

func (m PaymentMode) Valid() bool {
	switch m {
	case PaymentModeCash, PaymentModeCard, PaymentModeUPI, PaymentModeBankTransfer, PaymentModeCheque:
		return true
	}
	return false
}

// Label untuk tampilan receipt.
func (m PaymentMode) Label() string {
	switch m {
	case PaymentModeCash:
		return "Cash"
	case PaymentModeCard:
		return "Card"
	case PaymentModeUPI:
		return "UPI"
	case PaymentModeBankTransfer:
		return "Bank Transfer"
	case PaymentModeCheque:
		return "Cheque"
	}
	return string(m)
}

/* ==============================
   MODEL — ledger satu-satunya sumber kebenaran
   untuk uang yang BENAR-BENAR terkumpul.
============================== */

type LedgerEntry struct {
	// PK
	LedgerEntryID uuid.UUID `gorm:"column:ledger_entry_id;type:uuid;default:gen_random_uuid();primaryKey" json:"ledger_entry_id"`

	// Tenant & subject
	LedgerEntrySchoolID  uuid.UUID `gorm:"column:ledger_entry_school_id;type:uuid;not null;index:idx_ledger_tenant,priority:1" json:"ledger_entry_school_id"`
	LedgerEntryStudentID uuid.UUID `gorm:"column:ledger_entry_student_id;type:uuid;not null;index" json:"ledger_entry_student_id"`

	// Snapshot kelas saat bayar (biar receipt historis tetap benar)
	LedgerEntryClassName string `gorm:"column:ledger_entry_class_name;type:varchar(40);not null;index:idx_ledger_tenant,priority:2" json:"ledger_entry_class_name"`
	LedgerEntrySection   string `gorm:"column:ledger_entry_section;type:varchar(20);not null" json:"ledger_entry_section"`

	// Kewajiban yang dibayar (set kanonik, jsonb)
	LedgerEntryFeeTypes FeeTypeSet `gorm:"column:ledger_entry_fee_types;type:jsonb;not null" json:"ledger_entry_fee_types"`

	// Uang: amount = total kewajiban utk set fee_type terpilih,
	// paid = kumulatif terbayar, pending = max(amount-paid, 0).
	LedgerEntryAmount        decimal.Decimal `gorm:"column:ledger_entry_amount;type:numeric(12,2);not null" json:"ledger_entry_amount"`
	LedgerEntryPaidAmount    decimal.Decimal `gorm:"column:ledger_entry_paid_amount;type:numeric(12,2);not null" json:"ledger_entry_paid_amount"`
	LedgerEntryPendingAmount decimal.Decimal `gorm:"column:ledger_entry_pending_amount;type:numeric(12,2);not null" json:"ledger_entry_pending_amount"`

	LedgerEntryPaymentMode PaymentMode `gorm:"column:ledger_entry_payment_mode;type:varchar(20);not null" json:"ledger_entry_payment_mode"`
	LedgerEntryPaidDate    time.Time   `gorm:"column:ledger_entry_paid_date;type:date;not null;index" json:"ledger_entry_paid_date"`

	// Dibuat saat form create dibuka, tidak pernah di-regenerate.
	LedgerEntryReceiptNumber string `gorm:"column:ledger_entry_receipt_number;type:varchar(30);not null;uniqueIndex:uniq_ledger_receipt_number" json:"ledger_entry_receipt_number"`

	LedgerEntryDescription *string `gorm:"column:ledger_entry_description;type:text" json:"ledger_entry_description,omitempty"`

	// Timestamps
	LedgerEntryCreatedAt time.Time      `gorm:"column:ledger_entry_created_at;type:timestamptz;not null;autoCreateTime" json:"ledger_entry_created_at"`
	LedgerEntryUpdatedAt time.Time      `gorm:"column:ledger_entry_updated_at;type:timestamptz;not null;autoUpdateTime" json:"ledger_entry_updated_at"`
	LedgerEntryDeletedAt gorm.DeletedAt `gorm:"column:ledger_entry_deleted_at;type:timestamptz;index" json:"-"`
}

func (LedgerEntry) TableName() string { return "fee_ledger_entries" }

/* ======================================
   HOOK — jaga invariant pending di titik tulis terakhir.
   pending = max(amount - paid, 0), amount/paid tidak boleh negatif.
====================================== */

func (m *LedgerEntry) BeforeSave(tx *gorm.DB) error {
	if m.LedgerEntryAmount.IsNegative() {
		m.LedgerEntryAmount = decimal.Zero
	}
	if m.LedgerEntryPaidAmount.IsNegative() {
		m.LedgerEntryPaidAmount = decimal.Zero
	}
	pending := m.LedgerEntryAmount.Sub(m.LedgerEntryPaidAmount)
	if pending.IsNegative() {
		pending = decimal.Zero
	}
	m.LedgerEntryPendingAmount = pending
	m.LedgerEntryFeeTypes = NewFeeTypeSet(m.LedgerEntryFeeTypes...)
	return nil
}
