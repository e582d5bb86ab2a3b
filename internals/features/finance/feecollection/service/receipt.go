// file: internals/features/finance/feecollection/service/receipt.go
package service

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"schoolku_backend/internals/features/finance/feecollection/model"
	assetmodel "schoolku_backend/internals/features/school/assets/model"
	studentmodel "schoolku_backend/internals/features/school/students/model"
)

/*
Receipt formatter — transform murni LedgerEntry (+student+assets) menjadi
view siap render. Mechanics PDF/print bukan urusan sini. Lookup siswa atau
aset yang gagal di-degrade ke teks fallback, tidak pernah error dan tidak
pernah view kosong.
*/

const (
	fallbackStudentName = "Student record unavailable"
	fallbackSchoolName  = "School"
)

type ReceiptView struct {
	ReceiptNumber string `json:"receipt_number"`
	PaidDate      string `json:"paid_date"`

	StudentName     string `json:"student_name"`
	AdmissionNumber string `json:"admission_number"`
	FatherName      string `json:"father_name"`
	MotherName      string `json:"mother_name"`
	ClassLabel      string `json:"class_label"`

	FeeTypes     []string `json:"fee_types"`
	FeeTypeLabel string   `json:"fee_type_label"`

	TotalAmount   string `json:"total_amount"`
	PaidAmount    string `json:"paid_amount"`
	PendingAmount string `json:"pending_amount"`
	PaymentMode   string `json:"payment_mode"`
	Description   string `json:"description,omitempty"`

	SchoolName   string `json:"school_name"`
	LogoURL      string `json:"logo_url,omitempty"`
	SignatureURL string `json:"signature_url,omitempty"`
}

// displayMoney memformat decimal ke string mata uang (mis. "₹500.00").
func displayMoney(d decimal.Decimal, currency string) string {
	if strings.TrimSpace(currency) == "" {
		currency = money.INR
	}
	minor := d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	return money.New(minor, currency).Display()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// BuildReceiptView menyusun view receipt; student/assets boleh nil.
func BuildReceiptView(entry model.LedgerEntry, student *studentmodel.StudentRef, assets *assetmodel.SchoolAsset, currency string) ReceiptView {
	v := ReceiptView{
		ReceiptNumber: entry.LedgerEntryReceiptNumber,
		PaidDate:      entry.LedgerEntryPaidDate.Format("02 Jan 2006"),

		StudentName: fallbackStudentName,
		ClassLabel:  strings.TrimSpace(entry.LedgerEntryClassName + " / " + entry.LedgerEntrySection),

		FeeTypes:     model.NewFeeTypeSet(entry.LedgerEntryFeeTypes...),
		FeeTypeLabel: entry.LedgerEntryFeeTypes.Display(),

		TotalAmount:   displayMoney(entry.LedgerEntryAmount, currency),
		PaidAmount:    displayMoney(entry.LedgerEntryPaidAmount, currency),
		PendingAmount: displayMoney(entry.LedgerEntryPendingAmount, currency),
		PaymentMode:   entry.LedgerEntryPaymentMode.Label(),
		Description:   deref(entry.LedgerEntryDescription),

		SchoolName: fallbackSchoolName,
	}

	if student != nil {
		v.StudentName = student.StudentName
		v.AdmissionNumber = student.StudentAdmissionNumber
		v.FatherName = deref(student.StudentFatherName)
		v.MotherName = deref(student.StudentMotherName)
		if cls := strings.TrimSpace(student.StudentClassName + " / " + student.StudentSection); cls != "/" {
			v.ClassLabel = cls
		}
	}

	if assets != nil {
		if strings.TrimSpace(assets.SchoolAssetName) != "" {
			v.SchoolName = assets.SchoolAssetName
		}
		v.LogoURL = deref(assets.SchoolAssetLogoURL)
		v.SignatureURL = deref(assets.SchoolAssetSignatureURL)
	}

	return v
}
