package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"schoolku_backend/internals/features/finance/feecollection/model"
	assetmodel "schoolku_backend/internals/features/school/assets/model"
	studentmodel "schoolku_backend/internals/features/school/students/model"
)

func strptr(s string) *string { return &s }

func sampleEntry() model.LedgerEntry {
	return model.LedgerEntry{
		LedgerEntryClassName:     "10",
		LedgerEntrySection:       "A",
		LedgerEntryFeeTypes:      model.NewFeeTypeSet("tuition", "library"),
		LedgerEntryAmount:        decimal.NewFromInt(600),
		LedgerEntryPaidAmount:    decimal.NewFromInt(400),
		LedgerEntryPendingAmount: decimal.NewFromInt(200),
		LedgerEntryPaymentMode:   model.PaymentModeUPI,
		LedgerEntryPaidDate:      time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		LedgerEntryReceiptNumber: "REC-240115-101530-007",
		LedgerEntryDescription:   strptr("term 1"),
	}
}

func TestBuildReceiptView(t *testing.T) {
	student := &studentmodel.StudentRef{
		StudentName:            "Asha Verma",
		StudentClassName:       "10",
		StudentSection:         "A",
		StudentAdmissionNumber: "ADM-0042",
		StudentFatherName:      strptr("R Verma"),
		StudentMotherName:      strptr("S Verma"),
	}
	assets := &assetmodel.SchoolAsset{
		SchoolAssetName:         "Sunrise Public School",
		SchoolAssetLogoURL:      strptr("https://cdn.example.com/logo.png"),
		SchoolAssetSignatureURL: strptr("https://cdn.example.com/sign.png"),
	}

	v := BuildReceiptView(sampleEntry(), student, assets, "INR")

	assert.Equal(t, "REC-240115-101530-007", v.ReceiptNumber)
	assert.Equal(t, "15 Jan 2024", v.PaidDate)
	assert.Equal(t, "Asha Verma", v.StudentName)
	assert.Equal(t, "ADM-0042", v.AdmissionNumber)
	assert.Equal(t, "R Verma", v.FatherName)
	assert.Equal(t, "10 / A", v.ClassLabel)
	assert.Equal(t, []string{"library", "tuition"}, v.FeeTypes)
	assert.Equal(t, "library, tuition", v.FeeTypeLabel)
	assert.Equal(t, "UPI", v.PaymentMode)
	assert.Equal(t, "term 1", v.Description)
	assert.Equal(t, "Sunrise Public School", v.SchoolName)
	assert.Contains(t, v.PaidAmount, "400")
	assert.Contains(t, v.PendingAmount, "200")
}

// Lookup siswa/aset gagal ⇒ fallback teks, bukan error / view kosong.
func TestBuildReceiptView_FallbackTanpaLookup(t *testing.T) {
	v := BuildReceiptView(sampleEntry(), nil, nil, "INR")

	assert.Equal(t, "Student record unavailable", v.StudentName)
	assert.Equal(t, "School", v.SchoolName)
	assert.Empty(t, v.AdmissionNumber)
	assert.Empty(t, v.LogoURL)

	// data ledger tetap tampil
	assert.Equal(t, "REC-240115-101530-007", v.ReceiptNumber)
	assert.Equal(t, "10 / A", v.ClassLabel)
	assert.Equal(t, "library, tuition", v.FeeTypeLabel)
	assert.NotEmpty(t, v.TotalAmount)
}

func TestBuildReceiptView_CurrencyKosongDefaultINR(t *testing.T) {
	v := BuildReceiptView(sampleEntry(), nil, nil, "")
	assert.NotEmpty(t, v.TotalAmount)
	assert.Contains(t, v.TotalAmount, "600")
}
