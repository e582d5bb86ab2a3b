package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogmodel "schoolku_backend/internals/features/finance/feecatalog/model"
	"schoolku_backend/internals/features/finance/feecollection/model"
)

func catalogEntry(class, section, feeType string, amount int64) catalogmodel.FeeCatalogEntry {
	return catalogmodel.FeeCatalogEntry{
		FeeCatalogClassName: class,
		FeeCatalogSection:   section,
		FeeCatalogFeeType:   feeType,
		FeeCatalogAmount:    decimal.NewFromInt(amount),
	}
}

var testCatalog = []catalogmodel.FeeCatalogEntry{
	catalogEntry("10", "A", "tuition", 500),
	catalogEntry("10", "A", "library", 100),
}

func TestPendingOf(t *testing.T) {
	cases := []struct {
		amount, paid, want int64
	}{
		{500, 300, 200},
		{500, 500, 0},
		{500, 700, 0}, // overpay di-clamp ke 0, uang tidak "hilang" jadi negatif
		{0, 0, 0},
	}
	for _, tc := range cases {
		got := PendingOf(decimal.NewFromInt(tc.amount), decimal.NewFromInt(tc.paid))
		assert.True(t, got.Equal(decimal.NewFromInt(tc.want)),
			"pending(%d,%d) = %s, want %d", tc.amount, tc.paid, got, tc.want)
		assert.False(t, got.IsNegative())
	}
}

// Skenario spec: siswa kelas 10/A, katalog {tuition:500, library:100}.
// Pilih {tuition} ⇒ amount=500. Bayar 300 ⇒ pending=200.
// Settle pending 200 ⇒ pending=0, amount tetap 500.
func TestCollectionSession_Scenario(t *testing.T) {
	sess := CollectionSession{
		StudentClass:     "10",
		StudentSection:   "A",
		SelectedFeeTypes: model.NewFeeTypeSet("tuition"),
		PaidAmount:       decimal.NewFromInt(300),
	}

	changed := sess.Recompute(testCatalog)
	require.True(t, changed)
	assert.True(t, sess.Amount.Equal(decimal.NewFromInt(500)))
	assert.True(t, sess.PendingAmount.Equal(decimal.NewFromInt(200)))

	entry := model.LedgerEntry{
		LedgerEntryStudentID:     uuid.New(),
		LedgerEntryClassName:     "10",
		LedgerEntrySection:       "A",
		LedgerEntryFeeTypes:      sess.SelectedFeeTypes,
		LedgerEntryAmount:        sess.Amount,
		LedgerEntryPaidAmount:    sess.PaidAmount,
		LedgerEntryPendingAmount: sess.PendingAmount,
	}

	res, err := ApplyEdit(&entry, EditRequest{
		Intent:         EditIntentSettlePending,
		AdditionalPaid: decimal.NewFromInt(200),
	}, testCatalog)
	require.NoError(t, err)

	assert.True(t, res.PreviousPaidAmount.Equal(decimal.NewFromInt(300)))
	assert.True(t, entry.LedgerEntryAmount.Equal(decimal.NewFromInt(500)), "amount dikunci di settle_pending")
	assert.True(t, entry.LedgerEntryPaidAmount.Equal(decimal.NewFromInt(500)))
	assert.True(t, entry.LedgerEntryPendingAmount.IsZero())
}

func TestCollectionSession_Idempotent(t *testing.T) {
	sess := CollectionSession{
		StudentClass:     "10",
		StudentSection:   "A",
		SelectedFeeTypes: model.NewFeeTypeSet("tuition", "library"),
		PaidAmount:       decimal.NewFromInt(100),
	}

	require.True(t, sess.Recompute(testCatalog))

	// Input tidak berubah ⇒ tidak ada write yang dilaporkan, state tetap.
	before := sess
	assert.False(t, sess.Recompute(testCatalog))
	assert.False(t, sess.ApplyCatalog(testCatalog))
	assert.False(t, sess.DerivePending())
	assert.True(t, sess.Amount.Equal(before.Amount))
	assert.True(t, sess.PendingAmount.Equal(before.PendingAmount))
}

func TestCollectionSession_GantiSiswaResetAmount(t *testing.T) {
	// Guard terhadap total basi dari siswa/pilihan sebelumnya.
	sess := CollectionSession{
		StudentClass:     "10",
		StudentSection:   "A",
		SelectedFeeTypes: model.NewFeeTypeSet("tuition"),
	}
	require.True(t, sess.Recompute(testCatalog))
	require.True(t, sess.Amount.Equal(decimal.NewFromInt(500)))

	// pindah ke siswa kelas lain yang tidak punya katalog
	sess.StudentClass, sess.StudentSection = "12", "Z"
	require.True(t, sess.Recompute(testCatalog))
	assert.True(t, sess.Amount.IsZero())
	assert.True(t, sess.PendingAmount.IsZero())
}

func TestApplyEdit_AddFee(t *testing.T) {
	entry := model.LedgerEntry{
		LedgerEntryClassName:  "10",
		LedgerEntrySection:    "A",
		LedgerEntryFeeTypes:   model.NewFeeTypeSet("tuition"),
		LedgerEntryAmount:     decimal.NewFromInt(500),
		LedgerEntryPaidAmount: decimal.NewFromInt(500),
	}

	// Perluas kewajiban: tuition + library ⇒ amount dihitung ulang dari katalog.
	_, err := ApplyEdit(&entry, EditRequest{
		Intent:   EditIntentAddFee,
		FeeTypes: model.NewFeeTypeSet("tuition", "library"),
	}, testCatalog)
	require.NoError(t, err)

	assert.True(t, entry.LedgerEntryAmount.Equal(decimal.NewFromInt(600)))
	assert.True(t, entry.LedgerEntryPaidAmount.Equal(decimal.NewFromInt(500)))
	assert.True(t, entry.LedgerEntryPendingAmount.Equal(decimal.NewFromInt(100)))
}

func TestApplyEdit_Errors(t *testing.T) {
	entry := model.LedgerEntry{
		LedgerEntryFeeTypes: model.NewFeeTypeSet("tuition"),
	}

	_, err := ApplyEdit(&entry, EditRequest{Intent: "upsert"}, testCatalog)
	assert.ErrorIs(t, err, ErrUnknownEditIntent)

	_, err = ApplyEdit(&entry, EditRequest{
		Intent:         EditIntentSettlePending,
		AdditionalPaid: decimal.NewFromInt(-1),
	}, testCatalog)
	assert.ErrorIs(t, err, ErrNegativePayment)

	_, err = ApplyEdit(&entry, EditRequest{Intent: EditIntentAddFee}, testCatalog)
	assert.ErrorIs(t, err, ErrEmptyFeeTypes)
}

// Skenario spec: record feeType ["A","B"] harus match row ledger yang
// tersimpan sebagai "B,A" (perbandingan himpunan, bukan posisi) dan
// mengambil paid/pending dari row itu, bukan dari field basi record edit.
func TestReconstructSession_UnorderedMatch(t *testing.T) {
	studentID := uuid.New()

	matched := model.LedgerEntry{
		LedgerEntryID:            uuid.New(),
		LedgerEntryStudentID:     studentID,
		LedgerEntryClassName:     "10",
		LedgerEntrySection:       "A",
		LedgerEntryFeeTypes:      model.ParseFeeTypes("B,A"),
		LedgerEntryAmount:        decimal.NewFromInt(600),
		LedgerEntryPaidAmount:    decimal.NewFromInt(400),
		LedgerEntryPendingAmount: decimal.NewFromInt(200),
	}

	// record yang di-edit bawa field basi
	target := model.LedgerEntry{
		LedgerEntryID:        uuid.New(),
		LedgerEntryStudentID: studentID,
		LedgerEntryClassName: "10",
		LedgerEntrySection:   "A",
		LedgerEntryFeeTypes:  model.ParseFeeTypes(`["A","B"]`),
	}

	sess := ReconstructSession(target, []model.LedgerEntry{matched})
	assert.True(t, sess.Amount.Equal(decimal.NewFromInt(600)))
	assert.True(t, sess.PaidAmount.Equal(decimal.NewFromInt(400)))
	assert.True(t, sess.PendingAmount.Equal(decimal.NewFromInt(200)))
}

func TestReconstructSession_FallbackKeTarget(t *testing.T) {
	target := model.LedgerEntry{
		LedgerEntryID:         uuid.New(),
		LedgerEntryStudentID:  uuid.New(),
		LedgerEntryFeeTypes:   model.NewFeeTypeSet("sports"),
		LedgerEntryAmount:     decimal.NewFromInt(250),
		LedgerEntryPaidAmount: decimal.NewFromInt(100),
	}

	sess := ReconstructSession(target, nil)
	assert.True(t, sess.Amount.Equal(decimal.NewFromInt(250)))
	assert.True(t, sess.PaidAmount.Equal(decimal.NewFromInt(100)))
	assert.True(t, sess.PendingAmount.Equal(decimal.NewFromInt(150)))
}
