package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolku_backend/internals/features/finance/feecatalog/model"
)

func entry(class, section, feeType string, amount int64) model.FeeCatalogEntry {
	return model.FeeCatalogEntry{
		FeeCatalogClassName: class,
		FeeCatalogSection:   section,
		FeeCatalogFeeType:   feeType,
		FeeCatalogAmount:    decimal.NewFromInt(amount),
	}
}

func TestAvailableFeeTypes(t *testing.T) {
	catalog := []model.FeeCatalogEntry{
		entry("10", "A", "tuition", 500),
		entry("10", "A", "library", 100),
		entry("10", "A", "tuition", 500), // duplikat fee_type → distinct
		entry("10", "B", "sports", 250),
		entry("9", "A", "tuition", 450),
	}

	got := AvailableFeeTypes("10", "A", catalog)
	assert.Equal(t, []string{"library", "tuition"}, got)

	t.Run("matching toleran trim + case", func(t *testing.T) {
		got := AvailableFeeTypes(" 10 ", "a", catalog)
		assert.Equal(t, []string{"library", "tuition"}, got)
	})

	t.Run("tidak ada yang cocok ⇒ kosong, bukan error", func(t *testing.T) {
		assert.Empty(t, AvailableFeeTypes("12", "Z", catalog))
	})
}

func TestAmountForSelection(t *testing.T) {
	catalog := []model.FeeCatalogEntry{
		entry("10", "A", "tuition", 500),
		entry("10", "A", "library", 100),
		entry("10", "B", "tuition", 999),
	}

	t.Run("pilihan kosong ⇒ 0", func(t *testing.T) {
		got := AmountForSelection("10", "A", nil, catalog)
		assert.True(t, got.IsZero())
	})

	t.Run("satu fee type", func(t *testing.T) {
		got := AmountForSelection("10", "A", []string{"tuition"}, catalog)
		require.True(t, got.Equal(decimal.NewFromInt(500)), "got %s", got)
	})

	t.Run("beberapa fee type dijumlah", func(t *testing.T) {
		got := AmountForSelection("10", "A", []string{"tuition", "library"}, catalog)
		require.True(t, got.Equal(decimal.NewFromInt(600)), "got %s", got)
	})

	t.Run("section lain tidak ikut kehitung", func(t *testing.T) {
		got := AmountForSelection("10", "A", []string{"tuition"}, catalog)
		assert.False(t, got.Equal(decimal.NewFromInt(1499)))
	})

	t.Run("fee type tidak dikenal ⇒ 0", func(t *testing.T) {
		got := AmountForSelection("10", "A", []string{"hostel"}, catalog)
		assert.True(t, got.IsZero())
	})
}

func TestMatchesClassSection(t *testing.T) {
	assert.True(t, MatchesClassSection("10", "A", "10", "A"))
	assert.True(t, MatchesClassSection(" 10", "a ", "10 ", " A"))
	assert.False(t, MatchesClassSection("10", "A", "10", "B"))
	assert.False(t, MatchesClassSection("10", "A", "11", "A"))
}
