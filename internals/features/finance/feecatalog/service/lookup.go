// file: internals/features/finance/feecatalog/service/lookup.go
package service

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"schoolku_backend/internals/features/finance/feecatalog/model"
)

/*
Lookup murni di atas katalog yang sudah di-fetch: tidak nyentuh DB,
jadi aman dipanggil tiap perubahan pilihan di form collection.

Matching class/section dibuat toleran (trim + case-insensitive) karena
data lama sempat tercampur antara "10"/"10 " dan "a"/"A".
*/

func classKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// MatchesClassSection membandingkan (class, section) milik entry katalog
// dengan (class, section) milik siswa secara toleran.
func MatchesClassSection(entryClass, entrySection, studentClass, studentSection string) bool {
	return classKey(entryClass) == classKey(studentClass) &&
		classKey(entrySection) == classKey(studentSection)
}

// AvailableFeeTypes mengembalikan fee_type distinct (sorted) untuk
// (class, section) siswa. Tidak ada yang cocok ⇒ slice kosong, bukan error.
func AvailableFeeTypes(studentClass, studentSection string, catalog []model.FeeCatalogEntry) []string {
	seen := make(map[string]string) // key → bentuk asli pertama
	for _, e := range catalog {
		if !MatchesClassSection(e.FeeCatalogClassName, e.FeeCatalogSection, studentClass, studentSection) {
			continue
		}
		ft := strings.TrimSpace(e.FeeCatalogFeeType)
		if ft == "" {
			continue
		}
		if _, ok := seen[classKey(ft)]; !ok {
			seen[classKey(ft)] = ft
		}
	}
	out := make([]string, 0, len(seen))
	for _, v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// AmountForSelection menjumlahkan amount semua entry katalog yang cocok
// dengan (class, section) siswa DAN fee_type-nya terpilih.
// Pilihan kosong ⇒ 0, bukan total penuh.
func AmountForSelection(studentClass, studentSection string, selected []string, catalog []model.FeeCatalogEntry) decimal.Decimal {
	total := decimal.Zero
	if len(selected) == 0 {
		return total
	}
	want := make(map[string]struct{}, len(selected))
	for _, ft := range selected {
		if k := classKey(ft); k != "" {
			want[k] = struct{}{}
		}
	}
	for _, e := range catalog {
		if !MatchesClassSection(e.FeeCatalogClassName, e.FeeCatalogSection, studentClass, studentSection) {
			continue
		}
		if _, ok := want[classKey(e.FeeCatalogFeeType)]; ok {
			total = total.Add(e.FeeCatalogAmount)
		}
	}
	return total
}
