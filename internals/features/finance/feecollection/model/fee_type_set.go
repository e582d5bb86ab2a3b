// file: internals/features/finance/feecollection/model/fee_type_set.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

/*
FeeTypeSet = himpunan fee_type dalam satu transaksi pembayaran.

Store lama menyimpan field ini dalam tiga bentuk: JSON array
(`["tuition","library"]`), string CSV (`"library,tuition"`), atau scalar
(`"tuition"`). Normalisasi dilakukan SEKALI di boundary (Scan/UnmarshalJSON)
ke bentuk kanonik: unik + sorted. Setelah itu semua pemakai cukup
membandingkan dengan Equal tanpa parsing defensif lagi.
*/

type FeeTypeSet []string

// NewFeeTypeSet membangun set kanonik: trim, buang kosong, dedupe, sort.
func NewFeeTypeSet(vals ...string) FeeTypeSet {
	seen := make(map[string]struct{}, len(vals))
	out := make(FeeTypeSet, 0, len(vals))
	for _, v := range vals {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// ParseFeeTypes menerima ketiga encoding lama dan mengembalikan set kanonik.
func ParseFeeTypes(raw string) FeeTypeSet {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return FeeTypeSet{}
	}
	if strings.HasPrefix(raw, "[") {
		var arr []string
		if err := json.Unmarshal([]byte(raw), &arr); err == nil {
			return NewFeeTypeSet(arr...)
		}
		// array tapi bukan array-of-string → coba array bebas
		var anyArr []any
		if err := json.Unmarshal([]byte(raw), &anyArr); err == nil {
			parts := make([]string, 0, len(anyArr))
			for _, v := range anyArr {
				parts = append(parts, fmt.Sprint(v))
			}
			return NewFeeTypeSet(parts...)
		}
	}
	// string JSON ber-quote ("tuition" atau "a,b")
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal([]byte(raw), &s); err == nil {
			raw = s
		}
	}
	return NewFeeTypeSet(strings.Split(raw, ",")...)
}

func (s FeeTypeSet) IsEmpty() bool { return len(s) == 0 }

// Equal membandingkan sebagai himpunan tak berurut (case-insensitive).
func (s FeeTypeSet) Equal(o FeeTypeSet) bool {
	if len(s) != len(o) {
		return false
	}
	a, b := NewFeeTypeSet(s...), NewFeeTypeSet(o...)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !strings.EqualFold(a[i], b[i]) {
			return false
		}
	}
	return true
}

func (s FeeTypeSet) Contains(ft string) bool {
	for _, v := range s {
		if strings.EqualFold(strings.TrimSpace(ft), v) {
			return true
		}
	}
	return false
}

// Display menggabungkan untuk tampilan receipt: "Library, Tuition".
func (s FeeTypeSet) Display() string {
	return strings.Join(s, ", ")
}

/* ===============================
   JSON (API boundary)
=================================*/

func (s FeeTypeSet) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string(NewFeeTypeSet(s...)))
}

// UnmarshalJSON menerima array, string CSV, atau scalar.
func (s *FeeTypeSet) UnmarshalJSON(b []byte) error {
	*s = ParseFeeTypes(string(b))
	return nil
}

/* ===============================
   SQL (store boundary, jsonb)
=================================*/

func (s FeeTypeSet) Value() (driver.Value, error) {
	b, err := json.Marshal([]string(NewFeeTypeSet(s...)))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *FeeTypeSet) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*s = FeeTypeSet{}
		return nil
	case []byte:
		*s = ParseFeeTypes(string(v))
		return nil
	case string:
		*s = ParseFeeTypes(v)
		return nil
	default:
		return fmt.Errorf("fee_type_set: unsupported scan type %T", src)
	}
}

func (FeeTypeSet) GormDataType() string { return "jsonb" }
