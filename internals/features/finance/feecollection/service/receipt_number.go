// file: internals/features/finance/feecollection/service/receipt_number.go
package service

import (
	"fmt"
	"math/rand"
	"regexp"
	"time"
)

// Format: REC-YYMMDD-HHMMSS-RRR. Dibuat saat form create DIBUKA (bukan saat
// submit) supaya nomor yang tampil = nomor yang tersimpan; server tinggal
// validasi bentuknya.
var receiptNumberRe = regexp.MustCompile(`^REC-\d{6}-\d{6}-\d{3}$`)

// GenerateReceiptNumber membentuk nomor receipt dari waktu + suffix acak
// 3 digit. Dua nomor di detik yang sama tetap berbeda dengan probabilitas
// tinggi; unique index di DB yang menjadi penjaga terakhir.
func GenerateReceiptNumber(now time.Time) string {
	return fmt.Sprintf("REC-%s-%03d", now.Format("060102-150405"), rand.Intn(1000))
}

func ValidReceiptNumber(s string) bool {
	return receiptNumberRe.MatchString(s)
}
