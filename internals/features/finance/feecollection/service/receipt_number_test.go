package service

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateReceiptNumber_Format(t *testing.T) {
	re := regexp.MustCompile(`^REC-\d{6}-\d{6}-\d{3}$`)
	now := time.Date(2024, 3, 15, 9, 45, 7, 0, time.UTC)

	for i := 0; i < 50; i++ {
		n := GenerateReceiptNumber(now)
		assert.Regexp(t, re, n)
		assert.True(t, ValidReceiptNumber(n))
	}

	// bagian waktu deterministik
	n := GenerateReceiptNumber(now)
	assert.Equal(t, "REC-240315-094507-", n[:len(n)-3])
}

func TestGenerateReceiptNumber_DetikSamaTetapBeda(t *testing.T) {
	now := time.Now()
	seen := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		seen[GenerateReceiptNumber(now)] = struct{}{}
	}
	// suffix acak 3 digit: 200 draw hampir pasti > 1 nilai unik
	assert.Greater(t, len(seen), 1)
}

func TestValidReceiptNumber(t *testing.T) {
	assert.True(t, ValidReceiptNumber("REC-240315-094507-042"))
	assert.False(t, ValidReceiptNumber("REC-240315-094507-42"))
	assert.False(t, ValidReceiptNumber("RCP-240315-094507-042"))
	assert.False(t, ValidReceiptNumber("REC-240315-094507-0424"))
	assert.False(t, ValidReceiptNumber(""))
}
