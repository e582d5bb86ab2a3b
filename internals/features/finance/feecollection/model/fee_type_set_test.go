package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFeeTypes_TigaEncoding(t *testing.T) {
	// Tiga bentuk wire yang sama-sama harus menghasilkan set kanonik.
	cases := []struct {
		name string
		raw  string
	}{
		{"json array", `["tuition","library"]`},
		{"csv string", "library,tuition"},
		{"csv dengan spasi", " library , tuition "},
		{"quoted csv", `"library,tuition"`},
	}
	want := FeeTypeSet{"library", "tuition"}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseFeeTypes(tc.raw)
			assert.Equal(t, want, got)
		})
	}

	t.Run("bare scalar", func(t *testing.T) {
		assert.Equal(t, FeeTypeSet{"tuition"}, ParseFeeTypes("tuition"))
		assert.Equal(t, FeeTypeSet{"tuition"}, ParseFeeTypes(`"tuition"`))
	})

	t.Run("kosong", func(t *testing.T) {
		assert.Empty(t, ParseFeeTypes(""))
		assert.Empty(t, ParseFeeTypes("  "))
	})
}

func TestFeeTypeSet_RoundTrip(t *testing.T) {
	// Tulis lalu baca ulang harus menghasilkan set ekuivalen apapun
	// encoding asalnya.
	for _, raw := range []string{`["A","B"]`, "B,A", "A,B,A"} {
		parsed := ParseFeeTypes(raw)

		val, err := parsed.Value()
		require.NoError(t, err)

		var rescanned FeeTypeSet
		require.NoError(t, rescanned.Scan(val))
		assert.True(t, parsed.Equal(rescanned), "raw=%q", raw)
	}
}

func TestFeeTypeSet_Equal_TakBerurut(t *testing.T) {
	a := ParseFeeTypes(`["A","B"]`)
	b := ParseFeeTypes("B,A")
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))

	assert.False(t, a.Equal(ParseFeeTypes("A")))
	assert.False(t, a.Equal(ParseFeeTypes("A,C")))
}

func TestFeeTypeSet_JSON(t *testing.T) {
	var s FeeTypeSet
	require.NoError(t, json.Unmarshal([]byte(`"library,tuition"`), &s))
	assert.Equal(t, FeeTypeSet{"library", "tuition"}, s)

	out, err := json.Marshal(FeeTypeSet{"tuition", "library"})
	require.NoError(t, err)
	assert.JSONEq(t, `["library","tuition"]`, string(out))
}

func TestFeeTypeSet_Dedupe(t *testing.T) {
	s := NewFeeTypeSet("Tuition", "tuition", " tuition ")
	assert.Len(t, s, 1)
}

func TestFeeTypeSet_Display(t *testing.T) {
	assert.Equal(t, "library, tuition", NewFeeTypeSet("tuition", "library").Display())
}
