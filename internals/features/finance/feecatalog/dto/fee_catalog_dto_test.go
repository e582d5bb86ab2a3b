package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Payload lama pakai nama field alternatif; dinormalisasi sekali di decode.
func TestFeeCatalogCreateRequest_AliasKeys(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"kanonik", `{"class_name":"10","section":"A","fee_type":"tuition","amount":500}`},
		{"alias class", `{"class":"10","section":"A","fee_type":"tuition","amount":500}`},
		{"alias class_", `{"class_":"10","section":"A","fee_type":"tuition","amount":500}`},
		{"alias sectionclass", `{"class_name":"10","sectionclass":"A","fee_type":"tuition","amount":500}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var in FeeCatalogCreateRequest
			require.NoError(t, json.Unmarshal([]byte(tc.body), &in))
			assert.Equal(t, "10", in.ClassName)
			assert.Equal(t, "A", in.Section)
			assert.Equal(t, "tuition", in.FeeType)
		})
	}
}

func TestFeeCatalogCreateRequest_KanonikMenang(t *testing.T) {
	body := `{"class_name":"10","class":"11","section":"A","fee_type":"tuition"}`
	var in FeeCatalogCreateRequest
	require.NoError(t, json.Unmarshal([]byte(body), &in))
	assert.Equal(t, "10", in.ClassName)
}
