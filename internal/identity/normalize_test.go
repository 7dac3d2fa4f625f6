package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain digits", "5550100", "5550100"},
		{"separators stripped", "555-0100", "5550100"},
		{"spaces and parens stripped", "(0712) 345 678", "0712345678"},
		{"country code folded", "+255712345678", "0712345678"},
		{"country code without plus", "255712345678", "0712345678"},
		{"short number keeps 255 prefix", "25512", "25512"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.in))
		})
	}
}

func TestNormalizePhoneIdempotent(t *testing.T) {
	inputs := []string{"555-0100", "+255 712 345 678", "0712345678", ""}
	for _, in := range inputs {
		once := NormalizePhone(in)
		assert.Equal(t, once, NormalizePhone(once), "input %q", in)
	}
}

func TestNormalizePhoneEquivalentFormats(t *testing.T) {
	assert.Equal(t, NormalizePhone("555-0100"), NormalizePhone("5550100"))
	assert.Equal(t, NormalizePhone("+255712345678"), NormalizePhone("0712 345 678"))
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "jane doe", NormalizeName("  Jane   DOE "))
	assert.Equal(t, "jane doe", NormalizeName("jane doe"))
	assert.Equal(t, "", NormalizeName("   "))
}

func TestNormalizePlate(t *testing.T) {
	assert.Equal(t, "ABC123", NormalizePlate("abc123"))
	assert.Equal(t, "T123ABC", NormalizePlate("  t 123 abc "))
	assert.Equal(t, "", NormalizePlate(""))
}

func TestNormalizeTaxNumber(t *testing.T) {
	assert.Equal(t, "123456789", NormalizeTaxNumber(" 123-456-789 "))
	assert.Equal(t, "TIN12345", NormalizeTaxNumber("tin/123.45"))
}

func TestTemporaryCustomerName(t *testing.T) {
	assert.Equal(t, "Plate ABC123", TemporaryCustomerName("abc 123"))
}
