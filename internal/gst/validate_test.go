package gst_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"designdesk/internal/gst"
)

func newValidator() *gst.Validator {
	return gst.NewValidator(gst.NewStateRegistry())
}

func TestValidator_ValidateGSTIN_Valid(t *testing.T) {
	v := newValidator()

	res := v.ValidateGSTIN("29ABCDE1234F1Z5")
	assert.True(t, res.Valid)
	assert.Equal(t, "29ABCDE1234F1Z5", res.Normalized)
	assert.NotNil(t, res.Parts)
	assert.Equal(t, "29", res.Parts.StateCode)
	assert.Equal(t, "ABCDE1234F", res.Parts.PAN)
	assert.Equal(t, "1", res.Parts.EntityNo)
	assert.Equal(t, "5", res.Parts.CheckChar)
}

func TestValidator_ValidateGSTIN_NormalizesCaseAndWhitespace(t *testing.T) {
	v := newValidator()

	res := v.ValidateGSTIN("  29abcde1234f1z5  ")
	assert.True(t, res.Valid)
	assert.Equal(t, "29ABCDE1234F1Z5", res.Normalized)
}

func TestValidator_ValidateGSTIN_Invalid(t *testing.T) {
	v := newValidator()

	cases := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"too short", "29ABCDE1234F1Z"},
		{"too long", "29ABCDE1234F1Z55"},
		{"unknown state code", "99ABCDE1234F1Z5"},
		{"deleted state code 25", "25ABCDE1234F1Z5"},
		{"digits where PAN letters expected", "2912CDE1234F1Z5"},
		{"missing Z at position 13", "29ABCDE1234F1X5"},
		{"zero entity number", "29ABCDE1234F0Z5"},
		{"special character", "29ABCDE1234F1Z$"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := v.ValidateGSTIN(tc.in)
			assert.False(t, res.Valid)
			assert.NotEmpty(t, res.Reason)
			assert.Nil(t, res.Parts)
		})
	}
}

func TestValidator_ValidatePAN(t *testing.T) {
	v := newValidator()

	assert.True(t, v.ValidatePAN("ABCDE1234F").Valid)
	assert.Equal(t, "ABCDE1234F", v.ValidatePAN("abcde1234f").Normalized)

	assert.False(t, v.ValidatePAN("ABCDE1234").Valid)
	assert.False(t, v.ValidatePAN("1BCDE1234F").Valid)
	assert.False(t, v.ValidatePAN("ABCDE12345").Valid)
	assert.False(t, v.ValidatePAN("").Valid)
}

func TestValidator_ValidateHSN(t *testing.T) {
	v := newValidator()

	assert.True(t, v.ValidateHSN("9403").Valid)
	assert.True(t, v.ValidateHSN("940320").Valid)
	assert.True(t, v.ValidateHSN("94032090").Valid)

	// Only lengths 4, 6 and 8 are acceptable.
	assert.False(t, v.ValidateHSN("100").Valid)
	assert.False(t, v.ValidateHSN("94032").Valid)
	assert.False(t, v.ValidateHSN("1006000").Valid)
	assert.False(t, v.ValidateHSN("940320901").Valid)
	assert.False(t, v.ValidateHSN("94O3").Valid)
	assert.False(t, v.ValidateHSN("").Valid)
}

func TestValidator_ValidateSAC(t *testing.T) {
	v := newValidator()

	assert.True(t, v.ValidateSAC("998391").Valid)
	assert.False(t, v.ValidateSAC("9983").Valid)
	assert.False(t, v.ValidateSAC("99839112").Valid)
	assert.False(t, v.ValidateSAC("99839A").Valid)
}

func TestValidator_ValidateItemCode(t *testing.T) {
	v := newValidator()

	// The same 6-digit string is valid under both grammars; the flag decides.
	assert.True(t, v.ValidateItemCode("998391", true).Valid)
	assert.True(t, v.ValidateItemCode("998391", false).Valid)

	// 4-digit codes are goods only.
	assert.True(t, v.ValidateItemCode("9403", false).Valid)
	assert.False(t, v.ValidateItemCode("9403", true).Valid)
}

func TestValidator_ClassifyItemCode(t *testing.T) {
	v := newValidator()

	kind, res := v.ClassifyItemCode("998391")
	assert.Equal(t, "sac", kind)
	assert.True(t, res.Valid)

	kind, res = v.ClassifyItemCode("9403")
	assert.Equal(t, "hsn", kind)
	assert.True(t, res.Valid)

	kind, res = v.ClassifyItemCode("94A3")
	assert.Equal(t, "", kind)
	assert.False(t, res.Valid)
}

func TestValidator_ValidateStateCode(t *testing.T) {
	v := newValidator()

	assert.True(t, v.ValidateStateCode("29").Valid)
	assert.True(t, v.ValidateStateCode("07").Valid)
	assert.True(t, v.ValidateStateCode("97").Valid)

	assert.False(t, v.ValidateStateCode("7").Valid)
	assert.False(t, v.ValidateStateCode("029").Valid)
	assert.False(t, v.ValidateStateCode("25").Valid)
	assert.False(t, v.ValidateStateCode("99").Valid)
	assert.False(t, v.ValidateStateCode("AB").Valid)
}

func TestValidator_ValidateInvoiceNumber(t *testing.T) {
	v := newValidator()

	assert.True(t, v.ValidateInvoiceNumber("INV-2025/001").Valid)
	assert.True(t, v.ValidateInvoiceNumber("1").Valid)
	assert.True(t, v.ValidateInvoiceNumber(strings.Repeat("A", 16)).Valid)

	assert.False(t, v.ValidateInvoiceNumber("").Valid)
	assert.False(t, v.ValidateInvoiceNumber("   ").Valid)
	assert.False(t, v.ValidateInvoiceNumber(strings.Repeat("A", 17)).Valid)
	assert.False(t, v.ValidateInvoiceNumber("INV 001").Valid)
	assert.False(t, v.ValidateInvoiceNumber("INV#001").Valid)
}

func TestValidator_ValidateIRN(t *testing.T) {
	v := newValidator()

	irn := strings.Repeat("a1", 32)
	res := v.ValidateIRN(irn)
	assert.True(t, res.Valid)
	assert.Equal(t, irn, res.Normalized)

	res = v.ValidateIRN(strings.ToUpper(irn))
	assert.True(t, res.Valid)
	assert.Equal(t, irn, res.Normalized)

	assert.False(t, v.ValidateIRN(strings.Repeat("a", 63)).Valid)
	assert.False(t, v.ValidateIRN(strings.Repeat("a", 65)).Valid)
	assert.False(t, v.ValidateIRN(strings.Repeat("-", 64)).Valid)
}

func TestValidator_ValidateTaxRate(t *testing.T) {
	v := newValidator()

	assert.True(t, v.ValidateTaxRate(18).Valid)
	assert.True(t, v.ValidateTaxRate(0.25).Valid)
	assert.False(t, v.ValidateTaxRate(19).Valid)
	assert.False(t, v.ValidateTaxRate(-18).Valid)
}

func TestStateRegistry(t *testing.T) {
	r := gst.NewStateRegistry()

	assert.True(t, r.Exists("29"))
	assert.Equal(t, "Karnataka", r.Name("29"))
	assert.Equal(t, "Ladakh", r.Name("38"))
	assert.False(t, r.Exists("25"))
	assert.Equal(t, "", r.Name("99"))
	assert.NotEmpty(t, r.Codes())
}
