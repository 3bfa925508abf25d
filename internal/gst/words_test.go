package gst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"designdesk/internal/gst"
)

func TestAmountInWords(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "Zero Rupees Only"},
		{1, "One Rupee Only"},
		{2, "Two Rupees Only"},
		{0.01, "One Paisa Only"},
		{0.75, "Seventy Five Paise Only"},
		{1.50, "One Rupee and Fifty Paise Only"},
		{19, "Nineteen Rupees Only"},
		{20, "Twenty Rupees Only"},
		{21, "Twenty One Rupees Only"},
		{100, "One Hundred Rupees Only"},
		{118, "One Hundred Eighteen Rupees Only"},
		{1000, "One Thousand Rupees Only"},
		{1412, "One Thousand Four Hundred Twelve Rupees Only"},
		{100000, "One Lakh Rupees Only"},
		{2550000, "Twenty Five Lakh Fifty Thousand Rupees Only"},
		{10000000, "One Crore Rupees Only"},
		{12345678.90, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight Rupees and Ninety Paise Only"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, gst.AmountInWords(tc.amount), "amount %v", tc.amount)
	}
}

func TestAmountInWords_LargeAmounts(t *testing.T) {
	// Crore groups recurse with the Indian convention, so a lakh of crores
	// reads "One Lakh Crore".
	assert.Equal(t, "One Lakh Crore Rupees Only", gst.AmountInWords(1e12))
	assert.Equal(t, "One Hundred Crore Rupees Only", gst.AmountInWords(1e9))
}

func TestAmountInWords_NegativeUsesAbsoluteValue(t *testing.T) {
	assert.Equal(t, "Ten Rupees Only", gst.AmountInWords(-10))
}
