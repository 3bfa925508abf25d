package gst_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"designdesk/internal/gst"
)

func newCalculator() *gst.Calculator {
	return gst.NewCalculator(gst.NewStateRegistry())
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.55, gst.Round2(1.554))
	assert.Equal(t, 1.56, gst.Round2(1.556))
	assert.Equal(t, 0.13, gst.Round2(0.125))
	assert.Equal(t, -0.13, gst.Round2(-0.125))
	assert.Equal(t, 0.0, gst.Round2(0))
	assert.Equal(t, 100.0, gst.Round2(100.0000001))
}

func TestCalculator_Split_IntraState(t *testing.T) {
	calc := newCalculator()

	split, err := calc.Split(1000, 18, "29", "29", 0)
	assert.NoError(t, err)
	assert.Equal(t, 1000.0, split.TaxableValue)
	assert.Equal(t, 90.0, split.CGST)
	assert.Equal(t, 90.0, split.SGST)
	assert.Equal(t, 0.0, split.IGST)
	assert.Equal(t, 180.0, split.TotalTax)
	assert.Equal(t, 1180.0, split.Total)
}

func TestCalculator_Split_InterState(t *testing.T) {
	calc := newCalculator()

	split, err := calc.Split(1000, 18, "29", "27", 0)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, split.CGST)
	assert.Equal(t, 0.0, split.SGST)
	assert.Equal(t, 180.0, split.IGST)
	assert.Equal(t, 1180.0, split.Total)
}

func TestCalculator_Split_OddPaisaGoesToCGST(t *testing.T) {
	calc := newCalculator()

	// 333 * 5% = 16.65, an odd paisa count. The halves must differ by
	// exactly 0.01 and still sum to the nominal tax.
	split, err := calc.Split(333, 5, "07", "07", 0)
	assert.NoError(t, err)
	assert.Equal(t, 16.65, split.TotalTax)
	assert.Equal(t, 8.33, split.CGST)
	assert.Equal(t, 8.32, split.SGST)
	assert.Equal(t, split.TotalTax, gst.Round2(split.CGST+split.SGST))
}

func TestCalculator_Split_OddPaisaTieBreakIsDeterministic(t *testing.T) {
	calc := newCalculator()

	// Half-paisa boundaries sit on inexact binary representations; the
	// split must not depend on which side of .5 the float lands. CGST
	// always carries the odd paisa.
	cases := []struct {
		amount     float64
		rate       float64
		cgst, sgst float64
	}{
		{333, 5, 8.33, 8.32},    // tax 16.65
		{110, 1.5, 0.83, 0.82},  // tax 1.65
		{333.4, 5, 8.34, 8.33},  // tax 16.67
		{2, 18, 0.18, 0.18},     // tax 0.36, even paise
		{0.33, 3, 0.01, 0.00},   // tax 0.01, single paisa
	}
	for _, tc := range cases {
		split, err := calc.Split(tc.amount, tc.rate, "29", "29", 0)
		assert.NoError(t, err)
		assert.Equal(t, tc.cgst, split.CGST, "amount=%v rate=%v", tc.amount, tc.rate)
		assert.Equal(t, tc.sgst, split.SGST, "amount=%v rate=%v", tc.amount, tc.rate)
	}
}

func TestCalculator_Split_CGSTNeverSmallerThanSGST(t *testing.T) {
	calc := newCalculator()

	for _, amt := range []float64{0.01, 0.33, 1, 3, 7, 101, 110, 333, 335, 999.99, 4498.5} {
		for _, rate := range []float64{0.1, 0.25, 1.5, 3, 5, 7.5, 12, 18, 28} {
			split, err := calc.Split(amt, rate, "29", "29", 0)
			assert.NoError(t, err)
			assert.GreaterOrEqual(t, split.CGST, split.SGST, "amount=%v rate=%v", amt, rate)
		}
	}
}

func TestCalculator_Split_HalvesAlwaysSumToTax(t *testing.T) {
	calc := newCalculator()

	amounts := []float64{0.01, 0.03, 1, 99.99, 333, 1234.56, 99999.99}
	rates := []float64{0.1, 0.25, 1.5, 5, 12, 18, 28}
	for _, amt := range amounts {
		for _, rate := range rates {
			split, err := calc.Split(amt, rate, "33", "33", 0)
			assert.NoError(t, err)
			assert.Equal(t, split.TotalTax, gst.Round2(split.CGST+split.SGST),
				"amount=%v rate=%v", amt, rate)
		}
	}
}

func TestCalculator_Split_DiscountAppliedBeforeTax(t *testing.T) {
	calc := newCalculator()

	split, err := calc.Split(1000, 18, "29", "29", 10)
	assert.NoError(t, err)
	assert.Equal(t, 900.0, split.TaxableValue)
	assert.Equal(t, 162.0, split.TotalTax)
}

func TestCalculator_Split_ZeroRate(t *testing.T) {
	calc := newCalculator()

	split, err := calc.Split(500, 0, "29", "27", 0)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, split.TotalTax)
	assert.Equal(t, 500.0, split.Total)
}

func TestCalculator_Split_DisallowedRate(t *testing.T) {
	calc := newCalculator()

	_, err := calc.Split(1000, 19, "29", "29", 0)
	assert.Error(t, err)

	var rerr *gst.RateError
	assert.True(t, errors.As(err, &rerr))
	assert.Equal(t, 19.0, rerr.Rate)
}

func TestCalculator_LineItem(t *testing.T) {
	calc := newCalculator()

	line, err := calc.LineItem(3, 1500, 18, "29", "29", 10)
	assert.NoError(t, err)
	assert.Equal(t, 4500.0, line.GrossAmount)
	assert.Equal(t, 450.0, line.Discount)
	assert.Equal(t, 4050.0, line.TaxableValue)
	assert.Equal(t, 729.0, line.TotalTax)
	assert.Equal(t, 364.50, line.CGST)
	assert.Equal(t, 364.50, line.SGST)
	assert.Equal(t, 4779.0, line.Total)
}

func TestCalculator_LineItem_DisallowedRate(t *testing.T) {
	calc := newCalculator()

	_, err := calc.LineItem(1, 100, 15, "29", "29", 0)
	var rerr *gst.RateError
	assert.True(t, errors.As(err, &rerr))
}

func TestCalculator_AggregateDocument(t *testing.T) {
	calc := newCalculator()

	l1, err := calc.LineItem(2, 450.25, 18, "29", "29", 0)
	assert.NoError(t, err)
	l2, err := calc.LineItem(1, 333, 5, "29", "29", 0)
	assert.NoError(t, err)

	totals := calc.AggregateDocument([]gst.LineItemResult{l1, l2})
	assert.Equal(t, 1233.50, totals.TaxableValue)
	assert.Equal(t, gst.Round2(l1.CGST+l2.CGST), totals.CGST)
	assert.Equal(t, gst.Round2(l1.SGST+l2.SGST), totals.SGST)
	assert.Equal(t, 0.0, totals.IGST)
	assert.Equal(t, gst.Round2(totals.CGST+totals.SGST), totals.TotalTax)
	assert.Equal(t, gst.Round2(totals.TaxableValue+totals.TotalTax), totals.SubTotal)

	// Grand total is a whole rupee and round-off bridges the gap exactly.
	assert.Equal(t, totals.GrandTotal, gst.Round2(totals.SubTotal+totals.RoundOff))
	assert.Equal(t, float64(int64(totals.GrandTotal)), totals.GrandTotal)
	assert.LessOrEqual(t, totals.RoundOff, 0.5)
	assert.GreaterOrEqual(t, totals.RoundOff, -0.5)
}

func TestCalculator_AggregateDocument_SumsRoundedLines(t *testing.T) {
	calc := newCalculator()

	// Three identical odd-paisa lines. Aggregation must sum the rounded
	// per-line taxes, never recompute tax on the summed base.
	line, err := calc.LineItem(1, 333, 5, "07", "07", 0)
	assert.NoError(t, err)

	totals := calc.AggregateDocument([]gst.LineItemResult{line, line, line})
	assert.Equal(t, 24.99, totals.CGST)
	assert.Equal(t, 24.96, totals.SGST)
	assert.Equal(t, 49.95, totals.TotalTax)
}

func TestCalculator_AggregateDocument_Empty(t *testing.T) {
	calc := newCalculator()

	totals := calc.AggregateDocument(nil)
	assert.Equal(t, 0.0, totals.TaxableValue)
	assert.Equal(t, 0.0, totals.GrandTotal)
	assert.Equal(t, 0.0, totals.RoundOff)
}

func TestCalculator_ReverseSplit(t *testing.T) {
	calc := newCalculator()

	split, err := calc.ReverseSplit(1180, 18, "29", "29")
	assert.NoError(t, err)
	assert.Equal(t, 1000.0, split.TaxableValue)
	assert.Equal(t, 180.0, split.TotalTax)
	assert.Equal(t, 90.0, split.CGST)
	assert.Equal(t, 90.0, split.SGST)
	assert.Equal(t, 1180.0, split.Total)
}

func TestCalculator_ReverseSplit_OddPaisaGoesToCGST(t *testing.T) {
	calc := newCalculator()

	// 349.65 inclusive at 5% extracts tax 16.65, an odd paisa count.
	split, err := calc.ReverseSplit(349.65, 5, "29", "29")
	assert.NoError(t, err)
	assert.Equal(t, 333.0, split.TaxableValue)
	assert.Equal(t, 16.65, split.TotalTax)
	assert.Equal(t, 8.33, split.CGST)
	assert.Equal(t, 8.32, split.SGST)
}

func TestCalculator_ReverseSplit_InterState(t *testing.T) {
	calc := newCalculator()

	split, err := calc.ReverseSplit(1120, 12, "29", "27")
	assert.NoError(t, err)
	assert.Equal(t, 1000.0, split.TaxableValue)
	assert.Equal(t, 120.0, split.IGST)
	assert.Equal(t, 0.0, split.CGST)
}

func TestCalculator_ReverseSplit_DisallowedRate(t *testing.T) {
	calc := newCalculator()

	_, err := calc.ReverseSplit(1180, 17, "29", "29")
	var rerr *gst.RateError
	assert.True(t, errors.As(err, &rerr))
}

func TestAllowedRate(t *testing.T) {
	for _, rate := range []float64{0, 0.1, 0.25, 1, 1.5, 3, 5, 7.5, 12, 18, 28} {
		assert.True(t, gst.AllowedRate(rate), "rate %v", rate)
	}
	for _, rate := range []float64{-5, 2, 10, 15, 17.5, 19, 100} {
		assert.False(t, gst.AllowedRate(rate), "rate %v", rate)
	}
}
