package gst

import (
	"fmt"
	"math"
)

// allowedRates are the notified GST rate slabs. Computations with any other
// rate are rejected before their output can be trusted.
var allowedRates = []float64{0, 0.1, 0.25, 1, 1.5, 3, 5, 7.5, 12, 18, 28}

// AllowedRate reports whether rate is a notified GST slab.
func AllowedRate(rate float64) bool {
	for _, r := range allowedRates {
		if rate == r {
			return true
		}
	}
	return false
}

// RateError reports a tax rate outside the notified slabs.
type RateError struct {
	Rate float64
}

func (e *RateError) Error() string {
	return fmt.Sprintf("gst: %.2f%% is not a notified GST rate", e.Rate)
}

// Round2 rounds to exactly 2 decimal places, half away from zero. Every
// intermediate amount is passed through Round2 before being reused so that
// rounding drift cannot accumulate across line items. Tax authorities
// reconcile to the paisa.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// TaxSplit is the result of splitting tax on a single amount. Exactly one of
// {CGST+SGST, IGST} is non-zero (unless the rate is zero): CGST/SGST when
// seller and buyer share a state, IGST otherwise.
type TaxSplit struct {
	TaxableValue float64 `json:"taxable_value"`
	CGST         float64 `json:"cgst"`
	SGST         float64 `json:"sgst"`
	IGST         float64 `json:"igst"`
	TotalTax     float64 `json:"total_tax"`
	Total        float64 `json:"total"`
}

// LineItemResult extends TaxSplit with the quantity arithmetic for one line.
type LineItemResult struct {
	GrossAmount  float64 `json:"gross_amount"`
	Discount     float64 `json:"discount"`
	TaxableValue float64 `json:"taxable_value"`
	TaxRate      float64 `json:"tax_rate"`
	CGST         float64 `json:"cgst"`
	SGST         float64 `json:"sgst"`
	IGST         float64 `json:"igst"`
	TotalTax     float64 `json:"total_tax"`
	Total        float64 `json:"total"`
}

// DocumentTotals aggregates already-rounded line splits. It never recomputes
// tax from a blended average rate.
type DocumentTotals struct {
	TaxableValue  float64 `json:"taxable_value"`
	TotalDiscount float64 `json:"total_discount"`
	CGST          float64 `json:"cgst"`
	SGST          float64 `json:"sgst"`
	IGST          float64 `json:"igst"`
	TotalTax      float64 `json:"total_tax"`
	SubTotal      float64 `json:"sub_total"`
	RoundOff      float64 `json:"round_off"`
	GrandTotal    float64 `json:"grand_total"`
}

// Calculator computes GST splits. It holds the state registry for the
// intra-state vs inter-state decision and has no other state.
type Calculator struct {
	states *StateRegistry
}

// NewCalculator creates a Calculator backed by the given state registry.
func NewCalculator(states *StateRegistry) *Calculator {
	return &Calculator{states: states}
}

// Split computes the tax split on amount after applying discountPct.
// Same state: the nominal tax is split into CGST and SGST. CGST is the
// rounded half and SGST the remainder, so the halves may differ by 0.01 but
// CGST+SGST always equals the nominal tax exactly, matching regulatory
// rounding and is expected, not a bug. Different states: the full nominal
// tax is IGST.
func (c *Calculator) Split(amount, rate float64, sellerState, buyerState string, discountPct float64) (TaxSplit, error) {
	if !AllowedRate(rate) {
		return TaxSplit{}, &RateError{Rate: rate}
	}
	discount := Round2(amount * discountPct / 100)
	base := Round2(amount - discount)
	return c.splitBase(base, rate, sellerState, buyerState), nil
}

func (c *Calculator) splitBase(base, rate float64, sellerState, buyerState string) TaxSplit {
	tax := Round2(base * rate / 100)
	split := TaxSplit{
		TaxableValue: base,
		TotalTax:     tax,
		Total:        Round2(base + tax),
	}
	if sellerState == buyerState {
		split.CGST, split.SGST = halvePaise(tax)
	} else {
		split.IGST = tax
	}
	return split
}

// halvePaise splits a tax amount into CGST and SGST halves in integer paise.
// Halving floats puts the odd paisa on whichever side the binary
// representation happens to fall; integer arithmetic pins it to CGST.
func halvePaise(tax float64) (cgst, sgst float64) {
	paise := int64(math.Round(tax * 100))
	cgstPaise := (paise + 1) / 2
	return float64(cgstPaise) / 100, float64(paise-cgstPaise) / 100
}

// LineItem computes the full tax result for one invoice line.
func (c *Calculator) LineItem(quantity, unitPrice, rate float64, sellerState, buyerState string, discountPct float64) (LineItemResult, error) {
	if !AllowedRate(rate) {
		return LineItemResult{}, &RateError{Rate: rate}
	}
	gross := Round2(quantity * unitPrice)
	discount := Round2(gross * discountPct / 100)
	split := c.splitBase(Round2(gross-discount), rate, sellerState, buyerState)
	return LineItemResult{
		GrossAmount:  gross,
		Discount:     discount,
		TaxableValue: split.TaxableValue,
		TaxRate:      rate,
		CGST:         split.CGST,
		SGST:         split.SGST,
		IGST:         split.IGST,
		TotalTax:     split.TotalTax,
		Total:        split.Total,
	}, nil
}

// AggregateDocument sums already-rounded line results and derives the
// round-off adjustment to the nearest rupee.
func (c *Calculator) AggregateDocument(lines []LineItemResult) DocumentTotals {
	var t DocumentTotals
	for i := range lines {
		l := &lines[i]
		t.TaxableValue = Round2(t.TaxableValue + l.TaxableValue)
		t.TotalDiscount = Round2(t.TotalDiscount + l.Discount)
		t.CGST = Round2(t.CGST + l.CGST)
		t.SGST = Round2(t.SGST + l.SGST)
		t.IGST = Round2(t.IGST + l.IGST)
	}
	t.TotalTax = Round2(t.CGST + t.SGST + t.IGST)
	t.SubTotal = Round2(t.TaxableValue + t.TotalTax)
	t.RoundOff = Round2(math.Round(t.SubTotal) - t.SubTotal)
	t.GrandTotal = Round2(t.SubTotal + t.RoundOff)
	return t
}

// ReverseSplit extracts the taxable base and tax from a tax-inclusive amount.
func (c *Calculator) ReverseSplit(inclusive, rate float64, sellerState, buyerState string) (TaxSplit, error) {
	if !AllowedRate(rate) {
		return TaxSplit{}, &RateError{Rate: rate}
	}
	base := Round2(inclusive / (1 + rate/100))
	tax := Round2(inclusive - base)
	split := TaxSplit{
		TaxableValue: base,
		TotalTax:     tax,
		Total:        Round2(inclusive),
	}
	if sellerState == buyerState {
		split.CGST, split.SGST = halvePaise(tax)
	} else {
		split.IGST = tax
	}
	return split, nil
}
