package gst

import (
	"math"

	"designdesk/internal/port"
)

// HSNRateEntry holds a notified GST rate and optional condition for a code.
type HSNRateEntry struct {
	Rate          float64
	ConditionDesc string
}

// HSNLookup provides in-memory lookups against the HSN/SAC master list.
// It is immutable after construction and safe for concurrent access.
type HSNLookup struct {
	byCode map[string][]HSNRateEntry
}

// NewHSNLookup builds an HSNLookup from entries loaded from the database.
func NewHSNLookup(entries []port.HSNEntry) *HSNLookup {
	m := make(map[string][]HSNRateEntry, len(entries))
	for idx := range entries {
		e := &entries[idx]
		m[e.Code] = append(m[e.Code], HSNRateEntry{
			Rate:          e.GSTRate,
			ConditionDesc: e.ConditionDesc,
		})
	}
	return &HSNLookup{byCode: m}
}

// Exists reports whether the code (or an 8→6→4 digit prefix of it) is in the
// master list.
func (h *HSNLookup) Exists(code string) bool {
	return h.Rates(code) != nil
}

// Rates returns the notified rate entries for the code, with prefix fallback.
func (h *HSNLookup) Rates(code string) []HSNRateEntry {
	if len(h.byCode) == 0 || code == "" {
		return nil
	}
	if rates, ok := h.byCode[code]; ok {
		return rates
	}
	for _, prefixLen := range []int{6, 4} {
		if len(code) > prefixLen {
			if rates, ok := h.byCode[code[:prefixLen]]; ok {
				return rates
			}
		}
	}
	return nil
}

// RateMatches reports whether rate is among the notified rates for code,
// returning the valid entries either way.
func (h *HSNLookup) RateMatches(code string, rate float64) (bool, []HSNRateEntry) {
	rates := h.Rates(code)
	for idx := range rates {
		if math.Abs(rates[idx].Rate-rate) < 0.001 {
			return true, rates
		}
	}
	return false, rates
}
