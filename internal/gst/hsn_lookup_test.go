package gst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"designdesk/internal/gst"
	"designdesk/internal/port"
)

func testLookup() *gst.HSNLookup {
	return gst.NewHSNLookup([]port.HSNEntry{
		{Code: "9403", GSTRate: 18},
		{Code: "5702", GSTRate: 5, ConditionDesc: "(without ITC)"},
		{Code: "5702", GSTRate: 12},
		{Code: "998391", GSTRate: 18},
	})
}

func TestHSNLookup_Rates(t *testing.T) {
	l := testLookup()

	rates := l.Rates("9403")
	assert.Len(t, rates, 1)
	assert.Equal(t, 18.0, rates[0].Rate)

	assert.Len(t, l.Rates("5702"), 2)
	assert.Nil(t, l.Rates("9999"))
	assert.Nil(t, l.Rates(""))
}

func TestHSNLookup_PrefixFallback(t *testing.T) {
	l := testLookup()

	// An 8-digit code falls back to its 4-digit chapter heading.
	rates := l.Rates("94032090")
	assert.Len(t, rates, 1)
	assert.Equal(t, 18.0, rates[0].Rate)

	assert.True(t, l.Exists("94032090"))
	assert.False(t, l.Exists("99992090"))
}

func TestHSNLookup_RateMatches(t *testing.T) {
	l := testLookup()

	ok, _ := l.RateMatches("5702", 5)
	assert.True(t, ok)
	ok, _ = l.RateMatches("5702", 12)
	assert.True(t, ok)

	ok, rates := l.RateMatches("5702", 18)
	assert.False(t, ok)
	assert.Len(t, rates, 2)

	ok, rates = l.RateMatches("0000", 18)
	assert.False(t, ok)
	assert.Nil(t, rates)
}

func TestHSNLookup_Empty(t *testing.T) {
	l := gst.NewHSNLookup(nil)
	assert.False(t, l.Exists("9403"))
	assert.Nil(t, l.Rates("9403"))
}
