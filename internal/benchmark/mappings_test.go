// internal/benchmark/mappings_test.go
package benchmark

import (
	"testing"

	"benchmark-workers/internal/models"

	"github.com/stretchr/testify/assert"
)

// ==========================
// Industry Mapping Tests
// ==========================

func TestIndustryKey_AllSurveyValuesMapped(t *testing.T) {
	// Every declared survey industry must resolve without hitting the
	// unknown arm.
	for _, raw := range models.PrimaryIndustryValues {
		key, known := industryKey(raw)
		assert.True(t, known, "survey industry %q took the unknown fallback", raw)
		assert.NotEmpty(t, key)
	}
}

func TestIndustryKey_Buckets(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"manufacturing", "manufacturing"},
		{"automotive", "manufacturing"},
		{"commercial-construction", "construction"},
		{"wholesale-distribution", "wholesale-trade"},
		{"e-commerce", "retail-trade"},
		{"freight-shipping", "transportation-warehousing"},
		{"staffing-recruitment", "professional-services"},
		{"software-saas", "information-technology"},
		{"biotechnology", "healthcare"},
		{"renewable-energy", "energy-utilities"},
		{"insurance", "financial-services"},
		{"forestry-fishing", "agriculture"},
		{"hospitality", DefaultIndustryKey},
		{"other", DefaultIndustryKey},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			key, known := industryKey(tt.raw)
			assert.True(t, known)
			assert.Equal(t, tt.expected, key)
		})
	}
}

func TestIndustryKey_UnknownFallsBackToGeneral(t *testing.T) {
	key, known := industryKey("underwater-basket-weaving")
	assert.False(t, known)
	assert.Equal(t, DefaultIndustryKey, key)

	key, known = industryKey("")
	assert.False(t, known)
	assert.Equal(t, DefaultIndustryKey, key)
}

// ==========================
// Revenue Mapping Tests
// ==========================

func TestRevenueKey(t *testing.T) {
	tests := []struct {
		raw           string
		expected      string
		expectedKnown bool
	}{
		{"under-1m", "under-5m", true},
		{"1m-5m", "under-5m", true},
		{"5m-25m", "5m-25m", true},
		{"25m-100m", "25m-100m", true},
		{"100m-500m", "over-100m", true},
		{"over-500m", "over-100m", true},
		{"prefer-not-to-say", DefaultRevenueKey, true},
		{"", DefaultRevenueKey, false},
		{"1b-plus", DefaultRevenueKey, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			key, known := revenueKey(tt.raw)
			assert.Equal(t, tt.expected, key)
			assert.Equal(t, tt.expectedKnown, known)
		})
	}
}

func TestRevenueKey_AllSurveyValuesMapped(t *testing.T) {
	for _, raw := range models.AnnualRevenueValues {
		_, known := revenueKey(raw)
		assert.True(t, known, "survey revenue %q took the unknown fallback", raw)
	}
}

// ==========================
// Term and Amount Mapping Tests
// ==========================

func TestTermDays(t *testing.T) {
	tests := []struct {
		raw           string
		expected      int
		expectedKnown bool
	}{
		{models.TermCashOnDelivery, 0, true},
		{models.TermNet15OrShorter, 15, true},
		{models.TermNet30, 30, true},
		{models.TermNet60, 60, true},
		{models.TermNet90, 90, true},
		{models.TermMoreThanNet90, 120, true},
		{models.TermVariesByCustomer, 45, false},
		{"", 45, false},
		{"net-365", 45, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			days, known := termDays(tt.raw, 45)
			assert.Equal(t, tt.expected, days)
			assert.Equal(t, tt.expectedKnown, known)
		})
	}
}

func TestAmountMidpoint(t *testing.T) {
	tests := []struct {
		raw           string
		expected      float64
		expectedKnown bool
	}{
		{models.AmountLessThan50k, 25_000, true},
		{models.Amount50kTo250k, 150_000, true},
		{models.Amount250kTo1m, 625_000, true},
		{models.Amount1mTo5m, 3_000_000, true},
		{models.AmountOver5m, 7_500_000, true},
		{"", 0, false},
		{"over-100m", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			midpoint, known := amountMidpoint(tt.raw)
			assert.Equal(t, tt.expected, midpoint)
			assert.Equal(t, tt.expectedKnown, known)
		})
	}
}

// ==========================
// Label Tests
// ==========================

func TestLabels_UnknownKeysFallBack(t *testing.T) {
	assert.Equal(t, "Manufacturing", industryLabel("manufacturing"))
	assert.Equal(t, "All Industries", industryLabel("no-such-bucket"))
	assert.Equal(t, "all company sizes", revenueLabel("no-such-band"))
}
