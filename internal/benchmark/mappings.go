// internal/benchmark/mappings.go
package benchmark

import "benchmark-workers/internal/models"

// The survey exposes long flat enum lists; the dataset is keyed by a small
// set of buckets. These switches are the only place raw survey values are
// folded into dataset keys. Every arm is exhaustive over the declared value
// sets with a single unknown/other fallback, so a newly added survey option
// shows up here as a fallback logged by the calculator rather than a crash.

// industryKey maps a raw survey industry to a dataset industry bucket.
// The second return is false when the value was unrecognized.
func industryKey(raw string) (string, bool) {
	switch raw {
	case "manufacturing", "industrial-manufacturing", "food-beverage-production",
		"textiles-apparel", "chemicals", "plastics-rubber", "machinery-equipment",
		"electronics-manufacturing", "automotive", "aerospace-defense", "metals-mining":
		return "manufacturing", true
	case "construction", "commercial-construction", "residential-construction",
		"civil-engineering", "building-materials":
		return "construction", true
	case "wholesale-trade", "wholesale-distribution", "import-export":
		return "wholesale-trade", true
	case "retail", "e-commerce", "consumer-goods":
		return "retail-trade", true
	case "transportation", "logistics", "freight-shipping", "warehousing":
		return "transportation-warehousing", true
	case "professional-services", "consulting", "legal-services", "accounting-services",
		"marketing-advertising", "staffing-recruitment", "architecture-engineering":
		return "professional-services", true
	case "technology", "software-saas", "it-services", "telecommunications", "media-publishing":
		return "information-technology", true
	case "healthcare", "pharmaceuticals", "medical-devices", "biotechnology":
		return "healthcare", true
	case "energy", "oil-gas", "renewable-energy", "utilities":
		return "energy-utilities", true
	case "financial-services", "insurance", "real-estate":
		return "financial-services", true
	case "agriculture", "forestry-fishing":
		return "agriculture", true
	case "hospitality", "education", "government", "nonprofit", "other":
		return DefaultIndustryKey, true
	default:
		return DefaultIndustryKey, false
	}
}

// revenueKey maps a raw survey revenue band to a dataset revenue bucket.
func revenueKey(raw string) (string, bool) {
	switch raw {
	case "under-1m", "1m-5m":
		return "under-5m", true
	case "5m-25m":
		return "5m-25m", true
	case "25m-100m":
		return "25m-100m", true
	case "100m-500m", "over-500m":
		return "over-100m", true
	case "prefer-not-to-say":
		return DefaultRevenueKey, true
	default:
		return DefaultRevenueKey, false
	}
}

// termDays maps a user's selected term bucket to a numeric day value.
func termDays(raw string, fallback int) (int, bool) {
	switch raw {
	case models.TermCashOnDelivery:
		return 0, true
	case models.TermNet15OrShorter:
		return 15, true
	case models.TermNet30:
		return 30, true
	case models.TermNet60:
		return 60, true
	case models.TermNet90:
		return 90, true
	case models.TermMoreThanNet90:
		return 120, true
	default:
		// Includes varies-by-customer and anything unmapped.
		return fallback, false
	}
}

// amountMidpoint maps a bad-debt-amount bucket to its dollar midpoint.
// An unselected or unmapped bucket yields 0, never an error.
func amountMidpoint(raw string) (float64, bool) {
	switch raw {
	case models.AmountLessThan50k:
		return 25_000, true
	case models.Amount50kTo250k:
		return 150_000, true
	case models.Amount250kTo1m:
		return 625_000, true
	case models.Amount1mTo5m:
		return 3_000_000, true
	case models.AmountOver5m:
		return 7_500_000, true
	default:
		return 0, false
	}
}

// Display labels for the dataset buckets, used for the peer-group sample
// label and report copy.
var industryLabels = map[string]string{
	"manufacturing":              "Manufacturing",
	"construction":               "Construction",
	"wholesale-trade":            "Wholesale Trade",
	"retail-trade":               "Retail Trade",
	"transportation-warehousing": "Transportation & Warehousing",
	"professional-services":      "Professional Services",
	"information-technology":     "Information Technology",
	"healthcare":                 "Healthcare & Life Sciences",
	"energy-utilities":           "Energy & Utilities",
	"financial-services":         "Financial Services & Real Estate",
	"agriculture":                "Agriculture",
	DefaultIndustryKey:           "All Industries",
}

var revenueLabels = map[string]string{
	"under-5m":        "under $5M revenue",
	"5m-25m":          "$5M-$25M revenue",
	"25m-100m":        "$25M-$100M revenue",
	"over-100m":       "over $100M revenue",
	DefaultRevenueKey: "all company sizes",
}

func industryLabel(key string) string {
	if label, ok := industryLabels[key]; ok {
		return label
	}
	return industryLabels[DefaultIndustryKey]
}

func revenueLabel(key string) string {
	if label, ok := revenueLabels[key]; ok {
		return label
	}
	return revenueLabels[DefaultRevenueKey]
}
