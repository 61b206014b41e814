// internal/benchmark/fallbacks.go
package benchmark

// Fallbacks collects every neutral default the calculator reaches for when a
// survey answer or dataset field is missing. Keeping them in one injectable
// struct makes each default overridable and testable in isolation instead of
// being scattered as literals through the metric functions.
type Fallbacks struct {
	// TCIAdoptionRate is used when a peer record carries no adoption rate.
	TCIAdoptionRate float64
	// BadDebtExperienceRate is used when a peer record carries no rate.
	BadDebtExperienceRate float64
	// TCIReductionRate is used when the dataset carries no cited reduction
	// rate for trade credit insurance.
	TCIReductionRate float64
	// AvgPaymentDays is used when a peer record's textual average ("Net 45")
	// cannot be parsed.
	AvgPaymentDays int
	// UnknownTermDays is the neutral day value for an unmapped or missing
	// user term bucket.
	UnknownTermDays int
}

// DefaultFallbacks returns the documented defaults.
func DefaultFallbacks() Fallbacks {
	return Fallbacks{
		TCIAdoptionRate:       0.45,
		BadDebtExperienceRate: 0.60,
		TCIReductionRate:      0.73,
		AvgPaymentDays:        45,
		UnknownTermDays:       45,
	}
}
