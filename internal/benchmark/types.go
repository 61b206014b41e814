// internal/benchmark/types.go
package benchmark

// Position classifications. Each metric owns a small closed set; the report
// composer maps them onto visual statuses.
const (
	PositionAboveAverage = "above_average"
	PositionBelowAverage = "below_average"

	PositionExtended = "extended"
	PositionShorter  = "shorter"
	PositionOnPar    = "on_par"

	PositionTypical         = "typical"
	PositionBetterThanPeers = "better_than_peers"
	PositionWorseThanPeers  = "worse_than_peers"

	PositionMature     = "mature"
	PositionAdvancing  = "advancing"
	PositionDeveloping = "developing"
)

// PeerGroup is the resolved industry x revenue bucket every comparison runs
// against. Computed once per report and passed by value downstream.
type PeerGroup struct {
	IndustryKey     string `json:"industryKey"`
	RevenueKey      string `json:"revenueKey"`
	SampleSizeLabel string `json:"sampleSizeLabel"`
}

// TCIPosition compares the user's trade-credit-insurance usage against peer
// adoption. The classification is pure presence/absence: a TCI user is
// above average because they already do what the comparison is about.
type TCIPosition struct {
	UserUsesTCI      bool    `json:"userUsesTCI"`
	PeerAdoptionRate float64 `json:"peerAdoptionRate"`
	Position         string  `json:"position"`
	Insight          string  `json:"insight"`
	Source           string  `json:"source"`
}

// PaymentTermsPosition compares the user's standard terms to the peer
// average, in days.
type PaymentTermsPosition struct {
	UserTermDays int               `json:"userTermDays"`
	AvgTermDays  int               `json:"avgTermDays"`
	Difference   int               `json:"difference"`
	PercentDiff  int               `json:"percentDiff"`
	Position     string            `json:"position"`
	Distribution TermsDistribution `json:"distribution"`
	Insight      string            `json:"insight"`
	Source       string            `json:"source"`
}

// BadDebtPosition compares loss experience against the peer rate.
type BadDebtPosition struct {
	UserHasBadDebt     bool    `json:"userHasBadDebt"`
	ImpactRating       int     `json:"impactRating"`
	PeerExperienceRate float64 `json:"peerExperienceRate"`
	PeerAvgLossRange   string  `json:"peerAvgLossRange"`
	PeerAvgLossToSales float64 `json:"peerAvgLossToSales"`
	Position           string  `json:"position"`
	Insight            string  `json:"insight"`
	Source             string  `json:"source"`
}

// RiskPosition is the 1-4 maturity score for post-loss process change.
// It is a pure function of the survey answers and never consults the dataset.
type RiskPosition struct {
	Score    int    `json:"score"`
	Position string `json:"position"`
	Insight  string `json:"insight"`
	Source   string `json:"source"`
}

// SavingsEstimate is the potential effect of TCI on the user's reported
// losses.
type SavingsEstimate struct {
	LossMidpoint    float64 `json:"lossMidpoint"`
	ReductionRate   float64 `json:"reductionRate"`
	FiveYearSavings float64 `json:"potentialSavingsFiveYears"`
	AnnualSavings   float64 `json:"potentialSavingsAnnual"`
	Insight         string  `json:"insight"`
	Source          string  `json:"source"`
}

// Recommendation is one prioritized action. Priority numbers are fixed per
// rule (1, 2, 3) and are not re-sequenced when a rule does not fire, so a
// report can legitimately show priorities 1 and 3 with a gap.
type Recommendation struct {
	Priority        int               `json:"priority"`
	Title           string            `json:"title"`
	Why             []string          `json:"why"`
	PotentialImpact string            `json:"potentialImpact,omitempty"`
	NextSteps       []string          `json:"nextSteps,omitempty"`
	Considerations  []string          `json:"considerations,omitempty"`
	PeerPractices   map[string]string `json:"peerPractices,omitempty"`
	Source          string            `json:"source"`
}

// CalculationResult aggregates the five independent metrics plus the
// recommendations derived from them. Each metric is computable from the
// survey response and peer record alone; only recommendation generation
// reads across metrics.
type CalculationResult struct {
	PeerGroup        PeerGroup            `json:"peerGroup"`
	TCI              TCIPosition          `json:"tci"`
	PaymentTerms     PaymentTermsPosition `json:"paymentTerms"`
	BadDebt          BadDebtPosition      `json:"badDebt"`
	RiskManagement   RiskPosition         `json:"riskManagement"`
	PotentialSavings SavingsEstimate      `json:"potentialSavings"`
	Recommendations  []Recommendation     `json:"recommendations"`
	DatasetVersion   string               `json:"datasetVersion"`
}
