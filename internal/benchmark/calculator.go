// internal/benchmark/calculator.go
package benchmark

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"benchmark-workers/internal/common/logger"
	"benchmark-workers/internal/common/metrics"
	"benchmark-workers/internal/models"
)

const riskMaturitySource = "Self-reported credit management practices survey"

// Calculator derives a CalculationResult from a survey response and the
// static dataset. It performs no I/O and never mutates its inputs; for a
// fixed response and dataset the output is identical on every call.
type Calculator struct {
	dataset   *Dataset
	fallbacks Fallbacks
	logger    logger.Logger
}

func NewCalculator(dataset *Dataset, fallbacks Fallbacks, log logger.Logger) *Calculator {
	return &Calculator{
		dataset:   dataset,
		fallbacks: fallbacks,
		logger:    log.WithFields(map[string]interface{}{"component": "benchmark-calculator"}),
	}
}

// Calculate runs all five metrics and recommendation generation. It does not
// fail for any structurally valid response: missing answers resolve through
// fallbacks, out-of-range ratings are clamped.
func (c *Calculator) Calculate(resp *models.SurveyResponse) *CalculationResult {
	peerGroup := c.ResolvePeerGroup(resp.PrimaryIndustry, resp.AnnualRevenue)
	peer := c.dataset.Peer(peerGroup.IndustryKey, peerGroup.RevenueKey)

	result := &CalculationResult{
		PeerGroup:        peerGroup,
		TCI:              c.tciPosition(resp, peer),
		PaymentTerms:     c.paymentTermsPosition(resp, peerGroup, peer),
		BadDebt:          c.badDebtPosition(resp, peer),
		RiskManagement:   c.riskPosition(resp),
		PotentialSavings: c.savingsEstimate(resp),
		DatasetVersion:   c.dataset.Metadata.Version,
	}
	result.Recommendations = c.recommendations(result)

	return result
}

// ResolvePeerGroup folds the raw industry/revenue values into dataset bucket
// keys. It never fails: unknown or empty values land in the general /
// all_sizes bucket and are surfaced as a data-quality signal instead.
func (c *Calculator) ResolvePeerGroup(industry, revenue string) PeerGroup {
	indKey, indKnown := industryKey(industry)
	if !indKnown && industry != "" {
		c.recordFallback("industry", industry)
	}

	revKey, revKnown := revenueKey(revenue)
	if !revKnown && revenue != "" {
		c.recordFallback("revenue", revenue)
	}

	return PeerGroup{
		IndustryKey:     indKey,
		RevenueKey:      revKey,
		SampleSizeLabel: fmt.Sprintf("%s, %s", industryLabel(indKey), revenueLabel(revKey)),
	}
}

// UserUsesTCI reads the TCI flag from either survey shape: the current
// multi-select risk mechanisms or the legacy single-select usage question.
func UserUsesTCI(resp *models.SurveyResponse) bool {
	for _, m := range resp.RiskMechanisms {
		if m == models.MechanismTradeCreditInsurance {
			return true
		}
	}
	return resp.CreditInsuranceUsage == models.UsageCurrentlyUse
}

// UserHasBadDebt is true only for the two affirmative experience answers.
func UserHasBadDebt(resp *models.SurveyResponse) bool {
	return resp.BadDebtExperience == models.BadDebtYesMultiple ||
		resp.BadDebtExperience == models.BadDebtYesOnceOrTwice
}

func (c *Calculator) tciPosition(resp *models.SurveyResponse, peer PeerRecord) TCIPosition {
	usesTCI := UserUsesTCI(resp)

	rate := peer.TCIAdoptionRate
	if rate <= 0 {
		rate = c.fallbacks.TCIAdoptionRate
	}

	// Presence/absence, not a statistical comparison: the question is
	// whether the user already does what adopting peers do.
	position := PositionBelowAverage
	insight := fmt.Sprintf(
		"%.0f%% of peers in your group already insure their receivables; you currently carry that risk yourself.",
		rate*100)
	if usesTCI {
		position = PositionAboveAverage
		insight = fmt.Sprintf(
			"You already use trade credit insurance, ahead of the %.0f%% adoption rate among your peers.",
			rate*100)
	}

	return TCIPosition{
		UserUsesTCI:      usesTCI,
		PeerAdoptionRate: rate,
		Position:         position,
		Insight:          insight,
		Source:           peer.Source,
	}
}

var netTermsPattern = regexp.MustCompile(`Net\s*(\d+)`)

// parseAvgTermDays extracts N from a textual "Net N" average.
func (c *Calculator) parseAvgTermDays(avg string) int {
	m := netTermsPattern.FindStringSubmatch(avg)
	if m == nil {
		return c.fallbacks.AvgPaymentDays
	}
	days, err := strconv.Atoi(m[1])
	if err != nil {
		return c.fallbacks.AvgPaymentDays
	}
	return days
}

func (c *Calculator) paymentTermsPosition(resp *models.SurveyResponse, peerGroup PeerGroup, peer PeerRecord) PaymentTermsPosition {
	userDays, known := termDays(resp.PaymentTerms, c.fallbacks.UnknownTermDays)
	if !known && resp.PaymentTerms != "" && resp.PaymentTerms != models.TermVariesByCustomer {
		c.recordFallback("paymentTerms", resp.PaymentTerms)
	}

	avgDays := c.parseAvgTermDays(peer.AvgPaymentTerms)
	difference := userDays - avgDays
	percentDiff := int(math.Round(float64(difference) / float64(avgDays) * 100))

	position := PositionOnPar
	switch {
	case difference > 15:
		position = PositionExtended
	case difference < -15:
		position = PositionShorter
	}

	var insight string
	switch position {
	case PositionExtended:
		insight = fmt.Sprintf(
			"Your standard terms run %d days beyond the Net %d typical for your peer group (%d%% longer), extending your working capital exposure.",
			difference, avgDays, percentDiff)
	case PositionShorter:
		insight = fmt.Sprintf(
			"Your standard terms are %d days shorter than the Net %d peer average, which limits your receivables exposure.",
			-difference, avgDays)
	default:
		insight = fmt.Sprintf("Your standard terms are in line with the Net %d average for your peer group.", avgDays)
	}

	return PaymentTermsPosition{
		UserTermDays: userDays,
		AvgTermDays:  avgDays,
		Difference:   difference,
		PercentDiff:  percentDiff,
		Position:     position,
		Distribution: c.dataset.TermsDistributionFor(peerGroup.IndustryKey),
		Insight:      insight,
		Source:       peer.Source,
	}
}

func (c *Calculator) badDebtPosition(resp *models.SurveyResponse, peer PeerRecord) BadDebtPosition {
	hasBadDebt := UserHasBadDebt(resp)
	impact := clamp(resp.BadDebtImpact, 0, 5)

	rate := peer.BadDebtExperienceRate
	if rate <= 0 {
		rate = c.fallbacks.BadDebtExperienceRate
	}

	// Default typical; an explicit no-losses answer upgrades it; a
	// self-reported impact of 4+ downgrades it and wins over both. Impact
	// and experience come from separate questions with no cross-validation,
	// so the impact override deliberately does not consult hasBadDebt.
	position := PositionTypical
	if resp.BadDebtExperience == models.BadDebtNoNever {
		position = PositionBetterThanPeers
	}
	if impact >= 4 {
		position = PositionWorseThanPeers
	}

	var insight string
	switch position {
	case PositionBetterThanPeers:
		insight = fmt.Sprintf(
			"You report no bad debt losses while %.0f%% of your peers have written off receivables in the last five years.",
			rate*100)
	case PositionWorseThanPeers:
		insight = fmt.Sprintf(
			"Your losses have had a significant business impact; peers in your group typically lose %s.",
			peer.AvgBadDebtRange)
	default:
		insight = fmt.Sprintf(
			"Your loss experience is typical: %.0f%% of peers report bad debt, averaging %s.",
			rate*100, peer.AvgBadDebtRange)
	}

	return BadDebtPosition{
		UserHasBadDebt:     hasBadDebt,
		ImpactRating:       impact,
		PeerExperienceRate: rate,
		PeerAvgLossRange:   peer.AvgBadDebtRange,
		PeerAvgLossToSales: peer.AvgBadDebtToSales,
		Position:           position,
		Insight:            insight,
		Source:             peer.Source,
	}
}

// impactfulChanges are the change types that earn the maturity bonus. The
// broad stricter-credit-approval answer is deliberately not in this set;
// only the formal approval process option counts.
var impactfulChanges = map[string]bool{
	models.ChangeFormalApprovalProcess: true,
	models.ChangeTradeCreditInsurance:  true,
	models.ChangeARSoftware:            true,
}

func (c *Calculator) riskPosition(resp *models.SurveyResponse) RiskPosition {
	score := 1
	switch resp.ChangedApproach {
	case models.ChangedSignificant:
		score = 3
	case models.ChangedMinor:
		score = 2
	}

	for _, change := range resp.ChangesMade {
		if impactfulChanges[change] {
			score++
			break
		}
	}

	position := PositionDeveloping
	switch {
	case score >= 4:
		position = PositionMature
	case score >= 3:
		position = PositionAdvancing
	}

	var insight string
	switch position {
	case PositionMature:
		insight = "You responded to credit losses with substantial, high-impact process changes."
	case PositionAdvancing:
		insight = "You have tightened your credit process after losses, with room to add higher-impact controls."
	default:
		insight = "Your credit risk process has changed little after losses, which leaves repeat exposure open."
	}

	return RiskPosition{
		Score:    score,
		Position: position,
		Insight:  insight,
		Source:   riskMaturitySource,
	}
}

func (c *Calculator) savingsEstimate(resp *models.SurveyResponse) SavingsEstimate {
	midpoint, known := amountMidpoint(resp.BadDebtAmount)
	if !known && resp.BadDebtAmount != "" {
		c.recordFallback("badDebtAmount", resp.BadDebtAmount)
	}

	rate := c.dataset.PostBadDebtActions.TCIImpact.BadDebtReductionRate
	if rate <= 0 {
		rate = c.fallbacks.TCIReductionRate
	}

	fiveYear := midpoint * rate
	annual := fiveYear / 5

	insight := "No reported losses to project savings from."
	if fiveYear > 0 {
		insight = fmt.Sprintf(
			"Based on your reported losses, trade credit insurance could have avoided an estimated $%s over five years.",
			formatDollars(fiveYear))
	}

	return SavingsEstimate{
		LossMidpoint:    midpoint,
		ReductionRate:   rate,
		FiveYearSavings: fiveYear,
		AnnualSavings:   annual,
		Insight:         insight,
		Source:          c.dataset.PostBadDebtActions.TCIImpact.Source,
	}
}

func (c *Calculator) recordFallback(field, value string) {
	metrics.BenchmarkFallbackLookups.WithLabelValues(field).Inc()
	c.logger.Warn("unmapped survey value, using fallback bucket", map[string]interface{}{
		"field": field,
		"value": value,
	})
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// formatDollars renders 1234567.89 as "1,234,568".
func formatDollars(amount float64) string {
	s := strconv.FormatFloat(math.Round(amount), 'f', 0, 64)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	for i, ch := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, ch)
	}
	return string(out)
}
