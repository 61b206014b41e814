// internal/benchmark/recommendations.go
package benchmark

import "fmt"

// recommendations applies the three fixed rules against a computed result.
// Each rule owns its priority number permanently; skipped rules leave gaps
// rather than triggering a renumber, so downstream consumers can key on the
// priority to identify the rule.
func (c *Calculator) recommendations(result *CalculationResult) []Recommendation {
	recs := make([]Recommendation, 0, 3)

	if rec, ok := c.recommendTCI(result); ok {
		recs = append(recs, rec)
	}
	if rec, ok := c.recommendPaymentTerms(result); ok {
		recs = append(recs, rec)
	}
	if rec, ok := c.recommendRiskProcess(result); ok {
		recs = append(recs, rec)
	}

	return recs
}

// Rule 1: fires for companies with loss experience and no TCI.
func (c *Calculator) recommendTCI(result *CalculationResult) (Recommendation, bool) {
	if result.TCI.UserUsesTCI || !result.BadDebt.UserHasBadDebt {
		return Recommendation{}, false
	}

	actions := c.dataset.PostBadDebtActions
	why := []string{
		"You have experienced bad debt losses and currently carry the full risk on your own balance sheet.",
		fmt.Sprintf("%.0f%% of peers in your group already use trade credit insurance.",
			result.TCI.PeerAdoptionRate*100),
	}
	if result.PotentialSavings.FiveYearSavings > 0 {
		why = append(why, fmt.Sprintf(
			"Insured companies reduce bad debt losses by an average of %.0f%%, worth an estimated $%s over five years at your loss level.",
			result.PotentialSavings.ReductionRate*100,
			formatDollars(result.PotentialSavings.FiveYearSavings)))
	}

	return Recommendation{
		Priority: 1,
		Title:    "Evaluate Trade Credit Insurance",
		Why:      why,
		PotentialImpact: fmt.Sprintf(
			"Protects receivables against customer insolvency and reduces realized bad debt by an average of %.0f%%.",
			result.PotentialSavings.ReductionRate*100),
		NextSteps: []string{
			"Request quotes from two or three trade credit insurers covering your current receivables book.",
			"Compare whole-turnover cover against named-buyer cover for your largest accounts.",
			"Review how insured receivables affect your borrowing base with your lender.",
		},
		Considerations: []string{
			"Premiums typically run 0.1% to 0.4% of insured sales, depending on sector and buyer quality.",
			"Insurers set per-buyer credit limits that may be lower than your current internal limits.",
		},
		PeerPractices: map[string]string{
			"changedApproachRate": fmt.Sprintf("%.0f%%", actions.ChangedApproachRate*100),
			"adoptedTCIRate":      fmt.Sprintf("%.0f%%", actions.AdoptedTCIRate*100),
		},
		Source: actions.TCIImpact.Source,
	}, true
}

// Rule 2: fires when standard terms run more than 15 days past the peer
// average.
func (c *Calculator) recommendPaymentTerms(result *CalculationResult) (Recommendation, bool) {
	terms := result.PaymentTerms
	if terms.Position != PositionExtended {
		return Recommendation{}, false
	}

	return Recommendation{
		Priority: 2,
		Title:    "Optimize Payment Terms",
		Why: []string{
			fmt.Sprintf("Your standard terms are %d days longer than the Net %d typical for your peer group.",
				terms.Difference, terms.AvgTermDays),
			"Extended terms increase working capital tied up in receivables and lengthen your exposure window on every invoice.",
		},
		PotentialImpact: fmt.Sprintf(
			"Aligning with the Net %d peer norm would shorten your cash conversion cycle by roughly %d days.",
			terms.AvgTermDays, terms.Difference),
		NextSteps: []string{
			"Segment customers by payment behavior and tighten terms for slow payers first.",
			"Introduce early payment discounts before shortening headline terms across the board.",
			"Set standard terms for new customers at the peer norm and grandfather existing contracts at renewal.",
		},
		Considerations: []string{
			"Terms are competitive in some sectors; benchmark against direct competitors before changing key accounts.",
		},
		Source: terms.Source,
	}, true
}

// Rule 3: fires for companies with loss experience whose process maturity
// has not reached mature.
func (c *Calculator) recommendRiskProcess(result *CalculationResult) (Recommendation, bool) {
	if result.RiskManagement.Position == PositionMature || !result.BadDebt.UserHasBadDebt {
		return Recommendation{}, false
	}

	why := []string{
		"You have taken losses without fully rebuilding the credit process that allowed them.",
	}
	if result.RiskManagement.Position == PositionAdvancing {
		why = append(why,
			"You have made changes since your losses, but none of the higher-impact controls peers adopt after write-offs.")
	} else {
		why = append(why,
			"Your credit approach is largely unchanged since your losses, leaving the same exposure open.")
	}

	return Recommendation{
		Priority: 3,
		Title:    "Strengthen Credit Risk Processes",
		Why:      why,
		PotentialImpact: "Catches deteriorating customers before shipment instead of at write-off.",
		NextSteps: []string{
			"Add a formal credit approval step with limits for every new account above a threshold.",
			"Pull third-party credit reports on your largest customers at least annually.",
			"Automate receivables aging alerts so overdue balances trigger action at 15 days, not 90.",
		},
		Source: riskMaturitySource,
	}, true
}
