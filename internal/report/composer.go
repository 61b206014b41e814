// internal/report/composer.go
package report

import (
	"fmt"
	"time"

	"benchmark-workers/internal/benchmark"
	"benchmark-workers/internal/models"
)

// Composer routes calculation output into the fixed section sequence. It
// re-derives nothing: every number in the document was computed upstream,
// the composer only selects and arranges.
type Composer struct {
	dataset *benchmark.Dataset
}

func NewComposer(dataset *benchmark.Dataset) *Composer {
	return &Composer{dataset: dataset}
}

// statusFor maps a metric position onto the tri-state visual flag. The map
// is fixed: positions it does not name render as warning, including
// above_average.
func statusFor(position string) string {
	switch position {
	case benchmark.PositionMature, benchmark.PositionBetterThanPeers, benchmark.PositionShorter:
		return StatusGood
	case benchmark.PositionWorseThanPeers, benchmark.PositionExtended:
		return StatusAlert
	default:
		return StatusWarning
	}
}

// Compose builds the document tree. Section order is fixed; the TCI
// Landscape section is the only structural branch and appears iff the user
// already uses trade credit insurance.
func (c *Composer) Compose(resp *models.SurveyResponse, calc *benchmark.CalculationResult, generatedAt time.Time) *Document {
	peerLabel := calc.PeerGroup.SampleSizeLabel
	peer := c.dataset.Peer(calc.PeerGroup.IndustryKey, calc.PeerGroup.RevenueKey)

	sections := []Section{
		CoverSection{
			CompanyName: resp.CompanyName,
			ContactName: resp.ContactName,
			PeerLabel:   peerLabel,
			Date:        generatedAt,
		},
		ExecutiveSummarySection{
			CompanyName: resp.CompanyName,
			Findings:    headlineFindings(calc),
		},
		IndustrySnapshotSection{
			PeerLabel:       peerLabel,
			TCIAdoptionRate: calc.TCI.PeerAdoptionRate,
			MedianDSO:       peer.MedianDSO,
			AvgPaymentTerms: peer.AvgPaymentTerms,
			ExperienceRate:  calc.BadDebt.PeerExperienceRate,
			Source:          peer.Source,
		},
		PaymentTermsSection{Terms: calc.PaymentTerms},
		BadDebtSection{
			BadDebt: calc.BadDebt,
			Savings: calc.PotentialSavings,
		},
	}

	if calc.TCI.UserUsesTCI {
		actions := c.dataset.PostBadDebtActions
		sections = append(sections, TCILandscapeSection{
			TCI:            calc.TCI,
			ReductionRate:  actions.TCIImpact.BadDebtReductionRate,
			AdoptedTCIRate: actions.AdoptedTCIRate,
			Note:           actions.TCIImpact.Note,
		})
	}

	sections = append(sections,
		RecommendationsSection{
			Risk:            calc.RiskManagement,
			Recommendations: calc.Recommendations,
		},
		AppendixSection{
			Citations:      appendixCitations,
			DatasetVersion: c.dataset.Metadata.Version,
			DatasetUpdated: c.dataset.Metadata.LastUpdated,
		},
	)

	return &Document{
		Title:       fmt.Sprintf("Credit Risk Benchmark Report: %s", resp.CompanyName),
		CompanyName: resp.CompanyName,
		ContactName: resp.ContactName,
		PeerGroup:   calc.PeerGroup,
		GeneratedAt: generatedAt,
		Sections:    sections,
	}
}

// headlineFindings builds the four executive-summary rows in fixed order.
func headlineFindings(calc *benchmark.CalculationResult) []HeadlineFinding {
	tciValue := "Not insured"
	if calc.TCI.UserUsesTCI {
		tciValue = "Insured"
	}

	return []HeadlineFinding{
		{
			Label:   "Trade Credit Insurance",
			Value:   tciValue,
			Status:  statusFor(calc.TCI.Position),
			Insight: calc.TCI.Insight,
		},
		{
			Label:   "Payment Terms",
			Value:   fmt.Sprintf("Net %d vs Net %d peer average", calc.PaymentTerms.UserTermDays, calc.PaymentTerms.AvgTermDays),
			Status:  statusFor(calc.PaymentTerms.Position),
			Insight: calc.PaymentTerms.Insight,
		},
		{
			Label:   "Bad Debt Experience",
			Value:   fmt.Sprintf("%.0f%% of peers report losses", calc.BadDebt.PeerExperienceRate*100),
			Status:  statusFor(calc.BadDebt.Position),
			Insight: calc.BadDebt.Insight,
		},
		{
			Label:   "Risk Management Maturity",
			Value:   fmt.Sprintf("Score %d of 4", calc.RiskManagement.Score),
			Status:  statusFor(calc.RiskManagement.Position),
			Insight: calc.RiskManagement.Insight,
		},
	}
}
