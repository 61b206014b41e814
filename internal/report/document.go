// internal/report/document.go
package report

import (
	"time"

	"benchmark-workers/internal/benchmark"
)

// Status is the tri-state visual flag the executive summary attaches to each
// headline metric.
const (
	StatusGood    = "good"
	StatusWarning = "warning"
	StatusAlert   = "alert"
)

// Section is one node of the document tree. The composer emits sections in a
// fixed order; the HTML stage switches on Kind to pick a template. Sections
// carry data only, no markup.
type Section interface {
	Kind() string
}

// Document is the ordered, fully resolved report tree handed to the render
// stage.
type Document struct {
	Title       string
	CompanyName string
	ContactName string
	PeerGroup   benchmark.PeerGroup
	GeneratedAt time.Time
	Sections    []Section
}

type CoverSection struct {
	CompanyName string
	ContactName string
	PeerLabel   string
	Date        time.Time
}

func (CoverSection) Kind() string { return "cover" }

// HeadlineFinding is one of the four executive-summary rows.
type HeadlineFinding struct {
	Label   string
	Value   string
	Status  string
	Insight string
}

type ExecutiveSummarySection struct {
	CompanyName string
	Findings    []HeadlineFinding
}

func (ExecutiveSummarySection) Kind() string { return "executive-summary" }

type IndustrySnapshotSection struct {
	PeerLabel       string
	TCIAdoptionRate float64
	MedianDSO       int
	AvgPaymentTerms string
	ExperienceRate  float64
	Source          string
}

func (IndustrySnapshotSection) Kind() string { return "industry-snapshot" }

type PaymentTermsSection struct {
	Terms benchmark.PaymentTermsPosition
}

func (PaymentTermsSection) Kind() string { return "payment-terms" }

type BadDebtSection struct {
	BadDebt benchmark.BadDebtPosition
	Savings benchmark.SavingsEstimate
}

func (BadDebtSection) Kind() string { return "bad-debt" }

// TCILandscapeSection appears only for companies already using trade credit
// insurance.
type TCILandscapeSection struct {
	TCI            benchmark.TCIPosition
	ReductionRate  float64
	AdoptedTCIRate float64
	Note           string
}

func (TCILandscapeSection) Kind() string { return "tci-landscape" }

type RecommendationsSection struct {
	Risk            benchmark.RiskPosition
	Recommendations []benchmark.Recommendation
}

func (RecommendationsSection) Kind() string { return "recommendations" }

// Citation is one appendix source entry, reproduced verbatim.
type Citation struct {
	Title        string
	Organization string
	Date         string
	URL          string
}

type AppendixSection struct {
	Citations      []Citation
	DatasetVersion string
	DatasetUpdated string
}

func (AppendixSection) Kind() string { return "appendix" }

// appendixCitations is the fixed source list printed in every report. The
// entries are not derived from the dataset and must not be reworded.
var appendixCitations = []Citation{
	{
		Title:        "Payment Practices Barometer",
		Organization: "Atradius",
		Date:         "2024",
		URL:          "https://group.atradius.com/publications/payment-practices-barometer",
	},
	{
		Title:        "Global Trade Credit Insurance Market Report",
		Organization: "Allianz Trade",
		Date:         "2024",
		URL:          "https://www.allianz-trade.com/en_global/news-insights/economic-insights.html",
	},
	{
		Title:        "Small Business Credit Survey",
		Organization: "Federal Reserve Banks",
		Date:         "2024",
		URL:          "https://www.fedsmallbusiness.org/survey",
	},
	{
		Title:        "National Summary of Domestic Trade Receivables",
		Organization: "Credit Research Foundation",
		Date:         "2024",
		URL:          "https://www.crfonline.org/surveys",
	},
	{
		Title:        "Corporate Payment Survey",
		Organization: "Coface",
		Date:         "2024",
		URL:          "https://www.coface.com/news-economy-and-insights",
	},
}
