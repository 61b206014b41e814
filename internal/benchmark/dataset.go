// internal/benchmark/dataset.go
package benchmark

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// PeerRecord is one industry x revenue-band benchmark row.
type PeerRecord struct {
	TCIAdoptionRate       float64 `json:"tciAdoptionRate"`
	AvgPaymentTerms       string  `json:"avgPaymentTerms"` // e.g. "Net 45"
	MedianDSO             int     `json:"medianDSO"`
	BadDebtExperienceRate float64 `json:"badDebtExperienceRate"`
	AvgBadDebtRange       string  `json:"avgBadDebtRange"`
	AvgBadDebtToSales     float64 `json:"avgBadDebtToSales"`
	Source                string  `json:"source"`
}

// TermsDistribution is the share of companies per payment-term bucket for an
// industry. The five buckets sum to ~1.0.
type TermsDistribution struct {
	Net15OrLess float64 `json:"net15OrLess"`
	Net30       float64 `json:"net30"`
	Net60       float64 `json:"net60"`
	Net90       float64 `json:"net90"`
	Over90      float64 `json:"over90"`
}

// TCIImpact carries the cited effect of trade credit insurance on bad debt.
type TCIImpact struct {
	BadDebtReductionRate float64 `json:"badDebtReductionRate"`
	Source               string  `json:"source"`
	Note                 string  `json:"note"`
}

// PostBadDebtActions aggregates how surveyed companies changed behavior
// after a credit loss.
type PostBadDebtActions struct {
	ChangedApproachRate  float64   `json:"changedApproachRate"`
	StricterApprovalRate float64   `json:"stricterApprovalRate"`
	AdoptedTCIRate       float64   `json:"adoptedTciRate"`
	TCIImpact            TCIImpact `json:"tciImpact"`
}

type Metadata struct {
	Version     string `json:"version"`
	LastUpdated string `json:"lastUpdated"`
}

// Dataset is the static benchmark table. It is loaded once at process start
// and treated as read-only for the process lifetime.
type Dataset struct {
	Benchmarks               map[string]map[string]PeerRecord `json:"benchmarks"`
	PaymentTermsDistribution map[string]TermsDistribution     `json:"paymentTermsDistribution"`
	PostBadDebtActions       PostBadDebtActions               `json:"postBadDebtActions"`
	Metadata                 Metadata                         `json:"metadata"`
}

// DefaultIndustryKey and DefaultRevenueKey name the documented fallback
// bucket. A dataset without this record is rejected at load time, which is
// what lets every later lookup be infallible.
const (
	DefaultIndustryKey = "general"
	DefaultRevenueKey  = "all_sizes"
)

// Load reads and validates the dataset file. Any failure here is a fatal
// configuration error for the process, not a per-job error.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}

	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}

	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}

	return &ds, nil
}

// Validate checks the dataset's required shape.
func (d *Dataset) Validate() error {
	if len(d.Benchmarks) == 0 {
		return fmt.Errorf("benchmarks table is empty")
	}

	general, ok := d.Benchmarks[DefaultIndustryKey]
	if !ok {
		return fmt.Errorf("missing required industry %q", DefaultIndustryKey)
	}
	if _, ok := general[DefaultRevenueKey]; !ok {
		return fmt.Errorf("missing required record %q.%q", DefaultIndustryKey, DefaultRevenueKey)
	}

	// Every row's average terms must parse to a positive day count; the
	// payment-terms position divides by it.
	for industry, bands := range d.Benchmarks {
		for band, rec := range bands {
			m := netTermsPattern.FindStringSubmatch(rec.AvgPaymentTerms)
			if m == nil {
				return fmt.Errorf("benchmarks.%s.%s: avgPaymentTerms %q is not a \"Net N\" value", industry, band, rec.AvgPaymentTerms)
			}
			if days, err := strconv.Atoi(m[1]); err != nil || days <= 0 {
				return fmt.Errorf("benchmarks.%s.%s: avgPaymentTerms %q must name a positive day count", industry, band, rec.AvgPaymentTerms)
			}
		}
	}

	if len(d.PaymentTermsDistribution) == 0 {
		return fmt.Errorf("paymentTermsDistribution table is empty")
	}
	if _, ok := d.PaymentTermsDistribution[DefaultIndustryKey]; !ok {
		return fmt.Errorf("paymentTermsDistribution missing %q", DefaultIndustryKey)
	}

	rate := d.PostBadDebtActions.TCIImpact.BadDebtReductionRate
	if rate < 0 || rate > 1 {
		return fmt.Errorf("tciImpact.badDebtReductionRate %v out of range [0,1]", rate)
	}

	if d.Metadata.Version == "" {
		return fmt.Errorf("metadata.version is required")
	}

	return nil
}

// Peer returns the benchmark row for the bucket, falling through to the
// general.all_sizes record when the exact bucket is absent. Given a
// validated dataset this never fails.
func (d *Dataset) Peer(industryKey, revenueKey string) PeerRecord {
	if bands, ok := d.Benchmarks[industryKey]; ok {
		if rec, ok := bands[revenueKey]; ok {
			return rec
		}
		if rec, ok := bands[DefaultRevenueKey]; ok {
			return rec
		}
	}
	return d.Benchmarks[DefaultIndustryKey][DefaultRevenueKey]
}

// TermsDistributionFor returns the industry's term distribution, or the
// general one when the industry has no row.
func (d *Dataset) TermsDistributionFor(industryKey string) TermsDistribution {
	if dist, ok := d.PaymentTermsDistribution[industryKey]; ok {
		return dist
	}
	return d.PaymentTermsDistribution[DefaultIndustryKey]
}
