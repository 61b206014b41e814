// internal/benchmark/dataset_test.go
package benchmark

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func writeDatasetFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "benchmarks.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validDatasetJSON = `{
  "benchmarks": {
    "general": {
      "all_sizes": {
        "tciAdoptionRate": 0.45,
        "avgPaymentTerms": "Net 45",
        "medianDSO": 52,
        "badDebtExperienceRate": 0.60,
        "avgBadDebtRange": "$100K-$500K",
        "avgBadDebtToSales": 0.008,
        "source": "Cross-industry credit survey"
      }
    },
    "manufacturing": {
      "25m-100m": {
        "tciAdoptionRate": 0.52,
        "avgPaymentTerms": "Net 45",
        "medianDSO": 58,
        "badDebtExperienceRate": 0.64,
        "avgBadDebtRange": "$250K-$1M",
        "avgBadDebtToSales": 0.011,
        "source": "Manufacturing credit survey"
      },
      "all_sizes": {
        "tciAdoptionRate": 0.48,
        "avgPaymentTerms": "Net 40",
        "medianDSO": 55,
        "badDebtExperienceRate": 0.62,
        "avgBadDebtRange": "$100K-$500K",
        "avgBadDebtToSales": 0.009,
        "source": "Manufacturing credit survey"
      }
    }
  },
  "paymentTermsDistribution": {
    "general": {"net15OrLess": 0.10, "net30": 0.45, "net60": 0.30, "net90": 0.10, "over90": 0.05}
  },
  "postBadDebtActions": {
    "changedApproachRate": 0.71,
    "stricterApprovalRate": 0.54,
    "adoptedTciRate": 0.23,
    "tciImpact": {
      "badDebtReductionRate": 0.73,
      "source": "Insurer claims analysis",
      "note": "Average reduction among insured companies"
    }
  },
  "metadata": {"version": "2025.1", "lastUpdated": "2025-06-01"}
}`

// ==========================
// Load and Validate Tests
// ==========================

func TestLoad_ValidDataset(t *testing.T) {
	path := writeDatasetFile(t, validDatasetJSON)

	ds, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "2025.1", ds.Metadata.Version)
	assert.Equal(t, 0.73, ds.PostBadDebtActions.TCIImpact.BadDebtReductionRate)
	assert.Equal(t, "Net 45", ds.Benchmarks["general"]["all_sizes"].AvgPaymentTerms)
	assert.Equal(t, 0.52, ds.Benchmarks["manufacturing"]["25m-100m"].TCIAdoptionRate)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeDatasetFile(t, `{"benchmarks": `)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(ds *Dataset)
		wantErr string
	}{
		{
			name:    "empty benchmarks",
			mutate:  func(ds *Dataset) { ds.Benchmarks = nil },
			wantErr: "benchmarks table is empty",
		},
		{
			name:    "missing general industry",
			mutate:  func(ds *Dataset) { delete(ds.Benchmarks, "general") },
			wantErr: `missing required industry "general"`,
		},
		{
			name:    "missing general all_sizes record",
			mutate:  func(ds *Dataset) { delete(ds.Benchmarks["general"], "all_sizes") },
			wantErr: `missing required record "general"."all_sizes"`,
		},
		{
			name: "unparseable average terms",
			mutate: func(ds *Dataset) {
				rec := ds.Benchmarks["manufacturing"]["all_sizes"]
				rec.AvgPaymentTerms = "45 days"
				ds.Benchmarks["manufacturing"]["all_sizes"] = rec
			},
			wantErr: `avgPaymentTerms "45 days" is not a "Net N" value`,
		},
		{
			name: "zero-day average terms",
			mutate: func(ds *Dataset) {
				rec := ds.Benchmarks["general"]["all_sizes"]
				rec.AvgPaymentTerms = "Net 0"
				ds.Benchmarks["general"]["all_sizes"] = rec
			},
			wantErr: `avgPaymentTerms "Net 0" must name a positive day count`,
		},
		{
			name:    "missing distribution",
			mutate:  func(ds *Dataset) { ds.PaymentTermsDistribution = nil },
			wantErr: "paymentTermsDistribution table is empty",
		},
		{
			name:    "reduction rate out of range",
			mutate:  func(ds *Dataset) { ds.PostBadDebtActions.TCIImpact.BadDebtReductionRate = 1.5 },
			wantErr: "out of range",
		},
		{
			name:    "missing version",
			mutate:  func(ds *Dataset) { ds.Metadata.Version = "" },
			wantErr: "metadata.version is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := Load(writeDatasetFile(t, validDatasetJSON))
			require.NoError(t, err)

			tt.mutate(ds)
			err = ds.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// ==========================
// Lookup Fallback Tests
// ==========================

func TestPeer_FallbackChain(t *testing.T) {
	ds, err := Load(writeDatasetFile(t, validDatasetJSON))
	require.NoError(t, err)

	// Exact bucket hit.
	rec := ds.Peer("manufacturing", "25m-100m")
	assert.Equal(t, 0.52, rec.TCIAdoptionRate)

	// Known industry, missing band: falls to the industry's all_sizes row.
	rec = ds.Peer("manufacturing", "under-5m")
	assert.Equal(t, 0.48, rec.TCIAdoptionRate)

	// Unknown industry: falls to general.all_sizes.
	rec = ds.Peer("no-such-industry", "25m-100m")
	assert.Equal(t, 0.45, rec.TCIAdoptionRate)
}

func TestTermsDistributionFor_FallsBackToGeneral(t *testing.T) {
	ds, err := Load(writeDatasetFile(t, validDatasetJSON))
	require.NoError(t, err)

	dist := ds.TermsDistributionFor("manufacturing")
	assert.Equal(t, 0.45, dist.Net30)

	dist = ds.TermsDistributionFor("general")
	assert.Equal(t, 0.45, dist.Net30)
}
