// internal/workers/benchmark/calculate-benchmark/models.go
package calculatebenchmark

import "benchmark-workers/internal/report"

type Input struct {
	ResponseID string `json:"responseId"`
	// SkipCache forces a fresh calculation even when a preview is cached.
	SkipCache bool `json:"skipCache,omitempty"`
}

type Output struct {
	ResponseID string         `json:"responseId"`
	Preview    report.Preview `json:"preview"`
	FromCache  bool           `json:"fromCache"`
}
