// internal/workers/report/generate-report-batch/models.go
package generatereportbatch

import "benchmark-workers/internal/models"

type Input struct {
	ResponseIDs []string `json:"responseIds"`
}

type Output struct {
	Summary models.BatchSummary `json:"summary"`
}
