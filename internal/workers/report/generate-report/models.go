// internal/workers/report/generate-report/models.go
package generatereport

import "benchmark-workers/internal/models"

type Input struct {
	ResponseID string `json:"responseId"`
}

type Output struct {
	Report models.ReportMeta `json:"report"`
}
