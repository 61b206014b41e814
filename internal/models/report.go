// internal/models/report.go
package models

import "time"

// ReportMeta is the per-report outcome summary returned to callers and
// persisted for dashboards.
type ReportMeta struct {
	Success              bool      `json:"success"`
	ReportID             string    `json:"reportId,omitempty"`
	ResponseID           string    `json:"responseId"`
	CompanyName          string    `json:"companyName,omitempty"`
	Filename             string    `json:"filename,omitempty"`
	Path                 string    `json:"path,omitempty"`
	GeneratedAt          time.Time `json:"generatedAt,omitempty"`
	RecommendationsCount int       `json:"recommendationsCount"`
	PeerGroup            string    `json:"peerGroup,omitempty"`
	DurationMillis       int64     `json:"durationMillis,omitempty"`
	Error                string    `json:"error,omitempty"`
}

// BatchSummary tallies a sequential batch run.
type BatchSummary struct {
	Total      int          `json:"total"`
	Successful int          `json:"successful"`
	Failed     int          `json:"failed"`
	Results    []ReportMeta `json:"results"`
}

// Report generation status values tracked per response.
const (
	ReportStatusPending   = "pending"
	ReportStatusSucceeded = "succeeded"
	ReportStatusFailed    = "failed"
)

// ReportStatus is the Redis-tracked generation state for one response.
type ReportStatus struct {
	ResponseID string    `json:"responseId"`
	Status     string    `json:"status"`
	ReportID   string    `json:"reportId,omitempty"`
	Error      string    `json:"error,omitempty"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
