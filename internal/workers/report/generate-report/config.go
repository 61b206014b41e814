// internal/workers/report/generate-report/config.go
package generatereport

import "time"

type Config struct {
	Timeout time.Duration
	// ReportIndex is the Elasticsearch index receiving outcome documents.
	// Empty disables indexing.
	ReportIndex string
}

func LoadConfig() *Config {
	return &Config{
		Timeout:     90 * time.Second,
		ReportIndex: "benchmark-reports",
	}
}
