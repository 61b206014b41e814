// internal/workers/report/generate-report-batch/config.go
package generatereportbatch

import "time"

type Config struct {
	Timeout time.Duration
	// MaxBatchSize bounds one job; larger requests are rejected before any
	// rendering starts.
	MaxBatchSize int
}

func LoadConfig() *Config {
	return &Config{
		Timeout:      10 * time.Minute,
		MaxBatchSize: 50,
	}
}
