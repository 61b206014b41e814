// internal/workers/benchmark/calculate-benchmark/config.go
package calculatebenchmark

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 15 * time.Second,
	}
}
