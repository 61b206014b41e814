// internal/workers/survey/validate-survey-response/config.go
package validatesurveyresponse

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}
