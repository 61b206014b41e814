// internal/workers/survey/validate-survey-response/models.go
package validatesurveyresponse

import "benchmark-workers/internal/common/validation"

type Input struct {
	ResponseID string                 `json:"responseId"`
	Response   map[string]interface{} `json:"response"`
}

type Output struct {
	ResponseID string                       `json:"responseId"`
	Valid      bool                         `json:"valid"`
	Errors     []validation.ValidationError `json:"validationErrors,omitempty"`
}
