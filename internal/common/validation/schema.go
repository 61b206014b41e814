// internal/common/validation/schema.go
package validation

import (
	"fmt"

	"benchmark-workers/internal/models"

	"github.com/xeipuuv/gojsonschema"
)

// ValidationResult mirrors what workers hand back to the workflow engine.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// surveySchema is built once from the declared enum sets so the schema can
// never drift from the value lists the calculator maps over.
var surveySchema = buildSurveySchema()

func buildSurveySchema() map[string]interface{} {
	enum := func(values []string) map[string]interface{} {
		anyValues := make([]interface{}, len(values))
		for i, v := range values {
			anyValues[i] = v
		}
		return map[string]interface{}{"type": "string", "enum": anyValues}
	}
	multi := func(values []string) map[string]interface{} {
		return map[string]interface{}{
			"type":  "array",
			"items": enum(values),
		}
	}

	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"responseId":  map[string]interface{}{"type": "string"},
			"companyName": map[string]interface{}{"type": "string", "minLength": 1},
			"contactName": map[string]interface{}{"type": "string"},
			"email": map[string]interface{}{
				"type":    "string",
				"pattern": `^[^@\s]+@[^@\s]+\.[^@\s]+$`,
			},
			"b2bPercentage":     enum(models.B2BPercentageValues),
			"role":              enum(models.RoleValues),
			"paymentTerms":      enum(models.PaymentTermValues),
			"badDebtExperience": enum(models.BadDebtExperienceValues),
			"badDebtAmount":     enum(models.BadDebtAmountValues),
			"badDebtImpact": map[string]interface{}{
				"type":    "integer",
				"minimum": 1,
				"maximum": 5,
			},
			"changedApproach":      enum(models.ChangedApproachValues),
			"changesMade":          multi(models.ChangesMadeValues),
			"creditInsuranceUsage": enum(models.CreditInsuranceUsageValues),
			"riskMechanisms":       multi(models.RiskMechanismValues),
			"annualRevenue":        enum(models.AnnualRevenueValues),
			"primaryIndustry":      enum(models.PrimaryIndustryValues),
			"submittedAt":          map[string]interface{}{"type": "string"},
		},
		"required":             []interface{}{"companyName", "email"},
		"additionalProperties": true,
	}
}

// ValidateSurveyPayload validates a raw survey submission before it is
// converted into a typed SurveyResponse. Enum membership and the 1-5 impact
// range are enforced here; downstream code may assume a sparse but well-typed
// record.
func ValidateSurveyPayload(payload map[string]interface{}) (*ValidationResult, error) {
	schemaLoader := gojsonschema.NewGoLoader(surveySchema)
	documentLoader := gojsonschema.NewGoLoader(payload)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation: %w", err)
	}

	if result.Valid() {
		return &ValidationResult{Valid: true}, nil
	}

	out := &ValidationResult{Valid: false}
	for _, desc := range result.Errors() {
		out.Errors = append(out.Errors, ValidationError{
			Field:   desc.Field(),
			Message: desc.Description(),
			Code:    desc.Type(),
		})
	}
	return out, nil
}
