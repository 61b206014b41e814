// internal/models/response.go
package models

import "time"

// SurveyResponse is the typed form of a submitted credit-risk survey.
// Every non-contact field is optional: an empty string (or 0 for the impact
// rating) means the question was not answered. The calculator tolerates any
// sparse combination; boundary validation rejects values outside the declared
// enum sets before they get here.
type SurveyResponse struct {
	ID          string `json:"responseId"`
	CompanyName string `json:"companyName"`
	ContactName string `json:"contactName"`
	Email       string `json:"email"`

	B2BPercentage     string   `json:"b2bPercentage,omitempty"`     // q1
	Role              string   `json:"role,omitempty"`              // q2
	PaymentTerms      string   `json:"paymentTerms,omitempty"`      // q3
	BadDebtExperience string   `json:"badDebtExperience,omitempty"` // q4
	BadDebtAmount     string   `json:"badDebtAmount,omitempty"`     // q5
	BadDebtImpact     int      `json:"badDebtImpact,omitempty"`     // q6, 1..5, 0 = unanswered
	ChangedApproach   string   `json:"changedApproach,omitempty"`   // q7
	ChangesMade       []string `json:"changesMade,omitempty"`       // q7a, multi-select

	// q8 exists in two historical shapes: the current multi-select risk
	// mechanisms and the legacy single-select credit insurance usage.
	// Either may carry the TCI signal.
	CreditInsuranceUsage string   `json:"creditInsuranceUsage,omitempty"`
	RiskMechanisms       []string `json:"riskMechanisms,omitempty"`

	AnnualRevenue   string `json:"annualRevenue,omitempty"`   // q17
	PrimaryIndustry string `json:"primaryIndustry,omitempty"` // q18

	SubmittedAt time.Time `json:"submittedAt,omitempty"`
}

// HasContact reports whether the personalization fields are present.
func (r *SurveyResponse) HasContact() bool {
	return r.CompanyName != "" && r.Email != ""
}
