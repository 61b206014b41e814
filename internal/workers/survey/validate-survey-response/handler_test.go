// internal/workers/survey/validate-survey-response/handler_test.go
package validatesurveyresponse

import (
	"context"
	"testing"

	"benchmark-workers/internal/common/logger"
	"benchmark-workers/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestConfig() *Config {
	return LoadConfig()
}

func createValidPayload() map[string]interface{} {
	return map[string]interface{}{
		"responseId":        "resp-001",
		"companyName":       "Acme Fabrication",
		"email":             "cfo@acmefab.example",
		"paymentTerms":      models.TermNet60,
		"badDebtExperience": models.BadDebtYesOnceOrTwice,
		"badDebtAmount":     models.Amount250kTo1m,
		"badDebtImpact":     3,
		"changedApproach":   models.ChangedMinor,
		"changesMade":       []interface{}{models.ChangeStricterApproval},
		"annualRevenue":     "25m-100m",
		"primaryIndustry":   "manufacturing",
	}
}

type testLogger struct {
	t *testing.T
}

func (tl *testLogger) Debug(msg string, fields map[string]interface{}) {
	tl.t.Logf("DEBUG: %s %v", msg, fields)
}

func (tl *testLogger) Info(msg string, fields map[string]interface{}) {
	tl.t.Logf("INFO: %s %v", msg, fields)
}

func (tl *testLogger) Warn(msg string, fields map[string]interface{}) {
	tl.t.Logf("WARN: %s %v", msg, fields)
}

func (tl *testLogger) Error(msg string, fields map[string]interface{}) {
	tl.t.Logf("ERROR: %s %v", msg, fields)
}

func (tl *testLogger) WithFields(fields map[string]interface{}) logger.Logger {
	return tl
}

func (tl *testLogger) WithError(err error) logger.Logger {
	return tl.WithFields(map[string]interface{}{"error": err})
}

func (tl *testLogger) With(fields map[string]interface{}) logger.Logger {
	return tl
}

func newTestLogger(t *testing.T) logger.Logger {
	return &testLogger{t: t}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_ValidPayload(t *testing.T) {
	handler := NewHandler(createTestConfig(), newTestLogger(t))

	output, err := handler.Execute(context.Background(), &Input{
		ResponseID: "resp-001",
		Response:   createValidPayload(),
	})

	require.NoError(t, err)
	assert.True(t, output.Valid)
	assert.Empty(t, output.Errors)
	assert.Equal(t, "resp-001", output.ResponseID)
}

func TestHandler_Execute_SparsePayloadIsValid(t *testing.T) {
	handler := NewHandler(createTestConfig(), newTestLogger(t))

	// Only the required contact fields; every survey answer omitted.
	output, err := handler.Execute(context.Background(), &Input{
		ResponseID: "resp-002",
		Response: map[string]interface{}{
			"companyName": "Beta Corp",
			"email":       "owner@beta.example",
		},
	})

	require.NoError(t, err)
	assert.True(t, output.Valid)
}

func TestHandler_Execute_Violations(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(payload map[string]interface{})
		expectedField string
	}{
		{
			name:          "missing company name",
			mutate:        func(p map[string]interface{}) { delete(p, "companyName") },
			expectedField: "(root)",
		},
		{
			name:          "malformed email",
			mutate:        func(p map[string]interface{}) { p["email"] = "not-an-email" },
			expectedField: "email",
		},
		{
			name:          "unknown payment terms value",
			mutate:        func(p map[string]interface{}) { p["paymentTerms"] = "net-365" },
			expectedField: "paymentTerms",
		},
		{
			name:          "impact rating above range",
			mutate:        func(p map[string]interface{}) { p["badDebtImpact"] = 6 },
			expectedField: "badDebtImpact",
		},
		{
			name:          "impact rating below range",
			mutate:        func(p map[string]interface{}) { p["badDebtImpact"] = 0 },
			expectedField: "badDebtImpact",
		},
		{
			name: "unknown multi-select entry",
			mutate: func(p map[string]interface{}) {
				p["changesMade"] = []interface{}{"hired-a-psychic"}
			},
			expectedField: "changesMade.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHandler(createTestConfig(), newTestLogger(t))

			payload := createValidPayload()
			tt.mutate(payload)

			output, err := handler.Execute(context.Background(), &Input{
				ResponseID: "resp-003",
				Response:   payload,
			})

			require.NoError(t, err)
			assert.False(t, output.Valid)
			require.NotEmpty(t, output.Errors)

			fields := make([]string, 0, len(output.Errors))
			for _, violation := range output.Errors {
				fields = append(fields, violation.Field)
			}
			assert.Contains(t, fields, tt.expectedField)
		})
	}
}

func TestHandler_Execute_NilPayload(t *testing.T) {
	handler := NewHandler(createTestConfig(), newTestLogger(t))

	output, err := handler.Execute(context.Background(), &Input{ResponseID: "resp-004"})

	require.NoError(t, err)
	assert.False(t, output.Valid)
	require.Len(t, output.Errors, 1)
	assert.Equal(t, "response", output.Errors[0].Field)
}
