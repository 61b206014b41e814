// Package errors provides standardized error handling for BPMN workflow integration.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Configuration errors are fatal at startup and never retried per call.
	ErrCodeDatasetLoadFailed ErrorCode = "DATASET_LOAD_FAILED"
	ErrCodeDatasetInvalid    ErrorCode = "DATASET_INVALID"

	// Survey input errors.
	ErrCodeResponseValidationFailed ErrorCode = "RESPONSE_VALIDATION_FAILED"
	ErrCodeResponseNotFound         ErrorCode = "RESPONSE_NOT_FOUND"

	// Persistence errors.
	ErrCodeDatabaseConnectionFailed ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrCodeQueryExecutionFailed     ErrorCode = "QUERY_EXECUTION_FAILED"
	ErrCodeQueryTimeout             ErrorCode = "QUERY_TIMEOUT"
	ErrCodeReportRecordFailed       ErrorCode = "REPORT_RECORD_FAILED"

	// Rendering errors.
	ErrCodeRenderFailed  ErrorCode = "RENDER_FAILED"
	ErrCodeRenderTimeout ErrorCode = "RENDER_TIMEOUT"

	// Analytics indexing errors (non-fatal for report generation).
	ErrCodeReportIndexFailed ErrorCode = "REPORT_INDEX_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. BPMN Error Integration
// ==========================

// BPMNError represents an error that can be thrown to the Camunda workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns a map suitable for setting Camunda job fail variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}

	if e.ErrorVariables != nil {
		for k, v := range e.ErrorVariables {
			vars[k] = v
		}
	}

	return vars
}

// ==========================
// 3. Error Constructors
// ==========================

// NewDatasetLoadFailedError creates a non-retryable dataset load error.
// A missing or unreadable dataset is a deployment problem, not a job problem.
func NewDatasetLoadFailedError(path string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatasetLoadFailed,
		Message:   "Benchmark dataset could not be loaded",
		Details:   fmt.Sprintf("path: %s, error: %s", path, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatasetInvalidError creates a non-retryable dataset shape error.
func NewDatasetInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatasetInvalid,
		Message:   "Benchmark dataset is malformed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewResponseValidationFailedError creates a non-retryable survey validation error.
func NewResponseValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeResponseValidationFailed,
		Message:   "Survey response failed validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewResponseNotFoundError creates a non-retryable lookup error.
func NewResponseNotFoundError(responseID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeResponseNotFound,
		Message:   "Survey response not found",
		Details:   fmt.Sprintf("responseId: %s", responseID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseConnectionFailedError creates a retryable database connection error.
func NewDatabaseConnectionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseConnectionFailed,
		Message:   "Database connection error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewQueryExecutionFailedError creates a retryable query execution error.
func NewQueryExecutionFailedError(operation string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeQueryExecutionFailed,
		Message:   "Database query execution error",
		Details:   fmt.Sprintf("operation: %s, error: %s", operation, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewQueryTimeoutError creates a retryable query timeout error.
func NewQueryTimeoutError(operation string) *StandardError {
	return &StandardError{
		Code:      ErrCodeQueryTimeout,
		Message:   "Database query timeout",
		Details:   fmt.Sprintf("operation: %s", operation),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewReportRecordFailedError creates a retryable report metadata insert error.
func NewReportRecordFailedError(reportID string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeReportRecordFailed,
		Message:   "Report metadata insert failed",
		Details:   fmt.Sprintf("reportId: %s, error: %s", reportID, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewRenderFailedError creates a retryable renderer error carrying the
// identity of the response being processed.
func NewRenderFailedError(responseID, company string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeRenderFailed,
		Message:   "PDF render failed",
		Details:   fmt.Sprintf("responseId: %s, company: %s, error: %s", responseID, company, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewRenderTimeoutError creates a retryable renderer timeout error.
func NewRenderTimeoutError(responseID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRenderTimeout,
		Message:   "PDF render exceeded timeout",
		Details:   fmt.Sprintf("responseId: %s", responseID),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewReportIndexFailedError creates a retryable analytics indexing error.
func NewReportIndexFailedError(reportID string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeReportIndexFailed,
		Message:   "Report summary indexing failed",
		Details:   fmt.Sprintf("reportId: %s, error: %s", reportID, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// Generic constructors

func NewBusinessRuleError(message, details string) *StandardError {
	return &StandardError{
		Code:      "BUSINESS_RULE_VIOLATION",
		Message:   message,
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewExternalServiceError(service string, err error) *StandardError {
	return &StandardError{
		Code:      "EXTERNAL_SERVICE_ERROR",
		Message:   fmt.Sprintf("External service '%s' error", service),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewTimeoutError(service string, err error) *StandardError {
	return &StandardError{
		Code:      "TIMEOUT_ERROR",
		Message:   fmt.Sprintf("Service '%s' timeout", service),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 4. Error Conversion to BPMN
// ==========================

// BPMNErrorMapping maps internal error codes to BPMN error codes (same values).
var BPMNErrorMapping = map[ErrorCode]string{
	ErrCodeDatasetLoadFailed:        "DATASET_LOAD_FAILED",
	ErrCodeDatasetInvalid:           "DATASET_INVALID",
	ErrCodeResponseValidationFailed: "RESPONSE_VALIDATION_FAILED",
	ErrCodeResponseNotFound:         "RESPONSE_NOT_FOUND",
	ErrCodeDatabaseConnectionFailed: "DATABASE_CONNECTION_FAILED",
	ErrCodeQueryExecutionFailed:     "QUERY_EXECUTION_FAILED",
	ErrCodeQueryTimeout:             "QUERY_TIMEOUT",
	ErrCodeReportRecordFailed:       "REPORT_RECORD_FAILED",
	ErrCodeRenderFailed:             "RENDER_FAILED",
	ErrCodeRenderTimeout:            "RENDER_TIMEOUT",
	ErrCodeReportIndexFailed:        "REPORT_INDEX_FAILED",
}

// GetRetryCount returns the recommended retry count per error code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeDatabaseConnectionFailed,
		ErrCodeQueryExecutionFailed,
		ErrCodeReportRecordFailed,
		ErrCodeReportIndexFailed:
		return 3 // Retryable technical errors

	case ErrCodeQueryTimeout,
		ErrCodeRenderTimeout:
		return 2 // Partial retry for timeouts

	case ErrCodeRenderFailed:
		return 1 // Chrome restarts are expensive; one more attempt only

	default:
		return 0 // Configuration and validation errors: no retry
	}
}

// ConvertToBPMNError converts a StandardError to a BPMNError for Camunda.
func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	bpmnCode, exists := BPMNErrorMapping[stdErr.Code]
	if !exists {
		bpmnCode = string(stdErr.Code) // Fallback
	}

	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}

	return &BPMNError{
		Code:      bpmnCode,
		Message:   stdErr.Message,
		Details:   stdErr.Details,
		Retryable: stdErr.Retryable,
		Retries:   retries,
		ErrorVariables: map[string]interface{}{
			"originalErrorCode": string(stdErr.Code),
			"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
		},
	}
}

// ==========================
// 5. Utility Functions
// ==========================

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "DATASET"):
		return "CONFIGURATION"
	case strings.Contains(codeStr, "RESPONSE"):
		return "SURVEY_INPUT"
	case strings.Contains(codeStr, "DATABASE") || strings.Contains(codeStr, "QUERY") || strings.Contains(codeStr, "RECORD"):
		return "DATABASE"
	case strings.Contains(codeStr, "RENDER"):
		return "RENDERING"
	case strings.Contains(codeStr, "INDEX"):
		return "ANALYTICS"
	default:
		return "OTHER"
	}
}
