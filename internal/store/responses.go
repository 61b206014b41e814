// internal/store/responses.go
package store

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/lib/pq"

	"benchmark-workers/internal/common/database"
	"benchmark-workers/internal/common/errors"
	"benchmark-workers/internal/common/logger"
	"benchmark-workers/internal/models"
)

const responseColumns = `
	id,
	company_name,
	COALESCE(contact_name, ''),
	email,
	COALESCE(b2b_percentage, ''),
	COALESCE(role, ''),
	COALESCE(payment_terms, ''),
	COALESCE(bad_debt_experience, ''),
	COALESCE(bad_debt_amount, ''),
	COALESCE(bad_debt_impact, 0),
	COALESCE(changed_approach, ''),
	COALESCE(changes_made, '{}'),
	COALESCE(credit_insurance_usage, ''),
	COALESCE(risk_mechanisms, '{}'),
	COALESCE(annual_revenue, ''),
	COALESCE(primary_industry, ''),
	submitted_at`

// ResponseStore reads validated survey responses. Optional answers are
// nullable columns; they scan to zero values so the calculator never sees
// nulls.
type ResponseStore struct {
	db     *database.PostgresClient
	logger logger.Logger
}

func NewResponseStore(db *database.PostgresClient, log logger.Logger) *ResponseStore {
	return &ResponseStore{
		db:     db,
		logger: log.WithFields(map[string]interface{}{"component": "response-store"}),
	}
}

func scanResponse(row interface{ Scan(...interface{}) error }) (*models.SurveyResponse, error) {
	var resp models.SurveyResponse
	err := row.Scan(
		&resp.ID,
		&resp.CompanyName,
		&resp.ContactName,
		&resp.Email,
		&resp.B2BPercentage,
		&resp.Role,
		&resp.PaymentTerms,
		&resp.BadDebtExperience,
		&resp.BadDebtAmount,
		&resp.BadDebtImpact,
		&resp.ChangedApproach,
		pq.Array(&resp.ChangesMade),
		&resp.CreditInsuranceUsage,
		pq.Array(&resp.RiskMechanisms),
		&resp.AnnualRevenue,
		&resp.PrimaryIndustry,
		&resp.SubmittedAt,
	)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetByID loads one response. A missing row maps to the not-found business
// error so callers can raise it as a BPMN error rather than retrying.
func (s *ResponseStore) GetByID(ctx context.Context, responseID string) (*models.SurveyResponse, error) {
	query := `SELECT ` + responseColumns + ` FROM survey_responses WHERE id = $1`

	resp, err := scanResponse(s.db.QueryRow(ctx, query, responseID))
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NewResponseNotFoundError(responseID)
		}
		if stderrors.Is(err, context.DeadlineExceeded) {
			return nil, errors.NewQueryTimeoutError("get survey response")
		}
		return nil, errors.NewQueryExecutionFailedError("get survey response", err)
	}

	return resp, nil
}

// ListByIDs loads a batch of responses, preserving the requested order.
// Missing IDs are skipped here; the batch worker reports them per item.
func (s *ResponseStore) ListByIDs(ctx context.Context, responseIDs []string) ([]*models.SurveyResponse, error) {
	if len(responseIDs) == 0 {
		return nil, nil
	}

	query := `SELECT ` + responseColumns + ` FROM survey_responses WHERE id = ANY($1)`

	rows, err := s.db.Query(ctx, query, pq.Array(responseIDs))
	if err != nil {
		if stderrors.Is(err, context.DeadlineExceeded) {
			return nil, errors.NewQueryTimeoutError("list survey responses")
		}
		return nil, errors.NewQueryExecutionFailedError("list survey responses", err)
	}
	defer rows.Close()

	byID := make(map[string]*models.SurveyResponse, len(responseIDs))
	for rows.Next() {
		resp, err := scanResponse(rows)
		if err != nil {
			return nil, errors.NewQueryExecutionFailedError("scan survey response", err)
		}
		byID[resp.ID] = resp
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewQueryExecutionFailedError("list survey responses", err)
	}

	ordered := make([]*models.SurveyResponse, 0, len(byID))
	for _, id := range responseIDs {
		if resp, ok := byID[id]; ok {
			ordered = append(ordered, resp)
		} else {
			s.logger.Warn("response missing from batch", map[string]interface{}{"responseId": id})
		}
	}

	return ordered, nil
}
