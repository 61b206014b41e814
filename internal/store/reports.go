// internal/store/reports.go
package store

import (
	"context"
	stderrors "errors"

	"benchmark-workers/internal/common/database"
	"benchmark-workers/internal/common/errors"
	"benchmark-workers/internal/common/logger"
	"benchmark-workers/internal/models"
)

// ReportStore persists report outcomes. Both successes and failures are
// recorded; dashboards read the failure rows.
type ReportStore struct {
	db     *database.PostgresClient
	logger logger.Logger
}

func NewReportStore(db *database.PostgresClient, log logger.Logger) *ReportStore {
	return &ReportStore{
		db:     db,
		logger: log.WithFields(map[string]interface{}{"component": "report-store"}),
	}
}

// Record inserts one report outcome row.
func (s *ReportStore) Record(ctx context.Context, meta models.ReportMeta) error {
	query := `
		INSERT INTO reports (
			report_id, response_id, company_name, success,
			filename, path, recommendations_count, peer_group,
			duration_ms, error, generated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := s.db.Exec(ctx, query,
		nullIfEmpty(meta.ReportID),
		meta.ResponseID,
		meta.CompanyName,
		meta.Success,
		nullIfEmpty(meta.Filename),
		nullIfEmpty(meta.Path),
		meta.RecommendationsCount,
		meta.PeerGroup,
		meta.DurationMillis,
		nullIfEmpty(meta.Error),
		meta.GeneratedAt,
	)
	if err != nil {
		if stderrors.Is(err, context.DeadlineExceeded) {
			return errors.NewQueryTimeoutError("record report")
		}
		return errors.NewReportRecordFailedError(meta.ReportID, err)
	}

	s.logger.Debug("report outcome recorded", map[string]interface{}{
		"reportId":   meta.ReportID,
		"responseId": meta.ResponseID,
		"success":    meta.Success,
	})

	return nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
