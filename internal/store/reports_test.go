// internal/store/reports_test.go
package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"benchmark-workers/internal/common/errors"
	"benchmark-workers/internal/models"
)

func successMeta() models.ReportMeta {
	return models.ReportMeta{
		Success:              true,
		ReportID:             "rep-001",
		ResponseID:           "resp-001",
		CompanyName:          "Acme Fabrication",
		Filename:             "benchmark-report-acme-fabrication-2025-06-15-ab12cd34.pdf",
		Path:                 "reports/benchmark-report-acme-fabrication-2025-06-15-ab12cd34.pdf",
		GeneratedAt:          time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
		RecommendationsCount: 2,
		PeerGroup:            "Manufacturing, $25M-$100M revenue",
		DurationMillis:       3200,
	}
}

func TestReportStore_Record_Success(t *testing.T) {
	client, mock := newMockDB(t)
	store := NewReportStore(client, newTestLogger(t))

	meta := successMeta()
	mock.ExpectExec("INSERT INTO reports").
		WithArgs(
			meta.ReportID, meta.ResponseID, meta.CompanyName, true,
			meta.Filename, meta.Path, meta.RecommendationsCount, meta.PeerGroup,
			meta.DurationMillis, nil, meta.GeneratedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := store.Record(context.Background(), meta)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportStore_Record_FailureOutcomeNullsOptionalColumns(t *testing.T) {
	client, mock := newMockDB(t)
	store := NewReportStore(client, newTestLogger(t))

	meta := models.ReportMeta{
		Success:     false,
		ResponseID:  "resp-002",
		CompanyName: "Beta Corp",
		GeneratedAt: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
		Error:       "render timed out",
	}

	mock.ExpectExec("INSERT INTO reports").
		WithArgs(
			nil, meta.ResponseID, meta.CompanyName, false,
			nil, nil, 0, "",
			int64(0), meta.Error, meta.GeneratedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := store.Record(context.Background(), meta)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportStore_Record_InsertFailure(t *testing.T) {
	client, mock := newMockDB(t)
	store := NewReportStore(client, newTestLogger(t))

	mock.ExpectExec("INSERT INTO reports").WillReturnError(assert.AnError)

	err := store.Record(context.Background(), successMeta())
	require.Error(t, err)

	var stdErr *errors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, errors.ErrCodeReportRecordFailed, stdErr.Code)
	assert.True(t, stdErr.Retryable)
}
