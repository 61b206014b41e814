// internal/workers/report/generate-report/handler_test.go
package generatereport

import (
	"context"
	"testing"

	"benchmark-workers/internal/common/errors"
	"benchmark-workers/internal/common/logger"
	"benchmark-workers/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

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

type fakeResponses struct {
	responses map[string]*models.SurveyResponse
}

func (f *fakeResponses) GetByID(ctx context.Context, responseID string) (*models.SurveyResponse, error) {
	resp, ok := f.responses[responseID]
	if !ok {
		return nil, errors.NewResponseNotFoundError(responseID)
	}
	return resp, nil
}

type fakeGenerator struct {
	meta models.ReportMeta
}

func (f *fakeGenerator) Generate(ctx context.Context, resp *models.SurveyResponse) models.ReportMeta {
	meta := f.meta
	meta.ResponseID = resp.ID
	meta.CompanyName = resp.CompanyName
	return meta
}

type fakeRecorder struct {
	recorded []models.ReportMeta
	err      error
}

func (f *fakeRecorder) Record(ctx context.Context, meta models.ReportMeta) error {
	f.recorded = append(f.recorded, meta)
	return f.err
}

type fakeStatusTracker struct {
	statuses []models.ReportStatus
}

func (f *fakeStatusTracker) SetStatus(ctx context.Context, status models.ReportStatus) error {
	f.statuses = append(f.statuses, status)
	return nil
}

type fakeIndexer struct {
	indexed []string
	err     error
}

func (f *fakeIndexer) IndexDocument(ctx context.Context, index, docID string, doc interface{}) error {
	f.indexed = append(f.indexed, index+"/"+docID)
	return f.err
}

type handlerFixture struct {
	handler   *Handler
	responses *fakeResponses
	generator *fakeGenerator
	recorder  *fakeRecorder
	status    *fakeStatusTracker
	indexer   *fakeIndexer
}

func newFixture(t *testing.T) *handlerFixture {
	f := &handlerFixture{
		responses: &fakeResponses{responses: map[string]*models.SurveyResponse{
			"resp-001": {ID: "resp-001", CompanyName: "Acme Fabrication"},
		}},
		generator: &fakeGenerator{meta: models.ReportMeta{
			Success:              true,
			ReportID:             "rep-001",
			Filename:             "benchmark-report-acme-fabrication-2025-06-15-ab12cd34.pdf",
			Path:                 "reports/benchmark-report-acme-fabrication-2025-06-15-ab12cd34.pdf",
			RecommendationsCount: 2,
		}},
		recorder: &fakeRecorder{},
		status:   &fakeStatusTracker{},
		indexer:  &fakeIndexer{},
	}
	f.handler = NewHandler(LoadConfig(), f.responses, f.generator, f.recorder, f.status, f.indexer, newTestLogger(t))
	return f
}

func statusSequence(statuses []models.ReportStatus) []string {
	seq := make([]string, 0, len(statuses))
	for _, s := range statuses {
		seq = append(seq, s.Status)
	}
	return seq
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_Success(t *testing.T) {
	f := newFixture(t)

	output, err := f.handler.Execute(context.Background(), &Input{ResponseID: "resp-001"})

	require.NoError(t, err)
	assert.True(t, output.Report.Success)
	assert.Equal(t, "rep-001", output.Report.ReportID)
	assert.Equal(t, "resp-001", output.Report.ResponseID)

	require.Len(t, f.recorder.recorded, 1)
	assert.True(t, f.recorder.recorded[0].Success)

	assert.Equal(t, []string{
		models.ReportStatusPending,
		models.ReportStatusSucceeded,
	}, statusSequence(f.status.statuses))

	require.Len(t, f.indexer.indexed, 1)
	assert.Equal(t, "benchmark-reports/rep-001", f.indexer.indexed[0])
}

func TestHandler_Execute_RenderFailure(t *testing.T) {
	f := newFixture(t)
	f.generator.meta = models.ReportMeta{Success: false, Error: "chrome crashed"}

	_, err := f.handler.Execute(context.Background(), &Input{ResponseID: "resp-001"})
	require.Error(t, err)

	var stdErr *errors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, errors.ErrCodeRenderFailed, stdErr.Code)
	assert.Contains(t, stdErr.Details, "resp-001")

	// The failure is still recorded and indexed for dashboards.
	require.Len(t, f.recorder.recorded, 1)
	assert.False(t, f.recorder.recorded[0].Success)
	assert.Len(t, f.indexer.indexed, 1)

	assert.Equal(t, []string{
		models.ReportStatusPending,
		models.ReportStatusFailed,
	}, statusSequence(f.status.statuses))
}

func TestHandler_Execute_RenderTimeoutMapsToTimeoutCode(t *testing.T) {
	f := newFixture(t)
	f.generator.meta = models.ReportMeta{Success: false, Error: "render timed out after 60s"}

	_, err := f.handler.Execute(context.Background(), &Input{ResponseID: "resp-001"})
	require.Error(t, err)

	var stdErr *errors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, errors.ErrCodeRenderTimeout, stdErr.Code)
}

func TestHandler_Execute_ResponseNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.handler.Execute(context.Background(), &Input{ResponseID: "resp-404"})
	require.Error(t, err)

	var stdErr *errors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, errors.ErrCodeResponseNotFound, stdErr.Code)

	assert.Equal(t, []string{
		models.ReportStatusPending,
		models.ReportStatusFailed,
	}, statusSequence(f.status.statuses))
	assert.Empty(t, f.recorder.recorded)
}

// ==========================
// Persistence Edge Cases
// ==========================

func TestHandler_Execute_RecordFailureOnSuccessfulReportFailsJob(t *testing.T) {
	f := newFixture(t)
	f.recorder.err = errors.NewReportRecordFailedError("rep-001", assert.AnError)

	_, err := f.handler.Execute(context.Background(), &Input{ResponseID: "resp-001"})
	require.Error(t, err)

	var stdErr *errors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, errors.ErrCodeReportRecordFailed, stdErr.Code)
}

func TestHandler_Execute_RecordFailureOnFailedReportDoesNotMaskRenderError(t *testing.T) {
	f := newFixture(t)
	f.generator.meta = models.ReportMeta{Success: false, Error: "chrome crashed"}
	f.recorder.err = errors.NewReportRecordFailedError("", assert.AnError)

	_, err := f.handler.Execute(context.Background(), &Input{ResponseID: "resp-001"})
	require.Error(t, err)

	var stdErr *errors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, errors.ErrCodeRenderFailed, stdErr.Code)
}

func TestHandler_Execute_IndexingFailureIsNonFatal(t *testing.T) {
	f := newFixture(t)
	f.indexer.err = assert.AnError

	output, err := f.handler.Execute(context.Background(), &Input{ResponseID: "resp-001"})
	require.NoError(t, err)
	assert.True(t, output.Report.Success)
}

func TestHandler_Execute_NilOptionalDependencies(t *testing.T) {
	f := newFixture(t)
	f.handler.status = nil
	f.handler.indexer = nil

	output, err := f.handler.Execute(context.Background(), &Input{ResponseID: "resp-001"})
	require.NoError(t, err)
	assert.True(t, output.Report.Success)
}

func TestHandler_Execute_MissingResponseID(t *testing.T) {
	f := newFixture(t)

	_, err := f.handler.Execute(context.Background(), &Input{})
	require.Error(t, err)

	var stdErr *errors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, errors.ErrCodeResponseValidationFailed, stdErr.Code)
}
