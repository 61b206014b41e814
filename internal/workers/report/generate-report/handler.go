// internal/workers/report/generate-report/handler.go
package generatereport

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"benchmark-workers/internal/common/errors"
	"benchmark-workers/internal/common/logger"
	"benchmark-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "generate-report"

type ResponseGetter interface {
	GetByID(ctx context.Context, responseID string) (*models.SurveyResponse, error)
}

type ReportGenerator interface {
	Generate(ctx context.Context, resp *models.SurveyResponse) models.ReportMeta
}

type OutcomeRecorder interface {
	Record(ctx context.Context, meta models.ReportMeta) error
}

type StatusTracker interface {
	SetStatus(ctx context.Context, status models.ReportStatus) error
}

// OutcomeIndexer pushes report outcomes into the analytics index.
type OutcomeIndexer interface {
	IndexDocument(ctx context.Context, index, docID string, doc interface{}) error
}

// Handler runs the full single-report pipeline and persists the outcome.
// The Postgres outcome row and the job result are authoritative; status
// tracking and analytics indexing are best effort.
type Handler struct {
	config       *Config
	responses    ResponseGetter
	generator    ReportGenerator
	outcomes     OutcomeRecorder
	status       StatusTracker
	indexer      OutcomeIndexer
	errorHandler *errors.ErrorHandler
	logger       logger.Logger
}

func NewHandler(config *Config, responses ResponseGetter, generator ReportGenerator, outcomes OutcomeRecorder, status StatusTracker, indexer OutcomeIndexer, log logger.Logger) *Handler {
	return &Handler{
		config:       config,
		responses:    responses,
		generator:    generator,
		outcomes:     outcomes,
		status:       status,
		indexer:      indexer,
		errorHandler: errors.NewErrorHandler(log),
		logger:       log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) error {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":             job.Key,
		"processInstanceKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.errorHandler.HandleJobError(context.Background(), client, job,
			errors.NewResponseValidationFailedError(fmt.Sprintf("parse job variables: %v", err)))
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.Execute(ctx, &input)
	if err != nil {
		h.errorHandler.HandleJobError(ctx, client, job, err)
		return nil
	}

	h.completeJob(ctx, client, job, output)
	return nil
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if input.ResponseID == "" {
		return nil, errors.NewResponseValidationFailedError("responseId is required")
	}

	h.trackStatus(ctx, models.ReportStatus{
		ResponseID: input.ResponseID,
		Status:     models.ReportStatusPending,
	})

	resp, err := h.responses.GetByID(ctx, input.ResponseID)
	if err != nil {
		h.trackStatus(ctx, models.ReportStatus{
			ResponseID: input.ResponseID,
			Status:     models.ReportStatusFailed,
			Error:      err.Error(),
		})
		return nil, err
	}

	meta := h.generator.Generate(ctx, resp)

	if err := h.outcomes.Record(ctx, meta); err != nil {
		if meta.Success {
			// The file exists but the outcome row does not; retrying the
			// job regenerates under a fresh filename and records cleanly.
			return nil, err
		}
		h.logger.WithError(err).Warn("failed to record failed report outcome", map[string]interface{}{
			"responseId": meta.ResponseID,
		})
	}

	h.indexOutcome(ctx, meta)

	if !meta.Success {
		h.trackStatus(ctx, models.ReportStatus{
			ResponseID: input.ResponseID,
			Status:     models.ReportStatusFailed,
			Error:      meta.Error,
		})
		return nil, h.renderError(input.ResponseID, meta)
	}

	h.trackStatus(ctx, models.ReportStatus{
		ResponseID: input.ResponseID,
		Status:     models.ReportStatusSucceeded,
		ReportID:   meta.ReportID,
	})

	return &Output{Report: meta}, nil
}

func (h *Handler) renderError(responseID string, meta models.ReportMeta) error {
	if strings.Contains(meta.Error, "timed out") {
		return errors.NewRenderTimeoutError(responseID)
	}
	return errors.NewRenderFailedError(responseID, meta.CompanyName, fmt.Errorf("%s", meta.Error))
}

func (h *Handler) trackStatus(ctx context.Context, status models.ReportStatus) {
	if h.status == nil {
		return
	}
	if err := h.status.SetStatus(ctx, status); err != nil {
		h.logger.WithError(err).Warn("status update failed", map[string]interface{}{
			"responseId": status.ResponseID,
			"status":     status.Status,
		})
	}
}

func (h *Handler) indexOutcome(ctx context.Context, meta models.ReportMeta) {
	if h.indexer == nil || h.config.ReportIndex == "" {
		return
	}

	docID := meta.ReportID
	if docID == "" {
		docID = meta.ResponseID
	}

	if err := h.indexer.IndexDocument(ctx, h.config.ReportIndex, docID, meta); err != nil {
		h.logger.WithError(err).Warn("report outcome indexing failed", map[string]interface{}{
			"responseId": meta.ResponseID,
			"index":      h.config.ReportIndex,
		})
	}
}

func (h *Handler) completeJob(ctx context.Context, client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{"error": err})
		return
	}

	if _, err := cmd.Send(ctx); err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{"error": err})
		return
	}

	h.logger.Info("job completed", map[string]interface{}{
		"jobKey":   job.Key,
		"reportId": output.Report.ReportID,
		"filename": output.Report.Filename,
	})
}
