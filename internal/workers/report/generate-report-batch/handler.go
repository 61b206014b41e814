// internal/workers/report/generate-report-batch/handler.go
package generatereportbatch

import (
	"context"
	"encoding/json"
	"fmt"

	"benchmark-workers/internal/common/errors"
	"benchmark-workers/internal/common/logger"
	"benchmark-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "generate-report-batch"

type ResponseLister interface {
	ListByIDs(ctx context.Context, responseIDs []string) ([]*models.SurveyResponse, error)
}

type BatchGenerator interface {
	GenerateBatch(ctx context.Context, responses []*models.SurveyResponse) models.BatchSummary
}

type OutcomeRecorder interface {
	Record(ctx context.Context, meta models.ReportMeta) error
}

// Handler runs a strictly sequential batch. The batch itself always
// completes: per-item failures land in the summary, never in a job error.
// Only a batch that cannot start at all (bad input, query failure) fails
// the job.
type Handler struct {
	config       *Config
	responses    ResponseLister
	generator    BatchGenerator
	outcomes     OutcomeRecorder
	errorHandler *errors.ErrorHandler
	logger       logger.Logger
}

func NewHandler(config *Config, responses ResponseLister, generator BatchGenerator, outcomes OutcomeRecorder, log logger.Logger) *Handler {
	return &Handler{
		config:       config,
		responses:    responses,
		generator:    generator,
		outcomes:     outcomes,
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
	if len(input.ResponseIDs) == 0 {
		return nil, errors.NewResponseValidationFailedError("responseIds must not be empty")
	}
	if len(input.ResponseIDs) > h.config.MaxBatchSize {
		return nil, errors.NewResponseValidationFailedError(
			fmt.Sprintf("batch of %d exceeds limit of %d", len(input.ResponseIDs), h.config.MaxBatchSize))
	}

	responses, err := h.responses.ListByIDs(ctx, input.ResponseIDs)
	if err != nil {
		return nil, err
	}

	summary := h.generator.GenerateBatch(ctx, responses)

	// IDs the store could not find still get a per-item outcome so the
	// summary accounts for every requested response.
	found := make(map[string]bool, len(responses))
	for _, resp := range responses {
		found[resp.ID] = true
	}
	for _, id := range input.ResponseIDs {
		if found[id] {
			continue
		}
		summary.Total++
		summary.Failed++
		summary.Results = append(summary.Results, models.ReportMeta{
			Success:    false,
			ResponseID: id,
			Error:      "survey response not found",
		})
	}

	for _, meta := range summary.Results {
		if err := h.outcomes.Record(ctx, meta); err != nil {
			h.logger.WithError(err).Warn("failed to record batch item outcome", map[string]interface{}{
				"responseId": meta.ResponseID,
			})
		}
	}

	h.logger.Info("batch finished", map[string]interface{}{
		"total":      summary.Total,
		"successful": summary.Successful,
		"failed":     summary.Failed,
	})

	return &Output{Summary: summary}, nil
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
		"jobKey":     job.Key,
		"total":      output.Summary.Total,
		"successful": output.Summary.Successful,
		"failed":     output.Summary.Failed,
	})
}
