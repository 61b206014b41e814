// internal/workers/benchmark/calculate-benchmark/handler.go
package calculatebenchmark

import (
	"context"
	"encoding/json"
	"fmt"

	"benchmark-workers/internal/common/errors"
	"benchmark-workers/internal/common/logger"
	"benchmark-workers/internal/models"
	"benchmark-workers/internal/report"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "calculate-benchmark"

// ResponseGetter loads one validated survey response.
type ResponseGetter interface {
	GetByID(ctx context.Context, responseID string) (*models.SurveyResponse, error)
}

// PreviewCache is the optional Redis-backed preview cache. A nil cache
// disables caching entirely.
type PreviewCache interface {
	GetCachedPreview(ctx context.Context, responseID string) (*report.Preview, error)
	CachePreview(ctx context.Context, preview report.Preview)
}

// Previewer computes the reduced numeric projection without rendering.
type Previewer interface {
	GeneratePreview(resp *models.SurveyResponse) report.Preview
}

// Handler serves preview-mode benchmark calculations: the numeric result
// only, no document, no renderer.
type Handler struct {
	config       *Config
	responses    ResponseGetter
	previewer    Previewer
	cache        PreviewCache
	errorHandler *errors.ErrorHandler
	logger       logger.Logger
}

func NewHandler(config *Config, responses ResponseGetter, previewer Previewer, cache PreviewCache, log logger.Logger) *Handler {
	return &Handler{
		config:       config,
		responses:    responses,
		previewer:    previewer,
		cache:        cache,
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

	if h.cache != nil && !input.SkipCache {
		cached, err := h.cache.GetCachedPreview(ctx, input.ResponseID)
		if err != nil {
			// Cache trouble never blocks a calculation.
			h.logger.WithError(err).Warn("preview cache read failed", map[string]interface{}{
				"responseId": input.ResponseID,
			})
		} else if cached != nil {
			return &Output{ResponseID: input.ResponseID, Preview: *cached, FromCache: true}, nil
		}
	}

	resp, err := h.responses.GetByID(ctx, input.ResponseID)
	if err != nil {
		return nil, err
	}

	preview := h.previewer.GeneratePreview(resp)
	if h.cache != nil {
		h.cache.CachePreview(ctx, preview)
	}

	h.logger.Info("benchmark calculated", map[string]interface{}{
		"responseId":      input.ResponseID,
		"industry":        preview.PeerGroup.IndustryKey,
		"revenueBand":     preview.PeerGroup.RevenueKey,
		"recommendations": len(preview.Recommendations),
	})

	return &Output{ResponseID: input.ResponseID, Preview: preview}, nil
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
		"jobKey":    job.Key,
		"fromCache": output.FromCache,
	})
}
