// internal/workers/survey/validate-survey-response/handler.go
package validatesurveyresponse

import (
	"context"
	"encoding/json"
	"fmt"

	"benchmark-workers/internal/common/errors"
	"benchmark-workers/internal/common/logger"
	"benchmark-workers/internal/common/validation"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "validate-survey-response"

// Handler checks a raw survey payload against the declared field schema
// before anything downstream touches it. An invalid payload is a normal
// outcome, not a job failure: the workflow branches on the valid flag.
type Handler struct {
	config       *Config
	errorHandler *errors.ErrorHandler
	logger       logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	return &Handler{
		config:       config,
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

// Execute runs schema validation. It only errors when the schema itself
// cannot be evaluated; field violations come back in the output.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if input.Response == nil {
		return &Output{
			ResponseID: input.ResponseID,
			Valid:      false,
			Errors: []validation.ValidationError{
				{Field: "response", Message: "response payload is required", Code: "required"},
			},
		}, nil
	}

	result, err := validation.ValidateSurveyPayload(input.Response)
	if err != nil {
		return nil, errors.NewResponseValidationFailedError(err.Error())
	}

	if !result.Valid {
		h.logger.Warn("survey payload rejected", map[string]interface{}{
			"responseId": input.ResponseID,
			"violations": len(result.Errors),
		})
	}

	return &Output{
		ResponseID: input.ResponseID,
		Valid:      result.Valid,
		Errors:     result.Errors,
	}, nil
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
		"jobKey": job.Key,
		"valid":  output.Valid,
	})
}
