// internal/store/status.go
package store

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"benchmark-workers/internal/common/database"
	"benchmark-workers/internal/common/logger"
	"benchmark-workers/internal/models"
	"benchmark-workers/internal/report"
)

const (
	statusKeyPrefix  = "report:status:"
	previewKeyPrefix = "benchmark:preview:"
)

// StatusStore tracks per-response report generation state in Redis, and
// caches preview calculations so repeated preview requests skip the
// calculator.
type StatusStore struct {
	redis      *database.RedisClient
	statusTTL  time.Duration
	previewTTL time.Duration
	logger     logger.Logger
}

func NewStatusStore(rdb *database.RedisClient, statusTTL, previewTTL time.Duration, log logger.Logger) *StatusStore {
	return &StatusStore{
		redis:      rdb,
		statusTTL:  statusTTL,
		previewTTL: previewTTL,
		logger:     log.WithFields(map[string]interface{}{"component": "status-store"}),
	}
}

// SetStatus writes the current generation state for a response.
func (s *StatusStore) SetStatus(ctx context.Context, status models.ReportStatus) error {
	status.UpdatedAt = time.Now().UTC()

	payload, err := json.Marshal(status)
	if err != nil {
		return fmt.Errorf("marshal report status: %w", err)
	}

	if err := s.redis.Set(ctx, statusKeyPrefix+status.ResponseID, payload, s.statusTTL); err != nil {
		return fmt.Errorf("set report status %s: %w", status.ResponseID, err)
	}
	return nil
}

// GetStatus returns the tracked state, or nil when nothing is tracked.
func (s *StatusStore) GetStatus(ctx context.Context, responseID string) (*models.ReportStatus, error) {
	raw, err := s.redis.Get(ctx, statusKeyPrefix+responseID)
	if err != nil {
		if stderrors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get report status %s: %w", responseID, err)
	}

	var status models.ReportStatus
	if err := json.Unmarshal([]byte(raw), &status); err != nil {
		return nil, fmt.Errorf("unmarshal report status %s: %w", responseID, err)
	}
	return &status, nil
}

// CachePreview stores a computed preview. Cache write failures are logged,
// not returned: the preview was already computed and the cache is an
// optimization.
func (s *StatusStore) CachePreview(ctx context.Context, preview report.Preview) {
	payload, err := json.Marshal(preview)
	if err != nil {
		s.logger.WithError(err).Warn("preview marshal failed, skipping cache", map[string]interface{}{
			"responseId": preview.ResponseID,
		})
		return
	}

	if err := s.redis.Set(ctx, previewKeyPrefix+preview.ResponseID, payload, s.previewTTL); err != nil {
		s.logger.WithError(err).Warn("preview cache write failed", map[string]interface{}{
			"responseId": preview.ResponseID,
		})
	}
}

// GetCachedPreview returns a cached preview, or nil on a miss.
func (s *StatusStore) GetCachedPreview(ctx context.Context, responseID string) (*report.Preview, error) {
	raw, err := s.redis.Get(ctx, previewKeyPrefix+responseID)
	if err != nil {
		if stderrors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cached preview %s: %w", responseID, err)
	}

	var preview report.Preview
	if err := json.Unmarshal([]byte(raw), &preview); err != nil {
		return nil, fmt.Errorf("unmarshal cached preview %s: %w", responseID, err)
	}
	return &preview, nil
}
