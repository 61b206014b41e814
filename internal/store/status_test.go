// internal/store/status_test.go
package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"benchmark-workers/internal/benchmark"
	"benchmark-workers/internal/common/database"
	"benchmark-workers/internal/models"
	"benchmark-workers/internal/report"
)

// ==========================
// Test Helper Functions
// ==========================

func newTestStatusStore(t *testing.T) (*StatusStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	t.Cleanup(func() { client.Close() })

	store := NewStatusStore(client, 24*time.Hour, 15*time.Minute, newTestLogger(t))
	return store, mr
}

// ==========================
// Status Tests
// ==========================

func TestStatusStore_SetAndGetStatus(t *testing.T) {
	store, _ := newTestStatusStore(t)
	ctx := context.Background()

	err := store.SetStatus(ctx, models.ReportStatus{
		ResponseID: "resp-001",
		Status:     models.ReportStatusPending,
	})
	require.NoError(t, err)

	status, err := store.GetStatus(ctx, "resp-001")
	require.NoError(t, err)
	require.NotNil(t, status)
	assert.Equal(t, models.ReportStatusPending, status.Status)
	assert.False(t, status.UpdatedAt.IsZero())

	err = store.SetStatus(ctx, models.ReportStatus{
		ResponseID: "resp-001",
		Status:     models.ReportStatusSucceeded,
		ReportID:   "rep-001",
	})
	require.NoError(t, err)

	status, err = store.GetStatus(ctx, "resp-001")
	require.NoError(t, err)
	assert.Equal(t, models.ReportStatusSucceeded, status.Status)
	assert.Equal(t, "rep-001", status.ReportID)
}

func TestStatusStore_GetStatus_MissReturnsNil(t *testing.T) {
	store, _ := newTestStatusStore(t)

	status, err := store.GetStatus(context.Background(), "untracked")
	assert.NoError(t, err)
	assert.Nil(t, status)
}

func TestStatusStore_StatusExpires(t *testing.T) {
	store, mr := newTestStatusStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetStatus(ctx, models.ReportStatus{
		ResponseID: "resp-001",
		Status:     models.ReportStatusFailed,
		Error:      "render timed out",
	}))

	mr.FastForward(25 * time.Hour)

	status, err := store.GetStatus(ctx, "resp-001")
	assert.NoError(t, err)
	assert.Nil(t, status)
}

// ==========================
// Preview Cache Tests
// ==========================

func TestStatusStore_PreviewCacheRoundTrip(t *testing.T) {
	store, _ := newTestStatusStore(t)
	ctx := context.Background()

	preview := report.Preview{
		ResponseID: "resp-001",
		PeerGroup: benchmark.PeerGroup{
			IndustryKey:     "manufacturing",
			RevenueKey:      "25m-100m",
			SampleSizeLabel: "Manufacturing, $25M-$100M revenue",
		},
		Findings: []report.HeadlineFinding{
			{Label: "Trade Credit Insurance", Value: "Not insured", Status: report.StatusWarning, Insight: "x"},
		},
		Recommendations: []report.PreviewRecommendation{
			{Priority: 1, Title: "Evaluate Trade Credit Insurance", Reason: "y"},
		},
		DatasetVersion: "2025.1",
	}

	store.CachePreview(ctx, preview)

	cached, err := store.GetCachedPreview(ctx, "resp-001")
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, preview, *cached)
}

func TestStatusStore_PreviewCacheMissAndExpiry(t *testing.T) {
	store, mr := newTestStatusStore(t)
	ctx := context.Background()

	cached, err := store.GetCachedPreview(ctx, "resp-404")
	assert.NoError(t, err)
	assert.Nil(t, cached)

	store.CachePreview(ctx, report.Preview{ResponseID: "resp-001", DatasetVersion: "2025.1"})
	mr.FastForward(16 * time.Minute)

	cached, err = store.GetCachedPreview(ctx, "resp-001")
	assert.NoError(t, err)
	assert.Nil(t, cached)
}

// ==========================
// Redis Failure Tests
// ==========================

// miniredis cannot inject command failures, so the error paths use a mocked
// client instead.
func newMockedStatusStore(t *testing.T) (*StatusStore, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	store := NewStatusStore(&database.RedisClient{Client: client}, 24*time.Hour, 15*time.Minute, newTestLogger(t))
	return store, mock
}

func TestStatusStore_SetStatus_RedisFailure(t *testing.T) {
	store, mock := newMockedStatusStore(t)

	mock.Regexp().ExpectSet("report:status:resp-001", `.*`, 24*time.Hour).SetErr(assert.AnError)

	err := store.SetStatus(context.Background(), models.ReportStatus{
		ResponseID: "resp-001",
		Status:     models.ReportStatusPending,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "set report status")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatusStore_GetStatus_RedisFailure(t *testing.T) {
	store, mock := newMockedStatusStore(t)

	mock.ExpectGet("report:status:resp-001").SetErr(assert.AnError)

	_, err := store.GetStatus(context.Background(), "resp-001")
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatusStore_GetStatus_CorruptPayload(t *testing.T) {
	store, mock := newMockedStatusStore(t)

	mock.ExpectGet("report:status:resp-001").SetVal("{not json")

	_, err := store.GetStatus(context.Background(), "resp-001")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal report status")
}

func TestStatusStore_CachePreview_WriteFailureIsSwallowed(t *testing.T) {
	store, mock := newMockedStatusStore(t)

	mock.Regexp().ExpectSet("benchmark:preview:resp-001", `.*`, 15*time.Minute).SetErr(assert.AnError)

	// Must not panic or surface the error; the cache is best effort.
	store.CachePreview(context.Background(), report.Preview{ResponseID: "resp-001"})
	assert.NoError(t, mock.ExpectationsWereMet())
}
