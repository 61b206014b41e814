// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"benchmark-workers/internal/benchmark"
	"benchmark-workers/internal/common/camunda"
	"benchmark-workers/internal/common/config"
	"benchmark-workers/internal/common/database"
	"benchmark-workers/internal/common/logger"
	"benchmark-workers/internal/common/observability"
	"benchmark-workers/internal/common/render"
	"benchmark-workers/internal/report"
	"benchmark-workers/internal/store"
	"benchmark-workers/pkg/registry"

	cb "benchmark-workers/internal/workers/benchmark/calculate-benchmark"
	gr "benchmark-workers/internal/workers/report/generate-report"
	grb "benchmark-workers/internal/workers/report/generate-report-batch"
	vsr "benchmark-workers/internal/workers/survey/validate-survey-response"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New("worker-manager")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init Zeebe Client with retry ---
	var camundaClient *camunda.Client
	err = retryWithBackoff(func() error {
		var err error
		camundaClient, err = camunda.NewClientWithConfig(&camunda.ClientConfig{
			GatewayAddress:         cfg.Camunda.BrokerAddress,
			UsePlaintextConnection: true,
			ConnectionTimeout:      10 * time.Second,
			RequestTimeout:         time.Duration(cfg.Camunda.RequestTimeout) * time.Millisecond,
		})
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")

	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zeebeClient := camundaClient.GetClient()
	zapLog.Info("Zeebe client connected successfully")

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		// Test the connection with context
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Elasticsearch with retry ---
	var esClient *database.ElasticsearchClient
	err = retryWithBackoff(func() error {
		var err error
		esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			return err
		}
		// Test the connection
		return esClient.Ping()
	}, 15, 2*time.Second, zapLog, "Elasticsearch connection")

	if err != nil {
		zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
	}
	zapLog.Info("Elasticsearch connected successfully")

	// --- Init Redis with retry ---
	var redis *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redis, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		// Test the connection with context
		return redis.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redis.Close()
	zapLog.Info("Redis connected successfully")

	// --- Load Benchmark Dataset ---
	// A broken dataset would fail every calculation, so refuse to start
	// without it.
	dataset, err := benchmark.Load(cfg.Dataset.Path)
	if err != nil {
		zapLog.Fatal("benchmark dataset load failed",
			zap.Error(err),
			zap.String("path", cfg.Dataset.Path),
		)
	}
	zapLog.Info("Benchmark dataset loaded",
		zap.String("version", dataset.Metadata.Version),
		zap.String("path", cfg.Dataset.Path),
	)

	// --- Build Report Pipeline ---
	calculator := benchmark.NewCalculator(dataset, benchmark.DefaultFallbacks(), log)
	composer := report.NewComposer(dataset)
	renderer := render.NewChromeRenderer(time.Duration(cfg.Reports.RenderTimeout)*time.Millisecond, log)
	generator := report.NewGenerator(calculator, composer, renderer, cfg.Reports.OutputDir, log)

	responseStore := store.NewResponseStore(pg, log)
	reportStore := store.NewReportStore(pg, log)
	statusStore := store.NewStatusStore(
		redis,
		time.Duration(cfg.Reports.StatusTTL)*time.Second,
		time.Duration(cfg.Reports.PreviewCacheTTL)*time.Second,
		log,
	)

	// --- Register Workers ---
	declaredTasks := loadActivityRegistry(zapLog)

	var workers []*camunda.CamundaWorker

	if cfg.Workers[vsr.TaskType].Enabled {
		wcfg := vsr.LoadConfig()
		if t := cfg.Workers[vsr.TaskType].Timeout; t > 0 {
			wcfg.Timeout = time.Duration(t) * time.Millisecond
		}
		handler := vsr.NewHandler(wcfg, log)
		workers = append(workers, startWorker(zeebeClient, vsr.TaskType, cfg.Workers[vsr.TaskType], wcfg.Timeout, handler, zapLog))
	}

	if cfg.Workers[cb.TaskType].Enabled {
		wcfg := cb.LoadConfig()
		if t := cfg.Workers[cb.TaskType].Timeout; t > 0 {
			wcfg.Timeout = time.Duration(t) * time.Millisecond
		}
		handler := cb.NewHandler(wcfg, responseStore, generator, statusStore, log)
		workers = append(workers, startWorker(zeebeClient, cb.TaskType, cfg.Workers[cb.TaskType], wcfg.Timeout, handler, zapLog))
	}

	if cfg.Workers[gr.TaskType].Enabled {
		wcfg := gr.LoadConfig()
		if t := cfg.Workers[gr.TaskType].Timeout; t > 0 {
			wcfg.Timeout = time.Duration(t) * time.Millisecond
		}
		wcfg.ReportIndex = cfg.Database.Elasticsearch.ReportIndex
		handler := gr.NewHandler(wcfg, responseStore, generator, reportStore, statusStore, esClient, log)
		workers = append(workers, startWorker(zeebeClient, gr.TaskType, cfg.Workers[gr.TaskType], wcfg.Timeout, handler, zapLog))
	}

	if cfg.Workers[grb.TaskType].Enabled {
		wcfg := grb.LoadConfig()
		if t := cfg.Workers[grb.TaskType].Timeout; t > 0 {
			wcfg.Timeout = time.Duration(t) * time.Millisecond
		}
		handler := grb.NewHandler(wcfg, responseStore, generator, reportStore, log)
		workers = append(workers, startWorker(zeebeClient, grb.TaskType, cfg.Workers[grb.TaskType], wcfg.Timeout, handler, zapLog))
	}

	for _, w := range workers {
		if len(declaredTasks) > 0 && !declaredTasks[w.TaskType()] {
			zapLog.Warn("worker task type missing from activity registry", zap.String("taskType", w.TaskType()))
		}
	}

	zapLog.Info("All workers registered successfully", zap.Int("count", len(workers)))

	// --- Health & Metrics Server ---
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "healthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "ready",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Health/Metrics server listening on :8080")
		if err := http.ListenAndServe(":8080", nil); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")
	for _, w := range workers {
		w.Stop()
	}

	if err := camundaClient.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}

// loadActivityRegistry reads the activity declarations used for workflow
// documentation. A missing or broken registry only costs the startup
// cross-check, never the process.
func loadActivityRegistry(log *zap.Logger) map[string]bool {
	reg, err := registry.Load("configs/activity-registry.json")
	if err != nil {
		log.Warn("activity registry unavailable, skipping task declaration check", zap.Error(err))
		return nil
	}
	if err := reg.Validate(); err != nil {
		log.Warn("activity registry invalid, skipping task declaration check", zap.Error(err))
		return nil
	}

	log.Info("activity registry loaded",
		zap.Int("activities", len(reg.Activities)),
		zap.String("version", reg.Version),
	)
	return reg.TaskTypes()
}

func startWorker(client zbc.Client, taskType string, wcfg config.WorkerConfig, timeout time.Duration, handler camunda.JobHandler, log *zap.Logger) *camunda.CamundaWorker {
	maxJobsActive := wcfg.MaxJobsActive
	if maxJobsActive == 0 {
		maxJobsActive = 10
	}
	return camunda.NewWorker(client, taskType, maxJobsActive, timeout, handler, log)
}
