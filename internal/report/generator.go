// internal/report/generator.go
package report

import (
	"context"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"benchmark-workers/internal/benchmark"
	"benchmark-workers/internal/common/logger"
	"benchmark-workers/internal/common/metrics"
	"benchmark-workers/internal/models"
)

// Renderer turns an HTML page into a file on disk. The production
// implementation drives a headless browser; tests substitute a fake.
type Renderer interface {
	RenderPDF(ctx context.Context, html, outputPath string) error
}

// Generator runs the full per-response pipeline: calculate, compose,
// render, summarize. Render failures surface in the returned metadata with
// Success=false; Generate itself never returns an error because a failed
// report is an expected outcome, not an exceptional one.
type Generator struct {
	calculator *benchmark.Calculator
	composer   *Composer
	renderer   Renderer
	outputDir  string
	logger     logger.Logger
}

func NewGenerator(calculator *benchmark.Calculator, composer *Composer, renderer Renderer, outputDir string, log logger.Logger) *Generator {
	return &Generator{
		calculator: calculator,
		composer:   composer,
		renderer:   renderer,
		outputDir:  outputDir,
		logger:     log.WithFields(map[string]interface{}{"component": "report-generator"}),
	}
}

// Generate produces one report file and its outcome summary.
func (g *Generator) Generate(ctx context.Context, resp *models.SurveyResponse) models.ReportMeta {
	started := time.Now()
	calc := g.calculator.Calculate(resp)
	doc := g.composer.Compose(resp, calc, started)

	meta := models.ReportMeta{
		ResponseID:           resp.ID,
		CompanyName:          resp.CompanyName,
		GeneratedAt:          started,
		RecommendationsCount: len(calc.Recommendations),
		PeerGroup:            calc.PeerGroup.SampleSizeLabel,
	}

	html, err := RenderHTML(doc)
	if err != nil {
		return g.fail(meta, started, err)
	}

	filename := reportFilename(resp.CompanyName, started)
	path := filepath.Join(g.outputDir, filename)

	if err := g.renderer.RenderPDF(ctx, html, path); err != nil {
		return g.fail(meta, started, err)
	}

	meta.Success = true
	meta.ReportID = uuid.New().String()
	meta.Filename = filename
	meta.Path = path
	meta.DurationMillis = time.Since(started).Milliseconds()

	metrics.ReportsGenerated.WithLabelValues("success").Inc()
	metrics.RenderDuration.Observe(time.Since(started).Seconds())
	g.logger.Info("report generated", map[string]interface{}{
		"responseId": resp.ID,
		"company":    resp.CompanyName,
		"filename":   filename,
		"durationMs": meta.DurationMillis,
	})

	return meta
}

func (g *Generator) fail(meta models.ReportMeta, started time.Time, err error) models.ReportMeta {
	meta.Success = false
	meta.Error = err.Error()
	meta.DurationMillis = time.Since(started).Milliseconds()

	metrics.ReportsGenerated.WithLabelValues("failure").Inc()
	g.logger.WithError(err).Error("report generation failed", map[string]interface{}{
		"responseId": meta.ResponseID,
		"company":    meta.CompanyName,
	})

	return meta
}

// GenerateBatch processes responses strictly one at a time. The renderer is
// a single headless browser and is not safe for concurrent use. One item's
// failure never halts the rest; each outcome stays attributable to its
// response ID.
func (g *Generator) GenerateBatch(ctx context.Context, responses []*models.SurveyResponse) models.BatchSummary {
	summary := models.BatchSummary{
		Total:   len(responses),
		Results: make([]models.ReportMeta, 0, len(responses)),
	}

	for _, resp := range responses {
		meta := g.Generate(ctx, resp)
		if meta.Success {
			summary.Successful++
		} else {
			summary.Failed++
		}
		summary.Results = append(summary.Results, meta)
	}

	g.logger.Info("batch complete", map[string]interface{}{
		"total":      summary.Total,
		"successful": summary.Successful,
		"failed":     summary.Failed,
	})

	return summary
}

// PreviewRecommendation carries only the title and leading reason of a full
// recommendation.
type PreviewRecommendation struct {
	Priority int    `json:"priority"`
	Title    string `json:"title"`
	Reason   string `json:"reason,omitempty"`
}

// Preview is the reduced projection of a calculation: peer group, the four
// headline findings, and trimmed recommendations. No rendering happens.
type Preview struct {
	ResponseID      string                  `json:"responseId"`
	PeerGroup       benchmark.PeerGroup     `json:"peerGroup"`
	Findings        []HeadlineFinding       `json:"findings"`
	Recommendations []PreviewRecommendation `json:"recommendations"`
	DatasetVersion  string                  `json:"datasetVersion"`
}

// GeneratePreview computes the numeric result without touching the
// renderer.
func (g *Generator) GeneratePreview(resp *models.SurveyResponse) Preview {
	calc := g.calculator.Calculate(resp)

	recs := make([]PreviewRecommendation, 0, len(calc.Recommendations))
	for _, rec := range calc.Recommendations {
		preview := PreviewRecommendation{
			Priority: rec.Priority,
			Title:    rec.Title,
		}
		if len(rec.Why) > 0 {
			preview.Reason = rec.Why[0]
		}
		recs = append(recs, preview)
	}

	return Preview{
		ResponseID:      resp.ID,
		PeerGroup:       calc.PeerGroup,
		Findings:        headlineFindings(calc),
		Recommendations: recs,
		DatasetVersion:  calc.DatasetVersion,
	}
}
