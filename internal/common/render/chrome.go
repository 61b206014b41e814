// internal/common/render/chrome.go
package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"benchmark-workers/internal/common/logger"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ChromeRenderer turns an HTML document into a PDF file using headless
// Chrome. A fresh browser context is created per render: Chrome tabs are not
// safe to share across concurrent renders, and a crashed render must not
// poison the next one.
type ChromeRenderer struct {
	timeout time.Duration
	logger  logger.Logger
}

func NewChromeRenderer(timeout time.Duration, log logger.Logger) *ChromeRenderer {
	return &ChromeRenderer{
		timeout: timeout,
		logger:  log.WithFields(map[string]interface{}{"component": "chrome-renderer"}),
	}
}

// newContext creates a fresh chromedp context (one browser, one tab at a time)
func (r *ChromeRenderer) newContext(parent context.Context) (context.Context, context.CancelFunc) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("log-level", "3"), // suppress Chrome logs
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(parent, opts...)
	ctx, cancelCtx := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))

	cancel := func() {
		cancelCtx()
		cancelAlloc()
	}
	return ctx, cancel
}

// RenderPDF renders the given HTML into a PDF at outputPath. The render is
// bounded by the configured timeout regardless of the caller's context.
func (r *ChromeRenderer) RenderPDF(ctx context.Context, html string, outputPath string) error {
	ctx, cancelTimeout := context.WithTimeout(ctx, r.timeout)
	defer cancelTimeout()

	browserCtx, cancel := r.newContext(ctx)
	defer cancel()

	started := time.Now()

	var pdf []byte
	err := chromedp.Run(browserCtx, chromedp.Tasks{
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).  // A4 inches
				WithPaperHeight(11.69).
				WithMarginTop(0.4).
				WithMarginBottom(0.4).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	})
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("render timed out after %s: %w", r.timeout, err)
		}
		return fmt.Errorf("chrome render failed: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(outputPath, pdf, 0o644); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}

	r.logger.Info("pdf rendered", map[string]interface{}{
		"path":     outputPath,
		"bytes":    len(pdf),
		"duration": time.Since(started).String(),
	})
	return nil
}
