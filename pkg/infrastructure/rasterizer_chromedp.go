package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"

	"resume-builder/internal/export"
)

// resourcesReady resolves once web fonts are loaded and every image has
// either loaded or failed.
const resourcesReady = `Promise.all([
  document.fonts ? document.fonts.ready : Promise.resolve(),
  ...Array.from(document.images)
    .filter(img => !img.complete)
    .map(img => new Promise(done => { img.onload = done; img.onerror = done; })),
]).then(() => true)`

// ChromedpRasterizer captures HTML with a headless Chrome started per call.
type ChromedpRasterizer struct {
	chromePath string
	timeout    time.Duration
}

// NewChromedpRasterizer uses chromePath when set, else CHROME_PATH, else
// the chromedp default lookup.
func NewChromedpRasterizer(chromePath string) *ChromedpRasterizer {
	if chromePath == "" {
		chromePath = os.Getenv("CHROME_PATH")
	}
	return &ChromedpRasterizer{chromePath: chromePath, timeout: 60 * time.Second}
}

func (r *ChromedpRasterizer) Rasterize(ctx context.Context, html string, o export.RasterOptions) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("hide-scrollbars", true),
	)
	if r.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.chromePath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()
	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()
	runCtx, cancelRun := context.WithTimeout(cctx, r.timeout)
	defer cancelRun()

	tmpDir, err := os.MkdirTemp("", "resume-export-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)
	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o600); err != nil {
		return nil, err
	}

	var png []byte
	err = chromedp.Run(runCtx,
		// Viewport height is irrelevant; capture goes beyond it.
		emulation.SetDeviceMetricsOverride(int64(o.WidthPx), 1123, o.Scale, false),
		emulation.SetDefaultBackgroundColorOverride().WithColor(&cdp.RGBA{R: 255, G: 255, B: 255, A: 1}),
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		waitForResources(o.GraceDelay),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var height float64
			if err := chromedp.Evaluate(`document.documentElement.scrollHeight`, &height).Do(ctx); err != nil {
				return fmt.Errorf("measure height: %w", err)
			}
			var err error
			png, err = page.CaptureScreenshot().
				WithFormat(page.CaptureScreenshotFormatPng).
				WithCaptureBeyondViewport(true).
				WithFromSurface(true).
				WithClip(&page.Viewport{X: 0, Y: 0, Width: float64(o.WidthPx), Height: math.Ceil(height), Scale: 1}).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	if len(png) == 0 {
		return nil, errors.New("empty capture")
	}
	return png, nil
}

// waitForResources waits for the page's fonts and images, giving up after
// grace. Running out of grace is not an error; capture proceeds with
// whatever has loaded, so the result near the deadline is not deterministic.
func waitForResources(grace time.Duration) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		if grace <= 0 {
			return nil
		}
		wctx, cancel := context.WithTimeout(ctx, grace)
		defer cancel()
		var ready bool
		err := chromedp.Evaluate(resourcesReady, &ready, func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
			return p.WithAwaitPromise(true)
		}).Do(wctx)
		if err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("wait for resources: %w", err)
		}
		return nil
	})
}
