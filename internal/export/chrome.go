package export

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/jonathan/cv-builder/internal/rendering"
)

// DefaultSettleDelay is how long the page is left to load fonts and lay out before capture.
const DefaultSettleDelay = 500 * time.Millisecond

// ChromeRasterizer implements Rasterizer with a headless Chrome started per call.
// Requires Chrome/Chromium to be installed on the system.
type ChromeRasterizer struct {
	SettleDelay time.Duration
	// ExecPath overrides the browser binary; empty uses chromedp's lookup.
	ExecPath string
}

// NewChromeRasterizer returns a rasterizer with the default settle delay.
func NewChromeRasterizer() *ChromeRasterizer {
	return &ChromeRasterizer{SettleDelay: DefaultSettleDelay}
}

// run starts a fresh browser, runs actions and tears the browser down again.
func (c *ChromeRasterizer) run(ctx context.Context, actions ...chromedp.Action) error {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if c.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(c.ExecPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	return chromedp.Run(browserCtx, actions...)
}

// loadHTML replaces the blank page's document with html.
func loadHTML(html string) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		tree, err := page.GetFrameTree().Do(ctx)
		if err != nil {
			return err
		}
		return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
	})
}

// Capture renders html off-screen and screenshots the element matching selector at
// CaptureScale.
func (c *ChromeRasterizer) Capture(ctx context.Context, html, selector string, widthPx int) ([]byte, error) {
	settle := c.SettleDelay
	if settle <= 0 {
		settle = DefaultSettleDelay
	}

	var png []byte
	err := c.run(ctx,
		chromedp.EmulateViewport(int64(widthPx), rendering.PageMinHeightPx),
		chromedp.Navigate("about:blank"),
		loadHTML(html),
		chromedp.WaitReady("body", chromedp.ByQuery),
		// Let web fonts and layout settle before measuring the target
		chromedp.Sleep(settle),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var nodes []*cdp.Node
			if err := chromedp.Nodes(selector, &nodes, chromedp.ByQuery, chromedp.AtLeast(0)).Do(ctx); err != nil {
				return err
			}
			if len(nodes) == 0 {
				return ErrTargetNotFound
			}
			return nil
		}),
		chromedp.ScreenshotScale(selector, CaptureScale, &png, chromedp.ByQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("browser capture failed: %w", err)
	}
	return png, nil
}

// Compose prints a single page of the given paper size with png as its only content,
// scaled to the page width.
func (c *ChromeRasterizer) Compose(ctx context.Context, png []byte, paper PaperSize) ([]byte, error) {
	html := fmt.Sprintf(`<!DOCTYPE html>
<html><head><meta charset="utf-8"><style>
@page { size: %.2fpt %.2fpt; margin: 0; }
html, body { margin: 0; padding: 0; }
img { display: block; width: %.2fpt; max-height: %.2fpt; object-fit: contain; object-position: top left; }
</style></head>
<body><img src="data:image/png;base64,%s"></body></html>`,
		paper.Width, paper.Height, paper.Width, paper.Height, base64.StdEncoding.EncodeToString(png))

	var pdf []byte
	err := c.run(ctx,
		chromedp.Navigate("about:blank"),
		loadHTML(html),
		chromedp.WaitReady("img", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paper.WidthInches()).
				WithPaperHeight(paper.HeightInches()).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				WithPageRanges("1").
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = data
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("browser pdf print failed: %w", err)
	}
	return pdf, nil
}
