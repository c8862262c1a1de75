// Package export turns a CV Document into a single-page PDF holding one rasterized image
// of the rendered page.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync/atomic"
	"time"

	"github.com/jonathan/cv-builder/internal/rendering"
	"github.com/jonathan/cv-builder/internal/types"
	"go.uber.org/zap"
)

// CaptureScale is the device scale factor used when rasterizing the page.
const CaptureScale = 2

// Rasterizer renders HTML to images and wraps images into PDF pages.
type Rasterizer interface {
	// Capture renders html at the given viewport width and returns a PNG of the element
	// matching selector. It returns ErrTargetNotFound when nothing matches.
	Capture(ctx context.Context, html, selector string, widthPx int) ([]byte, error)
	// Compose returns a one-page PDF of the given paper size containing png scaled to the
	// page width.
	Compose(ctx context.Context, png []byte, paper PaperSize) ([]byte, error)
}

// Artifact is the result of a successful export.
type Artifact struct {
	Filename string
	PDF      []byte
	Image    []byte
}

// Save writes the PDF into dir under the artifact's filename and returns the full path.
func (a *Artifact) Save(dir string) (string, error) {
	return writeArtifact(dir, a.Filename, a.PDF)
}

// SaveImage writes the captured PNG into dir next to the PDF, named after it.
func (a *Artifact) SaveImage(dir string) (string, error) {
	return writeArtifact(dir, strings.TrimSuffix(a.Filename, ".pdf")+".png", a.Image)
}

func writeArtifact(dir, name string, data []byte) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", &Error{Message: fmt.Sprintf("failed to create output directory %s", dir), Cause: err}
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", &Error{Message: fmt.Sprintf("failed to write %s", path), Cause: err}
	}
	return path, nil
}

// Options configures an Exporter.
type Options struct {
	Paper   PaperSize
	Timeout time.Duration
}

// Exporter runs the export pipeline. At most one export runs at a time; the in-flight flag
// is independent of the store, so edits can continue while an export is running.
type Exporter struct {
	rasterizer Rasterizer
	logger     *zap.Logger
	opts       Options
	inFlight   atomic.Bool
}

// New returns an Exporter. Zero options default to A4 paper and no extra timeout.
func New(rasterizer Rasterizer, logger *zap.Logger, opts Options) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Paper.Width == 0 || opts.Paper.Height == 0 {
		opts.Paper = A4
	}
	return &Exporter{rasterizer: rasterizer, logger: logger, opts: opts}
}

// InFlight reports whether an export is currently running.
func (e *Exporter) InFlight() bool {
	return e.inFlight.Load()
}

// Export renders doc in print mode, rasterizes the export target and embeds the image in
// a single page. Every failure, including a panic inside the rasterizer, comes back as an
// error; the exporter is ready for another attempt as soon as Export returns.
func (e *Exporter) Export(ctx context.Context, doc types.Document) (artifact *Artifact, err error) {
	if !e.inFlight.CompareAndSwap(false, true) {
		return nil, ErrInProgress
	}
	defer e.inFlight.Store(false)

	defer func() {
		if r := recover(); r != nil {
			artifact = nil
			err = &Error{Message: fmt.Sprintf("export panicked: %v", r)}
		}
		if err != nil {
			e.logger.Warn("export failed", zap.Error(err))
		}
	}()

	if e.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.opts.Timeout)
		defer cancel()
	}

	started := time.Now()
	filename := Filename(doc.PersonalInfo.FullName)
	e.logger.Info("export started",
		zap.String("filename", filename),
		zap.String("template", string(doc.Styles.Template)),
		zap.String("paper", e.opts.Paper.Name),
	)

	html, err := rendering.RenderHTML(doc, rendering.HTMLOptions{Standalone: true, PrintMode: true})
	if err != nil {
		return nil, &Error{Message: "failed to render page", Cause: err}
	}

	png, err := e.rasterizer.Capture(ctx, html, "."+rendering.ExportTargetClass, rendering.PageWidthPx)
	if err != nil {
		return nil, &Error{Message: "failed to capture page", Cause: err}
	}
	if len(png) == 0 {
		return nil, &Error{Message: "capture produced an empty image"}
	}

	pdf, err := e.rasterizer.Compose(ctx, png, e.opts.Paper)
	if err != nil {
		return nil, &Error{Message: "failed to compose pdf", Cause: err}
	}

	e.logger.Info("export finished",
		zap.String("filename", filename),
		zap.Int("imageBytes", len(png)),
		zap.Int("pdfBytes", len(pdf)),
		zap.Duration("elapsed", time.Since(started)),
	)

	return &Artifact{Filename: filename, PDF: pdf, Image: png}, nil
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Filename derives the artifact name from the owner's full name: every run of whitespace
// becomes one underscore and "_CV.pdf" is appended.
func Filename(fullName string) string {
	return whitespaceRun.ReplaceAllString(fullName, "_") + "_CV.pdf"
}

// Notice is the transient message shown to the user after an export attempt.
type Notice struct {
	Title       string
	Description string
	Failed      bool
}

// NoticeFor describes the outcome of an export. A nil error is a success.
func NoticeFor(err error) Notice {
	switch {
	case err == nil:
		return Notice{
			Title:       "PDF exported successfully!",
			Description: "Your CV has been downloaded.",
		}
	case errors.Is(err, ErrInProgress):
		return Notice{
			Title:       "Export in progress",
			Description: "Please wait for the current export to finish.",
			Failed:      true,
		}
	default:
		return Notice{
			Title:       "Export failed",
			Description: "There was an error exporting your CV. Please try again.",
			Failed:      true,
		}
	}
}
