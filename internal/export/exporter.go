// Package export renders a resume to fixed-width HTML, rasterizes it and
// slices the raster into an A4 PDF.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"resume-builder/internal/domain"
)

// Rasterizer captures rendered HTML as a single tall lossless PNG on an
// opaque white background.
type Rasterizer interface {
	Rasterize(ctx context.Context, html string, opts RasterOptions) ([]byte, error)
}

// RasterOptions controls capture. GraceDelay bounds the wait for fonts and
// images; capture proceeds once it elapses even if they have not settled.
type RasterOptions struct {
	WidthPx    int
	Scale      float64
	GraceDelay time.Duration
}

// DefaultRasterOptions renders at A4 width at 96 DPI with 2.5x supersampling.
func DefaultRasterOptions() RasterOptions {
	return RasterOptions{WidthPx: 794, Scale: 2.5, GraceDelay: time.Second}
}

// Result is a finished export.
type Result struct {
	FileName string
	PDF      []byte
	Pages    int
}

type Exporter struct {
	templates *TemplateSet
	raster    Rasterizer
	opts      RasterOptions
	logger    *slog.Logger
}

func NewExporter(ts *TemplateSet, r Rasterizer, opts RasterOptions, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{templates: ts, raster: r, opts: opts, logger: logger.With("component", "export")}
}

// RenderHTML renders doc at the export width. preview marks the output as
// the interactive preview.
func (e *Exporter) RenderHTML(doc domain.ResumeDocument, preview bool) (string, error) {
	return e.templates.Render(doc, e.opts.WidthPx, preview)
}

// Export runs the whole pipeline once. Any failing stage aborts the export
// without partial output; nothing is retried.
func (e *Exporter) Export(ctx context.Context, doc domain.ResumeDocument) (*Result, error) {
	name := FileName(doc.DisplayName())
	log := e.logger.With(slog.String("file_name", name))

	html, err := e.RenderHTML(doc, false)
	if err != nil {
		return nil, e.fail(log, "render", err)
	}
	raster, err := e.raster.Rasterize(ctx, html, e.opts)
	if err != nil {
		return nil, e.fail(log, "rasterize", err)
	}
	pages, err := SlicePages(raster)
	if err != nil {
		return nil, e.fail(log, "paginate", err)
	}
	pdf, err := AssemblePDF(pages)
	if err != nil {
		return nil, e.fail(log, "assemble", err)
	}

	log.Info("export: done", slog.Int("pages", len(pages)), slog.Int("bytes", len(pdf)))
	return &Result{FileName: name, PDF: pdf, Pages: len(pages)}, nil
}

func (e *Exporter) fail(log *slog.Logger, stage string, err error) error {
	log.Error("export: failed", slog.String("stage", stage), slog.String("error", err.Error()))
	return fmt.Errorf("%w: %s: %w", domain.ErrExportFailed, stage, err)
}
