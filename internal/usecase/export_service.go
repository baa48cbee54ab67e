package usecase

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/export"
	"resume-builder/internal/preview"
	"resume-builder/internal/quality"
)

// KeyFunc names the archive object of an exported file.
type KeyFunc func(userID, fileName string, at time.Time) string

// ExportService gates and runs PDF exports of stored resumes.
type ExportService struct {
	resumes  *ResumeService
	exporter Exporter
	archive  Archive
	keyFor   KeyFunc
	logger   *slog.Logger
	now      func() time.Time

	mu      sync.Mutex
	running map[string]struct{}
}

// NewExportService wires the pipeline. archive may be nil.
func NewExportService(resumes *ResumeService, exporter Exporter, archive Archive, keyFor KeyFunc, logger *slog.Logger) *ExportService {
	return &ExportService{
		resumes:  resumes,
		exporter: exporter,
		archive:  archive,
		keyFor:   keyFor,
		logger:   logger.With("component", "export"),
		now:      time.Now,
		running:  map[string]struct{}{},
	}
}

// Check evaluates an unsaved document.
func (s *ExportService) Check(doc domain.ResumeDocument) quality.Report {
	return quality.Evaluate(doc)
}

// Export runs the readiness gate and, when it passes, the export pipeline.
// The report is returned alongside ErrExportBlocked and
// ErrConfirmationRequired so the caller can show it.
func (s *ExportService) Export(ctx context.Context, userID, id string, confirmed bool) (*export.Result, quality.Report, error) {
	r, err := s.resumes.Get(ctx, userID, id)
	if err != nil {
		return nil, quality.Report{}, err
	}
	report := quality.Evaluate(r.ResumeDocument)
	switch quality.Decide(report, confirmed) {
	case quality.Blocked:
		return nil, report, domain.ErrExportBlocked
	case quality.NeedsConfirmation:
		return nil, report, domain.ErrConfirmationRequired
	}

	if !s.begin(id) {
		return nil, report, domain.ErrExportInProgress
	}
	defer s.end(id)

	res, err := s.exporter.Export(ctx, r.ResumeDocument)
	if err != nil {
		return nil, report, err
	}
	s.store(ctx, userID, id, res)
	return res, report, nil
}

// Preview renders the interactive preview of a stored resume with
// placeholder content in the empty fields.
func (s *ExportService) Preview(ctx context.Context, userID, id string) (string, error) {
	r, err := s.resumes.Get(ctx, userID, id)
	if err != nil {
		return "", err
	}
	doc, _ := preview.Overlay(r.ResumeDocument)
	return s.exporter.RenderHTML(doc, true)
}

func (s *ExportService) begin(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.running[id]; busy {
		return false
	}
	s.running[id] = struct{}{}
	return true
}

func (s *ExportService) end(id string) {
	s.mu.Lock()
	delete(s.running, id)
	s.mu.Unlock()
}

// store archives the PDF. Failures are logged only.
func (s *ExportService) store(ctx context.Context, userID, id string, res *export.Result) {
	if s.archive == nil || s.keyFor == nil {
		return
	}
	key := s.keyFor(userID, res.FileName, s.now())
	if err := s.archive.Put(ctx, key, bytes.NewReader(res.PDF), "application/pdf"); err != nil {
		s.logger.Warn("archive failed", "resume_id", id, "key", key, "error", err.Error())
		return
	}
	s.logger.Info("export archived", "resume_id", id, "key", key)
}
