package app

import (
	"context"
	"io"
	"path/filepath"
	"time"

	"github.com/filescope/filescope/domain"
	"github.com/filescope/filescope/service"
)

// AnalyzeUseCase orchestrates the analysis workflow for one file: metadata
// snapshot, size validation, content analysis, rendering, and output.
type AnalyzeUseCase struct {
	metadata  domain.MetadataProvider
	analyzer  domain.ContentAnalyzer
	formatter domain.ReportFormatter
	writer    domain.ReportWriter
	now       func() time.Time
}

// NewAnalyzeUseCase creates a new analyze use case
func NewAnalyzeUseCase(
	metadata domain.MetadataProvider,
	analyzer domain.ContentAnalyzer,
	formatter domain.ReportFormatter,
	writer domain.ReportWriter,
) *AnalyzeUseCase {
	return &AnalyzeUseCase{
		metadata:  metadata,
		analyzer:  analyzer,
		formatter: formatter,
		writer:    writer,
		now:       time.Now,
	}
}

// WithClock overrides the report timestamp source. Tests use it to make
// rendering deterministic.
func (uc *AnalyzeUseCase) WithClock(now func() time.Time) *AnalyzeUseCase {
	uc.now = now
	return uc
}

// Execute performs the complete analysis workflow for a single file
func (uc *AnalyzeUseCase) Execute(ctx context.Context, req domain.AnalyzeRequest) error {
	if err := uc.validateRequest(req); err != nil {
		return err
	}

	report, err := uc.Analyze(ctx, req)
	if err != nil {
		return err
	}

	outputPath := req.OutputPath
	if outputPath == "" && req.Save {
		dir := filepath.Dir(report.FileInfo.Path)
		outputPath = filepath.Join(dir, service.ReportFileName(report.FileInfo.Path, req.OutputFormat))
	}

	return uc.writer.Write(req.OutputWriter, outputPath, req.OutputFormat, func(w io.Writer) error {
		return uc.formatter.Write(report, req.OutputFormat, w)
	})
}

// Analyze runs the pipeline up to (but not including) rendering and returns
// the report. Analysis failures inside sub-analyzers are carried in the
// result variant; only metadata acquisition and size validation fail here.
func (uc *AnalyzeUseCase) Analyze(ctx context.Context, req domain.AnalyzeRequest) (*domain.FileReport, error) {
	meta, err := uc.metadata.Snapshot(req.Path)
	if err != nil {
		return nil, err
	}

	if req.MaxFileSize > 0 && meta.Size > req.MaxFileSize {
		return nil, domain.NewFileTooLargeError(meta.Path, meta.Size, req.MaxFileSize)
	}

	result := uc.analyzer.Analyze(ctx, meta.Path, meta)
	return &domain.FileReport{
		FileInfo:    meta,
		Result:      result,
		GeneratedAt: uc.now(),
	}, nil
}

// validateRequest checks the request before doing any work
func (uc *AnalyzeUseCase) validateRequest(req domain.AnalyzeRequest) error {
	if req.Path == "" {
		return domain.NewValidationError("no file path specified")
	}
	if _, err := domain.ParseOutputFormat(string(req.OutputFormat)); err != nil {
		return err
	}
	if req.OutputWriter == nil && req.OutputPath == "" && !req.Save {
		return domain.NewValidationError("no output destination specified")
	}
	return nil
}
