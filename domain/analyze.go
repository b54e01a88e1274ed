package domain

import (
	"context"
	"io"
	"time"
)

// FileCategory is the coarse type classification of a file
type FileCategory string

const (
	CategoryText     FileCategory = "text"
	CategoryImage    FileCategory = "image"
	CategoryDocument FileCategory = "document"
	CategoryArchive  FileCategory = "archive"
	CategoryUnknown  FileCategory = "unknown"
)

// FileMetadata is an immutable snapshot of a file's identity captured once
// per request. Analyzers and renderers read it but never modify it.
type FileMetadata struct {
	Name          string       `json:"name" yaml:"name"`
	Path          string       `json:"path" yaml:"path"`
	Size          int64        `json:"size" yaml:"size"`
	SizeFormatted string       `json:"size_formatted" yaml:"size_formatted"`
	Extension     string       `json:"extension" yaml:"extension"`
	Category      FileCategory `json:"type" yaml:"type"`
	MIMEType      string       `json:"mime_type" yaml:"mime_type"`
	ModifiedAt    time.Time    `json:"modified_time" yaml:"modified_time"`
	CreatedAt     time.Time    `json:"created_time" yaml:"created_time"`
}

// FileReport pairs the metadata snapshot with the analysis outcome and the
// generation timestamp shared by every renderer.
type FileReport struct {
	FileInfo    FileMetadata
	Result      AnalysisResult
	GeneratedAt time.Time
}

// AnalyzeRequest represents a request to analyze a single file
type AnalyzeRequest struct {
	// Path of the file to analyze
	Path string

	// Output configuration
	OutputFormat OutputFormat
	OutputWriter io.Writer
	OutputPath   string // Path to save the report (empty means write to OutputWriter)
	Save         bool   // Persist the report next to the analyzed file

	// Upstream size cap in bytes; files over this limit are rejected
	// before analysis starts
	MaxFileSize int64

	// Configuration
	ConfigPath string
}

// MetadataProvider captures a FileMetadata snapshot for a validated path.
// Failure to obtain the snapshot is the only fatal condition in the pipeline.
type MetadataProvider interface {
	Snapshot(path string) (FileMetadata, error)
}

// ContentAnalyzer dispatches a file to exactly one type-specific analyzer.
// Analyze is total: internal failures surface as the error variant of the
// result, never as a returned error.
type ContentAnalyzer interface {
	Analyze(ctx context.Context, path string, meta FileMetadata) AnalysisResult
}

// ReportFormatter converts a FileReport into one of the supported output
// representations.
type ReportFormatter interface {
	// Format renders the report in the given format
	Format(report *FileReport, format OutputFormat) (string, error)

	// Write renders the report and writes it to the writer
	Write(report *FileReport, format OutputFormat, writer io.Writer) error
}

// FileCollector finds analyzable files beneath the given paths
type FileCollector interface {
	// CollectFiles expands files and directories into the list of files to
	// analyze, honoring include/exclude glob patterns
	CollectFiles(paths []string, recursive bool, includePatterns, excludePatterns []string) ([]string, error)

	// FileExists reports whether path names an existing regular file
	FileExists(path string) (bool, error)
}
