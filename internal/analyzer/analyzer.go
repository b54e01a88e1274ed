package analyzer

import (
	"context"
	"fmt"
	"strings"

	"github.com/filescope/filescope/domain"
)

// Options carries the tunable analyzer settings. Tests inject reduced
// values; production code uses DefaultOptions.
type Options struct {
	// CommonWordCount is the length of the common-word ranking
	CommonWordCount int

	// MinWordLength is the minimum token length counted as a common word
	MinWordLength int

	// StopWords are tokens excluded from the common-word ranking
	StopWords []string

	// SniffSampleSize is the number of characters read for delimiter
	// sniffing
	SniffSampleSize int

	// SampleValueCount is the number of raw values kept per column
	SampleValueCount int

	// SampleKeyCount is the number of root keys or item type tags kept in
	// a structural summary
	SampleKeyCount int
}

// DefaultOptions returns the analyzer settings used when no configuration
// overrides them
func DefaultOptions() Options {
	return Options{
		CommonWordCount:  domain.DefaultCommonWordCount,
		MinWordLength:    domain.DefaultMinWordLength,
		SniffSampleSize:  domain.DefaultSniffSampleSize,
		SampleValueCount: domain.DefaultSampleValueCount,
		SampleKeyCount:   domain.DefaultSampleKeyCount,
	}
}

// ContentAnalyzer routes a file to exactly one type-specific analyzer based
// on its category and extension.
type ContentAnalyzer struct {
	opts Options
}

// NewContentAnalyzer creates a content analyzer with the given options
func NewContentAnalyzer(opts Options) *ContentAnalyzer {
	if opts.CommonWordCount <= 0 {
		opts.CommonWordCount = domain.DefaultCommonWordCount
	}
	if opts.MinWordLength <= 0 {
		opts.MinWordLength = domain.DefaultMinWordLength
	}
	if opts.SniffSampleSize <= 0 {
		opts.SniffSampleSize = domain.DefaultSniffSampleSize
	}
	if opts.SampleValueCount <= 0 {
		opts.SampleValueCount = domain.DefaultSampleValueCount
	}
	if opts.SampleKeyCount <= 0 {
		opts.SampleKeyCount = domain.DefaultSampleKeyCount
	}
	return &ContentAnalyzer{opts: opts}
}

// Analyze dispatches the file to a sub-analyzer and always returns a result.
// Sub-analyzer failures, including panics, surface as the error variant.
func (a *ContentAnalyzer) Analyze(ctx context.Context, path string, meta domain.FileMetadata) (result domain.AnalysisResult) {
	defer func() {
		if r := recover(); r != nil {
			result = domain.NewErrorResult(fmt.Sprintf("analysis failed: %v", r))
		}
	}()

	if err := ctx.Err(); err != nil {
		return domain.NewErrorResult(fmt.Sprintf("analysis canceled: %v", err))
	}

	if meta.Category != domain.CategoryText {
		if meta.Category == domain.CategoryUnknown {
			return domain.NewUnsupportedResult(meta.Category,
				"file type not supported for content analysis", "")
		}
		return domain.NewUnsupportedResult(meta.Category,
			fmt.Sprintf("binary %s file - content analysis not available", meta.Category),
			"use specialized tools for detailed analysis of this file type")
	}

	switch strings.ToLower(meta.Extension) {
	case ".py":
		return a.analyzeCode(path)
	case ".csv":
		return a.analyzeTabular(path)
	case ".json":
		return a.analyzeStructured(path)
	default:
		return a.analyzeText(path)
	}
}
