package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/filescope/filescope/domain"
)

// ReportFileName derives the persisted report name from the analyzed file:
// <stem>_analysis.<ext> where the extension follows the output format.
func ReportFileName(analyzedPath string, format domain.OutputFormat) string {
	base := filepath.Base(analyzedPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return fmt.Sprintf("%s_analysis.%s", stem, format.Extension())
}

// FileOutputWriter writes reports to files or provided writers.
type FileOutputWriter struct {
	status io.Writer // where to print status messages (typically stderr)
}

// NewFileOutputWriter creates a new FileOutputWriter.
func NewFileOutputWriter(status io.Writer) *FileOutputWriter {
	if status == nil {
		status = os.Stderr
	}
	return &FileOutputWriter{status: status}
}

// Write implements domain.ReportWriter.
func (w *FileOutputWriter) Write(writer io.Writer, outputPath string, format domain.OutputFormat, writeFunc func(io.Writer) error) error {
	var out io.Writer

	// If outputPath is provided, write to file; otherwise use writer.
	if outputPath != "" {
		file, err := os.Create(outputPath)
		if err != nil {
			return domain.NewOutputError(fmt.Sprintf("failed to create output file: %s", outputPath), err)
		}
		defer file.Close()
		out = file
	} else {
		out = writer
	}

	if err := writeFunc(out); err != nil {
		return domain.NewOutputError("failed to write output", err)
	}

	// Only emit a status message when writing to file
	if outputPath != "" {
		absPath, err := filepath.Abs(outputPath)
		if err != nil {
			absPath = outputPath
		}
		formatName := strings.ToUpper(string(format))
		fmt.Fprintf(w.status, "%s report saved: %s\n", formatName, absPath)
	}

	return nil
}
