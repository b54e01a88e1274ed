package service

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/filescope/filescope/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// EncodeJSON returns an indented JSON string for the given value.
func EncodeJSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", domain.NewOutputError("failed to marshal JSON", err)
	}
	return string(data), nil
}

// WriteJSON writes indented JSON for the given value to the writer.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return domain.NewOutputError("failed to encode JSON", err)
	}
	return nil
}

// EncodeYAML returns a YAML string for the given value.
func EncodeYAML(v interface{}) (string, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", domain.NewOutputError("failed to marshal YAML", err)
	}
	return string(data), nil
}

// WriteYAML writes YAML for the given value to the writer.
func WriteYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return domain.NewOutputError("failed to encode YAML", err)
	}
	return nil
}

// Standard formatting constants
const (
	BannerWidth    = 60
	SubHeaderWidth = 30
	SectionPadding = 2
)

// sizeUnits caps human-readable sizes at gigabytes
var sizeUnits = []string{"B", "KB", "MB", "GB"}

// FormatFileSize converts a byte count to a human-readable form. Zero bytes
// renders exactly "0 B".
func FormatFileSize(sizeBytes int64) string {
	if sizeBytes == 0 {
		return "0 B"
	}

	size := float64(sizeBytes)
	unit := 0
	for size >= 1024 && unit < len(sizeUnits)-1 {
		size /= 1024
		unit++
	}
	return fmt.Sprintf("%.2f %s", size, sizeUnits[unit])
}

// FormatUtils provides shared formatting utilities for text reports
type FormatUtils struct {
	printer *message.Printer
	titler  cases.Caser
}

// NewFormatUtils creates a new format utilities instance
func NewFormatUtils() *FormatUtils {
	return &FormatUtils{
		printer: message.NewPrinter(language.English),
		titler:  cases.Title(language.English),
	}
}

// FormatBanner creates the report banner
func (f *FormatUtils) FormatBanner(title string) string {
	var builder strings.Builder
	builder.WriteString(strings.Repeat("=", BannerWidth) + "\n")
	builder.WriteString(title + "\n")
	builder.WriteString(strings.Repeat("=", BannerWidth) + "\n")
	return builder.String()
}

// FormatSectionHeader creates a standardized section header
func (f *FormatUtils) FormatSectionHeader(title string) string {
	var builder strings.Builder
	builder.WriteString(strings.ToUpper(title) + "\n")
	builder.WriteString(strings.Repeat("-", SubHeaderWidth) + "\n")
	return builder.String()
}

// FormatFooter closes the report
func (f *FormatUtils) FormatFooter() string {
	return strings.Repeat("=", BannerWidth) + "\n"
}

// FormatLabel creates a "Label: value" line
func (f *FormatUtils) FormatLabel(label string, value interface{}) string {
	return fmt.Sprintf("%s: %v\n", label, value)
}

// FormatLabelWithIndent creates a formatted label with specific indentation
func (f *FormatUtils) FormatLabelWithIndent(indent int, label string, value interface{}) string {
	return fmt.Sprintf("%s%s: %v\n", strings.Repeat(" ", indent), label, value)
}

// FormatCount renders an integer with thousands separators
func (f *FormatUtils) FormatCount(n int) string {
	return f.printer.Sprintf("%d", n)
}

// FormatCount64 renders a 64-bit integer with thousands separators
func (f *FormatUtils) FormatCount64(n int64) string {
	return f.printer.Sprintf("%d", n)
}

// TitleCase capitalizes a category name for display
func (f *FormatUtils) TitleCase(s string) string {
	return f.titler.String(s)
}

// FormatPercentage formats a percentage value consistently
func (f *FormatUtils) FormatPercentage(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}
