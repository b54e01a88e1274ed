package service

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/filescope/filescope/domain"
)

// timestampLayout renders every human-readable timestamp in the report
const timestampLayout = "2006-01-02 15:04:05"

// maxHeadersShown limits the header list in the detailed report
const maxHeadersShown = 5

// maxColumnDetails limits the per-column lines in the detailed report
const maxColumnDetails = 3

// SerializedReport is the machine-readable report document. It has exactly
// three top-level fields; content_analysis carries the full result variant.
type SerializedReport struct {
	Timestamp       string                `json:"timestamp" yaml:"timestamp"`
	FileInfo        domain.FileMetadata   `json:"file_info" yaml:"file_info"`
	ContentAnalysis domain.AnalysisResult `json:"content_analysis" yaml:"content_analysis"`
}

// BuildSerializedReport assembles the serialized document for a report
func BuildSerializedReport(report *domain.FileReport) SerializedReport {
	return SerializedReport{
		Timestamp:       report.GeneratedAt.Format(time.RFC3339),
		FileInfo:        report.FileInfo,
		ContentAnalysis: report.Result,
	}
}

// ParseSerializedReport decodes a serialized JSON report document
func ParseSerializedReport(data []byte) (*SerializedReport, error) {
	var doc SerializedReport
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, domain.NewParseError("serialized report", err)
	}
	return &doc, nil
}

// ReportFormatterImpl implements the domain.ReportFormatter interface
type ReportFormatterImpl struct{}

// NewReportFormatter creates a new report formatter service
func NewReportFormatter() *ReportFormatterImpl {
	return &ReportFormatterImpl{}
}

// Format renders the report according to the specified format. Rendering is
// pure: the same report and format always produce identical output.
func (f *ReportFormatterImpl) Format(report *domain.FileReport, format domain.OutputFormat) (string, error) {
	switch format {
	case domain.OutputFormatText:
		return f.formatDetailed(report)
	case domain.OutputFormatQuick:
		return f.formatQuick(report), nil
	case domain.OutputFormatJSON:
		return EncodeJSON(BuildSerializedReport(report))
	case domain.OutputFormatYAML:
		return EncodeYAML(BuildSerializedReport(report))
	default:
		return "", domain.NewUnsupportedFormatError(string(format))
	}
}

// Write writes the formatted report to the writer
func (f *ReportFormatterImpl) Write(report *domain.FileReport, format domain.OutputFormat, writer io.Writer) error {
	output, err := f.Format(report, format)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(writer, output); err != nil {
		return domain.NewOutputError("failed to write output", err)
	}
	return nil
}

// formatDetailed renders the multi-section text report. Section order is
// fixed: banner, generation timestamp, file information, content block.
func (f *ReportFormatterImpl) formatDetailed(report *domain.FileReport) (string, error) {
	var builder strings.Builder
	utils := NewFormatUtils()

	builder.WriteString(utils.FormatBanner("FILE ANALYSIS REPORT"))
	builder.WriteString(utils.FormatLabel("Generated on", report.GeneratedAt.Format(timestampLayout)))
	builder.WriteString("\n")

	f.writeFileInformation(&builder, utils, report.FileInfo)
	builder.WriteString("\n")

	if err := f.writeContentBlock(&builder, utils, report.Result); err != nil {
		return "", err
	}

	builder.WriteString("\n")
	builder.WriteString(utils.FormatFooter())
	return builder.String(), nil
}

func (f *ReportFormatterImpl) writeFileInformation(builder *strings.Builder, utils *FormatUtils, info domain.FileMetadata) {
	builder.WriteString(utils.FormatSectionHeader("FILE INFORMATION"))
	builder.WriteString(utils.FormatLabel("Name", info.Name))
	builder.WriteString(utils.FormatLabel("Path", info.Path))
	builder.WriteString(utils.FormatLabel("Size",
		fmt.Sprintf("%s (%s bytes)", FormatFileSize(info.Size), utils.FormatCount64(info.Size))))
	builder.WriteString(utils.FormatLabel("Type", utils.TitleCase(string(info.Category))))
	builder.WriteString(utils.FormatLabel("Extension", info.Extension))
	builder.WriteString(utils.FormatLabel("MIME Type", info.MIMEType))
	builder.WriteString(utils.FormatLabel("Modified", info.ModifiedAt.Format(timestampLayout)))
	builder.WriteString(utils.FormatLabel("Created", info.CreatedAt.Format(timestampLayout)))
}

// writeContentBlock renders the variant-specific section. The switch is
// exhaustive: a result kind without a branch is a rendering bug.
func (f *ReportFormatterImpl) writeContentBlock(builder *strings.Builder, utils *FormatUtils, result domain.AnalysisResult) error {
	switch result.Kind {
	case domain.ResultKindText:
		builder.WriteString(utils.FormatSectionHeader("CONTENT ANALYSIS"))
		f.writeTextStats(builder, utils, result.Text)
	case domain.ResultKindCode:
		builder.WriteString(utils.FormatSectionHeader("CONTENT ANALYSIS"))
		f.writeCodeStats(builder, utils, result.Code)
	case domain.ResultKindTabular:
		builder.WriteString(utils.FormatSectionHeader("CONTENT ANALYSIS"))
		f.writeTabularStats(builder, utils, result.Tabular)
	case domain.ResultKindStructured:
		builder.WriteString(utils.FormatSectionHeader("CONTENT ANALYSIS"))
		f.writeStructuredStats(builder, utils, result.Structured)
	case domain.ResultKindUnsupported:
		builder.WriteString(utils.FormatSectionHeader("CONTENT ANALYSIS"))
		builder.WriteString(result.Unsupported.Message + "\n")
		if result.Unsupported.Suggestion != "" {
			builder.WriteString(utils.FormatLabel("Suggestion", result.Unsupported.Suggestion))
		}
	case domain.ResultKindError:
		builder.WriteString(utils.FormatSectionHeader("CONTENT ANALYSIS ERROR"))
		builder.WriteString(utils.FormatLabel("Error", result.Failure.Message))
	default:
		return domain.NewValidationError(fmt.Sprintf("unknown result kind: %s", result.Kind))
	}
	return nil
}

func (f *ReportFormatterImpl) writeTextStats(builder *strings.Builder, utils *FormatUtils, stats *domain.TextStats) {
	builder.WriteString(utils.FormatLabel("Lines", utils.FormatCount(stats.TotalLines)))
	builder.WriteString(utils.FormatLabel("Words", utils.FormatCount(stats.TotalWords)))
	builder.WriteString(utils.FormatLabel("Characters", utils.FormatCount(stats.TotalCharacters)))
	builder.WriteString(utils.FormatLabel("Characters (no spaces)", utils.FormatCount(stats.CharactersNoSpaces)))
	builder.WriteString(utils.FormatLabel("Average Words Per Line", fmt.Sprintf("%.2f", stats.AvgWordsPerLine)))
	if len(stats.CommonWords) > 0 {
		builder.WriteString("Most Common Words:\n")
		for _, wc := range stats.CommonWords {
			builder.WriteString(utils.FormatLabelWithIndent(SectionPadding, wc.Word, fmt.Sprintf("%d times", wc.Count)))
		}
	}
	builder.WriteString(utils.FormatLabel("Encoding", stats.EncodingUsed))
}

func (f *ReportFormatterImpl) writeCodeStats(builder *strings.Builder, utils *FormatUtils, stats *domain.CodeStats) {
	builder.WriteString(utils.FormatLabel("Imports", stats.Imports))
	builder.WriteString(utils.FormatLabel("Functions", stats.Functions))
	builder.WriteString(utils.FormatLabel("Classes", stats.Classes))
	builder.WriteString(utils.FormatLabel("Comments", stats.Comments))
	builder.WriteString(utils.FormatLabel("Docstrings", stats.Docstrings))
	builder.WriteString(utils.FormatLabel("Estimated Complexity", stats.Complexity))
	builder.WriteString(utils.FormatLabel("Total Lines", utils.FormatCount(stats.TotalLines)))
	builder.WriteString(utils.FormatLabel("Blank Lines", utils.FormatCount(stats.BlankLines)))
	if stats.TotalLines > 0 {
		ratio := float64(stats.Comments) / float64(stats.TotalLines) * 100
		builder.WriteString(utils.FormatLabel("Comment Ratio", utils.FormatPercentage(ratio)))
	}
}

func (f *ReportFormatterImpl) writeTabularStats(builder *strings.Builder, utils *FormatUtils, stats *domain.TabularStats) {
	builder.WriteString(utils.FormatLabel("Total Rows", utils.FormatCount(stats.TotalRows)))
	builder.WriteString(utils.FormatLabel("Data Rows", utils.FormatCount(stats.DataRows)))
	builder.WriteString(utils.FormatLabel("Columns", stats.ColumnCount))

	if len(stats.Headers) > 0 {
		shown := stats.Headers
		if len(shown) > maxHeadersShown {
			shown = shown[:maxHeadersShown]
		}
		builder.WriteString(utils.FormatLabel("Headers", strings.Join(shown, ", ")))
		if len(stats.Headers) > maxHeadersShown {
			builder.WriteString(fmt.Sprintf("  ... and %d more\n", len(stats.Headers)-maxHeadersShown))
		}
	}

	builder.WriteString(utils.FormatLabel("Delimiter", fmt.Sprintf("%q", stats.Delimiter)))

	if stats.Columns != nil && stats.Columns.Len() > 0 {
		builder.WriteString("Column Details:\n")
		shown := 0
		for pair := stats.Columns.Oldest(); pair != nil && shown < maxColumnDetails; pair = pair.Next() {
			builder.WriteString(utils.FormatLabelWithIndent(SectionPadding, pair.Key,
				fmt.Sprintf("%d filled, %d unique", pair.Value.NonEmptyCount, pair.Value.UniqueCount)))
			shown++
		}
	}
}

func (f *ReportFormatterImpl) writeStructuredStats(builder *strings.Builder, utils *FormatUtils, stats *domain.StructuredStats) {
	builder.WriteString(utils.FormatLabel("Root Type", stats.RootType))
	switch stats.RootType {
	case "object":
		builder.WriteString(utils.FormatLabel("Keys", stats.KeyCount))
		if len(stats.SampleKeys) > 0 {
			builder.WriteString(utils.FormatLabel("Key Names", strings.Join(stats.SampleKeys, ", ")))
		}
	case "array":
		builder.WriteString(utils.FormatLabel("Array Length", stats.KeyCount))
		if len(stats.ItemTypes) > 0 {
			builder.WriteString(utils.FormatLabel("Item Types", strings.Join(stats.ItemTypes, ", ")))
		}
	}
	builder.WriteString(utils.FormatLabel("Estimated Size",
		fmt.Sprintf("%s characters", utils.FormatCount(stats.EstimatedSize))))
}

// formatQuick renders the one-line summary
func (f *ReportFormatterImpl) formatQuick(report *domain.FileReport) string {
	utils := NewFormatUtils()
	name := report.FileInfo.Name
	size := FormatFileSize(report.FileInfo.Size)

	switch report.Result.Kind {
	case domain.ResultKindCode:
		return fmt.Sprintf("%s (%s) - Python file with %d functions, %d classes",
			name, size, report.Result.Code.Functions, report.Result.Code.Classes)
	case domain.ResultKindText:
		return fmt.Sprintf("%s (%s) - Text file with %d words, %d lines",
			name, size, report.Result.Text.TotalWords, report.Result.Text.TotalLines)
	case domain.ResultKindTabular:
		return fmt.Sprintf("%s (%s) - CSV with %d rows, %d columns",
			name, size, report.Result.Tabular.DataRows, report.Result.Tabular.ColumnCount)
	default:
		return fmt.Sprintf("%s (%s) - %s file",
			name, size, utils.TitleCase(string(report.FileInfo.Category)))
	}
}
