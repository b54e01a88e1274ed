package analyzer

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/filescope/filescope/domain"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// delimiterCandidates is the small fixed set sniffed from the sample
var delimiterCandidates = []rune{',', ';', '\t', '|'}

// analyzeTabular sniffs the field delimiter from a short sample, re-parses
// the whole file with it, and computes per-column statistics
func (a *ContentAnalyzer) analyzeTabular(path string) domain.AnalysisResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.NewErrorResult(fmt.Sprintf("error analyzing CSV file: %v", err))
	}
	if !utf8.Valid(data) {
		return domain.NewErrorResult("error analyzing CSV file: content is not valid UTF-8")
	}
	content := string(data)

	sample := content
	if runes := []rune(content); len(runes) > a.opts.SniffSampleSize {
		sample = string(runes[:a.opts.SniffSampleSize])
	}
	delimiter := sniffDelimiter(sample)

	reader := csv.NewReader(strings.NewReader(content))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	rows, err := reader.ReadAll()
	if err != nil {
		return domain.NewErrorResult(fmt.Sprintf("error analyzing CSV file: %v", err))
	}
	if len(rows) == 0 {
		return domain.NewErrorResult("CSV file is empty")
	}

	headers := rows[0]
	dataRows := rows[1:]

	stats := &domain.TabularStats{
		TotalRows:   len(rows),
		DataRows:    len(dataRows),
		ColumnCount: len(headers),
		Headers:     headers,
		Delimiter:   string(delimiter),
		Columns:     orderedmap.New[string, domain.ColumnStats](),
	}

	// Column statistics require both headers and at least one data row
	if len(dataRows) > 0 && len(headers) > 0 {
		for i, header := range headers {
			stats.Columns.Set(header, a.columnStats(dataRows, i))
		}
	}

	return domain.NewTabularResult(stats)
}

// columnStats gathers field i from every data row; rows shorter than i
// contribute the empty string
func (a *ContentAnalyzer) columnStats(dataRows [][]string, i int) domain.ColumnStats {
	values := make([]string, 0, len(dataRows))
	for _, row := range dataRows {
		if i < len(row) {
			values = append(values, row[i])
		} else {
			values = append(values, "")
		}
	}

	nonEmpty := 0
	unique := make(map[string]bool, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			nonEmpty++
		}
		unique[v] = true
	}

	samples := values
	if len(samples) > a.opts.SampleValueCount {
		samples = samples[:a.opts.SampleValueCount]
	}

	return domain.ColumnStats{
		NonEmptyCount: nonEmpty,
		UniqueCount:   len(unique),
		SampleValues:  samples,
	}
}

// sniffDelimiter picks the candidate producing the most consistent per-line
// field count across the sample. Candidates are compared by the number of
// lines agreeing with their modal field count; the earlier candidate wins a
// tie.
func sniffDelimiter(sample string) rune {
	lines := nonEmptyLines(sample)
	if len(lines) == 0 {
		return ','
	}

	best := ','
	bestScore := -1
	for _, candidate := range delimiterCandidates {
		score := consistencyScore(lines, candidate)
		if score > bestScore {
			best = candidate
			bestScore = score
		}
	}
	return best
}

func nonEmptyLines(sample string) []string {
	var lines []string
	for _, line := range strings.Split(sample, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// consistencyScore counts lines matching the modal field count for the
// candidate. Candidates that never split a line score zero.
func consistencyScore(lines []string, candidate rune) int {
	counts := make(map[int]int)
	for _, line := range lines {
		fields := strings.Count(line, string(candidate)) + 1
		counts[fields]++
	}

	mode, agreement := 0, 0
	for fields, n := range counts {
		if n > agreement || (n == agreement && fields > mode) {
			mode = fields
			agreement = n
		}
	}
	if mode < 2 {
		return 0
	}
	return agreement
}
