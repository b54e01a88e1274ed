package analyzer

import (
	"testing"

	"github.com/filescope/filescope/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeTabularCommaSeparated(t *testing.T) {
	path := writeTempFile(t, "data.csv", []byte("a,b,c\n1,2,3\n4,5,6\n"))

	a := NewContentAnalyzer(DefaultOptions())
	result := a.analyzeTabular(path)
	require.Equal(t, domain.ResultKindTabular, result.Kind)

	stats := result.Tabular
	assert.Equal(t, ",", stats.Delimiter)
	assert.Equal(t, 3, stats.TotalRows)
	assert.Equal(t, 2, stats.DataRows)
	assert.Equal(t, 3, stats.ColumnCount)
	assert.Equal(t, []string{"a", "b", "c"}, stats.Headers)

	require.Equal(t, 3, stats.Columns.Len())
	colA, ok := stats.Columns.Get("a")
	require.True(t, ok)
	assert.Equal(t, 2, colA.NonEmptyCount)
	assert.Equal(t, 2, colA.UniqueCount)
	assert.Equal(t, []string{"1", "4"}, colA.SampleValues)

	// Column iteration preserves header order
	var order []string
	for pair := stats.Columns.Oldest(); pair != nil; pair = pair.Next() {
		order = append(order, pair.Key)
	}
	assert.Equal(t, stats.Headers, order)
}

func TestSniffDelimiter(t *testing.T) {
	tests := []struct {
		name   string
		sample string
		want   rune
	}{
		{"comma", "a,b,c\n1,2,3\n", ','},
		{"semicolon", "a;b;c\n1;2;3\n", ';'},
		{"tab", "a\tb\tc\n1\t2\t3\n", '\t'},
		{"pipe", "a|b|c\n1|2|3\n", '|'},
		{"no delimiter defaults to comma", "alpha\nbeta\n", ','},
		{"empty sample defaults to comma", "", ','},
		// Both delimiters split every line; the comma wins as the earlier
		// candidate on the tied score
		{"tie broken by candidate order", "a,b;c\n1,2;3\n", ','},
		// The semicolon splits all three lines consistently, the comma only two
		{"consistency beats raw frequency", "a;b\nc,d,e;f\ng;h\n", ';'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sniffDelimiter(tt.sample))
		})
	}
}

func TestConsistencyScoreRequiresSplitting(t *testing.T) {
	lines := []string{"plain", "text", "lines"}
	assert.Equal(t, 0, consistencyScore(lines, ','), "mode of 1 field scores zero")
	assert.Equal(t, 3, consistencyScore([]string{"a,b", "c,d", "e,f"}, ','))
}

func TestAnalyzeTabularRaggedRows(t *testing.T) {
	// Second data row is short; missing fields count as empty
	path := writeTempFile(t, "ragged.csv", []byte("x,y,z\n1,2,3\n4\n7,8,9\n"))

	a := NewContentAnalyzer(DefaultOptions())
	result := a.analyzeTabular(path)
	require.Equal(t, domain.ResultKindTabular, result.Kind)

	stats := result.Tabular
	assert.Equal(t, 3, stats.DataRows)

	colY, ok := stats.Columns.Get("y")
	require.True(t, ok)
	assert.Equal(t, 2, colY.NonEmptyCount)
	assert.Equal(t, []string{"2", "", "8"}, colY.SampleValues)
	// "", "2", "8" are three distinct values
	assert.Equal(t, 3, colY.UniqueCount)
}

func TestAnalyzeTabularSampleValueLimit(t *testing.T) {
	path := writeTempFile(t, "many.csv", []byte("n\n1\n2\n3\n4\n5\n"))

	a := NewContentAnalyzer(Options{SampleValueCount: 2})
	result := a.analyzeTabular(path)
	require.Equal(t, domain.ResultKindTabular, result.Kind)

	colN, ok := result.Tabular.Columns.Get("n")
	require.True(t, ok)
	assert.Equal(t, []string{"1", "2"}, colN.SampleValues)
	assert.Equal(t, 5, colN.NonEmptyCount)
	assert.Equal(t, 5, colN.UniqueCount)
}

func TestAnalyzeTabularHeaderOnly(t *testing.T) {
	path := writeTempFile(t, "headers.csv", []byte("a,b,c\n"))

	a := NewContentAnalyzer(DefaultOptions())
	result := a.analyzeTabular(path)
	require.Equal(t, domain.ResultKindTabular, result.Kind)

	stats := result.Tabular
	assert.Equal(t, 1, stats.TotalRows)
	assert.Equal(t, 0, stats.DataRows)
	assert.Equal(t, 0, stats.Columns.Len(), "no column stats without data rows")
}

func TestAnalyzeTabularEmptyFile(t *testing.T) {
	path := writeTempFile(t, "empty.csv", nil)

	a := NewContentAnalyzer(DefaultOptions())
	result := a.analyzeTabular(path)
	require.True(t, result.IsError())
	assert.Equal(t, "CSV file is empty", result.Failure.Message)
}

func TestAnalyzeTabularSniffSampleLimit(t *testing.T) {
	// The sniffing sample covers only the early semicolon rows; the later
	// comma rows are outside the window
	content := "a;b\n1;2\n3;4\n5;6\n" + "x,y,z\nq,r,s\n"
	path := writeTempFile(t, "window.csv", []byte(content))

	a := NewContentAnalyzer(Options{SniffSampleSize: 16})
	result := a.analyzeTabular(path)
	require.Equal(t, domain.ResultKindTabular, result.Kind)
	assert.Equal(t, ";", result.Tabular.Delimiter)
}
