package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

func sampleTabularStats() *TabularStats {
	columns := orderedmap.New[string, ColumnStats]()
	columns.Set("name", ColumnStats{NonEmptyCount: 2, UniqueCount: 2, SampleValues: []string{"ada", "bob"}})
	columns.Set("age", ColumnStats{NonEmptyCount: 1, UniqueCount: 2, SampleValues: []string{"42", ""}})
	return &TabularStats{
		TotalRows:   3,
		DataRows:    2,
		ColumnCount: 2,
		Headers:     []string{"name", "age"},
		Delimiter:   ",",
		Columns:     columns,
	}
}

func TestAnalysisResultValidate(t *testing.T) {
	tests := []struct {
		name    string
		result  AnalysisResult
		wantErr bool
	}{
		{"text variant", NewTextResult(&TextStats{TotalLines: 1}), false},
		{"code variant", NewCodeResult(&CodeStats{Functions: 2}), false},
		{"tabular variant", NewTabularResult(sampleTabularStats()), false},
		{"structured variant", NewStructuredResult(&StructuredStats{RootType: "object"}), false},
		{"unsupported variant", NewUnsupportedResult(CategoryImage, "no analyzer", "use other tools"), false},
		{"error variant", NewErrorResult("boom"), false},
		{"no variant", AnalysisResult{Kind: ResultKindText}, true},
		{"two variants", AnalysisResult{Kind: ResultKindText, Text: &TextStats{}, Code: &CodeStats{}}, true},
		{"kind mismatch", AnalysisResult{Kind: ResultKindCode, Text: &TextStats{}}, true},
		{"unknown kind", AnalysisResult{Kind: "mystery", Text: &TextStats{}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.result.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAnalysisResultJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		result AnalysisResult
	}{
		{"text", NewTextResult(&TextStats{
			TotalLines:      2,
			TotalWords:      5,
			AvgWordsPerLine: 2.5,
			CommonWords:     []WordCount{{Word: "hello", Count: 3}},
			EncodingUsed:    "utf-8",
		})},
		{"code", NewCodeResult(&CodeStats{
			Imports: 1, Functions: 2, Classes: 1, Complexity: 4, TotalLines: 30,
		})},
		{"structured object", NewStructuredResult(&StructuredStats{
			RootType: "object", KeyCount: 2, SampleKeys: []string{"x", "y"}, EstimatedSize: 19,
		})},
		{"structured array", NewStructuredResult(&StructuredStats{
			RootType: "array", KeyCount: 3, ItemTypes: []string{"number"}, EstimatedSize: 7,
		})},
		{"unsupported", NewUnsupportedResult(CategoryArchive, "binary archive file - content analysis not available", "use specialized tools for detailed analysis of this file type")},
		{"error", NewErrorResult("error analyzing JSON file: unexpected end of JSON input")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.result)
			require.NoError(t, err)

			var restored AnalysisResult
			require.NoError(t, json.Unmarshal(data, &restored))
			assert.Equal(t, tt.result, restored)
			assert.NoError(t, restored.Validate())
		})
	}
}

func TestAnalysisResultTabularJSONRoundTrip(t *testing.T) {
	original := NewTabularResult(sampleTabularStats())

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var restored AnalysisResult
	require.NoError(t, json.Unmarshal(data, &restored))
	require.Equal(t, ResultKindTabular, restored.Kind)

	stats := restored.Tabular
	assert.Equal(t, original.Tabular.Headers, stats.Headers)
	assert.Equal(t, original.Tabular.Delimiter, stats.Delimiter)

	var keys []string
	for pair := stats.Columns.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	assert.Equal(t, []string{"name", "age"}, keys, "column order survives serialization")

	age, ok := stats.Columns.Get("age")
	require.True(t, ok)
	assert.Equal(t, 1, age.NonEmptyCount)
	assert.Equal(t, []string{"42", ""}, age.SampleValues)
}

func TestAnalysisResultJSONCarriesKind(t *testing.T) {
	data, err := json.Marshal(NewErrorResult("boom"))
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "error", doc["kind"])
	assert.Equal(t, "boom", doc["error"])
}

func TestAnalysisResultOmitsEmptyOptionalFields(t *testing.T) {
	data, err := json.Marshal(NewStructuredResult(&StructuredStats{RootType: "number", EstimatedSize: 2}))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "sample_keys")
	assert.NotContains(t, string(data), "item_types")

	data, err = json.Marshal(NewUnsupportedResult(CategoryUnknown, "file type not supported for content analysis", ""))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "suggestion")
}

func TestAnalysisResultMarshalRejectsInvalid(t *testing.T) {
	_, err := json.Marshal(AnalysisResult{Kind: ResultKindText})
	assert.Error(t, err)
}

func TestAnalysisResultUnmarshalUnknownKind(t *testing.T) {
	var r AnalysisResult
	err := json.Unmarshal([]byte(`{"kind":"hologram"}`), &r)
	assert.Error(t, err)
}

func TestAnalysisResultYAMLCarriesKindInline(t *testing.T) {
	data, err := yaml.Marshal(NewTextResult(&TextStats{TotalLines: 4, EncodingUsed: "utf-8"}))
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &doc))
	assert.Equal(t, "text", doc["kind"])
	assert.Equal(t, 4, doc["total_lines"])
	assert.Equal(t, "utf-8", doc["encoding_used"])
}
