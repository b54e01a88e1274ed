package domain

import (
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ResultKind discriminates the closed set of analysis result variants
type ResultKind string

const (
	ResultKindText        ResultKind = "text"
	ResultKindCode        ResultKind = "code"
	ResultKindTabular     ResultKind = "tabular"
	ResultKindStructured  ResultKind = "structured"
	ResultKindUnsupported ResultKind = "unsupported"
	ResultKindError       ResultKind = "error"
)

// WordCount is a single entry of the common-word ranking
type WordCount struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// TextStats holds generic lexical statistics for arbitrary text
type TextStats struct {
	TotalLines         int         `json:"total_lines" yaml:"total_lines"`
	TotalWords         int         `json:"total_words" yaml:"total_words"`
	TotalCharacters    int         `json:"total_characters" yaml:"total_characters"`
	CharactersNoSpaces int         `json:"characters_no_spaces" yaml:"characters_no_spaces"`
	AvgWordsPerLine    float64     `json:"average_words_per_line" yaml:"average_words_per_line"`
	CommonWords        []WordCount `json:"common_words" yaml:"common_words"`
	EncodingUsed       string      `json:"encoding_used" yaml:"encoding_used"`
}

// CodeStats holds lexical structure counts for a Python source file
type CodeStats struct {
	Imports    int `json:"imports" yaml:"imports"`
	Functions  int `json:"functions" yaml:"functions"`
	Classes    int `json:"classes" yaml:"classes"`
	Comments   int `json:"comments" yaml:"comments"`
	Docstrings int `json:"docstrings" yaml:"docstrings"`
	Complexity int `json:"estimated_complexity" yaml:"estimated_complexity"`
	TotalLines int `json:"total_lines" yaml:"total_lines"`
	BlankLines int `json:"blank_lines" yaml:"blank_lines"`
}

// ColumnStats holds per-column statistics of a delimited file
type ColumnStats struct {
	NonEmptyCount int      `json:"non_empty_count" yaml:"non_empty_count"`
	UniqueCount   int      `json:"unique_count" yaml:"unique_count"`
	SampleValues  []string `json:"sample_values" yaml:"sample_values"`
}

// ColumnMap maps header names to column statistics while preserving the
// header order of the source file
type ColumnMap = orderedmap.OrderedMap[string, ColumnStats]

// TabularStats holds structure and per-column statistics of a delimited file.
// Columns has exactly the keys of Headers, in the same order.
type TabularStats struct {
	TotalRows   int        `json:"total_rows" yaml:"total_rows"`
	DataRows    int        `json:"data_rows" yaml:"data_rows"`
	ColumnCount int        `json:"columns" yaml:"columns"`
	Headers     []string   `json:"headers" yaml:"headers"`
	Delimiter   string     `json:"delimiter" yaml:"delimiter"`
	Columns     *ColumnMap `json:"column_analysis" yaml:"column_analysis"`
}

// StructuredStats holds the shallow structural summary of a hierarchical
// document. SampleKeys is set for object roots, ItemTypes for array roots.
type StructuredStats struct {
	RootType      string   `json:"root_type" yaml:"root_type"`
	KeyCount      int      `json:"key_count" yaml:"key_count"`
	SampleKeys    []string `json:"sample_keys,omitempty" yaml:"sample_keys,omitempty"`
	ItemTypes     []string `json:"item_types,omitempty" yaml:"item_types,omitempty"`
	EstimatedSize int      `json:"estimated_size_chars" yaml:"estimated_size_chars"`
}

// UnsupportedInfo describes a file whose category has no content analyzer
type UnsupportedInfo struct {
	Category   FileCategory `json:"category" yaml:"category"`
	Message    string       `json:"message" yaml:"message"`
	Suggestion string       `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// AnalysisFailure carries the message of a failed analyzer invocation
type AnalysisFailure struct {
	Message string `json:"error" yaml:"error"`
}

// AnalysisResult is the closed tagged output of one analyzer invocation.
// Exactly one variant pointer matching Kind is non-nil. Results are created
// by a single analyzer call, consumed by a single render call, and never
// mutated or cached in between.
type AnalysisResult struct {
	Kind        ResultKind
	Text        *TextStats
	Code        *CodeStats
	Tabular     *TabularStats
	Structured  *StructuredStats
	Unsupported *UnsupportedInfo
	Failure     *AnalysisFailure
}

// NewTextResult wraps text statistics into a result
func NewTextResult(stats *TextStats) AnalysisResult {
	return AnalysisResult{Kind: ResultKindText, Text: stats}
}

// NewCodeResult wraps code structure counts into a result
func NewCodeResult(stats *CodeStats) AnalysisResult {
	return AnalysisResult{Kind: ResultKindCode, Code: stats}
}

// NewTabularResult wraps tabular statistics into a result
func NewTabularResult(stats *TabularStats) AnalysisResult {
	return AnalysisResult{Kind: ResultKindTabular, Tabular: stats}
}

// NewStructuredResult wraps a structural summary into a result
func NewStructuredResult(stats *StructuredStats) AnalysisResult {
	return AnalysisResult{Kind: ResultKindStructured, Structured: stats}
}

// NewUnsupportedResult marks a file category as not analyzable
func NewUnsupportedResult(category FileCategory, message, suggestion string) AnalysisResult {
	return AnalysisResult{
		Kind:        ResultKindUnsupported,
		Unsupported: &UnsupportedInfo{Category: category, Message: message, Suggestion: suggestion},
	}
}

// NewErrorResult converts an internal analyzer failure into a result
func NewErrorResult(message string) AnalysisResult {
	return AnalysisResult{Kind: ResultKindError, Failure: &AnalysisFailure{Message: message}}
}

// IsError reports whether the result carries an analysis failure
func (r AnalysisResult) IsError() bool {
	return r.Kind == ResultKindError
}

// Validate checks that exactly the variant named by Kind is populated
func (r AnalysisResult) Validate() error {
	var want, got int
	for _, set := range []bool{
		r.Text != nil, r.Code != nil, r.Tabular != nil,
		r.Structured != nil, r.Unsupported != nil, r.Failure != nil,
	} {
		if set {
			got++
		}
	}
	want = 1
	if got != want {
		return NewValidationError(fmt.Sprintf("result must carry exactly one variant, found %d", got))
	}
	switch r.Kind {
	case ResultKindText:
		if r.Text == nil {
			return NewValidationError("kind is text but text stats are nil")
		}
	case ResultKindCode:
		if r.Code == nil {
			return NewValidationError("kind is code but code stats are nil")
		}
	case ResultKindTabular:
		if r.Tabular == nil {
			return NewValidationError("kind is tabular but tabular stats are nil")
		}
	case ResultKindStructured:
		if r.Structured == nil {
			return NewValidationError("kind is structured but structured stats are nil")
		}
	case ResultKindUnsupported:
		if r.Unsupported == nil {
			return NewValidationError("kind is unsupported but unsupported info is nil")
		}
	case ResultKindError:
		if r.Failure == nil {
			return NewValidationError("kind is error but failure is nil")
		}
	default:
		return NewValidationError(fmt.Sprintf("unknown result kind: %s", r.Kind))
	}
	return nil
}

// resultEnvelope carries the discriminator during deserialization
type resultEnvelope struct {
	Kind ResultKind `json:"kind" yaml:"kind"`
}

type textEnvelope struct {
	Kind ResultKind `json:"kind" yaml:"kind"`

	TextStats `yaml:",inline"`
}

type codeEnvelope struct {
	Kind ResultKind `json:"kind" yaml:"kind"`

	CodeStats `yaml:",inline"`
}

type tabularEnvelope struct {
	Kind ResultKind `json:"kind" yaml:"kind"`

	TabularStats `yaml:",inline"`
}

type structuredEnvelope struct {
	Kind ResultKind `json:"kind" yaml:"kind"`

	StructuredStats `yaml:",inline"`
}

type unsupportedEnvelope struct {
	Kind ResultKind `json:"kind" yaml:"kind"`

	UnsupportedInfo `yaml:",inline"`
}

type failureEnvelope struct {
	Kind ResultKind `json:"kind" yaml:"kind"`

	AnalysisFailure `yaml:",inline"`
}

// envelope returns the serialization wrapper for the active variant. The
// switch is exhaustive over ResultKind so adding a variant fails loudly here.
func (r AnalysisResult) envelope() (interface{}, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	switch r.Kind {
	case ResultKindText:
		return textEnvelope{r.Kind, *r.Text}, nil
	case ResultKindCode:
		return codeEnvelope{r.Kind, *r.Code}, nil
	case ResultKindTabular:
		return tabularEnvelope{r.Kind, *r.Tabular}, nil
	case ResultKindStructured:
		return structuredEnvelope{r.Kind, *r.Structured}, nil
	case ResultKindUnsupported:
		return unsupportedEnvelope{r.Kind, *r.Unsupported}, nil
	case ResultKindError:
		return failureEnvelope{r.Kind, *r.Failure}, nil
	default:
		return nil, NewValidationError(fmt.Sprintf("unknown result kind: %s", r.Kind))
	}
}

// MarshalJSON serializes the active variant with all its fields, preceded by
// the kind discriminator
func (r AnalysisResult) MarshalJSON() ([]byte, error) {
	env, err := r.envelope()
	if err != nil {
		return nil, err
	}
	return json.Marshal(env)
}

// UnmarshalJSON restores the variant named by the kind discriminator
func (r *AnalysisResult) UnmarshalJSON(data []byte) error {
	var env resultEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	switch env.Kind {
	case ResultKindText:
		stats := &TextStats{}
		if err := json.Unmarshal(data, stats); err != nil {
			return err
		}
		*r = NewTextResult(stats)
	case ResultKindCode:
		stats := &CodeStats{}
		if err := json.Unmarshal(data, stats); err != nil {
			return err
		}
		*r = NewCodeResult(stats)
	case ResultKindTabular:
		stats := &TabularStats{}
		if err := json.Unmarshal(data, stats); err != nil {
			return err
		}
		*r = NewTabularResult(stats)
	case ResultKindStructured:
		stats := &StructuredStats{}
		if err := json.Unmarshal(data, stats); err != nil {
			return err
		}
		*r = NewStructuredResult(stats)
	case ResultKindUnsupported:
		info := &UnsupportedInfo{}
		if err := json.Unmarshal(data, info); err != nil {
			return err
		}
		*r = AnalysisResult{Kind: ResultKindUnsupported, Unsupported: info}
	case ResultKindError:
		failure := &AnalysisFailure{}
		if err := json.Unmarshal(data, failure); err != nil {
			return err
		}
		*r = AnalysisResult{Kind: ResultKindError, Failure: failure}
	default:
		return NewValidationError(fmt.Sprintf("unknown result kind: %s", env.Kind))
	}
	return nil
}

// MarshalYAML serializes the active variant the same way MarshalJSON does
func (r AnalysisResult) MarshalYAML() (interface{}, error) {
	return r.envelope()
}
