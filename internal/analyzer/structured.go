package analyzer

import (
	"encoding/json"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/buger/jsonparser"
	"github.com/filescope/filescope/domain"
)

// analyzeStructured parses the whole file as one JSON document and
// classifies only the root, one level deep. There is no recursive descent.
func (a *ContentAnalyzer) analyzeStructured(path string) domain.AnalysisResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.NewErrorResult(fmt.Sprintf("error analyzing JSON file: %v", err))
	}

	var value interface{}
	if err := json.Unmarshal(data, &value); err != nil {
		return domain.NewErrorResult(fmt.Sprintf("error analyzing JSON file: %v", err))
	}

	stats := &domain.StructuredStats{}
	switch v := value.(type) {
	case map[string]interface{}:
		stats.RootType = "object"
		stats.KeyCount = len(v)
		stats.SampleKeys = a.rootKeysInOrder(data)
	case []interface{}:
		stats.RootType = "array"
		stats.KeyCount = len(v)
		stats.ItemTypes = a.itemTypeTags(v)
	default:
		stats.RootType = typeTag(value)
	}

	// Canonical re-serialization; its character length stands in for the
	// document size
	canonical, err := json.Marshal(value)
	if err != nil {
		return domain.NewErrorResult(fmt.Sprintf("error analyzing JSON file: %v", err))
	}
	stats.EstimatedSize = utf8.RuneCount(canonical)

	return domain.NewStructuredResult(stats)
}

// rootKeysInOrder extracts the first keys of the root object in document
// order. encoding/json maps lose ordering, so the raw bytes are walked again.
func (a *ContentAnalyzer) rootKeysInOrder(data []byte) []string {
	keys := make([]string, 0, a.opts.SampleKeyCount)
	_ = jsonparser.ObjectEach(data, func(key []byte, _ []byte, _ jsonparser.ValueType, _ int) error {
		if len(keys) < a.opts.SampleKeyCount {
			keys = append(keys, string(key))
		}
		return nil
	})
	return keys
}

// itemTypeTags collects the distinct type tags of the first sampled
// elements, in first-encountered order
func (a *ContentAnalyzer) itemTypeTags(items []interface{}) []string {
	limit := a.opts.SampleKeyCount
	if len(items) < limit {
		limit = len(items)
	}

	var tags []string
	seen := make(map[string]bool)
	for _, item := range items[:limit] {
		tag := typeTag(item)
		if !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
	}
	return tags
}

// typeTag names the JSON type of a decoded value
func typeTag(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case map[string]interface{}:
		return "object"
	case []interface{}:
		return "array"
	default:
		return "unknown"
	}
}
