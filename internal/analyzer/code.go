package analyzer

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/filescope/filescope/domain"
)

// complexityKeywords is the fixed keyword set summed into the complexity
// estimate. Counting is case-sensitive raw substring counting over the whole
// content, not token-aware; this inherited quirk is intentional and must not
// be "corrected" to a real cyclomatic count.
var complexityKeywords = []string{
	"if ", "elif ", "else:", "for ", "while ", "try:", "except:", "with ",
}

// analyzeCode computes lexical structure counts for a Python source file.
// Only line-prefix heuristics are used, no syntactic parsing.
func (a *ContentAnalyzer) analyzeCode(path string) domain.AnalysisResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.NewErrorResult(fmt.Sprintf("error analyzing Python file: %v", err))
	}
	if !utf8.Valid(data) {
		return domain.NewErrorResult("error analyzing Python file: content is not valid UTF-8")
	}
	content := string(data)
	lines := strings.Split(content, "\n")

	stats := &domain.CodeStats{TotalLines: len(lines)}
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			stats.BlankLines++
		case strings.HasPrefix(trimmed, "import ") || strings.HasPrefix(trimmed, "from "):
			stats.Imports++
		case strings.HasPrefix(trimmed, "def "):
			stats.Functions++
		case strings.HasPrefix(trimmed, "class "):
			stats.Classes++
		case strings.HasPrefix(trimmed, "#"):
			stats.Comments++
		}
	}

	stats.Docstrings = strings.Count(content, `"""`)/2 + strings.Count(content, `'''`)/2

	for _, keyword := range complexityKeywords {
		stats.Complexity += strings.Count(content, keyword)
	}

	return domain.NewCodeResult(stats)
}
