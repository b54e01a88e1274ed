package analyzer

import (
	"fmt"
	"math"
	"os"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/filescope/filescope/domain"
)

// wordPattern matches the tokens counted in the common-word ranking:
// alphabetic runs of at least three letters
var wordPattern = regexp.MustCompile(`\b[a-zA-Z]{3,}\b`)

// spaceStripper removes the characters excluded from the no-spaces count
var spaceStripper = strings.NewReplacer(" ", "", "\n", "", "\t", "")

// analyzeText computes generic lexical statistics for arbitrary text
func (a *ContentAnalyzer) analyzeText(path string) domain.AnalysisResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.NewErrorResult(fmt.Sprintf("error analyzing text file: %v", err))
	}

	content, encodingUsed, ok := decodeWithFallback(data)
	if !ok {
		return domain.NewErrorResult("could not decode file with supported encodings")
	}

	lines := strings.Split(content, "\n")
	words := strings.Fields(content)
	totalChars := utf8.RuneCountInString(content)
	charsNoSpaces := utf8.RuneCountInString(spaceStripper.Replace(content))

	totalLines := len(lines)
	avg := float64(len(words)) / float64(max(totalLines, 1))
	avg = math.Round(avg*100) / 100

	return domain.NewTextResult(&domain.TextStats{
		TotalLines:         totalLines,
		TotalWords:         len(words),
		TotalCharacters:    totalChars,
		CharactersNoSpaces: charsNoSpaces,
		AvgWordsPerLine:    avg,
		CommonWords:        a.commonWords(content),
		EncodingUsed:       encodingUsed,
	})
}

// commonWords ranks lowercase alphabetic tokens by descending count. Ties
// are broken by first occurrence in the source text.
func (a *ContentAnalyzer) commonWords(content string) []domain.WordCount {
	pattern := wordPattern
	if a.opts.MinWordLength != domain.DefaultMinWordLength {
		pattern = regexp.MustCompile(fmt.Sprintf(`\b[a-zA-Z]{%d,}\b`, a.opts.MinWordLength))
	}

	stop := make(map[string]bool, len(a.opts.StopWords))
	for _, w := range a.opts.StopWords {
		stop[strings.ToLower(w)] = true
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0
	for _, token := range pattern.FindAllString(strings.ToLower(content), -1) {
		if stop[token] {
			continue
		}
		if _, seen := counts[token]; !seen {
			firstSeen[token] = order
		}
		counts[token]++
		order++
	}

	ranked := make([]domain.WordCount, 0, len(counts))
	for word, count := range counts {
		ranked = append(ranked, domain.WordCount{Word: word, Count: count})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return firstSeen[ranked[i].Word] < firstSeen[ranked[j].Word]
	})

	if len(ranked) > a.opts.CommonWordCount {
		ranked = ranked[:a.opts.CommonWordCount]
	}
	return ranked
}
