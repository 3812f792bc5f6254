package scoring

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"resumescore/internal/types"
)

// MissingKeywordCap bounds the missing-keyword list reported to callers.
const MissingKeywordCap = 10

// contextWords are terms whose vicinity makes a keyword occurrence count
// as used in context rather than just listed.
var contextWords = []string{"experience", "skill", "proficient"}

const contextWindow = 80

// wordPattern is a keyword made only of word characters, spaces, dots or
// hyphens; those are safe for whole-word regexp matching.
var wordPattern = regexp.MustCompile(`^[\w][\w .\-]*[\w]$|^[\w]$`)

// matchPositions returns index pairs of case-insensitive whole-word
// occurrences of keyword in lower (an already lowercased haystack).
// Keywords with symbol edges ("c++", "ci/cd", ".net") fall back to
// substring matching since word boundaries are undefined around them.
func matchPositions(lower, keyword string) [][]int {
	kw := strings.ToLower(keyword)
	pattern := regexp.QuoteMeta(kw)
	if wordPattern.MatchString(kw) {
		pattern = `\b` + pattern + `\b`
	}
	return regexp.MustCompile(pattern).FindAllStringIndex(lower, -1)
}

// countOccurrences counts the occurrences of keyword in lower.
func countOccurrences(lower, keyword string) int {
	return len(matchPositions(lower, keyword))
}

// occursInContext reports whether any counted occurrence of keyword falls
// within contextWindow characters of a context word. Occurrences embedded
// in longer words ("go" inside "google") never qualify.
func occursInContext(lower, keyword string) bool {
	for _, pos := range matchPositions(lower, keyword) {
		start := pos[0] - contextWindow
		if start < 0 {
			start = 0
		}
		end := pos[1] + contextWindow
		if end > len(lower) {
			end = len(lower)
		}
		window := lower[start:end]
		for _, cw := range contextWords {
			if strings.Contains(window, cw) {
				return true
			}
		}
	}
	return false
}

// KeywordMatch holds the outcome of matching one resume against a keyword set.
type KeywordMatch struct {
	Found   []string
	Missing []string
}

// ScoreKeywords measures how well the resume text covers the expected
// keyword set. The blend rewards match rate most, then keyword density
// (target around 2-3% of words), category variety, and in-context usage.
func ScoreKeywords(info types.StructuredInfo, text string, set *types.KeywordSet) (types.CategoryScore, KeywordMatch) {
	score := types.CategoryScore{
		Name:      types.CategoryKeywords,
		Issues:    []string{},
		Strengths: []string{},
	}
	match := KeywordMatch{Found: []string{}, Missing: []string{}}

	if set == nil || len(set.Keywords) == 0 {
		score.Issues = append(score.Issues, "No reference keywords available for scoring")
		return score, match
	}

	lower := strings.ToLower(text)
	wordCount := len(strings.Fields(text))

	totalMatches := 0
	contextHits := 0
	categoriesFound := make(map[string]bool)
	var missing []types.Keyword

	for _, k := range set.Keywords {
		n := countOccurrences(lower, k.Keyword)
		if n == 0 {
			missing = append(missing, k)
			continue
		}
		totalMatches += n
		match.Found = append(match.Found, k.Keyword)
		categoriesFound[k.Category] = true
		if occursInContext(lower, k.Keyword) {
			contextHits++
		}
	}

	found := len(match.Found)
	total := len(set.Keywords)

	matchRate := float64(found) / float64(total)

	var densityScore float64
	if wordCount > 0 {
		densityScore = math.Min(float64(totalMatches)/float64(wordCount)*1000, 100)
	}

	totalCategories := len(set.Categories())
	varietyScore := float64(len(categoriesFound)) / float64(totalCategories) * 100

	var contextScore float64
	if found > 0 {
		contextScore = float64(contextHits) / float64(found) * 100
	}

	raw := 100 * (0.4*matchRate + 0.3*densityScore/100 + 0.2*varietyScore/100 + 0.1*contextScore/100)
	score.Score = clampScore(int(math.Round(raw)))

	// Most relevant gaps first.
	sort.SliceStable(missing, func(i, j int) bool {
		return missing[i].Weight > missing[j].Weight
	})
	for i, k := range missing {
		if i >= MissingKeywordCap {
			break
		}
		match.Missing = append(match.Missing, k.Keyword)
	}

	switch {
	case matchRate >= 0.6:
		score.Strengths = append(score.Strengths,
			fmt.Sprintf("Strong keyword coverage: %d of %d expected terms present", found, total))
	case matchRate >= 0.3:
		score.Issues = append(score.Issues,
			fmt.Sprintf("Partial keyword coverage: only %d of %d expected terms present", found, total))
	default:
		score.Issues = append(score.Issues,
			fmt.Sprintf("Weak keyword coverage: %d of %d expected terms present", found, total))
	}
	if len(categoriesFound) == totalCategories && totalCategories > 1 {
		score.Strengths = append(score.Strengths, "Keywords span every expected category")
	} else if totalCategories > 1 {
		score.Issues = append(score.Issues,
			fmt.Sprintf("Keywords cover %d of %d expected categories", len(categoriesFound), totalCategories))
	}
	if found > 0 && contextHits == 0 {
		score.Issues = append(score.Issues,
			"Matched keywords appear isolated rather than in experience or skills context")
	}

	return score, match
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
