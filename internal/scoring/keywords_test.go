package scoring

import (
	"strings"
	"testing"

	"resumescore/internal/types"
)

func keywordSet(keywords ...types.Keyword) *types.KeywordSet {
	return &types.KeywordSet{
		Industry: "technology",
		Level:    "general",
		Keywords: keywords,
	}
}

func kw(keyword, category string, weight int) types.Keyword {
	return types.Keyword{Keyword: keyword, Category: category, Weight: weight}
}

func TestCountOccurrencesWholeWord(t *testing.T) {
	tests := []struct {
		haystack string
		keyword  string
		expected int
	}{
		{"worked with go and golang daily", "go", 1},
		{"google is not the go language", "go", 1},
		{"python python python", "python", 3},
		{"nothing relevant here", "java", 0},
		{"javascript is not java", "java", 1},
	}

	for _, tt := range tests {
		if got := countOccurrences(tt.haystack, tt.keyword); got != tt.expected {
			t.Errorf("countOccurrences(%q, %q) = %d, want %d", tt.haystack, tt.keyword, got, tt.expected)
		}
	}
}

func TestCountOccurrencesSymbolKeywords(t *testing.T) {
	tests := []struct {
		haystack string
		keyword  string
		expected int
	}{
		{"expert in c++ and c", "c++", 1},
		{"ci/cd pipelines with ci/cd tooling", "ci/cd", 2},
		{"worked with .net services", ".net", 1},
	}

	for _, tt := range tests {
		if got := countOccurrences(tt.haystack, tt.keyword); got != tt.expected {
			t.Errorf("countOccurrences(%q, %q) = %d, want %d", tt.haystack, tt.keyword, got, tt.expected)
		}
	}
}

func TestScoreKeywordsFullCoverage(t *testing.T) {
	set := keywordSet(
		kw("python", types.KeywordCategoryTechnical, 5),
		kw("docker", types.KeywordCategoryTechnical, 4),
		kw("agile", types.KeywordCategoryMethodology, 3),
		kw("leadership", types.KeywordCategorySoft, 3),
	)
	text := "Skills include python, docker, agile and leadership. " +
		"Experience using python and docker in agile teams with leadership duties."

	score, match := ScoreKeywords(types.StructuredInfo{}, text, set)

	if len(match.Found) != 4 {
		t.Errorf("found = %v, want all 4", match.Found)
	}
	if len(match.Missing) != 0 {
		t.Errorf("missing = %v, want none", match.Missing)
	}
	if score.Score <= 0 || score.Score > 100 {
		t.Errorf("score %d out of bounds", score.Score)
	}
	hasStrength := false
	for _, s := range score.Strengths {
		if strings.Contains(s, "Strong keyword coverage") {
			hasStrength = true
		}
	}
	if !hasStrength {
		t.Errorf("expected coverage strength, got %v", score.Strengths)
	}
}

func TestScoreKeywordsNoCoverage(t *testing.T) {
	set := keywordSet(
		kw("python", types.KeywordCategoryTechnical, 5),
		kw("docker", types.KeywordCategoryTechnical, 4),
	)

	score, match := ScoreKeywords(types.StructuredInfo{}, "completely unrelated text", set)

	if score.Score != 0 {
		t.Errorf("score = %d, want 0", score.Score)
	}
	if len(match.Found) != 0 {
		t.Errorf("found = %v, want none", match.Found)
	}
	if len(match.Missing) != 2 {
		t.Errorf("missing = %v, want both keywords", match.Missing)
	}
}

func TestScoreKeywordsMissingSortedByWeightAndCapped(t *testing.T) {
	var keywords []types.Keyword
	for i := 1; i <= 15; i++ {
		weight := (i % 5) + 1
		keywords = append(keywords, kw(strings.Repeat("x", i)+"kw", types.KeywordCategoryTechnical, weight))
	}
	set := keywordSet(keywords...)

	_, match := ScoreKeywords(types.StructuredInfo{}, "no matches here", set)

	if len(match.Missing) != MissingKeywordCap {
		t.Fatalf("missing list length = %d, want %d", len(match.Missing), MissingKeywordCap)
	}

	// The first reported missing keywords carry the highest weight.
	weightOf := make(map[string]int)
	for _, k := range keywords {
		weightOf[k.Keyword] = k.Weight
	}
	for i := 1; i < len(match.Missing); i++ {
		if weightOf[match.Missing[i-1]] < weightOf[match.Missing[i]] {
			t.Errorf("missing keywords not sorted by weight: %v", match.Missing)
			break
		}
	}
}

func TestScoreKeywordsEmptySet(t *testing.T) {
	score, match := ScoreKeywords(types.StructuredInfo{}, "some text", keywordSet())

	if score.Score != 0 {
		t.Errorf("score = %d, want 0", score.Score)
	}
	if len(match.Found) != 0 || len(match.Missing) != 0 {
		t.Errorf("expected empty match, got %+v", match)
	}
	if len(score.Issues) == 0 {
		t.Error("expected an issue explaining the missing reference keywords")
	}
}

func TestScoreKeywordsDeterministic(t *testing.T) {
	set := keywordSet(
		kw("python", types.KeywordCategoryTechnical, 5),
		kw("docker", types.KeywordCategoryTechnical, 4),
		kw("agile", types.KeywordCategoryMethodology, 3),
	)
	text := "Experience with python and docker on agile teams."

	first, firstMatch := ScoreKeywords(types.StructuredInfo{}, text, set)
	second, secondMatch := ScoreKeywords(types.StructuredInfo{}, text, set)

	if first.Score != second.Score {
		t.Errorf("scores differ: %d vs %d", first.Score, second.Score)
	}
	if strings.Join(firstMatch.Found, ",") != strings.Join(secondMatch.Found, ",") {
		t.Errorf("found lists differ: %v vs %v", firstMatch.Found, secondMatch.Found)
	}
}

func TestClampScore(t *testing.T) {
	tests := []struct {
		in, out int
	}{
		{-5, 0},
		{0, 0},
		{55, 55},
		{100, 100},
		{140, 100},
	}
	for _, tt := range tests {
		if got := clampScore(tt.in); got != tt.out {
			t.Errorf("clampScore(%d) = %d, want %d", tt.in, got, tt.out)
		}
	}
}

func TestOccursInContextUsesWholeWordMatches(t *testing.T) {
	// "go" appears embedded in "google" near a context word, and as a
	// whole word far from any. Neither occurrence should count.
	text := "experience with google cloud platform. " + strings.Repeat("x ", 60) + "go"
	if occursInContext(text, "go") {
		t.Error("embedded or out-of-window occurrence counted as in context")
	}

	if !occursInContext("experience writing go services", "go") {
		t.Error("whole-word occurrence near a context word not detected")
	}
}
