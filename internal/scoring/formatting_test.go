package scoring

import (
	"strings"
	"testing"

	"resumescore/internal/types"
)

func infoWithSections(names ...string) types.StructuredInfo {
	info := types.StructuredInfo{
		Contact: types.ContactInfo{Email: "a@b.com", Phone: "555-123-4567"},
	}
	for _, name := range names {
		info.Sections = append(info.Sections, types.Section{Name: name})
	}
	return info
}

func cleanResumeText() string {
	var b strings.Builder
	b.WriteString("John Smith\na@b.com\n\nSummary\n")
	for i := 0; i < 30; i++ {
		b.WriteString("- Delivered measurable results across multiple projects\n")
	}
	return b.String()
}

func TestScoreFormattingCleanResume(t *testing.T) {
	info := infoWithSections("summary", "experience", "education", "skills")

	score := ScoreFormatting(info, cleanResumeText())

	if score.Score != 100 {
		t.Errorf("score = %d, want 100 (issues: %v)", score.Score, score.Issues)
	}
	if len(score.Issues) != 0 {
		t.Errorf("unexpected issues: %v", score.Issues)
	}
}

func TestScoreFormattingFlagsProblems(t *testing.T) {
	// No contact, no sections, tabs, mixed bullets, too short.
	text := "short\ttext\n• bullet\n- other bullet\n* third"

	score := ScoreFormatting(types.StructuredInfo{}, text)

	if score.Score >= 70 {
		t.Errorf("score = %d, want below 70", score.Score)
	}

	wantIssues := []string{
		"No contact information",
		"Fewer than three recognizable sections",
		"Mixed bullet markers",
		"tabs",
		"expected 500-5000 character range",
	}
	for _, fragment := range wantIssues {
		found := false
		for _, issue := range score.Issues {
			if strings.Contains(issue, fragment) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected issue mentioning %q, got %v", fragment, score.Issues)
		}
	}
}

func TestScoreFormattingControlCharacters(t *testing.T) {
	base := cleanResumeText()
	noisy := base + strings.Repeat("• →", 10)

	clean := ScoreFormatting(infoWithSections("summary", "experience", "education"), base)
	dirty := ScoreFormatting(infoWithSections("summary", "experience", "education"), noisy)

	if dirty.Score >= clean.Score {
		t.Errorf("noisy text should score lower: clean=%d dirty=%d", clean.Score, dirty.Score)
	}
}

func TestScoreFormattingBounds(t *testing.T) {
	for _, text := range []string{"", "x", cleanResumeText(), strings.Repeat("a", 10000)} {
		score := ScoreFormatting(types.StructuredInfo{}, text)
		if score.Score < 0 || score.Score > 100 {
			t.Errorf("score %d out of bounds for text length %d", score.Score, len(text))
		}
	}
}
