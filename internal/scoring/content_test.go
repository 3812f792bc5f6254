package scoring

import (
	"strings"
	"testing"

	"resumescore/internal/types"
)

func TestScoreContentCompleteResume(t *testing.T) {
	info := infoWithSections("summary", "experience", "education", "skills", "projects", "certifications")
	info.Metrics = []string{"40%", "$2M"}

	score := ScoreContent(info, "")

	if score.Score != 100 {
		t.Errorf("score = %d, want 100 (issues: %v)", score.Score, score.Issues)
	}
	found := false
	for _, s := range score.Strengths {
		if strings.Contains(s, "quantified achievements") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected quantified achievements strength, got %v", score.Strengths)
	}
}

func TestScoreContentRequiredSectionsOnly(t *testing.T) {
	info := infoWithSections("summary", "experience", "education", "skills")
	info.Metrics = []string{"40%"}

	score := ScoreContent(info, "")

	// 0.70 required + 0.10 metrics, no optional sections.
	if score.Score != 80 {
		t.Errorf("score = %d, want 80", score.Score)
	}
}

func TestScoreContentMissingSections(t *testing.T) {
	info := infoWithSections("experience")

	score := ScoreContent(info, "")

	// One of four required sections, nothing else.
	if score.Score != 18 {
		t.Errorf("score = %d, want 18", score.Score)
	}

	for _, name := range []string{"summary", "education", "skills"} {
		found := false
		for _, issue := range score.Issues {
			if strings.Contains(issue, name) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected issue about missing %s section, got %v", name, score.Issues)
		}
	}
}

func TestScoreContentNoMetricsIssue(t *testing.T) {
	info := infoWithSections("summary", "experience", "education", "skills")

	score := ScoreContent(info, "")

	found := false
	for _, issue := range score.Issues {
		if strings.Contains(issue, "quantified achievements") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected issue about missing metrics, got %v", score.Issues)
	}
}

func TestScoreContentEmptyResume(t *testing.T) {
	score := ScoreContent(types.StructuredInfo{}, "")

	if score.Score != 0 {
		t.Errorf("score = %d, want 0", score.Score)
	}
	if len(score.Issues) < 4 {
		t.Errorf("expected issues for every required section, got %v", score.Issues)
	}
}
