package scoring

import (
	"strings"
	"testing"

	"resumescore/internal/types"
)

func TestScoreStructureIdealOrder(t *testing.T) {
	info := infoWithSections("summary", "experience", "education", "skills", "certifications", "projects")

	score := ScoreStructure(info, "")

	if score.Score != 100 {
		t.Errorf("score = %d, want 100 (issues: %v)", score.Score, score.Issues)
	}

	foundOrder := false
	foundExpFirst := false
	for _, s := range score.Strengths {
		if strings.Contains(s, "conventional order") {
			foundOrder = true
		}
		if strings.Contains(s, "Experience is listed before education") {
			foundExpFirst = true
		}
	}
	if !foundOrder || !foundExpFirst {
		t.Errorf("expected order strengths, got %v", score.Strengths)
	}
}

func TestScoreStructureEducationBeforeExperience(t *testing.T) {
	ideal := infoWithSections("summary", "experience", "education", "skills")
	swapped := infoWithSections("summary", "education", "experience", "skills")

	idealScore := ScoreStructure(ideal, "")
	swappedScore := ScoreStructure(swapped, "")

	if swappedScore.Score >= idealScore.Score {
		t.Errorf("swapped order should score lower: ideal=%d swapped=%d",
			idealScore.Score, swappedScore.Score)
	}

	found := false
	for _, issue := range swappedScore.Issues {
		if strings.Contains(issue, "Education appears before experience") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected education-first issue, got %v", swappedScore.Issues)
	}
}

func TestScoreStructureMissingSections(t *testing.T) {
	info := infoWithSections("experience")

	score := ScoreStructure(info, "")

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

func TestScoreStructureNoSections(t *testing.T) {
	score := ScoreStructure(types.StructuredInfo{}, "")

	if score.Score != 0 {
		t.Errorf("score = %d, want 0", score.Score)
	}
	if len(score.Issues) == 0 {
		t.Error("expected an issue about missing sections")
	}
}

func TestScoreStructureBounds(t *testing.T) {
	layouts := [][]string{
		{"projects", "certifications", "skills", "education", "experience", "summary"},
		{"skills"},
		{"awards"},
		{"summary", "experience", "education", "skills"},
	}
	for _, layout := range layouts {
		score := ScoreStructure(infoWithSections(layout...), "")
		if score.Score < 0 || score.Score > 100 {
			t.Errorf("score %d out of bounds for layout %v", score.Score, layout)
		}
	}
}
