package scoring

import (
	"fmt"
	"math"

	"resumescore/internal/types"
)

var (
	requiredSections = []string{"summary", "experience", "education", "skills"}
	optionalSections = []string{"projects", "certifications"}
)

// Content weighting: required sections dominate, optional sections and
// quantified achievements round it out.
const (
	requiredSectionWeight = 0.70
	optionalSectionWeight = 0.20
	metricsWeight         = 0.10
)

// ScoreContent checks section coverage and quantified-achievement evidence.
func ScoreContent(info types.StructuredInfo, _ string) types.CategoryScore {
	score := types.CategoryScore{
		Name:      types.CategoryContent,
		Issues:    []string{},
		Strengths: []string{},
	}

	requiredFound := 0
	for _, name := range requiredSections {
		if info.HasSection(name) {
			requiredFound++
		} else {
			score.Issues = append(score.Issues, fmt.Sprintf("Missing %s section", name))
		}
	}
	if requiredFound == len(requiredSections) {
		score.Strengths = append(score.Strengths, "All core sections are present")
	}

	optionalFound := 0
	for _, name := range optionalSections {
		if info.HasSection(name) {
			optionalFound++
			score.Strengths = append(score.Strengths, fmt.Sprintf("Includes a %s section", name))
		}
	}

	raw := requiredSectionWeight * float64(requiredFound) / float64(len(requiredSections))
	raw += optionalSectionWeight * float64(optionalFound) / float64(len(optionalSections))

	if len(info.Metrics) > 0 {
		raw += metricsWeight
		score.Strengths = append(score.Strengths,
			fmt.Sprintf("Contains %d quantified achievements", len(info.Metrics)))
	} else {
		score.Issues = append(score.Issues,
			"No quantified achievements found (add numbers, percentages or amounts)")
	}

	score.Score = clampScore(int(math.Round(raw * 100)))
	return score
}
