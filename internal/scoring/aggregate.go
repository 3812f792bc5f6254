package scoring

import (
	"math"

	"resumescore/internal/types"
)

// Category weights composing the overall score. These are the canonical
// weights; they must sum to 1.
var CategoryWeights = map[string]float64{
	types.CategoryKeywords:   0.30,
	types.CategoryFormatting: 0.25,
	types.CategoryContent:    0.25,
	types.CategoryStructure:  0.20,
}

// PassingScore is the overall score at which a resume is considered
// ATS-compatible.
const PassingScore = 70

// gradeThresholds maps minimum scores to letter grades, highest first.
var gradeThresholds = []struct {
	min   int
	grade string
}{
	{90, "A+"},
	{85, "A"},
	{80, "A-"},
	{75, "B+"},
	{70, "B"},
	{65, "B-"},
	{60, "C+"},
	{55, "C"},
	{50, "C-"},
	{45, "D+"},
	{40, "D"},
}

// Aggregate combines the four category scores into the overall score,
// letter grade and ATS status.
func Aggregate(scores map[string]types.CategoryScore) (overall int, grade, status string) {
	// Summation follows CategoryOrder; float addition is not associative,
	// so map iteration order could flip rounding near .5 boundaries.
	var weighted float64
	for _, name := range CategoryOrder {
		weighted += CategoryWeights[name] * float64(scores[name].Score)
	}

	overall = clampScore(int(math.Round(weighted)))
	grade = GradeFor(overall)
	status = types.StatusNeedsImprovement
	if overall >= PassingScore {
		status = types.StatusATSCompatible
	}
	return overall, grade, status
}

// GradeFor maps a 0-100 score to its letter grade.
func GradeFor(score int) string {
	for _, t := range gradeThresholds {
		if score >= t.min {
			return t.grade
		}
	}
	return "F"
}
