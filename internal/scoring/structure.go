package scoring

import (
	"fmt"
	"math"

	"resumescore/internal/types"
)

// IdealSectionOrder is the section sequence ATS parsers and recruiters
// expect, first to last.
var IdealSectionOrder = []string{
	"contact", "summary", "experience", "education", "skills",
	"certifications", "projects",
}

// experienceBeforeEducationBonus adjusts the normalized order score for the
// conventional experience-first layout.
const experienceBeforeEducationBonus = 10

// ScoreStructure compares the detected section order against the ideal
// order using a positional-distance credit: a section close to its ideal
// position earns more than one far away.
func ScoreStructure(info types.StructuredInfo, _ string) types.CategoryScore {
	score := types.CategoryScore{
		Name:      types.CategoryStructure,
		Issues:    []string{},
		Strengths: []string{},
	}

	detected := detectedOrder(info)
	if len(detected) == 0 {
		score.Issues = append(score.Issues, "No recognizable sections to order")
		return score
	}

	idealLen := len(IdealSectionOrder)

	credit := 0
	maxCredit := 0
	for detIdx, name := range detected {
		ideal, ok := idealIndexOf(name)
		if !ok {
			continue
		}
		dist := detIdx - ideal
		if dist < 0 {
			dist = -dist
		}
		c := idealLen - dist
		if c < 0 {
			c = 0
		}
		credit += c
		maxCredit += idealLen
	}

	raw := 0.0
	if maxCredit > 0 {
		raw = float64(credit) / float64(maxCredit) * 100
	}

	expIdx := indexOf(detected, "experience")
	eduIdx := indexOf(detected, "education")
	if expIdx >= 0 && eduIdx >= 0 {
		if expIdx < eduIdx {
			raw += experienceBeforeEducationBonus
			score.Strengths = append(score.Strengths, "Experience is listed before education")
		} else {
			raw -= experienceBeforeEducationBonus
			score.Issues = append(score.Issues, "Education appears before experience; most recruiters expect experience first")
		}
	}

	for _, name := range []string{"summary", "experience", "education", "skills"} {
		if indexOf(detected, name) < 0 {
			score.Issues = append(score.Issues, fmt.Sprintf("Section order cannot include the missing %s section", name))
		}
	}
	if len(score.Issues) == 0 {
		score.Strengths = append(score.Strengths, "Sections follow the conventional order")
	}

	score.Score = clampScore(int(math.Round(raw)))
	return score
}

// detectedOrder is the document-order section list, with a synthetic
// leading contact pseudo-section when contact info was found.
func detectedOrder(info types.StructuredInfo) []string {
	var order []string
	if info.Contact.Email != "" || info.Contact.Phone != "" {
		order = append(order, "contact")
	}
	seen := make(map[string]bool)
	for _, s := range info.Sections {
		if !seen[s.Name] {
			seen[s.Name] = true
			order = append(order, s.Name)
		}
	}
	return order
}

func idealIndexOf(name string) (int, bool) {
	for i, n := range IdealSectionOrder {
		if n == name {
			return i, true
		}
	}
	return 0, false
}

func indexOf(list []string, name string) int {
	for i, n := range list {
		if n == name {
			return i
		}
	}
	return -1
}
