package scoring

import (
	"sort"

	"resumescore/internal/types"
)

// MaxSuggestions bounds the suggestion list returned to callers.
const MaxSuggestions = 8

// suggestionThreshold is the category score under which a suggestion is
// generated for that category.
const suggestionThreshold = 70

// criticalThreshold is the overall score under which an extra critical
// suggestion is added.
const criticalThreshold = 60

// categorySuggestions is the fixed template table, keyed by category name.
var categorySuggestions = map[string]types.Suggestion{
	types.CategoryKeywords: {
		Category: types.CategoryKeywords,
		Priority: types.PriorityHigh,
		Title:    "Add more relevant keywords",
		Description: "Work the missing keywords for your target industry and level into your " +
			"experience bullets and skills section, using the exact terms from job postings.",
	},
	types.CategoryFormatting: {
		Category: types.CategoryFormatting,
		Priority: types.PriorityMedium,
		Title:    "Clean up formatting",
		Description: "Use a single bullet style, plain characters, and clear section headings " +
			"so automated parsers can read every part of your resume.",
	},
	types.CategoryContent: {
		Category: types.CategoryContent,
		Priority: types.PriorityHigh,
		Title:    "Strengthen resume content",
		Description: "Make sure summary, experience, education and skills sections are all present, " +
			"and quantify achievements with numbers, percentages or amounts.",
	},
	types.CategoryStructure: {
		Category: types.CategoryStructure,
		Priority: types.PriorityLow,
		Title:    "Reorder your sections",
		Description: "Arrange sections as contact, summary, experience, education, skills, " +
			"certifications, projects; recruiters and parsers expect this order.",
	},
}

// criticalSuggestion is added when the overall score is very low.
var criticalSuggestion = types.Suggestion{
	Category: "overall",
	Priority: types.PriorityHigh,
	Title:    "Major improvements needed",
	Description: "The resume scores poorly across several categories; consider rebuilding it " +
		"from a simple single-column template and rewriting bullets around measurable results.",
}

var priorityRank = map[string]int{
	types.PriorityHigh:   0,
	types.PriorityMedium: 1,
	types.PriorityLow:    2,
}

// GenerateSuggestions derives the bounded, prioritized suggestion list
// from the category scores and overall score. Order within a priority
// follows generation order (category iteration is fixed by CategoryOrder).
func GenerateSuggestions(scores map[string]types.CategoryScore, overall int) []types.Suggestion {
	suggestions := []types.Suggestion{}

	for _, name := range CategoryOrder {
		if cs, ok := scores[name]; ok && cs.Score < suggestionThreshold {
			suggestions = append(suggestions, categorySuggestions[name])
		}
	}

	if overall < criticalThreshold {
		suggestions = append(suggestions, criticalSuggestion)
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return priorityRank[suggestions[i].Priority] < priorityRank[suggestions[j].Priority]
	})

	if len(suggestions) > MaxSuggestions {
		suggestions = suggestions[:MaxSuggestions]
	}
	return suggestions
}

// CategoryOrder fixes the iteration order over category scores so results
// are deterministic.
var CategoryOrder = []string{
	types.CategoryKeywords,
	types.CategoryFormatting,
	types.CategoryContent,
	types.CategoryStructure,
}
