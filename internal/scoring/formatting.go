package scoring

import (
	"math"
	"strings"

	"resumescore/internal/types"
)

// Formatting length bounds in characters. ATS parsers choke on extremes in
// both directions.
const (
	minResumeLength = 500
	maxResumeLength = 5000
)

// controlCharThreshold is the number of non-ASCII/control characters
// tolerated before formatting is flagged.
const controlCharThreshold = 10

// formattingCheck is one item of the fixed formatting checklist.
type formattingCheck struct {
	pass     string
	fail     string
	passedFn func(info types.StructuredInfo, text string) bool
}

var formattingChecks = []formattingCheck{
	{
		pass: "Contact information is present",
		fail: "No contact information found (add an email address and phone number)",
		passedFn: func(info types.StructuredInfo, _ string) bool {
			return info.Contact.Email != "" || info.Contact.Phone != ""
		},
	},
	{
		pass: "Resume contains at least three recognizable sections",
		fail: "Fewer than three recognizable sections detected",
		passedFn: func(info types.StructuredInfo, _ string) bool {
			return len(info.Sections) >= 3
		},
	},
	{
		pass: "No unusual control or non-ASCII characters",
		fail: "Contains unusual characters that may confuse ATS parsers",
		passedFn: func(_ types.StructuredInfo, text string) bool {
			count := 0
			for _, r := range text {
				if r > 126 || (r < 32 && r != '\n') {
					count++
				}
			}
			return count <= controlCharThreshold
		},
	},
	{
		pass: "Text uses line breaks for readability",
		fail: "Text lacks line breaks; content may have collapsed into one block",
		passedFn: func(_ types.StructuredInfo, text string) bool {
			return strings.Contains(text, "\n")
		},
	},
	{
		pass: "Overall length is in the expected range",
		fail: "Length is outside the expected 500-5000 character range",
		passedFn: func(_ types.StructuredInfo, text string) bool {
			return len(text) >= minResumeLength && len(text) <= maxResumeLength
		},
	},
	{
		pass: "Bullet markers are used consistently",
		fail: "Mixed bullet markers detected; stick to one style",
		passedFn: func(_ types.StructuredInfo, text string) bool {
			styles := 0
			for _, marker := range []string{"\n• ", "\n- ", "\n* "} {
				if strings.Contains(text, marker) {
					styles++
				}
			}
			return styles <= 1
		},
	},
	{
		pass: "No leftover tabs or excessive blank lines",
		fail: "Contains tabs or runs of blank lines",
		passedFn: func(_ types.StructuredInfo, text string) bool {
			return !strings.Contains(text, "\t") && !strings.Contains(text, "\n\n\n")
		},
	},
}

// ScoreFormatting evaluates the fixed formatting checklist. The score is
// the fraction of passed checks; failed checks become issues and passed
// checks become strengths.
func ScoreFormatting(info types.StructuredInfo, text string) types.CategoryScore {
	score := types.CategoryScore{
		Name:      types.CategoryFormatting,
		Issues:    []string{},
		Strengths: []string{},
	}

	passed := 0
	for _, check := range formattingChecks {
		if check.passedFn(info, text) {
			passed++
			score.Strengths = append(score.Strengths, check.pass)
		} else {
			score.Issues = append(score.Issues, check.fail)
		}
	}

	score.Score = clampScore(int(math.Round(float64(passed) / float64(len(formattingChecks)) * 100)))
	return score
}
