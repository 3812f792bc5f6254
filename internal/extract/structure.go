package extract

import (
	"strings"

	"resumescore/internal/types"
)

// ExtractInfo applies the pattern tables to normalized resume text and
// builds a StructuredInfo. It never fails: text with no recognizable
// patterns yields an empty record, which downstream scorers treat as a
// scorable fact rather than an error.
func ExtractInfo(text string) types.StructuredInfo {
	info := types.StructuredInfo{
		Sections:   []types.Section{},
		Skills:     []string{},
		Experience: []types.ExperienceEntry{},
		Education:  []types.EducationEntry{},
		Metrics:    []string{},
	}
	if strings.TrimSpace(text) == "" {
		return info
	}

	info.Contact = extractContact(text)
	info.Sections = extractSections(text)
	info.Summary = firstProseBlock(info.SectionContent("summary"))
	info.Skills = extractSkills(info, text)
	info.Metrics = extractMetrics(text)
	info.Experience = extractExperience(info.SectionContent("experience"))
	info.Education = extractEducation(info.SectionContent("education"))
	info.Language = extractLanguageSignals(text)

	return info
}

func extractContact(text string) types.ContactInfo {
	return types.ContactInfo{
		Email:    emailPattern.FindString(text),
		Phone:    strings.TrimSpace(phonePattern.FindString(text)),
		Location: locationPattern.FindString(text),
	}
}

// matchSectionHeader returns the canonical section name a line opens, or "".
// A header line is short and matches the section vocabulary; the first
// matching name wins so a line opens at most one section.
func matchSectionHeader(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) > 60 {
		return ""
	}
	lower := strings.ToLower(trimmed)
	for _, sk := range SectionKeywords {
		for _, kw := range sk.Keywords {
			if strings.Contains(lower, kw) {
				return sk.Name
			}
		}
	}
	return ""
}

func extractSections(text string) []types.Section {
	var sections []types.Section
	lines := strings.Split(text, "\n")

	current := -1
	var content []string

	flush := func() {
		if current >= 0 {
			sections[current].RawContent = strings.TrimSpace(strings.Join(content, "\n"))
		}
		content = content[:0]
	}

	for _, line := range lines {
		if name := matchSectionHeader(line); name != "" {
			flush()
			sections = append(sections, types.Section{Name: name})
			current = len(sections) - 1
			continue
		}
		if current >= 0 {
			content = append(content, line)
		}
	}
	flush()

	return sections
}

// firstProseBlock returns the first non-empty paragraph of a section body.
func firstProseBlock(body string) string {
	for _, block := range strings.Split(body, "\n\n") {
		if trimmed := strings.TrimSpace(block); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// extractSkills matches the skill vocabulary against the skills section,
// falling back to the whole document when no skills section was detected.
// Results keep vocabulary casing and first-occurrence order.
func extractSkills(info types.StructuredInfo, text string) []string {
	haystack := info.SectionContent("skills")
	if haystack == "" {
		haystack = text
	}
	lower := strings.ToLower(haystack)

	skills := []string{}
	seen := make(map[string]bool)
	for _, skill := range SkillVocabulary {
		key := strings.ToLower(skill)
		if seen[key] {
			continue
		}
		if strings.Contains(lower, key) {
			skills = append(skills, skill)
			seen[key] = true
		}
	}
	return skills
}

func extractMetrics(text string) []string {
	metrics := []string{}
	seen := make(map[string]bool)
	for _, p := range metricPatterns {
		for _, m := range p.FindAllString(text, -1) {
			if !seen[m] {
				seen[m] = true
				metrics = append(metrics, m)
			}
		}
	}
	return metrics
}

// isEntryHeader reports whether a line inside the experience section starts
// a new job entry.
func isEntryHeader(line string) bool {
	if bulletPattern.MatchString(line) {
		return false
	}
	if strings.Contains(line, "|") || strings.Contains(line, " at ") {
		return true
	}
	lower := strings.ToLower(line)
	for _, kw := range JobTitleKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func extractExperience(body string) []types.ExperienceEntry {
	entries := []types.ExperienceEntry{}
	if body == "" {
		return entries
	}

	var current *types.ExperienceEntry
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if isEntryHeader(trimmed) {
			entries = append(entries, parseEntryHeader(trimmed))
			current = &entries[len(entries)-1]
			continue
		}

		if current != nil && bulletPattern.MatchString(line) {
			bullet := strings.TrimSpace(bulletPattern.ReplaceAllString(line, ""))
			if bullet != "" {
				current.Bullets = append(current.Bullets, bullet)
			}
		}
	}
	return entries
}

// parseEntryHeader splits a job-entry header into title, company and dates.
// Supported shapes: "Title | Company | Dates" and "Title at Company".
func parseEntryHeader(line string) types.ExperienceEntry {
	entry := types.ExperienceEntry{Bullets: []string{}}

	switch {
	case strings.Contains(line, "|"):
		parts := strings.Split(line, "|")
		entry.Title = strings.TrimSpace(parts[0])
		if len(parts) > 1 {
			entry.Company = strings.TrimSpace(parts[1])
		}
		if len(parts) > 2 {
			entry.DateRange = strings.TrimSpace(parts[2])
		}
	case strings.Contains(line, " at "):
		parts := strings.SplitN(line, " at ", 2)
		entry.Title = strings.TrimSpace(parts[0])
		entry.Company = strings.TrimSpace(parts[1])
	default:
		entry.Title = line
	}

	if entry.DateRange == "" {
		if years := yearPattern.FindAllString(line, -1); len(years) > 0 {
			entry.DateRange = strings.Join(years, "-")
		}
	}
	return entry
}

func extractEducation(body string) []types.EducationEntry {
	entries := []types.EducationEntry{}
	if body == "" {
		return entries
	}

	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(bulletPattern.ReplaceAllString(line, ""))
		if trimmed == "" {
			continue
		}
		entry := types.EducationEntry{DegreeLine: trimmed}
		entry.Year = yearPattern.FindString(trimmed)
		if m := gpaPattern.FindStringSubmatch(trimmed); len(m) > 1 {
			entry.GPA = m[1]
		}
		entries = append(entries, entry)
	}
	return entries
}

func extractLanguageSignals(text string) types.LanguageSignals {
	lower := strings.ToLower(text)

	signals := types.LanguageSignals{}
	for _, verb := range ActionVerbs {
		signals.ActionVerbCount += strings.Count(lower, verb)
	}
	for _, phrase := range PassivePhrases {
		signals.PassivePhraseCount += strings.Count(lower, phrase)
	}

	sentences := sentenceSplitPattern.Split(text, -1)
	var total, count int
	for _, s := range sentences {
		words := len(strings.Fields(s))
		if words > 0 {
			total += words
			count++
		}
	}
	if count > 0 {
		signals.AvgSentenceLength = float64(total) / float64(count)
	}
	return signals
}
