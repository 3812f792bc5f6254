package types

import "time"

// RawDocument is an uploaded resume document before text extraction.
// It is consumed by the text extractor and discarded afterwards.
type RawDocument struct {
	Filename string
	MIMEType string
	Size     int64
	Content  []byte
}

// ContactInfo holds contact fields recovered from the resume text.
type ContactInfo struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

// Section is a named region of the resume in document order.
type Section struct {
	Name       string `json:"name"`
	RawContent string `json:"rawContent"`
}

// ExperienceEntry represents one job entry under the experience section.
type ExperienceEntry struct {
	Title     string   `json:"title"`
	Company   string   `json:"company,omitempty"`
	DateRange string   `json:"dateRange,omitempty"`
	Bullets   []string `json:"bullets"`
}

// EducationEntry represents one education line.
type EducationEntry struct {
	DegreeLine string `json:"degreeLine"`
	Year       string `json:"year,omitempty"`
	GPA        string `json:"gpa,omitempty"`
}

// LanguageSignals holds coarse language-quality measurements.
type LanguageSignals struct {
	ActionVerbCount    int     `json:"actionVerbCount"`
	PassivePhraseCount int     `json:"passivePhraseCount"`
	AvgSentenceLength  float64 `json:"avgSentenceLength"`
}

// StructuredInfo is the pattern-extracted representation of a resume.
// All fields derive purely from the extracted text; the value is never
// mutated after construction.
type StructuredInfo struct {
	Contact    ContactInfo       `json:"contact"`
	Summary    string            `json:"summary,omitempty"`
	Sections   []Section         `json:"sections"`
	Skills     []string          `json:"skills"`
	Experience []ExperienceEntry `json:"experience"`
	Education  []EducationEntry  `json:"education"`
	Metrics    []string          `json:"metrics"`
	Language   LanguageSignals   `json:"language"`
}

// HasSection reports whether a section with the given name was detected.
func (si StructuredInfo) HasSection(name string) bool {
	for _, s := range si.Sections {
		if s.Name == name {
			return true
		}
	}
	return false
}

// SectionContent returns the raw content of the named section, or "".
func (si StructuredInfo) SectionContent(name string) string {
	for _, s := range si.Sections {
		if s.Name == name {
			return s.RawContent
		}
	}
	return ""
}

// Keyword categories used by the reference corpus.
const (
	KeywordCategoryTechnical   = "technical"
	KeywordCategorySoft        = "soft"
	KeywordCategoryMethodology = "methodology"
	KeywordCategoryIndustry    = "industry"
	KeywordCategoryCert        = "certification"
)

// Keyword is one expected term with its category and relevance weight (1..5).
type Keyword struct {
	Keyword  string `json:"keyword"`
	Category string `json:"category"`
	Weight   int    `json:"weight"`
}

// KeywordSet is the reference keyword list for one (industry, level) pair.
// Read-only after load; safe to share across concurrent analyses.
type KeywordSet struct {
	Industry string    `json:"industry"`
	Level    string    `json:"level"`
	Keywords []Keyword `json:"keywords"`
}

// Categories returns the distinct keyword categories present in the set.
func (ks *KeywordSet) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, k := range ks.Keywords {
		if !seen[k.Category] {
			seen[k.Category] = true
			out = append(out, k.Category)
		}
	}
	return out
}

// Category score names.
const (
	CategoryKeywords   = "keywords"
	CategoryFormatting = "formatting"
	CategoryContent    = "content"
	CategoryStructure  = "structure"
)

// CategoryScore is one 0-100 sub-score with its findings.
type CategoryScore struct {
	Name      string   `json:"name"`
	Score     int      `json:"score"`
	Issues    []string `json:"issues"`
	Strengths []string `json:"strengths"`
}

// Suggestion priorities, highest first.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Suggestion is one actionable improvement recommendation.
type Suggestion struct {
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ATS compatibility statuses.
const (
	StatusATSCompatible    = "ATS-Compatible"
	StatusNeedsImprovement = "Needs Improvement"
)

// AnalysisResult is the complete outcome of one resume analysis.
// Immutable once created.
type AnalysisResult struct {
	ID              string                   `json:"id"`
	Industry        string                   `json:"industry"`
	Level           string                   `json:"level"`
	JobTitle        string                   `json:"jobTitle,omitempty"`
	OverallScore    int                      `json:"overallScore"`
	Grade           string                   `json:"grade"`
	Status          string                   `json:"status"`
	CategoryScores  map[string]CategoryScore `json:"categoryScores"`
	FoundKeywords   []string                 `json:"foundKeywords"`
	MissingKeywords []string                 `json:"missingKeywords"`
	Suggestions     []Suggestion             `json:"suggestions"`
	StructuredInfo  StructuredInfo           `json:"structuredInfo"`
	CreatedAt       time.Time                `json:"createdAt"`
}
