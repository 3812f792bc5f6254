package formatters

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"resumescore/internal/types"
)

// GlobalRegistry is the default registry used by output handling.
var GlobalRegistry = NewFormatterRegistry()

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "AnalysisResult", &AnalysisTextFormatter{})
	registry.RegisterFormatter("markdown", "AnalysisResult", &AnalysisMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.AnalysisResult, *types.AnalysisResult:
		return "AnalysisResult"
	default:
		return "any"
	}
}

func asAnalysisResult(data any) (*types.AnalysisResult, bool) {
	switch v := data.(type) {
	case *types.AnalysisResult:
		return v, v != nil
	case types.AnalysisResult:
		return &v, true
	default:
		return nil, false
	}
}

// orderedCategories returns category scores in the fixed reporting order.
func orderedCategories(scores map[string]types.CategoryScore) []types.CategoryScore {
	order := []string{
		types.CategoryKeywords,
		types.CategoryFormatting,
		types.CategoryContent,
		types.CategoryStructure,
	}
	out := make([]types.CategoryScore, 0, len(scores))
	for _, name := range order {
		if cs, ok := scores[name]; ok {
			out = append(out, cs)
		}
	}
	// Any custom categories go last, alphabetically
	var rest []string
	for name := range scores {
		known := false
		for _, o := range order {
			if name == o {
				known = true
				break
			}
		}
		if !known {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		out = append(out, scores[name])
	}
	return out
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// AnalysisTextFormatter handles text formatting for analysis results
type AnalysisTextFormatter struct{}

func (atf *AnalysisTextFormatter) Format(data any) (string, error) {
	result, ok := asAnalysisResult(data)
	if !ok {
		return "", fmt.Errorf("expected AnalysisResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== RESUME ANALYSIS ===\n\n")
	output.WriteString(fmt.Sprintf("Overall Score: %d/100 (%s)\n", result.OverallScore, result.Grade))
	output.WriteString(fmt.Sprintf("Status: %s\n", result.Status))
	output.WriteString(fmt.Sprintf("Industry: %s, Level: %s\n", result.Industry, result.Level))
	if result.JobTitle != "" {
		output.WriteString(fmt.Sprintf("Target Role: %s\n", result.JobTitle))
	}
	output.WriteString("\n")

	output.WriteString("=== CATEGORY SCORES ===\n\n")
	for _, cs := range orderedCategories(result.CategoryScores) {
		output.WriteString(fmt.Sprintf("%s: %d/100\n", strings.ToUpper(cs.Name[:1])+cs.Name[1:], cs.Score))
		for _, strength := range cs.Strengths {
			output.WriteString(fmt.Sprintf("  + %s\n", strength))
		}
		for _, issue := range cs.Issues {
			output.WriteString(fmt.Sprintf("  - %s\n", issue))
		}
		output.WriteString("\n")
	}

	if len(result.MissingKeywords) > 0 {
		output.WriteString("=== MISSING KEYWORDS ===\n")
		output.WriteString(strings.Join(result.MissingKeywords, ", "))
		output.WriteString("\n\n")
	}

	if len(result.Suggestions) > 0 {
		output.WriteString("=== SUGGESTIONS ===\n\n")
		for i, suggestion := range result.Suggestions {
			output.WriteString(fmt.Sprintf("%d. [%s] %s\n", i+1, strings.ToUpper(suggestion.Priority), suggestion.Title))
			output.WriteString("   ")
			output.WriteString(suggestion.Description)
			output.WriteString("\n\n")
		}
	} else {
		output.WriteString("No suggestions. Great resume!\n")
	}

	return output.String(), nil
}

func (atf *AnalysisTextFormatter) SupportedType() string {
	return "AnalysisResult"
}

// AnalysisMarkdownFormatter handles markdown formatting for analysis results
type AnalysisMarkdownFormatter struct{}

func (amf *AnalysisMarkdownFormatter) Format(data any) (string, error) {
	result, ok := asAnalysisResult(data)
	if !ok {
		return "", fmt.Errorf("expected AnalysisResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Resume Analysis\n\n")
	output.WriteString(fmt.Sprintf("**Overall Score:** %d/100 (%s)\n\n", result.OverallScore, result.Grade))
	output.WriteString(fmt.Sprintf("**Status:** %s\n\n", result.Status))
	output.WriteString(fmt.Sprintf("**Industry:** %s | **Level:** %s\n\n", result.Industry, result.Level))
	if result.JobTitle != "" {
		output.WriteString(fmt.Sprintf("**Target Role:** %s\n\n", result.JobTitle))
	}

	output.WriteString("## Category Scores\n\n")
	output.WriteString("| Category | Score |\n")
	output.WriteString("|----------|-------|\n")
	for _, cs := range orderedCategories(result.CategoryScores) {
		output.WriteString(fmt.Sprintf("| %s | %d/100 |\n", cs.Name, cs.Score))
	}
	output.WriteString("\n")

	for _, cs := range orderedCategories(result.CategoryScores) {
		if len(cs.Strengths) == 0 && len(cs.Issues) == 0 {
			continue
		}
		output.WriteString(fmt.Sprintf("### %s\n\n", strings.ToUpper(cs.Name[:1])+cs.Name[1:]))
		for _, strength := range cs.Strengths {
			output.WriteString(fmt.Sprintf("- :white_check_mark: %s\n", strength))
		}
		for _, issue := range cs.Issues {
			output.WriteString(fmt.Sprintf("- :warning: %s\n", issue))
		}
		output.WriteString("\n")
	}

	if len(result.MissingKeywords) > 0 {
		output.WriteString("## Missing Keywords\n\n")
		for _, kw := range result.MissingKeywords {
			output.WriteString(fmt.Sprintf("- %s\n", kw))
		}
		output.WriteString("\n")
	}

	if len(result.Suggestions) > 0 {
		output.WriteString("## Suggestions\n\n")
		for i, suggestion := range result.Suggestions {
			output.WriteString(fmt.Sprintf("### %d. %s\n\n", i+1, suggestion.Title))
			output.WriteString(fmt.Sprintf("**Priority:** %s\n\n", suggestion.Priority))
			output.WriteString(suggestion.Description)
			output.WriteString("\n\n")
		}
	} else {
		output.WriteString("## No Suggestions\n\nThe resume already scores well in every category.\n")
	}

	return output.String(), nil
}

func (amf *AnalysisMarkdownFormatter) SupportedType() string {
	return "AnalysisResult"
}
