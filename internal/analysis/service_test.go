package analysis

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"resumescore/internal/corpus"
	apperrors "resumescore/internal/errors"
	"resumescore/internal/extract"
	"resumescore/internal/types"
)

const sampleResume = `John Smith
john.smith@example.com
(555) 123-4567
Austin, TX

Professional Summary
Seasoned software engineer who has built cloud services in Python and Go for eight years.

Experience
Senior Software Engineer | Acme Corp | 2019-2024
- Designed microservices on AWS using Docker and Kubernetes
- Reduced deployment time by 40% through CI/CD automation
- Led a team of 5+ engineers delivering agile projects

Education
- B.S. Computer Science, University of Texas, 2015, GPA: 3.8

Skills
Python, Go, AWS, Docker, Kubernetes, PostgreSQL, Git, Agile, Leadership, Communication`

func newTestService(t *testing.T) *Service {
	t.Helper()
	store := corpus.NewMemoryStore(corpus.BuiltinSets())
	extractor := extract.NewTextExtractor(0, nil)
	return NewService(extractor, corpus.New(store, nil), nil)
}

func TestAnalyzeTextProducesCompleteResult(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.AnalyzeText(context.Background(), sampleResume, Options{
		Industry: "technology",
		Level:    "mid",
		JobTitle: "Backend Engineer",
	})
	if err != nil {
		t.Fatalf("AnalyzeText returned error: %v", err)
	}

	if result.ID == "" {
		t.Error("result has no ID")
	}
	if result.Industry != "technology" || result.Level != "mid" {
		t.Errorf("resolved corpus = %s/%s", result.Industry, result.Level)
	}
	if result.JobTitle != "Backend Engineer" {
		t.Errorf("job title = %q", result.JobTitle)
	}
	if result.OverallScore < 0 || result.OverallScore > 100 {
		t.Errorf("overall score %d out of bounds", result.OverallScore)
	}
	if result.Grade == "" || result.Status == "" {
		t.Errorf("grade=%q status=%q", result.Grade, result.Status)
	}
	if len(result.CategoryScores) != 4 {
		t.Errorf("expected 4 category scores, got %d", len(result.CategoryScores))
	}
	for name, cs := range result.CategoryScores {
		if cs.Score < 0 || cs.Score > 100 {
			t.Errorf("category %s score %d out of bounds", name, cs.Score)
		}
	}
	if len(result.Suggestions) > 8 {
		t.Errorf("suggestion count %d exceeds 8", len(result.Suggestions))
	}
	if len(result.MissingKeywords) > 10 {
		t.Errorf("missing keyword count %d exceeds 10", len(result.MissingKeywords))
	}
	if result.CreatedAt.IsZero() {
		t.Error("created at not set")
	}
}

func TestAnalyzeTextDeterministic(t *testing.T) {
	svc := newTestService(t)
	opts := Options{Industry: "technology", Level: "senior"}

	first, err := svc.AnalyzeText(context.Background(), sampleResume, opts)
	if err != nil {
		t.Fatalf("first analysis failed: %v", err)
	}
	second, err := svc.AnalyzeText(context.Background(), sampleResume, opts)
	if err != nil {
		t.Fatalf("second analysis failed: %v", err)
	}

	if first.OverallScore != second.OverallScore {
		t.Errorf("overall scores differ: %d vs %d", first.OverallScore, second.OverallScore)
	}
	if first.Grade != second.Grade || first.Status != second.Status {
		t.Errorf("grade/status differ: %s/%s vs %s/%s",
			first.Grade, first.Status, second.Grade, second.Status)
	}
	if !reflect.DeepEqual(first.CategoryScores, second.CategoryScores) {
		t.Error("category scores differ between identical runs")
	}
	if !reflect.DeepEqual(first.Suggestions, second.Suggestions) {
		t.Error("suggestions differ between identical runs")
	}
	if !reflect.DeepEqual(first.FoundKeywords, second.FoundKeywords) {
		t.Error("found keywords differ between identical runs")
	}
	if first.ID == second.ID {
		t.Error("each analysis should get its own ID")
	}
}

func TestAnalyzeTextFallbackAnnotation(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.AnalyzeText(context.Background(), sampleResume, Options{
		Industry: "aerospace",
		Level:    "senior",
	})
	if err != nil {
		t.Fatalf("AnalyzeText returned error: %v", err)
	}

	// No aerospace sets exist, so the general default is used and the
	// result reflects what was actually scored against.
	if result.Industry != "general" || result.Level != "general" {
		t.Errorf("resolved corpus = %s/%s, want general/general", result.Industry, result.Level)
	}
}

func TestAnalyzeTextStatusMatchesScore(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.AnalyzeText(context.Background(), sampleResume, Options{Industry: "technology"})
	if err != nil {
		t.Fatalf("AnalyzeText returned error: %v", err)
	}

	if result.OverallScore >= 70 && result.Status != types.StatusATSCompatible {
		t.Errorf("score %d but status %q", result.OverallScore, result.Status)
	}
	if result.OverallScore < 70 && result.Status != types.StatusNeedsImprovement {
		t.Errorf("score %d but status %q", result.OverallScore, result.Status)
	}
}

func TestAnalyzeDocument(t *testing.T) {
	svc := newTestService(t)

	doc := types.RawDocument{
		Filename: "resume.txt",
		MIMEType: "text/plain",
		Size:     int64(len(sampleResume)),
		Content:  []byte(sampleResume),
	}

	result, err := svc.Analyze(context.Background(), doc, Options{Industry: "technology"})
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if result.OverallScore < 0 || result.OverallScore > 100 {
		t.Errorf("overall score %d out of bounds", result.OverallScore)
	}
}

func TestAnalyzeInvalidDocument(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Analyze(context.Background(), types.RawDocument{
		Filename: "resume.exe",
		Content:  []byte("binary"),
	}, Options{})
	if err == nil {
		t.Fatal("expected validation error")
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Type != apperrors.ErrorTypeValidation {
		t.Errorf("expected validation error, got %s", appErr.Type)
	}
}

func TestAnalyzeTextUnseededCorpus(t *testing.T) {
	svc := NewService(extract.NewTextExtractor(0, nil), corpus.New(corpus.NewMemoryStore(nil), nil), nil)

	_, err := svc.AnalyzeText(context.Background(), sampleResume, Options{})
	if err == nil {
		t.Fatal("expected error for unseeded corpus")
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != apperrors.ErrCodeCorpusNotSeeded {
		t.Errorf("expected code %s, got %s", apperrors.ErrCodeCorpusNotSeeded, appErr.Code)
	}
}
