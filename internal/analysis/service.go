// Package analysis wires document extraction, corpus lookup and scoring
// into a single resume analysis pipeline.
package analysis

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"resumescore/internal/corpus"
	"resumescore/internal/errors"
	"resumescore/internal/extract"
	"resumescore/internal/scoring"
	"resumescore/internal/types"
)

// Options selects the keyword corpus and annotates the result.
type Options struct {
	Industry string
	Level    string
	JobTitle string
}

// Service runs the analysis pipeline end to end.
type Service struct {
	extractor *extract.TextExtractor
	corpus    *corpus.Corpus
	logger    *errors.Logger
}

// NewService creates an analysis service backed by the given extractor and
// keyword corpus. A nil logger falls back to warn-level output.
func NewService(extractor *extract.TextExtractor, c *corpus.Corpus, logger *errors.Logger) *Service {
	if logger == nil {
		logger = errors.NewLogger(slog.LevelWarn)
	}
	return &Service{
		extractor: extractor,
		corpus:    c,
		logger:    logger,
	}
}

// Analyze decodes a raw document and scores the extracted text.
func (s *Service) Analyze(ctx context.Context, doc types.RawDocument, opts Options) (*types.AnalysisResult, error) {
	text, err := s.extractor.Extract(doc)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Document decoded",
		"filename", doc.Filename,
		"size", doc.Size,
		"text_length", len(text))

	return s.AnalyzeText(ctx, text, opts)
}

// AnalyzeText scores already-extracted plain text. The same text with the
// same options always produces the same scores and suggestions.
func (s *Service) AnalyzeText(ctx context.Context, text string, opts Options) (*types.AnalysisResult, error) {
	set, err := s.corpus.Resolve(ctx, opts.Industry, opts.Level)
	if err != nil {
		return nil, err
	}

	info := extract.ExtractInfo(text)

	keywordScore, match := scoring.ScoreKeywords(info, text, set)
	scores := map[string]types.CategoryScore{
		types.CategoryKeywords:   keywordScore,
		types.CategoryFormatting: scoring.ScoreFormatting(info, text),
		types.CategoryContent:    scoring.ScoreContent(info, text),
		types.CategoryStructure:  scoring.ScoreStructure(info, text),
	}

	overall, grade, status := scoring.Aggregate(scores)

	result := &types.AnalysisResult{
		ID:              uuid.NewString(),
		Industry:        set.Industry,
		Level:           set.Level,
		JobTitle:        opts.JobTitle,
		OverallScore:    overall,
		Grade:           grade,
		Status:          status,
		CategoryScores:  scores,
		FoundKeywords:   match.Found,
		MissingKeywords: match.Missing,
		Suggestions:     scoring.GenerateSuggestions(scores, overall),
		StructuredInfo:  info,
		CreatedAt:       time.Now().UTC(),
	}

	s.logger.Info("Resume analyzed",
		"id", result.ID,
		"industry", result.Industry,
		"level", result.Level,
		"overall_score", result.OverallScore,
		"grade", result.Grade,
		"status", result.Status)

	return result, nil
}
