package cli

import (
	"context"
	"fmt"

	"resumescore/internal/analysis"
	"resumescore/internal/common"
	"resumescore/internal/corpus"
	"resumescore/internal/extract"
	"resumescore/internal/types"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [resume-file]",
	Short: "Analyze a resume for ATS compatibility",
	Long: `Analyze a resume to evaluate how well it will survive applicant
tracking systems. The resume may be a PDF, DOCX or plain text file.

The analysis includes:
- Keyword coverage against an industry keyword corpus
- Formatting compatibility checks
- Content quality scoring (action verbs, metrics, summary)
- Section structure and ordering
- Actionable improvement suggestions`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if analyzeConfig.OutputFormat == "" {
			analyzeConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(analyzeConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runAnalyze,
}

var analyzeConfig common.CommandConfig

var (
	analyzeIndustry string
	analyzeLevel    string
	analyzeJobTitle string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	analyzeCmd.Flags().StringVar(&analyzeIndustry, "industry", "", "Target industry for keyword matching (default from config)")
	analyzeCmd.Flags().StringVar(&analyzeLevel, "level", "", "Experience level: entry, mid, senior (default from config)")
	analyzeCmd.Flags().StringVar(&analyzeJobTitle, "job-title", "", "Target job title to annotate the result with")

	// Add completion for format flag
	_ = analyzeCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	service, err := buildAnalysisService(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to create analysis service: %w", err)
	}

	industry := analyzeIndustry
	if industry == "" {
		industry = cfg.Analysis.DefaultIndustry
	}
	level := analyzeLevel
	if level == "" {
		level = cfg.Analysis.DefaultLevel
	}
	opts := analysis.Options{
		Industry: industry,
		Level:    level,
		JobTitle: analyzeJobTitle,
	}

	logDetails := func(doc types.RawDocument, cmdCfg common.CommandConfig) {
		logger.Info("Starting resume analysis",
			"filename", doc.Filename,
			"size", doc.Size,
			"industry", opts.Industry,
			"level", opts.Level,
			"output_format", cmdCfg.OutputFormat)
	}

	analyzeOperation := func(ctx context.Context, doc types.RawDocument) (*types.AnalysisResult, error) {
		ctx, cancel := context.WithTimeout(ctx, cfg.Analysis.Timeout)
		defer cancel()
		return service.Analyze(ctx, doc, opts)
	}

	err = common.RunAnalysisCommand(
		cmd.Context(),
		logger,
		analyzeConfig,
		args[0],
		analyzeOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to analyze resume: %w", err)
	}
	logger.Info("Resume analysis completed successfully")
	return nil
}

// buildAnalysisService assembles the extraction, corpus and scoring pipeline
// from configuration.
func buildAnalysisService(ctx context.Context) (*analysis.Service, error) {
	cfg := getConfigFromContext(ctx)
	logger := getLoggerFromContext(ctx)

	store, err := corpus.LoadStore(cfg.Corpus.SeedFile, cfg.Corpus.SeedContent, logger)
	if err != nil {
		return nil, err
	}

	var corpusStore corpus.Store = store
	if cfg.Corpus.CircuitBreaker.Enabled {
		corpusStore = corpus.NewBreakerStore(store, cfg.Corpus.CircuitBreaker, logger)
	}

	extractor := extract.NewTextExtractor(cfg.App.MaxFileSize, logger)
	return analysis.NewService(extractor, corpus.New(corpusStore, logger), logger), nil
}
