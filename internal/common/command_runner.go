package common

import (
	"context"
	"fmt"
	"os"

	"resumescore/internal/errors"
	"resumescore/internal/types"
)

// AnalysisOperationFunc runs the analysis pipeline over a raw document.
type AnalysisOperationFunc func(context.Context, types.RawDocument) (*types.AnalysisResult, error)

// LogDetailsFunc defines how to log the start of an operation.
type LogDetailsFunc func(doc types.RawDocument, cfg CommandConfig)

// RunAnalysisCommand encapsulates the common logic for file-based CLI commands.
func RunAnalysisCommand(
	ctx context.Context,
	logger *errors.Logger,
	cmdConfig CommandConfig,
	filename string,
	operation AnalysisOperationFunc,
	logDetails LogDetailsFunc,
) error {
	// Pass the logger when creating helpers
	fileProcessor := NewFileProcessor(logger)
	outputHandler := NewOutputHandler(logger)

	doc, err := fileProcessor.ReadDocument(filename)
	if err != nil {
		return err
	}

	logDetails(doc, cmdConfig)

	result, err := operation(ctx, doc)
	if err != nil {
		return err
	}

	// Report the headline result on stderr so piped output stays clean
	if logger != nil {
		logger.Info("Analysis complete",
			"overall_score", result.OverallScore,
			"grade", result.Grade,
			"status", result.Status)
	} else {
		fmt.Fprintf(os.Stderr, "Analysis complete: score=%d grade=%s status=%s\n",
			result.OverallScore, result.Grade, result.Status)
	}

	return outputHandler.HandleOutput(result, cmdConfig)
}
