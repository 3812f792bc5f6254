package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"resumescore/internal/analysis"
	"resumescore/internal/errors"
	"resumescore/internal/observability"
	"resumescore/internal/types"

	"go.opentelemetry.io/otel/attribute"
)

// createAnalyzeHandler wraps the analyze handler with observability.
// It accepts either a multipart upload (file field plus optional form
// fields) or a JSON body with inline resume text.
func (s *Server) createAnalyzeHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumescore.api")
		ctx, span := tracer.Start(ctx, "api.analyze")
		defer span.End()

		doc, opts, parseErr := s.parseAnalyzeRequest(r)
		if parseErr != nil {
			span.RecordError(parseErr)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request", parseErr.Error(), http.StatusBadRequest)
			return
		}

		s.applyAnalysisDefaults(&opts)

		span.SetAttributes(
			attribute.Int64("request.document_bytes", doc.Size),
			attribute.String("request.industry", opts.Industry),
			attribute.String("request.level", opts.Level),
			attribute.String("operation", "analyze"),
		)

		metrics := om.GetMetrics()
		var result *types.AnalysisResult
		err := metrics.TrackAnalysis(ctx, "analyze", func(ctx context.Context) *observability.AnalysisResult {
			output, analyzeErr := s.Analysis.Analyze(ctx, doc, opts)
			result = output

			tracked := &observability.AnalysisResult{
				Error:         analyzeErr,
				DocumentBytes: doc.Size,
			}
			if output != nil {
				tracked.OverallScore = output.OverallScore
			}
			return tracked
		}, om)

		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "analysis"))
			metrics.RecordBusinessMetric(ctx, "document_decoded", false, om,
				attribute.String("error", err.Error()))
			writeAppError(w, err)
			return
		}

		metrics.RecordBusinessMetric(ctx, "document_decoded", true, om,
			attribute.String("format", doc.MIMEType))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("response.overall_score", result.OverallScore),
			attribute.String("response.grade", result.Grade),
			attribute.Int("response.suggestions", len(result.Suggestions)),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// parseAnalyzeRequest builds a document and analysis options from either a
// multipart upload or a JSON body.
func (s *Server) parseAnalyzeRequest(r *http.Request) (types.RawDocument, analysis.Options, error) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		return s.parseMultipartRequest(r)
	}

	var req AnalyzeTextRequest
	if err := parseJSONRequest(r, &req); err != nil {
		return types.RawDocument{}, analysis.Options{}, err
	}
	if strings.TrimSpace(req.Text) == "" {
		return types.RawDocument{}, analysis.Options{}, fmt.Errorf("text field is required")
	}

	doc := types.RawDocument{
		Filename: "inline.txt",
		MIMEType: "text/plain",
		Size:     int64(len(req.Text)),
		Content:  []byte(req.Text),
	}
	opts := analysis.Options{
		Industry: req.Industry,
		Level:    req.Level,
		JobTitle: req.JobTitle,
	}
	return doc, opts, nil
}

func (s *Server) parseMultipartRequest(r *http.Request) (types.RawDocument, analysis.Options, error) {
	if err := r.ParseMultipartForm(s.MaxRequestSize); err != nil {
		return types.RawDocument{}, analysis.Options{}, fmt.Errorf("invalid multipart form: %w", err)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return types.RawDocument{}, analysis.Options{}, fmt.Errorf("file field is required")
	}
	defer func() { _ = file.Close() }()

	doc, err := readUploadedFile(file, header, s.MaxRequestSize)
	if err != nil {
		return types.RawDocument{}, analysis.Options{}, err
	}

	opts := analysis.Options{
		Industry: r.FormValue("industry"),
		Level:    r.FormValue("level"),
		JobTitle: r.FormValue("jobTitle"),
	}
	return doc, opts, nil
}

func readUploadedFile(file multipart.File, header *multipart.FileHeader, maxSize int64) (types.RawDocument, error) {
	if header.Size > maxSize {
		return types.RawDocument{}, fmt.Errorf("file exceeds maximum size of %d bytes", maxSize)
	}

	content, err := io.ReadAll(io.LimitReader(file, maxSize+1))
	if err != nil {
		return types.RawDocument{}, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if int64(len(content)) > maxSize {
		return types.RawDocument{}, fmt.Errorf("file exceeds maximum size of %d bytes", maxSize)
	}

	return types.RawDocument{
		Filename: header.Filename,
		MIMEType: header.Header.Get("Content-Type"),
		Size:     int64(len(content)),
		Content:  content,
	}, nil
}

// applyAnalysisDefaults fills in the configured default industry and level
// when the request leaves them empty.
func (s *Server) applyAnalysisDefaults(opts *analysis.Options) {
	if strings.TrimSpace(opts.Industry) == "" {
		opts.Industry = s.AppConfig.Analysis.DefaultIndustry
	}
	if strings.TrimSpace(opts.Level) == "" {
		opts.Level = s.AppConfig.Analysis.DefaultLevel
	}
}

// writeAppError maps an application error to the right HTTP status code.
func writeAppError(w http.ResponseWriter, err error) {
	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) {
		writeErrorResponse(w, "Analysis failed", err.Error(), http.StatusInternalServerError)
		return
	}

	status := http.StatusInternalServerError
	switch appErr.Type {
	case errors.ErrorTypeValidation:
		status = http.StatusBadRequest
	case errors.ErrorTypeDecode:
		status = http.StatusUnprocessableEntity
	case errors.ErrorTypeCorpus:
		status = http.StatusServiceUnavailable
	}
	if appErr.Code == errors.ErrCodeCorpusNotSeeded {
		status = http.StatusServiceUnavailable
	}

	writeErrorResponse(w, "Analysis failed", appErr.Message, status)
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return originalMiddleware(func(w http.ResponseWriter, r *http.Request) {
			// Check if this request was rate limited by examining the response
			// We'll wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			next(wrapper, r)

			// If rate limited, record metric
			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordBusinessMetric(r.Context(), "rate_limit_hit", true, om,
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
