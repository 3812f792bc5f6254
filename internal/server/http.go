package server

import (
	"time"

	"resumescore/internal/analysis"
	"resumescore/internal/config"
	"resumescore/internal/corpus"
	resumescoreErrors "resumescore/internal/errors"
	"resumescore/internal/extract"
)

// AnalyzeTextRequest represents a JSON analysis request with inline resume text
type AnalyzeTextRequest struct {
	Text     string `json:"text"`
	Industry string `json:"industry,omitempty"`
	Level    string `json:"level,omitempty"`
	JobTitle string `json:"jobTitle,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Server holds configuration for the HTTP server
type Server struct {
	Host    string
	Port    string
	Version string

	// Full application configuration
	AppConfig *config.Config

	// TLS Configuration
	TLSConfig config.TLSConfig

	// API Authentication
	APIKeys map[string]bool

	// Timeout configurations
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Request size limit
	MaxRequestSize int64

	// Rate limiting
	RateLimit   *config.RateLimitConfig
	RateLimiter *RateLimiter

	// Analysis pipeline
	Analysis    *analysis.Service
	Store       *corpus.MemoryStore
	CorpusStore corpus.Store

	// Seed file watcher, started when corpus.watch is enabled
	seedWatcher *corpus.SeedWatcher

	// Logger
	Logger *resumescoreErrors.Logger
}

// ServerConfig holds configuration for creating a Server instance
// (Refactored to reduce long parameter list in NewServer)
type ServerConfig struct {
	Host           string
	Port           string
	Version        string
	TLSConfig      config.TLSConfig
	APIKeys        []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxRequestSize int64
	RateLimit      *config.RateLimitConfig
}

// NewServer creates a new Server instance from a ServerConfig struct
func NewServer(appCfg *config.Config, cfg ServerConfig, logger *resumescoreErrors.Logger) (*Server, error) {
	// Convert API keys slice to map for O(1) lookup
	apiKeyMap := make(map[string]bool)
	for _, key := range cfg.APIKeys {
		if key != "" {
			apiKeyMap[key] = true
		}
	}

	var rateLimiter *RateLimiter
	if cfg.RateLimit != nil && cfg.RateLimit.Enabled {
		rateLimiter = NewRateLimiter(
			cfg.RateLimit.RequestsPerMin,
			cfg.RateLimit.Window,
			cfg.RateLimit.BurstCapacity,
			logger,
		)
	}

	store, err := corpus.LoadStore(appCfg.Corpus.SeedFile, appCfg.Corpus.SeedContent, logger)
	if err != nil {
		return nil, err
	}

	var corpusStore corpus.Store = store
	if appCfg.Corpus.CircuitBreaker.Enabled {
		corpusStore = corpus.NewBreakerStore(store, appCfg.Corpus.CircuitBreaker, logger)
	}

	extractor := extract.NewTextExtractor(appCfg.App.MaxFileSize, logger)
	svc := analysis.NewService(extractor, corpus.New(corpusStore, logger), logger)

	return &Server{
		Host:           cfg.Host,
		Port:           cfg.Port,
		Version:        cfg.Version,
		AppConfig:      appCfg,
		TLSConfig:      cfg.TLSConfig,
		APIKeys:        apiKeyMap,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxRequestSize: cfg.MaxRequestSize,
		RateLimit:      cfg.RateLimit,
		RateLimiter:    rateLimiter,
		Analysis:       svc,
		Store:          store,
		CorpusStore:    corpusStore,
		Logger:         logger,
	}, nil
}
