package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"resumescore/internal/corpus"
)

// getHealthCheckTimeout returns the configured health check timeout
func (s *Server) getHealthCheckTimeout() time.Duration {
	return s.AppConfig.Observability.HealthCheck.Timeout
}

// healthHandler provides a health check endpoint covering the keyword
// corpus and its circuit breaker
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]any{
		"status":  "healthy",
		"service": "resumescore",
		"version": s.Version,
	}

	corpusStatus := s.checkCorpusHealth()
	response["corpus"] = corpusStatus

	breakerStatus := s.checkCircuitBreakerHealth()
	response["circuit_breaker"] = breakerStatus

	watcherStatus := s.checkSeedWatcherHealth()
	if watcherStatus != nil {
		response["seed_watcher"] = watcherStatus
	}

	overallHealthy := true
	if healthy, ok := corpusStatus["healthy"].(bool); ok && !healthy {
		overallHealthy = false
	}
	if healthy, ok := breakerStatus["healthy"].(bool); ok && !healthy {
		overallHealthy = false
	}

	if !overallHealthy {
		response["status"] = "degraded"
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Printf("Failed to encode health response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// checkCorpusHealth verifies the default keyword set resolves within the
// configured corpus check timeout
func (s *Server) checkCorpusHealth() map[string]any {
	timeout := s.AppConfig.Observability.HealthCheck.CorpusCheckTimeout
	if timeout <= 0 {
		timeout = s.getHealthCheckTimeout()
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	status := map[string]any{
		"keyword_sets": s.Store.Len(),
	}

	set, err := s.CorpusStore.Lookup(ctx, corpus.GeneralKey, corpus.GeneralKey)
	if err != nil || set == nil || len(set.Keywords) == 0 {
		status["healthy"] = false
		if err != nil {
			status["error"] = fmt.Sprintf("Default keyword set lookup failed: %v", err)
		} else {
			status["error"] = "Default keyword set is missing or empty"
		}
		return status
	}

	status["healthy"] = true
	status["default_keywords"] = len(set.Keywords)
	return status
}

// checkCircuitBreakerHealth reports the corpus circuit breaker state
func (s *Server) checkCircuitBreakerHealth() map[string]any {
	bs, ok := s.CorpusStore.(*corpus.BreakerStore)
	if !ok {
		return map[string]any{
			"enabled": false,
			"healthy": true,
		}
	}

	status := bs.Stats()
	status["enabled"] = true
	status["healthy"] = bs.IsHealthy()
	return status
}

// checkSeedWatcherHealth reports seed file watcher state when watching is
// configured
func (s *Server) checkSeedWatcherHealth() map[string]any {
	if s.seedWatcher == nil {
		return nil
	}
	return map[string]any{
		"running":   s.seedWatcher.IsRunning(),
		"seed_file": s.AppConfig.Corpus.SeedFile,
	}
}

// statsHandler provides server statistics including rate limiting and
// corpus info
func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]any{
		"service": "resumescore",
		"version": s.Version,
		"server": map[string]any{
			"max_request_size_bytes": s.MaxRequestSize,
		},
	}

	response["corpus"] = map[string]any{
		"keyword_sets": s.Store.Len(),
		"keys":         s.Store.Keys(),
	}

	if bs, ok := s.CorpusStore.(*corpus.BreakerStore); ok {
		response["circuit_breaker"] = bs.Stats()
	}

	// Add rate limiting stats if enabled
	if s.RateLimiter != nil {
		response["rate_limiting"] = s.RateLimiter.GetStats()
	} else {
		response["rate_limiting"] = map[string]any{
			"enabled": false,
		}
	}

	// Add configuration info
	if s.RateLimit != nil {
		response["rate_limit_config"] = map[string]any{
			"enabled":          s.RateLimit.Enabled,
			"requests_per_min": s.RateLimit.RequestsPerMin,
			"burst_capacity":   s.RateLimit.BurstCapacity,
			"by_ip":            s.RateLimit.ByIP,
			"by_api_key":       s.RateLimit.ByAPIKey,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Printf("Failed to encode stats response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// parseJSONRequest parses JSON request body into the provided struct
func parseJSONRequest(r *http.Request, v any) error {
	if r.Header.Get("Content-Type") != "application/json" {
		return fmt.Errorf("content-type must be application/json")
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return fmt.Errorf("request body too large (limit is %d bytes)", maxBytesErr.Limit)
		}
		return fmt.Errorf("failed to read request body: %w", err)
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			log.Printf("Failed to close request body: %v", err)
		}
	}()

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	return nil
}

// writeErrorResponse writes a standardized error response
func writeErrorResponse(w http.ResponseWriter, error, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := ErrorResponse{
		Error:   error,
		Message: message,
	}

	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Printf("Failed to encode error response: %v", err)
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}
