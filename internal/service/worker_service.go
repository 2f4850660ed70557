package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ankur09868/whatsapp-automation/internal/config"
)

// workerService proxies requests to the external messaging VM. The VM owns
// session state (QR login, tracking) so requests are forwarded verbatim; only
// availability is managed here, via the circuit breaker.
type workerService struct {
	cfg            *config.Config
	httpClient     *http.Client
	logger         *zap.Logger
	circuitBreaker *CircuitBreaker
}

func NewWorkerService(cfg *config.Config, logger *zap.Logger) WorkerService {
	cb := NewCircuitBreaker(&cfg.Worker.CircuitBreaker, logger)

	return &workerService{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Worker.Timeout) * time.Second,
		},
		logger:         logger,
		circuitBreaker: cb,
	}
}

// Forward relays the request to the worker VM and returns its status code and
// body. Transport failures and 5xx responses count against the breaker, but a
// 5xx the worker actually answered with is still relayed to the caller.
func (s *workerService) Forward(ctx context.Context, method, path string, body []byte) (int, []byte, error) {
	url := strings.TrimRight(s.cfg.Worker.BaseURL, "/") + path

	var (
		statusCode   int
		responseBody []byte
	)

	err := s.circuitBreaker.Execute(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("failed to create worker request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("failed to reach worker: %w", err)
		}
		defer func() {
			if err := resp.Body.Close(); err != nil {
				s.logger.Warn("Failed to close worker response body", zap.Error(err))
			}
		}()

		responseBody, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read worker response: %w", err)
		}
		statusCode = resp.StatusCode

		if resp.StatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("worker returned status %d", resp.StatusCode)
		}

		return nil
	})
	if err != nil {
		s.logger.Error("Worker proxy request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("circuitBreakerState", s.circuitBreaker.GetState()),
			zap.Error(err))
		if statusCode == 0 {
			return 0, nil, err
		}
		// The worker answered; its status and body go back to the caller
		// even though the failure was recorded by the breaker.
	}

	return statusCode, responseBody, nil
}

func (s *workerService) GetCircuitBreakerStatus() (state string, requests, failures uint32) {
	state = s.circuitBreaker.GetState()
	requests, failures = s.circuitBreaker.GetCounts()
	return
}
