package service

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ankur09868/whatsapp-automation/internal/config"
)

func workerConfigForTest(baseURL string) *config.Config {
	return &config.Config{
		Worker: config.WorkerConfig{
			BaseURL: baseURL,
			Timeout: 5,
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxRequests:      3,
				Interval:         60,
				Timeout:          60,
				FailureRatio:     0.6,
				ConsecutiveFails: 3,
			},
		},
	}
}

func TestWorkerService_Forward(t *testing.T) {
	t.Run("relays method, path and body", func(t *testing.T) {
		var gotMethod, gotPath, gotBody string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			b, _ := io.ReadAll(r.Body)
			gotBody = string(b)
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"qr":"data"}`))
		}))
		defer server.Close()

		svc := NewWorkerService(workerConfigForTest(server.URL), zap.NewNop())

		status, body, err := svc.Forward(context.Background(), http.MethodPost, "/tracking/start", []byte(`{"session":"s1"}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `{"qr":"data"}`, string(body))
		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, "/tracking/start", gotPath)
		assert.JSONEq(t, `{"session":"s1"}`, gotBody)
	})

	t.Run("4xx passes through without tripping the breaker", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		svc := NewWorkerService(workerConfigForTest(server.URL), zap.NewNop())

		for i := 0; i < 5; i++ {
			status, _, err := svc.Forward(context.Background(), http.MethodGet, "/get-qr", nil)
			require.NoError(t, err)
			assert.Equal(t, http.StatusNotFound, status)
		}

		state, _, failures := svc.GetCircuitBreakerStatus()
		assert.Equal(t, CircuitBreakerClosed, state)
		assert.Zero(t, failures)
	})

	t.Run("5xx is relayed to the caller while counting against the breaker", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`{"error":"session expired"}`))
		}))
		defer server.Close()

		svc := NewWorkerService(workerConfigForTest(server.URL), zap.NewNop())

		status, body, err := svc.Forward(context.Background(), http.MethodGet, "/get-qr", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadGateway, status)
		assert.JSONEq(t, `{"error":"session expired"}`, string(body))

		_, _, failures := svc.GetCircuitBreakerStatus()
		assert.Equal(t, uint32(1), failures)
	})

	t.Run("repeated 5xx opens the breaker", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		svc := NewWorkerService(workerConfigForTest(server.URL), zap.NewNop())

		for i := 0; i < 3; i++ {
			status, _, err := svc.Forward(context.Background(), http.MethodGet, "/get-qr", nil)
			require.NoError(t, err)
			assert.Equal(t, http.StatusInternalServerError, status)
		}

		state, _, _ := svc.GetCircuitBreakerStatus()
		assert.Equal(t, CircuitBreakerOpen, state)

		// Subsequent calls are rejected without reaching the worker.
		_, _, err := svc.Forward(context.Background(), http.MethodGet, "/get-qr", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "circuit breaker is open")
	})

	t.Run("unreachable worker returns an error", func(t *testing.T) {
		svc := NewWorkerService(workerConfigForTest("http://127.0.0.1:1"), zap.NewNop())

		status, _, err := svc.Forward(context.Background(), http.MethodGet, "/get-qr", nil)
		require.Error(t, err)
		assert.Zero(t, status)
	})
}
