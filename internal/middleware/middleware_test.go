package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/ankur09868/whatsapp-automation/internal/middleware"
)

func TestTenant(t *testing.T) {
	t.Run("header propagated into context", func(t *testing.T) {
		var gotTenant string
		handler := middleware.Tenant(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotTenant = middleware.GetTenantID(r.Context())
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest("GET", "/schedule_message/get_schedule_messages", nil)
		req.Header.Set(middleware.TenantIDHeader, "tenant-1")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "tenant-1", gotTenant)
	})

	t.Run("missing header rejected before the handler", func(t *testing.T) {
		called := false
		handler := middleware.Tenant(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))

		req := httptest.NewRequest("GET", "/schedule_message/get_schedule_messages", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, middleware.ErrorCodeMissingTenant, body["error"])
	})

	t.Run("blank header treated as missing", func(t *testing.T) {
		handler := middleware.Tenant(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest("GET", "/dashboard", nil)
		req.Header.Set(middleware.TenantIDHeader, "   ")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRequestID(t *testing.T) {
	handler := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := middleware.GetRequestID(r.Context())
		assert.NotEmpty(t, requestID)
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	}))

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)
}

func TestRateLimiter(t *testing.T) {
	rl := middleware.NewRateLimiter(rate.Limit(1), 1)

	handler := rl.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/test", nil)
	req.RemoteAddr = "127.0.0.1:1234"
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Second immediate request exceeds the burst.
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	time.Sleep(time.Second)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiter_PerTenantBuckets(t *testing.T) {
	rl := middleware.NewRateLimiter(rate.Limit(1), 1)

	handler := rl.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// Same remote address, different tenants: each gets its own budget.
	reqA := httptest.NewRequest("GET", "/test", nil)
	reqA.RemoteAddr = "127.0.0.1:1234"
	reqA.Header.Set(middleware.TenantIDHeader, "tenant-a")

	reqB := httptest.NewRequest("GET", "/test", nil)
	reqB.RemoteAddr = "127.0.0.1:1234"
	reqB.Header.Set(middleware.TenantIDHeader, "tenant-b")

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, reqA)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, reqB)
	assert.Equal(t, http.StatusOK, w.Code)

	// Tenant A has exhausted its own budget.
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, reqA)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestCORS(t *testing.T) {
	config := middleware.DefaultCORSConfig()
	handler := middleware.CORS(config)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("OPTIONS", "/test", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecovery(t *testing.T) {
	logger := zap.NewNop()

	handler := middleware.Recovery(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	}))

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
