package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type memoryCounter struct {
	mu     sync.Mutex
	counts map[string]int64
	err    error
}

func (m *memoryCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.counts == nil {
		m.counts = make(map[string]int64)
	}
	m.counts[key]++
	return m.counts[key], nil
}

func rateLimitedRouter(counter Counter, limit int) *gin.Engine {
	router := setupTestRouter()
	router.POST("/api/likes", RateLimitMiddleware(counter, limit, time.Minute), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestRateLimit_AllowsUpToLimit(t *testing.T) {
	router := rateLimitedRouter(&memoryCounter{}, 2)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/likes", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/likes", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
}

func TestRateLimit_SeparateClients(t *testing.T) {
	router := rateLimitedRouter(&memoryCounter{}, 1)

	for _, addr := range []string{"10.0.0.1:1234", "10.0.0.2:1234"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/likes", nil)
		req.RemoteAddr = addr
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimit_CounterError(t *testing.T) {
	router := rateLimitedRouter(&memoryCounter{err: errors.New("redis down")}, 10)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/likes", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
