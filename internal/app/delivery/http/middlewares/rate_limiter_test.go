package middlewares

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRateLimiter_BlocksAfterBurst(t *testing.T) {
	now := time.Date(2023, 1, 5, 9, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(zap.NewNop(), 1, 2, time.Minute)
	limiter.now = func() time.Time { return now }

	assert.True(t, limiter.allow("10.0.0.1"))
	assert.True(t, limiter.allow("10.0.0.1"))
	assert.False(t, limiter.allow("10.0.0.1"), "burst exhausted")
	assert.True(t, limiter.allow("10.0.0.2"), "other clients are unaffected")

	now = now.Add(30 * time.Second)
	assert.False(t, limiter.allow("10.0.0.1"), "still inside the block window")

	now = now.Add(31 * time.Second)
	assert.True(t, limiter.allow("10.0.0.1"), "block expired and tokens refilled")
}

func TestRateLimiter_ForgetsIdleClients(t *testing.T) {
	now := time.Date(2023, 1, 5, 9, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(zap.NewNop(), 1, 1, 10*time.Minute)
	limiter.now = func() time.Time { return now }

	for i := 0; i < 50; i++ {
		assert.True(t, limiter.allow(fmt.Sprintf("10.0.1.%d", i)))
	}
	assert.False(t, limiter.allow("10.0.0.9") && limiter.allow("10.0.0.9"), "second request blocks the client")
	assert.Len(t, limiter.clients, 51)

	now = now.Add(5 * time.Minute)
	assert.True(t, limiter.allow("10.0.0.1"))
	assert.Contains(t, limiter.clients, "10.0.0.9", "a client still serving its block is kept")
	assert.NotContains(t, limiter.clients, "10.0.1.0")
	assert.Len(t, limiter.clients, 2)

	now = now.Add(30 * time.Second)
	limiter.allow("10.0.0.2")
	assert.Len(t, limiter.clients, 3, "no sweep inside the interval")

	now = now.Add(10 * time.Minute)
	assert.True(t, limiter.allow("10.0.0.9"), "expired block is dropped with the idle client")
	assert.Len(t, limiter.clients, 1)
}

func TestRateLimiter_Limit(t *testing.T) {
	limiter := NewRateLimiter(zap.NewNop(), 1, 1, time.Minute)
	handler := limiter.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodPut, "/users/a@x.com", nil))
	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodPut, "/users/a@x.com", nil))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
