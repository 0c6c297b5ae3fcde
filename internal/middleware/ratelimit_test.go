package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/openslot/slotbook/config"
	"github.com/openslot/slotbook/internal/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(cfg config.RateLimitConfig, rdb *redis.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zerolog.Nop()
	r := gin.New()
	r.Use(middleware.RateLimit(cfg, rdb, &logger))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func ping(r *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit_BlocksWhenExhausted(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	cfg := config.RateLimitConfig{
		Enabled:        true,
		Capacity:       2,
		RefillTokens:   1,
		RefillInterval: time.Minute,
		TTL:            10 * time.Minute,
		Prefix:         "rl",
	}
	r := newLimitedRouter(cfg, rdb)

	assert.Equal(t, http.StatusOK, ping(r).Code)
	assert.Equal(t, http.StatusOK, ping(r).Code)

	w := ping(r)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestRateLimit_FailsOpenOnRedisError(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	mr.Close()

	cfg := config.RateLimitConfig{
		Enabled:        true,
		Capacity:       1,
		RefillTokens:   1,
		RefillInterval: time.Minute,
		TTL:            10 * time.Minute,
		Prefix:         "rl",
	}
	r := newLimitedRouter(cfg, rdb)

	// Redis is gone; requests still go through.
	assert.Equal(t, http.StatusOK, ping(r).Code)
	assert.Equal(t, http.StatusOK, ping(r).Code)
}

func TestRateLimit_LocalFallback(t *testing.T) {
	cfg := config.RateLimitConfig{
		Enabled:        true,
		Capacity:       2,
		RefillTokens:   1,
		RefillInterval: time.Minute,
		TTL:            10 * time.Minute,
		Prefix:         "rl",
	}
	r := newLimitedRouter(cfg, nil)

	assert.Equal(t, http.StatusOK, ping(r).Code)
	assert.Equal(t, http.StatusOK, ping(r).Code)
	assert.Equal(t, http.StatusTooManyRequests, ping(r).Code)
}

func TestRateLimit_Disabled(t *testing.T) {
	cfg := config.RateLimitConfig{Enabled: false}
	r := newLimitedRouter(cfg, nil)

	for i := 0; i < 10; i++ {
		assert.Equal(t, http.StatusOK, ping(r).Code)
	}
}
