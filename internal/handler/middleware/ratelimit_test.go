//go:build unit

package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"sponsor-portal/internal/handler/middleware"
	"sponsor-portal/internal/pkg/clock"
	"sponsor-portal/internal/pkg/config"
	"sponsor-portal/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(cfg config.RateLimitConfig, clk clock.Clock) *gin.Engine {
	gin.SetMode(gin.TestMode)
	limiter := middleware.NewRateLimiter(cfg, clk, slog.New(slog.NewTextHandler(io.Discard, nil)))

	r := gin.New()
	r.POST("/login", limiter.Handler(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestRateLimiter(t *testing.T) {
	t.Run("blocks after the burst and refills over time", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC))
		r := newLimitedRouter(config.RateLimitConfig{LoginPerSecond: 1, LoginBurst: 2}, clk)

		assert.Equal(t, http.StatusNoContent, httptest.PerformRequest(t, r, http.MethodPost, "/login", nil, "").Code)
		assert.Equal(t, http.StatusNoContent, httptest.PerformRequest(t, r, http.MethodPost, "/login", nil, "").Code)

		blocked := httptest.PerformRequest(t, r, http.MethodPost, "/login", nil, "")
		httptest.AssertErrorResponse(t, blocked, http.StatusTooManyRequests, middleware.MsgTooManyRequests)

		clk.Advance(time.Second)
		assert.Equal(t, http.StatusNoContent, httptest.PerformRequest(t, r, http.MethodPost, "/login", nil, "").Code)
	})

	t.Run("disabled when the rate is zero", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC))
		r := newLimitedRouter(config.RateLimitConfig{LoginPerSecond: 0, LoginBurst: 0}, clk)

		for range 10 {
			assert.Equal(t, http.StatusNoContent, httptest.PerformRequest(t, r, http.MethodPost, "/login", nil, "").Code)
		}
	})
}
