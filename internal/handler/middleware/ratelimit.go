package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"sponsor-portal/internal/handler/httperr"
	"sponsor-portal/internal/pkg/clock"
	"sponsor-portal/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const MsgTooManyRequests = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요."

// idleLimiterTTL is how long an unused client bucket is kept
const idleLimiterTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter is a token bucket per client IP
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*clientLimiter
	rate     rate.Limit
	burst    int
	clock    clock.Clock
	logger   *slog.Logger
}

func NewRateLimiter(cfg config.RateLimitConfig, clk clock.Clock, logger *slog.Logger) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*clientLimiter),
		rate:     rate.Limit(cfg.LoginPerSecond),
		burst:    cfg.LoginBurst,
		clock:    clk,
		logger:   logger,
	}
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.clock.Now()
	for k, cl := range rl.limiters {
		if now.Sub(cl.lastSeen) > idleLimiterTTL {
			delete(rl.limiters, k)
		}
	}

	cl, ok := rl.limiters[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[key] = cl
	}
	cl.lastSeen = now
	return cl.limiter.AllowN(now, 1)
}

func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.rate <= 0 {
			c.Next()
			return
		}

		key := c.ClientIP()
		if !rl.allow(key) {
			rl.logger.Warn("rate limit exceeded",
				slog.String("client_ip", key),
				slog.String("path", c.Request.URL.Path))
			httperr.AbortWithError(c, http.StatusTooManyRequests, nil, MsgTooManyRequests)
			return
		}
		c.Next()
	}
}
