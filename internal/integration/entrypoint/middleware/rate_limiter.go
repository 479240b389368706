// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/farmx/ledger-backend/internal/integration/entrypoint/dto"
)

// ErrCodeRateLimited is the error code returned with 429 responses.
const ErrCodeRateLimited = "API-020001"

// RateLimiter provides IP-based rate limiting functionality.
type RateLimiter struct {
	limiter *limiter.Limiter
}

// NewRateLimiter creates a rate limiter from a formatted rate such as "300-M".
func NewRateLimiter(formattedRate string) (*RateLimiter, error) {
	rate, err := limiter.NewRateFromFormatted(formattedRate)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit %q: %w", formattedRate, err)
	}

	return &RateLimiter{
		limiter: limiter.New(memory.NewStore(), rate),
	}, nil
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		limit, err := rl.limiter.Get(c.Request.Context(), clientIP)
		if err != nil {
			// Fail open; a broken store must not take the API down.
			slog.Warn("Rate limiter store failed", "error", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(limit.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(limit.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(limit.Reset, 10))

		if limit.Reached {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  ErrCodeRateLimited,
			})
			return
		}

		c.Next()
	}
}
