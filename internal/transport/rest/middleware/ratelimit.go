package middleware

import (
	"net"
	"net/http"

	"go.uber.org/zap"

	"kisanmitra/internal/cache"
	"kisanmitra/internal/transport/rest/response"
)

// RateLimitMiddleware throttles requests per client IP
type RateLimitMiddleware struct {
	limiter cache.RateLimiter
	logger  *zap.Logger
}

// NewRateLimitMiddleware creates a new rate limit middleware
func NewRateLimitMiddleware(limiter cache.RateLimiter, logger *zap.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter, logger: logger}
}

// Limit rejects clients that exceed the window. A limiter backend failure
// fails open.
func (m *RateLimitMiddleware) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, err := m.limiter.Allow(r.Context(), "ip:"+clientIP(r))
		if err != nil {
			m.logger.Warn("rate limiter unavailable", zap.Error(err))
			next.ServeHTTP(w, r)
			return
		}
		if !allowed {
			response.Error(w, r, http.StatusTooManyRequests, response.CodeRateLimited, "too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
