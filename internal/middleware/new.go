package middleware

import (
	"sentellent-console/pkg/log"
)

// Middleware bundles the cross-cutting gin middlewares.
type Middleware struct {
	l              log.Logger
	allowedOrigins []string
	limiter        *rateLimiter
}

// New creates the middleware set. rateLimitPerMin <= 0 disables limiting.
func New(l log.Logger, allowedOrigins []string, rateLimitPerMin int) Middleware {
	var limiter *rateLimiter
	if rateLimitPerMin > 0 {
		limiter = newRateLimiter(rateLimitPerMin)
	}

	return Middleware{
		l:              l,
		allowedOrigins: allowedOrigins,
		limiter:        limiter,
	}
}
