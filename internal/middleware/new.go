package middleware

import (
	"extensible-calendar/config"
	"extensible-calendar/internal/metric"
	"extensible-calendar/pkg/log"
)

type Middleware struct {
	l           log.Logger
	metrics     *metric.Metrics
	rateLimiter *rateLimiter
}

// New builds the shared middleware set. A disabled rate limit config leaves
// RateLimit as a pass-through.
func New(l log.Logger, m *metric.Metrics, rl config.RateLimitConfig) Middleware {
	mw := Middleware{
		l:       l,
		metrics: m,
	}
	if rl.Enabled {
		mw.rateLimiter = newRateLimiter(rl.RequestsPerMin, rl.MaxClients, rl.ClientRetention)
	}
	return mw
}
