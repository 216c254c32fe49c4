package middleware

import (
	"tugasku/pkg/log"
)

type Middleware struct {
	l           log.Logger
	rateLimiter *clientLimiter
}

// New creates the middleware set. ratePerMin <= 0 disables rate limiting.
func New(l log.Logger, ratePerMin int) Middleware {
	return Middleware{
		l:           l,
		rateLimiter: newClientLimiter(ratePerMin),
	}
}
