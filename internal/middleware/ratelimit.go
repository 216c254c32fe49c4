package middleware

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"tugasku/pkg/response"
)

const (
	maxTrackedClients = 1000
	clientIdleTTL     = 5 * time.Minute
)

// ErrRateLimited is returned when a client has used up its bucket.
var ErrRateLimited = errors.New("rate limit exceeded")

// RateLimit throttles requests per client IP.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.rateLimiter == nil {
			c.Next()
			return
		}
		if err := m.rateLimiter.Allow(c.ClientIP()); err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: %v", err)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

// clientLimiter keeps one token bucket per client and forgets idle clients.
type clientLimiter struct {
	mu      sync.Mutex
	buckets *expirable.LRU[string, *rate.Limiter]
	refill  rate.Limit
	burst   int
}

func newClientLimiter(requestsPerMin int) *clientLimiter {
	if requestsPerMin <= 0 {
		return nil
	}
	return &clientLimiter{
		buckets: expirable.NewLRU[string, *rate.Limiter](maxTrackedClients, nil, clientIdleTTL),
		refill:  rate.Every(time.Minute / time.Duration(requestsPerMin)),
		burst:   max(requestsPerMin/10, 1),
	}
}

// bucket returns the client's limiter, creating it on first use.
// The lookup and insert happen under one lock so a client never gets two buckets.
func (cl *clientLimiter) bucket(client string) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	if b, ok := cl.buckets.Get(client); ok {
		return b
	}
	b := rate.NewLimiter(cl.refill, cl.burst)
	cl.buckets.Add(client, b)
	return b
}

func (cl *clientLimiter) Allow(client string) error {
	if !cl.bucket(client).Allow() {
		return fmt.Errorf("%w for %s", ErrRateLimited, client)
	}
	return nil
}
