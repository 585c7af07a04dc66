package middleware

import (
	"sync"
	"time"

	"ubwiza_rentals/constants"
	"ubwiza_rentals/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// limiterIdleTTL is long past a full refill, so dropping an idle limiter
// never lets a client through earlier than keeping it would.
const limiterIdleTTL = 10 * time.Minute

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type rateLimiterStore struct {
	limiters  map[string]*limiterEntry
	mu        sync.Mutex
	every     time.Duration
	burst     int
	now       func() time.Time
	lastSweep time.Time
}

func newRateLimiterStore(every time.Duration, burst int) *rateLimiterStore {
	return &rateLimiterStore{
		limiters: make(map[string]*limiterEntry),
		every:    every,
		burst:    burst,
		now:      time.Now,
	}
}

func (s *rateLimiterStore) getLimiter(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastSweep) >= limiterIdleTTL {
		for key, entry := range s.limiters {
			if now.Sub(entry.lastSeen) >= limiterIdleTTL {
				delete(s.limiters, key)
			}
		}
		s.lastSweep = now
	}

	entry, exists := s.limiters[ip]
	if !exists {
		entry = &limiterEntry{limiter: rate.NewLimiter(rate.Every(s.every), s.burst)}
		s.limiters[ip] = entry
	}
	entry.lastSeen = now
	return entry.limiter
}

// RateLimit allows perMinute requests per client IP, all of them usable in a burst.
func RateLimit(perMinute int) fiber.Handler {
	if perMinute <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	store := newRateLimiterStore(time.Minute/time.Duration(perMinute), perMinute)
	return func(c *fiber.Ctx) error {
		ip := c.IP()
		if !store.getLimiter(ip).Allow() {
			utils.GetLogger().Warn("Rate limit exceeded", zap.String("ip", ip), zap.String("path", c.Path()))
			return utils.ErrorResponse(c, fiber.StatusTooManyRequests, constants.TOO_MANY_REQUESTS, nil)
		}
		return c.Next()
	}
}
