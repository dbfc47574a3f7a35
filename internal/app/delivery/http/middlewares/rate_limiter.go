package middlewares

import (
	"doctors-portal-service/internal/app/drivers/logger"
	"doctors-portal-service/internal/pkg/exceptions"
	"doctors-portal-service/internal/pkg/utils"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var errClientBlocked = errors.New("client temporarily blocked")

const (
	rateLimiterSweepInterval = time.Minute
	rateLimiterIdleTTL       = 3 * time.Minute
)

type rateClient struct {
	limiter      *rate.Limiter
	seen         time.Time
	blockedUntil time.Time
}

// RateLimiter is a per-IP token bucket that blocks a client for blockTime once it runs dry.
// Clients idle for longer than rateLimiterIdleTTL are forgotten.
type RateLimiter struct {
	log       *zap.Logger
	clients   map[string]*rateClient
	mu        sync.Mutex
	rps       rate.Limit
	burst     int
	blockTime time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func NewRateLimiter(log *zap.Logger, requestsPerSecond, burst int, blockTime time.Duration) *RateLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		log:       log,
		clients:   make(map[string]*rateClient),
		rps:       rate.Limit(requestsPerSecond),
		burst:     burst,
		blockTime: blockTime,
		now:       time.Now,
	}
}

func (l *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip, _, err := net.SplitHostPort(req.RemoteAddr)
		if err != nil {
			ip = req.RemoteAddr
		}

		if !l.allow(ip) {
			requestLog := logger.ForRequest(req.Context(), l.log)
			utils.LogSecurityEvent(requestLog, "rate_limit_block", utils.GetRequestID(req.Context()), "low",
				zap.String("ip", ip),
			)
			utils.BuildErrorResponse(requestLog, w, exceptions.ErrTooManyRequests(errClientBlocked))
			return
		}

		next.ServeHTTP(w, req)
	})
}

func (l *RateLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	client, exists := l.clients[ip]
	if !exists {
		client = &rateClient{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.clients[ip] = client
	}
	client.seen = now

	if now.Before(client.blockedUntil) {
		return false
	}

	if !client.limiter.AllowN(now, 1) {
		client.blockedUntil = now.Add(l.blockTime)
		return false
	}
	return true
}

// sweep runs at most once per rateLimiterSweepInterval and drops idle clients
// whose block has expired. Callers hold l.mu.
func (l *RateLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < rateLimiterSweepInterval {
		return
	}
	l.lastSweep = now

	for ip, client := range l.clients {
		if now.Sub(client.seen) > rateLimiterIdleTTL && !now.Before(client.blockedUntil) {
			delete(l.clients, ip)
		}
	}
}
