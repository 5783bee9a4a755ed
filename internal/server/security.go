package server

import (
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimiter counts requests per client IP over a fixed window. The client
// table is an LRU so a scan from many addresses cannot grow it without bound.
type RateLimiter struct {
	mu      sync.Mutex
	clients *simplelru.LRU[string, int]
	limit   int
	window  time.Duration
	resetAt time.Time
}

// NewRateLimiter allows limit requests per IP per window.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	clients, err := simplelru.NewLRU[string, int](MaxTrackedClients, nil)
	if err != nil {
		// Only fails for a non-positive size
		panic(err)
	}
	return &RateLimiter{
		clients: clients,
		limit:   limit,
		window:  window,
		resetAt: time.Now().Add(window),
	}
}

// NewDefaultRateLimiter uses the standard budget.
func NewDefaultRateLimiter() *RateLimiter {
	return NewRateLimiter(RateLimitRequests, RateLimitWindowMinutes*time.Minute)
}

// RecordRequest counts a request from ip and reports whether it is within budget.
func (l *RateLimiter) RecordRequest(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now := time.Now(); !now.Before(l.resetAt) {
		l.clients.Purge()
		l.resetAt = now.Add(l.window)
	}

	count, _ := l.clients.Get(ip)
	count++
	l.clients.Add(ip, count)

	if count > l.limit {
		if count%100 == 0 {
			slog.Warn(SecurityAlertHighRate,
				"ip", ip,
				"count_in_window", count)
		}
		return false
	}
	return true
}

// Count returns the requests seen from ip in the current window.
func (l *RateLimiter) Count(ip string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	count, _ := l.clients.Peek(ip)
	return count
}

// RetryAfter is the time left in the current window.
func (l *RateLimiter) RetryAfter() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	if d := time.Until(l.resetAt); d > 0 {
		return d
	}
	return 0
}

// RateLimitMiddleware rejects clients over their request budget
func RateLimitMiddleware(trustedProxies []string, limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := extractIP(r, trustedProxies)
			if !limiter.RecordRequest(ip) {
				secs := int(math.Ceil(limiter.RetryAfter().Seconds()))
				w.Header().Set(HeaderRetryAfter, strconv.Itoa(secs))
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractIP gets the client IP address from request.
// It only trusts X-Forwarded-For if the request comes from a trusted proxy.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	isTrusted := false
	for _, proxy := range trustedProxies {
		if proxy == remoteIP {
			isTrusted = true
			break
		}
	}

	if isTrusted {
		if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
			// Rightmost entry is the hop our trusted proxy saw
			ips := strings.Split(forwarded, ",")
			return strings.TrimSpace(ips[len(ips)-1])
		}
	}

	return remoteIP
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for name, value := range securityHeaders {
				w.Header().Set(name, value)
			}
			next.ServeHTTP(w, r)
		})
	}
}
