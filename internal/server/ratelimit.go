package server

import (
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/samber/lo"

	"github.com/osse101/JackpotEngine_Go/internal/logger"
)

type clientCounts struct {
	requests   int
	failedAuth int
}

// ClientTracker counts requests and failed logins per client IP. Each client's
// window opens on its first request and lasts RateLimitWindow; at most
// MaxTrackedClients are held, least recently seen first out.
type ClientTracker struct {
	mu      sync.Mutex
	clients *expirable.LRU[string, *clientCounts]
}

func NewClientTracker() *ClientTracker {
	return &ClientTracker{
		clients: expirable.NewLRU[string, *clientCounts](MaxTrackedClients, nil, RateLimitWindow),
	}
}

// counts returns the live window for ip. Caller must hold the mutex.
func (t *ClientTracker) counts(ip string) *clientCounts {
	c, ok := t.clients.Get(ip)
	if !ok {
		c = &clientCounts{}
		t.clients.Add(ip, c)
	}
	return c
}

// RecordFailedAuth counts a rejected API key and alerts once the threshold is reached
func (t *ClientTracker) RecordFailedAuth(ip string) {
	t.mu.Lock()
	c := t.counts(ip)
	c.failedAuth++
	failed := c.failedAuth
	t.mu.Unlock()

	if failed >= FailedAuthAlertCount {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", failed)
	}
}

// FailedAuthCount reports the failed logins of ip in its current window
func (t *ClientTracker) FailedAuthCount(ip string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if c, ok := t.clients.Peek(ip); ok {
		return c.failedAuth
	}
	return 0
}

// Allow counts a request and reports whether ip is still under RateLimitMaxRequests
func (t *ClientTracker) Allow(ip string) bool {
	t.mu.Lock()
	c := t.counts(ip)
	c.requests++
	n := c.requests
	t.mu.Unlock()

	if n <= RateLimitMaxRequests {
		return true
	}
	if n%HighRateLogEveryCount == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", n)
	}
	return false
}

// RateLimitMiddleware answers 429 to clients over their request budget
func RateLimitMiddleware(trustedProxies []string, tracker *ClientTracker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := extractIP(r, trustedProxies)
			if !tracker.Allow(ip) {
				logger.FromContext(r.Context()).Warn(ErrMsgTooManyRequests, "ip", ip, "path", r.URL.Path)
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractIP returns the peer address, or the last X-Forwarded-For hop when the
// peer is a trusted proxy
func extractIP(r *http.Request, trustedProxies []string) string {
	peer, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		peer = r.RemoteAddr
	}
	if !lo.Contains(trustedProxies, peer) {
		return peer
	}

	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return peer
	}
	if i := strings.LastIndexByte(forwarded, ','); i >= 0 {
		forwarded = forwarded[i+1:]
	}
	return strings.TrimSpace(forwarded)
}
