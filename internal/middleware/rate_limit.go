// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package middleware

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitConfig defines the rate limiting parameters.
type RateLimitConfig struct {
	// Requests is the number of requests allowed per Window.
	Requests int
	Window   time.Duration
	Burst    int
}

// LoginRateLimit throttles password attempts per client.
var LoginRateLimit = RateLimitConfig{
	Requests: 5,
	Window:   time.Minute,
	Burst:    5,
}

// limiterIdleAfter is how often idle per-client limiters are swept.
const limiterIdleAfter = 5 * time.Minute

// KeyFunc extracts the key requests are grouped by.
type KeyFunc func(*http.Request) string

// ParseTrustedProxies parses a comma separated list of CIDRs or bare
// addresses of the proxies allowed to set forwarding headers.
func ParseTrustedProxies(raw string) ([]netip.Prefix, error) {
	var prefixes []netip.Prefix
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if strings.Contains(item, "/") {
			prefix, err := netip.ParsePrefix(item)
			if err != nil {
				return nil, fmt.Errorf("invalid trusted proxy %q: %w", item, err)
			}
			prefixes = append(prefixes, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(item)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy %q: %w", item, err)
		}
		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return prefixes, nil
}

// ClientIP returns a KeyFunc resolving the client address. The peer address
// is used unless the peer is a trusted proxy; then X-Forwarded-For is walked
// from the right and the first untrusted hop wins, falling back to X-Real-IP.
func ClientIP(trusted []netip.Prefix) KeyFunc {
	isTrusted := func(raw string) bool {
		addr, err := netip.ParseAddr(strings.TrimSpace(raw))
		if err != nil {
			return false
		}
		addr = addr.Unmap()
		for _, prefix := range trusted {
			if prefix.Contains(addr) {
				return true
			}
		}
		return false
	}

	return func(r *http.Request) string {
		peer, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			peer = r.RemoteAddr
		}
		if len(trusted) == 0 || !isTrusted(peer) {
			return peer
		}

		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			hops := strings.Split(xff, ",")
			for i := len(hops) - 1; i >= 0; i-- {
				hop := strings.TrimSpace(hops[i])
				if hop != "" && !isTrusted(hop) {
					return hop
				}
			}
		}
		if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
			return xri
		}
		return peer
	}
}

type rateLimiter struct {
	limiters    sync.Map // map[string]*rate.Limiter
	limit       rate.Limit
	burst       int
	mu          sync.Mutex
	lastCleanup time.Time
}

func (rl *rateLimiter) get(key string) *rate.Limiter {
	if limiter, ok := rl.limiters.Load(key); ok {
		return limiter.(*rate.Limiter)
	}

	actual, _ := rl.limiters.LoadOrStore(key, rate.NewLimiter(rl.limit, rl.burst))
	rl.sweep()
	return actual.(*rate.Limiter)
}

// sweep drops limiters whose bucket has refilled, i.e. clients that went quiet.
func (rl *rateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if time.Since(rl.lastCleanup) < limiterIdleAfter {
		return
	}
	rl.lastCleanup = time.Now()

	rl.limiters.Range(func(key, value any) bool {
		if value.(*rate.Limiter).Tokens() >= float64(rl.burst) {
			rl.limiters.Delete(key)
		}
		return true
	})
}

// RateLimitMiddleware rejects requests with 429 once a key exceeds config.
func RateLimitMiddleware(config RateLimitConfig, keyFunc KeyFunc) func(http.Handler) http.Handler {
	rl := &rateLimiter{
		limit:       rate.Limit(float64(config.Requests) / config.Window.Seconds()),
		burst:       config.Burst,
		lastCleanup: time.Now(),
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyFunc(r)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			limiter := rl.get(key)
			if !limiter.Allow() {
				reservation := limiter.Reserve()
				retryAfter := max(int(reservation.Delay().Seconds()), 1)
				reservation.Cancel()

				slog.WarnContext(r.Context(), "rate limit exceeded", "key", key, "retry_after", retryAfter)
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				WriteError(w, r, http.StatusTooManyRequests, "too many requests, try again later")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
