// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rate

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/canonical/org-service/internal/logging"
)

type Middleware struct {
	limiter LimiterInterface

	logger logging.LoggerInterface
}

// Limit rejects requests over the per-client budget with 429 and a
// Retry-After hint. Limiter failures fail open: losing rate limiting is
// preferable to refusing all traffic when the counter store is down.
func (mdw *Middleware) Limit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientKey(r)

			result, err := mdw.limiter.Allow(r.Context(), key)
			if err != nil {
				mdw.logger.Errorf("rate limiter error for %s: %v", key, err)
				next.ServeHTTP(w, r)
				return
			}

			if !result.Allowed {
				mdw.logger.Security().RateLimited(key)
				retryAfter := int(result.RetryAfter / time.Second)
				if retryAfter < 1 {
					retryAfter = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				http.Error(w, "Too many requests", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientKey identifies the caller by source address. The port is stripped so
// one client maps to one counter across connections.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func NewMiddleware(limiter LimiterInterface, logger logging.LoggerInterface) *Middleware {
	mdw := new(Middleware)

	mdw.limiter = limiter
	mdw.logger = logger

	return mdw
}
