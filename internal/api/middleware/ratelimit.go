package middleware

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/phrazzld/kundli-api/internal/api/shared"
)

// clientIdleTTL is how long a client's bucket survives without requests.
const clientIdleTTL = 10 * time.Minute

// RateLimiter throttles requests per client address with a token bucket.
// Buckets of idle clients are evicted.
type RateLimiter struct {
	limit   rate.Limit
	burst   int
	clients *cache.Cache
}

// NewRateLimiter allows perSecond sustained requests per client with the
// given burst. A non-positive perSecond disables limiting.
func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	rl := &RateLimiter{
		limit:   rate.Inf,
		burst:   burst,
		clients: cache.New(clientIdleTTL, clientIdleTTL),
	}
	if perSecond > 0 {
		rl.limit = rate.Limit(perSecond)
	}
	return rl
}

// Handler wraps next. Rejected requests get 429 in the shared error
// envelope and a Retry-After header.
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rl.limit == rate.Inf {
			next.ServeHTTP(w, r)
			return
		}
		lim := rl.limiter(clientKey(r))
		if !lim.Allow() {
			retry := time.Duration(float64(time.Second) / float64(rl.limit))
			w.Header().Set("Retry-After", strconv.Itoa(max(1, int(retry.Seconds()+0.5))))
			shared.RespondWithErrorAndLog(w, r, http.StatusTooManyRequests,
				"Too many requests, please slow down", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) limiter(key string) *rate.Limiter {
	if v, ok := rl.clients.Get(key); ok {
		rl.clients.SetDefault(key, v)
		return v.(*rate.Limiter)
	}
	lim := rate.NewLimiter(rl.limit, rl.burst)
	if err := rl.clients.Add(key, lim, cache.DefaultExpiration); err != nil {
		// Lost a race with another request from the same client.
		if v, ok := rl.clients.Get(key); ok {
			return v.(*rate.Limiter)
		}
	}
	return lim
}

// clientKey is the request's remote host. RealIP middleware upstream has
// already replaced RemoteAddr with the forwarded address when present.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
