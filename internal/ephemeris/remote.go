package ephemeris

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/phrazzld/kundli-api/internal/config"
	"github.com/phrazzld/kundli-api/internal/domain/chart"
)

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 1 << 16

// RemoteProvider queries the HTTP position service:
//
//	GET {base}/v1/longitude?jd=&body=&sidereal=1      -> {"longitude": x}
//	GET {base}/v1/houses?jd=&lat=&lon=&hsys=&sidereal=1 -> {"ascendant": x, "cusps": [...]}
//
// Answers are cached for the configured TTL, outbound calls are paced by a
// token bucket, and transient failures are retried with jittered
// exponential backoff.
type RemoteProvider struct {
	logger     *slog.Logger
	baseURL    string
	apiKey     string
	client     *http.Client
	cache      *cache.Cache
	limiter    *rate.Limiter
	maxRetries int
	retryDelay time.Duration
}

var _ Provider = (*RemoteProvider)(nil)

// RemoteOption customises a RemoteProvider.
type RemoteOption func(*RemoteProvider)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) RemoteOption {
	return func(p *RemoteProvider) { p.client = c }
}

// NewRemoteProvider creates a provider for the service at cfg.BaseURL.
func NewRemoteProvider(cfg config.EphemerisConfig, logger *slog.Logger, opts ...RemoteOption) (*RemoteProvider, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w: invalid base url %q", config.ErrInvalidConfig, cfg.BaseURL)
	}

	p := &RemoteProvider{
		logger:     logger.With("component", "ephemeris"),
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		client:     &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Inf, 0),
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
	}
	if cfg.CacheTTL > 0 {
		p.cache = cache.New(cfg.CacheTTL, 2*cfg.CacheTTL)
	}
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		p.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

type longitudeResponse struct {
	Longitude *float64 `json:"longitude"`
}

type housesResponse struct {
	Ascendant *float64  `json:"ascendant"`
	Cusps     []float64 `json:"cusps"`
}

type housesAnswer struct {
	ascendant float64
	cusps     [12]float64
}

// Longitude implements Provider. Ketu is derived from Rahu.
func (p *RemoteProvider) Longitude(ctx context.Context, m Moment, b chart.Body) (float64, error) {
	if !b.Valid() {
		return 0, fmt.Errorf("%w: %s", chart.ErrUnknownBody, b)
	}
	if b == chart.Ketu {
		rahu, err := p.Longitude(ctx, m, chart.Rahu)
		if err != nil {
			return 0, err
		}
		return chart.KetuFrom(rahu), nil
	}

	key := "lon|" + formatFloat(m.JulianDay) + "|" + string(b)
	if v, ok := p.cached(key); ok {
		return v.(float64), nil
	}

	q := url.Values{}
	q.Set("jd", formatFloat(m.JulianDay))
	q.Set("body", string(b))
	q.Set("sidereal", "1")

	var resp longitudeResponse
	if err := p.getWithRetry(ctx, "/v1/longitude", q, &resp); err != nil {
		return 0, err
	}
	if resp.Longitude == nil || !finite(*resp.Longitude) {
		return 0, fmt.Errorf("%w: missing or non-finite longitude for %s", ErrInvalidResponse, b)
	}

	lon := chart.NormalizeLongitude(*resp.Longitude)
	p.store(key, lon)
	return lon, nil
}

// AscendantAndCusps implements Provider.
func (p *RemoteProvider) AscendantAndCusps(ctx context.Context, m Moment, lat, lon float64, hs HouseSystem) (float64, [12]float64, error) {
	key := strings.Join([]string{"houses", formatFloat(m.JulianDay), formatFloat(lat), formatFloat(lon), hs.String()}, "|")
	if v, ok := p.cached(key); ok {
		a := v.(housesAnswer)
		return a.ascendant, a.cusps, nil
	}

	q := url.Values{}
	q.Set("jd", formatFloat(m.JulianDay))
	q.Set("lat", formatFloat(lat))
	q.Set("lon", formatFloat(lon))
	q.Set("hsys", hs.String())
	q.Set("sidereal", "1")

	var resp housesResponse
	if err := p.getWithRetry(ctx, "/v1/houses", q, &resp); err != nil {
		return 0, [12]float64{}, err
	}
	if resp.Ascendant == nil || !finite(*resp.Ascendant) {
		return 0, [12]float64{}, fmt.Errorf("%w: missing or non-finite ascendant", ErrInvalidResponse)
	}
	if len(resp.Cusps) != 12 {
		return 0, [12]float64{}, fmt.Errorf("%w: got %d cusps, want 12", ErrInvalidResponse, len(resp.Cusps))
	}

	a := housesAnswer{ascendant: chart.NormalizeLongitude(*resp.Ascendant)}
	for i, c := range resp.Cusps {
		if !finite(c) {
			return 0, [12]float64{}, fmt.Errorf("%w: non-finite cusp %d", ErrInvalidResponse, i+1)
		}
		a.cusps[i] = chart.NormalizeLongitude(c)
	}
	p.store(key, a)
	return a.ascendant, a.cusps, nil
}

func (p *RemoteProvider) cached(key string) (any, bool) {
	if p.cache == nil {
		return nil, false
	}
	return p.cache.Get(key)
}

func (p *RemoteProvider) store(key string, v any) {
	if p.cache != nil {
		p.cache.SetDefault(key, v)
	}
}

// statusError carries a non-2xx status from the service.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("%v: status %d", ErrUnavailable, e.code)
}

func (e *statusError) Unwrap() error { return ErrUnavailable }

func (e *statusError) transient() bool {
	return e.code == http.StatusTooManyRequests || e.code >= 500
}

// getWithRetry performs a GET and decodes the JSON answer into out.
// Network failures, 429 and 5xx answers are retried up to maxRetries times
// with delay = retryDelay * 2^attempt * (0.5 + rand(0, 0.5)).
func (p *RemoteProvider) getWithRetry(ctx context.Context, path string, q url.Values, out any) error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for attempt := 0; ; attempt++ {
		err := p.get(ctx, path, q, out)
		if err == nil {
			return nil
		}

		var se *statusError
		transient := !errors.Is(err, ErrInvalidResponse) && ctx.Err() == nil &&
			(!errors.As(err, &se) || se.transient())

		p.logger.WarnContext(ctx, "position service call failed",
			"path", path,
			"attempt", attempt+1,
			"transient", transient,
			"error", err)

		if !transient {
			return err
		}
		if attempt >= p.maxRetries {
			return fmt.Errorf("%w: exceeded maximum retry attempts (%d): %w",
				ErrTransientFailure, p.maxRetries, err)
		}

		backoff := float64(p.retryDelay) * math.Pow(2, float64(attempt))
		delay := time.Duration(backoff * (0.5 + rng.Float64()*0.5))

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", ErrTransientFailure, ctx.Err())
		}
	}
}

func (p *RemoteProvider) get(ctx context.Context, path string, q url.Values, out any) error {
	if err := p.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: rate limiter: %w", ErrUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %w", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	if p.apiKey != "" {
		req.Header.Set("X-API-Key", p.apiKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return &statusError{code: resp.StatusCode}
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return fmt.Errorf("%w: decode: %v", ErrInvalidResponse, err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
