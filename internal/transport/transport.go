package transport

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/trackerassist/rt-go/internal/logging"
	"github.com/trackerassist/rt-go/internal/monitoring"
	"github.com/trackerassist/rt-go/internal/resilience"
)

// Options configures the HTTP session against a Request Tracker instance.
type Options struct {
	// BaseURL is the fully qualified REST root, e.g.
	// "https://rt.example.com/REST/2.0".
	BaseURL string

	Timeout      time.Duration
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// RateLimit caps outgoing requests per second. Zero means unlimited.
	RateLimit float64

	// SkipTLSVerify disables certificate verification. Verification is on
	// by default.
	SkipTLSVerify bool

	ProxyURL  string
	UserAgent string

	Logger  *logging.Logger
	Metrics *monitoring.Metrics
}

// Client wraps resty with rate limiting and a circuit breaker. One Client
// holds one authenticated session (token header or login cookie).
type Client struct {
	resty   *resty.Client
	limiter *rate.Limiter
	breaker *resilience.Breaker
	logger  *logging.Logger
	metrics *monitoring.Metrics
	mu      sync.RWMutex
}

// New creates a session client for the given REST root.
func New(opts Options) *Client {
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.RetryMax == 0 {
		opts.RetryMax = 3
	}
	if opts.RetryWaitMin == 0 {
		opts.RetryWaitMin = 1 * time.Second
	}
	if opts.RetryWaitMax == 0 {
		opts.RetryWaitMax = 30 * time.Second
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "rt-go/1.0"
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNop()
	}

	// Pooled transport from retryablehttp; resty drives the retry policy.
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = opts.RetryMax
	retryClient.RetryWaitMin = opts.RetryWaitMin
	retryClient.RetryWaitMax = opts.RetryWaitMax
	retryClient.Logger = nil

	if tr, ok := retryClient.HTTPClient.Transport.(*http.Transport); ok {
		tr.TLSClientConfig = &tls.Config{InsecureSkipVerify: opts.SkipTLSVerify}
	}

	restyClient := resty.New()
	restyClient.
		SetBaseURL(opts.BaseURL).
		SetTimeout(opts.Timeout).
		SetRetryCount(opts.RetryMax).
		SetRetryWaitTime(opts.RetryWaitMin).
		SetRetryMaxWaitTime(opts.RetryWaitMax).
		SetHeader("User-Agent", opts.UserAgent).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	restyClient.SetTransport(retryClient.HTTPClient.Transport)

	if opts.ProxyURL != "" {
		restyClient.SetProxy(opts.ProxyURL)
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if opts.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), int(opts.RateLimit)+1)
	}

	breaker := resilience.New("rt-api", resilience.Settings{
		MaxRequests: 5,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
	})

	return &Client{
		resty:   restyClient,
		limiter: limiter,
		breaker: breaker,
		logger:  opts.Logger,
		metrics: opts.Metrics,
	}
}

// BaseURL returns the configured REST root.
func (c *Client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.resty.BaseURL
}

// SetToken installs RT token authentication for all subsequent requests.
func (c *Client) SetToken(token string) {
	c.SetHeader("Authorization", "token "+token)
}

// SetHeader adds a default header.
func (c *Client) SetHeader(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resty.SetHeader(key, value)
}

// Request creates a new request with rate limiting and circuit breaker
// admission. Every request carries a unique X-Request-Id.
func (c *Client) Request(ctx context.Context) (*resty.Request, error) {
	if c.breaker.State() == resilience.StateOpen {
		return nil, resilience.ErrCircuitOpen
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.resty.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", uuid.NewString()), nil
}

// Do executes an API call under circuit breaker protection and records it.
// resource/operation label the call for metrics and logs, e.g.
// ("ticket", "create").
func (c *Client) Do(resource, operation string, call func() (*resty.Response, error)) (*resty.Response, error) {
	resp, err := c.breaker.Execute(call)
	c.metrics.SetBreakerState(int(c.breaker.State()))

	if err == resilience.ErrCircuitOpen {
		return nil, fmt.Errorf("ticketing service unavailable: %w", err)
	}
	if err != nil {
		c.logger.Debug("api call failed",
			zap.String("resource", resource),
			zap.String("operation", operation),
			zap.Error(err))
		return nil, err
	}

	c.metrics.ObserveCall(resource, operation, resp.StatusCode(), resp.Time())
	c.logger.Debug("api call",
		zap.String("resource", resource),
		zap.String("operation", operation),
		zap.String("method", resp.Request.Method),
		zap.String("url", resp.Request.URL),
		zap.Int("status", resp.StatusCode()),
		zap.Duration("duration", resp.Time()))

	return resp, nil
}

// Login performs the form-based session login against the server root and
// keeps the resulting session cookie in the client's jar.
func (c *Client) Login(ctx context.Context, loginURL, username, password string) error {
	req, err := c.Request(ctx)
	if err != nil {
		return err
	}

	resp, err := c.Do("session", "login", func() (*resty.Response, error) {
		return req.
			SetHeader("Content-Type", "application/x-www-form-urlencoded").
			SetFormData(map[string]string{
				"user": username,
				"pass": password,
			}).
			Post(loginURL)
	})
	if err != nil {
		return fmt.Errorf("session login: %w", err)
	}

	if !resp.IsSuccess() {
		return fmt.Errorf("session login rejected: %s", resp.Status())
	}

	return nil
}
