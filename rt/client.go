package rt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/trackerassist/rt-go/internal/logging"
	"github.com/trackerassist/rt-go/internal/monitoring"
	"github.com/trackerassist/rt-go/internal/transport"
)

// Config configures a Client.
type Config struct {
	// BaseURL is the RT server root, e.g. "https://rt.example.com". The
	// REST path is appended automatically; trailing slashes are fine.
	BaseURL string

	// Token authenticates via "Authorization: token ...". Provisioned in
	// the RT web UI. Takes precedence over Username/Password.
	Token string

	// Username and Password authenticate via form login; call Login to
	// establish the session cookie.
	Username string
	Password string

	// SkipTLSVerify disables certificate verification (testing only).
	SkipTLSVerify bool

	Timeout   time.Duration
	RetryMax  int
	RateLimit float64 // requests per second, 0 = unlimited
	ProxyURL  string
	UserAgent string

	// Logger enables debug logging of API calls. Nil means silent.
	Logger *zap.Logger

	// MetricsRegisterer receives Prometheus collectors for API call
	// counts, durations, and circuit breaker state. Nil means unmetered.
	MetricsRegisterer prometheus.Registerer
}

// Client talks to one Request Tracker instance. Use the per-resource
// services for the actual operations.
type Client struct {
	transport *transport.Client
	serverURL string
	username  string
	password  string
	logger    *logging.Logger

	Tickets *TicketsService
	Queues  *QueuesService
	Users   *UsersService
	Assets  *AssetsService
}

// restPath is appended to the server root to form the REST base URL.
const restPath = "/REST/2.0"

// New creates a client for the RT instance at cfg.BaseURL.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("rt: base URL is required")
	}
	if cfg.Token == "" && (cfg.Username == "" || cfg.Password == "") {
		return nil, errors.New("rt: either a token or username and password are required")
	}

	serverURL := strings.TrimRight(cfg.BaseURL, "/")

	var metrics *monitoring.Metrics
	if cfg.MetricsRegisterer != nil {
		metrics = monitoring.New(cfg.MetricsRegisterer)
	}

	logger := logging.Wrap(cfg.Logger)

	tr := transport.New(transport.Options{
		BaseURL:       serverURL + restPath,
		Timeout:       cfg.Timeout,
		RetryMax:      cfg.RetryMax,
		RateLimit:     cfg.RateLimit,
		SkipTLSVerify: cfg.SkipTLSVerify,
		ProxyURL:      cfg.ProxyURL,
		UserAgent:     cfg.UserAgent,
		Logger:        logger,
		Metrics:       metrics,
	})

	if cfg.Token != "" {
		tr.SetToken(cfg.Token)
	}

	c := &Client{
		transport: tr,
		serverURL: serverURL,
		username:  cfg.Username,
		password:  cfg.Password,
		logger:    logger,
	}
	c.Tickets = &TicketsService{client: c}
	c.Queues = &QueuesService{client: c}
	c.Users = &UsersService{client: c}
	c.Assets = &AssetsService{client: c}

	return c, nil
}

// Login establishes a cookie session for username/password clients.
// Token-authenticated clients never need it.
func (c *Client) Login(ctx context.Context) error {
	if c.username == "" {
		return errors.New("rt: no credentials configured for session login")
	}
	return c.transport.Login(ctx, c.serverURL, c.username, c.password)
}

// BaseURL returns the REST root the client talks to.
func (c *Client) BaseURL() string {
	return c.transport.BaseURL()
}

// do executes one API call and decodes the JSON response into out (when
// out is non-nil). resource/operation label the call for logs and metrics.
func (c *Client) do(ctx context.Context, resource, operation, method, path string, query url.Values, body, out any) error {
	req, err := c.transport.Request(ctx)
	if err != nil {
		return fmt.Errorf("rt: %s %s: %w", resource, operation, err)
	}

	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := c.transport.Do(resource, operation, func() (*resty.Response, error) {
		return req.Execute(method, path)
	})
	if err != nil {
		return fmt.Errorf("rt: %s %s: %w", resource, operation, err)
	}

	if err := checkResponse(resp); err != nil {
		return err
	}

	if out != nil {
		if err := json.Unmarshal(resp.Body(), out); err != nil {
			return fmt.Errorf("rt: decode %s %s response: %w", resource, operation, err)
		}
	}

	return nil
}
