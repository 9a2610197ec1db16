package request

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/minikit/core/host"
	"github.com/dmitrymomot/minikit/core/logger"
	"github.com/dmitrymomot/minikit/core/session"
	"github.com/dmitrymomot/minikit/pkg/async"
)

const (
	// DefaultLoadingTitle is shown in the loading overlay.
	DefaultLoadingTitle = "加载中"
	// DefaultNetworkErrorMessage is toasted when the transport fails.
	DefaultNetworkErrorMessage = "网络异常，加载失败"
	// DefaultLoginPath is the login view opened by GoLogin.
	DefaultLoginPath = "/pages/login/main"
	// DefaultToastDuration applies when ShowToast gets a non-positive duration.
	DefaultToastDuration = 1500 * time.Millisecond
)

// Options describes a single Get or Post call.
type Options struct {
	// URL is relative to the client's base URL.
	URL  string
	Data any
	// ShowLoading displays the loading overlay for the duration of the call.
	ShowLoading bool
	// HideLoading hides the overlay on completion even if this call did not show it.
	HideLoading bool
	// DefaultMsg is toasted on failure instead of the server's msg.
	DefaultMsg string
}

// Client mediates every backend call: it prefixes URLs, carries the session
// cookie, toggles the loading overlay and interprets the response envelope.
// A Client is safe for concurrent use.
type Client struct {
	transport host.Transport
	ui        host.UI
	headers   *session.Headers
	logger    *slog.Logger

	baseURL         string
	statSource      string
	statBizType     string
	loadingTitle    string
	networkErrorMsg string
	loginPath       string
	now             func() time.Time

	metricsReg prometheus.Registerer
	metrics    *metrics
}

// New creates a Client. Without options it talks HTTP to relative URLs and
// renders UI primitives as log records.
func New(opts ...Option) *Client {
	c := &Client{
		headers:         session.New(),
		logger:          logger.NewNop(),
		statSource:      DefaultStatSource,
		statBizType:     DefaultStatBizType,
		loadingTitle:    DefaultLoadingTitle,
		networkErrorMsg: DefaultNetworkErrorMessage,
		loginPath:       DefaultLoginPath,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.transport == nil {
		c.transport = host.NewHTTPTransport(host.WithLogger(c.logger))
	}
	if c.ui == nil {
		c.ui = host.NewLogUI(c.logger)
	}
	if c.metricsReg != nil {
		c.metrics = newMetrics(c.metricsReg)
	}

	return c
}

// Headers returns the Session Header Map used by this client.
func (c *Client) Headers() *session.Headers {
	return c.headers
}

// URL resolves a relative path against the base URL.
func (c *Client) URL(path string) string {
	return c.baseURL + path
}

// Get issues a read request and returns the envelope's data.
// Loading and message options are ignored for reads.
func (c *Client) Get(ctx context.Context, opts Options) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, Options{URL: opts.URL, Data: opts.Data})
}

// Post issues a write request and returns the envelope's data.
// An empty URL fails with ErrMissingURL without contacting the transport.
func (c *Client) Post(ctx context.Context, opts Options) (json.RawMessage, error) {
	if opts.URL == "" {
		return nil, ErrMissingURL
	}
	if opts.Data == nil {
		opts.Data = map[string]any{}
	}
	return c.do(ctx, http.MethodPost, opts)
}

// GetAsync runs Get in the background. The future settles exactly once.
func (c *Client) GetAsync(ctx context.Context, opts Options) *async.Future[json.RawMessage] {
	return async.Async(ctx, opts, c.Get)
}

// PostAsync runs Post in the background. A missing URL settles the future
// immediately with ErrMissingURL.
func (c *Client) PostAsync(ctx context.Context, opts Options) *async.Future[json.RawMessage] {
	if opts.URL == "" {
		return async.Resolved[json.RawMessage](nil, ErrMissingURL)
	}
	return async.Async(ctx, opts, c.Post)
}

// GetAs is Get with the payload decoded into T.
func GetAs[T any](ctx context.Context, c *Client, opts Options) (T, error) {
	data, err := c.Get(ctx, opts)
	if err != nil {
		var zero T
		return zero, err
	}
	return decodeData[T](data)
}

// PostAs is Post with the payload decoded into T.
func PostAs[T any](ctx context.Context, c *Client, opts Options) (T, error) {
	data, err := c.Post(ctx, opts)
	if err != nil {
		var zero T
		return zero, err
	}
	return decodeData[T](data)
}

func (c *Client) do(ctx context.Context, method string, opts Options) (json.RawMessage, error) {
	reqID := uuid.NewString()
	start := time.Now()
	url := c.URL(opts.URL)
	hide := opts.ShowLoading || opts.HideLoading

	if opts.ShowLoading {
		c.ui.ShowLoading(c.loadingTitle)
	}

	resp, err := c.transport.Request(ctx, host.Request{
		URL:    url,
		Method: method,
		Data:   opts.Data,
		Header: c.headers.Snapshot(),
	})
	if err != nil {
		if hide {
			c.ui.HideLoading()
		}
		c.observe(method, outcomeNetworkError, start)
		c.logger.DebugContext(ctx, "request failed",
			logger.Component("request"),
			logger.RequestID(reqID),
			logger.Method(method),
			logger.URL(url),
			logger.Error(err),
			logger.Duration(time.Since(start)),
		)
		return nil, c.networkError(ctx)
	}

	c.headers.Capture(resp.Header)
	if hide {
		c.ui.HideLoading()
	}

	env, explicitFailure, decodeErr := decodeEnvelope(resp.Data)
	if decodeErr == nil && env.Success {
		c.observe(method, outcomeOK, start)
		c.logger.DebugContext(ctx, "request settled",
			logger.Component("request"),
			logger.RequestID(reqID),
			logger.Method(method),
			logger.URL(url),
			logger.StatusCode(resp.StatusCode),
			logger.Duration(time.Since(start)),
		)
		return env.Data, nil
	}

	msg := opts.DefaultMsg
	if msg == "" && explicitFailure {
		msg = env.Msg
	}
	if msg != "" {
		c.ShowToast(msg, 0)
	}

	outcome := outcomeAppError
	if decodeErr != nil {
		outcome = outcomeInvalid
	}
	c.observe(method, outcome, start)
	c.logger.DebugContext(ctx, "request rejected",
		logger.Component("request"),
		logger.RequestID(reqID),
		logger.Method(method),
		logger.URL(url),
		logger.StatusCode(resp.StatusCode),
		logger.Key("msg", env.Msg),
		logger.Error(decodeErr),
		logger.Duration(time.Since(start)),
	)

	return nil, &EnvelopeError{Envelope: env, StatusCode: resp.StatusCode, Raw: resp.Data}
}

// networkError toasts the generic failure and returns ErrNetwork. A caller that
// canceled its own context gets no toast, and the context error stays matchable.
func (c *Client) networkError(ctx context.Context) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%w: %w", ErrNetwork, ctxErr)
	}
	c.ShowToast(c.networkErrorMsg, 0)
	return ErrNetwork
}

// ShowToast displays msg without an icon. A non-positive duration means DefaultToastDuration.
func (c *Client) ShowToast(msg string, duration time.Duration) {
	if duration <= 0 {
		duration = DefaultToastDuration
	}
	c.ui.ShowToast(host.Toast{Title: msg, Icon: host.IconNone, Duration: duration})
}

// GoLogin opens the login view.
func (c *Client) GoLogin() error {
	return c.ui.NavigateTo(c.loginPath)
}
