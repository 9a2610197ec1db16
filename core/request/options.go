package request

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/minikit/core/host"
	"github.com/dmitrymomot/minikit/core/session"
)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the prefix concatenated with every relative path.
// It is used verbatim, so it normally ends with "/".
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.baseURL = base
	}
}

// WithTransport sets the transport. Defaults to a host.HTTPTransport.
func WithTransport(t host.Transport) Option {
	return func(c *Client) {
		if t != nil {
			c.transport = t
		}
	}
}

// WithUI sets the host UI. Defaults to a host.LogUI on the client logger.
func WithUI(ui host.UI) Option {
	return func(c *Client) {
		if ui != nil {
			c.ui = ui
		}
	}
}

// WithHeaders shares a Session Header Map between clients.
func WithHeaders(h *session.Headers) Option {
	return func(c *Client) {
		if h != nil {
			c.headers = h
		}
	}
}

// WithLogger sets the client logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithStatSource sets the source and bizType attached to analytics pings.
func WithStatSource(source, bizType string) Option {
	return func(c *Client) {
		if source != "" {
			c.statSource = source
		}
		if bizType != "" {
			c.statBizType = bizType
		}
	}
}

// WithLoadingTitle sets the loading overlay text.
func WithLoadingTitle(title string) Option {
	return func(c *Client) {
		if title != "" {
			c.loadingTitle = title
		}
	}
}

// WithNetworkErrorMessage sets the toast shown when the transport fails.
func WithNetworkErrorMessage(msg string) Option {
	return func(c *Client) {
		if msg != "" {
			c.networkErrorMsg = msg
		}
	}
}

// WithLoginPath sets the view GoLogin navigates to.
func WithLoginPath(path string) Option {
	return func(c *Client) {
		if path != "" {
			c.loginPath = path
		}
	}
}

// WithClock overrides the time source used for analytics timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

// WithMetrics registers request metrics with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *Client) {
		c.metricsReg = reg
	}
}
