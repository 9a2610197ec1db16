package request

import (
	"time"

	"github.com/dmitrymomot/minikit/core/host"
)

// Config provides environment-based configuration for the client.
type Config struct {
	BaseURL    string        `env:"MINIKIT_BASE_URL,required"`
	AppName    string        `env:"MINIKIT_APP_NAME" envDefault:"minikit"`
	LogSource  string        `env:"MINIKIT_LOG_SOURCE" envDefault:"minibhapp"`
	LogBizType string        `env:"MINIKIT_LOG_BIZ_TYPE" envDefault:"YBXG"`
	LoginPath  string        `env:"MINIKIT_LOGIN_PATH" envDefault:"/pages/login/main"`
	Timeout    time.Duration `env:"MINIKIT_REQUEST_TIMEOUT" envDefault:"15s"`
}

// NewFromConfig creates a Client from cfg. Explicit opts override config values.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, ErrMissingBaseURL
	}

	configOpts := []Option{WithBaseURL(cfg.BaseURL)}
	if cfg.Timeout > 0 {
		configOpts = append(configOpts, WithTransport(host.NewHTTPTransport(host.WithTimeout(cfg.Timeout))))
	}
	if cfg.LogSource != "" || cfg.LogBizType != "" {
		configOpts = append(configOpts, WithStatSource(cfg.LogSource, cfg.LogBizType))
	}
	if cfg.LoginPath != "" {
		configOpts = append(configOpts, WithLoginPath(cfg.LoginPath))
	}

	return New(append(configOpts, opts...)...), nil
}
