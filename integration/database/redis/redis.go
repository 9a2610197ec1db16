package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	goredis "github.com/redis/go-redis/v9"
)

// Config holds connection settings loaded from the environment.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
	KeyPrefix      string        `env:"REDIS_KEY_PREFIX" envDefault:"minikit:"`
}

// Connect parses cfg.ConnectionURL, creates a client and waits until it answers PING.
func Connect(ctx context.Context, cfg Config) (*goredis.Client, error) {
	opts, err := parseOptions(cfg.ConnectionURL)
	if err != nil {
		return nil, err
	}

	client := goredis.NewClient(opts)

	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	if err := waitReady(ctx, client, cfg.RetryAttempts, cfg.RetryInterval); err != nil {
		_ = client.Close()
		return nil, err
	}

	return client, nil
}

func parseOptions(url string) (*goredis.Options, error) {
	if url == "" {
		return nil, ErrEmptyConnectionURL
	}
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRedisConnString, err)
	}
	return opts, nil
}

// Pinger is the part of the client used for readiness and health probes.
type Pinger interface {
	Ping(ctx context.Context) *goredis.StatusCmd
}

func waitReady(ctx context.Context, client Pinger, attempts int, interval time.Duration) error {
	eb := backoff.NewExponentialBackOff()
	if interval > 0 {
		eb.InitialInterval = interval
	}
	eb.MaxElapsedTime = 0

	var policy backoff.BackOff = eb
	if attempts > 0 {
		policy = backoff.WithMaxRetries(eb, uint64(attempts-1))
	}

	err := backoff.Retry(func() error {
		return client.Ping(ctx).Err()
	}, backoff.WithContext(policy, ctx))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRedisNotReady, err)
	}
	return nil
}

// Healthcheck returns a probe that pings the server.
func Healthcheck(client Pinger) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
