package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"time"

	"github.com/dmitrymomot/minikit/core/logger"
)

// Backend is the host key-value store. Keys arrive already namespaced.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

// Storage namespaces keys by application and encodes values as JSON.
type Storage struct {
	backend Backend
	appName string
	timeout time.Duration
	logger  *slog.Logger
}

// Option configures Storage.
type Option func(*Storage)

// WithLogger sets the logger used to report swallowed failures.
func WithLogger(l *slog.Logger) Option {
	return func(s *Storage) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTimeout bounds each backend call made by the non-context helpers.
// Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(s *Storage) {
		s.timeout = d
	}
}

// New creates a Storage for appName on top of backend.
func New(backend Backend, appName string, opts ...Option) *Storage {
	s := &Storage{
		backend: backend,
		appName: appName,
		timeout: 5 * time.Second,
		logger:  logger.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the namespaced backend key.
func (s *Storage) Key(key string) string {
	return s.appName + "-" + key
}

// GetE decodes the value stored under key into dst.
func (s *Storage) GetE(ctx context.Context, key string, dst any) (err error) {
	if key == "" {
		return ErrEmptyKey
	}
	defer recoverInto(&err)

	raw, err := s.backend.Get(ctx, s.Key(key))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("storage: decode %q: %w", key, err)
	}
	return nil
}

// SetE encodes value and stores it under key.
func (s *Storage) SetE(ctx context.Context, key string, value any) (err error) {
	if key == "" {
		return ErrEmptyKey
	}
	defer recoverInto(&err)

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("storage: encode %q: %w", key, err)
	}
	return s.backend.Set(ctx, s.Key(key), raw)
}

// RemoveE deletes key. Removing an absent key is not an error.
func (s *Storage) RemoveE(ctx context.Context, key string) (err error) {
	if key == "" {
		return ErrEmptyKey
	}
	defer recoverInto(&err)

	if err := s.backend.Remove(ctx, s.Key(key)); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}

// Get returns the decoded value under key, or def.
// Objects decode to map[string]any and numbers to float64.
func (s *Storage) Get(key string, def any) any {
	return Load(s, key, def)
}

// Load returns the value under key decoded as T, or def on any failure or zero value.
func Load[T any](s *Storage, key string, def T) T {
	ctx, cancel := s.context()
	defer cancel()

	var v T
	if err := s.GetE(ctx, key, &v); err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Debug("storage read failed",
				logger.Component("storage"),
				logger.Key("key", key),
				logger.Error(err),
			)
		}
		return def
	}
	if isZero(v) {
		return def
	}
	return v
}

// Set stores value under key, ignoring failures.
func (s *Storage) Set(key string, value any) {
	ctx, cancel := s.context()
	defer cancel()

	if err := s.SetE(ctx, key, value); err != nil {
		s.logger.Debug("storage write failed",
			logger.Component("storage"),
			logger.Key("key", key),
			logger.Error(err),
		)
	}
}

// Remove deletes key, ignoring failures.
func (s *Storage) Remove(key string) {
	ctx, cancel := s.context()
	defer cancel()

	if err := s.RemoveE(ctx, key); err != nil {
		s.logger.Debug("storage remove failed",
			logger.Component("storage"),
			logger.Key("key", key),
			logger.Error(err),
		)
	}
}

func (s *Storage) context() (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), s.timeout)
}

func isZero(v any) bool {
	if v == nil {
		return true
	}
	return reflect.ValueOf(v).IsZero()
}

func recoverInto(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: %v", ErrBackendPanic, r)
	}
}
