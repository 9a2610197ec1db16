package state

import (
	"log/slog"
	"sync"

	"github.com/dmitrymomot/minikit/core/logger"
	"github.com/dmitrymomot/minikit/core/storage"
	"github.com/dmitrymomot/minikit/pkg/qrcode"
)

// DefaultPersistKey is the storage key used for user info when none is given.
const DefaultPersistKey = "userInfo"

// Snapshot is a point-in-time copy of the store.
type Snapshot[U any] struct {
	UserInfo    U
	ShareQR     string
	ShareUserID string
}

// Store is the shared state container. U is the application's user-info record.
type Store[U any] struct {
	mu          sync.RWMutex
	userInfo    U
	shareQR     string
	shareUserID string

	persist    *storage.Storage
	persistKey string
	logger     *slog.Logger
}

// Option configures a Store.
type Option[U any] func(*Store[U])

// WithPersistence saves user info to s under key on every Update and restores
// it when the store is created. An empty key means DefaultPersistKey.
func WithPersistence[U any](s *storage.Storage, key string) Option[U] {
	return func(st *Store[U]) {
		if key == "" {
			key = DefaultPersistKey
		}
		st.persist = s
		st.persistKey = key
	}
}

// WithLogger sets the store logger.
func WithLogger[U any](l *slog.Logger) Option[U] {
	return func(st *Store[U]) {
		if l != nil {
			st.logger = l
		}
	}
}

// New creates a store with zero-valued fields, or restored user info when persistence is on.
func New[U any](opts ...Option[U]) *Store[U] {
	st := &Store[U]{logger: logger.NewNop()}
	for _, opt := range opts {
		opt(st)
	}

	if st.persist != nil {
		var zero U
		st.userInfo = storage.Load(st.persist, st.persistKey, zero)
	}

	return st
}

// Update replaces the user info.
func (s *Store[U]) Update(userInfo U) {
	s.mu.Lock()
	s.userInfo = userInfo
	s.mu.Unlock()

	if s.persist != nil {
		s.persist.Set(s.persistKey, userInfo)
	}
	s.logger.Debug("user info updated", logger.Component("state"), logger.Action("update"))
}

// QR replaces the share QR payload.
func (s *Store[U]) QR(payload string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shareQR = payload
}

// SetShareUserID replaces the id of the user who shared the current entry point.
func (s *Store[U]) SetShareUserID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shareUserID = id
}

func (s *Store[U]) UserInfo() U {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userInfo
}

func (s *Store[U]) ShareQR() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.shareQR
}

func (s *Store[U]) ShareUserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.shareUserID
}

// Snapshot returns all fields read under one lock.
func (s *Store[U]) Snapshot() Snapshot[U] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot[U]{
		UserInfo:    s.userInfo,
		ShareQR:     s.shareQR,
		ShareUserID: s.shareUserID,
	}
}

// ShareQRImage renders the share QR payload as a PNG data URI.
func (s *Store[U]) ShareQRImage(size int) (string, error) {
	payload := s.ShareQR()
	if payload == "" {
		return "", ErrEmptyShareQR
	}
	return qrcode.GenerateBase64Image(payload, size)
}
