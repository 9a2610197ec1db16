package session

import (
	"maps"
	"net/http"
	"strings"
	"sync"
)

const (
	// CookieHeader is the request header echoed back to the server.
	CookieHeader = "Cookie"
	// SetCookieHeader is the response header that updates the session.
	SetCookieHeader = "Set-Cookie"
)

// Headers is a process-wide, concurrency-safe header map seeded empty.
type Headers struct {
	mu     sync.RWMutex
	values map[string]string
}

// New returns an empty header map.
func New() *Headers {
	return &Headers{values: make(map[string]string)}
}

// Get returns the value stored under name.
func (h *Headers) Get(name string) (string, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	v, ok := h.values[name]
	return v, ok
}

// Set stores value under name, replacing any previous value.
func (h *Headers) Set(name, value string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.values[name] = value
}

// Snapshot returns a copy safe to hand to a transport.
func (h *Headers) Snapshot() map[string]string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return maps.Clone(h.values)
}

// Capture stores the Set-Cookie value of a response as the Cookie header.
// Multiple Set-Cookie lines are joined with "; ". Reports whether anything changed.
func (h *Headers) Capture(header http.Header) bool {
	cookies := header.Values(SetCookieHeader)
	if len(cookies) == 0 {
		return false
	}
	value := strings.Join(cookies, "; ")
	if value == "" {
		return false
	}

	h.Set(CookieHeader, value)
	return true
}

// Reset forgets every stored header, e.g. after logout.
func (h *Headers) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	clear(h.values)
}
