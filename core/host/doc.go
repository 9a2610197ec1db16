// Package host defines the platform primitives minikit wraps and ships default
// adapters for running outside a mini-program runtime.
//
// A host exposes three things: a Transport for requests and file uploads, a UI
// able to show a loading overlay, a toast and navigate by path, and a
// synchronous key-value store (see package storage for that port).
//
// Transport implementations must settle every call exactly once: either a
// *Response (any HTTP status counts as a completed round trip) or an error for
// failures that prevented the exchange, never both.
//
// HTTPTransport talks to a real backend with net/http; LogUI renders UI
// primitives as structured log records, which is what a headless client or a
// CLI wants.
package host
