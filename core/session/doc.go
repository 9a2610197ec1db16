// Package session keeps the headers that carry session continuity between
// backend calls.
//
// The backend identifies the client by cookie. Every response that carries a
// Set-Cookie header replaces the stored Cookie value, and every outgoing
// request attaches a snapshot of the stored headers:
//
//	headers := session.New()
//
//	resp, err := transport.Request(ctx, host.Request{URL: u, Header: headers.Snapshot()})
//	if err == nil {
//		headers.Capture(resp.Header)
//	}
//
// Updates are last-writer-wins. Concurrent responses may race; the server is
// expected to hand out equivalent cookies, so ordering is not tracked.
package session
