// Package request mediates every call the mini-application makes to its backend.
//
// A Client wraps a host.Transport and a host.UI. It prefixes relative paths with
// the configured base URL, echoes the session cookie back on each call, toggles
// the loading overlay on request and turns the {success, data, msg} envelope
// into a Go result:
//
//	client := request.New(
//		request.WithBaseURL("https://api.example.com/"),
//		request.WithLogger(log),
//	)
//
//	profile, err := request.PostAs[Profile](ctx, client, request.Options{
//		URL:         "bh/r/user/profile",
//		Data:        form,
//		ShowLoading: true,
//		DefaultMsg:  "保存失败",
//	})
//
// # Outcomes
//
// Every call settles exactly once:
//
//   - success:true returns the envelope's data
//   - any other envelope returns *EnvelopeError carrying it; the message toasted
//     is DefaultMsg if set, otherwise the server's msg on an explicit success:false
//   - a transport failure toasts a generic network message and returns ErrNetwork
//   - Post without a URL returns ErrMissingURL before any I/O
//
// Nothing is retried. Timeouts come from the caller's context or the transport.
//
// # Session
//
// A Set-Cookie header on any response replaces the Cookie header sent with the
// next request. The map is shared by all calls of a client (or of every client
// built WithHeaders on the same map); the last response wins.
//
// # Loading overlay
//
// ShowLoading shows the overlay before dispatch and hides it on completion.
// HideLoading only hides it, for screens that showed the overlay themselves.
// There is no reference counting: overlapping calls that both toggle the
// overlay can hide it early.
//
// # Best-effort calls
//
// AddFormID and Log run in the background and return futures that callers are
// free to drop. Placeholder form ids from the developer tool and empty
// analytics records never reach the transport.
//
// # Uploads
//
// Upload posts a multipart form to the fixed upload endpoint and only succeeds
// on HTTP 200 with success:true. See Upload for the failure mapping.
package request
