package host

import (
	"context"
	"net/http"
	"time"
)

// Request describes a single backend call.
type Request struct {
	URL    string
	Method string
	// Data is sent as the query string for GET and as a JSON body otherwise.
	Data   any
	Header map[string]string
}

// UploadRequest describes a multipart file upload.
type UploadRequest struct {
	URL      string
	FilePath string
	// Name is the multipart field carrying the file.
	Name     string
	Header   map[string]string
	FormData map[string]string
}

// Response is a completed round trip, whatever its status code.
type Response struct {
	StatusCode int
	Data       []byte
	Header     http.Header
}

// Transport performs requests on behalf of the mediator.
type Transport interface {
	Request(ctx context.Context, req Request) (*Response, error)
	UploadFile(ctx context.Context, req UploadRequest) (*Response, error)
}

// IconNone renders a toast without an icon, leaving room for longer text.
const IconNone = "none"

// Toast is a transient, non-blocking notification.
type Toast struct {
	Title    string
	Icon     string
	Duration time.Duration
}

// UI exposes the host's user-facing primitives.
type UI interface {
	ShowLoading(title string)
	HideLoading()
	ShowToast(t Toast)
	NavigateTo(path string) error
}
