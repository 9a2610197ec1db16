package host

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/minikit/core/logger"
)

// Compile-time check that HTTPTransport implements Transport.
var _ Transport = (*HTTPTransport)(nil)

// HTTPTransport implements Transport over net/http.
type HTTPTransport struct {
	client *http.Client
	logger *slog.Logger
}

// HTTPOption configures HTTPTransport.
type HTTPOption func(*HTTPTransport)

// WithHTTPClient sets the underlying client. Useful for custom timeouts, proxies or TLS.
func WithHTTPClient(client *http.Client) HTTPOption {
	return func(t *HTTPTransport) {
		if client != nil {
			t.client = client
		}
	}
}

// WithTimeout sets a per-request timeout on the default client.
func WithTimeout(timeout time.Duration) HTTPOption {
	return func(t *HTTPTransport) {
		t.client.Timeout = timeout
	}
}

// WithLogger sets the transport logger.
func WithLogger(l *slog.Logger) HTTPOption {
	return func(t *HTTPTransport) {
		if l != nil {
			t.logger = l
		}
	}
}

// NewHTTPTransport creates a transport with a fresh http.Client.
func NewHTTPTransport(opts ...HTTPOption) *HTTPTransport {
	t := &HTTPTransport{
		client: &http.Client{},
		logger: logger.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Request sends req. GET data becomes query parameters; other methods send JSON.
func (t *HTTPTransport) Request(ctx context.Context, req Request) (*Response, error) {
	method := strings.ToUpper(req.Method)
	if method == "" {
		method = http.MethodGet
	}

	target := req.URL
	var body io.Reader

	if req.Data != nil {
		if method == http.MethodGet {
			u, err := withQuery(req.URL, req.Data)
			if err != nil {
				return nil, err
			}
			target = u
		} else {
			b, err := json.Marshal(req.Data)
			if err != nil {
				return nil, fmt.Errorf("host: encode body: %w", err)
			}
			body = bytes.NewReader(b)
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("host: build request: %w", err)
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	for k, v := range req.Header {
		httpReq.Header.Set(k, v)
	}

	return t.do(httpReq)
}

// UploadFile streams the file at req.FilePath as a multipart form.
func (t *HTTPTransport) UploadFile(ctx context.Context, req UploadRequest) (*Response, error) {
	f, err := os.Open(req.FilePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileUnavailable, err)
	}
	defer f.Close()

	field := req.Name
	if field == "" {
		field = "file"
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		pw.CloseWithError(writeMultipart(mw, field, f, req.FormData))
	}()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, req.URL, pr)
	if err != nil {
		pr.Close()
		return nil, fmt.Errorf("host: build upload request: %w", err)
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())
	for k, v := range req.Header {
		httpReq.Header.Set(k, v)
	}

	return t.do(httpReq)
}

func (t *HTTPTransport) do(req *http.Request) (*Response, error) {
	start := time.Now()

	resp, err := t.client.Do(req)
	if err != nil {
		t.logger.DebugContext(req.Context(), "http round trip failed",
			logger.Component("host"),
			logger.Method(req.Method),
			logger.URL(req.URL.String()),
			logger.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrRequestFailed, err)
	}

	t.logger.DebugContext(req.Context(), "http round trip",
		logger.Component("host"),
		logger.Method(req.Method),
		logger.URL(req.URL.String()),
		logger.StatusCode(resp.StatusCode),
		logger.Duration(time.Since(start)),
	)

	return &Response{
		StatusCode: resp.StatusCode,
		Data:       data,
		Header:     resp.Header,
	}, nil
}

func writeMultipart(mw *multipart.Writer, field string, f *os.File, form map[string]string) error {
	for k, v := range form {
		if err := mw.WriteField(k, v); err != nil {
			return err
		}
	}
	part, err := mw.CreateFormFile(field, filepath.Base(f.Name()))
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, f); err != nil {
		return err
	}
	return mw.Close()
}

// withQuery appends data to raw as query parameters, keeping any query already present.
func withQuery(raw string, data any) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("host: parse url: %w", err)
	}

	params, err := queryValues(data)
	if err != nil {
		return "", err
	}
	if len(params) == 0 {
		return raw, nil
	}

	q := u.Query()
	for k, vs := range params {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// queryValues flattens data into url.Values. Structs and maps go through JSON
// so field tags decide the parameter names; nested values stay JSON-encoded.
func queryValues(data any) (url.Values, error) {
	switch v := data.(type) {
	case url.Values:
		return v, nil
	case map[string]string:
		out := url.Values{}
		for k, s := range v {
			out.Set(k, s)
		}
		return out, nil
	}

	b, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("host: encode query: %w", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return nil, fmt.Errorf("host: query data must be an object: %w", err)
	}

	out := url.Values{}
	for k, raw := range fields {
		out.Set(k, scalar(raw))
	}
	return out, nil
}

func scalar(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	if string(raw) == "null" {
		return ""
	}
	return string(raw)
}
