package request_test

import (
	"context"
	"net/http"
	"sync"

	"github.com/dmitrymomot/minikit/core/host"
)

// fakeTransport replies with scripted responses and records every call.
type fakeTransport struct {
	mu       sync.Mutex
	requests []host.Request
	uploads  []host.UploadRequest

	reply       func(req host.Request) (*host.Response, error)
	uploadReply func(req host.UploadRequest) (*host.Response, error)
}

func (f *fakeTransport) Request(_ context.Context, req host.Request) (*host.Response, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()
	return f.reply(req)
}

func (f *fakeTransport) UploadFile(_ context.Context, req host.UploadRequest) (*host.Response, error) {
	f.mu.Lock()
	f.uploads = append(f.uploads, req)
	f.mu.Unlock()
	return f.uploadReply(req)
}

func (f *fakeTransport) calls() []host.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]host.Request(nil), f.requests...)
}

func jsonReply(body string) func(host.Request) (*host.Response, error) {
	return func(host.Request) (*host.Response, error) {
		return &host.Response{StatusCode: http.StatusOK, Data: []byte(body), Header: http.Header{}}, nil
	}
}

func failReply(err error) func(host.Request) (*host.Response, error) {
	return func(host.Request) (*host.Response, error) {
		return nil, err
	}
}

// fakeUI records UI primitives in call order.
type fakeUI struct {
	mu     sync.Mutex
	events []string
	toasts []host.Toast
	paths  []string
}

func (u *fakeUI) ShowLoading(title string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.events = append(u.events, "show:"+title)
}

func (u *fakeUI) HideLoading() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.events = append(u.events, "hide")
}

func (u *fakeUI) ShowToast(t host.Toast) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.events = append(u.events, "toast:"+t.Title)
	u.toasts = append(u.toasts, t)
}

func (u *fakeUI) NavigateTo(path string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.paths = append(u.paths, path)
	return nil
}

func (u *fakeUI) toastTitles() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]string, 0, len(u.toasts))
	for _, t := range u.toasts {
		out = append(out, t.Title)
	}
	return out
}

func (u *fakeUI) recorded() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]string(nil), u.events...)
}
