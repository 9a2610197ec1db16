package request_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/minikit/core/host"
	"github.com/dmitrymomot/minikit/core/request"
	"github.com/dmitrymomot/minikit/core/session"
)

const base = "https://api.example.com/"

func newClient(tr *fakeTransport, ui *fakeUI, opts ...request.Option) *request.Client {
	return request.New(append([]request.Option{
		request.WithBaseURL(base),
		request.WithTransport(tr),
		request.WithUI(ui),
	}, opts...)...)
}

func TestGet(t *testing.T) {
	t.Parallel()

	t.Run("resolves with envelope data", func(t *testing.T) {
		t.Parallel()

		tr := &fakeTransport{reply: jsonReply(`{"success":true,"data":{"v":1}}`)}
		ui := &fakeUI{}
		c := newClient(tr, ui)

		data, err := c.Get(t.Context(), request.Options{URL: "x", Data: map[string]any{"a": 1}})
		require.NoError(t, err)
		assert.JSONEq(t, `{"v":1}`, string(data))

		calls := tr.calls()
		require.Len(t, calls, 1)
		assert.Equal(t, base+"x", calls[0].URL)
		assert.Equal(t, http.MethodGet, calls[0].Method)
		assert.Equal(t, map[string]any{"a": 1}, calls[0].Data)
		assert.Empty(t, ui.recorded())
	})

	t.Run("ignores loading and default message options", func(t *testing.T) {
		t.Parallel()

		tr := &fakeTransport{reply: jsonReply(`{"success":false,"msg":"bad"}`)}
		ui := &fakeUI{}
		c := newClient(tr, ui)

		_, err := c.Get(t.Context(), request.Options{URL: "x", ShowLoading: true, HideLoading: true, DefaultMsg: "custom"})
		require.Error(t, err)
		assert.Equal(t, []string{"toast:bad"}, ui.recorded())
	})

	t.Run("decodes typed payload", func(t *testing.T) {
		t.Parallel()

		type payload struct {
			V int `json:"v"`
		}
		tr := &fakeTransport{reply: jsonReply(`{"success":true,"data":{"v":7}}`)}
		c := newClient(tr, &fakeUI{})

		got, err := request.GetAs[payload](t.Context(), c, request.Options{URL: "x"})
		require.NoError(t, err)
		assert.Equal(t, payload{V: 7}, got)
	})

	t.Run("absent data decodes to zero value", func(t *testing.T) {
		t.Parallel()

		tr := &fakeTransport{reply: jsonReply(`{"success":true}`)}
		c := newClient(tr, &fakeUI{})

		got, err := request.GetAs[map[string]any](t.Context(), c, request.Options{URL: "x"})
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestPost(t *testing.T) {
	t.Parallel()

	t.Run("missing url fails without transport", func(t *testing.T) {
		t.Parallel()

		tr := &fakeTransport{reply: jsonReply(`{"success":true}`)}
		ui := &fakeUI{}
		c := newClient(tr, ui)

		_, err := c.Post(t.Context(), request.Options{})
		assert.ErrorIs(t, err, request.ErrMissingURL)
		assert.Empty(t, tr.calls())
		assert.Empty(t, ui.recorded())
	})

	t.Run("defaults data to empty object", func(t *testing.T) {
		t.Parallel()

		tr := &fakeTransport{reply: jsonReply(`{"success":true,"data":1}`)}
		c := newClient(tr, &fakeUI{})

		_, err := c.Post(t.Context(), request.Options{URL: "save"})
		require.NoError(t, err)

		calls := tr.calls()
		require.Len(t, calls, 1)
		assert.Equal(t, http.MethodPost, calls[0].Method)
		assert.Equal(t, map[string]any{}, calls[0].Data)
	})

	t.Run("server message is toasted once and envelope returned", func(t *testing.T) {
		t.Parallel()

		tr := &fakeTransport{reply: jsonReply(`{"success":false,"msg":"bad"}`)}
		ui := &fakeUI{}
		c := newClient(tr, ui)

		_, err := c.Post(t.Context(), request.Options{URL: "save"})

		var envErr *request.EnvelopeError
		require.ErrorAs(t, err, &envErr)
		assert.Equal(t, request.Envelope{Success: false, Msg: "bad"}, envErr.Envelope)
		assert.ErrorIs(t, err, request.ErrApplication)
		assert.Equal(t, []string{"bad"}, ui.toastTitles())
	})

	t.Run("default message wins over server message", func(t *testing.T) {
		t.Parallel()

		tr := &fakeTransport{reply: jsonReply(`{"success":false,"msg":"bad"}`)}
		ui := &fakeUI{}
		c := newClient(tr, ui)

		_, err := c.Post(t.Context(), request.Options{URL: "save", DefaultMsg: "custom"})
		require.Error(t, err)
		assert.Equal(t, []string{"custom"}, ui.toastTitles())
	})

	t.Run("no message means no toast", func(t *testing.T) {
		t.Parallel()

		tr := &fakeTransport{reply: jsonReply(`{"success":false}`)}
		ui := &fakeUI{}
		c := newClient(tr, ui)

		_, err := c.Post(t.Context(), request.Options{URL: "save"})
		assert.ErrorIs(t, err, request.ErrApplication)
		assert.Empty(t, ui.toastTitles())
	})

	t.Run("msg without explicit failure flag is not toasted", func(t *testing.T) {
		t.Parallel()

		tr := &fakeTransport{reply: jsonReply(`{"msg":"ignored"}`)}
		ui := &fakeUI{}
		c := newClient(tr, ui)

		_, err := c.Post(t.Context(), request.Options{URL: "save"})
		assert.ErrorIs(t, err, request.ErrApplication)
		assert.Empty(t, ui.toastTitles())
	})

	t.Run("non envelope body is rejected with raw body", func(t *testing.T) {
		t.Parallel()

		tr := &fakeTransport{reply: func(host.Request) (*host.Response, error) {
			return &host.Response{StatusCode: http.StatusBadGateway, Data: []byte("<html>502</html>")}, nil
		}}
		ui := &fakeUI{}
		c := newClient(tr, ui)

		_, err := c.Post(t.Context(), request.Options{URL: "save", DefaultMsg: "稍后再试"})

		var envErr *request.EnvelopeError
		require.ErrorAs(t, err, &envErr)
		assert.Equal(t, http.StatusBadGateway, envErr.StatusCode)
		assert.Equal(t, "<html>502</html>", string(envErr.Raw))
		assert.Equal(t, []string{"稍后再试"}, ui.toastTitles())
	})
}

func TestLoadingIndicator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		opts  request.Options
		reply func(host.Request) (*host.Response, error)
		want  []string
	}{
		{
			name:  "show and hide around success",
			opts:  request.Options{URL: "u", ShowLoading: true},
			reply: jsonReply(`{"success":true}`),
			want:  []string{"show:" + request.DefaultLoadingTitle, "hide"},
		},
		{
			name:  "hide only",
			opts:  request.Options{URL: "u", HideLoading: true},
			reply: jsonReply(`{"success":true}`),
			want:  []string{"hide"},
		},
		{
			name:  "neither",
			opts:  request.Options{URL: "u"},
			reply: jsonReply(`{"success":true}`),
			want:  nil,
		},
		{
			name:  "hide before failure toast",
			opts:  request.Options{URL: "u", ShowLoading: true},
			reply: jsonReply(`{"success":false,"msg":"bad"}`),
			want:  []string{"show:" + request.DefaultLoadingTitle, "hide", "toast:bad"},
		},
		{
			name:  "hide on network failure",
			opts:  request.Options{URL: "u", ShowLoading: true},
			reply: failReply(errors.New("dial tcp: refused")),
			want:  []string{"show:" + request.DefaultLoadingTitle, "hide", "toast:" + request.DefaultNetworkErrorMessage},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ui := &fakeUI{}
			c := newClient(&fakeTransport{reply: tt.reply}, ui)
			_, _ = c.Post(t.Context(), tt.opts)
			assert.Equal(t, tt.want, ui.recorded())
		})
	}
}

func TestNetworkFailure(t *testing.T) {
	t.Parallel()

	t.Run("generic toast and sentinel", func(t *testing.T) {
		t.Parallel()

		ui := &fakeUI{}
		c := newClient(&fakeTransport{reply: failReply(errors.New("timeout"))}, ui,
			request.WithNetworkErrorMessage("offline"))

		data, err := c.Get(t.Context(), request.Options{URL: "x"})
		assert.Nil(t, data)
		assert.Equal(t, request.ErrNetwork, err, "no diagnostic payload")
		assert.Equal(t, []string{"offline"}, ui.toastTitles())
	})

	t.Run("canceled caller gets no toast", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		ui := &fakeUI{}
		c := newClient(&fakeTransport{reply: failReply(context.Canceled)}, ui)

		_, err := c.Get(ctx, request.Options{URL: "x"})
		assert.ErrorIs(t, err, request.ErrNetwork)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, ui.toastTitles())
	})
}

func TestSessionCookiePropagation(t *testing.T) {
	t.Parallel()

	n := 0
	tr := &fakeTransport{reply: func(host.Request) (*host.Response, error) {
		n++
		hdr := http.Header{}
		if n == 1 {
			hdr.Set("Set-Cookie", "JSESSIONID=first")
		}
		if n == 3 {
			hdr.Set("Set-Cookie", "JSESSIONID=second")
		}
		return &host.Response{StatusCode: http.StatusOK, Data: []byte(`{"success":true}`), Header: hdr}, nil
	}}
	c := newClient(tr, &fakeUI{})
	ctx := t.Context()

	for range 4 {
		_, err := c.Get(ctx, request.Options{URL: "ping"})
		require.NoError(t, err)
	}

	calls := tr.calls()
	require.Len(t, calls, 4)
	assert.Empty(t, calls[0].Header)
	assert.Equal(t, "JSESSIONID=first", calls[1].Header["Cookie"])
	assert.Equal(t, "JSESSIONID=first", calls[2].Header["Cookie"])
	assert.Equal(t, "JSESSIONID=second", calls[3].Header["Cookie"])
}

func TestCookieCapturedOnApplicationError(t *testing.T) {
	t.Parallel()

	tr := &fakeTransport{reply: func(host.Request) (*host.Response, error) {
		hdr := http.Header{}
		hdr.Set("Set-Cookie", "sid=1")
		return &host.Response{StatusCode: http.StatusOK, Data: []byte(`{"success":false}`), Header: hdr}, nil
	}}
	headers := session.New()
	c := newClient(tr, &fakeUI{}, request.WithHeaders(headers))

	_, err := c.Post(t.Context(), request.Options{URL: "login"})
	require.Error(t, err)

	v, ok := headers.Get(session.CookieHeader)
	require.True(t, ok)
	assert.Equal(t, "sid=1", v)
	assert.Same(t, headers, c.Headers())
}

func TestAsyncVariants(t *testing.T) {
	t.Parallel()

	tr := &fakeTransport{reply: jsonReply(`{"success":true,"data":"ok"}`)}
	c := newClient(tr, &fakeUI{})

	data, err := c.GetAsync(t.Context(), request.Options{URL: "x"}).Await()
	require.NoError(t, err)
	assert.Equal(t, json.RawMessage(`"ok"`), data)

	f := c.PostAsync(t.Context(), request.Options{})
	assert.True(t, f.IsComplete(), "validation failure settles synchronously")
	_, err = f.Await()
	assert.ErrorIs(t, err, request.ErrMissingURL)

	data, err = c.PostAsync(t.Context(), request.Options{URL: "y"}).Await()
	require.NoError(t, err)
	assert.Equal(t, json.RawMessage(`"ok"`), data)
	assert.Len(t, tr.calls(), 2)
}

func TestShowToastAndGoLogin(t *testing.T) {
	t.Parallel()

	ui := &fakeUI{}
	c := newClient(&fakeTransport{}, ui)

	c.ShowToast("hello", 0)
	c.ShowToast("longer", 3*time.Second)

	require.Len(t, ui.toasts, 2)
	assert.Equal(t, host.Toast{Title: "hello", Icon: host.IconNone, Duration: request.DefaultToastDuration}, ui.toasts[0])
	assert.Equal(t, 3*time.Second, ui.toasts[1].Duration)

	require.NoError(t, c.GoLogin())
	assert.Equal(t, []string{request.DefaultLoginPath}, ui.paths)

	custom := newClient(&fakeTransport{}, ui, request.WithLoginPath("/pages/auth/index"))
	require.NoError(t, custom.GoLogin())
	assert.Equal(t, "/pages/auth/index", ui.paths[1])
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	_, err := request.NewFromConfig(request.Config{})
	assert.ErrorIs(t, err, request.ErrMissingBaseURL)

	tr := &fakeTransport{reply: jsonReply(`{"success":true}`)}
	c, err := request.NewFromConfig(request.Config{BaseURL: base, Timeout: time.Second},
		request.WithTransport(tr), request.WithUI(&fakeUI{}))
	require.NoError(t, err)

	_, err = c.Get(t.Context(), request.Options{URL: "x"})
	require.NoError(t, err)
	assert.Equal(t, base+"x", tr.calls()[0].URL)
}
