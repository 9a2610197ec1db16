package request_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/minikit/core/host"
	"github.com/dmitrymomot/minikit/core/request"
)

func TestClientOverHTTP(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /bh/r/user/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["code"] != "wx-code" {
			_, _ = w.Write([]byte(`{"success":false,"msg":"登录失败"}`))
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "JSESSIONID", Value: "s1"})
		_, _ = w.Write([]byte(`{"success":true,"data":{"name":"ann"}}`))
	})
	mux.HandleFunc("GET /bh/r/user/info", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Cookie") != "JSESSIONID=s1" {
			_, _ = w.Write([]byte(`{"success":false,"msg":"请先登录"}`))
			return
		}
		_, _ = w.Write([]byte(`{"success":true,"data":{"name":"ann","page":"` + r.URL.Query().Get("page") + `"}}`))
	})
	mux.HandleFunc("POST /bh/r/upload/uploadFile", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Cookie") != "JSESSIONID=s1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`{"success":true,"data":"https://cdn.example.com/` + r.FormValue("fileType") + `.png"}`))
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	ui := host.NewLogUI(nil)
	c := request.New(
		request.WithBaseURL(srv.URL+"/"),
		request.WithTransport(host.NewHTTPTransport(host.WithHTTPClient(srv.Client()))),
		request.WithUI(ui),
	)
	ctx := t.Context()

	type user struct {
		Name string `json:"name"`
		Page string `json:"page"`
	}

	_, err := request.GetAs[user](ctx, c, request.Options{URL: "bh/r/user/info"})
	require.ErrorIs(t, err, request.ErrApplication)

	_, err = c.Post(ctx, request.Options{URL: "bh/r/user/login", Data: map[string]string{"code": "bad"}})
	require.ErrorIs(t, err, request.ErrApplication)

	u, err := request.PostAs[user](ctx, c, request.Options{
		URL:         "bh/r/user/login",
		Data:        map[string]string{"code": "wx-code"},
		ShowLoading: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "ann", u.Name)
	assert.False(t, ui.Loading())

	u, err = request.GetAs[user](ctx, c, request.Options{URL: "bh/r/user/info", Data: map[string]string{"page": "home"}})
	require.NoError(t, err)
	assert.Equal(t, user{Name: "ann", Page: "home"}, u)

	path := filepath.Join(t.TempDir(), "avatar.png")
	require.NoError(t, os.WriteFile(path, []byte("img"), 0o600))

	data, err := c.Upload(ctx, path, "")
	require.NoError(t, err)
	assert.JSONEq(t, `"https://cdn.example.com/head_img.png"`, string(data))
}
