// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/h2non/filetype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *Server {
	return New(Config{MaxSize: 400, DefaultSize: 64, Logger: slog.New(slog.DiscardHandler)})
}

func get(t *testing.T, s *Server, target string, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := get(t, newTestServer(), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
	assert.Len(t, rec.Header().Get(HeaderRequestID), 32)

	rec = get(t, newTestServer(), "/healthz", HeaderRequestID, "abc")
	assert.Equal(t, "abc", rec.Header().Get(HeaderRequestID))
}

func TestList(t *testing.T) {
	rec := get(t, newTestServer(), "/v1/sketches")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp ListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Sketches)
	assert.Equal(t, "glyphs", resp.Sketches[0].Name)
	assert.Equal(t, "/v1/sketches/glyphs.png", resp.Sketches[0].URL)
	assert.Contains(t, resp.Palettes, "default")
}

func TestRender(t *testing.T) {
	s := newTestServer()
	rec := get(t, s, "/v1/sketches/splits.png?seed=5&width=80&height=60&palette=taffy")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "5", rec.Header().Get(HeaderSeed))
	assert.True(t, filetype.IsImage(rec.Body.Bytes()))
	kind, err := filetype.Match(rec.Body.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "png", kind.Extension)

	img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 80, img.Bounds().Dx())
	assert.Equal(t, 60, img.Bounds().Dy())

	// same seed, same bytes
	again := get(t, s, "/v1/sketches/splits.png?seed=5&width=80&height=60&palette=taffy")
	assert.Equal(t, rec.Body.Bytes(), again.Body.Bytes())

	// a fresh seed is reported when none is given
	rec = get(t, s, "/v1/sketches/orbit.png?frames=2")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(HeaderSeed))
}

func TestRenderErrors(t *testing.T) {
	s := newTestServer()
	cases := []struct {
		target string
		code   int
		msg    string
	}{
		{"/v1/sketches/splits", http.StatusNotFound, "<name>.png"},
		{"/v1/sketches/glyph.png", http.StatusNotFound, `did you mean "glyphs"?`},
		{"/v1/sketches/splits.png?width=0", http.StatusBadRequest, "width must be"},
		{"/v1/sketches/splits.png?height=401", http.StatusBadRequest, "height must be"},
		{"/v1/sketches/splits.png?frames=x", http.StatusBadRequest, "frames must be"},
		{"/v1/sketches/splits.png?seed=1.5", http.StatusBadRequest, "seed must be"},
		{"/v1/sketches/splits.png?palette=nope", http.StatusBadRequest, "unknown palette"},
	}
	for _, tc := range cases {
		rec := get(t, s, tc.target)
		assert.Equal(t, tc.code, rec.Code, tc.target)
		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), tc.target)
		assert.Contains(t, resp.Error, tc.msg, tc.target)
	}
}

func TestServe(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- newTestServer().Serve(ctx, addr) }()

	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get("http://" + addr + "/healthz")
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("server did not stop")
	}
}
