/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jplu/weburi/internal/render"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func do(t *testing.T, h http.Handler, req *http.Request) (*httptest.ResponseRecorder, *render.View) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var v render.View
	if rec.Code == http.StatusOK || rec.Code == http.StatusUnprocessableEntity {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	}
	return rec, &v
}

func getParse(input string) *http.Request {
	return httptest.NewRequest(http.MethodGet, "/parse?uri="+url.QueryEscape(input), nil)
}

func postParse(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/parse", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestParseGet(t *testing.T) {
	r := New(zerolog.Nop(), Options{})

	rec, v := do(t, r, getParse("https://www.zupzup.org:443/about/?someVal=5#anchor"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https", v.Scheme)
	assert.Equal(t, "www.zupzup.org", v.Host)
	require.NotNil(t, v.Port)
	assert.Equal(t, uint16(443), *v.Port)
	assert.Equal(t, []string{"about"}, v.Path)
	assert.Equal(t, []render.QueryView{{Key: "someVal", Value: "5"}}, v.Query)
}

func TestParsePost(t *testing.T) {
	r := New(zerolog.Nop(), Options{})

	rec, v := do(t, r, postParse(`{"uri": "http://user:pw@127.0.0.1:8080"}`))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, render.HostKindIPv4, v.HostKind)
	require.NotNil(t, v.Authority)
	assert.Equal(t, "user", v.Authority.Username)
}

func TestParseFailure(t *testing.T) {
	r := New(zerolog.Nop(), Options{})

	rec, v := do(t, r, getParse("bla://yay"))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.NotNil(t, v.Error)
	require.Len(t, v.Error.Chain, 4)
	assert.Equal(t, "scheme", v.Error.Chain[2].Context)
	assert.Equal(t, "uri", v.Error.Chain[3].Context)
}

func TestParseStrict(t *testing.T) {
	input := "http://localhost:99999"

	rec, v := do(t, New(zerolog.Nop(), Options{}), getParse(input))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ":99999", v.Remainder)

	rec, v = do(t, New(zerolog.Nop(), Options{Strict: true}), getParse(input))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, v.Error.Message, "Unexpected input after URI")
	assert.Empty(t, v.Error.Chain)
}

func TestParseBadRequest(t *testing.T) {
	r := New(zerolog.Nop(), Options{})

	for name, req := range map[string]*http.Request{
		"no query":     httptest.NewRequest(http.MethodGet, "/parse", nil),
		"empty query":  httptest.NewRequest(http.MethodGet, "/parse?uri=", nil),
		"missing uri":  postParse(`{}`),
		"invalid json": postParse(`{"uri":`),
	} {
		t.Run(name, func(t *testing.T) {
			rec, _ := do(t, r, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "error")
		})
	}
}

func TestRateLimit(t *testing.T) {
	r := New(zerolog.Nop(), Options{RateLimit: 0.001, Burst: 2})

	for i := range 2 {
		rec, _ := do(t, r, getParse("http://localhost"))
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}
	rec, _ := do(t, r, getParse("http://localhost"))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// Health checks are not limited.
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	New(zerolog.Nop(), Options{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRequestLogging(t *testing.T) {
	var buf bytes.Buffer
	r := New(zerolog.New(&buf), Options{})
	do(t, r, getParse("http://localhost"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/parse", entry["path"])
	assert.Equal(t, float64(http.StatusOK), entry["status"])
	assert.Equal(t, "request", entry["message"])
}

func TestServeShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	srv := &http.Server{Addr: addr, Handler: New(zerolog.Nop(), Options{}), ReadHeaderTimeout: time.Second}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, srv, time.Second) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
