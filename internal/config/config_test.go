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

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, FormatText, cfg.Format)
	assert.False(t, cfg.Strict)
	assert.Equal(t, ":8080", cfg.Server.Addr)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, lvl)
}

func TestDecode(t *testing.T) {
	cfg := Default()
	err := Decode(strings.NewReader(`
format = "json"
strict = true
log_level = "debug"

[server]
addr = "127.0.0.1:9000"
rate_limit = 2.5
burst = 4
`), cfg)
	require.NoError(t, err)

	assert.Equal(t, &Config{
		Format:   FormatJSON,
		Strict:   true,
		LogLevel: "debug",
		Server:   Server{Addr: "127.0.0.1:9000", RateLimit: 2.5, Burst: 4},
	}, cfg)
}

func TestDecodeKeepsUnsetDefaults(t *testing.T) {
	cfg := Default()
	require.NoError(t, Decode(strings.NewReader(`format = "dot"`), cfg))
	assert.Equal(t, FormatDOT, cfg.Format)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantMsg string
	}{
		{name: "unknown format", doc: `format = "yaml"`, wantMsg: `unknown format "yaml"`},
		{name: "bad level", doc: `log_level = "loud"`, wantMsg: `log level "loud"`},
		{name: "bad toml", doc: `format = `, wantMsg: "decoding toml"},
		{name: "negative burst", doc: "[server]\nburst = -1", wantMsg: "must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Decode(strings.NewReader(tt.doc), Default())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(t.TempDir(), "uriparse.toml")
	require.NoError(t, os.WriteFile(path, []byte("format = \"msgpack\"\n"), 0o600))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, FormatMsgpack, cfg.Format)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening config")
}
