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

// Package config holds the settings of the uriparse command and service.
package config

import (
	"io"
	"os"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Output formats.
const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatMsgpack = "msgpack"
	FormatDump    = "dump"
	FormatDOT     = "dot"
)

// Formats lists every supported output format.
var Formats = []string{FormatText, FormatJSON, FormatMsgpack, FormatDump, FormatDOT}

// Config is the uriparse configuration.
type Config struct {
	Format   string `toml:"format"`
	Strict   bool   `toml:"strict"`
	LogLevel string `toml:"log_level"`
	Server   Server `toml:"server"`
}

// Server configures the HTTP parse service.
type Server struct {
	Addr string `toml:"addr"`
	// RateLimit is in requests per second; zero means unlimited.
	RateLimit float64 `toml:"rate_limit"`
	Burst     int     `toml:"burst"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Format:   FormatText,
		LogLevel: zerolog.InfoLevel.String(),
		Server:   Server{Addr: ":8080"},
	}
}

// Load reads a TOML file over the defaults. An empty path returns the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening config")
	}
	defer f.Close()

	if err := Decode(f, cfg); err != nil {
		return nil, errors.Wrapf(err, "loading config %s", path)
	}
	return cfg, nil
}

// Decode reads TOML from r into cfg and validates the result.
func Decode(r io.Reader, cfg *Config) error {
	if err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return errors.Wrap(err, "decoding toml")
	}
	return cfg.Validate()
}

// Validate checks the format and log level.
func (c *Config) Validate() error {
	if !validFormat(c.Format) {
		return errors.Errorf("unknown format %q", c.Format)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Server.RateLimit < 0 || c.Server.Burst < 0 {
		return errors.New("server rate_limit and burst must not be negative")
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, errors.Wrapf(err, "log level %q", c.LogLevel)
	}
	return lvl, nil
}

func validFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}
