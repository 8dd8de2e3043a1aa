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

// Package clicmds implements the uriparse commands.
package clicmds

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/jplu/weburi/internal/config"
)

const envPrefix = "URIPARSE_"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "TOML config file",
		EnvVars: []string{envPrefix + "CONFIG"},
	}
}

func logLevelFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "log-level",
		Usage:   "trace, debug, info, warn, error",
		EnvVars: []string{envPrefix + "LOG_LEVEL"},
	}
}

func strictFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    "strict",
		Usage:   "reject input with trailing text",
		EnvVars: []string{envPrefix + "STRICT"},
	}
}

// loadConfig reads the config file named by --config and applies the flags
// that were set explicitly.
func loadConfig(cliCtx *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(cliCtx.String("config"))
	if err != nil {
		return nil, err
	}
	if cliCtx.IsSet("format") {
		cfg.Format = cliCtx.String("format")
	}
	if cliCtx.IsSet("strict") {
		cfg.Strict = cliCtx.Bool("strict")
	}
	if cliCtx.IsSet("log-level") {
		cfg.LogLevel = cliCtx.String("log-level")
	}
	if cliCtx.IsSet("addr") {
		cfg.Server.Addr = cliCtx.String("addr")
	}
	if cliCtx.IsSet("rate-limit") {
		cfg.Server.RateLimit = cliCtx.Float64("rate-limit")
	}
	if cliCtx.IsSet("burst") {
		cfg.Server.Burst = cliCtx.Int("burst")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

func newLogger(w io.Writer, cfg *config.Config) zerolog.Logger {
	lvl, err := cfg.Level()
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(lvl).With().Timestamp().Logger()
}

// inputs returns the positional arguments, or the non-blank lines of r
// when there are none.
func inputs(cliCtx *cli.Context, r io.Reader) ([]string, error) {
	if cliCtx.NArg() > 0 {
		return cliCtx.Args().Slice(), nil
	}
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	return lines, nil
}
