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

package clicmds

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/jplu/weburi/internal/server"
)

const shutdownTimeout = 5 * time.Second

// ServeFlags configures the serve command.
func ServeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "addr",
			Usage:   "listen address",
			Value:   ":8080",
			EnvVars: []string{envPrefix + "ADDR"},
		},
		&cli.Float64Flag{
			Name:    "rate-limit",
			Usage:   "parse requests per second, 0 for no limit",
			EnvVars: []string{envPrefix + "RATE_LIMIT"},
		},
		&cli.IntFlag{
			Name:    "burst",
			Usage:   "requests allowed above the rate limit at once",
			EnvVars: []string{envPrefix + "BURST"},
		},
		strictFlag(),
		configFlag(),
		logLevelFlag(),
	}
}

// Serve runs the HTTP parse service until SIGINT or SIGTERM.
func Serve(cliCtx *cli.Context) error {
	cfg, err := loadConfig(cliCtx)
	if err != nil {
		return err
	}
	log := newLogger(cliCtx.App.ErrWriter, cfg)
	if log.GetLevel() > zerolog.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Addr: cfg.Server.Addr,
		Handler: server.New(log, server.Options{
			Strict:    cfg.Strict,
			RateLimit: cfg.Server.RateLimit,
			Burst:     cfg.Server.Burst,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cliCtx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("addr", cfg.Server.Addr).Bool("strict", cfg.Strict).Msg("starting uriparse service")
	if err := server.Serve(ctx, srv, shutdownTimeout); err != nil {
		log.Error().Err(err).Msg("service failure occurred")
		return err
	}
	log.Info().Msg("stopped")
	return nil
}
