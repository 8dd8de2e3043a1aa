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

// Package server exposes the URI parser over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/jplu/weburi/internal/render"
)

// Options configures the handlers.
type Options struct {
	// Strict rejects inputs with unconsumed trailing text.
	Strict bool
	// RateLimit caps /parse requests per second. Zero disables the limit.
	RateLimit float64
	// Burst is the number of requests allowed above RateLimit at once.
	Burst int
}

type parseRequest struct {
	URI string `json:"uri" binding:"required"`
}

type handler struct {
	log  zerolog.Logger
	opts Options
}

// New returns the router serving /parse and /healthz.
func New(logger zerolog.Logger, opts Options) *gin.Engine {
	h := &handler{log: logger, opts: opts}

	r := gin.New()
	r.Use(gin.Recovery(), h.logRequests)
	r.GET("/healthz", h.healthz)
	parse := r.Group("/parse")
	if opts.RateLimit > 0 {
		parse.Use(limit(rate.NewLimiter(rate.Limit(opts.RateLimit), max(opts.Burst, 1))))
	}
	parse.GET("", h.parseQuery)
	parse.POST("", h.parseBody)
	return r
}

func limit(l *rate.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}

func (h *handler) logRequests(c *gin.Context) {
	start := time.Now()
	c.Next()
	h.log.Info().
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Int("status", c.Writer.Status()).
		Dur("latency", time.Since(start)).
		Msg("request")
}

func (h *handler) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handler) parseQuery(c *gin.Context) {
	input, ok := c.GetQuery("uri")
	if !ok || input == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing uri query parameter"})
		return
	}
	h.respond(c, input)
}

func (h *handler) parseBody(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Msg("bad parse request")
		c.JSON(http.StatusBadRequest, gin.H{"error": errors.Wrap(err, "decoding request").Error()})
		return
	}
	h.respond(c, req.URI)
}

func (h *handler) respond(c *gin.Context, input string) {
	v := render.Evaluate(input, h.opts.Strict)
	if !v.OK() {
		c.JSON(http.StatusUnprocessableEntity, v)
		return
	}
	c.JSON(http.StatusOK, v)
}

// Serve runs srv until ctx is done, then shuts it down within timeout.
func Serve(ctx context.Context, srv *http.Server, timeout time.Duration) error {
	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "listening")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutting down")
	}
	return nil
}
