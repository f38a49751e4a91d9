// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package server serves the demo sketches over HTTP, rendering
// each request to a PNG from its seed.
//
// Routes:
//
//	GET /healthz
//	GET /v1/sketches
//	GET /v1/sketches/<name>.png?seed=&width=&height=&palette=&frames=
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"cogentcore.org/core/base/errors"
	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
)

// Config configures a [Server].
type Config struct {

	// MaxSize is the largest allowed width or height; zero means 2000.
	MaxSize int

	// DefaultSize is the width and height used when a request has
	// none; zero means 600.
	DefaultSize int

	// MaxFrames is the largest allowed frame count; zero means 300.
	MaxFrames int

	// Logger receives request logs; nil uses [slog.Default].
	Logger *slog.Logger
}

// Server is the gallery HTTP server.
type Server struct {
	cfg Config
	e   *echo.Echo
}

// New returns a new server with its routes and middleware installed.
func New(cfg Config) *Server {
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = 2000
	}
	if cfg.DefaultSize <= 0 {
		cfg.DefaultSize = 600
	}
	if cfg.MaxFrames <= 0 {
		cfg.MaxFrames = 300
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(RequestIDMiddleware())
	e.Use(LoggingMiddleware(cfg.Logger))

	s := &Server{cfg: cfg, e: e}
	h := &handler{cfg: cfg}
	h.register(e)
	return s
}

// Handler returns the server as an [http.Handler].
func (s *Server) Handler() http.Handler {
	return s.e
}

// Serve listens on addr until ctx is done, then shuts down
// gracefully, waiting up to 10 seconds for open requests.
func (s *Server) Serve(ctx context.Context, addr string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.cfg.Logger.Info("starting server", "addr", addr)
		if err := s.e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		s.cfg.Logger.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.e.Shutdown(sctx)
	})
	return g.Wait()
}
