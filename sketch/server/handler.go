// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/sketch/base/randx"
	"cogentcore.org/sketch/demos"
	"cogentcore.org/sketch/palette"
	"cogentcore.org/sketch/sketch"
	"github.com/labstack/echo/v4"
)

// HeaderSeed reports the seed used to render an image.
const HeaderSeed = "X-Sketch-Seed"

// ErrorResponse is the JSON body of every error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SketchInfo describes one demo in GET /v1/sketches.
type SketchInfo struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	FrameRate   float64 `json:"frameRate,omitempty"`
	URL         string  `json:"url"`
}

// ListResponse is the JSON body of GET /v1/sketches.
type ListResponse struct {
	Sketches []SketchInfo `json:"sketches"`
	Palettes []string     `json:"palettes"`
}

type handler struct {
	cfg Config
}

func (h *handler) register(e *echo.Echo) {
	e.GET("/healthz", h.healthz)
	e.GET("/v1/sketches", h.list)
	e.GET("/v1/sketches/:file", h.render)
}

func (h *handler) healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *handler) list(c echo.Context) error {
	resp := ListResponse{Palettes: palette.Names()}
	for _, d := range demos.All() {
		resp.Sketches = append(resp.Sketches, SketchInfo{
			Name:        d.Name,
			Description: d.Description,
			FrameRate:   d.FrameRate,
			URL:         "/v1/sketches/" + d.Name + ".png",
		})
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *handler) render(c echo.Context) error {
	name, ok := strings.CutSuffix(c.Param("file"), ".png")
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "sketches are served as <name>.png"})
	}

	opts := sketch.Options{Title: name, Palette: c.QueryParam("palette"), Logger: slog.New(slog.DiscardHandler)}
	var err error
	if opts.Width, err = h.intParam(c, "width", h.cfg.DefaultSize, 1, h.cfg.MaxSize); err != nil {
		return badRequest(c, err)
	}
	if opts.Height, err = h.intParam(c, "height", h.cfg.DefaultSize, 1, h.cfg.MaxSize); err != nil {
		return badRequest(c, err)
	}
	frames, err := h.intParam(c, "frames", 1, 1, h.cfg.MaxFrames)
	if err != nil {
		return badRequest(c, err)
	}
	if raw := c.QueryParam("seed"); raw != "" {
		if opts.Seed, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return badRequest(c, errors.New("seed must be an integer"))
		}
	} else if opts.Seed, err = randx.NewSeed(); err != nil {
		return h.internal(c, err)
	}

	s, err := demos.Render(name, opts, frames)
	switch {
	case errors.Is(err, demos.ErrUnknown):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, palette.ErrUnknown):
		return badRequest(c, err)
	case err != nil:
		return h.internal(c, err)
	}

	var buf bytes.Buffer
	if err := s.Ctx.EncodePNG(&buf); err != nil {
		return h.internal(c, err)
	}
	c.Response().Header().Set(HeaderSeed, strconv.FormatInt(opts.Seed, 10))
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}

// intParam parses an optional integer query parameter in [min, max].
func (h *handler) intParam(c echo.Context, key string, def, min, max int) (int, error) {
	raw := c.QueryParam(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < min || v > max {
		return 0, fmt.Errorf("%s must be an integer between %d and %d", key, min, max)
	}
	return v, nil
}

func badRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
}

func (h *handler) internal(c echo.Context, err error) error {
	requestID, _ := c.Get("request_id").(string)
	h.cfg.Logger.Error("internal error", "request_id", requestID, "err", err)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
