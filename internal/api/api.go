// Package api contains the JSON HTTP surface: the public site endpoints and
// the token-protected admin endpoints.
package api

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/prabhatmusic/riyaaz/internal/captcha"
	"github.com/prabhatmusic/riyaaz/internal/config"
	"github.com/prabhatmusic/riyaaz/internal/sec"
	"github.com/prabhatmusic/riyaaz/internal/storage"
)

// New creates the API server with all routes registered.
func New(
	cfg config.Config,
	logger *slog.Logger,
	store storage.Store,
	tokens *sec.Tokens,
	verifier captcha.Verifier,
) *echo.Echo {
	srv := echo.New()

	srv.HideBanner = true
	srv.HidePort = true
	srv.Logger.SetLevel(log.OFF)
	srv.Debug = !cfg.Production()

	srv.Use(
		middleware.Recover(),
		middleware.RequestID(),
		middleware.Decompress(),
		middleware.Gzip(),
		middleware.Secure(),
		logRequests(logger),
	)

	handler{
		store:    store,
		tokens:   tokens,
		verifier: verifier,
	}.register(srv)

	return srv
}

func logRequests(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			latency := time.Since(start)

			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			attrs := []slog.Attr{
				slog.String("method", req.Method),
				slog.String("uri", req.RequestURI),
				slog.String("route", c.Path()),
				slog.Duration("latency", latency),
				slog.Int("status", res.Status),
			}
			if err != nil {
				attrs = append(attrs, slog.Any("error", err))
			}
			logger.LogAttrs(
				req.Context(),
				slog.LevelInfo,
				"request handled",
				attrs...,
			)
			return err
		}
	}
}
