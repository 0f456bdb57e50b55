package http

import (
	"context"
	"net/http"
	"time"

	"dispatch/internal/pkg/logger"
	"dispatch/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options configures the echo instance built by NewEcho.
type Options struct {
	Session  SessionConfig
	Logger   *logger.Logger
	Metrics  *metrics.HTTPMetrics
	Gatherer prometheus.Gatherer
	// HealthCheck reports readiness of backing stores. Nil means always healthy.
	HealthCheck func(ctx context.Context) error
}

// NewEcho builds the router: /health and /metrics are public, everything
// under /api/v1 requires a session token.
func NewEcho(s *Server, opts Options) *echo.Echo {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.OFF)
	e.Validator = newRequestValidator()
	e.HTTPErrorHandler = NewErrorHandler(opts.Logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(observeRequests(opts.Logger, opts.Metrics))

	e.GET("/health", health(opts.HealthCheck))
	if opts.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	api := e.Group("/api/v1", RequireSession(opts.Session))

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:orderId/complete", s.CompleteOrder)

	api.POST("/truckloads", s.CreateTruckload)
	api.GET("/truckloads/:truckloadId/stops", s.GetTruckloadStops)
	api.PUT("/truckloads/:truckloadId/stops", s.ReorderStops)
	api.POST("/truckloads/:truckloadId/assignments", s.AssignLeg)
	api.DELETE("/truckloads/:truckloadId/assignments/:orderId/:assignmentType", s.UnassignLeg)
	api.PATCH("/truckloads/:truckloadId/assignments/:orderId/:assignmentType", s.SetLoadValueExclusion)
	api.POST("/truckloads/:truckloadId/promote", s.PromoteTruckload)
	api.POST("/truckloads/:truckloadId/complete", s.CompleteTruckload)
	api.POST("/truckloads/:truckloadId/uncomplete", s.UncompleteTruckload)
	api.GET("/truckloads/:truckloadId/split-load-deductions", s.ListSplitLoadDeductions)

	api.GET("/bol/next", s.PeekNextBOL)

	return e
}

func health(check func(ctx context.Context) error) echo.HandlerFunc {
	return func(c echo.Context) error {
		if check != nil {
			if err := check(c.Request().Context()); err != nil {
				return c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
			}
		}
		return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// observeRequests logs one line per request and feeds the HTTP metrics.
// Errors are rendered here so the logged status matches the response.
func observeRequests(logg *logger.Logger, m *metrics.HTTPMetrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			ctx := logg.WithRequestID(req.Context(), c.Response().Header().Get(echo.HeaderXRequestID))
			c.SetRequest(req.WithContext(ctx))

			if err := next(c); err != nil {
				c.Error(err)
			}

			elapsed := time.Since(start)
			status := c.Response().Status
			m.Observe(c.Path(), req.Method, status, elapsed)

			ctx = logg.WithFields(ctx, map[string]any{
				"method":      req.Method,
				"route":       c.Path(),
				"status":      status,
				"duration_ms": elapsed.Milliseconds(),
			})
			if status >= http.StatusInternalServerError {
				logg.Warn(ctx, "request served with server error")
			} else {
				logg.Info(ctx, "request served")
			}
			return nil
		}
	}
}
