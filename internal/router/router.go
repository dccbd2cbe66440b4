package router

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"

	"gymcloud/internal/config"
	"gymcloud/internal/handler"
	"gymcloud/internal/metrics"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	log *logrus.Logger,
	memberHandler *handler.MemberHandler,
	rec *metrics.Recorder,
) {
	e.Use(middleware.RequestID())
	e.Use(RequestLogger(log))
	e.Use(middleware.Recover())

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(rec.Handler()))
	base := strings.TrimSuffix(cfg.APIBasePath, "/")
	dispatch := memberHandler.Echo(base)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.OPTIONS("/swagger/*", dispatch)
	if base != "" {
		e.Any(base, dispatch)
	}
	e.Any(base+"/*", dispatch)
}

// RequestLogger logs one line per request through logrus.
func RequestLogger(log *logrus.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.WithFields(logrus.Fields{
				"request_id": v.RequestID,
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency.String(),
			}).Info("request")
			return nil
		},
	})
}
