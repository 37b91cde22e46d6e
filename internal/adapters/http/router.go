package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/content-api/internal/adapters/http/failure"
	"github.com/jsamuelsen/content-api/internal/adapters/http/handlers"
	"github.com/jsamuelsen/content-api/internal/adapters/http/middleware"
	"github.com/jsamuelsen/content-api/internal/platform/telemetry"
)

// APIVersionPrefix is the versioned mount point of the resource routes.
const APIVersionPrefix = "/api/v1"

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the fallback logger for requests without a context logger.
	Logger *slog.Logger

	// ServiceName names the tracing spans.
	ServiceName string

	// Mapper translates failures into responses. Built from Logger if nil.
	Mapper *failure.Mapper

	HealthHandler *handlers.HealthHandler
	UserHandler   *handlers.UserHandler
	PostHandler   *handlers.PostHandler

	// Timeout is the per-request deadline for resource routes. Zero disables it.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - panics become unclassified failures
//  2. Request ID
//  3. Correlation ID
//  4. OpenTelemetry - spans, then metrics and the trace ID header
//  5. Logging - request logging (skips /-/ endpoints)
//  6. ErrorHandler - writes responses for failures recorded by handlers
//
// Resource routes are mounted twice, at the root and under /api/v1, both
// with the request timeout. Operational routes live under /-/.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	mapper := cfg.Mapper
	if mapper == nil {
		mapper = failure.NewMapper(cfg.Logger)
	}

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "content-api"
	}

	engine.Use(
		middleware.Recovery(mapper),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.Tracing(serviceName),
		telemetry.Middleware(),
		middleware.Logging(cfg.Logger),
		middleware.ErrorHandler(mapper),
	)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterRoutes(engine)
	}

	for _, prefix := range []string{"", APIVersionPrefix} {
		rg := engine.Group(prefix)
		rg.Use(middleware.Timeout(cfg.Timeout))
		registerResourceRoutes(rg, cfg)
	}
}

func registerResourceRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.UserHandler != nil {
		cfg.UserHandler.RegisterRoutes(rg)
	}

	if cfg.PostHandler != nil {
		cfg.PostHandler.RegisterRoutes(rg)
	}
}
