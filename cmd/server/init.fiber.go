package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"

	"edu_crm/config"
	basehdl "edu_crm/internal/api/base/handler"
	"edu_crm/internal/api/middleware"
	apirouter "edu_crm/internal/api/router"
	"edu_crm/internal/common"
	"edu_crm/internal/logger"
	"edu_crm/internal/metrics"
)

// unthrottled paths skip the rate limiter and the panic handler.
func unthrottled(c fiber.Ctx) bool {
	switch c.Path() {
	case "/health", "/metrics", "/api/v1/system/health":
		return true
	}
	return false
}

// InitFiberApp builds the app with the middleware stack, system endpoints and domain routes.
func InitFiberApp(cfg *config.Configuration, client *mongo.Client, auth *middleware.Auth, regs ...apirouter.RegisterFunc) (*fiber.App, error) {
	basehdl.SetShowStack(!cfg.IsProduction())

	bodyLimit := cfg.BodyLimitMB
	if bodyLimit <= 0 {
		bodyLimit = 20
	}
	app := fiber.New(fiber.Config{
		AppName:      "Education CRM API",
		ServerHeader: "Education CRM API",
		BodyLimit:    bodyLimit * 1024 * 1024,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorHandler: basehdl.ErrorHandler,
	})

	// 1. Request ID
	app.Use(requestid.New(requestid.Config{Header: "X-Request-ID"}))

	// 2. CORS before anything that may reject a preflight
	allowOrigins := cfg.CORSOrigins()
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"*"}
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID", "X-Requested-With"},
		AllowCredentials: cfg.CORS_AllowCredentials && !containsWildcard(allowOrigins),
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		MaxAge:           24 * 60 * 60,
	}))

	// 3. Security headers
	app.Use(func(c fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		if cfg.EnableTLS {
			c.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}
		return c.Next()
	})

	log := logger.GetAppLogger()
	// 4. Rate limiting per IP
	if cfg.RateLimit_Enabled && cfg.RateLimit_Max > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimit_Max,
			Expiration: time.Duration(cfg.RateLimit_Window) * time.Second,
			KeyGenerator: func(c fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c fiber.Ctx) error {
				return fiber.NewError(fiber.StatusTooManyRequests, "Too many requests, please retry later")
			},
			Next: func(c fiber.Ctx) bool {
				return unthrottled(c) || c.Method() == fiber.MethodOptions
			},
		}))
		log.Infof("Rate limiting enabled: %d requests per %d seconds", cfg.RateLimit_Max, cfg.RateLimit_Window)
	} else {
		log.Info("Rate limiting disabled")
	}

	// 5. Recover
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e interface{}) {
			logger.WithRequest(c).WithField("panic", fmt.Sprint(e)).Error("Panic recovered")
		},
		Next: unthrottled,
	}))

	// 6. Request metrics
	if cfg.MetricsEnabled {
		app.Use(metrics.Middleware())
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))
	}

	system := basehdl.NewSystemHandler(client)
	app.Get("/health", system.HandleHealth)
	app.Get("/api/v1/system/health", system.HandleHealth)

	if err := apirouter.SetupRoutes(app, auth, regs...); err != nil {
		return nil, err
	}

	app.Use(func(c fiber.Ctx) error {
		return basehdl.HandleError(c, common.WithDetails(common.ErrRouteNotFound, c.Method()+" "+c.Path()))
	})
	return app, nil
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if strings.TrimSpace(o) == "*" {
			return true
		}
	}
	return false
}
