package router

import (
	"fmt"
	"net/http"

	"berries/internal/interfaces/api/handler"
	"berries/internal/pkg/logger"
	"berries/internal/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// Config holds the dependencies for the router.
type Config struct {
	BerryHandler         *handler.BerryHandler
	TodoHandler          *handler.TodoHandler
	PushRecipientHandler *handler.PushRecipientHandler
	HealthHandler        *handler.HealthHandler
	Logger               logger.Logger
	Metrics              *metrics.Metrics // nil disables /metrics
	JWTSecret            string
	JWTIssuer            string
	RateLimit            float64 // requests per second per client, 0 disables
}

// CustomValidator adapts go-playground/validator to echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates structs
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// NewRouter creates and configures a new Echo router.
func NewRouter(cfg *Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = handler.NewErrorHandler(cfg.Logger)

	// Middleware
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			cfg.Logger.Info(fmt.Sprintf("REQUEST: method=%s, uri=%s, status=%d, latency=%s, req_id=%s",
				v.Method, v.URI, v.Status, v.Latency, v.RequestID,
			))
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		ExposeHeaders: exposedHeaders,
		MaxAge:        300,
	}))
	if cfg.Metrics != nil {
		e.Use(cfg.Metrics.Middleware())
	}
	if cfg.RateLimit > 0 {
		e.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
			Store: middleware.NewRateLimiterMemoryStore(rate.Limit(cfg.RateLimit)),
			IdentifierExtractor: func(c echo.Context) (string, error) {
				return c.RealIP(), nil
			},
			DenyHandler: func(c echo.Context, identifier string, err error) error {
				return c.JSON(http.StatusTooManyRequests, handler.ErrorResponse{Reason: "rate limit exceeded", Type: "rate_limited"})
			},
		}))
	}

	// Routes
	e.GET("/health", cfg.HealthHandler.Check)
	if cfg.Metrics != nil {
		e.GET("/metrics", cfg.Metrics.Handler())
	}

	v1 := e.Group("/v1", handler.RequireBearer(cfg.JWTSecret, cfg.JWTIssuer, cfg.Logger))

	berries := v1.Group("/berries")
	berries.POST("", cfg.BerryHandler.Create)
	berries.GET("", cfg.BerryHandler.List)
	berries.GET("/:id", cfg.BerryHandler.Get)
	berries.PUT("/:id", cfg.BerryHandler.Update)
	berries.DELETE("/:id", cfg.BerryHandler.Delete)

	v1.PUT("/push-recipients", cfg.PushRecipientHandler.Register)

	todos := v1.Group("/todos")
	todos.POST("", cfg.TodoHandler.Create)
	todos.GET("", cfg.TodoHandler.List)
	todos.GET("/tags", cfg.TodoHandler.Tags)
	todos.GET("/:id", cfg.TodoHandler.Get)
	todos.PUT("/:id", cfg.TodoHandler.Update)
	todos.DELETE("/:id", cfg.TodoHandler.Delete)

	cfg.Logger.Info("Router initialized with routes.")
	return e
}

var exposedHeaders = []string{
	echo.HeaderLocation,
	handler.HeaderPageSize,
	handler.HeaderPageIndex,
	handler.HeaderFirstPage,
	handler.HeaderLastPage,
	handler.HeaderTotalPages,
	handler.HeaderTotalEntries,
	handler.HeaderPreviousPageIndex,
	handler.HeaderNextPageIndex,
}
