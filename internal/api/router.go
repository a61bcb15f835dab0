package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/mediquix/mediquix-server/internal/api/handler"
	"github.com/mediquix/mediquix-server/internal/api/middleware"
	"github.com/mediquix/mediquix-server/internal/core/ports"

	_ "github.com/mediquix/mediquix-server/docs"
)

// Services bundles everything the routes call into.
type Services struct {
	Tokens   ports.TokenService
	Access   ports.AccessService
	Feedback ports.FeedbackService
	Camps    ports.CampService
	Joins    ports.JoinService
	Users    ports.UserService
	Payments ports.PaymentService
}

// Options tunes the ops surface of the router.
type Options struct {
	// Checks backs GET /health/ready.
	Checks map[string]handler.DependencyCheck
	// Metrics mounts the Prometheus middleware and GET /metrics.
	Metrics bool
	// Swagger mounts GET /swagger/*.
	Swagger bool
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, opts Options, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(log))
	e.Use(echomiddleware.CORS())
	if opts.Metrics {
		e.Use(echoprometheus.NewMiddleware("mediquix"))
		e.GET("/metrics", echoprometheus.NewHandler())
	}

	// --- Gates ---
	auth := middleware.Auth(svc.Tokens)
	admin := middleware.RequireAdmin(svc.Access)

	// --- Handlers ---
	tokenHandler := handler.NewTokenHandler(svc.Tokens)
	feedbackHandler := handler.NewFeedbackHandler(svc.Feedback)
	campHandler := handler.NewCampHandler(svc.Camps)
	joinHandler := handler.NewJoinHandler(svc.Joins)
	userHandler := handler.NewUserHandler(svc.Users)
	paymentHandler := handler.NewPaymentHandler(svc.Payments)
	healthHandler := handler.NewHealthHandler(opts.Checks)

	e.POST("/jwt", tokenHandler.Issue)

	// --- Feedback ---
	e.POST("/feedbacks", feedbackHandler.Create, auth)
	e.GET("/feedbacks", feedbackHandler.List)

	// --- Camps ---
	e.POST("/camps", campHandler.Create, auth, admin)
	e.DELETE("/delete-camp/:id", campHandler.Delete, auth, admin)
	e.PATCH("/update-camp/:campId", campHandler.Update, auth, admin)
	e.GET("/camps", campHandler.List)
	e.GET("/camps/:id", campHandler.Get)

	// --- Joins ---
	e.POST("/joinCamps", joinHandler.Join, auth)
	e.GET("/joinCamps", joinHandler.List, auth)
	e.GET("/joinCamps/:id", joinHandler.Get)
	e.GET("/joinedCamps", joinHandler.ListByEmail)
	e.DELETE("/joinedCamps/:id", joinHandler.Delete, auth)
	e.PATCH("/joinedCamps/payment/:id", joinHandler.SetPaymentStatus, auth)
	e.PATCH("/joinedCamps/feedback/:id", joinHandler.SetFeedbackStatus, auth)
	e.PATCH("/joinCamps/:id", joinHandler.Patch, auth)

	// --- Users ---
	e.POST("/users", userHandler.Register)
	e.PATCH("/users/role/:id", userHandler.ToggleRole, auth)
	e.GET("/users", userHandler.List)
	e.GET("/user", userHandler.GetByEmail)
	e.PATCH("/user", userHandler.UpdateByEmail, auth)
	e.DELETE("/users/:id", userHandler.Delete, auth, admin)
	e.GET("/users/admin/:email", userHandler.AdminStatus, auth)

	// --- Payments ---
	e.POST("/create-payment-intent", paymentHandler.CreateIntent, auth)

	// --- Health probes (no auth required) ---
	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)

	if opts.Swagger {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			event := log.Info()
			if v.Error != nil || v.Status >= 500 {
				event = log.Warn().Err(v.Error)
			}
			event.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
