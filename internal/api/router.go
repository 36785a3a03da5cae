package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/legalconnect/platform-api/docs"
	"github.com/legalconnect/platform-api/internal/api/handler"
	"github.com/legalconnect/platform-api/internal/api/middleware"
	"github.com/legalconnect/platform-api/internal/core/domain"
	"github.com/legalconnect/platform-api/internal/core/ports"
	"github.com/legalconnect/platform-api/internal/infrastructure/http/handlers"
)

// Deps carries the constructed services the router wires into handlers.
// MongoDB and Redis clients are optional and only feed the readiness probe.
type Deps struct {
	JWTSecret string

	Auth          ports.AuthService
	Appointments  ports.AppointmentService
	Cases         ports.CaseService
	Tasks         ports.TaskService
	Messages      ports.MessageService
	Notifications ports.NotificationService
	Documents     ports.DocumentService
	Directory     ports.Directory
	Sessions      ports.SessionRepository

	// Replies is nil when simulated lawyer replies are disabled.
	Replies handler.AutoReplier

	Mongo *mongo.Database
	Redis *redis.Client
	Log   zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("legalconnect"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	appointmentHandler := handler.NewAppointmentHandler(deps.Appointments)
	caseHandler := handler.NewCaseHandler(deps.Cases)
	taskHandler := handler.NewTaskHandler(deps.Tasks)
	messageHandler := handler.NewMessageHandler(deps.Messages, deps.Replies)
	notificationHandler := handler.NewNotificationHandler(deps.Notifications)
	documentHandler := handler.NewDocumentHandler(deps.Documents)
	directoryHandler := handler.NewDirectoryHandler(deps.Directory)

	authRequired := middleware.Auth(deps.JWTSecret, deps.Sessions)
	clientOnly := middleware.RBAC(string(domain.RoleClient))
	lawyerOnly := middleware.RBAC(string(domain.RoleLawyer))

	// --- Auth routes ---
	auth := e.Group("/v1/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/signup", authHandler.Signup)
	auth.GET("/session", authHandler.Session)
	auth.POST("/logout", authHandler.Logout, authRequired)
	auth.GET("/me", authHandler.Me, authRequired)
	auth.PATCH("/me", authHandler.UpdateProfile, authRequired)

	// --- Appointments ---
	appointments := e.Group("/v1/appointments", authRequired)
	appointments.GET("", appointmentHandler.List)
	appointments.POST("", appointmentHandler.Book, clientOnly)
	appointments.PATCH("/:id", appointmentHandler.Update)

	// --- Cases and their nested resources ---
	cases := e.Group("/v1/cases", authRequired)
	cases.GET("", caseHandler.List)
	cases.POST("", caseHandler.Open, lawyerOnly)
	cases.GET("/:id", caseHandler.Get)
	cases.PATCH("/:id", caseHandler.Update)
	cases.GET("/:id/messages", messageHandler.List)
	cases.POST("/:id/messages", messageHandler.Send)
	cases.POST("/:id/messages/read", messageHandler.MarkRead)
	cases.GET("/:id/documents", documentHandler.List)
	cases.POST("/:id/documents", documentHandler.Upload)

	// --- Tasks ---
	tasks := e.Group("/v1/tasks", authRequired)
	tasks.GET("", taskHandler.List)
	tasks.POST("", taskHandler.Create)
	tasks.PATCH("/:id", taskHandler.Update)

	// --- Notifications ---
	notifications := e.Group("/v1/notifications", authRequired)
	notifications.GET("", notificationHandler.List)
	notifications.POST("/:id/read", notificationHandler.MarkRead)

	// --- Public directory ---
	directory := e.Group("/v1/directory")
	directory.GET("/lawyers", directoryHandler.Lawyers)
	directory.GET("/testimonials", directoryHandler.Testimonials)
	directory.GET("/faqs", directoryHandler.FAQs)
	directory.GET("/services", directoryHandler.Services)
	directory.GET("/specialties", directoryHandler.Specialties)
	directory.GET("/cities", directoryHandler.Cities)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
