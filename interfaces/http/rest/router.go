package rest

import (
	"net/http"

	"fitit-backend/application/ports"
	"fitit-backend/interfaces/http/rest/handlers"
	"fitit-backend/interfaces/http/rest/middleware"
	"fitit-backend/pkg/auth"
	apperrors "fitit-backend/pkg/errors"
	"fitit-backend/pkg/observability"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Repositories bundles the per-entity repositories the API serves.
type Repositories struct {
	Products        ports.ProductRepository
	ServiceProfiles ports.ServiceProfileRepository
	ServiceRequests ports.ServiceRequestRepository
	Chat            ports.ChatRepository
	Users           ports.UserRepository
}

// Router creates and configures the HTTP router.
type Router struct {
	repos      Repositories
	validator  *auth.JWTValidator
	limiter    auth.RateLimiter
	tracer     *observability.Tracer
	logger     *zap.Logger
	enableCORS bool
}

// NewRouter creates a new router instance.
func NewRouter(repos Repositories, validator *auth.JWTValidator, limiter auth.RateLimiter, tracer *observability.Tracer, logger *zap.Logger, enableCORS bool) *Router {
	return &Router{
		repos:      repos,
		validator:  validator,
		limiter:    limiter,
		tracer:     tracer,
		logger:     logger,
		enableCORS: enableCORS,
	}
}

// Setup configures all routes and middleware.
func (rt *Router) Setup() *chi.Mux {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))
	router.Use(middleware.Trace(rt.tracer))

	if rt.enableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000", "https://*.fitit.app"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	errorHandler := apperrors.NewErrorHandler(rt.logger, false)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Authenticate(rt.validator, rt.limiter))

		r.Route("/products", func(r chi.Router) {
			h := handlers.NewProductHandler(rt.repos.Products, errorHandler, rt.logger)
			r.Post("/", h.Create)
			r.Get("/", h.List)
			r.Get("/{productID}", h.Get)
			r.Put("/{productID}", h.Update)
			r.Delete("/{productID}", h.Delete)
		})

		r.Route("/professionals", func(r chi.Router) {
			h := handlers.NewServiceProfileHandler(rt.repos.ServiceProfiles, errorHandler, rt.logger)
			r.Post("/", h.Create)
			r.Get("/", h.List)
			r.Get("/{profileID}", h.Get)
			r.Put("/{profileID}", h.Update)
			r.Delete("/{profileID}", h.Delete)
		})

		r.Route("/requests", func(r chi.Router) {
			h := handlers.NewServiceRequestHandler(rt.repos.ServiceRequests, errorHandler, rt.logger)
			r.Post("/", h.Create)
			r.Get("/", h.List)
			r.Get("/{requestID}", h.Get)
			r.Put("/{requestID}", h.Update)
			r.Put("/{requestID}/status", h.UpdateStatus)
			r.Delete("/{requestID}", h.Delete)
		})

		r.Route("/chat/{sessionID}/messages", func(r chi.Router) {
			h := handlers.NewChatHandler(rt.repos.Chat, errorHandler, rt.logger)
			r.Post("/", h.PostMessage)
			r.Get("/", h.ListMessages)
			r.Delete("/{messageID}", h.DeleteMessage)
		})

		r.Route("/users", func(r chi.Router) {
			h := handlers.NewUserHandler(rt.repos.Users, errorHandler, rt.logger)
			r.Post("/", h.Register)
			r.Get("/me", h.Me)
			r.Get("/{userID}", h.Get)
			r.Put("/{userID}", h.Update)
			r.Delete("/{userID}", h.Delete)
		})
	})

	return router
}

// healthCheck handles health check requests.
func (rt *Router) healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests.
func (rt *Router) readinessCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
