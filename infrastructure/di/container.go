package di

import (
	"fitit-backend/application/ports"
	"fitit-backend/infrastructure/config"
	"fitit-backend/pkg/auth"
	"fitit-backend/pkg/observability"

	"go.uber.org/zap"
)

// Container holds all application dependencies.
type Container struct {
	Config          *config.Config
	Logger          *zap.Logger
	Products        ports.ProductRepository
	ServiceProfiles ports.ServiceProfileRepository
	ServiceRequests ports.ServiceRequestRepository
	Chat            ports.ChatRepository
	Users           ports.UserRepository
	JWTValidator    *auth.JWTValidator
	RateLimiter     auth.RateLimiter
	Tracer          *observability.Tracer
}
