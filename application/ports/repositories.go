// Package ports defines the repository contracts the HTTP layer depends on.
// The DynamoDB implementations live in infrastructure/persistence/dynamodb;
// tests substitute mocks.
package ports

import (
	"context"

	"fitit-backend/domain/entities"
)

// ProductRepository provides access to the tools store catalog.
type ProductRepository interface {
	FindByID(ctx context.Context, id string) (*entities.Product, error)
	GetByID(ctx context.Context, id string) (*entities.Product, error)
	List(ctx context.Context, limit int32) ([]entities.Product, error)
	Create(ctx context.Context, product entities.Product) (*entities.Product, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*entities.Product, error)
	Delete(ctx context.Context, id string) error
	FindByCategory(ctx context.Context, category string) ([]entities.Product, error)
}

// ServiceProfileRepository provides access to professional listings.
type ServiceProfileRepository interface {
	FindByID(ctx context.Context, id string) (*entities.ServiceProfile, error)
	GetByID(ctx context.Context, id string) (*entities.ServiceProfile, error)
	List(ctx context.Context, limit int32) ([]entities.ServiceProfile, error)
	Create(ctx context.Context, profile entities.ServiceProfile) (*entities.ServiceProfile, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*entities.ServiceProfile, error)
	Delete(ctx context.Context, id string) error
	FindByProfession(ctx context.Context, profession string) ([]entities.ServiceProfile, error)
	FindAvailable(ctx context.Context) ([]entities.ServiceProfile, error)
}

// ServiceRequestRepository provides access to customer job postings.
type ServiceRequestRepository interface {
	FindByID(ctx context.Context, id string) (*entities.ServiceRequest, error)
	GetByID(ctx context.Context, id string) (*entities.ServiceRequest, error)
	List(ctx context.Context, limit int32) ([]entities.ServiceRequest, error)
	Create(ctx context.Context, request entities.ServiceRequest) (*entities.ServiceRequest, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*entities.ServiceRequest, error)
	Delete(ctx context.Context, id string) error
	FindByCustomer(ctx context.Context, customerID string) ([]entities.ServiceRequest, error)
	FindByProfessional(ctx context.Context, professionalID string) ([]entities.ServiceRequest, error)
	FindByStatus(ctx context.Context, status entities.RequestStatus) ([]entities.ServiceRequest, error)
	UpdateStatus(ctx context.Context, id string, next entities.RequestStatus) (*entities.ServiceRequest, error)
}

// ChatRepository provides access to chat messages.
type ChatRepository interface {
	FindByID(ctx context.Context, id string) (*entities.ChatMessage, error)
	GetByID(ctx context.Context, id string) (*entities.ChatMessage, error)
	Create(ctx context.Context, message entities.ChatMessage) (*entities.ChatMessage, error)
	Delete(ctx context.Context, id string) error
	FindBySession(ctx context.Context, sessionID string) ([]entities.ChatMessage, error)
}

// UserRepository provides access to marketplace accounts.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*entities.User, error)
	GetByID(ctx context.Context, id string) (*entities.User, error)
	List(ctx context.Context, limit int32) ([]entities.User, error)
	Create(ctx context.Context, user entities.User) (*entities.User, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*entities.User, error)
	Delete(ctx context.Context, id string) error
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
}
