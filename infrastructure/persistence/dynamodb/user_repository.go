package dynamodb

import (
	"context"

	"fitit-backend/domain/entities"

	"go.uber.org/zap"
)

// emailIndex is the GSI keyed on the user's email.
const emailIndex = "email-index"

// UserRepository stores marketplace accounts.
type UserRepository struct {
	*Repository[entities.User]
}

// NewUserRepository creates a user repository.
func NewUserRepository(client DynamoDBAPI, tableName string, logger *zap.Logger) *UserRepository {
	return &UserRepository{
		Repository: NewRepository[entities.User](client, Config{
			TableName:  tableName,
			EntityName: "user",
		}, logger),
	}
}

// FindByEmail returns the user with the given email, or nil when no account
// matches.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	users, err := r.queryByIndex(ctx, emailIndex, "email", email)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}
