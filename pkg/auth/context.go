package auth

import (
	"context"

	apperrors "fitit-backend/pkg/errors"
)

// Claims carries the authenticated user's identity through the request
// context.
type Claims struct {
	UserID string
	Email  string
	Role   string
}

type contextKey string

const userContextKey contextKey = "auth.user"

// WithUser returns a context carrying the user's claims.
func WithUser(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, userContextKey, claims)
}

// GetUserFromContext extracts the authenticated user's claims.
func GetUserFromContext(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(userContextKey).(*Claims)
	if !ok || claims == nil {
		return nil, apperrors.NewUnauthorizedError("no authenticated user in context")
	}
	return claims, nil
}
