package http

import (
	"context"
	"errors"

	"renthub-backend/internal/domain"
)

type contextKey string

const userContextKey contextKey = "authenticated-user"

// GetUserFromContext extracts the authenticated user placed on the request
// context by the auth middleware.
func GetUserFromContext(ctx context.Context) (*domain.User, error) {
	user, ok := ctx.Value(userContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, errors.New("no authenticated user in context")
	}
	return user, nil
}

func withUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}
