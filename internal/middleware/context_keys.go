package middleware

import (
	"context"

	"github.com/SscSPs/campus_connect/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// userCtxKey is the key used to store the authenticated identity in the request context.
const userCtxKey = contextKey("user")

// WithUser returns a copy of ctx carrying the authenticated identity.
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userCtxKey, user)
}

// GetUserFromCtx returns the identity attached by AuthMiddleware.
func GetUserFromCtx(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userCtxKey).(*domain.User)
	return user, ok && user != nil
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin request context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	user, ok := GetUserFromCtx(c.Request.Context())
	if !ok {
		return "", false
	}
	return user.UserID, true
}
