package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/campus_connect/internal/core/domain"
	"github.com/SscSPs/campus_connect/internal/dto"
	"github.com/gin-gonic/gin"
)

// IdentityVerifier resolves a bearer token to a user. The auth service implements it.
type IdentityVerifier interface {
	VerifyIdentity(ctx context.Context, token string) (*domain.User, error)
}

// AuthMiddleware creates a Gin middleware handler that resolves the bearer token
// to an identity and attaches it to the request context. Any failure is a 401.
func AuthMiddleware(verifier IdentityVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		tokenString, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			logger.Warn("Authorization header missing or malformed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail("Not authorized, no token provided"))
			return
		}

		user, err := verifier.VerifyIdentity(c.Request.Context(), tokenString)
		if err != nil {
			logger.Warn("Token verification failed", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail("Not authorized, token failed"))
			return
		}

		enrichedLogger := logger.With(slog.String("user_id", user.UserID))
		ctx := WithUser(c.Request.Context(), user)
		ctx = WithLogger(ctx, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}
