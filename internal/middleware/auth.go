package middleware

import (
	"strings"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/pkg/apperrors"
	"jobboard_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// TokenValidator turns a bearer token into the identity it asserts.
type TokenValidator interface {
	ValidateToken(token string) (*auth.Identity, error)
}

// AuthMiddleware requires a valid bearer token.
func AuthMiddleware(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := bearerToken(c)
		if !ok {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			return
		}
		if !authenticate(c, tokens, tokenStr) {
			return
		}
		c.Next()
	}
}

// OptionalAuthMiddleware lets anonymous requests through. A token that is
// present but invalid is still rejected.
func OptionalAuthMiddleware(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}
		tokenStr, ok := bearerToken(c)
		if !ok {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			return
		}
		if !authenticate(c, tokens, tokenStr) {
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	return token, token != ""
}

func authenticate(c *gin.Context, tokens TokenValidator, tokenStr string) bool {
	identity, err := tokens.ValidateToken(tokenStr)
	if err != nil {
		logger.CtxDebug(c.Request.Context(), "token rejected", "error", err)
		apperrors.HandleError(c, apperrors.ErrInvalidToken())
		return false
	}
	c.Set(string(contextkeys.IdentityContextKey), identity)
	c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), identity.UserID))
	return true
}

// RequireRoles пропускает только субъектов с одной из ролей. Ставится после AuthMiddleware.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
			return
		}
		if !identity.HasRole(roles...) {
			apperrors.HandleError(c, apperrors.NewForbiddenError("Access denied: insufficient role"))
			return
		}
		c.Next()
	}
}

// GetIdentity returns the identity set by the auth middlewares.
func GetIdentity(c *gin.Context) (*auth.Identity, bool) {
	v, exists := c.Get(string(contextkeys.IdentityContextKey))
	if !exists {
		return nil, false
	}
	identity, ok := v.(*auth.Identity)
	return identity, ok && identity != nil
}
