package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cyberlawyerhub/backend/internal/interface/http/response"
	"github.com/cyberlawyerhub/backend/internal/pkg/apperror"
	"github.com/cyberlawyerhub/backend/internal/pkg/identity"
)

// Context ключи для gin.Context.
const (
	ContextUserIDKey = "userID"
	ContextRoleKey   = "role"
)

// TokenVerifier проверяет bearer токен и возвращает пользователя.
type TokenVerifier interface {
	Verify(token string) (identity.Identity, error)
}

// AuthMiddleware требует валидный JWT access токен.
func AuthMiddleware(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c)
		if !ok {
			response.Error(c, apperror.New(apperror.ErrCodeUnauthorized, "требуется авторизация"))
			c.Abort()
			return
		}

		id, err := tokens.Verify(raw)
		if err != nil {
			response.Error(c, apperror.New(apperror.ErrCodeUnauthorized, "токен невалиден"))
			c.Abort()
			return
		}

		attach(c, id)
		c.Next()
	}
}

// OptionalAuthMiddleware кладёт пользователя в контекст, если токен валиден,
// и пропускает запрос дальше в любом случае.
func OptionalAuthMiddleware(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw, ok := bearerToken(c); ok {
			if id, err := tokens.Verify(raw); err == nil {
				attach(c, id)
			}
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	auth := c.GetHeader("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return "", false
	}
	raw := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	return raw, raw != ""
}

func attach(c *gin.Context, id identity.Identity) {
	c.Request = c.Request.WithContext(identity.WithIdentity(c.Request.Context(), id))
	c.Set(ContextUserIDKey, id.UserID)
	c.Set(ContextRoleKey, id.Role)
}
