package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cyberlawyerhub/backend/internal/pkg/apperror"
	"github.com/cyberlawyerhub/backend/internal/pkg/identity"
)

// OriginPolicy решает, можно ли строить redirect URL от origin запроса.
type OriginPolicy interface {
	IsAllowedOrigin(origin string) bool
}

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, apperror.New(apperror.ErrCodeBadRequest, "параметр "+name+" должен быть валидным UUID")
	}
	return id, nil
}

func parseInt64Query(c *gin.Context, key string) (*int64, error) {
	valueStr := strings.TrimSpace(c.Query(key))
	if valueStr == "" {
		return nil, nil
	}

	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return nil, apperror.New(apperror.ErrCodeBadRequest, "параметр "+key+" должен быть целым числом")
	}

	return &value, nil
}

func parseFloatQuery(c *gin.Context, key string) (*float64, error) {
	valueStr := strings.TrimSpace(c.Query(key))
	if valueStr == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return nil, apperror.New(apperror.ErrCodeBadRequest, "параметр "+key+" должен быть числом")
	}

	return &value, nil
}

// userIDForLog возвращает id пользователя запроса или пустую строку.
func userIDForLog(c *gin.Context) string {
	if id, ok := identity.FromContext(c.Request.Context()); ok {
		return id.UserID.String()
	}
	return ""
}
