package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cyberlawyerhub/backend/internal/interface/http/response"
	"github.com/cyberlawyerhub/backend/internal/logger"
	"github.com/cyberlawyerhub/backend/internal/pkg/apperror"
)

// ErrorHandler обрабатывает ошибки, добавленные через c.Error, централизованно.
// Сообщения AppError уходят клиенту как есть, остальные маскируются.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		entry := logger.Log.WithFields(logrus.Fields{
			"error":  err.Error(),
			"kind":   apperror.KindOf(err),
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})

		// 4xx пишем как Warn, остальное как Error.
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.HTTPStatus < http.StatusInternalServerError {
			entry.Warn("Request rejected")
		} else {
			entry.Error("Request error")
		}

		response.Error(c, err)
	}
}
