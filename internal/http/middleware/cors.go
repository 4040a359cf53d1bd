package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OriginPolicy решает, можно ли отвечать указанному origin.
type OriginPolicy interface {
	IsAllowedOrigin(origin string) bool
}

// CORSMiddleware обрабатывает CORS заголовки и preflight запросы.
// Access-Control-Allow-Origin выставляется только для разрешённых origins.
func CORSMiddleware(policy OriginPolicy) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		if origin != "" && policy.IsAllowedOrigin(origin) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Add("Vary", "Origin")
		}

		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, apikey, x-client-info")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, DELETE")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Disposition")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
