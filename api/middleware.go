package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// requestLogger logs the method and URL of every request before it is handled.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger.Info("incoming request",
			zap.String("method", c.Request.Method),
			zap.String("url", c.Request.URL.String()),
		)
		c.Next()
	}
}
