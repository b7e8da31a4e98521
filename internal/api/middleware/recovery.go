package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yoockh/folio/internal/utils"
)

// Recovery turns a handler panic into a 500 JSON reply and an error log line.
func Recovery(l *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				l.WithFields(logrus.Fields{
					RequestIDKey: RequestID(c),
					"panic":      r,
					"path":       c.Request.URL.Path,
				}).Error("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"code":    utils.CodeInternal,
					"message": "internal error",
				})
			}
		}()
		c.Next()
	}
}
