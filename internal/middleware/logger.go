package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger journalise chaque requête avec sa durée et son correlation id
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("correlation_id", GetCorrelationID(c.Request.Context())),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case status >= http.StatusInternalServerError:
			log.Error("❌ Requête", fields...)
		case status >= http.StatusBadRequest:
			log.Warn("⚠️ Requête", fields...)
		default:
			log.Info("Requête", fields...)
		}
	}
}

// Recovery transforme une panique en 500 JSON
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, rec any) {
		cid := GetCorrelationID(c.Request.Context())
		log.Error("❌ Panique dans un handler",
			zap.Any("panic", rec),
			zap.String("path", c.Request.URL.Path),
			zap.String("correlation_id", cid),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":          "Erreur interne",
			"correlation_id": cid,
		})
	})
}
