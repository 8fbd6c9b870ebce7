package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuditAdminWrites journalise les écritures admin réussies (produits, catégories, vendeurs, statuts).
// Les changements de prix sont relevés à part.
func AuditAdminWrites(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			c.Next()
			return
		}

		var newPrice any
		if c.Request.Body != nil {
			bodyBytes, err := io.ReadAll(c.Request.Body)
			if err == nil {
				c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

				var payload map[string]any
				if json.Unmarshal(bodyBytes, &payload) == nil {
					newPrice = payload["price"]
				}
			}
		}

		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			return
		}

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.String("correlation_id", GetCorrelationID(c.Request.Context())),
		}
		if s := CurrentSession(c); s != nil {
			fields = append(fields, zap.String("admin", s.User().Email))
		}
		if newPrice != nil {
			fields = append(fields, zap.Any("new_price", newPrice))
			log.Info("💰 Audit changement de prix", fields...)
			return
		}
		log.Info("📝 Audit admin", fields...)
	}
}
