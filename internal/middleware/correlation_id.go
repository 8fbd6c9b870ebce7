package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const HeaderCorrelationID = "X-Correlation-Id"

type ctxKey string

const ctxCorrelationID ctxKey = "correlation_id"

// CorrelationID reprend l'en-tête entrant ou en génère un, le renvoie au client
// et le place dans le contexte de la requête pour les appels vers le backend.
func CorrelationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		cid := strings.TrimSpace(c.GetHeader(HeaderCorrelationID))
		if cid == "" {
			cid = uuid.NewString()
		}

		c.Header(HeaderCorrelationID, cid)
		c.Request = c.Request.WithContext(WithCorrelationID(c.Request.Context(), cid))
		c.Next()
	}
}

func WithCorrelationID(ctx context.Context, cid string) context.Context {
	return context.WithValue(ctx, ctxCorrelationID, cid)
}

func GetCorrelationID(ctx context.Context) string {
	if v := ctx.Value(ctxCorrelationID); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
