package middleware

import (
	"net/http"
	"strconv"
	"time"

	"silva_storefront/internal/cache"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CartMaxAdds = 20
	CartWindow  = 1 * time.Minute
)

// CartRateLimit limite les ajouts au panier par session (anti-spam).
// Si le store est indisponible, la requête passe.
func CartRateLimit(store cache.Store, max int, window time.Duration, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := CurrentSession(c)
		if s == nil || max <= 0 {
			c.Next()
			return
		}

		key := "cart_add:" + s.ID
		requests, err := store.Incr(c.Request.Context(), key, window)
		if err != nil {
			log.Warn("⚠️ Compteur rate limit indisponible", zap.Error(err))
			c.Next()
			return
		}

		if requests > int64(max) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Trop d'ajouts au panier. Ralentissez un peu",
				"retry_after": int(window.Seconds()),
			})
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.FormatInt(int64(max)-requests, 10))
		c.Next()
	}
}
