package middleware

import (
	"net/http"

	"silva_storefront/internal/auth"

	"github.com/gin-gonic/gin"
)

// RequireRole vérifie que la session a le rôle demandé ; l'admin passe partout
func RequireRole(required auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := CurrentSession(c)
		if s == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Non authentifié"})
			c.Abort()
			return
		}
		if !s.Role().Allows(required) {
			c.JSON(http.StatusForbidden, gin.H{
				"error":    "Accès refusé",
				"redirect": s.Role().HomePath(),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
