package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"silva_storefront/internal/api"
	"silva_storefront/internal/cart"
	"silva_storefront/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError traduit une erreur en réponse JSON.
// ValidationError -> 400, RemoteError -> statut du backend (502 si injoignable), sinon 500.
// La session et le panier ne sont jamais touchés ici.
func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	var verr *cart.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "field": verr.Field})
		return
	}

	var rerr *api.RemoteError
	if errors.As(err, &rerr) {
		if rerr.IsTransport() {
			c.JSON(http.StatusBadGateway, gin.H{"error": fallback})
			return
		}

		status := rerr.StatusCode
		if status < http.StatusBadRequest {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{"error": rerr.MessageOr(fallback)})
		return
	}

	h.log.Error("❌ Erreur inattendue",
		zap.String("path", c.Request.URL.Path),
		zap.String("correlation_id", middleware.GetCorrelationID(c.Request.Context())),
		zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}

// dropSession détruit la session et expire le cookie
func (h *Handler) dropSession(c *gin.Context) {
	if s := middleware.CurrentSession(c); s != nil {
		h.sessions.Destroy(s.ID)
	}
	if err := middleware.EndSession(c, h.cookies); err != nil {
		h.log.Warn("⚠️ Impossible d'expirer le cookie de session", zap.Error(err))
	}
}

// idParam lit un identifiant numérique dans le chemin ; répond 400 sinon
func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identifiant invalide"})
		return 0, false
	}
	return id, true
}
