package handlers

import (
	"errors"
	"net/http"

	"silva_storefront/internal/api"
	"silva_storefront/internal/auth"
	"silva_storefront/internal/middleware"
	"silva_storefront/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// POST /auth/login
func (h *Handler) Login(c *gin.Context) {
	var input models.Credentials
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email et mot de passe requis"})
		return
	}

	resp, err := h.api.Login(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err, "Échec de la connexion")
		return
	}

	h.openSession(c, resp, http.StatusOK)
}

// POST /auth/register
func (h *Handler) Register(c *gin.Context) {
	var input models.Registration
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email et mot de passe requis"})
		return
	}

	resp, err := h.api.Register(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err, "Échec de l'inscription")
		return
	}

	h.openSession(c, resp, http.StatusCreated)
}

// openSession remplace toute session existante par une nouvelle, panier vide
func (h *Handler) openSession(c *gin.Context, resp models.AuthResponse, status int) {
	info, err := auth.InspectToken(resp.Token, h.jwtSecret)
	switch {
	case errors.Is(err, auth.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token expiré"})
		return
	case err != nil && len(h.jwtSecret) > 0:
		h.log.Warn("❌ Token backend rejeté", zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token invalide"})
		return
	case err != nil:
		h.log.Warn("⚠️ Token backend illisible, expiration inconnue", zap.Error(err))
		info = auth.TokenInfo{}
	}

	if old := middleware.CurrentSession(c); old != nil {
		h.sessions.Destroy(old.ID)
	}

	s, err := h.sessions.Create(resp.Token, resp.User, info)
	if err != nil {
		h.log.Warn("⚠️ Rôle utilisateur inconnu", zap.String("role", resp.User.Role))
		c.JSON(http.StatusForbidden, gin.H{"error": "Rôle utilisateur inconnu"})
		return
	}
	if err := middleware.StartSession(c, h.cookies, s); err != nil {
		h.sessions.Destroy(s.ID)
		h.respondError(c, err, "Impossible d'ouvrir la session")
		return
	}

	c.JSON(status, gin.H{
		"user":     resp.User,
		"role":     s.Role().String(),
		"redirect": s.Role().HomePath(),
	})
}

// POST /auth/logout ; sans session, la réponse est la même
func (h *Handler) Logout(c *gin.Context) {
	h.dropSession(c)
	c.JSON(http.StatusOK, gin.H{"message": "Déconnecté"})
}

// GET /auth/me rafraîchit l'utilisateur auprès du backend.
// Un token refusé ici ferme la session.
func (h *Handler) Me(c *gin.Context) {
	s := middleware.CurrentSession(c)

	user, err := h.api.Me(c.Request.Context(), s.Token())
	if api.IsUnauthorized(err) {
		h.log.Info("👋 Token refusé par le backend, session fermée", zap.String("session_id", s.ID))
		h.dropSession(c)
	}
	if err != nil {
		h.respondError(c, err, "Impossible de récupérer l'utilisateur")
		return
	}
	if err := s.SetUser(user); err != nil {
		h.dropSession(c)
		c.JSON(http.StatusForbidden, gin.H{"error": "Rôle utilisateur inconnu"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "role": s.Role().String()})
}

// GET / renvoie le tableau de bord correspondant au rôle
func (h *Handler) Home(c *gin.Context) {
	s := middleware.CurrentSession(c)
	if s == nil {
		c.JSON(http.StatusOK, gin.H{"redirect": "/login"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"redirect": s.Role().HomePath()})
}
