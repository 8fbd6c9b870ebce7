package handlers

import (
	"net/http"

	"silva_storefront/internal/cart"
	"silva_storefront/internal/middleware"
	"silva_storefront/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type checkoutInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

// 🟢 POST /buyer/checkout
// Une seule soumission en vol par session. En cas d'échec le panier est conservé ;
// en cas de succès seules les lignes soumises sont retirées.
func (h *Handler) Checkout(c *gin.Context) {
	s := middleware.CurrentSession(c)

	var input checkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if !s.BeginCheckout() {
		c.JSON(http.StatusConflict, gin.H{"error": "Une commande est déjà en cours de traitement"})
		return
	}
	defer s.EndCheckout()

	var (
		req   models.OrderRequest
		total decimal.Decimal
	)
	err := s.ReadCart(func(ct *cart.Cart) error {
		r, err := ct.ToOrderRequest(cart.Contact{
			Name:  input.Name,
			Email: input.Email,
			Phone: input.Phone,
			Notes: input.Notes,
		})
		if err != nil {
			return err
		}
		req, total = r, ct.Total()
		return nil
	})
	if err != nil {
		h.respondError(c, err, "Commande invalide")
		return
	}

	order, err := h.api.CreateOrder(c.Request.Context(), s.Token(), req)
	if err != nil {
		h.log.Warn("❌ Échec création commande",
			zap.String("session_id", s.ID),
			zap.String("correlation_id", middleware.GetCorrelationID(c.Request.Context())),
			zap.Error(err))
		h.respondError(c, err, "Erreur lors de la création de la commande")
		return
	}

	_ = s.WithCart(func(ct *cart.Cart) error {
		ct.Settle(req.Items)
		return nil
	})
	// le stock a changé côté backend
	h.catalog.InvalidateProducts(c.Request.Context())

	h.log.Info("✅ Commande créée",
		zap.String("session_id", s.ID),
		zap.Int("items", len(req.Items)),
		zap.String("total", total.StringFixed(2)))

	resp := gin.H{
		"message": "Commande passée avec succès",
		"total":   total,
	}
	if len(order) > 0 {
		resp["order"] = order
	}
	c.JSON(http.StatusCreated, resp)
}
