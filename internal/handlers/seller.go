package handlers

import (
	"net/http"

	"silva_storefront/internal/middleware"
	"silva_storefront/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GET /seller/orders : commandes assignées, compteurs par statut et gains
func (h *Handler) SellerOrders(c *gin.Context) {
	s := middleware.CurrentSession(c)

	orders, err := h.api.ListOrders(c.Request.Context(), s.Token())
	if err != nil {
		h.respondError(c, err, "Erreur lors du chargement des commandes")
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}

	c.JSON(http.StatusOK, gin.H{
		"orders":   models.ViewOrders(orders),
		"stats":    models.CountByStatus(orders),
		"earnings": s.User().EarningsOrZero().StringFixed(2),
	})
}

// GET /admin/orders
func (h *Handler) AdminOrders(c *gin.Context) {
	s := middleware.CurrentSession(c)

	orders, err := h.api.ListOrders(c.Request.Context(), s.Token())
	if err != nil {
		h.respondError(c, err, "Erreur lors du chargement des commandes")
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(http.StatusOK, gin.H{"orders": models.ViewOrders(orders), "stats": models.CountByStatus(orders)})
}

// PUT /seller/orders/:id/status et /admin/orders/:id/status
// Le statut est transmis tel quel ; en cas de succès la liste est rechargée.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	s := middleware.CurrentSession(c)
	orderID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Statut requis"})
		return
	}

	ctx := c.Request.Context()
	status := models.OrderStatus(input.Status)
	if err := h.api.UpdateOrderStatus(ctx, s.Token(), orderID, status); err != nil {
		h.respondError(c, err, "Erreur lors de la mise à jour du statut")
		return
	}

	h.log.Info("✅ Statut commande mis à jour",
		zap.Int64("order_id", orderID),
		zap.String("status", input.Status),
		zap.String("by", s.Role().String()))

	orders, err := h.api.ListOrders(ctx, s.Token())
	if err != nil {
		h.respondError(c, err, "Statut mis à jour, mais la liste des commandes n'a pas pu être rechargée")
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(http.StatusOK, gin.H{"orders": models.ViewOrders(orders), "stats": models.CountByStatus(orders)})
}
