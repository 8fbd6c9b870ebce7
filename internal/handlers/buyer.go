package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GET /buyer/products?category=<id>
func (h *Handler) ListProducts(c *gin.Context) {
	var categoryID int64
	if raw := c.Query("category"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Catégorie invalide"})
			return
		}
		categoryID = id
	}

	products, err := h.catalog.Products(c.Request.Context(), categoryID)
	if err != nil {
		h.respondError(c, err, "Erreur lors du chargement des produits")
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GET /buyer/categories
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.catalog.Categories(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "Erreur lors du chargement des catégories")
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
