package handlers

import (
	"errors"
	"net/http"

	"silva_storefront/internal/cart"
	"silva_storefront/internal/catalog"
	"silva_storefront/internal/middleware"

	"github.com/gin-gonic/gin"
)

// 🟢 GET /buyer/cart
func (h *Handler) GetCart(c *gin.Context) {
	s := middleware.CurrentSession(c)
	c.JSON(http.StatusOK, s.CartSnapshot())
}

// 🟢 POST /buyer/cart/items
// Le produit est relu dans le catalogue : le prix vient du backend, jamais du client.
func (h *Handler) AddToCart(c *gin.Context) {
	s := middleware.CurrentSession(c)

	var input struct {
		ProductID int64 `json:"product_id" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	product, err := h.catalog.Product(c.Request.Context(), input.ProductID)
	if errors.Is(err, catalog.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}
	if err != nil {
		h.respondError(c, err, "Erreur lors du chargement du produit")
		return
	}
	if !product.InStock() {
		c.JSON(http.StatusConflict, gin.H{"error": "Produit en rupture de stock"})
		return
	}

	_ = s.WithCart(func(ct *cart.Cart) error {
		ct.Add(product)
		return nil
	})
	c.JSON(http.StatusOK, s.CartSnapshot())
}

// 🟢 PATCH /buyer/cart/items/:productId  {delta}
// La quantité reste entre 1 et cart.MaxQuantity ; pour retirer une ligne, utiliser DELETE.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	s := middleware.CurrentSession(c)
	productID, ok := idParam(c, "productId")
	if !ok {
		return
	}

	var input struct {
		Delta *int `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "delta requis"})
		return
	}
	if d := *input.Delta; d > cart.MaxQuantity || d < -cart.MaxQuantity {
		c.JSON(http.StatusBadRequest, gin.H{"error": "delta hors limites", "field": "delta"})
		return
	}

	var found bool
	_ = s.WithCart(func(ct *cart.Cart) error {
		found = ct.UpdateQuantity(productID, *input.Delta)
		return nil
	})
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article absent du panier"})
		return
	}
	c.JSON(http.StatusOK, s.CartSnapshot())
}

// 🟢 DELETE /buyer/cart/items/:productId
func (h *Handler) RemoveFromCart(c *gin.Context) {
	s := middleware.CurrentSession(c)
	productID, ok := idParam(c, "productId")
	if !ok {
		return
	}

	_ = s.WithCart(func(ct *cart.Cart) error {
		ct.Remove(productID)
		return nil
	})
	c.JSON(http.StatusOK, s.CartSnapshot())
}

// 🟢 DELETE /buyer/cart
func (h *Handler) ClearCart(c *gin.Context) {
	s := middleware.CurrentSession(c)
	_ = s.WithCart(func(ct *cart.Cart) error {
		ct.Clear()
		return nil
	})
	c.JSON(http.StatusOK, s.CartSnapshot())
}
