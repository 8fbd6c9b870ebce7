package handlers

import (
	"net/http"

	"silva_storefront/internal/middleware"
	"silva_storefront/internal/models"

	"github.com/gin-gonic/gin"
)

// GET /admin/analytics
func (h *Handler) Analytics(c *gin.Context) {
	s := middleware.CurrentSession(c)

	stats, err := h.api.Analytics(c.Request.Context(), s.Token())
	if err != nil {
		h.respondError(c, err, "Erreur lors du chargement des statistiques")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"analytics": stats,
		"buyers":    stats.CountForRole("buyer"),
		"sellers":   stats.CountForRole("seller"),
	})
}

// ================== PRODUITS ==================

func (h *Handler) CreateProduct(c *gin.Context) {
	s := middleware.CurrentSession(c)

	input, ok := bindProduct(c)
	if !ok {
		return
	}
	if err := h.catalog.CreateProduct(c.Request.Context(), s.Token(), input); err != nil {
		h.respondError(c, err, "Erreur lors de la création du produit")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Produit créé"})
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	s := middleware.CurrentSession(c)
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	input, ok := bindProduct(c)
	if !ok {
		return
	}
	if err := h.catalog.UpdateProduct(c.Request.Context(), s.Token(), id, input); err != nil {
		h.respondError(c, err, "Erreur lors de la mise à jour du produit")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Produit mis à jour"})
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	s := middleware.CurrentSession(c)
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.catalog.DeleteProduct(c.Request.Context(), s.Token(), id); err != nil {
		h.respondError(c, err, "Erreur lors de la suppression du produit")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Produit supprimé"})
}

func bindProduct(c *gin.Context) (models.ProductInput, bool) {
	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données produit invalides"})
		return input, false
	}
	if input.Price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le prix doit être positif", "field": "price"})
		return input, false
	}
	return input, true
}

// ================== CATÉGORIES ==================

func (h *Handler) CreateCategory(c *gin.Context) {
	s := middleware.CurrentSession(c)

	var input models.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nom de catégorie requis"})
		return
	}
	if err := h.catalog.CreateCategory(c.Request.Context(), s.Token(), input); err != nil {
		h.respondError(c, err, "Erreur lors de la création de la catégorie")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Catégorie créée"})
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	s := middleware.CurrentSession(c)
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var input models.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nom de catégorie requis"})
		return
	}
	if err := h.catalog.UpdateCategory(c.Request.Context(), s.Token(), id, input); err != nil {
		h.respondError(c, err, "Erreur lors de la mise à jour de la catégorie")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Catégorie mise à jour"})
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	s := middleware.CurrentSession(c)
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.catalog.DeleteCategory(c.Request.Context(), s.Token(), id); err != nil {
		h.respondError(c, err, "Erreur lors de la suppression de la catégorie")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Catégorie supprimée"})
}

// ================== VENDEURS ==================

func (h *Handler) ListSellers(c *gin.Context) {
	s := middleware.CurrentSession(c)

	sellers, err := h.api.ListSellers(c.Request.Context(), s.Token())
	if err != nil {
		h.respondError(c, err, "Erreur lors du chargement des vendeurs")
		return
	}
	if sellers == nil {
		sellers = []models.Seller{}
	}
	c.JSON(http.StatusOK, gin.H{"sellers": sellers})
}

func (h *Handler) CreateSeller(c *gin.Context) {
	s := middleware.CurrentSession(c)

	var input models.SellerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email et mot de passe requis"})
		return
	}
	if err := h.api.CreateSeller(c.Request.Context(), s.Token(), input); err != nil {
		h.respondError(c, err, "Erreur lors de la création du vendeur")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Vendeur créé"})
}
