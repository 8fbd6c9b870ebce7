package models

import "github.com/shopspring/decimal"

// Product tel que renvoyé par l'API catalogue (lecture seule côté panier)
type Product struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	CategoryID   int64           `json:"category_id"`
	CategoryName string          `json:"category_name,omitempty"`
	ImageURL     string          `json:"image_url,omitempty"`
}

// InStock indique si le produit peut être ajouté au panier
func (p Product) InStock() bool {
	return p.Stock > 0
}

// ProductInput est le corps envoyé pour créer ou modifier un produit
type ProductInput struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock" binding:"min=0"`
	CategoryID  int64           `json:"category_id" binding:"required"`
	ImageURL    string          `json:"image_url"`
}
