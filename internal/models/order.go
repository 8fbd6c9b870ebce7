package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID           int64           `json:"id"`
	Status       OrderStatus     `json:"status"`
	Items        []OrderItem     `json:"items"`
	ContactName  string          `json:"contact_name"`
	ContactEmail string          `json:"contact_email"`
	ContactPhone string          `json:"contact_phone,omitempty"`
	ContactInfo  string          `json:"contact_info,omitempty"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	SellerID     *int64          `json:"seller_id,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

type OrderItem struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// OrderRequest est le corps de POST /api/orders
type OrderRequest struct {
	Items        []OrderRequestItem `json:"items"`
	ContactName  string             `json:"contact_name"`
	ContactEmail string             `json:"contact_email"`
	ContactPhone string             `json:"contact_phone"`
	ContactInfo  string             `json:"contact_info"`
}

type OrderRequestItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// OrderStats compte les commandes par statut (tableau de bord vendeur)
type OrderStats struct {
	Pending    int `json:"pending"`
	Processing int `json:"processing"`
	Completed  int `json:"completed"`
}

// CountByStatus calcule les compteurs affichés sur le tableau de bord
func CountByStatus(orders []Order) OrderStats {
	var stats OrderStats
	for _, o := range orders {
		switch o.Status {
		case StatusPending:
			stats.Pending++
		case StatusProcessing:
			stats.Processing++
		case StatusCompleted:
			stats.Completed++
		}
	}
	return stats
}
