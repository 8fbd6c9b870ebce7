package models

import "github.com/shopspring/decimal"

// Analytics est la réponse de GET /api/admin/analytics
type Analytics struct {
	Users      []RoleCount      `json:"users"`
	Orders     OrderAnalytics   `json:"orders"`
	Products   ProductAnalytics `json:"products"`
	TopSellers []SellerSales    `json:"top_sellers"`
}

type RoleCount struct {
	Role  string `json:"role"`
	Count int    `json:"count"`
}

type OrderAnalytics struct {
	TotalOrders  int             `json:"total_orders"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

type ProductAnalytics struct {
	TotalProducts int `json:"total_products"`
}

type SellerSales struct {
	Email       string          `json:"email"`
	TotalOrders int             `json:"total_orders"`
	Earnings    decimal.Decimal `json:"earnings"`
}

// CountForRole renvoie le nombre d'utilisateurs d'un rôle donné
func (a Analytics) CountForRole(role string) int {
	for _, u := range a.Users {
		if u.Role == role {
			return u.Count
		}
	}
	return 0
}
