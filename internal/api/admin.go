package api

import (
	"context"
	"net/http"

	"silva_storefront/internal/models"
)

func (c *Client) Analytics(ctx context.Context, token string) (models.Analytics, error) {
	var out models.Analytics
	err := c.do(ctx, call{op: "analytics", method: http.MethodGet, path: "/api/admin/analytics", token: token, out: &out})
	return out, err
}

func (c *Client) ListSellers(ctx context.Context, token string) ([]models.Seller, error) {
	var out struct {
		Sellers []models.Seller `json:"sellers"`
	}
	err := c.do(ctx, call{op: "list sellers", method: http.MethodGet, path: "/api/admin/sellers", token: token, out: &out})
	return out.Sellers, err
}

func (c *Client) CreateSeller(ctx context.Context, token string, in models.SellerInput) error {
	return c.do(ctx, call{op: "create seller", method: http.MethodPost, path: "/api/admin/sellers", token: token, in: in})
}
