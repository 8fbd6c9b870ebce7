package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"silva_storefront/internal/models"
)

// CreateOrder soumet la commande ; la confirmation du backend est renvoyée telle quelle
func (c *Client) CreateOrder(ctx context.Context, token string, req models.OrderRequest) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.do(ctx, call{op: "create order", method: http.MethodPost, path: "/api/orders", token: token, in: req, out: &out})
	return out, err
}

// ListOrders : commandes visibles pour le token (assignées au vendeur, toutes pour l'admin)
func (c *Client) ListOrders(ctx context.Context, token string) ([]models.Order, error) {
	var out struct {
		Orders []models.Order `json:"orders"`
	}
	err := c.do(ctx, call{op: "list orders", method: http.MethodGet, path: "/api/orders", token: token, out: &out})
	return out.Orders, err
}

// UpdateOrderStatus transmet le statut demandé sans le valider : le backend décide
func (c *Client) UpdateOrderStatus(ctx context.Context, token string, orderID int64, status models.OrderStatus) error {
	body := struct {
		Status models.OrderStatus `json:"status"`
	}{Status: status}
	return c.do(ctx, call{
		op:     "update order status",
		method: http.MethodPut,
		path:   "/api/orders/" + strconv.FormatInt(orderID, 10) + "/status",
		token:  token,
		in:     body,
	})
}
