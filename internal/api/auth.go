package api

import (
	"context"
	"net/http"

	"silva_storefront/internal/models"
)

func (c *Client) Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error) {
	var out models.AuthResponse
	err := c.do(ctx, call{op: "login", method: http.MethodPost, path: "/api/auth/login", in: creds, out: &out})
	return out, err
}

func (c *Client) Register(ctx context.Context, reg models.Registration) (models.AuthResponse, error) {
	var out models.AuthResponse
	err := c.do(ctx, call{op: "register", method: http.MethodPost, path: "/api/auth/register", in: reg, out: &out})
	return out, err
}

// Me relit l'utilisateur courant (gains à jour, rôle)
func (c *Client) Me(ctx context.Context, token string) (models.User, error) {
	var out struct {
		User models.User `json:"user"`
	}
	err := c.do(ctx, call{op: "me", method: http.MethodGet, path: "/api/auth/me", token: token, out: &out})
	return out.User, err
}
