package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"silva_storefront/internal/models"
)

// ListProducts liste le catalogue ; categoryID 0 = toutes catégories
func (c *Client) ListProducts(ctx context.Context, categoryID int64) ([]models.Product, error) {
	var q url.Values
	if categoryID != 0 {
		q = url.Values{"category": {strconv.FormatInt(categoryID, 10)}}
	}
	var out struct {
		Products []models.Product `json:"products"`
	}
	err := c.do(ctx, call{op: "list products", method: http.MethodGet, path: "/api/products", query: q, out: &out})
	return out.Products, err
}

func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var out struct {
		Categories []models.Category `json:"categories"`
	}
	err := c.do(ctx, call{op: "list categories", method: http.MethodGet, path: "/api/products/categories/all", out: &out})
	return out.Categories, err
}

func (c *Client) CreateProduct(ctx context.Context, token string, in models.ProductInput) error {
	return c.do(ctx, call{op: "create product", method: http.MethodPost, path: "/api/products", token: token, in: in})
}

func (c *Client) UpdateProduct(ctx context.Context, token string, id int64, in models.ProductInput) error {
	return c.do(ctx, call{op: "update product", method: http.MethodPut, path: "/api/products/" + strconv.FormatInt(id, 10), token: token, in: in})
}

func (c *Client) DeleteProduct(ctx context.Context, token string, id int64) error {
	return c.do(ctx, call{op: "delete product", method: http.MethodDelete, path: "/api/products/" + strconv.FormatInt(id, 10), token: token})
}

func (c *Client) CreateCategory(ctx context.Context, token string, in models.CategoryInput) error {
	return c.do(ctx, call{op: "create category", method: http.MethodPost, path: "/api/products/categories", token: token, in: in})
}

func (c *Client) UpdateCategory(ctx context.Context, token string, id int64, in models.CategoryInput) error {
	return c.do(ctx, call{op: "update category", method: http.MethodPut, path: "/api/products/categories/" + strconv.FormatInt(id, 10), token: token, in: in})
}

func (c *Client) DeleteCategory(ctx context.Context, token string, id int64) error {
	return c.do(ctx, call{op: "delete category", method: http.MethodDelete, path: "/api/products/categories/" + strconv.FormatInt(id, 10), token: token})
}
