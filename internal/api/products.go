package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/NahlBee97/komputama-kasir-frontend/internal/domain"
)

type productsEnvelope struct {
	Products []domain.Product `json:"products"`
}

type productEnvelope struct {
	Product *domain.Product `json:"product"`
}

// GetProducts lists the active catalog.
func (c *Client) GetProducts(ctx context.Context) ([]domain.Product, error) {
	var env productsEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, &env); err != nil {
		return nil, err
	}
	return env.Products, nil
}

// GetTopProducts lists the best sellers for the report page.
func (c *Client) GetTopProducts(ctx context.Context) ([]domain.Product, error) {
	var env productsEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/products/top", nil, &env); err != nil {
		return nil, err
	}
	return env.Products, nil
}

func (c *Client) CreateProduct(ctx context.Context, p domain.NewProduct) (*domain.Product, error) {
	var env productEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/products", p, &env); err != nil {
		return nil, err
	}
	return env.Product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, p domain.UpdateProduct) (*domain.Product, error) {
	var env productEnvelope
	path := fmt.Sprintf("/api/products/%d", id)
	if err := c.do(ctx, http.MethodPut, path, p, &env); err != nil {
		return nil, err
	}
	return env.Product, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/products/%d", id), nil, nil)
}
