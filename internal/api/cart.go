package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/NahlBee97/komputama-kasir-frontend/internal/domain"
)

type cartEnvelope struct {
	Cart *domain.Cart `json:"cart"`
}

type AddItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart fetches the authenticated cashier's cart, items and product
// snapshots included.
func (c *Client) GetCart(ctx context.Context) (*domain.Cart, error) {
	var env cartEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/carts", nil, &env); err != nil {
		return nil, err
	}
	return env.Cart, nil
}

// AddItem adds a product to the cart and returns the updated authoritative
// cart, server-assigned line ids included.
func (c *Client) AddItem(ctx context.Context, productID int64, quantity int) (*domain.Cart, error) {
	var env cartEnvelope
	req := AddItemRequest{ProductID: productID, Quantity: quantity}
	if err := c.do(ctx, http.MethodPost, "/api/carts/items", req, &env); err != nil {
		return nil, err
	}
	return env.Cart, nil
}

// UpdateQuantity sets the quantity of an existing cart line.
func (c *Client) UpdateQuantity(ctx context.Context, itemID int64, quantity int) (*domain.Cart, error) {
	var env cartEnvelope
	req := UpdateQuantityRequest{Quantity: quantity}
	path := fmt.Sprintf("/api/carts/items/%d", itemID)
	if err := c.do(ctx, http.MethodPut, path, req, &env); err != nil {
		return nil, err
	}
	return env.Cart, nil
}

// RemoveItem deletes a cart line.
func (c *Client) RemoveItem(ctx context.Context, itemID int64) (*domain.Cart, error) {
	var env cartEnvelope
	path := fmt.Sprintf("/api/carts/items/%d", itemID)
	if err := c.do(ctx, http.MethodDelete, path, nil, &env); err != nil {
		return nil, err
	}
	return env.Cart, nil
}
