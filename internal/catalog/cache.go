package catalog

import (
	"context"
	"errors"

	"github.com/NahlBee97/komputama-kasir-frontend/internal/domain"
)

// ProductCache keeps the catalog snapshot close to the terminal so the cashier
// grid does not hit the backend on every render.
type ProductCache interface {
	Get(ctx context.Context) ([]domain.Product, error)
	Set(ctx context.Context, products []domain.Product) error
	Delete(ctx context.Context) error
}

var ErrCacheMiss = errors.New("cache miss")
