package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/NahlBee97/komputama-kasir-frontend/internal/domain"
)

// MemoryCache is the single-terminal fallback when no Redis is configured.
type MemoryCache struct {
	mu       sync.RWMutex
	products []domain.Product
	setAt    time.Time
	ttl      time.Duration
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{ttl: ttl}
}

func (m *MemoryCache) Get(context.Context) ([]domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.products == nil {
		return nil, ErrCacheMiss
	}
	if m.ttl > 0 && time.Since(m.setAt) > m.ttl {
		return nil, ErrCacheMiss
	}
	out := make([]domain.Product, len(m.products))
	copy(out, m.products)
	return out, nil
}

func (m *MemoryCache) Set(_ context.Context, products []domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products = make([]domain.Product, len(products))
	copy(m.products, products)
	m.setAt = time.Now()
	return nil
}

func (m *MemoryCache) Delete(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products = nil
	return nil
}
