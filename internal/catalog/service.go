// Package catalog serves the product grid on the cashier screen: a cache-aside
// read path over the backend's product listing, with invalidation when the
// back office changes the catalog.
package catalog

import (
	"context"
	"errors"

	"github.com/NahlBee97/komputama-kasir-frontend/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ProductAPI is the consumer-defined view of the product endpoints.
type ProductAPI interface {
	GetProducts(ctx context.Context) ([]domain.Product, error)
}

type Service struct {
	api   ProductAPI
	cache ProductCache
	log   *zap.SugaredLogger
	sfg   singleflight.Group // Prevents concurrent cache misses from stacking fetches
}

func NewService(api ProductAPI, cache ProductCache, log *zap.SugaredLogger) *Service {
	return &Service{
		api:   api,
		cache: cache,
		log:   log,
	}
}

// Products returns the catalog, serving from cache when warm.
func (s *Service) Products(ctx context.Context) ([]domain.Product, error) {
	v, err, _ := s.sfg.Do(cacheKey, func() (interface{}, error) {
		products, err := s.cache.Get(ctx)
		if err == nil {
			return products, nil
		}
		if !errors.Is(err, ErrCacheMiss) {
			s.log.Warnw("cache get failed", "error", err) // degrade to the backend
		}

		products, err = s.api.GetProducts(ctx)
		if err != nil {
			return nil, err
		}

		if errSet := s.cache.Set(ctx, products); errSet != nil {
			s.log.Warnw("cache set failed", "error", errSet)
		}
		return products, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Product), nil
}

// Invalidate drops the cached snapshot. Called after admin product mutations
// and by the update listener.
func (s *Service) Invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx); err != nil {
		s.log.Warnw("cache invalidate failed", "error", err)
	}
}
