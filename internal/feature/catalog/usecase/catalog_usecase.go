// Package usecase implements the business logic for market catalog discovery.
package usecase

import (
	"context"

	"agri_backend/internal/feature/catalog/domain/entity"
)

// PairRepository abstracts the discovery layer for (region, commodity) pairs.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type PairRepository interface {
	// ListAvailable returns every discoverable (region, commodity) pair.
	ListAvailable(ctx context.Context) ([]entity.MarketPair, error)
}

// CatalogUsecase provides business logic for catalog operations.
type CatalogUsecase struct {
	pairs PairRepository
}

// NewCatalogUsecase creates a new CatalogUsecase with the given repository.
func NewCatalogUsecase(pairs PairRepository) *CatalogUsecase {
	return &CatalogUsecase{pairs: pairs}
}

// ListAvailable returns every discoverable (region, commodity) pair.
// The pipeline itself never consumes this; it only feeds caller-side filter
// choices and the ingest job.
func (u *CatalogUsecase) ListAvailable(ctx context.Context) ([]entity.MarketPair, error) {
	return u.pairs.ListAvailable(ctx)
}

// ListActivePairs returns the pairs the ingest job should refresh.
func (u *CatalogUsecase) ListActivePairs(ctx context.Context) ([]entity.MarketPair, error) {
	all, err := u.pairs.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]entity.MarketPair, 0, len(all))
	for _, p := range all {
		if p.Active {
			active = append(active, p)
		}
	}
	return active, nil
}
