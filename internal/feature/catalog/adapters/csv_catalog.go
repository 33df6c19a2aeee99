package adapters

import (
	"context"
	"sort"
	"strings"

	"agri_backend/internal/feature/catalog/domain/entity"
	"agri_backend/internal/feature/catalog/usecase"
	"agri_backend/internal/feature/market/adapters/csvstore"
)

// csvCatalog discovers (region, commodity) pairs by scanning the CSV store:
// regions come from filenames, commodities from the rows of each file.
type csvCatalog struct {
	store *csvstore.Store
}

var _ usecase.PairRepository = (*csvCatalog)(nil)

func NewCSVCatalog(store *csvstore.Store) *csvCatalog {
	return &csvCatalog{store: store}
}

func (c *csvCatalog) ListAvailable(ctx context.Context) ([]entity.MarketPair, error) {
	regions, err := c.store.Regions()
	if err != nil {
		return nil, err
	}

	var pairs []entity.MarketPair
	for _, region := range regions {
		records, err := c.store.LoadRegion(ctx, region)
		if err != nil {
			return nil, err
		}
		seen := map[string]struct{}{}
		for _, r := range records {
			key := strings.ToLower(r.Commodity)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			pairs = append(pairs, entity.MarketPair{
				Region:    region,
				Commodity: r.Commodity,
				Active:    true,
			})
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Region != pairs[j].Region {
			return pairs[i].Region < pairs[j].Region
		}
		return pairs[i].Commodity < pairs[j].Commodity
	})
	return pairs, nil
}
