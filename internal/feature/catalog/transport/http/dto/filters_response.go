// Package dto defines response shapes and presentation mappers for the
// catalog feature's HTTP transport layer.
package dto

import (
	"sort"

	"agri_backend/internal/feature/catalog/domain/entity"
)

// FiltersResponse はフィルターUI用のレスポンスDTOです。
// topologyは State -> District のツリー、commoditiesは全商品の和集合、
// regionsはクエリパラメータにそのまま使えるリージョンキーの一覧です。
type FiltersResponse struct {
	Topology    map[string][]string `json:"topology"`
	Commodities []string            `json:"commodities"`
	Regions     []string            `json:"regions"`
}

// NewFilters collapses discovered pairs into the filter topology. All
// slices are sorted and deduplicated; empty input yields empty (non-nil)
// collections.
func NewFilters(pairs []entity.MarketPair) FiltersResponse {
	districts := map[string]map[string]struct{}{}
	commoditySet := map[string]struct{}{}
	regionSet := map[string]struct{}{}

	for _, p := range pairs {
		state := p.State()
		if _, ok := districts[state]; !ok {
			districts[state] = map[string]struct{}{}
		}
		if d := p.District(); d != "" {
			districts[state][d] = struct{}{}
		}
		commoditySet[p.Commodity] = struct{}{}
		regionSet[p.Region] = struct{}{}
	}

	topology := make(map[string][]string, len(districts))
	for state, set := range districts {
		ds := make([]string, 0, len(set))
		for d := range set {
			ds = append(ds, d)
		}
		sort.Strings(ds)
		topology[state] = ds
	}

	return FiltersResponse{
		Topology:    topology,
		Commodities: sortedKeys(commoditySet),
		Regions:     sortedKeys(regionSet),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
