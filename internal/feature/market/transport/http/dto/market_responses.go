// Package dto defines response shapes and presentation mappers for the
// market feature's HTTP transport layer.
package dto

import (
	"agri_backend/internal/feature/market/domain/entity"
	"agri_backend/internal/feature/market/usecase"
)

// dateLayout is the ISO-8601 date serialization used on the wire.
const dateLayout = "2006-01-02"

// ChartPoint is one plotting-ready point of the trend chart.
type ChartPoint struct {
	X string  `json:"x"` // 日付 (ISO-8601)
	Y float64 `json:"y"` // モーダル価格
}

// PriceRange is the observed min/max price over the loaded window.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// MomentumInfo is the serialized momentum derivation.
type MomentumInfo struct {
	Momentum     string  `json:"momentum"`
	MagnitudePct float64 `json:"magnitude_pct"`
	WindowSize   int     `json:"window_size"`
}

// RecommendationInfo is the serialized trade recommendation.
type RecommendationInfo struct {
	Action     string `json:"action"`
	Confidence int    `json:"confidence"`
	Reason     string `json:"reason"`
}

// MarketSummaryResponse は価格カード・シグナル・推奨・チャートをまとめた
// マーケットインテリジェンスのレスポンスDTOです。すべてのフィールドは
// 常に出力されます（キーの省略はしない）。
type MarketSummaryResponse struct {
	Region         string             `json:"region"`
	Commodity      string             `json:"commodity"`
	LatestPrice    float64            `json:"latest_price"`
	PriceRange     PriceRange         `json:"price_range"`
	AveragePrice   float64            `json:"average_price"`
	Trend          string             `json:"trend"`
	BuyerSignal    string             `json:"buyer_signal"`
	RiskLevel      string             `json:"risk_level"`
	Momentum       MomentumInfo       `json:"momentum"`
	Recommendation RecommendationInfo `json:"recommendation"`
	RecordCount    int                `json:"record_count"`
	AsOf           string             `json:"as_of"` // 最新レコードの日付、レコードなしの場合は ""
	Chart          []ChartPoint       `json:"chart"`
}

// RecordItem は正規化済み価格レコード1件のレスポンスDTOです。
type RecordItem struct {
	Date       string   `json:"date"`
	Region     string   `json:"region"`
	Commodity  string   `json:"commodity"`
	MinPrice   float64  `json:"min_price"`
	MaxPrice   float64  `json:"max_price"`
	ModalPrice float64  `json:"modal_price"`
	Volume     *float64 `json:"volume"` // ソースに出来高がない場合は null
}

// RecordsPageResponse はページングされたレコードテーブルのレスポンスDTOです。
type RecordsPageResponse struct {
	Records    []RecordItem `json:"records"`
	Total      int          `json:"total"`
	Page       int          `json:"page"`
	PageSize   int          `json:"page_size"`
	TotalPages int          `json:"total_pages"`
}

// NewChartSeries maps a trend series to plotting-ready points. Empty input
// yields an empty (non-nil) slice, never an error.
func NewChartSeries(series []entity.TrendPoint) []ChartPoint {
	out := make([]ChartPoint, 0, len(series))
	for _, p := range series {
		out = append(out, ChartPoint{X: p.Date.UTC().Format(dateLayout), Y: p.Price})
	}
	return out
}

// NewMarketSummary flat-maps the enriched market and recommendation into the
// summary response. Every consumer-relied field is present with a defined
// default even when the underlying data is sparse.
func NewMarketSummary(e entity.EnrichedMarket, r entity.Recommendation, chart []ChartPoint) MarketSummaryResponse {
	asOf := ""
	if !e.LatestDate.IsZero() {
		asOf = e.LatestDate.UTC().Format(dateLayout)
	}
	if chart == nil {
		chart = []ChartPoint{}
	}
	return MarketSummaryResponse{
		Region:       e.Region,
		Commodity:    e.Commodity,
		LatestPrice:  e.LatestPrice,
		PriceRange:   PriceRange{Min: e.MinPrice, Max: e.MaxPrice},
		AveragePrice: e.AveragePrice,
		Trend:        string(e.Trend),
		BuyerSignal:  string(e.BuyerSignal),
		RiskLevel:    string(e.RiskLevel),
		Momentum: MomentumInfo{
			Momentum:     string(e.Momentum.Momentum),
			MagnitudePct: e.Momentum.MagnitudePct,
			WindowSize:   e.Momentum.WindowSize,
		},
		Recommendation: RecommendationInfo{
			Action:     string(r.Action),
			Confidence: r.Confidence,
			Reason:     r.Reason,
		},
		RecordCount: e.RecordCount,
		AsOf:        asOf,
		Chart:       chart,
	}
}

// NewRecordItem maps one normalized price record.
func NewRecordItem(r entity.PriceRecord) RecordItem {
	item := RecordItem{
		Date:       r.Date.UTC().Format(dateLayout),
		Region:     r.Region,
		Commodity:  r.Commodity,
		MinPrice:   r.MinPrice,
		MaxPrice:   r.MaxPrice,
		ModalPrice: r.ModalPrice,
	}
	if r.HasVolume {
		v := r.Volume
		item.Volume = &v
	}
	return item
}

// NewRecordsPage maps a paginated record slice with its paging metadata.
func NewRecordsPage(page *usecase.RecordsPage) RecordsPageResponse {
	records := make([]RecordItem, 0, len(page.Records))
	for _, r := range page.Records {
		records = append(records, NewRecordItem(r))
	}
	return RecordsPageResponse{
		Records:    records,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}
}
