package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agri_backend/internal/feature/market/domain"
	"agri_backend/internal/feature/market/domain/entity"
	"agri_backend/internal/feature/market/transport/handler"
	"agri_backend/internal/feature/market/usecase"
)

// mockMarketUsecase はMarketUsecaseインターフェースのモック実装です。
type mockMarketUsecase struct {
	GetIntelligenceFunc func(ctx context.Context, region, commodity string, days int) (*usecase.Intelligence, error)
	GetRecordsFunc      func(ctx context.Context, region, commodity string, page, pageSize int) (*usecase.RecordsPage, error)
	GetRawRecordsFunc   func(ctx context.Context, region, commodity string) ([]entity.PriceRecord, error)
}

func (m *mockMarketUsecase) GetIntelligence(ctx context.Context, region, commodity string, days int) (*usecase.Intelligence, error) {
	return m.GetIntelligenceFunc(ctx, region, commodity, days)
}

func (m *mockMarketUsecase) GetRecords(ctx context.Context, region, commodity string, page, pageSize int) (*usecase.RecordsPage, error) {
	return m.GetRecordsFunc(ctx, region, commodity, page, pageSize)
}

func (m *mockMarketUsecase) GetRawRecords(ctx context.Context, region, commodity string) ([]entity.PriceRecord, error) {
	return m.GetRawRecordsFunc(ctx, region, commodity)
}

func newTestRouter(uc handler.MarketUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewMarketHandler(uc)
	r := gin.New()
	r.GET("/api/market/intelligence", h.GetIntelligenceHandler)
	r.GET("/api/market/records", h.GetRecordsHandler)
	r.GET("/api/market/data", h.GetRawDataHandler)
	return r
}

func testIntelligence() *usecase.Intelligence {
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	return &usecase.Intelligence{
		Enriched: entity.EnrichedMarket{
			Region:       "Kerala_Kottayam",
			Commodity:    "Banana",
			Trend:        entity.TrendUp,
			BuyerSignal:  entity.BuyerStable,
			RiskLevel:    entity.RiskModerate,
			LatestPrice:  3000,
			MinPrice:     2600,
			MaxPrice:     3200,
			AveragePrice: 2900,
			RecordCount:  2,
			LatestDate:   date,
			Momentum:     entity.MomentumResult{Momentum: entity.MomentumRising, MagnitudePct: 7.1, WindowSize: 2},
		},
		Recommendation: entity.Recommendation{Action: entity.ActionBuy, Confidence: 80, Reason: "uptrend confirmed by rising momentum"},
		Series: []entity.TrendPoint{
			{Date: date.AddDate(0, 0, -1), Price: 2800},
			{Date: date, Price: 3000},
		},
	}
}

func TestMarketHandler_GetIntelligenceHandler(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		mock           func(ctx context.Context, region, commodity string, days int) (*usecase.Intelligence, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: all parameters specified",
			url:  "/api/market/intelligence?region=Kerala_Kottayam&commodity=Banana&days=14",
			mock: func(ctx context.Context, region, commodity string, days int) (*usecase.Intelligence, error) {
				assert.Equal(t, "Kerala_Kottayam", region)
				assert.Equal(t, "Banana", commodity)
				assert.Equal(t, 14, days)
				return testIntelligence(), nil
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{
				"region":"Kerala_Kottayam","commodity":"Banana",
				"latest_price":3000,"price_range":{"min":2600,"max":3200},
				"average_price":2900,"trend":"up","buyer_signal":"Stable","risk_level":"Moderate",
				"momentum":{"momentum":"rising","magnitude_pct":7.1,"window_size":2},
				"recommendation":{"action":"BUY","confidence":80,"reason":"uptrend confirmed by rising momentum"},
				"record_count":2,"as_of":"2024-03-10",
				"chart":[{"x":"2024-03-09","y":2800},{"x":"2024-03-10","y":3000}]
			}`,
		},
		{
			name: "success: default parameter values",
			url:  "/api/market/intelligence",
			mock: func(ctx context.Context, region, commodity string, days int) (*usecase.Intelligence, error) {
				assert.Equal(t, "Kerala_Kottayam", region) // デフォルト値
				assert.Equal(t, "Banana", commodity)       // デフォルト値
				assert.Equal(t, 14, days)                  // デフォルト値
				return testIntelligence(), nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "error: validation failure maps to 400",
			url:  "/api/market/intelligence?days=99",
			mock: func(ctx context.Context, region, commodity string, days int) (*usecase.Intelligence, error) {
				return nil, fmt.Errorf("%w: days must be between 1 and 30, got 99", domain.ErrValidation)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "error: unknown pair maps to 404",
			url:  "/api/market/intelligence?region=Goa_Panaji",
			mock: func(ctx context.Context, region, commodity string, days int) (*usecase.Intelligence, error) {
				return nil, domain.ErrSourceNotFound
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"no data for region and commodity"}`,
		},
		{
			name: "error: anything else maps to a generic failure",
			url:  "/api/market/intelligence",
			mock: func(ctx context.Context, region, commodity string, days int) (*usecase.Intelligence, error) {
				return nil, domain.ErrInsufficientData
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"market intelligence failed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&mockMarketUsecase{GetIntelligenceFunc: tt.mock})

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, tt.url, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestMarketHandler_GetRecordsHandler(t *testing.T) {
	volume := 540.0
	date := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		url            string
		mock           func(ctx context.Context, region, commodity string, page, pageSize int) (*usecase.RecordsPage, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: one record with volume",
			url:  "/api/market/records?page=2&page_size=10",
			mock: func(ctx context.Context, region, commodity string, page, pageSize int) (*usecase.RecordsPage, error) {
				assert.Equal(t, 2, page)
				assert.Equal(t, 10, pageSize)
				return &usecase.RecordsPage{
					Records: []entity.PriceRecord{{
						Date: date, Region: "Punjab_Ludhiana", Commodity: "Wheat",
						MinPrice: 2100, MaxPrice: 2300, ModalPrice: 2200,
						Volume: volume, HasVolume: true,
					}},
					Total: 11, Page: 2, PageSize: 10, TotalPages: 2,
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{
				"records":[{"date":"2024-02-01","region":"Punjab_Ludhiana","commodity":"Wheat",
					"min_price":2100,"max_price":2300,"modal_price":2200,"volume":540}],
				"total":11,"page":2,"page_size":10,"total_pages":2
			}`,
		},
		{
			name: "success: page beyond range is an empty slice",
			url:  "/api/market/records?page=4&page_size=50",
			mock: func(ctx context.Context, region, commodity string, page, pageSize int) (*usecase.RecordsPage, error) {
				return &usecase.RecordsPage{
					Records: []entity.PriceRecord{},
					Total:   105, Page: 4, PageSize: 50, TotalPages: 3,
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"records":[],"total":105,"page":4,"page_size":50,"total_pages":3}`,
		},
		{
			name: "error: bad page size maps to 400",
			url:  "/api/market/records?page_size=5",
			mock: func(ctx context.Context, region, commodity string, page, pageSize int) (*usecase.RecordsPage, error) {
				return nil, fmt.Errorf("%w: page_size must be between 10 and 200, got 5", domain.ErrValidation)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&mockMarketUsecase{GetRecordsFunc: tt.mock})

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, tt.url, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestMarketHandler_GetRawDataHandler(t *testing.T) {
	router := newTestRouter(&mockMarketUsecase{
		GetRawRecordsFunc: func(ctx context.Context, region, commodity string) ([]entity.PriceRecord, error) {
			return []entity.PriceRecord{{
				Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Region: "Kerala_Kottayam",
				Commodity: "Banana", MinPrice: 2600, MaxPrice: 3000, ModalPrice: 2800,
			}}, nil
		},
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/market/data", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"date":"2024-02-01","region":"Kerala_Kottayam","commodity":"Banana",
		"min_price":2600,"max_price":3000,"modal_price":2800,"volume":null}]`, w.Body.String())
}
