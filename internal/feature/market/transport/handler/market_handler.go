// Package handler はmarketフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"agri_backend/internal/api"
	"agri_backend/internal/feature/market/domain"
	"agri_backend/internal/feature/market/domain/entity"
	"agri_backend/internal/feature/market/transport/http/dto"
	"agri_backend/internal/feature/market/usecase"
)

// デフォルトのクエリパラメータ
const (
	defaultRegion    = "Kerala_Kottayam"
	defaultCommodity = "Banana"
)

// MarketUsecase はマーケットインテリジェンス操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type MarketUsecase interface {
	GetIntelligence(ctx context.Context, region, commodity string, days int) (*usecase.Intelligence, error)
	GetRecords(ctx context.Context, region, commodity string, page, pageSize int) (*usecase.RecordsPage, error)
	GetRawRecords(ctx context.Context, region, commodity string) ([]entity.PriceRecord, error)
}

// MarketHandler はマーケットインテリジェンスのHTTPリクエストを処理します。
type MarketHandler struct {
	uc MarketUsecase
}

// NewMarketHandler は指定されたusecaseでMarketHandlerの新しいインスタンスを生成します。
func NewMarketHandler(uc MarketUsecase) *MarketHandler {
	return &MarketHandler{uc: uc}
}

// GetIntelligenceHandler は価格カード＋トレンドチャート＋売買推奨を返します。
//
// エンドポイント例:
// GET /api/market/intelligence?region=Kerala_Kottayam&commodity=Banana&days=14
func (h *MarketHandler) GetIntelligenceHandler(c *gin.Context) {
	region := c.DefaultQuery("region", defaultRegion)
	commodity := c.DefaultQuery("commodity", defaultCommodity)
	daysStr := c.DefaultQuery("days", strconv.Itoa(14))
	// 文字列を整数に変換（不正値はusecaseのバリデーションで弾かれる）
	days, _ := strconv.Atoi(daysStr)

	result, err := h.uc.GetIntelligence(c.Request.Context(), region, commodity, days)
	if err != nil {
		h.writeError(c, err, "market intelligence failed")
		return
	}

	chart := dto.NewChartSeries(result.Series)
	c.JSON(http.StatusOK, dto.NewMarketSummary(result.Enriched, result.Recommendation, chart))
}

// GetRecordsHandler はデータテーブル用のページングされたレコードを返します。
//
// エンドポイント例:
// GET /api/market/records?region=Kerala_Kottayam&commodity=Banana&page=1&page_size=50
func (h *MarketHandler) GetRecordsHandler(c *gin.Context) {
	region := c.DefaultQuery("region", defaultRegion)
	commodity := c.DefaultQuery("commodity", defaultCommodity)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(usecase.DefaultPageSize)))

	result, err := h.uc.GetRecords(c.Request.Context(), region, commodity, page, pageSize)
	if err != nil {
		h.writeError(c, err, "market records fetch failed")
		return
	}

	c.JSON(http.StatusOK, dto.NewRecordsPage(result))
}

// GetRawDataHandler は正規化済みレコードをそのまま返すレガシーAPIです。
func (h *MarketHandler) GetRawDataHandler(c *gin.Context) {
	region := c.DefaultQuery("region", defaultRegion)
	commodity := c.DefaultQuery("commodity", defaultCommodity)

	records, err := h.uc.GetRawRecords(c.Request.Context(), region, commodity)
	if err != nil {
		h.writeError(c, err, "market data fetch failed")
		return
	}

	out := make([]dto.RecordItem, 0, len(records))
	for _, r := range records {
		out = append(out, dto.NewRecordItem(r))
	}
	c.JSON(http.StatusOK, out)
}

// writeError はドメインエラーをHTTPステータスに対応付けます。
// ワイヤ上は汎用メッセージのみを返し、内部の区別はログ用に留めます。
func (h *MarketHandler) writeError(c *gin.Context, err error, generic string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrSourceNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "no data for region and commodity"})
	default:
		slog.Error("market pipeline failed", "error", err, "path", c.FullPath())
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: generic})
	}
}
