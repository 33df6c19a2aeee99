// Package handler はcatalogフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"agri_backend/internal/api"
	"agri_backend/internal/feature/catalog/domain/entity"
	"agri_backend/internal/feature/catalog/transport/http/dto"
)

// CatalogUsecase はカタログ検索のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type CatalogUsecase interface {
	ListAvailable(ctx context.Context) ([]entity.MarketPair, error)
}

// CatalogHandler はフィルター検索のHTTPリクエストを処理します。
type CatalogHandler struct {
	uc CatalogUsecase
}

// NewCatalogHandler は指定されたusecaseでCatalogHandlerの新しいインスタンスを生成します。
func NewCatalogHandler(uc CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// GetFiltersHandler はState→Districtのトポロジーと商品の一覧を返します。
//
// エンドポイント例:
// GET /api/market/filters
func (h *CatalogHandler) GetFiltersHandler(c *gin.Context) {
	pairs, err := h.uc.ListAvailable(c.Request.Context())
	if err != nil {
		slog.Error("filter discovery failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "filter discovery failed"})
		return
	}

	c.JSON(http.StatusOK, dto.NewFilters(pairs))
}
