// Package handler はfarmerフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"agri_backend/internal/api"
	"agri_backend/internal/feature/farmer/domain/entity"
	"agri_backend/internal/feature/farmer/transport/http/dto"
	"agri_backend/internal/feature/farmer/usecase"
	marketdomain "agri_backend/internal/feature/market/domain"
)

// FarmerUsecase はファーマープロフィール操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type FarmerUsecase interface {
	CreateProfile(ctx context.Context, profile *entity.FarmerProfile) (uint, error)
	GetProfile(ctx context.Context, id uint) (*entity.FarmerProfile, error)
	Dashboard(ctx context.Context, id uint) (*usecase.Dashboard, error)
}

// FarmerHandler はファーマープロフィールとダッシュボードのHTTPリクエストを処理します。
type FarmerHandler struct {
	uc FarmerUsecase
}

// NewFarmerHandler は指定されたusecaseでFarmerHandlerの新しいインスタンスを生成します。
func NewFarmerHandler(uc FarmerUsecase) *FarmerHandler {
	return &FarmerHandler{uc: uc}
}

// CreateProfile はオンボーディングのプロフィール保存エンドポイントを処理します。
//
// エンドポイント例:
// POST /api/farmer/profile
func (h *FarmerHandler) CreateProfile(c *gin.Context) {
	var req dto.CreateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("profile validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	id, err := h.uc.CreateProfile(c.Request.Context(), req.ToEntity())
	if err != nil {
		slog.Error("profile save failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "profile save failed"})
		return
	}

	c.JSON(http.StatusCreated, dto.CreatedResponse{ID: id, Status: "created"})
}

// GetProfile はIDでプロフィールを返します。
//
// エンドポイント例:
// GET /api/farmer/profile/7
func (h *FarmerHandler) GetProfile(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	profile, err := h.uc.GetProfile(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "profile fetch failed")
		return
	}

	c.JSON(http.StatusOK, dto.NewProfile(profile))
}

// Dashboard はファーマーの設定に合わせたダッシュボードデータを返します。
//
// エンドポイント例:
// GET /api/farmer/dashboard/7
func (h *FarmerHandler) Dashboard(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	dash, err := h.uc.Dashboard(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "dashboard data failed")
		return
	}

	c.JSON(http.StatusOK, dto.NewDashboard(dash))
}

// parseID はパスパラメータのファーマーIDを解析します。不正な場合は
// 400を書き込んでfalseを返します。
func (h *FarmerHandler) parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid farmer id"})
		return 0, false
	}
	return uint(id), true
}

// writeError はドメインエラーをHTTPステータスに対応付けます。
func (h *FarmerHandler) writeError(c *gin.Context, err error, generic string) {
	switch {
	case errors.Is(err, usecase.ErrFarmerNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "farmer not found"})
	case errors.Is(err, marketdomain.ErrSourceNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "no data for region and commodity"})
	default:
		slog.Error("farmer request failed", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: generic})
	}
}
