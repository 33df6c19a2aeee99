package router

import (
	authhandler "agri_backend/internal/feature/auth/transport/handler"
	cataloghandler "agri_backend/internal/feature/catalog/transport/handler"
	farmerhandler "agri_backend/internal/feature/farmer/transport/handler"
	markethandler "agri_backend/internal/feature/market/transport/handler"
	"agri_backend/internal/platform/http/handler"
	jwtmw "agri_backend/internal/platform/jwt"

	"github.com/gin-gonic/gin"
)

func NewRouter(authHandler *authhandler.AuthHandler, market *markethandler.MarketHandler,
	catalog *cataloghandler.CatalogHandler, farmer *farmerhandler.FarmerHandler) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// アカウント系はDB構成時のみ有効
	if authHandler != nil {
		// 新規アカウント登録
		r.POST("/signup", authHandler.Signup)
		// ログイン（JWT 発行）
		r.POST("/login", authHandler.Login)
	}

	// マーケットデータは公開API
	api := r.Group("/api")
	{
		api.GET("/market/intelligence", market.GetIntelligenceHandler)
		api.GET("/market/records", market.GetRecordsHandler)
		api.GET("/market/data", market.GetRawDataHandler)
		api.GET("/market/filters", catalog.GetFiltersHandler)
		api.GET("/geo/resolve", handler.ResolveGeo)
	}

	// 認証必須のルート
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに JWT が必要になる
	if farmer != nil {
		auth := api.Group("/farmer")
		auth.Use(jwtmw.AuthRequired())
		{
			auth.POST("/profile", farmer.CreateProfile)
			auth.GET("/profile/:id", farmer.GetProfile)
			auth.GET("/dashboard/:id", farmer.Dashboard)
		}
	}

	return r
}
