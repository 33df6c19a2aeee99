package main

import (
	"log"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"agri_backend/internal/app/di"
	"agri_backend/internal/app/router"
	authadapters "agri_backend/internal/feature/auth/adapters"
	authhandler "agri_backend/internal/feature/auth/transport/handler"
	authusecase "agri_backend/internal/feature/auth/usecase"
	cataloghandler "agri_backend/internal/feature/catalog/transport/handler"
	catalogusecase "agri_backend/internal/feature/catalog/usecase"
	farmeradapters "agri_backend/internal/feature/farmer/adapters"
	farmerhandler "agri_backend/internal/feature/farmer/transport/handler"
	farmerusecase "agri_backend/internal/feature/farmer/usecase"
	markethandler "agri_backend/internal/feature/market/transport/handler"
	marketusecase "agri_backend/internal/feature/market/usecase"
	infradb "agri_backend/internal/platform/db"
	jwtmw "agri_backend/internal/platform/jwt"
	infraredis "agri_backend/internal/platform/redis"
)

func main() {
	// db（DB_HOST未設定ならCSVストアにフォールバック）
	var db *gorm.DB
	if os.Getenv("DB_HOST") != "" {
		db = infradb.OpenDB()
	} else {
		log.Println("[WARN] DB_HOST is not set. Serving from CSV store.")
	}
	csvDir := os.Getenv("MARKET_DATA_DIR")
	if csvDir == "" {
		csvDir = "./data"
	}

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	recordRepo := di.NewRecordRepository(db, rdb, csvDir)
	pairRepo := di.NewPairRepository(db, csvDir)

	// Usecase
	marketUC := marketusecase.NewMarketUsecase(recordRepo)
	catalogUC := catalogusecase.NewCatalogUsecase(pairRepo)

	// Handler
	marketH := markethandler.NewMarketHandler(marketUC)
	catalogH := cataloghandler.NewCatalogHandler(catalogUC)

	// 認証系とファーマー系はDB必須
	var (
		authH   *authhandler.AuthHandler
		farmerH *farmerhandler.FarmerHandler
	)
	if db != nil {
		accountRepo := authadapters.NewAccountMySQL(db)
		jwtGen := jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), 24*time.Hour)
		authUC := authusecase.NewAuthUsecase(accountRepo, jwtGen)
		authH = authhandler.NewAuthHandler(authUC)

		farmerRepo := farmeradapters.NewFarmerMySQL(db)
		farmerUC := farmerusecase.NewFarmerUsecase(farmerRepo, marketUC)
		farmerH = farmerhandler.NewFarmerHandler(farmerUC)
	}

	// ルータ生成
	router := router.NewRouter(authH, marketH, catalogH, farmerH)

	// JWT_SECRETチェック（開発中の注意喚起）
	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	if err := router.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
