// Package di provides dependency injection factories for creating application components.
package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	catalogadapters "agri_backend/internal/feature/catalog/adapters"
	catalogusecase "agri_backend/internal/feature/catalog/usecase"
	marketadapters "agri_backend/internal/feature/market/adapters"
	"agri_backend/internal/feature/market/adapters/agmarknet"
	"agri_backend/internal/feature/market/adapters/csvstore"
	marketusecase "agri_backend/internal/feature/market/usecase"
	"agri_backend/internal/platform/cache"
	infrahttp "agri_backend/internal/platform/http"
)

// NewMandiClient creates a fully configured AGMARKNET client with HTTP client.
func NewMandiClient() *agmarknet.Client {
	cfg := agmarknet.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return agmarknet.NewClient(cfg, httpClient)
}

// NewRecordRepository creates a RecordRepository implementation.
// If a database is available, it returns a MySQL-backed repository wrapped
// with Redis caching. Otherwise, it falls back to the CSV store.
func NewRecordRepository(db *gorm.DB, rdb *redis.Client, csvDir string) marketusecase.RecordRepository {
	if db != nil {
		ttl := cache.TimeUntilNext6PM()
		return cache.NewCachingRecordRepository(rdb, ttl, marketadapters.NewRecordRepository(db), "records")
	}
	return csvstore.NewStore(csvDir)
}

// NewPairRepository creates a PairRepository implementation.
// If a database is available, it returns the MySQL-backed catalog.
// Otherwise, pairs are discovered by scanning the CSV store.
func NewPairRepository(db *gorm.DB, csvDir string) catalogusecase.PairRepository {
	if db != nil {
		return catalogadapters.NewPairRepository(db)
	}
	return catalogadapters.NewCSVCatalog(csvstore.NewStore(csvDir))
}
