package main

import (
	"context"
	"flag"
	"log"
	"time"

	"agri_backend/internal/app/di"
	catalogusecase "agri_backend/internal/feature/catalog/usecase"
	marketadapters "agri_backend/internal/feature/market/adapters"
	"agri_backend/internal/feature/market/adapters/csvstore"
	marketusecase "agri_backend/internal/feature/market/usecase"
	infradb "agri_backend/internal/platform/db"
	"agri_backend/internal/shared/ratelimiter"
)

func main() {
	// --dir 指定時はAPIの代わりにCSVディレクトリから取り込む
	csvDir := flag.String("dir", "", "import price records from a CSV directory instead of the API")
	flag.Parse()

	db := infradb.OpenDB()
	recordStore := marketadapters.NewRecordRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if *csvDir != "" {
		importCSV(ctx, *csvDir, recordStore)
		return
	}

	mandiRepo := di.NewMandiClient()
	pairRepo := di.NewPairRepository(db, "")
	catalogUC := catalogusecase.NewCatalogUsecase(pairRepo)
	rl := ratelimiter.NewRateLimiter(8, time.Minute) // 1分に8回まで
	uc := marketusecase.NewIngestUsecase(mandiRepo, recordStore, rl)

	pairs, err := catalogUC.ListActivePairs(ctx)
	if err != nil {
		log.Fatal("failed to load market pairs:", err)
	}

	if err := uc.IngestAll(ctx, pairs); err != nil {
		log.Fatal(err)
	}
	log.Println("ingest ok")
}

// importCSV はCSVディレクトリの全地域ファイルをデータベースへ取り込みます。
func importCSV(ctx context.Context, dir string, store marketusecase.RecordStore) {
	s := csvstore.NewStore(dir)

	regions, err := s.Regions()
	if err != nil {
		log.Fatal("failed to list regions:", err)
	}

	for _, region := range regions {
		records, err := s.LoadRegion(ctx, region)
		if err != nil {
			log.Fatal("failed to load region:", err)
		}
		if err := store.UpsertBatch(ctx, records); err != nil {
			log.Fatal("failed to upsert records:", err)
		}
		log.Printf("imported %d records for %s", len(records), region)
	}
	log.Println("import ok")
}
