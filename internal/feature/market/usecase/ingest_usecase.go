package usecase

import (
	"context"
	"log/slog"

	catalogentity "agri_backend/internal/feature/catalog/domain/entity"
	"agri_backend/internal/feature/market/domain/entity"
	"agri_backend/internal/shared/ratelimiter"
)

// ingestFetchLimit は1回のリクエストで取得するレコード件数です。
const ingestFetchLimit = 500

// MandiRepository は外部APIから市場価格データを取得するリポジトリの
// インターフェイスです。外部APIの実装を抽象化します。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type MandiRepository interface {
	GetDailyPrices(ctx context.Context, region, commodity string, limit int) ([]entity.PriceRecord, error)
}

// RecordStore は価格レコードの書き込みレイヤーを抽象化します。
type RecordStore interface {
	UpsertBatch(ctx context.Context, records []entity.PriceRecord) error
}

// IngestUsecase は外部APIからデータを取得し、データベースに永続化する
// ユースケースを定義します。
type IngestUsecase struct {
	mandi       MandiRepository
	store       RecordStore
	rateLimiter ratelimiter.RateLimiterInterface
}

// NewIngestUsecase は新しい IngestUsecase を作成します。
func NewIngestUsecase(mandi MandiRepository, store RecordStore, rateLimiter ratelimiter.RateLimiterInterface) *IngestUsecase {
	return &IngestUsecase{mandi: mandi, store: store, rateLimiter: rateLimiter}
}

// ingestOne は指定されたペアの日次価格を外部リポジトリから取得し、
// データベースに一括で挿入（または更新）します。
func (iu *IngestUsecase) ingestOne(ctx context.Context, region, commodity string) error {
	records, err := iu.mandi.GetDailyPrices(ctx, region, commodity, ingestFetchLimit)
	if err != nil {
		return err
	}
	return iu.store.UpsertBatch(ctx, records)
}

// IngestAll はカタログ上の全アクティブペアの日次価格を取得し、データベースに
// 永続化します。APIのレートリミットを考慮して、リクエスト間に適切な待機時間を
// 設けます。
func (iu *IngestUsecase) IngestAll(ctx context.Context, pairs []catalogentity.MarketPair) error {
	for _, p := range pairs {
		iu.rateLimiter.WaitIfNeeded()
		if err := iu.ingestOne(ctx, p.Region, p.Commodity); err != nil {
			// 1つのペアでエラーが発生しても処理を止めずにログに出力し、次の処理を続ける
			slog.Error("failed to ingest mandi prices", "region", p.Region, "commodity", p.Commodity, "error", err)
			continue
		}
	}
	return nil
}
