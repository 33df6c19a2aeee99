// Package usecase はマーケットインテリジェンスパイプラインのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"sync"

	"agri_backend/internal/feature/market/domain"
	"agri_backend/internal/feature/market/domain/entity"
	"agri_backend/internal/feature/market/domain/signal"
)

const (
	// MinPageSize はレコードページングの最小ページサイズです。
	MinPageSize = 10
	// MaxPageSize はレコードページングの最大ページサイズです。
	MaxPageSize = 200
	// DefaultPageSize はデフォルトのページサイズです。
	DefaultPageSize = 50
)

// RecordRepository は価格レコードの読み取りレイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type RecordRepository interface {
	// Find は (region, commodity) の全価格レコードを日付昇順で返します。
	// ソースが存在しない場合は domain.ErrSourceNotFound を返します。
	Find(ctx context.Context, region, commodity string) ([]entity.PriceRecord, error)
}

// Intelligence はパイプライン一式の出力（エンリッチ済みシグナル、推奨、
// トレンド系列）をまとめた結果です。
type Intelligence struct {
	Enriched       entity.EnrichedMarket
	Recommendation entity.Recommendation
	Series         []entity.TrendPoint
}

// RecordsPage はページングされた価格レコードとページングメタデータです。
type RecordsPage struct {
	Records    []entity.PriceRecord
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// marketUsecase はマーケットインテリジェンス操作のユースケースを定義します。
type marketUsecase struct {
	records RecordRepository
}

// NewMarketUsecase はmarketUsecaseの新しいインスタンスを生成します。
func NewMarketUsecase(records RecordRepository) *marketUsecase {
	return &marketUsecase{records: records}
}

// GetIntelligence は指定された地域と商品の価格レコードからトレンド系列・
// モメンタム・エンリッチ済みシグナルを導出し、売買推奨を合成します。
//
// 生レコードのロードとトレンド系列のロードは独立した2タスクとして並行実行され、
// 両方の完了（ジョインバリア）後に合成が走ります。2つのタスクは中間状態を
// 共有しません。
func (u *marketUsecase) GetIntelligence(ctx context.Context, region, commodity string, days int) (*Intelligence, error) {
	if days < 1 || days > signal.MaxTrendDays {
		return nil, fmt.Errorf("%w: days must be between 1 and %d, got %d",
			domain.ErrValidation, signal.MaxTrendDays, days)
	}

	var (
		wg        sync.WaitGroup
		raw       []entity.PriceRecord
		rawErr    error
		series    []entity.TrendPoint
		seriesErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		raw, rawErr = u.records.Find(ctx, region, commodity)
	}()
	go func() {
		defer wg.Done()
		records, err := u.records.Find(ctx, region, commodity)
		if err != nil {
			seriesErr = err
			return
		}
		series, seriesErr = signal.BuildSeries(records, days)
	}()
	wg.Wait()

	if rawErr != nil {
		return nil, rawErr
	}
	if seriesErr != nil {
		return nil, seriesErr
	}

	momentum := signal.ComputeMomentum(series)
	enriched := signal.Enrich(raw, series)
	enriched.Momentum = momentum
	// リクエストで指定された地域・商品を優先（レコードから拾えない場合の補完）
	if enriched.Region == "" {
		enriched.Region = region
	}
	if enriched.Commodity == "" {
		enriched.Commodity = commodity
	}

	recommendation := signal.Synthesize(enriched.Trend, enriched.BuyerSignal, momentum.Momentum)

	return &Intelligence{
		Enriched:       enriched,
		Recommendation: recommendation,
		Series:         series,
	}, nil
}

// GetRecords は正規化済みレコードをページングして返します。
// 範囲外のページは空のスライスを返します（エラーではありません）。
func (u *marketUsecase) GetRecords(ctx context.Context, region, commodity string, page, pageSize int) (*RecordsPage, error) {
	if page < 1 {
		return nil, fmt.Errorf("%w: page must be >= 1, got %d", domain.ErrValidation, page)
	}
	if pageSize < MinPageSize || pageSize > MaxPageSize {
		return nil, fmt.Errorf("%w: page_size must be between %d and %d, got %d",
			domain.ErrValidation, MinPageSize, MaxPageSize, pageSize)
	}

	records, err := u.records.Find(ctx, region, commodity)
	if err != nil {
		return nil, err
	}

	total := len(records)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	end := start + pageSize
	if start >= total {
		return &RecordsPage{
			Records:    []entity.PriceRecord{},
			Total:      total,
			Page:       page,
			PageSize:   pageSize,
			TotalPages: totalPages,
		}, nil
	}
	if end > total {
		end = total
	}

	return &RecordsPage{
		Records:    records[start:end],
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// GetRawRecords は正規化済みの全レコードをそのまま返します（レガシーAPI用）。
func (u *marketUsecase) GetRawRecords(ctx context.Context, region, commodity string) ([]entity.PriceRecord, error) {
	return u.records.Find(ctx, region, commodity)
}
