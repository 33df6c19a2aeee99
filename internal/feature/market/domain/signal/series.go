// Package signal implements the pure derivation functions of the market
// intelligence pipeline: trend series, momentum, enrichment and the trade
// recommendation decision table. Every function here is deterministic and
// total over well-formed input.
package signal

import (
	"sort"
	"time"

	"agri_backend/internal/feature/market/domain"
	"agri_backend/internal/feature/market/domain/entity"
)

const (
	// MaxTrendDays はトレンド系列の最大ウィンドウ幅（日数）です。
	MaxTrendDays = 30
	// DefaultTrendDays はトレンド系列のデフォルトウィンドウ幅です。
	DefaultTrendDays = 14
)

// BuildSeries は直近 days 日分（存在する分だけ）のトレンド系列を抽出します。
// 日付は昇順、重複日付は最初に出現したレコードを採用します。欠損日を補完する
// ことはありません。レコードがゼロ件の場合のみ ErrInsufficientData を返します。
func BuildSeries(records []entity.PriceRecord, days int) ([]entity.TrendPoint, error) {
	if len(records) == 0 {
		return nil, domain.ErrInsufficientData
	}

	// 日付ごとに最初のレコードのモーダル価格を採用
	prices := make(map[time.Time]float64, len(records))
	dates := make([]time.Time, 0, len(records))
	for _, r := range records {
		d := dateOnly(r.Date)
		if _, ok := prices[d]; ok {
			continue
		}
		prices[d] = r.ModalPrice
		dates = append(dates, d)
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	// 直近 days 日分の日付のみ残す
	if len(dates) > days {
		dates = dates[len(dates)-days:]
	}

	series := make([]entity.TrendPoint, 0, len(dates))
	for _, d := range dates {
		series = append(series, entity.TrendPoint{Date: d, Price: prices[d]})
	}
	return series, nil
}

// dateOnly は時刻成分を落とした UTC 日付を返します。
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
