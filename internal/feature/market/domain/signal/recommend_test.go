package signal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"agri_backend/internal/feature/market/domain/entity"
	"agri_backend/internal/feature/market/domain/signal"
)

var (
	allTrends  = []entity.Trend{entity.TrendUp, entity.TrendDown, entity.TrendStable}
	allBuyers  = []entity.BuyerSignal{entity.BuyerStrong, entity.BuyerStable, entity.BuyerWeak}
	allMomenta = []entity.Momentum{entity.MomentumRising, entity.MomentumFalling, entity.MomentumNeutral}
)

// TestSynthesize_Totality は27通りすべての組み合わせで有効な推奨が返る
// ことを検証します（全域性は正当性要件）。
func TestSynthesize_Totality(t *testing.T) {
	t.Parallel()

	for _, tr := range allTrends {
		for _, b := range allBuyers {
			for _, m := range allMomenta {
				rec := signal.Synthesize(tr, b, m)

				assert.Contains(t,
					[]entity.Action{entity.ActionBuy, entity.ActionSell, entity.ActionHold},
					rec.Action,
					"trend=%s buyer=%s momentum=%s", tr, b, m)
				assert.GreaterOrEqual(t, rec.Confidence, 0,
					"trend=%s buyer=%s momentum=%s", tr, b, m)
				assert.LessOrEqual(t, rec.Confidence, 100,
					"trend=%s buyer=%s momentum=%s", tr, b, m)
				assert.NotEmpty(t, rec.Reason,
					"trend=%s buyer=%s momentum=%s", tr, b, m)
			}
		}
	}
}

// TestSynthesize_TrendDecidesAction はトレンドがアクションの第一決定要因で
// あることを固定します。モメンタムと買い手シグナルは up/down では信頼度のみを
// 変化させます。
func TestSynthesize_TrendDecidesAction(t *testing.T) {
	t.Parallel()

	for _, b := range allBuyers {
		for _, m := range allMomenta {
			assert.Equal(t, entity.ActionBuy,
				signal.Synthesize(entity.TrendUp, b, m).Action,
				"uptrend must always recommend BUY (buyer=%s momentum=%s)", b, m)
			assert.Equal(t, entity.ActionSell,
				signal.Synthesize(entity.TrendDown, b, m).Action,
				"downtrend must always recommend SELL (buyer=%s momentum=%s)", b, m)
		}
	}
}

// TestSynthesize_MomentumDecidesForStableTrend はトレンドが stable のとき
// モメンタムが第二決定要因としてアクションを決めることを固定します。
func TestSynthesize_MomentumDecidesForStableTrend(t *testing.T) {
	t.Parallel()

	for _, b := range allBuyers {
		assert.Equal(t, entity.ActionBuy,
			signal.Synthesize(entity.TrendStable, b, entity.MomentumRising).Action)
		assert.Equal(t, entity.ActionSell,
			signal.Synthesize(entity.TrendStable, b, entity.MomentumFalling).Action)
		assert.Equal(t, entity.ActionHold,
			signal.Synthesize(entity.TrendStable, b, entity.MomentumNeutral).Action)
	}
}

func TestSynthesize_ConfidenceOrdering(t *testing.T) {
	t.Parallel()

	// モメンタムの一致は信頼度を上げ、不一致は下げる
	aligned := signal.Synthesize(entity.TrendUp, entity.BuyerStable, entity.MomentumRising)
	neutral := signal.Synthesize(entity.TrendUp, entity.BuyerStable, entity.MomentumNeutral)
	opposed := signal.Synthesize(entity.TrendUp, entity.BuyerStable, entity.MomentumFalling)
	assert.Greater(t, aligned.Confidence, neutral.Confidence)
	assert.Greater(t, neutral.Confidence, opposed.Confidence)

	// 買い手シグナルは第三の微調整要因
	strong := signal.Synthesize(entity.TrendUp, entity.BuyerStrong, entity.MomentumRising)
	weak := signal.Synthesize(entity.TrendUp, entity.BuyerWeak, entity.MomentumRising)
	assert.Greater(t, strong.Confidence, aligned.Confidence)
	assert.Greater(t, aligned.Confidence, weak.Confidence)
}

func TestSynthesize_FullAlignmentIsConfident(t *testing.T) {
	t.Parallel()

	rec := signal.Synthesize(entity.TrendUp, entity.BuyerStrong, entity.MomentumRising)
	assert.Equal(t, entity.ActionBuy, rec.Action)
	assert.Greater(t, rec.Confidence, 50)

	rec = signal.Synthesize(entity.TrendDown, entity.BuyerWeak, entity.MomentumFalling)
	assert.Equal(t, entity.ActionSell, rec.Action)
	assert.Greater(t, rec.Confidence, 50)
}

// TestSynthesize_UnknownEnumFallsBack は列挙外の値でも失敗せず低信頼度の
// HOLD に倒れることを検証します。
func TestSynthesize_UnknownEnumFallsBack(t *testing.T) {
	t.Parallel()

	rec := signal.Synthesize(entity.Trend("sideways"), entity.BuyerStable, entity.MomentumNeutral)
	assert.Equal(t, entity.ActionHold, rec.Action)
	assert.Equal(t, 40, rec.Confidence)
}

// TestSynthesize_Deterministic は同一入力に対して常に同一出力となることを
// 検証します。
func TestSynthesize_Deterministic(t *testing.T) {
	t.Parallel()

	for _, tr := range allTrends {
		for _, b := range allBuyers {
			for _, m := range allMomenta {
				first := signal.Synthesize(tr, b, m)
				second := signal.Synthesize(tr, b, m)
				assert.Equal(t, first, second)
			}
		}
	}
}
