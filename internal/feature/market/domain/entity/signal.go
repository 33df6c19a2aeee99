package entity

import "time"

// Trend は価格トレンドの分類を表します。
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// BuyerSignal は需要の強さの定性的な分類を表します。
type BuyerSignal string

const (
	BuyerStrong BuyerSignal = "Strong"
	BuyerStable BuyerSignal = "Stable"
	BuyerWeak   BuyerSignal = "Weak"
)

// RiskLevel は価格ボラティリティに基づくリスク分類を表します。
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
)

// Momentum は短期の価格モメンタムの方向を表します。
type Momentum string

const (
	MomentumRising  Momentum = "rising"
	MomentumFalling Momentum = "falling"
	MomentumNeutral Momentum = "neutral"
)

// Action は売買判断を表します。
type Action string

const (
	ActionBuy  Action = "BUY"
	ActionSell Action = "SELL"
	ActionHold Action = "HOLD"
)

// MomentumResult はトレンド系列の始点と終点から導出したモメンタムです。
// 派生値であり永続化されません。
type MomentumResult struct {
	Momentum     Momentum // rising / falling / neutral
	MagnitudePct float64  // 変化率（パーセント）
	WindowSize   int      // 計算に使用した系列の点数
}

// EnrichedMarket は生レコードとトレンド系列から導出した記述的シグナルの集合です。
// (region, commodity, as-of) ごとにリクエスト単位で再計算されます。
type EnrichedMarket struct {
	Region       string
	Commodity    string
	Trend        Trend
	BuyerSignal  BuyerSignal
	RiskLevel    RiskLevel
	LatestPrice  float64
	MinPrice     float64
	MaxPrice     float64
	AveragePrice float64
	VolatilityCV float64 // 変動係数（標準偏差 / 平均）
	RecordCount  int
	LatestDate   time.Time
	Momentum     MomentumResult
}

// Recommendation は (trend, buyer_signal, momentum) の純粋関数として
// 決定される売買推奨です。
type Recommendation struct {
	Action     Action
	Confidence int // 0–100
	Reason     string
}
