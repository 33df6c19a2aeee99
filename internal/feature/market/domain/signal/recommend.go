package signal

import "agri_backend/internal/feature/market/domain/entity"

// signalKey is the (trend, buyer_signal, momentum) triple the decision table
// is keyed by.
type signalKey struct {
	Trend    entity.Trend
	Buyer    entity.BuyerSignal
	Momentum entity.Momentum
}

// decision is one row of the decision table.
type decision struct {
	Action     entity.Action
	Confidence int
	Reason     string
}

// decisionTable maps every one of the 27 signal combinations to an action,
// base confidence and reason. Precedence when signals disagree: trend decides
// the action, momentum adjusts confidence (and decides for a stable trend),
// buyer signal fine-tunes confidence. Kept as an explicit table rather than
// nested conditionals so totality can be audited and tested combination by
// combination.
var decisionTable = map[signalKey]decision{
	// Uptrend: BUY. Momentum agreement raises confidence, opposition lowers it.
	{entity.TrendUp, entity.BuyerStrong, entity.MomentumRising}:  {entity.ActionBuy, 90, "uptrend confirmed by rising momentum and strong buyer interest"},
	{entity.TrendUp, entity.BuyerStable, entity.MomentumRising}:  {entity.ActionBuy, 80, "uptrend confirmed by rising momentum"},
	{entity.TrendUp, entity.BuyerWeak, entity.MomentumRising}:    {entity.ActionBuy, 70, "uptrend with rising momentum despite weak buyer interest"},
	{entity.TrendUp, entity.BuyerStrong, entity.MomentumNeutral}: {entity.ActionBuy, 75, "uptrend with strong buyer interest"},
	{entity.TrendUp, entity.BuyerStable, entity.MomentumNeutral}: {entity.ActionBuy, 70, "steady uptrend"},
	{entity.TrendUp, entity.BuyerWeak, entity.MomentumNeutral}:   {entity.ActionBuy, 60, "uptrend tempered by weak buyer interest"},
	{entity.TrendUp, entity.BuyerStrong, entity.MomentumFalling}: {entity.ActionBuy, 60, "uptrend against falling momentum; buyer interest still strong"},
	{entity.TrendUp, entity.BuyerStable, entity.MomentumFalling}: {entity.ActionBuy, 55, "uptrend against falling momentum"},
	{entity.TrendUp, entity.BuyerWeak, entity.MomentumFalling}:   {entity.ActionBuy, 45, "fading uptrend with falling momentum and weak buyer interest"},

	// Downtrend: SELL. Weak buyer interest strengthens the sell case.
	{entity.TrendDown, entity.BuyerWeak, entity.MomentumFalling}:   {entity.ActionSell, 90, "downtrend confirmed by falling momentum and weak buyer interest"},
	{entity.TrendDown, entity.BuyerStable, entity.MomentumFalling}: {entity.ActionSell, 80, "downtrend confirmed by falling momentum"},
	{entity.TrendDown, entity.BuyerStrong, entity.MomentumFalling}: {entity.ActionSell, 70, "downtrend with falling momentum despite strong buyer interest"},
	{entity.TrendDown, entity.BuyerWeak, entity.MomentumNeutral}:   {entity.ActionSell, 75, "downtrend with weak buyer interest"},
	{entity.TrendDown, entity.BuyerStable, entity.MomentumNeutral}: {entity.ActionSell, 70, "steady downtrend"},
	{entity.TrendDown, entity.BuyerStrong, entity.MomentumNeutral}: {entity.ActionSell, 60, "downtrend tempered by strong buyer interest"},
	{entity.TrendDown, entity.BuyerWeak, entity.MomentumRising}:    {entity.ActionSell, 60, "downtrend against rising momentum; buyer interest weak"},
	{entity.TrendDown, entity.BuyerStable, entity.MomentumRising}:  {entity.ActionSell, 55, "downtrend against rising momentum"},
	{entity.TrendDown, entity.BuyerStrong, entity.MomentumRising}:  {entity.ActionSell, 45, "fading downtrend with rising momentum and strong buyer interest"},

	// Stable trend: momentum decides the action at reduced confidence.
	{entity.TrendStable, entity.BuyerStrong, entity.MomentumRising}:  {entity.ActionBuy, 65, "flat trend but rising momentum and strong buyer interest"},
	{entity.TrendStable, entity.BuyerStable, entity.MomentumRising}:  {entity.ActionBuy, 60, "flat trend with rising momentum"},
	{entity.TrendStable, entity.BuyerWeak, entity.MomentumRising}:    {entity.ActionBuy, 50, "flat trend with rising momentum but weak buyer interest"},
	{entity.TrendStable, entity.BuyerWeak, entity.MomentumFalling}:   {entity.ActionSell, 65, "flat trend but falling momentum and weak buyer interest"},
	{entity.TrendStable, entity.BuyerStable, entity.MomentumFalling}: {entity.ActionSell, 60, "flat trend with falling momentum"},
	{entity.TrendStable, entity.BuyerStrong, entity.MomentumFalling}: {entity.ActionSell, 50, "flat trend with falling momentum but strong buyer interest"},
	{entity.TrendStable, entity.BuyerStable, entity.MomentumNeutral}: {entity.ActionHold, 80, "flat market with no momentum"},
	{entity.TrendStable, entity.BuyerStrong, entity.MomentumNeutral}: {entity.ActionHold, 70, "flat market; strong buyer interest not yet moving prices"},
	{entity.TrendStable, entity.BuyerWeak, entity.MomentumNeutral}:   {entity.ActionHold, 70, "flat market with weak buyer interest"},
}

// Synthesize maps a (trend, buyer_signal, momentum) triple to a trade
// recommendation via the decision table. Total over the valid enum space;
// any value outside it falls back to a low-confidence HOLD rather than
// failing. Confidence is clamped to [0, 100].
func Synthesize(trend entity.Trend, buyer entity.BuyerSignal, momentum entity.Momentum) entity.Recommendation {
	d, ok := decisionTable[signalKey{Trend: trend, Buyer: buyer, Momentum: momentum}]
	if !ok {
		return entity.Recommendation{Action: entity.ActionHold, Confidence: 40, Reason: "unrecognized signal combination"}
	}
	return entity.Recommendation{
		Action:     d.Action,
		Confidence: clampConfidence(d.Confidence),
		Reason:     d.Reason,
	}
}

func clampConfidence(c int) int {
	if c < 0 {
		return 0
	}
	if c > 100 {
		return 100
	}
	return c
}
