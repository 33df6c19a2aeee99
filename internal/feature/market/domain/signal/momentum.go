package signal

import "agri_backend/internal/feature/market/domain/entity"

// MomentumThresholdPct is the percent change the window must strictly exceed
// before momentum leaves neutral. Exactly +/-2.0 classifies as neutral.
const MomentumThresholdPct = 2.0

// ComputeMomentum compares the earliest and latest points of a trend series.
// A series of length 0 or 1 degrades to neutral with zero magnitude; an
// earliest price of zero is guarded the same way. Never fails.
func ComputeMomentum(series []entity.TrendPoint) entity.MomentumResult {
	n := len(series)
	if n <= 1 {
		return entity.MomentumResult{Momentum: entity.MomentumNeutral, MagnitudePct: 0, WindowSize: n}
	}

	earliest := series[0].Price
	latest := series[n-1].Price
	if earliest == 0 {
		return entity.MomentumResult{Momentum: entity.MomentumNeutral, MagnitudePct: 0, WindowSize: n}
	}

	magnitude := (latest - earliest) / earliest * 100

	m := entity.MomentumNeutral
	switch {
	case magnitude > MomentumThresholdPct:
		m = entity.MomentumRising
	case magnitude < -MomentumThresholdPct:
		m = entity.MomentumFalling
	}

	return entity.MomentumResult{Momentum: m, MagnitudePct: magnitude, WindowSize: n}
}
