package signal

import (
	"math"

	"agri_backend/internal/feature/market/domain/entity"
)

const (
	// TrendTolerancePct is the percent gap between the first-half and
	// second-half means the series must exceed before the trend leaves stable.
	TrendTolerancePct = 0.5

	// BuyerSpreadTolerancePct is the relative change in mean price spread
	// between window halves that separates Strong/Weak from Stable.
	BuyerSpreadTolerancePct = 10.0

	// RiskLowCV and RiskHighCV are the coefficient-of-variation bounds for
	// the Low / Moderate / High risk classification.
	RiskLowCV  = 0.05
	RiskHighCV = 0.15
)

// Enrich derives descriptive market signals from the raw record set plus the
// trend series. Pure and total: identical inputs always yield identical
// output, and every input maps to exactly one classification. The momentum
// field is left zero-valued; the usecase attaches it after computation.
func Enrich(records []entity.PriceRecord, series []entity.TrendPoint) entity.EnrichedMarket {
	e := entity.EnrichedMarket{
		Trend:       ClassifyTrend(series),
		BuyerSignal: ClassifyBuyerSignal(records),
		RiskLevel:   ClassifyRisk(records),
		RecordCount: len(records),
	}

	if len(records) == 0 {
		return e
	}

	e.Region = records[0].Region
	e.Commodity = records[0].Commodity

	latest := records[len(records)-1]
	e.LatestPrice = latest.ModalPrice
	e.LatestDate = latest.Date

	e.MinPrice = records[0].MinPrice
	e.MaxPrice = records[0].MaxPrice
	sum := 0.0
	for _, r := range records {
		if r.MinPrice < e.MinPrice {
			e.MinPrice = r.MinPrice
		}
		if r.MaxPrice > e.MaxPrice {
			e.MaxPrice = r.MaxPrice
		}
		sum += r.ModalPrice
	}
	e.AveragePrice = sum / float64(len(records))
	e.VolatilityCV = coefficientOfVariation(records)

	return e
}

// ClassifyTrend compares the mean of the first half of the series against the
// second half (first vs last point when the series has 3 points or fewer).
// The gap must exceed TrendTolerancePct of the first-half mean.
func ClassifyTrend(series []entity.TrendPoint) entity.Trend {
	n := len(series)
	if n < 2 {
		return entity.TrendStable
	}

	var first, second float64
	if n <= 3 {
		first = series[0].Price
		second = series[n-1].Price
	} else {
		half := n / 2
		first = meanPrice(series[:half])
		second = meanPrice(series[half:])
	}

	if first == 0 {
		if second > 0 {
			return entity.TrendUp
		}
		return entity.TrendStable
	}

	diffPct := (second - first) / first * 100
	switch {
	case diffPct > TrendTolerancePct:
		return entity.TrendUp
	case diffPct < -TrendTolerancePct:
		return entity.TrendDown
	default:
		return entity.TrendStable
	}
}

// ClassifyBuyerSignal derives a demand proxy from price-spread dispersion and
// arrival volume. The record window is split in half and the halves compared:
//
//   - mean spread ((max-min)/modal) rising beyond tolerance with non-falling
//     volume -> Strong
//   - mean spread falling beyond tolerance with non-rising volume -> Weak
//   - anything else -> Stable
//
// Records without a volume column make the volume comparison flat, which
// satisfies both "non-falling" and "non-rising".
func ClassifyBuyerSignal(records []entity.PriceRecord) entity.BuyerSignal {
	n := len(records)
	if n < 2 {
		return entity.BuyerStable
	}

	half := n / 2
	s1 := meanSpread(records[:half])
	s2 := meanSpread(records[half:])
	v1, ok1 := meanVolume(records[:half])
	v2, ok2 := meanVolume(records[half:])

	volumeFalling := ok1 && ok2 && v2 < v1
	volumeRising := ok1 && ok2 && v2 > v1

	var spreadChangePct float64
	switch {
	case s1 > 0:
		spreadChangePct = (s2 - s1) / s1 * 100
	case s2 > 0:
		spreadChangePct = BuyerSpreadTolerancePct + 1 // from zero spread, any spread counts as rising
	}

	switch {
	case spreadChangePct > BuyerSpreadTolerancePct && !volumeFalling:
		return entity.BuyerStrong
	case spreadChangePct < -BuyerSpreadTolerancePct && !volumeRising:
		return entity.BuyerWeak
	default:
		return entity.BuyerStable
	}
}

// ClassifyRisk maps the coefficient of variation of modal prices to a risk
// level. Fewer than two records or a non-positive mean default to Moderate.
func ClassifyRisk(records []entity.PriceRecord) entity.RiskLevel {
	if len(records) < 2 {
		return entity.RiskModerate
	}
	cv := coefficientOfVariation(records)
	switch {
	case cv < 0:
		return entity.RiskModerate
	case cv < RiskLowCV:
		return entity.RiskLow
	case cv >= RiskHighCV:
		return entity.RiskHigh
	default:
		return entity.RiskModerate
	}
}

// coefficientOfVariation returns stddev/mean of modal prices, or -1 when the
// mean is not positive.
func coefficientOfVariation(records []entity.PriceRecord) float64 {
	n := float64(len(records))
	if n == 0 {
		return -1
	}
	sum := 0.0
	for _, r := range records {
		sum += r.ModalPrice
	}
	mean := sum / n
	if mean <= 0 {
		return -1
	}
	variance := 0.0
	for _, r := range records {
		d := r.ModalPrice - mean
		variance += d * d
	}
	variance /= n
	return math.Sqrt(variance) / mean
}

func meanPrice(points []entity.TrendPoint) float64 {
	if len(points) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range points {
		sum += p.Price
	}
	return sum / float64(len(points))
}

// meanSpread averages (max-min)/modal over records with a positive modal
// price. Records with a zero modal price are skipped.
func meanSpread(records []entity.PriceRecord) float64 {
	sum := 0.0
	count := 0
	for _, r := range records {
		if r.ModalPrice <= 0 {
			continue
		}
		sum += (r.MaxPrice - r.MinPrice) / r.ModalPrice
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// meanVolume averages arrival volume over records that reported one. The
// second return value is false when no record in the slice carried volume.
func meanVolume(records []entity.PriceRecord) (float64, bool) {
	sum := 0.0
	count := 0
	for _, r := range records {
		if !r.HasVolume {
			continue
		}
		sum += r.Volume
		count++
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}
