// Package entity defines the domain models for the market feature.
package entity

import "time"

// PriceRecord is one mandi price observation for a commodity in a region.
// Records are immutable once loaded and identified by (region, commodity, date).
type PriceRecord struct {
	Date       time.Time // Reporting date of the observation
	Region     string    // Region key (e.g., "Kerala_Kottayam")
	Commodity  string    // Commodity name (e.g., "Banana")
	MinPrice   float64   // Lowest transaction price of the day
	MaxPrice   float64   // Highest transaction price of the day
	ModalPrice float64   // Most frequent transaction price of the day
	Volume     float64   // Arrival volume in quintals; 0 when the source has none
	HasVolume  bool      // Whether the source reported a volume column
}

// TrendPoint is a projection of PriceRecord.ModalPrice over a bounded window.
type TrendPoint struct {
	Date  time.Time
	Price float64
}
