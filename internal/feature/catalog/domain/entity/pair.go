// Package entity defines the domain models for the catalog feature.
package entity

import "strings"

// MarketPair is one (region, commodity) combination a price source exists
// for. Region keys follow the "State_District" convention of the CSV store.
type MarketPair struct {
	Region    string // e.g., "Kerala_Kottayam"
	Commodity string // e.g., "Banana"
	Active    bool   // inactive pairs are skipped by the ingest job
}

// State returns the state part of the region key, or the whole key when it
// has no district suffix.
func (p MarketPair) State() string {
	state, _, _ := strings.Cut(p.Region, "_")
	return state
}

// District returns the district part of the region key, or "" when the key
// has no district suffix.
func (p MarketPair) District() string {
	_, district, _ := strings.Cut(p.Region, "_")
	return district
}
