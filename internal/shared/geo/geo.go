// Package geo は州名から代表座標を解決するヘルパーを提供します。
package geo

import (
	"fmt"
	"strings"
)

// ErrUnknownState is returned when a state has no coordinate entry.
var ErrUnknownState = fmt.Errorf("unknown state")

// stateCoords は主要な州の重心座標テーブルです（WGS84、度単位）。
var stateCoords = map[string]struct{ lat, lon float64 }{
	"andhra pradesh":   {15.9129, 79.7400},
	"assam":            {26.2006, 92.9376},
	"bihar":            {25.0961, 85.3131},
	"chhattisgarh":     {21.2787, 81.8661},
	"gujarat":          {22.2587, 71.1924},
	"haryana":          {29.0588, 76.0856},
	"himachal pradesh": {31.1048, 77.1734},
	"jharkhand":        {23.6102, 85.2799},
	"karnataka":        {15.3173, 75.7139},
	"kerala":           {10.8505, 76.2711},
	"madhya pradesh":   {22.9734, 78.6569},
	"maharashtra":      {19.7515, 75.7139},
	"odisha":           {20.9517, 85.0985},
	"punjab":           {31.1471, 75.3412},
	"rajasthan":        {27.0238, 74.2179},
	"tamil nadu":       {11.1271, 78.6569},
	"telangana":        {18.1124, 79.0193},
	"uttar pradesh":    {26.8467, 80.9462},
	"uttarakhand":      {30.0668, 79.0193},
	"west bengal":      {22.9868, 87.8550},
}

// ResolveCoordinates は州名から緯度・経度を返します。
// 大文字小文字とアンダースコア区切りを許容します（"Tamil_Nadu" 等）。
func ResolveCoordinates(state string) (lat, lon float64, err error) {
	key := strings.ToLower(strings.TrimSpace(strings.ReplaceAll(state, "_", " ")))
	c, ok := stateCoords[key]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %s", ErrUnknownState, state)
	}
	return c.lat, c.lon, nil
}
