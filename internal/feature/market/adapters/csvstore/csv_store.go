// Package csvstore reads mandi price records from a directory of uploaded
// CSV files. Each file is named after its region key ("State_District.csv")
// and holds daily rows for one or more commodities. Column headers vary
// between uploads (AGMARKNET exports, portal downloads, hand-edited sheets),
// so headers and price units are normalized into the fixed PriceRecord shape.
package csvstore

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"agri_backend/internal/feature/market/domain"
	"agri_backend/internal/feature/market/domain/entity"
	"agri_backend/internal/feature/market/usecase"
)

// Store serves price records straight from a CSV directory. Read-only; the
// result for one file is deterministic for identical file contents.
type Store struct {
	dir string
}

var _ usecase.RecordRepository = (*Store)(nil)

// NewStore creates a Store reading from the given directory.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Find は region のCSVファイルから commodity の全レコードを日付昇順で返します。
// ファイルが存在しない場合は domain.ErrSourceNotFound、存在するが該当商品の
// 行がない場合は空スライスを返します。
func (s *Store) Find(ctx context.Context, region, commodity string) ([]entity.PriceRecord, error) {
	all, err := s.LoadRegion(ctx, region)
	if err != nil {
		return nil, err
	}
	out := make([]entity.PriceRecord, 0, len(all))
	for _, r := range all {
		if strings.EqualFold(r.Commodity, commodity) {
			out = append(out, r)
		}
	}
	return out, nil
}

// LoadRegion reads every row of a region file, normalized and sorted
// ascending by date (stable on ties, preserving file order).
func (s *Store) LoadRegion(_ context.Context, region string) ([]entity.PriceRecord, error) {
	path := filepath.Join(s.dir, region+".csv")
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: region %q", domain.ErrSourceNotFound, region)
		}
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // 行ごとの列数ゆらぎを許容
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}
	cols, err := mapColumns(header)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var records []entity.PriceRecord
	for {
		row, err := reader.Read()
		if err != nil {
			break // io.EOF またはパース不能行で読み取り終了
		}
		rec, ok := cols.parseRow(row, region)
		if !ok {
			continue // 日付や価格が読めない行はスキップ
		}
		records = append(records, rec)
	}

	// 日付昇順、同日付はファイル内の出現順を維持
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})
	return records, nil
}

// Regions lists the region keys present in the directory.
func (s *Store) Regions() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	regions := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".csv") {
			continue
		}
		regions = append(regions, strings.TrimSuffix(name, ".csv"))
	}
	sort.Strings(regions)
	return regions, nil
}

// columnMap holds the resolved index (and unit factor) of each logical column.
type columnMap struct {
	date      int
	commodity int
	minPrice  int
	maxPrice  int
	modal     int
	volume    int // -1 if the source has no volume column

	priceFactor float64 // multiplied into prices (per-kg sources -> per-quintal)
}

// columnAliases maps normalized header names to logical columns.
var columnAliases = map[string]string{
	"arrival date":  "date",
	"price date":    "date",
	"reported date": "date",
	"date":          "date",

	"commodity": "commodity",
	"item":      "commodity",

	"min price":     "min",
	"minimum price": "min",
	"max price":     "max",
	"maximum price": "max",
	"modal price":   "modal",

	"arrivals": "volume",
	"arrival":  "volume",
	"volume":   "volume",
}

// mapColumns resolves heterogeneous headers to the fixed record shape.
// Required: date, commodity, min/max/modal price. Volume is optional.
func mapColumns(header []string) (*columnMap, error) {
	cols := &columnMap{date: -1, commodity: -1, minPrice: -1, maxPrice: -1, modal: -1, volume: -1, priceFactor: 1}
	for i, raw := range header {
		name, factor := normalizeHeader(raw)
		logical, ok := columnAliases[name]
		if !ok {
			continue
		}
		switch logical {
		case "date":
			cols.date = i
		case "commodity":
			cols.commodity = i
		case "min":
			cols.minPrice = i
			cols.priceFactor = factor
		case "max":
			cols.maxPrice = i
		case "modal":
			cols.modal = i
		case "volume":
			cols.volume = i
		}
	}
	if cols.date < 0 || cols.commodity < 0 || cols.minPrice < 0 || cols.maxPrice < 0 || cols.modal < 0 {
		return nil, fmt.Errorf("unrecognized CSV header: %v", header)
	}
	return cols, nil
}

// normalizeHeader lowercases a header, strips AGMARKNET escapes and unit
// suffixes, and reports the unit factor implied by the suffix.
func normalizeHeader(raw string) (string, float64) {
	h := strings.ToLower(strings.TrimSpace(raw))
	h = strings.ReplaceAll(h, "_x0020_", " ")
	h = strings.ReplaceAll(h, "_", " ")

	factor := 1.0
	if i := strings.IndexByte(h, '('); i >= 0 {
		unit := h[i:]
		h = strings.TrimSpace(h[:i])
		// 県単位のCSVには kg 建ての価格列を持つものがある
		if strings.Contains(unit, "/kg") || strings.Contains(unit, "per kg") {
			factor = 100 // quintal = 100 kg
		}
	}
	return strings.Join(strings.Fields(h), " "), factor
}

// dateFormats は実データで観測された日付表現です。
var dateFormats = []string{"02/01/2006", "2006-01-02", "02-01-2006"}

func (c *columnMap) parseRow(row []string, region string) (entity.PriceRecord, bool) {
	get := func(i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var date time.Time
	var err error
	for _, layout := range dateFormats {
		date, err = time.Parse(layout, get(c.date))
		if err == nil {
			break
		}
	}
	if err != nil {
		return entity.PriceRecord{}, false
	}

	minP, okMin := parsePrice(get(c.minPrice))
	maxP, okMax := parsePrice(get(c.maxPrice))
	modal, okModal := parsePrice(get(c.modal))
	if !okMin || !okMax || !okModal {
		return entity.PriceRecord{}, false
	}

	rec := entity.PriceRecord{
		Date:       date,
		Region:     region,
		Commodity:  get(c.commodity),
		MinPrice:   minP * c.priceFactor,
		MaxPrice:   maxP * c.priceFactor,
		ModalPrice: modal * c.priceFactor,
	}
	if c.volume >= 0 {
		if v, ok := parsePrice(get(c.volume)); ok {
			rec.Volume = v
			rec.HasVolume = true
		}
	}
	return rec, true
}

// parsePrice parses a numeric cell, tolerating thousands separators.
// "NR" (not reported) and empty cells fail the parse.
func parsePrice(s string) (float64, bool) {
	s = strings.ReplaceAll(s, ",", "")
	if s == "" || strings.EqualFold(s, "nr") {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}
