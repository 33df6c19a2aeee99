// Package dto defines the wire shapes of the data.gov.in mandi price resource.
package dto

// DailyPriceResponse は日次価格リソースのレスポンスDTOです。
// data.gov.in は数値もすべて文字列で返します。
type DailyPriceResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Total   int               `json:"total"`
	Count   int               `json:"count"`
	Records []DailyPriceEntry `json:"records"`
}

// DailyPriceEntry は1件の市場価格レコードです。
type DailyPriceEntry struct {
	State       string `json:"state"`        // 州
	District    string `json:"district"`     // 県
	Market      string `json:"market"`       // 市場
	Commodity   string `json:"commodity"`    // 商品
	Variety     string `json:"variety"`      // 品種
	ArrivalDate string `json:"arrival_date"` // 到着日 (DD/MM/YYYY)
	MinPrice    string `json:"min_price"`    // 最安値 (Rs./quintal)
	MaxPrice    string `json:"max_price"`    // 最高値 (Rs./quintal)
	ModalPrice  string `json:"modal_price"`  // 最頻値 (Rs./quintal)
}
