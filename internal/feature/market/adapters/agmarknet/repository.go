package agmarknet

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"agri_backend/internal/feature/market/adapters/agmarknet/dto"
	"agri_backend/internal/feature/market/domain/entity"
	"agri_backend/internal/feature/market/usecase"
)

// Client はdata.gov.inのAGMARKNETリソースから価格データを取得する
// MandiRepository実装です。
type Client struct {
	cfg    Config
	client *http.Client
}

// ClientがMandiRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MandiRepository = (*Client)(nil)

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// GetDailyPrices は指定された地域と商品の日次価格レコードを取得し、
// 正規化済みのPriceRecordスライスとして返します。地域キーは "State_District"
// 形式で、APIのstate/districtフィルタに分解されます。
func (a *Client) GetDailyPrices(ctx context.Context, region, commodity string, limit int) ([]entity.PriceRecord, error) {
	state, district, _ := strings.Cut(region, "_")

	q := url.Values{}
	q.Set("api-key", a.cfg.APIKey)
	q.Set("format", "json")
	q.Set("limit", strconv.Itoa(limit))
	q.Set("filters[state]", state)
	if district != "" {
		q.Set("filters[district]", district)
	}
	q.Set("filters[commodity]", commodity)

	u := fmt.Sprintf("%s?%s", a.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("agmarknet http %d", res.StatusCode)
	}

	var body dto.DailyPriceResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.Status == "error" {
		return nil, fmt.Errorf("agmarknet: %s", body.Message)
	}

	records := make([]entity.PriceRecord, 0, len(body.Records))
	for _, v := range body.Records {
		// 到着日をパース (DD/MM/YYYY)
		date, err := time.Parse("02/01/2006", v.ArrivalDate)
		if err != nil {
			return nil, fmt.Errorf("parse arrival_date %q: %w", v.ArrivalDate, err)
		}
		minP, err := strconv.ParseFloat(v.MinPrice, 64)
		if err != nil {
			return nil, fmt.Errorf("parse min_price %q: %w", v.MinPrice, err)
		}
		maxP, err := strconv.ParseFloat(v.MaxPrice, 64)
		if err != nil {
			return nil, fmt.Errorf("parse max_price %q: %w", v.MaxPrice, err)
		}
		modal, err := strconv.ParseFloat(v.ModalPrice, 64)
		if err != nil {
			return nil, fmt.Errorf("parse modal_price %q: %w", v.ModalPrice, err)
		}

		records = append(records, entity.PriceRecord{
			Date:       date,
			Region:     region,
			Commodity:  v.Commodity,
			MinPrice:   minP,
			MaxPrice:   maxP,
			ModalPrice: modal,
		})
	}
	return records, nil
}
