package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	catalogentity "agri_backend/internal/feature/catalog/domain/entity"
	"agri_backend/internal/feature/market/domain/entity"
)

var (
	ErrMandiAPI = errors.New("mandi API error")
	ErrDB       = errors.New("database error")
)

// mockMandiRepository is a mock implementation of the MandiRepository interface.
type mockMandiRepository struct {
	GetDailyPricesFunc  func(ctx context.Context, region, commodity string, limit int) ([]entity.PriceRecord, error)
	GetDailyPricesCalls int
}

func (m *mockMandiRepository) GetDailyPrices(ctx context.Context, region, commodity string, limit int) ([]entity.PriceRecord, error) {
	m.GetDailyPricesCalls++
	if m.GetDailyPricesFunc != nil {
		return m.GetDailyPricesFunc(ctx, region, commodity, limit)
	}
	return nil, errors.New("GetDailyPricesFunc is not implemented")
}

// mockRecordStore is a mock implementation of the RecordStore interface.
type mockRecordStore struct {
	UpsertBatchFunc  func(ctx context.Context, records []entity.PriceRecord) error
	UpsertBatchCalls int
}

func (m *mockRecordStore) UpsertBatch(ctx context.Context, records []entity.PriceRecord) error {
	m.UpsertBatchCalls++
	if m.UpsertBatchFunc != nil {
		return m.UpsertBatchFunc(ctx, records)
	}
	return nil
}

// mockRateLimiter is a mock implementation of the RateLimiterInterface.
type mockRateLimiter struct {
	WaitIfNeededCalls int
}

func (m *mockRateLimiter) WaitIfNeeded() {
	m.WaitIfNeededCalls++
	// For testing purposes, return immediately without waiting
}

func TestIngestUsecase_ingestOne(t *testing.T) {
	ctx := context.Background()
	testDate := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	mockRecords := []entity.PriceRecord{
		{Date: testDate, Region: "Kerala_Kottayam", Commodity: "Banana", MinPrice: 2600, MaxPrice: 3000, ModalPrice: 2800},
		{Date: testDate.AddDate(0, 0, -1), Region: "Kerala_Kottayam", Commodity: "Banana", MinPrice: 2500, MaxPrice: 2900, ModalPrice: 2700},
	}

	testCases := []struct {
		name                   string
		inputRegion            string
		inputCommodity         string
		mockGetDailyPricesFunc func(ctx context.Context, region, commodity string, limit int) ([]entity.PriceRecord, error)
		mockUpsertBatchFunc    func(ctx context.Context, records []entity.PriceRecord) error
		expectedErr            error
		verifyRecords          func(t *testing.T, records []entity.PriceRecord)
	}{
		{
			name:           "success: data fetch and save succeed",
			inputRegion:    "Kerala_Kottayam",
			inputCommodity: "Banana",
			mockGetDailyPricesFunc: func(ctx context.Context, region, commodity string, limit int) ([]entity.PriceRecord, error) {
				if region != "Kerala_Kottayam" || commodity != "Banana" || limit != 500 {
					t.Errorf("GetDailyPrices called with unexpected params: got region=%s, commodity=%s, limit=%d", region, commodity, limit)
				}
				return mockRecords, nil
			},
			mockUpsertBatchFunc: func(ctx context.Context, records []entity.PriceRecord) error {
				return nil
			},
			expectedErr: nil,
			verifyRecords: func(t *testing.T, records []entity.PriceRecord) {
				if len(records) != 2 {
					t.Errorf("records count mismatch: got %d, want 2", len(records))
				}
			},
		},
		{
			name:           "error: MandiRepository returns error",
			inputRegion:    "Punjab_Ludhiana",
			inputCommodity: "Wheat",
			mockGetDailyPricesFunc: func(ctx context.Context, region, commodity string, limit int) ([]entity.PriceRecord, error) {
				return nil, ErrMandiAPI
			},
			mockUpsertBatchFunc: func(ctx context.Context, records []entity.PriceRecord) error {
				t.Error("UpsertBatch should not be called")
				return nil
			},
			expectedErr: ErrMandiAPI,
		},
		{
			name:           "error: RecordStore returns error",
			inputRegion:    "Kerala_Kottayam",
			inputCommodity: "Banana",
			mockGetDailyPricesFunc: func(ctx context.Context, region, commodity string, limit int) ([]entity.PriceRecord, error) {
				return mockRecords, nil
			},
			mockUpsertBatchFunc: func(ctx context.Context, records []entity.PriceRecord) error {
				return ErrDB
			},
			expectedErr: ErrDB,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var capturedRecords []entity.PriceRecord
			mockMandi := &mockMandiRepository{
				GetDailyPricesFunc: tc.mockGetDailyPricesFunc,
			}
			mockStore := &mockRecordStore{
				UpsertBatchFunc: func(ctx context.Context, records []entity.PriceRecord) error {
					capturedRecords = records
					return tc.mockUpsertBatchFunc(ctx, records)
				},
			}
			mockRL := &mockRateLimiter{}

			uc := NewIngestUsecase(mockMandi, mockStore, mockRL)
			err := uc.ingestOne(ctx, tc.inputRegion, tc.inputCommodity)

			if tc.expectedErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			} else if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected %v, got %v", tc.expectedErr, err)
			}

			if tc.verifyRecords != nil && capturedRecords != nil {
				tc.verifyRecords(t, capturedRecords)
			}

			if mockMandi.GetDailyPricesCalls != 1 {
				t.Errorf("GetDailyPrices was called %d times, expected 1", mockMandi.GetDailyPricesCalls)
			}
		})
	}
}

func TestIngestUsecase_IngestAll(t *testing.T) {
	ctx := context.Background()
	testDate := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	mockRecords := []entity.PriceRecord{
		{Date: testDate, Region: "Kerala_Kottayam", Commodity: "Banana", ModalPrice: 2800},
	}

	pairs := func(keys ...[2]string) []catalogentity.MarketPair {
		out := make([]catalogentity.MarketPair, 0, len(keys))
		for _, k := range keys {
			out = append(out, catalogentity.MarketPair{Region: k[0], Commodity: k[1], Active: true})
		}
		return out
	}

	testCases := []struct {
		name                   string
		inputPairs             []catalogentity.MarketPair
		mockGetDailyPricesFunc func(ctx context.Context, region, commodity string, limit int) ([]entity.PriceRecord, error)
		mockUpsertBatchFunc    func(ctx context.Context, records []entity.PriceRecord) error
		expectedGetPricesCalls int
		expectedRateLimitWaits int
	}{
		{
			name:       "success: fetch all pairs",
			inputPairs: pairs([2]string{"Kerala_Kottayam", "Banana"}, [2]string{"Punjab_Ludhiana", "Wheat"}),
			mockGetDailyPricesFunc: func(ctx context.Context, region, commodity string, limit int) ([]entity.PriceRecord, error) {
				return mockRecords, nil
			},
			expectedGetPricesCalls: 2,
			expectedRateLimitWaits: 2,
		},
		{
			name:       "success: empty pair list",
			inputPairs: []catalogentity.MarketPair{},
			mockGetDailyPricesFunc: func(ctx context.Context, region, commodity string, limit int) ([]entity.PriceRecord, error) {
				t.Error("GetDailyPrices should not be called")
				return nil, errors.New("should not be called")
			},
			expectedGetPricesCalls: 0,
			expectedRateLimitWaits: 0,
		},
		{
			name: "success: continues processing even when some pairs fail",
			inputPairs: pairs(
				[2]string{"Kerala_Kottayam", "Banana"},
				[2]string{"Nowhere_Nothing", "Air"},
				[2]string{"Punjab_Ludhiana", "Wheat"},
			),
			mockGetDailyPricesFunc: func(ctx context.Context, region, commodity string, limit int) ([]entity.PriceRecord, error) {
				if region == "Nowhere_Nothing" {
					return nil, ErrMandiAPI
				}
				return mockRecords, nil
			},
			expectedGetPricesCalls: 3,
			expectedRateLimitWaits: 3,
		},
		{
			name:       "success: continues processing even when UpsertBatch fails",
			inputPairs: pairs([2]string{"Kerala_Kottayam", "Banana"}, [2]string{"Punjab_Ludhiana", "Wheat"}),
			mockGetDailyPricesFunc: func(ctx context.Context, region, commodity string, limit int) ([]entity.PriceRecord, error) {
				return mockRecords, nil
			},
			mockUpsertBatchFunc: func(ctx context.Context, records []entity.PriceRecord) error {
				return ErrDB
			},
			expectedGetPricesCalls: 2,
			expectedRateLimitWaits: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockMandi := &mockMandiRepository{
				GetDailyPricesFunc: tc.mockGetDailyPricesFunc,
			}
			mockStore := &mockRecordStore{
				UpsertBatchFunc: tc.mockUpsertBatchFunc,
			}
			mockRL := &mockRateLimiter{}

			uc := NewIngestUsecase(mockMandi, mockStore, mockRL)
			err := uc.IngestAll(ctx, tc.inputPairs)

			// IngestAll logs per-pair failures and keeps going
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if mockMandi.GetDailyPricesCalls != tc.expectedGetPricesCalls {
				t.Errorf("GetDailyPrices was called %d times, expected %d", mockMandi.GetDailyPricesCalls, tc.expectedGetPricesCalls)
			}
			if mockRL.WaitIfNeededCalls != tc.expectedRateLimitWaits {
				t.Errorf("WaitIfNeeded was called %d times, expected %d", mockRL.WaitIfNeededCalls, tc.expectedRateLimitWaits)
			}
		})
	}
}
