package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	catalogadapters "agri_backend/internal/feature/catalog/adapters"
	"agri_backend/internal/feature/market/domain"
	"agri_backend/internal/feature/market/domain/entity"
	"agri_backend/internal/feature/market/usecase"
)

type recordMySQL struct {
	db *gorm.DB
}

var _ usecase.RecordRepository = (*recordMySQL)(nil)

func NewRecordRepository(db *gorm.DB) *recordMySQL {
	return &recordMySQL{db: db}
}

// PriceRecordModel は価格レコードの永続化モデルです。
// (region, commodity, date) で一意になります。
type PriceRecordModel struct {
	ID        uint      `gorm:"primaryKey"`
	Region    string    `gorm:"size:128;not null;uniqueIndex:record_reg_com_date,priority:1"`
	Commodity string    `gorm:"size:128;not null;uniqueIndex:record_reg_com_date,priority:2"`
	Date      time.Time `gorm:"not null;uniqueIndex:record_reg_com_date,priority:3"`

	MinPrice   float64 `gorm:"not null"`
	MaxPrice   float64 `gorm:"not null"`
	ModalPrice float64 `gorm:"not null"`
	Volume     float64 `gorm:"not null;default:0"`
	HasVolume  bool    `gorm:"not null;default:false"`
}

func (PriceRecordModel) TableName() string {
	return "price_records"
}

func toModel(e entity.PriceRecord) PriceRecordModel {
	return PriceRecordModel{
		Region:     e.Region,
		Commodity:  e.Commodity,
		Date:       e.Date,
		MinPrice:   e.MinPrice,
		MaxPrice:   e.MaxPrice,
		ModalPrice: e.ModalPrice,
		Volume:     e.Volume,
		HasVolume:  e.HasVolume,
	}
}

func toEntity(m PriceRecordModel) entity.PriceRecord {
	return entity.PriceRecord{
		Region:     m.Region,
		Commodity:  m.Commodity,
		Date:       m.Date,
		MinPrice:   m.MinPrice,
		MaxPrice:   m.MaxPrice,
		ModalPrice: m.ModalPrice,
		Volume:     m.Volume,
		HasVolume:  m.HasVolume,
	}
}

// UpsertBatch は価格レコードを一括で挿入または更新します。
// 同一 (region, commodity, date) のレコードは価格フィールドのみ更新されます。
func (r *recordMySQL) UpsertBatch(ctx context.Context, records []entity.PriceRecord) error {
	if len(records) == 0 {
		return nil
	}
	ms := make([]PriceRecordModel, 0, len(records))
	for _, e := range records {
		ms = append(ms, toModel(e))
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "region"}, {Name: "commodity"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"min_price", "max_price", "modal_price", "volume", "has_volume"}),
	}).Create(&ms).Error
}

// Find は (region, commodity) の全レコードを日付昇順で返します。
// レコードがゼロ件の場合、カタログにペアが登録されていれば空スライス、
// 未登録であれば domain.ErrSourceNotFound を返します。
func (r *recordMySQL) Find(ctx context.Context, region, commodity string) ([]entity.PriceRecord, error) {
	var rows []PriceRecordModel
	err := r.db.WithContext(ctx).
		Where("region = ? AND commodity = ?", region, commodity).
		Order("`date` ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		// 未知のペアと「既知だがレコードゼロ」のペアを区別する
		var count int64
		err := r.db.WithContext(ctx).
			Model(&catalogadapters.MarketPairModel{}).
			Where("region = ? AND commodity = ?", region, commodity).
			Count(&count).Error
		if err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, domain.ErrSourceNotFound
		}
		return []entity.PriceRecord{}, nil
	}

	out := make([]entity.PriceRecord, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}
