package adapters

import (
	"context"

	"gorm.io/gorm"

	"agri_backend/internal/feature/catalog/domain/entity"
	"agri_backend/internal/feature/catalog/usecase"
)

type pairMySQL struct {
	db *gorm.DB
}

var _ usecase.PairRepository = (*pairMySQL)(nil)

func NewPairRepository(db *gorm.DB) *pairMySQL {
	return &pairMySQL{db: db}
}

// MarketPairModel は追跡対象の (region, commodity) ペアの永続化モデルです。
// レコードリポジトリはこのテーブルでソースの存在判定を行います。
type MarketPairModel struct {
	ID        uint   `gorm:"primaryKey"`
	Region    string `gorm:"size:128;not null;uniqueIndex:pair_reg_com,priority:1"`
	Commodity string `gorm:"size:128;not null;uniqueIndex:pair_reg_com,priority:2"`
	Active    bool   `gorm:"not null;default:true"`
}

func (MarketPairModel) TableName() string {
	return "market_pairs"
}

func (r *pairMySQL) ListAvailable(ctx context.Context) ([]entity.MarketPair, error) {
	var rows []MarketPairModel
	err := r.db.WithContext(ctx).
		Order("region ASC, commodity ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]entity.MarketPair, 0, len(rows))
	for _, m := range rows {
		out = append(out, entity.MarketPair{
			Region:    m.Region,
			Commodity: m.Commodity,
			Active:    m.Active,
		})
	}
	return out, nil
}
