// Package adapters はfarmerフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"agri_backend/internal/feature/farmer/domain/entity"
	"agri_backend/internal/feature/farmer/usecase"
)

// farmerMySQL はProfileRepositoryインターフェースのMySQL実装です。
// GORMを使用してデータベース操作を行います。
type farmerMySQL struct {
	db *gorm.DB
}

// farmerMySQLがProfileRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.ProfileRepository = (*farmerMySQL)(nil)

// NewFarmerMySQL は指定されたgorm.DB接続でfarmerMySQLの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewFarmerMySQL(db *gorm.DB) *farmerMySQL {
	return &farmerMySQL{db: db}
}

// Create はプロフィールをデータベースに追加します。
func (r *farmerMySQL) Create(ctx context.Context, p *entity.FarmerProfile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// FindByID はIDでプロフィールを取得します。
// プロフィールが存在しない場合、usecase.ErrFarmerNotFoundを返します。
func (r *farmerMySQL) FindByID(ctx context.Context, id uint) (*entity.FarmerProfile, error) {
	var p entity.FarmerProfile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrFarmerNotFound
		}
		return nil, err
	}
	return &p, nil
}
