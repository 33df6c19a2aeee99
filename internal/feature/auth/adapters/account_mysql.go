// Package adapters はauthフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"agri_backend/internal/feature/auth/domain/entity"
	"agri_backend/internal/feature/auth/usecase"
)

// accountMySQL はAccountRepositoryインターフェースのMySQL実装です。
// GORMを使用してデータベース操作を行います。
type accountMySQL struct {
	db *gorm.DB
}

// accountMySQLがAccountRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.AccountRepository = (*accountMySQL)(nil)

// NewAccountMySQL は指定されたgorm.DB接続でaccountMySQLの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewAccountMySQL(db *gorm.DB) *accountMySQL {
	return &accountMySQL{db: db}
}

// Create はアカウントをデータベースに追加します。
// 同じ携帯番号のアカウントが既に存在する場合、usecase.ErrMobileAlreadyExistsを返します。
func (r *accountMySQL) Create(ctx context.Context, a *entity.Account) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		// MySQLエラー1062: ユニークキーの重複エントリ
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return usecase.ErrMobileAlreadyExists
		}
		return err
	}
	return nil
}

// FindByMobile は携帯番号でアカウントを取得します。
// アカウントが存在しない場合、usecase.ErrAccountNotFoundを返します。
func (r *accountMySQL) FindByMobile(ctx context.Context, mobile string) (*entity.Account, error) {
	var a entity.Account
	if err := r.db.WithContext(ctx).Where("mobile = ?", mobile).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrAccountNotFound
		}
		return nil, err
	}
	return &a, nil
}

// FindByID はIDでアカウントを取得します。
// アカウントが存在しない場合、usecase.ErrAccountNotFoundを返します。
func (r *accountMySQL) FindByID(ctx context.Context, id uint) (*entity.Account, error) {
	var a entity.Account
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrAccountNotFound
		}
		return nil, err
	}
	return &a, nil
}
