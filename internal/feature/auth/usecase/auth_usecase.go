// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"

	"agri_backend/internal/feature/auth/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 8
)

// AccountRepository はアカウントエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type AccountRepository interface {
	// Create は新しいアカウントをストレージに永続化します。
	// 同じ携帯番号のアカウントが既に存在する場合、エラーを返します。
	Create(ctx context.Context, account *entity.Account) error

	// FindByMobile は指定された携帯番号に一致するアカウントを取得します。
	// アカウントが存在しない場合、エラーを返します。
	FindByMobile(ctx context.Context, mobile string) (*entity.Account, error)

	// FindByID は指定されたIDに一致するアカウントを取得します。
	// アカウントが存在しない場合、エラーを返します。
	FindByID(ctx context.Context, id uint) (*entity.Account, error)
}

// JWTGenerator はJWTトークン生成のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/jwt）ではなくコンシューマー（usecase）が定義します。
type JWTGenerator interface {
	// GenerateToken は指定されたアカウントの署名済みJWTトークンを生成します。
	GenerateToken(accountID uint, mobile string) (string, error)
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	accounts     AccountRepository
	jwtGenerator JWTGenerator
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(accounts AccountRepository, jwtGenerator JWTGenerator) *authUsecase {
	return &authUsecase{
		accounts:     accounts,
		jwtGenerator: jwtGenerator,
	}
}

// validatePassword はパスワードがセキュリティ要件を満たしているかチェックします。
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// Signup はハッシュ化されたパスワードで新規アカウントを登録します。
func (u *authUsecase) Signup(ctx context.Context, mobile, fullName, password string) error {
	// パスワード強度を検証
	if err := validatePassword(password); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	account := &entity.Account{Mobile: mobile, FullName: fullName, Password: string(hashed)}
	return u.accounts.Create(ctx, account)
}

// Login はアカウントを認証し、成功時にJWTトークンを返します。
// 携帯番号とパスワードを検証し、署名済みJWTトークンを生成します。
// タイミング攻撃を防止するため、アカウントが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, mobile, password string) (string, error) {
	// 携帯番号でアカウントを検索
	account, err := u.accounts.FindByMobile(ctx, mobile)

	// アカウントが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" // ダミーハッシュ
	if err == nil {
		passwordHash = account.Password
	}

	// タイミング攻撃防止のため、常にパスワードを検証
	// 第1引数はハッシュ化パスワード、第2引数は平文パスワード
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// アカウント未検出またはパスワード不一致の場合、汎用エラーを返す
	if err != nil || compareErr != nil {
		return "", errors.New("invalid mobile or password")
	}

	// 注入されたジェネレーターを使用してJWTトークンを生成
	token, tokenErr := u.jwtGenerator.GenerateToken(account.ID, account.Mobile)
	if tokenErr != nil {
		return "", fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	return token, nil
}
