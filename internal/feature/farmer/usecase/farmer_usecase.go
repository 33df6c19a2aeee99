// Package usecase はfarmerフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"

	"agri_backend/internal/feature/farmer/domain/entity"
	marketusecase "agri_backend/internal/feature/market/usecase"
)

// ダッシュボードのマーケットクエリのデフォルト値。プロフィールに
// 設定がない場合に使用されます。
const (
	fallbackRegion    = "Kerala_Kottayam"
	fallbackCommodity = "Banana"
	dashboardDays     = 14
)

// ProfileRepository はファーマープロフィールの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type ProfileRepository interface {
	// Create は新しいプロフィールをストレージに永続化します。
	Create(ctx context.Context, profile *entity.FarmerProfile) error

	// FindByID は指定されたIDに一致するプロフィールを取得します。
	// プロフィールが存在しない場合、ErrFarmerNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.FarmerProfile, error)
}

// MarketIntelligence はダッシュボードが消費するマーケットパイプラインを
// 抽象化します。
type MarketIntelligence interface {
	GetIntelligence(ctx context.Context, region, commodity string, days int) (*marketusecase.Intelligence, error)
}

// Dashboard はファーマーの設定に合わせたマーケットインテリジェンスの
// 集約結果です。
type Dashboard struct {
	Farmer       *entity.FarmerProfile
	Region       string
	Commodity    string
	Intelligence *marketusecase.Intelligence
}

// FarmerUsecase はファーマープロフィールとダッシュボードのビジネスロジックを実装します。
type FarmerUsecase struct {
	profiles ProfileRepository
	market   MarketIntelligence
}

// NewFarmerUsecase はFarmerUsecaseの新しいインスタンスを生成します。
func NewFarmerUsecase(profiles ProfileRepository, market MarketIntelligence) *FarmerUsecase {
	return &FarmerUsecase{profiles: profiles, market: market}
}

// CreateProfile はオンボーディングで入力されたプロフィールを保存します。
// 保存時にオンボーディング完了フラグと完成度を設定します。
func (u *FarmerUsecase) CreateProfile(ctx context.Context, profile *entity.FarmerProfile) (uint, error) {
	profile.OnboardingCompleted = true
	profile.ProfileCompleteness = 100.0

	if err := u.profiles.Create(ctx, profile); err != nil {
		return 0, fmt.Errorf("failed to save farmer profile: %w", err)
	}
	return profile.ID, nil
}

// GetProfile はIDでプロフィールを取得します。
func (u *FarmerUsecase) GetProfile(ctx context.Context, id uint) (*entity.FarmerProfile, error) {
	return u.profiles.FindByID(ctx, id)
}

// Dashboard はファーマーの保存済み設定（地域と商品）に合わせた
// マーケットインテリジェンスを返します。設定が空の場合はデフォルトの
// ペアを使用します。
func (u *FarmerUsecase) Dashboard(ctx context.Context, id uint) (*Dashboard, error) {
	farmer, err := u.profiles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	region := farmer.PrimaryRegion
	if region == "" {
		region = fallbackRegion
	}
	commodity := farmer.PrimaryCommodity
	if commodity == "" {
		commodity = fallbackCommodity
	}

	intel, err := u.market.GetIntelligence(ctx, region, commodity, dashboardDays)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Farmer:       farmer,
		Region:       region,
		Commodity:    commodity,
		Intelligence: intel,
	}, nil
}
