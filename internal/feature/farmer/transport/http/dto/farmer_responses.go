package dto

import (
	"agri_backend/internal/feature/farmer/domain/entity"
	"agri_backend/internal/feature/farmer/usecase"
	marketdto "agri_backend/internal/feature/market/transport/http/dto"
)

// CreatedResponse は/api/farmer/profileの作成レスポンスです。
type CreatedResponse struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
}

// ProfileResponse はプロフィール取得のレスポンスDTOです。
type ProfileResponse struct {
	ID                  uint     `json:"id"`
	FarmerType          string   `json:"farmer_type"`
	FullName            string   `json:"full_name"`
	Location            string   `json:"location"`
	District            string   `json:"district"`
	State               string   `json:"state"`
	LandSize            float64  `json:"land_size"`
	AvailableCapital    float64  `json:"available_capital"`
	HasIrrigation       bool     `json:"has_irrigation"`
	CurrentCrops        []string `json:"current_crops"`
	InterestedCrops     []string `json:"interested_crops"`
	TechnologyInterest  []string `json:"technology_interest"`
	PrimaryCommodity    string   `json:"primary_commodity"`
	PrimaryRegion       string   `json:"primary_region"`
	TimeCommitment      string   `json:"time_commitment"`
	HasLand             bool     `json:"has_land"`
	NoLandOption        string   `json:"no_land_option"`
	OnboardingCompleted bool     `json:"onboarding_completed"`
	ProfileCompleteness float64  `json:"profile_completeness"`
}

// DashboardFarmer はダッシュボードに埋め込まれるプロフィールの要約です。
type DashboardFarmer struct {
	ID               uint    `json:"id"`
	FullName         string  `json:"full_name"`
	PrimaryCommodity string  `json:"primary_commodity"`
	PrimaryRegion    string  `json:"primary_region"`
	LandSize         float64 `json:"land_size"`
	AvailableCapital float64 `json:"available_capital"`
}

// DashboardResponse はファーマーの設定に合わせたダッシュボードの
// レスポンスDTOです。
type DashboardResponse struct {
	Farmer               DashboardFarmer                 `json:"farmer"`
	Market               marketdto.MarketSummaryResponse `json:"market"`
	AIRecommendation     string                          `json:"ai_recommendation"`
	RecommendationReason string                          `json:"recommendation_reason"`
	ConsensusScore       int                             `json:"consensus_score"`
	RiskLevel            string                          `json:"risk_level"`
}

// NewProfile maps a domain profile to its response shape. Nil slices are
// replaced with empty ones so the JSON always carries arrays.
func NewProfile(p *entity.FarmerProfile) ProfileResponse {
	return ProfileResponse{
		ID:                  p.ID,
		FarmerType:          p.FarmerType,
		FullName:            p.FullName,
		Location:            p.Location,
		District:            p.District,
		State:               p.State,
		LandSize:            p.LandSize,
		AvailableCapital:    p.AvailableCapital,
		HasIrrigation:       p.HasIrrigation,
		CurrentCrops:        nonNil(p.CurrentCrops),
		InterestedCrops:     nonNil(p.InterestedCrops),
		TechnologyInterest:  nonNil(p.TechnologyInterest),
		PrimaryCommodity:    p.PrimaryCommodity,
		PrimaryRegion:       p.PrimaryRegion,
		TimeCommitment:      p.TimeCommitment,
		HasLand:             p.HasLand,
		NoLandOption:        p.NoLandOption,
		OnboardingCompleted: p.OnboardingCompleted,
		ProfileCompleteness: p.ProfileCompleteness,
	}
}

// NewDashboard flat-maps the dashboard aggregate. The top-level
// recommendation fields mirror the embedded market summary for clients
// that only render the headline.
func NewDashboard(d *usecase.Dashboard) DashboardResponse {
	intel := d.Intelligence
	chart := marketdto.NewChartSeries(intel.Series)
	summary := marketdto.NewMarketSummary(intel.Enriched, intel.Recommendation, chart)

	return DashboardResponse{
		Farmer: DashboardFarmer{
			ID:               d.Farmer.ID,
			FullName:         d.Farmer.FullName,
			PrimaryCommodity: d.Commodity,
			PrimaryRegion:    d.Region,
			LandSize:         d.Farmer.LandSize,
			AvailableCapital: d.Farmer.AvailableCapital,
		},
		Market:               summary,
		AIRecommendation:     string(intel.Recommendation.Action),
		RecommendationReason: intel.Recommendation.Reason,
		ConsensusScore:       intel.Recommendation.Confidence,
		RiskLevel:            string(intel.Enriched.RiskLevel),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
