// Package dto defines data transfer objects for the farmer feature's HTTP transport layer.
package dto

import "agri_backend/internal/feature/farmer/domain/entity"

// CreateProfileReq はオンボーディングウィザードが送信するプロフィール
// 作成リクエストです。ほぼ全フィールドが任意で、省略時はゼロ値になります。
type CreateProfileReq struct {
	FarmerType string `json:"farmer_type" binding:"omitempty,oneof=new_farmer experienced learning profit_focused"`
	FullName   string `json:"full_name"`
	Mobile     string `json:"mobile"`
	Location   string `json:"location"`
	District   string `json:"district"`
	State      string `json:"state"`

	LandSize float64 `json:"land_size" binding:"omitempty,gte=0"`
	SoilType string  `json:"soil_type"`

	AvailableCapital float64 `json:"available_capital" binding:"omitempty,gte=0"`
	HasLoanAccess    bool    `json:"has_loan_access"`
	HasSubsidyAccess bool    `json:"has_subsidy_access"`

	HasIrrigation  bool   `json:"has_irrigation"`
	IrrigationType string `json:"irrigation_type"`

	HasStorage          bool    `json:"has_storage"`
	StorageCapacityTons float64 `json:"storage_capacity_tons" binding:"omitempty,gte=0"`

	CurrentCrops       []string `json:"current_crops"`
	InterestedCrops    []string `json:"interested_crops"`
	TechnologyInterest []string `json:"technology_interest"`
	SellingMarkets     []string `json:"selling_markets"`

	YearlyYieldTons float64 `json:"yearly_yield_tons" binding:"omitempty,gte=0"`

	PrimaryCommodity string `json:"primary_commodity"`
	PrimaryRegion    string `json:"primary_region"`

	TimeCommitment string `json:"time_commitment"`
	NoLandOption   string `json:"no_land_option"`
	HasLand        bool   `json:"has_land"`
}

// ToEntity maps the request onto a domain profile, filling the same
// defaults the onboarding wizard relies on.
func (r CreateProfileReq) ToEntity() *entity.FarmerProfile {
	farmerType := r.FarmerType
	if farmerType == "" {
		farmerType = "new_farmer"
	}
	soilType := r.SoilType
	if soilType == "" {
		soilType = "unknown"
	}
	irrigationType := r.IrrigationType
	if irrigationType == "" {
		irrigationType = "none"
	}

	return &entity.FarmerProfile{
		FarmerType:          farmerType,
		FullName:            r.FullName,
		Mobile:              r.Mobile,
		Location:            r.Location,
		District:            r.District,
		State:               r.State,
		LandSize:            r.LandSize,
		SoilType:            soilType,
		AvailableCapital:    r.AvailableCapital,
		HasLoanAccess:       r.HasLoanAccess,
		HasSubsidyAccess:    r.HasSubsidyAccess,
		HasIrrigation:       r.HasIrrigation,
		IrrigationType:      irrigationType,
		HasStorage:          r.HasStorage,
		StorageCapacityTons: r.StorageCapacityTons,
		CurrentCrops:        r.CurrentCrops,
		InterestedCrops:     r.InterestedCrops,
		TechnologyInterest:  r.TechnologyInterest,
		SellingMarkets:      r.SellingMarkets,
		YearlyYieldTons:     r.YearlyYieldTons,
		PrimaryCommodity:    r.PrimaryCommodity,
		PrimaryRegion:       r.PrimaryRegion,
		TimeCommitment:      r.TimeCommitment,
		NoLandOption:        r.NoLandOption,
		HasLand:             r.HasLand,
	}
}
