// Package entity defines the domain entities for the farmer feature.
package entity

import "time"

// FarmerProfile holds everything captured by the onboarding wizard.
// List-valued answers are stored as JSON columns.
type FarmerProfile struct {
	// ID is the unique identifier for the profile.
	ID uint `gorm:"primaryKey"`

	// FarmerType is one of: new_farmer, experienced, learning, profit_focused.
	FarmerType string `gorm:"size:32;not null;default:new_farmer"`

	FullName string `gorm:"size:255"`
	Mobile   string `gorm:"size:32"`
	Location string `gorm:"size:255"`
	District string `gorm:"size:128"`
	State    string `gorm:"size:128"`

	LandSize float64
	SoilType string `gorm:"size:64;default:unknown"`

	AvailableCapital float64
	HasLoanAccess    bool
	HasSubsidyAccess bool

	HasIrrigation  bool
	IrrigationType string `gorm:"size:64;default:none"`

	HasStorage          bool
	StorageCapacityTons float64

	CurrentCrops       []string `gorm:"serializer:json"`
	InterestedCrops    []string `gorm:"serializer:json"`
	TechnologyInterest []string `gorm:"serializer:json"`
	SellingMarkets     []string `gorm:"serializer:json"`

	YearlyYieldTons float64

	// PrimaryCommodity and PrimaryRegion drive the dashboard's market query.
	PrimaryCommodity string `gorm:"size:128"`
	PrimaryRegion    string `gorm:"size:128"`

	TimeCommitment string `gorm:"size:64"`
	NoLandOption   string `gorm:"size:64"`
	HasLand        bool

	OnboardingCompleted bool
	ProfileCompleteness float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the default GORM table name.
func (FarmerProfile) TableName() string {
	return "farmer_profiles"
}
