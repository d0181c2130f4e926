package repository

import (
	"fmt"

	"github.com/filmwire/filmwire/app/models"
	"gorm.io/gorm"
)

// SeedDefaults fills the static catalogs on first startup. Each catalog is
// seeded only when its table is completely empty; a partial catalog is left
// alone so operator edits survive restarts.
func SeedDefaults(db *gorm.DB) error {
	if err := seedPlatforms(db); err != nil {
		return fmt.Errorf("seeding platforms: %w", err)
	}
	if err := seedSubscriptionPlans(db); err != nil {
		return fmt.Errorf("seeding subscription plans: %w", err)
	}
	return nil
}

func seedPlatforms(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Platform{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []models.Platform{
		{Name: "Google TV", LogoURL: "/assets/platform-logos/google-tv.svg", APIEndpoint: "https://api.googletv.com"},
		{Name: "Prime Video", LogoURL: "/assets/platform-logos/prime-video.svg", APIEndpoint: "https://api.primevideo.com"},
		{Name: "Apple TV", LogoURL: "/assets/platform-logos/apple-tv.svg", APIEndpoint: "https://api.appletv.com"},
		{Name: "Peacock", LogoURL: "/assets/platform-logos/peacock.svg", APIEndpoint: "https://api.peacocktv.com"},
	}
	return db.Create(&defaults).Error
}

func seedSubscriptionPlans(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.SubscriptionPlan{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []models.SubscriptionPlan{
		{
			Name:           "Basic",
			Price:          9900,
			DurationMonths: 3,
			Description:    "Basic 3-month plan for independent filmmakers. Your content will be distributed for 3 months.",
		},
		{
			Name:           "Premium",
			Price:          59900,
			DurationMonths: 6,
			Description:    "Premium 6-month plan for independent filmmakers. Your content will be distributed for 6 months.",
		},
		{
			Name:           "Professional",
			Price:          99900,
			DurationMonths: 12,
			Description:    "Professional 12-month plan for independent filmmakers. Your content will be distributed for 1 year.",
		},
	}
	return db.Create(&defaults).Error
}
