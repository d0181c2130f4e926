package repository

import (
	"testing"

	"github.com/filmwire/filmwire/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDefaultsFillsEmptyCatalogs(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, SeedDefaults(db))

	var platforms []models.Platform
	require.NoError(t, db.Order("id").Find(&platforms).Error)
	require.Len(t, platforms, 4)
	assert.Equal(t, "Google TV", platforms[0].Name)
	assert.Equal(t, "Peacock", platforms[3].Name)

	var plans []models.SubscriptionPlan
	require.NoError(t, db.Order("id").Find(&plans).Error)
	require.Len(t, plans, 3)
	assert.Equal(t, "Basic", plans[0].Name)
	assert.Equal(t, 9900, plans[0].Price)
	assert.Equal(t, 3, plans[0].DurationMonths)
	assert.Equal(t, "Professional", plans[2].Name)
	assert.Equal(t, 99900, plans[2].Price)
	assert.Equal(t, 12, plans[2].DurationMonths)
}

func TestSeedDefaultsIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, SeedDefaults(db))
	require.NoError(t, SeedDefaults(db))

	var platformCount, planCount int64
	require.NoError(t, db.Model(&models.Platform{}).Count(&platformCount).Error)
	require.NoError(t, db.Model(&models.SubscriptionPlan{}).Count(&planCount).Error)
	assert.EqualValues(t, 4, platformCount)
	assert.EqualValues(t, 3, planCount)
}

func TestSeedDefaultsLeavesPartialCatalogAlone(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.Create(&models.Platform{Name: "Tubi"}).Error)

	require.NoError(t, SeedDefaults(db))

	var platforms []models.Platform
	require.NoError(t, db.Find(&platforms).Error)
	require.Len(t, platforms, 1)
	assert.Equal(t, "Tubi", platforms[0].Name)

	// The untouched plan catalog still gets seeded.
	var planCount int64
	require.NoError(t, db.Model(&models.SubscriptionPlan{}).Count(&planCount).Error)
	assert.EqualValues(t, 3, planCount)
}
