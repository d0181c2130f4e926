package repository

import (
	"testing"

	"github.com/filmwire/filmwire/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevenueStatsByUserEmpty(t *testing.T) {
	db := newTestDB(t)
	repo := NewRevenueRepository(db)
	user := createTestUser(t, db, "nosales")

	stats, err := repo.StatsByUser(user.ID)
	require.NoError(t, err)
	assert.Zero(t, stats.Total)
	assert.Empty(t, stats.ByPlatform)
	assert.NotNil(t, stats.ByPlatform)
}

func TestRevenueStatsByUserBreakdown(t *testing.T) {
	db := newTestDB(t)
	repo := NewRevenueRepository(db)
	user := createTestUser(t, db, "seller")
	other := createTestUser(t, db, "bystander")

	video := &models.Video{Title: "Harbor Lights", UserID: user.ID, VideoURL: "https://cdn.example.com/hl.mp4"}
	require.NoError(t, db.Create(video).Error)
	otherVideo := &models.Video{Title: "Static", UserID: other.ID, VideoURL: "https://cdn.example.com/st.mp4"}
	require.NoError(t, db.Create(otherVideo).Error)

	prime := &models.Platform{Name: "Prime Video"}
	require.NoError(t, db.Create(prime).Error)

	require.NoError(t, repo.Create(&models.Revenue{VideoID: video.ID, PlatformID: prime.ID, Amount: 12.50, Views: 1000}))
	require.NoError(t, repo.Create(&models.Revenue{VideoID: video.ID, PlatformID: prime.ID, Amount: 7.50, Views: 600}))
	// Revenue on a platform missing from the catalog gets a synthesized label.
	require.NoError(t, repo.Create(&models.Revenue{VideoID: video.ID, PlatformID: 99, Amount: 5, Views: 400}))
	// Another user's revenue never leaks into the stats.
	require.NoError(t, repo.Create(&models.Revenue{VideoID: otherVideo.ID, PlatformID: prime.ID, Amount: 100, Views: 9000}))

	stats, err := repo.StatsByUser(user.ID)
	require.NoError(t, err)
	assert.InDelta(t, 25.0, stats.Total, 0.001)
	assert.InDelta(t, 20.0, stats.ByPlatform["Prime Video"], 0.001)
	assert.InDelta(t, 5.0, stats.ByPlatform["Platform 99"], 0.001)
	assert.Len(t, stats.ByPlatform, 2)
}

func TestRevenueGetByUserJoinsVideos(t *testing.T) {
	db := newTestDB(t)
	repo := NewRevenueRepository(db)
	user := createTestUser(t, db, "joined")

	video := &models.Video{Title: "Night Shift", UserID: user.ID, VideoURL: "https://cdn.example.com/ns.mp4"}
	require.NoError(t, db.Create(video).Error)
	require.NoError(t, repo.Create(&models.Revenue{VideoID: video.ID, PlatformID: 1, Amount: 3, Views: 10}))

	revenues, err := repo.GetByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, revenues, 1)
	assert.Equal(t, video.ID, revenues[0].VideoID)
}
