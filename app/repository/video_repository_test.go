package repository

import (
	"testing"

	"github.com/filmwire/filmwire/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestVideoRepositoryDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	repo := NewVideoRepository(db)
	user := createTestUser(t, db, "director")

	video := &models.Video{Title: "Night Shift", UserID: user.ID, VideoURL: "https://cdn.example.com/night-shift.mp4"}
	require.NoError(t, repo.Create(video))
	other := &models.Video{Title: "Day Shift", UserID: user.ID, VideoURL: "https://cdn.example.com/day-shift.mp4"}
	require.NoError(t, repo.Create(other))

	platform := &models.Platform{Name: "Prime Video"}
	require.NoError(t, db.Create(platform).Error)

	for i := 0; i < 2; i++ {
		require.NoError(t, db.Create(&models.Distribution{VideoID: video.ID, PlatformID: platform.ID}).Error)
	}
	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&models.Revenue{VideoID: video.ID, PlatformID: platform.ID, Amount: 10, Views: 100}).Error)
	}
	require.NoError(t, db.Create(&models.Distribution{VideoID: other.ID, PlatformID: platform.ID}).Error)
	require.NoError(t, db.Create(&models.Revenue{VideoID: other.ID, PlatformID: platform.ID, Amount: 5, Views: 50}).Error)

	deleted, err := repo.Delete(video.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	var distCount, revCount, videoCount int64
	require.NoError(t, db.Model(&models.Distribution{}).Where("video_id = ?", video.ID).Count(&distCount).Error)
	require.NoError(t, db.Model(&models.Revenue{}).Where("video_id = ?", video.ID).Count(&revCount).Error)
	require.NoError(t, db.Model(&models.Video{}).Where("id = ?", video.ID).Count(&videoCount).Error)
	assert.Zero(t, distCount)
	assert.Zero(t, revCount)
	assert.Zero(t, videoCount)

	// The sibling video and its rows are untouched.
	require.NoError(t, db.Model(&models.Distribution{}).Where("video_id = ?", other.ID).Count(&distCount).Error)
	require.NoError(t, db.Model(&models.Revenue{}).Where("video_id = ?", other.ID).Count(&revCount).Error)
	assert.EqualValues(t, 1, distCount)
	assert.EqualValues(t, 1, revCount)
}

func TestVideoRepositoryDeleteMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewVideoRepository(db)

	deleted, err := repo.Delete(4242)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestVideoRepositoryUpdateMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewVideoRepository(db)

	_, err := repo.Update(4242, map[string]interface{}{"title": "Renamed"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
