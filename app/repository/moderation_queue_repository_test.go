package repository

import (
	"testing"

	"github.com/filmwire/filmwire/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newQueueVideo(t *testing.T, db *gorm.DB, userID uint, title string) *models.Video {
	t.Helper()
	video := &models.Video{Title: title, UserID: userID, VideoURL: "https://cdn.example.com/" + title + ".mp4"}
	require.NoError(t, db.Create(video).Error)
	return video
}

func TestModerationQueueOneEntryPerVideo(t *testing.T) {
	db := newTestDB(t)
	repo := NewModerationQueueRepository(db)
	user := createTestUser(t, db, "uploader")
	video := newQueueVideo(t, db, user.ID, "pilot")

	require.NoError(t, repo.Create(&models.ModerationQueueItem{VideoID: video.ID, UserID: user.ID}))
	err := repo.Create(&models.ModerationQueueItem{VideoID: video.ID, UserID: user.ID})
	assert.Error(t, err)
}

func TestModerationQueueAssign(t *testing.T) {
	db := newTestDB(t)
	repo := NewModerationQueueRepository(db)
	user := createTestUser(t, db, "uploader")
	moderator := createTestUser(t, db, "mod")
	video := newQueueVideo(t, db, user.ID, "pilot")

	item := &models.ModerationQueueItem{VideoID: video.ID, UserID: user.ID, Status: models.QueueStatusPending}
	require.NoError(t, repo.Create(item))

	assigned, err := repo.Assign(item.ID, moderator.ID)
	require.NoError(t, err)
	require.NotNil(t, assigned.AssignedTo)
	assert.Equal(t, moderator.ID, *assigned.AssignedTo)
	assert.Equal(t, models.QueueStatusInReview, assigned.Status)

	_, err = repo.Assign(9999, moderator.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestModerationQueueGetPendingLimit(t *testing.T) {
	db := newTestDB(t)
	repo := NewModerationQueueRepository(db)
	user := createTestUser(t, db, "uploader")

	for i := 0; i < 5; i++ {
		video := newQueueVideo(t, db, user.ID, string(rune('a'+i)))
		require.NoError(t, repo.Create(&models.ModerationQueueItem{
			VideoID: video.ID,
			UserID:  user.ID,
			Status:  models.QueueStatusPending,
		}))
	}

	pending, err := repo.GetPending(3)
	require.NoError(t, err)
	assert.Len(t, pending, 3)

	// Zero falls back to the default page size.
	pending, err = repo.GetPending(0)
	require.NoError(t, err)
	assert.Len(t, pending, 5)
}
