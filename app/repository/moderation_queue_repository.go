package repository

import (
	"github.com/filmwire/filmwire/app/models"
	"gorm.io/gorm"
)

// DefaultPendingLimit caps GetPending when callers pass no limit.
const DefaultPendingLimit = 20

// moderationQueueRepository implements the ModerationQueueRepository interface
type moderationQueueRepository struct {
	db *gorm.DB
}

// NewModerationQueueRepository creates a new moderation queue repository instance
func NewModerationQueueRepository(db *gorm.DB) ModerationQueueRepository {
	return &moderationQueueRepository{db: db}
}

// Create enqueues a video for review. The unique index on video_id rejects a
// second entry for the same video with a constraint violation.
func (r *moderationQueueRepository) Create(item *models.ModerationQueueItem) error {
	return r.db.Create(item).Error
}

// GetByID retrieves a queue entry by its own ID
func (r *moderationQueueRepository) GetByID(id uint) (*models.ModerationQueueItem, error) {
	var item models.ModerationQueueItem
	err := r.db.First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetByVideoID retrieves the queue entry for a video
func (r *moderationQueueRepository) GetByVideoID(videoID uint) (*models.ModerationQueueItem, error) {
	var item models.ModerationQueueItem
	err := r.db.Where("video_id = ?", videoID).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Update applies a sparse set of field changes and returns the updated row
func (r *moderationQueueRepository) Update(id uint, changes map[string]interface{}) (*models.ModerationQueueItem, error) {
	res := r.db.Model(&models.ModerationQueueItem{}).Where("id = ?", id).Updates(changes)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&models.ModerationQueueItem{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	var item models.ModerationQueueItem
	if err := r.db.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// GetPending retrieves up to limit entries awaiting review
func (r *moderationQueueRepository) GetPending(limit int) ([]models.ModerationQueueItem, error) {
	if limit <= 0 {
		limit = DefaultPendingLimit
	}
	var items []models.ModerationQueueItem
	err := r.db.Where("status = ?", models.QueueStatusPending).Limit(limit).Find(&items).Error
	return items, err
}

// Assign hands a queue entry to a moderator and moves it to in-review
func (r *moderationQueueRepository) Assign(queueID, moderatorID uint) (*models.ModerationQueueItem, error) {
	return r.Update(queueID, map[string]interface{}{
		"assigned_to": moderatorID,
		"status":      models.QueueStatusInReview,
	})
}
