package repository

import (
	"errors"

	"github.com/filmwire/filmwire/app/models"
	"gorm.io/gorm"
)

// videoRepository implements the VideoRepository interface
type videoRepository struct {
	db *gorm.DB
}

// NewVideoRepository creates a new video repository instance
func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

// Create creates a new video in the database
func (r *videoRepository) Create(video *models.Video) error {
	return r.db.Create(video).Error
}

// GetByID retrieves a video by its ID
func (r *videoRepository) GetByID(id uint) (*models.Video, error) {
	var video models.Video
	err := r.db.First(&video, id).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// GetByUser retrieves a user's videos, newest upload first
func (r *videoRepository) GetByUser(userID uint) ([]models.Video, error) {
	var videos []models.Video
	err := r.db.Where("user_id = ?", userID).Order("upload_date DESC").Find(&videos).Error
	return videos, err
}

// Update applies a sparse set of field changes and returns the updated row
func (r *videoRepository) Update(id uint, changes map[string]interface{}) (*models.Video, error) {
	res := r.db.Model(&models.Video{}).Where("id = ?", id).Updates(changes)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&models.Video{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.GetByID(id)
}

// Delete removes a video together with its dependent rows. Distributions go
// first, then revenue rows, then the video itself; the whole cascade runs in
// one transaction so a crash cannot leave orphans. Returns true iff the
// video row was removed.
func (r *videoRepository) Delete(id uint) (bool, error) {
	removed := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("video_id = ?", id).Delete(&models.Distribution{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", id).Delete(&models.Revenue{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Video{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Nothing to delete; roll back the dependent deletes too.
			return gorm.ErrRecordNotFound
		}
		removed = true
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return removed, nil
}
