package repository

import (
	"github.com/filmwire/filmwire/app/models"
	"gorm.io/gorm"
)

// distributionRepository implements the DistributionRepository interface
type distributionRepository struct {
	db *gorm.DB
}

// NewDistributionRepository creates a new distribution repository instance
func NewDistributionRepository(db *gorm.DB) DistributionRepository {
	return &distributionRepository{db: db}
}

// Create creates a new distribution in the database
func (r *distributionRepository) Create(distribution *models.Distribution) error {
	return r.db.Create(distribution).Error
}

// GetByID retrieves a distribution by its ID
func (r *distributionRepository) GetByID(id uint) (*models.Distribution, error) {
	var distribution models.Distribution
	err := r.db.First(&distribution, id).Error
	if err != nil {
		return nil, err
	}
	return &distribution, nil
}

// GetByVideo retrieves all distributions of a video
func (r *distributionRepository) GetByVideo(videoID uint) ([]models.Distribution, error) {
	var distributions []models.Distribution
	err := r.db.Where("video_id = ?", videoID).Find(&distributions).Error
	return distributions, err
}

// GetByUser retrieves all distributions of a user's videos via a join
func (r *distributionRepository) GetByUser(userID uint) ([]models.Distribution, error) {
	var distributions []models.Distribution
	err := r.db.
		Joins("JOIN videos ON videos.id = distributions.video_id").
		Where("videos.user_id = ?", userID).
		Find(&distributions).Error
	return distributions, err
}

// Update applies a sparse set of field changes and returns the updated row
func (r *distributionRepository) Update(id uint, changes map[string]interface{}) (*models.Distribution, error) {
	res := r.db.Model(&models.Distribution{}).Where("id = ?", id).Updates(changes)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&models.Distribution{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.GetByID(id)
}
