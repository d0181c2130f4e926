package repository

import (
	"github.com/filmwire/filmwire/app/models"
	"gorm.io/gorm"
)

// platformRepository implements the PlatformRepository interface
type platformRepository struct {
	db *gorm.DB
}

// NewPlatformRepository creates a new platform repository instance
func NewPlatformRepository(db *gorm.DB) PlatformRepository {
	return &platformRepository{db: db}
}

// GetByID retrieves a platform by its ID
func (r *platformRepository) GetByID(id uint) (*models.Platform, error) {
	var platform models.Platform
	err := r.db.First(&platform, id).Error
	if err != nil {
		return nil, err
	}
	return &platform, nil
}

// GetAll retrieves the full platform catalog
func (r *platformRepository) GetAll() ([]models.Platform, error) {
	var platforms []models.Platform
	err := r.db.Find(&platforms).Error
	return platforms, err
}

// Create creates a new platform in the database
func (r *platformRepository) Create(platform *models.Platform) error {
	return r.db.Create(platform).Error
}
