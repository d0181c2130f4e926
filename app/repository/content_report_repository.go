package repository

import (
	"github.com/filmwire/filmwire/app/models"
	"gorm.io/gorm"
)

// contentReportRepository implements the ContentReportRepository interface
type contentReportRepository struct {
	db *gorm.DB
}

// NewContentReportRepository creates a new content report repository instance
func NewContentReportRepository(db *gorm.DB) ContentReportRepository {
	return &contentReportRepository{db: db}
}

// Create creates a new content report in the database
func (r *contentReportRepository) Create(report *models.ContentReport) error {
	return r.db.Create(report).Error
}

// GetByVideo retrieves all reports filed against a video
func (r *contentReportRepository) GetByVideo(videoID uint) ([]models.ContentReport, error) {
	var reports []models.ContentReport
	err := r.db.Where("video_id = ?", videoID).Find(&reports).Error
	return reports, err
}

// Update applies a sparse set of field changes and returns the updated row
func (r *contentReportRepository) Update(id uint, changes map[string]interface{}) (*models.ContentReport, error) {
	res := r.db.Model(&models.ContentReport{}).Where("id = ?", id).Updates(changes)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&models.ContentReport{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	var report models.ContentReport
	if err := r.db.First(&report, id).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// GetPending retrieves all reports awaiting review
func (r *contentReportRepository) GetPending() ([]models.ContentReport, error) {
	var reports []models.ContentReport
	err := r.db.Where("status = ?", models.ReportStatusPending).Find(&reports).Error
	return reports, err
}
