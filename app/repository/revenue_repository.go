package repository

import (
	"fmt"

	"github.com/filmwire/filmwire/app/models"
	"gorm.io/gorm"
)

// revenueRepository implements the RevenueRepository interface
type revenueRepository struct {
	db *gorm.DB
}

// NewRevenueRepository creates a new revenue repository instance
func NewRevenueRepository(db *gorm.DB) RevenueRepository {
	return &revenueRepository{db: db}
}

// Create appends a new record to the revenue ledger
func (r *revenueRepository) Create(revenue *models.Revenue) error {
	return r.db.Create(revenue).Error
}

// GetByID retrieves a revenue record by its ID
func (r *revenueRepository) GetByID(id uint) (*models.Revenue, error) {
	var revenue models.Revenue
	err := r.db.First(&revenue, id).Error
	if err != nil {
		return nil, err
	}
	return &revenue, nil
}

// GetByVideo retrieves a video's revenue records, newest first
func (r *revenueRepository) GetByVideo(videoID uint) ([]models.Revenue, error) {
	var revenues []models.Revenue
	err := r.db.Where("video_id = ?", videoID).Order("date DESC").Find(&revenues).Error
	return revenues, err
}

// GetByUser retrieves all revenue records for a user's videos, newest first
func (r *revenueRepository) GetByUser(userID uint) ([]models.Revenue, error) {
	var revenues []models.Revenue
	err := r.db.
		Joins("JOIN videos ON videos.id = revenues.video_id").
		Where("videos.user_id = ?", userID).
		Order("revenues.date DESC").
		Find(&revenues).Error
	return revenues, err
}

// StatsByUser computes the grand total plus a per-platform breakdown of a
// user's revenue. Platform IDs are resolved to display names through the
// platform catalog; an unresolved ID gets a synthesized "Platform <id>" label.
func (r *revenueRepository) StatsByUser(userID uint) (*RevenueStats, error) {
	var rows []struct {
		PlatformID uint
		Amount     float64
	}
	err := r.db.Model(&models.Revenue{}).
		Select("revenues.platform_id AS platform_id, SUM(revenues.amount) AS amount").
		Joins("JOIN videos ON videos.id = revenues.video_id").
		Where("videos.user_id = ?", userID).
		Group("revenues.platform_id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate revenue for user %d: %w", userID, err)
	}

	var platforms []models.Platform
	if err := r.db.Find(&platforms).Error; err != nil {
		return nil, fmt.Errorf("failed to load platform catalog: %w", err)
	}
	names := make(map[uint]string, len(platforms))
	for _, p := range platforms {
		names[p.ID] = p.Name
	}

	stats := &RevenueStats{ByPlatform: make(map[string]float64, len(rows))}
	for _, row := range rows {
		name, ok := names[row.PlatformID]
		if !ok {
			name = fmt.Sprintf("Platform %d", row.PlatformID)
		}
		stats.ByPlatform[name] = row.Amount
		stats.Total += row.Amount
	}
	return stats, nil
}
