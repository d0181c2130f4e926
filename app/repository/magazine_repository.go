package repository

import (
	"github.com/filmwire/filmwire/app/models"
	"gorm.io/gorm"
)

// magazineRepository implements the MagazineRepository interface
type magazineRepository struct {
	db *gorm.DB
}

// NewMagazineRepository creates a new magazine repository instance
func NewMagazineRepository(db *gorm.DB) MagazineRepository {
	return &magazineRepository{db: db}
}

// GetSubscription retrieves a subscription by its ID
func (r *magazineRepository) GetSubscription(id uint) (*models.MagazineSubscription, error) {
	var sub models.MagazineSubscription
	err := r.db.First(&sub, id).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// GetSubscriptionByUserID retrieves a user's authoritative subscription,
// which is the latest row by creation time.
func (r *magazineRepository) GetSubscriptionByUserID(userID uint) (*models.MagazineSubscription, error) {
	var sub models.MagazineSubscription
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// ListSubscriptions retrieves subscriptions newest first with pagination
func (r *magazineRepository) ListSubscriptions(limit, offset int) ([]models.MagazineSubscription, error) {
	if limit <= 0 {
		limit = 100
	}
	var subs []models.MagazineSubscription
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&subs).Error
	return subs, err
}

// ListSubscriptionsByStatus retrieves subscriptions in one status, newest first
func (r *magazineRepository) ListSubscriptionsByStatus(status string) ([]models.MagazineSubscription, error) {
	var subs []models.MagazineSubscription
	err := r.db.Where("status = ?", status).Order("created_at DESC").Find(&subs).Error
	return subs, err
}

// CreateSubscription creates a new subscription, defaulting status and price
func (r *magazineRepository) CreateSubscription(sub *models.MagazineSubscription) error {
	if sub.Status == "" {
		sub.Status = models.MagazineStatusActive
	}
	if sub.Price == 0 {
		sub.Price = models.DefaultMagazinePriceCents
	}
	return r.db.Create(sub).Error
}

// UpdateSubscription applies a sparse set of field changes
func (r *magazineRepository) UpdateSubscription(id uint, changes map[string]interface{}) (*models.MagazineSubscription, error) {
	res := r.db.Model(&models.MagazineSubscription{}).Where("id = ?", id).Updates(changes)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&models.MagazineSubscription{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.GetSubscription(id)
}

// CancelSubscription moves a subscription to cancelled
func (r *magazineRepository) CancelSubscription(id uint) (*models.MagazineSubscription, error) {
	return r.UpdateSubscription(id, map[string]interface{}{"status": models.MagazineStatusCancelled})
}

// RenewSubscription moves a subscription back to active
func (r *magazineRepository) RenewSubscription(id uint) (*models.MagazineSubscription, error) {
	return r.UpdateSubscription(id, map[string]interface{}{"status": models.MagazineStatusActive})
}

// SaveSubscriberInfo stores the mailing details for a subscription
func (r *magazineRepository) SaveSubscriberInfo(info *models.MagazineSubscriberInfo) error {
	return r.db.Create(info).Error
}

// GetSubscriberInfo retrieves the mailing details of a subscription
func (r *magazineRepository) GetSubscriberInfo(subscriptionID uint) (*models.MagazineSubscriberInfo, error) {
	var info models.MagazineSubscriberInfo
	err := r.db.Where("subscription_id = ?", subscriptionID).First(&info).Error
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// GetIssue retrieves an issue by its ID
func (r *magazineRepository) GetIssue(id uint) (*models.MagazineIssue, error) {
	var issue models.MagazineIssue
	err := r.db.First(&issue, id).Error
	if err != nil {
		return nil, err
	}
	return &issue, nil
}

// ListIssues retrieves all issues, newest issue date first
func (r *magazineRepository) ListIssues(limit, offset int) ([]models.MagazineIssue, error) {
	if limit <= 0 {
		limit = 100
	}
	var issues []models.MagazineIssue
	err := r.db.Order("issue_date DESC").Limit(limit).Offset(offset).Find(&issues).Error
	return issues, err
}

// ListPublishedIssues retrieves published issues, newest issue date first
func (r *magazineRepository) ListPublishedIssues(limit, offset int) ([]models.MagazineIssue, error) {
	if limit <= 0 {
		limit = 100
	}
	var issues []models.MagazineIssue
	err := r.db.Where("is_published = ?", true).
		Order("issue_date DESC").Limit(limit).Offset(offset).Find(&issues).Error
	return issues, err
}

// LatestIssue retrieves the newest published issue
func (r *magazineRepository) LatestIssue() (*models.MagazineIssue, error) {
	var issue models.MagazineIssue
	err := r.db.Where("is_published = ?", true).Order("issue_date DESC").First(&issue).Error
	if err != nil {
		return nil, err
	}
	return &issue, nil
}

// CreateIssue creates a new issue in the database
func (r *magazineRepository) CreateIssue(issue *models.MagazineIssue) error {
	return r.db.Create(issue).Error
}

// UpdateIssue applies a sparse set of field changes
func (r *magazineRepository) UpdateIssue(id uint, changes map[string]interface{}) (*models.MagazineIssue, error) {
	res := r.db.Model(&models.MagazineIssue{}).Where("id = ?", id).Updates(changes)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&models.MagazineIssue{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.GetIssue(id)
}

// PublishIssue makes an issue visible to subscribers
func (r *magazineRepository) PublishIssue(id uint) (*models.MagazineIssue, error) {
	return r.UpdateIssue(id, map[string]interface{}{"is_published": true})
}

// UnpublishIssue hides an issue again
func (r *magazineRepository) UnpublishIssue(id uint) (*models.MagazineIssue, error) {
	return r.UpdateIssue(id, map[string]interface{}{"is_published": false})
}
