package repository

import (
	"github.com/filmwire/filmwire/app/models"
	"gorm.io/gorm"
)

// subscriptionPlanRepository implements the SubscriptionPlanRepository interface
type subscriptionPlanRepository struct {
	db *gorm.DB
}

// NewSubscriptionPlanRepository creates a new plan repository instance
func NewSubscriptionPlanRepository(db *gorm.DB) SubscriptionPlanRepository {
	return &subscriptionPlanRepository{db: db}
}

// GetAll retrieves the full plan catalog
func (r *subscriptionPlanRepository) GetAll() ([]models.SubscriptionPlan, error) {
	var plans []models.SubscriptionPlan
	err := r.db.Find(&plans).Error
	return plans, err
}

// GetByID retrieves a plan by its ID
func (r *subscriptionPlanRepository) GetByID(id uint) (*models.SubscriptionPlan, error) {
	var plan models.SubscriptionPlan
	err := r.db.First(&plan, id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// Create creates a new plan in the database
func (r *subscriptionPlanRepository) Create(plan *models.SubscriptionPlan) error {
	return r.db.Create(plan).Error
}
