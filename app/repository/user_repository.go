package repository

import (
	"time"

	"github.com/filmwire/filmwire/app/models"
	"gorm.io/gorm"
)

// userRepository implements the UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create creates a new user in the database
func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by their ID
func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername retrieves a user by their username
func (r *userRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by their email address
func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByStripeCustomerID retrieves all users linked to a provider customer
func (r *userRepository) GetByStripeCustomerID(customerID string) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("stripe_customer_id = ?", customerID).Find(&users).Error
	return users, err
}

// Update applies a sparse set of field changes and returns the updated row.
// Only the named fields change; a missing ID yields gorm.ErrRecordNotFound.
func (r *userRepository) Update(id uint, changes map[string]interface{}) (*models.User, error) {
	res := r.db.Model(&models.User{}).Where("id = ?", id).Updates(changes)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// Updates with unchanged values also reports zero rows, so check
		// for existence before reporting not found.
		var count int64
		if err := r.db.Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.GetByID(id)
}

// UpdateStripeCustomerID sets the provider customer ID on a user
func (r *userRepository) UpdateStripeCustomerID(userID uint, customerID string) (*models.User, error) {
	return r.Update(userID, map[string]interface{}{"stripe_customer_id": customerID})
}

// UpdateStripeInfo applies the given provider identifiers to a user
func (r *userRepository) UpdateStripeInfo(userID uint, info StripeInfo) (*models.User, error) {
	changes := map[string]interface{}{}
	if info.CustomerID != nil {
		changes["stripe_customer_id"] = *info.CustomerID
	}
	if info.AccountID != nil {
		changes["stripe_account_id"] = *info.AccountID
	}
	if info.SubscriptionID != nil {
		changes["stripe_subscription_id"] = *info.SubscriptionID
	}
	if len(changes) == 0 {
		return r.GetByID(userID)
	}
	return r.Update(userID, changes)
}

// UpdateFilmmakerSubscription activates a filmmaker subscription for a user
func (r *userRepository) UpdateFilmmakerSubscription(userID uint, tier string, startDate, endDate time.Time) (*models.User, error) {
	return r.Update(userID, map[string]interface{}{
		"subscription_tier":       tier,
		"subscription_start_date": startDate,
		"subscription_end_date":   endDate,
		"is_active_filmmaker":     true,
	})
}

// GetActiveFilmmakers returns users whose filmmaker subscription is still running
func (r *userRepository) GetActiveFilmmakers() ([]models.User, error) {
	var users []models.User
	err := r.db.
		Where("is_active_filmmaker = ? AND subscription_end_date > ?", true, time.Now()).
		Find(&users).Error
	return users, err
}
