package repository

import (
	"time"

	"github.com/filmwire/filmwire/app/models"
	"gorm.io/gorm"
)

// revenueStatementRepository implements the RevenueStatementRepository interface
type revenueStatementRepository struct {
	db *gorm.DB
}

// NewRevenueStatementRepository creates a new statement repository instance
func NewRevenueStatementRepository(db *gorm.DB) RevenueStatementRepository {
	return &revenueStatementRepository{db: db}
}

// ListByUser retrieves a user's statements, most recent period first
func (r *revenueStatementRepository) ListByUser(userID uint) ([]models.RevenueStatement, error) {
	var statements []models.RevenueStatement
	err := r.db.Where("user_id = ?", userID).
		Order("year DESC").Order("month DESC").
		Find(&statements).Error
	return statements, err
}

// GetByID retrieves a statement by its ID
func (r *revenueStatementRepository) GetByID(id uint) (*models.RevenueStatement, error) {
	var statement models.RevenueStatement
	err := r.db.First(&statement, id).Error
	if err != nil {
		return nil, err
	}
	return &statement, nil
}

// Create creates a new statement; callers check GetMonthly first to keep one
// statement per (user, month, year)
func (r *revenueStatementRepository) Create(statement *models.RevenueStatement) error {
	return r.db.Create(statement).Error
}

// UpdatePayment marks a statement paid or unpaid
func (r *revenueStatementRepository) UpdatePayment(id uint, isPaid bool, paymentDate *time.Time) (*models.RevenueStatement, error) {
	res := r.db.Model(&models.RevenueStatement{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_paid":      isPaid,
			"payment_date": paymentDate,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&models.RevenueStatement{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.GetByID(id)
}

// GetMonthly retrieves the statement for one user and period
func (r *revenueStatementRepository) GetMonthly(userID uint, month, year int) (*models.RevenueStatement, error) {
	var statement models.RevenueStatement
	err := r.db.
		Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
		First(&statement).Error
	if err != nil {
		return nil, err
	}
	return &statement, nil
}
