package repository

import (
	"errors"

	"github.com/filmwire/filmwire/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// counterRowID is the fixed primary key of the single counter row.
const counterRowID = 1

// counterRepository implements the CounterRepository interface
type counterRepository struct {
	db *gorm.DB
}

// NewCounterRepository creates a new counter repository instance
func NewCounterRepository(db *gorm.DB) CounterRepository {
	return &counterRepository{db: db}
}

// Increment bumps the counter with one upsert statement so concurrent
// requests never lose a hit, then reads back the new value in the same
// transaction.
func (r *counterRepository) Increment() (int64, error) {
	var value int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"count": gorm.Expr("count + 1")}),
		}).Create(&models.VisitorCounter{ID: counterRowID, Count: 1})
		if res.Error != nil {
			return res.Error
		}
		var counter models.VisitorCounter
		if err := tx.First(&counter, counterRowID).Error; err != nil {
			return err
		}
		value = counter.Count
		return nil
	})
	if err != nil {
		return 0, err
	}
	return value, nil
}

// Current returns the counter value without bumping it. A missing row
// counts as zero.
func (r *counterRepository) Current() (int64, error) {
	var counter models.VisitorCounter
	err := r.db.First(&counter, counterRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return counter.Count, nil
}
