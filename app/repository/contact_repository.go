package repository

import (
	"strings"

	"github.com/filmwire/filmwire/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// importBatchSize is the number of contacts inserted per statement during a
// bulk import.
const importBatchSize = 50

// contactRepository implements the ContactRepository interface
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new filmmaker contact repository instance
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

// GetByID retrieves a contact by its ID
func (r *contactRepository) GetByID(id uint) (*models.FilmmakerContact, error) {
	var contact models.FilmmakerContact
	err := r.db.First(&contact, id).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// GetByEmail retrieves a contact by its unique email
func (r *contactRepository) GetByEmail(email string) (*models.FilmmakerContact, error) {
	var contact models.FilmmakerContact
	err := r.db.Where("email = ?", email).First(&contact).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// List retrieves contacts newest first with pagination
func (r *contactRepository) List(limit, offset int) ([]models.FilmmakerContact, error) {
	if limit <= 0 {
		limit = 100
	}
	var contacts []models.FilmmakerContact
	err := r.db.Order("date_added DESC").Limit(limit).Offset(offset).Find(&contacts).Error
	return contacts, err
}

// Create creates a new contact in the database
func (r *contactRepository) Create(contact *models.FilmmakerContact) error {
	return r.db.Create(contact).Error
}

// Update applies a sparse set of field changes and returns the updated row
func (r *contactRepository) Update(id uint, changes map[string]interface{}) (*models.FilmmakerContact, error) {
	res := r.db.Model(&models.FilmmakerContact{}).Where("id = ?", id).Updates(changes)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&models.FilmmakerContact{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.GetByID(id)
}

// Delete removes a contact; true iff a row was removed
func (r *contactRepository) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.FilmmakerContact{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// MarkInvited flags a contact as invited and bumps the invitation counter
// in the same statement.
func (r *contactRepository) MarkInvited(id uint) (*models.FilmmakerContact, error) {
	res := r.db.Model(&models.FilmmakerContact{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"invitation_sent":         true,
			"invitation_sent_at":      gorm.Expr("CURRENT_TIMESTAMP"),
			"last_invitation_sent_at": gorm.Expr("CURRENT_TIMESTAMP"),
			"invitation_count":        gorm.Expr("invitation_count + 1"),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

// MarkRegistered links a contact to the account created from it
func (r *contactRepository) MarkRegistered(id, userID uint) (*models.FilmmakerContact, error) {
	res := r.db.Model(&models.FilmmakerContact{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"has_registered":     true,
			"registered_at":      gorm.Expr("CURRENT_TIMESTAMP"),
			"registered_user_id": userID,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

// GetUnregistered retrieves contacts that never converted to an account
func (r *contactRepository) GetUnregistered() ([]models.FilmmakerContact, error) {
	var contacts []models.FilmmakerContact
	err := r.db.Where("has_registered = ?", false).Order("date_added DESC").Find(&contacts).Error
	return contacts, err
}

// GetWithoutInvitation retrieves contacts that were never invited
func (r *contactRepository) GetWithoutInvitation() ([]models.FilmmakerContact, error) {
	var contacts []models.FilmmakerContact
	err := r.db.Where("invitation_sent = ?", false).Order("date_added DESC").Find(&contacts).Error
	return contacts, err
}

// Search performs a case-insensitive substring match across name, email and
// film title.
func (r *contactRepository) Search(query string) ([]models.FilmmakerContact, error) {
	pattern := "%" + strings.TrimSpace(query) + "%"
	var contacts []models.FilmmakerContact
	err := r.db.
		Where("name LIKE ? OR email LIKE ? OR film_title LIKE ?", pattern, pattern, pattern).
		Order("date_added DESC").
		Find(&contacts).Error
	return contacts, err
}

// FindByTags retrieves contacts whose tag set intersects the query tags
// (OR semantics). Tags live in a JSON array column; MySQL and sqlite spell
// the membership predicate differently.
func (r *contactRepository) FindByTags(tags []string) ([]models.FilmmakerContact, error) {
	if len(tags) == 0 {
		return []models.FilmmakerContact{}, nil
	}
	predicate := "JSON_CONTAINS(tags, JSON_QUOTE(?))"
	if r.db.Dialector.Name() == "sqlite" {
		predicate = "EXISTS (SELECT 1 FROM json_each(filmmaker_contacts.tags) WHERE json_each.value = ?)"
	}
	conditions := r.db
	for _, tag := range tags {
		conditions = conditions.Or(predicate, tag)
	}
	var contacts []models.FilmmakerContact
	err := r.db.Order("date_added DESC").Where(conditions).Find(&contacts).Error
	return contacts, err
}

// Count returns the total number of contacts
func (r *contactRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.FilmmakerContact{}).Count(&count).Error
	return count, err
}

// Import inserts contacts in batches of 50, skipping rows whose email
// already exists. When a whole batch fails, each of its rows is retried on
// its own so one bad row cannot sink the rest. Failed counts skipped
// duplicates as well as rows the store rejected.
func (r *contactRepository) Import(contacts []models.FilmmakerContact) (ImportResult, error) {
	var result ImportResult

	for start := 0; start < len(contacts); start += importBatchSize {
		end := start + importBatchSize
		if end > len(contacts) {
			end = len(contacts)
		}
		batch := make([]models.FilmmakerContact, end-start)
		copy(batch, contacts[start:end])

		res := r.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).Create(&batch)
		if res.Error == nil {
			result.Imported += int(res.RowsAffected)
			result.Failed += len(batch) - int(res.RowsAffected)
			continue
		}

		// Batch insert failed outright; retry row by row to save what we can.
		for i := range batch {
			row := batch[i]
			rowRes := r.db.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "email"}},
				DoNothing: true,
			}).Create(&row)
			if rowRes.Error != nil || rowRes.RowsAffected == 0 {
				result.Failed++
				continue
			}
			result.Imported++
		}
	}

	return result, nil
}
