package repository

import (
	"github.com/filmwire/filmwire/app/models"
	"gorm.io/gorm"
)

// emailRepository implements the EmailRepository interface
type emailRepository struct {
	db *gorm.DB
}

// NewEmailRepository creates a new email repository instance
func NewEmailRepository(db *gorm.DB) EmailRepository {
	return &emailRepository{db: db}
}

// CreateTemplate stores a new reusable template
func (r *emailRepository) CreateTemplate(tpl *models.EmailTemplate) error {
	return r.db.Create(tpl).Error
}

// GetTemplate retrieves a template by its UUID
func (r *emailRepository) GetTemplate(id string) (*models.EmailTemplate, error) {
	var tpl models.EmailTemplate
	err := r.db.Where("id = ?", id).First(&tpl).Error
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

// ListTemplates retrieves templates newest first, skipping archived ones
// unless includeArchived is set
func (r *emailRepository) ListTemplates(includeArchived bool) ([]models.EmailTemplate, error) {
	query := r.db.Order("created_at DESC")
	if !includeArchived {
		query = query.Where("is_archived = ?", false)
	}
	var templates []models.EmailTemplate
	err := query.Find(&templates).Error
	return templates, err
}

// UpdateTemplate applies a sparse set of field changes
func (r *emailRepository) UpdateTemplate(id string, changes map[string]interface{}) (*models.EmailTemplate, error) {
	res := r.db.Model(&models.EmailTemplate{}).Where("id = ?", id).Updates(changes)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&models.EmailTemplate{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.GetTemplate(id)
}

// ArchiveTemplate soft-retires a template so it no longer shows up in the
// default listing. Sent emails keep referencing it.
func (r *emailRepository) ArchiveTemplate(id string) error {
	res := r.db.Model(&models.EmailTemplate{}).Where("id = ?", id).Update("is_archived", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&models.EmailTemplate{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
	}
	return nil
}

// CreateDraft stores an unsent email
func (r *emailRepository) CreateDraft(draft *models.EmailDraft) error {
	return r.db.Create(draft).Error
}

// GetDraft retrieves a draft by its UUID
func (r *emailRepository) GetDraft(id string) (*models.EmailDraft, error) {
	var draft models.EmailDraft
	err := r.db.Where("id = ?", id).First(&draft).Error
	if err != nil {
		return nil, err
	}
	return &draft, nil
}

// ListDraftsByUser retrieves a user's drafts, most recently edited first
func (r *emailRepository) ListDraftsByUser(userID uint) ([]models.EmailDraft, error) {
	var drafts []models.EmailDraft
	err := r.db.Where("created_by = ?", userID).Order("updated_at DESC").Find(&drafts).Error
	return drafts, err
}

// DeleteDraft removes a draft
func (r *emailRepository) DeleteDraft(id string) error {
	res := r.db.Where("id = ?", id).Delete(&models.EmailDraft{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// RecordSent stores the record of an email that left the system
func (r *emailRepository) RecordSent(sent *models.EmailSent) error {
	if sent.Status == "" {
		sent.Status = models.EmailStatusSent
	}
	return r.db.Create(sent).Error
}

// ListSent retrieves sent records newest first with pagination
func (r *emailRepository) ListSent(limit, offset int) ([]models.EmailSent, error) {
	if limit <= 0 {
		limit = 100
	}
	var sent []models.EmailSent
	err := r.db.Order("sent_at DESC").Limit(limit).Offset(offset).Find(&sent).Error
	return sent, err
}
