package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmailTemplate is a reusable outreach template. Email tables are keyed by
// UUID strings instead of auto-increment IDs.
type EmailTemplate struct {
	ID         string    `gorm:"primaryKey;type:char(36)" json:"id"`
	Name       string    `gorm:"type:varchar(150);not null" json:"name"`
	Subject    string    `gorm:"type:varchar(255);not null" json:"subject"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	CreatedBy  uint      `gorm:"not null" json:"created_by"`
	CreatedAt  time.Time `gorm:"autoCreateTime;not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime;not null" json:"updated_at"`
	UpdatedBy  *uint     `json:"updated_by,omitempty"`
	IsArchived bool      `gorm:"default:false" json:"is_archived"`
}

func (t *EmailTemplate) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}
