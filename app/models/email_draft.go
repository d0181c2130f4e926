package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EmailDraft is an unsent outreach email, optionally based on a template.
type EmailDraft struct {
	ID         string         `gorm:"primaryKey;type:char(36)" json:"id"`
	Name       string         `gorm:"type:varchar(150);not null" json:"name"`
	Subject    string         `gorm:"type:varchar(255);not null" json:"subject"`
	Content    string         `gorm:"type:text;not null" json:"content"`
	Recipients datatypes.JSON `gorm:"type:json" json:"recipients,omitempty"`
	CreatedBy  uint           `gorm:"not null;index" json:"created_by"`
	CreatedAt  time.Time      `gorm:"autoCreateTime;not null" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime;not null" json:"updated_at"`
	TemplateID *string        `gorm:"type:char(36);index" json:"template_id,omitempty"`
}

func (d *EmailDraft) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	return nil
}
