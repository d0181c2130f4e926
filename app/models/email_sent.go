package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	EmailStatusSent      = "sent"
	EmailStatusDelivered = "delivered"
	EmailStatusFailed    = "failed"
)

// EmailSent records an outreach email that left the system, with open/click
// counters updated by tracking callbacks.
type EmailSent struct {
	ID         string         `gorm:"primaryKey;type:char(36)" json:"id"`
	Subject    string         `gorm:"type:varchar(255);not null" json:"subject"`
	Content    string         `gorm:"type:text;not null" json:"content"`
	Recipients datatypes.JSON `gorm:"type:json" json:"recipients,omitempty"`
	SentBy     uint           `gorm:"not null;index" json:"sent_by"`
	SentAt     time.Time      `gorm:"autoCreateTime;not null;index" json:"sent_at"`
	TemplateID *string        `gorm:"type:char(36);index" json:"template_id,omitempty"`
	Opens      int            `gorm:"default:0;not null" json:"opens"`
	Clicks     int            `gorm:"default:0;not null" json:"clicks"`
	Status     string         `gorm:"type:varchar(20);default:'sent';not null" json:"status"`
}

func (e *EmailSent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}

func (EmailSent) TableName() string {
	return "email_sent"
}
