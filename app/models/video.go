package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
)

const (
	ModerationStatusPending  = "pending"
	ModerationStatusApproved = "approved"
	ModerationStatusRejected = "rejected"
)

type Video struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Title        string         `gorm:"type:varchar(255);not null" json:"title" validate:"required,min=3,max=255"`
	Description  string         `gorm:"type:text" json:"description,omitempty"`
	UserID       uint           `gorm:"index;not null" json:"user_id"`
	User         *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	VideoURL     string         `gorm:"type:varchar(500);not null" json:"video_url" validate:"required"`
	ThumbnailURL string         `gorm:"type:varchar(500)" json:"thumbnail_url,omitempty"`
	Duration     int            `json:"duration,omitempty"` // seconds
	UploadDate   time.Time      `gorm:"autoCreateTime;index" json:"upload_date"`
	IsPublished  bool           `gorm:"default:false" json:"is_published"`
	Metadata     datatypes.JSON `gorm:"type:json" json:"metadata,omitempty"`
	// Content moderation
	ModerationStatus  string         `gorm:"type:varchar(20);default:'pending';index" json:"moderation_status"`
	ModerationNotes   string         `gorm:"type:text" json:"moderation_notes,omitempty"`
	AIScreeningResult datatypes.JSON `gorm:"type:json" json:"ai_screening_result,omitempty"`
	AIScreeningScore  float64        `json:"ai_screening_score,omitempty"` // 0-1 confidence
	ModeratedBy       *uint          `gorm:"index" json:"moderated_by,omitempty"`
	ModeratedAt       *time.Time     `gorm:"type:timestamp;default:null" json:"moderated_at,omitempty"`
	ContentRating     string         `gorm:"type:varchar(10)" json:"content_rating,omitempty"`
	ContentWarnings   datatypes.JSON `gorm:"type:json" json:"content_warnings,omitempty"`
}

func (v *Video) Validate() error {
	return validator.New().Struct(v)
}
