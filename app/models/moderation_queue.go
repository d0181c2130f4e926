package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	QueueStatusPending  = "pending"
	QueueStatusInReview = "in-review"
	QueueStatusApproved = "approved"
	QueueStatusRejected = "rejected"
)

const (
	QueuePriorityLow    = "low"
	QueuePriorityNormal = "normal"
	QueuePriorityHigh   = "high"
	QueuePriorityUrgent = "urgent"
)

// ModerationQueueItem is the worklist entry for a video awaiting content
// review. The unique index on VideoID keeps the queue at one entry per video.
type ModerationQueueItem struct {
	ID                    uint           `gorm:"primaryKey" json:"id"`
	VideoID               uint           `gorm:"uniqueIndex;not null" json:"video_id"`
	Video                 *Video         `gorm:"foreignKey:VideoID" json:"video,omitempty"`
	UserID                uint           `gorm:"index;not null" json:"user_id"` // video owner
	AddedAt               time.Time      `gorm:"autoCreateTime" json:"added_at"`
	Priority              string         `gorm:"type:varchar(10);default:'normal'" json:"priority"`
	AIScreeningCompleted  bool           `gorm:"default:false" json:"ai_screening_completed"`
	HumanReviewRequired   bool           `gorm:"default:true" json:"human_review_required"`
	AssignedTo            *uint          `gorm:"index" json:"assigned_to,omitempty"`
	Status                string         `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	PlatformSpecificFlags datatypes.JSON `gorm:"type:json" json:"platform_specific_flags,omitempty"`
}

// TableName keeps the table singular to match the schema migrations.
func (ModerationQueueItem) TableName() string {
	return "moderation_queue"
}
