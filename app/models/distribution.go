package models

import "time"

const (
	DistributionStatusPending     = "pending"
	DistributionStatusProcessing  = "processing"
	DistributionStatusTranscoding = "transcoding"
	DistributionStatusSubmitted   = "submitted"
	DistributionStatusActive      = "active"
	DistributionStatusRejected    = "rejected"
)

// Distribution records one video being pushed to one streaming platform.
type Distribution struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	VideoID            uint       `gorm:"index;not null" json:"video_id"`
	Video              *Video     `gorm:"foreignKey:VideoID" json:"video,omitempty"`
	PlatformID         uint       `gorm:"index;not null" json:"platform_id"`
	Platform           *Platform  `gorm:"foreignKey:PlatformID" json:"platform,omitempty"`
	Status             string     `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	DistributionDate   time.Time  `gorm:"autoCreateTime" json:"distribution_date"`
	Views              int        `gorm:"default:0" json:"views"`
	Revenue            float64    `gorm:"default:0" json:"revenue"`
	ExternalID         string     `gorm:"type:varchar(191)" json:"external_id,omitempty"`
	SubmissionDate     *time.Time `gorm:"type:timestamp;default:null" json:"submission_date,omitempty"`
	ApprovalDate       *time.Time `gorm:"type:timestamp;default:null" json:"approval_date,omitempty"`
	RejectionReason    string     `gorm:"type:text" json:"rejection_reason,omitempty"`
	ProcessingProgress int        `json:"processing_progress,omitempty"` // percent
	LastStatusUpdate   *time.Time `gorm:"type:timestamp;default:null" json:"last_status_update,omitempty"`
	DistributionURL    string     `gorm:"type:varchar(500)" json:"distribution_url,omitempty"`
}

// distributionOrder positions each pipeline status; rejected is terminal and
// handled separately.
var distributionOrder = map[string]int{
	DistributionStatusPending:     0,
	DistributionStatusProcessing:  1,
	DistributionStatusTranscoding: 2,
	DistributionStatusSubmitted:   3,
	DistributionStatusActive:      4,
}

// IsValidDistributionTransition reports whether a distribution may move from
// one status to another. The pipeline only moves forward, and a distribution
// can be rejected at any point before it goes active.
func IsValidDistributionTransition(from, to string) bool {
	if to == DistributionStatusRejected {
		return from != DistributionStatusActive && from != DistributionStatusRejected
	}
	fromPos, ok := distributionOrder[from]
	if !ok {
		return false
	}
	toPos, ok := distributionOrder[to]
	if !ok {
		return false
	}
	return toPos == fromPos+1
}
