package models

import "time"

const (
	ReportStatusPending   = "pending"
	ReportStatusReviewed  = "reviewed"
	ReportStatusDismissed = "dismissed"
)

// ContentReport is a user-submitted flag on a video. ReporterID is nil for
// anonymous reports.
type ContentReport struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	VideoID       uint       `gorm:"index;not null" json:"video_id"`
	Video         *Video     `gorm:"foreignKey:VideoID" json:"video,omitempty"`
	ReporterID    *uint      `gorm:"index" json:"reporter_id,omitempty"`
	Reporter      *User      `gorm:"foreignKey:ReporterID" json:"reporter,omitempty"`
	ReportReason  string     `gorm:"type:varchar(100);not null" json:"report_reason"`
	ReportDetails string     `gorm:"type:text" json:"report_details,omitempty"`
	ReportedAt    time.Time  `gorm:"autoCreateTime" json:"reported_at"`
	Status        string     `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	ReviewedBy    *uint      `gorm:"index" json:"reviewed_by,omitempty"`
	ReviewedAt    *time.Time `gorm:"type:timestamp;default:null" json:"reviewed_at,omitempty"`
	Resolution    string     `gorm:"type:text" json:"resolution,omitempty"`
}
