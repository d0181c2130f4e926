package models

import "time"

// Revenue is one dated revenue+views record for a (video, platform) pair.
// The table is an append-only ledger; rows are never updated in place.
type Revenue struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	VideoID    uint      `gorm:"index;not null" json:"video_id"`
	PlatformID uint      `gorm:"index;not null" json:"platform_id"`
	Date       time.Time `gorm:"autoCreateTime;index" json:"date"`
	Amount     float64   `gorm:"not null" json:"amount"`
	Views      int       `gorm:"not null" json:"views"`
}
