package models

import "time"

// VisitorCounter is a single-row global hit counter.
type VisitorCounter struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Count       int64     `gorm:"not null;default:0" json:"count"`
	LastUpdated time.Time `gorm:"not null;autoUpdateTime" json:"last_updated"`
}

func (VisitorCounter) TableName() string {
	return "visitor_counter"
}
