package models

import "time"

// RevenueStatement is a monthly payout rollup for one user. All amounts are
// in cents; PlatformFee is 15% of TotalRevenue. At most one statement exists
// per (user, month, year) -- enforced by callers via GetMonthly, not by a
// schema constraint.
type RevenueStatement struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UserID       uint       `gorm:"index;not null" json:"user_id"`
	Month        int        `gorm:"not null" json:"month"` // 1-12
	Year         int        `gorm:"not null" json:"year"`
	TotalRevenue int        `gorm:"not null" json:"total_revenue"`
	PlatformFee  int        `gorm:"not null" json:"platform_fee"`
	NetRevenue   int        `gorm:"not null" json:"net_revenue"`
	IsPaid       bool       `gorm:"default:false" json:"is_paid"`
	PaymentDate  *time.Time `gorm:"type:timestamp;default:null" json:"payment_date,omitempty"`
	StatementURL string     `gorm:"type:varchar(500)" json:"statement_url,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
}
