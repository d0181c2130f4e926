package models

import "time"

const (
	MagazineStatusActive    = "active"
	MagazineStatusCancelled = "cancelled"
	MagazineStatusExpired   = "expired"
)

// DefaultMagazinePriceCents is $3.99, applied when no price is given.
const DefaultMagazinePriceCents = 399

// MagazineSubscription tracks one user's magazine subscription. A user may
// accumulate several rows over time; the latest by creation time is
// authoritative.
type MagazineSubscription struct {
	ID                   uint       `gorm:"primaryKey" json:"id"`
	UserID               uint       `gorm:"index;not null" json:"user_id"`
	User                 *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Status               string     `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	StartDate            time.Time  `gorm:"not null" json:"start_date"`
	EndDate              *time.Time `gorm:"type:timestamp;default:null" json:"end_date,omitempty"`
	StripeSubscriptionID string     `gorm:"type:varchar(191)" json:"stripe_subscription_id,omitempty"`
	PaymentMethod        string     `gorm:"type:varchar(50)" json:"payment_method,omitempty"` // stripe, paypal
	Price                int        `gorm:"not null" json:"price"`                            // cents
	InvoiceSent          bool       `gorm:"default:false" json:"invoice_sent"`
	InvoiceSentDate      *time.Time `gorm:"type:timestamp;default:null" json:"invoice_sent_date,omitempty"`
	PaymentReceived      bool       `gorm:"default:false" json:"payment_received"`
	PaymentReceivedDate  *time.Time `gorm:"type:timestamp;default:null" json:"payment_received_date,omitempty"`
	CreatedAt            time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt            time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
