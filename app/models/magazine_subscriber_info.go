package models

import "time"

// MagazineSubscriberInfo holds the mailing details collected for a print
// subscription. One row per subscription.
type MagazineSubscriberInfo struct {
	ID             uint                  `gorm:"primaryKey" json:"id"`
	SubscriptionID uint                  `gorm:"uniqueIndex;not null" json:"subscription_id"`
	Subscription   *MagazineSubscription `gorm:"foreignKey:SubscriptionID" json:"subscription,omitempty"`
	FullName       string                `gorm:"type:varchar(150);not null" json:"full_name"`
	Email          string                `gorm:"type:varchar(200);not null" json:"email"`
	PhoneNumber    string                `gorm:"type:varchar(30);not null" json:"phone_number"`
	MailingAddress string                `gorm:"type:varchar(255);not null" json:"mailing_address"`
	City           string                `gorm:"type:varchar(100);not null" json:"city"`
	State          string                `gorm:"type:varchar(100);not null" json:"state"`
	ZipCode        string                `gorm:"type:varchar(20);not null" json:"zip_code"`
	CreatedAt      time.Time             `gorm:"autoCreateTime" json:"created_at"`
}

func (MagazineSubscriberInfo) TableName() string {
	return "magazine_subscriber_info"
}
