package models

// SubscriptionPlan is a catalog entry for filmmaker plans. Prices are in
// cents. The catalog is seeded once when the table is empty.
type SubscriptionPlan struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Name           string `gorm:"type:varchar(100);not null" json:"name"`
	Price          int    `gorm:"not null" json:"price"`
	DurationMonths int    `gorm:"not null" json:"duration_months"`
	Description    string `gorm:"type:text;not null" json:"description"`
}
