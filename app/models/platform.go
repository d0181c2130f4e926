package models

import "gorm.io/datatypes"

// Platform is a distribution target. The catalog is static reference data,
// seeded once when the table is empty.
type Platform struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	Name              string         `gorm:"type:varchar(150);not null" json:"name"`
	LogoURL           string         `gorm:"type:varchar(255)" json:"logo_url,omitempty"`
	APIEndpoint       string         `gorm:"type:varchar(255)" json:"api_endpoint,omitempty"`
	ContentPolicies   datatypes.JSON `gorm:"type:json" json:"content_policies,omitempty"`
	RestrictedContent datatypes.JSON `gorm:"type:json" json:"restricted_content,omitempty"`
	RequiredDocuments datatypes.JSON `gorm:"type:json" json:"required_documents,omitempty"`
	RatingSystem      string         `gorm:"type:varchar(50)" json:"rating_system,omitempty"`
}
