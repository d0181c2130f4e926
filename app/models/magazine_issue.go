package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// MagazineIssue is a publishable content item.
type MagazineIssue struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"type:varchar(255);not null" json:"title" validate:"required,min=3,max=255"`
	Description   string    `gorm:"type:text" json:"description,omitempty"`
	IssueDate     time.Time `gorm:"not null;index" json:"issue_date"`
	CoverImageURL string    `gorm:"type:varchar(500)" json:"cover_image_url,omitempty"`
	IssuuLink     string    `gorm:"type:varchar(500)" json:"issuu_link,omitempty"`
	IsPublished   bool      `gorm:"default:false;index" json:"is_published"`
}

func (i *MagazineIssue) Validate() error {
	return validator.New().Struct(i)
}
