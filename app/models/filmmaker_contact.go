package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
)

// FilmmakerContact is an outreach lead tracked from first import through
// invitation emails to eventual registration.
type FilmmakerContact struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	Name             string         `gorm:"type:varchar(150);not null" json:"name" validate:"required,min=2,max=150"`
	Email            string         `gorm:"uniqueIndex;type:varchar(200);not null" json:"email" validate:"required,email"`
	FilmTitle        string         `gorm:"type:varchar(255)" json:"film_title,omitempty"`
	SubmissionYear   int            `json:"submission_year,omitempty"`
	FilmCategory     string         `gorm:"type:varchar(100)" json:"film_category,omitempty"`
	FilmFestivalYear int            `json:"film_festival_year,omitempty"`
	AdditionalInfo   datatypes.JSON `gorm:"type:json" json:"additional_info,omitempty"`
	DateAdded        time.Time      `gorm:"autoCreateTime;index" json:"date_added"`
	// Invitation tracking
	InvitationSent       bool       `gorm:"default:false;index" json:"invitation_sent"`
	InvitationSentAt     *time.Time `gorm:"type:timestamp;default:null" json:"invitation_sent_at,omitempty"`
	LastInvitationSentAt *time.Time `gorm:"type:timestamp;default:null" json:"last_invitation_sent_at,omitempty"`
	InvitationCount      int        `gorm:"default:0" json:"invitation_count"`
	HasRegistered        bool       `gorm:"default:false;index" json:"has_registered"`
	RegisteredAt         *time.Time `gorm:"type:timestamp;default:null" json:"registered_at,omitempty"`
	RegisteredUserID     *uint      `gorm:"index" json:"registered_user_id,omitempty"`
	Notes                string     `gorm:"type:text" json:"notes,omitempty"`
	// Engagement tracking
	LastEmailOpened  *time.Time     `gorm:"type:timestamp;default:null" json:"last_email_opened,omitempty"`
	LastEmailClicked *time.Time     `gorm:"type:timestamp;default:null" json:"last_email_clicked,omitempty"`
	Tags             datatypes.JSON `gorm:"type:json" json:"tags,omitempty"`
}

func (c *FilmmakerContact) Validate() error {
	return validator.New().Struct(c)
}
