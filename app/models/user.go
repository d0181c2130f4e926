package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

const (
	VerificationUnverified = "unverified"
	VerificationPending    = "pending"
	VerificationVerified   = "verified"
)

const (
	TierBasic        = "basic"
	TierPremium      = "premium"
	TierProfessional = "professional"
)

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"uniqueIndex;type:varchar(100);not null" json:"username" validate:"required,min=3,max=100"`
	Password     string `gorm:"type:text;not null" json:"-" validate:"required,min=6"`
	Email        string `gorm:"uniqueIndex;type:varchar(200);not null" json:"email" validate:"required,email,min=5,max=200"`
	Name         string `gorm:"type:varchar(150);not null" json:"name" validate:"required,min=2,max=150"`
	Bio          string `gorm:"type:text" json:"bio,omitempty" validate:"max=1000"`
	ProfileImage string `gorm:"type:varchar(255)" json:"profile_image,omitempty"`
	// Payment provider identifiers
	StripeCustomerID     string `gorm:"type:varchar(191);index" json:"stripe_customer_id,omitempty"`
	StripeAccountID      string `gorm:"type:varchar(191)" json:"stripe_account_id,omitempty"`
	StripeSubscriptionID string `gorm:"type:varchar(191)" json:"stripe_subscription_id,omitempty"`
	// Filmmaker subscription
	SubscriptionTier      string     `gorm:"type:varchar(100)" json:"subscription_tier,omitempty"`
	SubscriptionStartDate *time.Time `gorm:"type:timestamp;default:null" json:"subscription_start_date,omitempty"`
	SubscriptionEndDate   *time.Time `gorm:"type:timestamp;default:null" json:"subscription_end_date,omitempty"`
	IsActiveFilmmaker     bool       `gorm:"default:false" json:"is_active_filmmaker"`
	// Moderation trust
	VerificationStatus    string         `gorm:"type:varchar(20);default:'unverified'" json:"verification_status"`
	VerificationDocuments datatypes.JSON `gorm:"type:json" json:"verification_documents,omitempty"`
	TrustScore            int            `gorm:"default:0" json:"trust_score"`
	Strikes               int            `gorm:"default:0" json:"strikes"`
	IsBanned              bool           `gorm:"default:false" json:"is_banned"`
	IsAdmin               bool           `gorm:"default:false" json:"is_admin"`
	CreatedAt             time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (u *User) Validate() error {
	v := validator.New()

	return v.Struct(u)
}

// CreateUser builds a registration-ready user with a hashed password.
func CreateUser(username, password, email, name string) (*User, error) {
	pw, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &User{
		Username:           username,
		Password:           pw,
		Email:              email,
		Name:               name,
		VerificationStatus: VerificationUnverified,
	}

	err = u.Validate()
	if err != nil {
		return nil, err
	}

	return u, nil
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	return string(bytes), err
}

// CheckPasswordHash compares the given password with the stored hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}

// CheckPassword verifies if the provided password matches the user's stored password
func (u *User) CheckPassword(password string) bool {
	return CheckPasswordHash(password, u.Password)
}

// SetPassword hashes and sets a new password for the user
func (u *User) SetPassword(password string) error {
	hashedPassword, err := HashPassword(password)
	if err != nil {
		return err
	}
	u.Password = hashedPassword
	return nil
}

// HasActiveSubscription reports whether the filmmaker subscription is still running.
func (u *User) HasActiveSubscription() bool {
	return u.IsActiveFilmmaker && u.SubscriptionEndDate != nil && u.SubscriptionEndDate.After(time.Now())
}
