package repository

import (
	"time"

	"github.com/filmwire/filmwire/app/models"
	"gorm.io/gorm"
)

// Absence is reported as gorm.ErrRecordNotFound on every Get* method so
// callers can tell "no such row" apart from a failed query.

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByStripeCustomerID(customerID string) ([]models.User, error)
	Update(id uint, changes map[string]interface{}) (*models.User, error)
	UpdateStripeCustomerID(userID uint, customerID string) (*models.User, error)
	UpdateStripeInfo(userID uint, info StripeInfo) (*models.User, error)
	UpdateFilmmakerSubscription(userID uint, tier string, startDate, endDate time.Time) (*models.User, error)
	GetActiveFilmmakers() ([]models.User, error)
}

// StripeInfo carries the sparse provider identifier updates for a user.
type StripeInfo struct {
	CustomerID     *string
	AccountID      *string
	SubscriptionID *string
}

// VideoRepository defines the interface for video-related database operations
type VideoRepository interface {
	Create(video *models.Video) error
	GetByID(id uint) (*models.Video, error)
	GetByUser(userID uint) ([]models.Video, error)
	Update(id uint, changes map[string]interface{}) (*models.Video, error)
	// Delete removes the video's distributions, then its revenue rows, then
	// the video itself, in that order inside one transaction. It returns
	// true iff the video row was removed.
	Delete(id uint) (bool, error)
}

// PlatformRepository defines the interface for the platform catalog
type PlatformRepository interface {
	GetByID(id uint) (*models.Platform, error)
	GetAll() ([]models.Platform, error)
	Create(platform *models.Platform) error
}

// DistributionRepository defines the interface for distribution operations
type DistributionRepository interface {
	Create(distribution *models.Distribution) error
	GetByID(id uint) (*models.Distribution, error)
	GetByVideo(videoID uint) ([]models.Distribution, error)
	GetByUser(userID uint) ([]models.Distribution, error)
	Update(id uint, changes map[string]interface{}) (*models.Distribution, error)
}

// RevenueStats is the aggregate result for one user's revenue ledger.
type RevenueStats struct {
	Total      float64            `json:"total"`
	ByPlatform map[string]float64 `json:"byPlatform"`
}

// RevenueRepository defines the interface for the revenue ledger
type RevenueRepository interface {
	Create(revenue *models.Revenue) error
	GetByID(id uint) (*models.Revenue, error)
	GetByVideo(videoID uint) ([]models.Revenue, error)
	GetByUser(userID uint) ([]models.Revenue, error)
	StatsByUser(userID uint) (*RevenueStats, error)
}

// SubscriptionPlanRepository defines the interface for the plan catalog
type SubscriptionPlanRepository interface {
	GetAll() ([]models.SubscriptionPlan, error)
	GetByID(id uint) (*models.SubscriptionPlan, error)
	Create(plan *models.SubscriptionPlan) error
}

// RevenueStatementRepository defines the interface for monthly statements
type RevenueStatementRepository interface {
	ListByUser(userID uint) ([]models.RevenueStatement, error)
	GetByID(id uint) (*models.RevenueStatement, error)
	Create(statement *models.RevenueStatement) error
	UpdatePayment(id uint, isPaid bool, paymentDate *time.Time) (*models.RevenueStatement, error)
	GetMonthly(userID uint, month, year int) (*models.RevenueStatement, error)
}

// ContentReportRepository defines the interface for user-submitted reports
type ContentReportRepository interface {
	Create(report *models.ContentReport) error
	GetByVideo(videoID uint) ([]models.ContentReport, error)
	Update(id uint, changes map[string]interface{}) (*models.ContentReport, error)
	GetPending() ([]models.ContentReport, error)
}

// ModerationQueueRepository defines the interface for the review worklist
type ModerationQueueRepository interface {
	Create(item *models.ModerationQueueItem) error
	GetByID(id uint) (*models.ModerationQueueItem, error)
	GetByVideoID(videoID uint) (*models.ModerationQueueItem, error)
	Update(id uint, changes map[string]interface{}) (*models.ModerationQueueItem, error)
	GetPending(limit int) ([]models.ModerationQueueItem, error)
	Assign(queueID, moderatorID uint) (*models.ModerationQueueItem, error)
}

// ImportResult reports the outcome of a bulk contact import. Failed counts
// both skipped duplicates and rows the store rejected.
type ImportResult struct {
	Imported int `json:"imported"`
	Failed   int `json:"failed"`
}

// ContactRepository defines the interface for filmmaker outreach contacts
type ContactRepository interface {
	GetByID(id uint) (*models.FilmmakerContact, error)
	GetByEmail(email string) (*models.FilmmakerContact, error)
	List(limit, offset int) ([]models.FilmmakerContact, error)
	Create(contact *models.FilmmakerContact) error
	Update(id uint, changes map[string]interface{}) (*models.FilmmakerContact, error)
	Delete(id uint) (bool, error)
	MarkInvited(id uint) (*models.FilmmakerContact, error)
	MarkRegistered(id, userID uint) (*models.FilmmakerContact, error)
	GetUnregistered() ([]models.FilmmakerContact, error)
	GetWithoutInvitation() ([]models.FilmmakerContact, error)
	Search(query string) ([]models.FilmmakerContact, error)
	FindByTags(tags []string) ([]models.FilmmakerContact, error)
	Import(contacts []models.FilmmakerContact) (ImportResult, error)
	Count() (int64, error)
}

// MagazineRepository defines the interface for magazine subscriptions,
// issues and subscriber info
type MagazineRepository interface {
	GetSubscription(id uint) (*models.MagazineSubscription, error)
	GetSubscriptionByUserID(userID uint) (*models.MagazineSubscription, error)
	ListSubscriptions(limit, offset int) ([]models.MagazineSubscription, error)
	ListSubscriptionsByStatus(status string) ([]models.MagazineSubscription, error)
	CreateSubscription(sub *models.MagazineSubscription) error
	UpdateSubscription(id uint, changes map[string]interface{}) (*models.MagazineSubscription, error)
	CancelSubscription(id uint) (*models.MagazineSubscription, error)
	RenewSubscription(id uint) (*models.MagazineSubscription, error)
	SaveSubscriberInfo(info *models.MagazineSubscriberInfo) error
	GetSubscriberInfo(subscriptionID uint) (*models.MagazineSubscriberInfo, error)

	GetIssue(id uint) (*models.MagazineIssue, error)
	ListIssues(limit, offset int) ([]models.MagazineIssue, error)
	ListPublishedIssues(limit, offset int) ([]models.MagazineIssue, error)
	LatestIssue() (*models.MagazineIssue, error)
	CreateIssue(issue *models.MagazineIssue) error
	UpdateIssue(id uint, changes map[string]interface{}) (*models.MagazineIssue, error)
	PublishIssue(id uint) (*models.MagazineIssue, error)
	UnpublishIssue(id uint) (*models.MagazineIssue, error)
}

// EmailRepository defines the interface for outreach email records
type EmailRepository interface {
	CreateTemplate(tpl *models.EmailTemplate) error
	GetTemplate(id string) (*models.EmailTemplate, error)
	ListTemplates(includeArchived bool) ([]models.EmailTemplate, error)
	UpdateTemplate(id string, changes map[string]interface{}) (*models.EmailTemplate, error)
	ArchiveTemplate(id string) error

	CreateDraft(draft *models.EmailDraft) error
	GetDraft(id string) (*models.EmailDraft, error)
	ListDraftsByUser(userID uint) ([]models.EmailDraft, error)
	DeleteDraft(id string) error

	RecordSent(sent *models.EmailSent) error
	ListSent(limit, offset int) ([]models.EmailSent, error)
}

// CounterRepository defines the interface for the global visitor counter
type CounterRepository interface {
	// Increment bumps the counter by one with a single atomic UPDATE
	// (creating the row at 1 when missing) and returns the new value.
	Increment() (int64, error)
	Current() (int64, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	User             UserRepository
	Video            VideoRepository
	Platform         PlatformRepository
	Distribution     DistributionRepository
	Revenue          RevenueRepository
	SubscriptionPlan SubscriptionPlanRepository
	RevenueStatement RevenueStatementRepository
	ContentReport    ContentReportRepository
	ModerationQueue  ModerationQueueRepository
	Contact          ContactRepository
	Magazine         MagazineRepository
	Email            EmailRepository
	Counter          CounterRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:             NewUserRepository(db),
		Video:            NewVideoRepository(db),
		Platform:         NewPlatformRepository(db),
		Distribution:     NewDistributionRepository(db),
		Revenue:          NewRevenueRepository(db),
		SubscriptionPlan: NewSubscriptionPlanRepository(db),
		RevenueStatement: NewRevenueStatementRepository(db),
		ContentReport:    NewContentReportRepository(db),
		ModerationQueue:  NewModerationQueueRepository(db),
		Contact:          NewContactRepository(db),
		Magazine:         NewMagazineRepository(db),
		Email:            NewEmailRepository(db),
		Counter:          NewCounterRepository(db),
	}
}
