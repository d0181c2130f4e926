package repository

import (
	"sync"

	"gorm.io/gorm"
)

// Factory manages repository instances and ensures they are singletons
type Factory struct {
	db    *gorm.DB
	repos *Repositories
	once  sync.Once
}

// NewFactory creates a new repository factory
func NewFactory(db *gorm.DB) *Factory {
	return &Factory{
		db: db,
	}
}

// GetRepositories returns a singleton instance of all repositories
func (f *Factory) GetRepositories() *Repositories {
	f.once.Do(func() {
		f.repos = NewRepositories(f.db)
	})
	return f.repos
}

// GetUserRepository returns the user repository instance
func (f *Factory) GetUserRepository() UserRepository {
	return f.GetRepositories().User
}

// GetVideoRepository returns the video repository instance
func (f *Factory) GetVideoRepository() VideoRepository {
	return f.GetRepositories().Video
}

// GetPlatformRepository returns the platform repository instance
func (f *Factory) GetPlatformRepository() PlatformRepository {
	return f.GetRepositories().Platform
}

// GetDistributionRepository returns the distribution repository instance
func (f *Factory) GetDistributionRepository() DistributionRepository {
	return f.GetRepositories().Distribution
}

// GetRevenueRepository returns the revenue repository instance
func (f *Factory) GetRevenueRepository() RevenueRepository {
	return f.GetRepositories().Revenue
}

// GetSubscriptionPlanRepository returns the plan repository instance
func (f *Factory) GetSubscriptionPlanRepository() SubscriptionPlanRepository {
	return f.GetRepositories().SubscriptionPlan
}

// GetRevenueStatementRepository returns the statement repository instance
func (f *Factory) GetRevenueStatementRepository() RevenueStatementRepository {
	return f.GetRepositories().RevenueStatement
}

// GetContentReportRepository returns the content report repository instance
func (f *Factory) GetContentReportRepository() ContentReportRepository {
	return f.GetRepositories().ContentReport
}

// GetModerationQueueRepository returns the moderation queue repository instance
func (f *Factory) GetModerationQueueRepository() ModerationQueueRepository {
	return f.GetRepositories().ModerationQueue
}

// GetContactRepository returns the filmmaker contact repository instance
func (f *Factory) GetContactRepository() ContactRepository {
	return f.GetRepositories().Contact
}

// GetMagazineRepository returns the magazine repository instance
func (f *Factory) GetMagazineRepository() MagazineRepository {
	return f.GetRepositories().Magazine
}

// GetEmailRepository returns the email repository instance
func (f *Factory) GetEmailRepository() EmailRepository {
	return f.GetRepositories().Email
}

// GetCounterRepository returns the visitor counter repository instance
func (f *Factory) GetCounterRepository() CounterRepository {
	return f.GetRepositories().Counter
}

// Global factory instance
var globalFactory *Factory
var factoryOnce sync.Once

// InitializeFactory initializes the global repository factory
func InitializeFactory(db *gorm.DB) {
	factoryOnce.Do(func() {
		globalFactory = NewFactory(db)
	})
}

// GetGlobalFactory returns the global repository factory instance
func GetGlobalFactory() *Factory {
	if globalFactory == nil {
		panic("Repository factory not initialized. Call InitializeFactory first.")
	}
	return globalFactory
}

// GetGlobalRepositories returns the global repositories instance
func GetGlobalRepositories() *Repositories {
	return GetGlobalFactory().GetRepositories()
}
