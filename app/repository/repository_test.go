package repository

import (
	"path/filepath"
	"testing"

	"github.com/filmwire/filmwire/app/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a throwaway sqlite database and migrates the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Video{},
		&models.Platform{},
		&models.Distribution{},
		&models.Revenue{},
		&models.SubscriptionPlan{},
		&models.RevenueStatement{},
		&models.ContentReport{},
		&models.ModerationQueueItem{},
		&models.FilmmakerContact{},
		&models.MagazineSubscription{},
		&models.MagazineIssue{},
		&models.MagazineSubscriberInfo{},
		&models.VisitorCounter{},
		&models.EmailTemplate{},
		&models.EmailDraft{},
		&models.EmailSent{},
	)
	require.NoError(t, err)

	return db
}

// createTestUser inserts a minimal valid user and returns it.
func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Name:     "Test " + username,
		Password: "not-a-real-hash",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
