package repository

import (
	"testing"
	"time"

	"github.com/filmwire/filmwire/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMagazineSubscriptionDefaults(t *testing.T) {
	db := newTestDB(t)
	repo := NewMagazineRepository(db)
	user := createTestUser(t, db, "reader")

	sub := &models.MagazineSubscription{UserID: user.ID, StartDate: time.Now()}
	require.NoError(t, repo.CreateSubscription(sub))
	assert.Equal(t, models.MagazineStatusActive, sub.Status)
	assert.Equal(t, models.DefaultMagazinePriceCents, sub.Price)
}

func TestMagazineLatestSubscriptionWins(t *testing.T) {
	db := newTestDB(t)
	repo := NewMagazineRepository(db)
	user := createTestUser(t, db, "reader")

	older := &models.MagazineSubscription{UserID: user.ID, StartDate: time.Now().AddDate(-1, 0, 0), Status: models.MagazineStatusExpired}
	require.NoError(t, repo.CreateSubscription(older))
	require.NoError(t, db.Model(older).Update("created_at", time.Now().AddDate(-1, 0, 0)).Error)

	newer := &models.MagazineSubscription{UserID: user.ID, StartDate: time.Now()}
	require.NoError(t, repo.CreateSubscription(newer))

	current, err := repo.GetSubscriptionByUserID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, newer.ID, current.ID)
}

func TestMagazineCancelAndRenew(t *testing.T) {
	db := newTestDB(t)
	repo := NewMagazineRepository(db)
	user := createTestUser(t, db, "reader")

	sub := &models.MagazineSubscription{UserID: user.ID, StartDate: time.Now()}
	require.NoError(t, repo.CreateSubscription(sub))

	cancelled, err := repo.CancelSubscription(sub.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MagazineStatusCancelled, cancelled.Status)

	renewed, err := repo.RenewSubscription(sub.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MagazineStatusActive, renewed.Status)
}

func TestMagazineIssuePublishing(t *testing.T) {
	db := newTestDB(t)
	repo := NewMagazineRepository(db)

	older := &models.MagazineIssue{Title: "Winter Issue", IssueDate: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, repo.CreateIssue(older))
	newer := &models.MagazineIssue{Title: "Spring Issue", IssueDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, repo.CreateIssue(newer))

	published, err := repo.ListPublishedIssues(0, 0)
	require.NoError(t, err)
	assert.Empty(t, published)

	_, err = repo.PublishIssue(older.ID)
	require.NoError(t, err)
	_, err = repo.PublishIssue(newer.ID)
	require.NoError(t, err)

	latest, err := repo.LatestIssue()
	require.NoError(t, err)
	assert.Equal(t, "Spring Issue", latest.Title)

	_, err = repo.UnpublishIssue(newer.ID)
	require.NoError(t, err)

	latest, err = repo.LatestIssue()
	require.NoError(t, err)
	assert.Equal(t, "Winter Issue", latest.Title)
}
