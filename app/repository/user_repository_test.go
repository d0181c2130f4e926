package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserRepositoryPartialUpdate(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	user := createTestUser(t, db, "ava")

	updated, err := repo.Update(user.ID, map[string]interface{}{"bio": "Documentary filmmaker"})
	require.NoError(t, err)
	assert.Equal(t, "Documentary filmmaker", updated.Bio)
	// Untouched fields survive the sparse update.
	assert.Equal(t, user.Username, updated.Username)
	assert.Equal(t, user.Email, updated.Email)

	_, err = repo.Update(9999, map[string]interface{}{"bio": "x"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepositoryLookups(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	user := createTestUser(t, db, "ben")

	byName, err := repo.GetByUsername("ben")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	byEmail, err := repo.GetByEmail("ben@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = repo.GetByUsername("nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepositoryStripeInfo(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	user := createTestUser(t, db, "carla")

	customerID := "cus_123"
	subscriptionID := "sub_456"
	updated, err := repo.UpdateStripeInfo(user.ID, StripeInfo{
		CustomerID:     &customerID,
		SubscriptionID: &subscriptionID,
	})
	require.NoError(t, err)
	assert.Equal(t, "cus_123", updated.StripeCustomerID)
	assert.Equal(t, "sub_456", updated.StripeSubscriptionID)
	assert.Empty(t, updated.StripeAccountID)

	linked, err := repo.GetByStripeCustomerID("cus_123")
	require.NoError(t, err)
	require.Len(t, linked, 1)
	assert.Equal(t, user.ID, linked[0].ID)
}

func TestUserRepositoryFilmmakerSubscription(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	active := createTestUser(t, db, "active")
	lapsed := createTestUser(t, db, "lapsed")

	now := time.Now()
	_, err := repo.UpdateFilmmakerSubscription(active.ID, "Premium", now, now.AddDate(0, 6, 0))
	require.NoError(t, err)
	_, err = repo.UpdateFilmmakerSubscription(lapsed.ID, "Basic", now.AddDate(0, -6, 0), now.AddDate(0, -3, 0))
	require.NoError(t, err)

	filmmakers, err := repo.GetActiveFilmmakers()
	require.NoError(t, err)
	require.Len(t, filmmakers, 1)
	assert.Equal(t, active.ID, filmmakers[0].ID)
	assert.Equal(t, "Premium", filmmakers[0].SubscriptionTier)
	assert.True(t, filmmakers[0].HasActiveSubscription())
}
