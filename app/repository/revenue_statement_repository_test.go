package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/filmwire/filmwire/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRevenueStatementMonthlyLookup(t *testing.T) {
	db := newTestDB(t)
	repo := NewRevenueStatementRepository(db)
	user := createTestUser(t, db, "payee")

	statement := &models.RevenueStatement{
		UserID:       user.ID,
		Month:        3,
		Year:         2026,
		TotalRevenue: 10000,
		PlatformFee:  1500,
		NetRevenue:   8500,
	}
	require.NoError(t, repo.Create(statement))

	found, err := repo.GetMonthly(user.ID, 3, 2026)
	require.NoError(t, err)
	assert.Equal(t, statement.ID, found.ID)

	_, err = repo.GetMonthly(user.ID, 4, 2026)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestRevenueStatementListOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewRevenueStatementRepository(db)
	user := createTestUser(t, db, "ordered")

	periods := []struct{ month, year int }{
		{11, 2025}, {1, 2026}, {12, 2025},
	}
	for _, p := range periods {
		require.NoError(t, repo.Create(&models.RevenueStatement{
			UserID: user.ID, Month: p.month, Year: p.year,
			TotalRevenue: 100, PlatformFee: 15, NetRevenue: 85,
		}))
	}

	statements, err := repo.ListByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, statements, 3)
	assert.Equal(t, 2026, statements[0].Year)
	assert.Equal(t, 12, statements[1].Month)
	assert.Equal(t, 11, statements[2].Month)
}

func TestRevenueStatementUpdatePayment(t *testing.T) {
	db := newTestDB(t)
	repo := NewRevenueStatementRepository(db)
	user := createTestUser(t, db, "paid")

	statement := &models.RevenueStatement{UserID: user.ID, Month: 5, Year: 2026, TotalRevenue: 200, PlatformFee: 30, NetRevenue: 170}
	require.NoError(t, repo.Create(statement))

	when := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	updated, err := repo.UpdatePayment(statement.ID, true, &when)
	require.NoError(t, err)
	assert.True(t, updated.IsPaid)
	require.NotNil(t, updated.PaymentDate)

	// Reverting to unpaid clears the date.
	updated, err = repo.UpdatePayment(statement.ID, false, nil)
	require.NoError(t, err)
	assert.False(t, updated.IsPaid)
	assert.Nil(t, updated.PaymentDate)

	_, err = repo.UpdatePayment(9999, true, &when)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
