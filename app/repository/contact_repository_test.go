package repository

import (
	"fmt"
	"testing"

	"github.com/filmwire/filmwire/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func TestContactRepositoryImportSkipsDuplicates(t *testing.T) {
	db := newTestDB(t)
	repo := NewContactRepository(db)

	// Three contacts already exist; the import has 50 rows, three of which
	// reuse those emails.
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(&models.FilmmakerContact{
			Name:  fmt.Sprintf("Existing %d", i),
			Email: fmt.Sprintf("dup%d@example.com", i),
		}))
	}

	rows := make([]models.FilmmakerContact, 0, 50)
	for i := 0; i < 50; i++ {
		email := fmt.Sprintf("new%d@example.com", i)
		if i < 3 {
			email = fmt.Sprintf("dup%d@example.com", i)
		}
		rows = append(rows, models.FilmmakerContact{
			Name:  fmt.Sprintf("Contact %d", i),
			Email: email,
		})
	}

	result, err := repo.Import(rows)
	require.NoError(t, err)
	assert.Equal(t, 47, result.Imported)
	assert.Equal(t, 3, result.Failed)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 50, count)
}

func TestContactRepositoryImportSpansBatches(t *testing.T) {
	db := newTestDB(t)
	repo := NewContactRepository(db)

	rows := make([]models.FilmmakerContact, 0, importBatchSize+10)
	for i := 0; i < importBatchSize+10; i++ {
		rows = append(rows, models.FilmmakerContact{
			Name:  fmt.Sprintf("Contact %d", i),
			Email: fmt.Sprintf("c%d@example.com", i),
		})
	}

	result, err := repo.Import(rows)
	require.NoError(t, err)
	assert.Equal(t, importBatchSize+10, result.Imported)
	assert.Zero(t, result.Failed)
}

func TestContactRepositoryMarkInvited(t *testing.T) {
	db := newTestDB(t)
	repo := NewContactRepository(db)

	contact := &models.FilmmakerContact{Name: "Ava Chen", Email: "ava@example.com"}
	require.NoError(t, repo.Create(contact))

	updated, err := repo.MarkInvited(contact.ID)
	require.NoError(t, err)
	assert.True(t, updated.InvitationSent)
	assert.Equal(t, 1, updated.InvitationCount)
	assert.NotNil(t, updated.InvitationSentAt)
	assert.NotNil(t, updated.LastInvitationSentAt)

	updated, err = repo.MarkInvited(contact.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.InvitationCount)

	_, err = repo.MarkInvited(9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestContactRepositoryMarkRegistered(t *testing.T) {
	db := newTestDB(t)
	repo := NewContactRepository(db)
	user := createTestUser(t, db, "ava")

	contact := &models.FilmmakerContact{Name: "Ava Chen", Email: "ava@example.com"}
	require.NoError(t, repo.Create(contact))

	updated, err := repo.MarkRegistered(contact.ID, user.ID)
	require.NoError(t, err)
	assert.True(t, updated.HasRegistered)
	require.NotNil(t, updated.RegisteredUserID)
	assert.Equal(t, user.ID, *updated.RegisteredUserID)

	unregistered, err := repo.GetUnregistered()
	require.NoError(t, err)
	assert.Empty(t, unregistered)
}

func TestContactRepositorySearch(t *testing.T) {
	db := newTestDB(t)
	repo := NewContactRepository(db)

	require.NoError(t, repo.Create(&models.FilmmakerContact{Name: "Ava Chen", Email: "ava@example.com", FilmTitle: "Harbor Lights"}))
	require.NoError(t, repo.Create(&models.FilmmakerContact{Name: "Ben Ortiz", Email: "ben@example.com", FilmTitle: "Static"}))

	byName, err := repo.Search("Ava")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "ava@example.com", byName[0].Email)

	byTitle, err := repo.Search("Harbor")
	require.NoError(t, err)
	require.Len(t, byTitle, 1)

	none, err := repo.Search("zzz")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestContactRepositoryFindByTags(t *testing.T) {
	db := newTestDB(t)
	repo := NewContactRepository(db)

	require.NoError(t, repo.Create(&models.FilmmakerContact{
		Name:  "Ava Chen",
		Email: "ava@example.com",
		Tags:  datatypes.JSON(`["documentary","short"]`),
	}))
	require.NoError(t, repo.Create(&models.FilmmakerContact{
		Name:  "Ben Ortiz",
		Email: "ben@example.com",
		Tags:  datatypes.JSON(`["drama"]`),
	}))
	require.NoError(t, repo.Create(&models.FilmmakerContact{
		Name:  "Cleo Marsh",
		Email: "cleo@example.com",
		Tags:  datatypes.JSON(`["horror","documentary"]`),
	}))
	require.NoError(t, repo.Create(&models.FilmmakerContact{
		Name:  "Dev Patel",
		Email: "dev@example.com",
	}))

	// Any intersecting tag matches.
	found, err := repo.FindByTags([]string{"documentary", "horror"})
	require.NoError(t, err)
	emails := make([]string, 0, len(found))
	for _, contact := range found {
		emails = append(emails, contact.Email)
	}
	assert.ElementsMatch(t, []string{"ava@example.com", "cleo@example.com"}, emails)

	found, err = repo.FindByTags([]string{"drama"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "ben@example.com", found[0].Email)

	found, err = repo.FindByTags([]string{"western"})
	require.NoError(t, err)
	assert.Empty(t, found)

	found, err = repo.FindByTags(nil)
	require.NoError(t, err)
	assert.Empty(t, found)
}
