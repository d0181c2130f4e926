package repository

import (
	"testing"

	"github.com/filmwire/filmwire/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestEmailTemplateArchiving(t *testing.T) {
	db := newTestDB(t)
	repo := NewEmailRepository(db)
	user := createTestUser(t, db, "sender")

	tpl := &models.EmailTemplate{Name: "Invite", Subject: "Join us", Content: "Hello {{name}}", CreatedBy: user.ID}
	require.NoError(t, repo.CreateTemplate(tpl))
	assert.NotEmpty(t, tpl.ID)

	require.NoError(t, repo.ArchiveTemplate(tpl.ID))

	visible, err := repo.ListTemplates(false)
	require.NoError(t, err)
	assert.Empty(t, visible)

	all, err := repo.ListTemplates(true)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].IsArchived)

	assert.ErrorIs(t, repo.ArchiveTemplate("00000000-0000-0000-0000-000000000000"), gorm.ErrRecordNotFound)
}

func TestEmailDraftLifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewEmailRepository(db)
	user := createTestUser(t, db, "drafter")

	draft := &models.EmailDraft{Name: "Festival blast", Subject: "Your film", Content: "...", CreatedBy: user.ID}
	require.NoError(t, repo.CreateDraft(draft))

	drafts, err := repo.ListDraftsByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, drafts, 1)

	require.NoError(t, repo.DeleteDraft(draft.ID))
	assert.ErrorIs(t, repo.DeleteDraft(draft.ID), gorm.ErrRecordNotFound)
}

func TestEmailSentDefaultsStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewEmailRepository(db)
	user := createTestUser(t, db, "sender")

	sent := &models.EmailSent{Subject: "Your film", Content: "...", SentBy: user.ID}
	require.NoError(t, repo.RecordSent(sent))
	assert.Equal(t, models.EmailStatusSent, sent.Status)

	records, err := repo.ListSent(10, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
}
