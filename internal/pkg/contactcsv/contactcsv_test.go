package contactcsv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMapsColumns(t *testing.T) {
	input := strings.Join([]string{
		"Name,Email,Film Title,Submission Year,Category,Festival Year",
		"Ava Chen,AVA@Example.com,Harbor Lights,2024,Documentary,2025",
		"Ben Ortiz,ben@example.com,Static,,Drama,",
	}, "\n")

	result, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, result.Contacts, 2)
	assert.Zero(t, result.SkippedRows)

	first := result.Contacts[0]
	assert.Equal(t, "Ava Chen", first.Name)
	assert.Equal(t, "ava@example.com", first.Email)
	assert.Equal(t, "Harbor Lights", first.FilmTitle)
	assert.Equal(t, 2024, first.SubmissionYear)
	assert.Equal(t, "Documentary", first.FilmCategory)
	assert.Equal(t, 2025, first.FilmFestivalYear)

	second := result.Contacts[1]
	assert.Zero(t, second.SubmissionYear)
	assert.Zero(t, second.FilmFestivalYear)
}

func TestParseSkipsBadRows(t *testing.T) {
	input := strings.Join([]string{
		"name,email",
		"Ava Chen,ava@example.com",
		"No Email,",
		",orphan@example.com",
		"Bad Email,not-an-email",
	}, "\n")

	result, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, result.Contacts, 1)
	assert.Equal(t, 3, result.SkippedRows)
}

func TestParseRejectsMissingEmailColumn(t *testing.T) {
	_, err := Parse(strings.NewReader("name,film title\nAva,Harbor Lights"))
	assert.Error(t, err)

	_, err = Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoHeader)
}

func TestParseIgnoresUnknownColumns(t *testing.T) {
	input := strings.Join([]string{
		"email,name,shoe size",
		"ava@example.com,Ava Chen,9",
	}, "\n")

	result, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, result.Contacts, 1)
	assert.Equal(t, "Ava Chen", result.Contacts[0].Name)
}
