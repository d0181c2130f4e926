package contactcsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/filmwire/filmwire/app/models"
)

// ErrNoHeader is returned for input without a usable header row.
var ErrNoHeader = errors.New("csv input has no header row")

// ParseResult carries the contacts parsed from a CSV upload plus the rows
// that could not be used.
type ParseResult struct {
	Contacts    []models.FilmmakerContact
	SkippedRows int
}

// headerAliases maps the column names we accept (lowercased, spaces and
// underscores stripped) to canonical field keys.
var headerAliases = map[string]string{
	"name":           "name",
	"fullname":       "name",
	"filmmaker":      "name",
	"email":          "email",
	"emailaddress":   "email",
	"filmtitle":      "film_title",
	"film":           "film_title",
	"title":          "film_title",
	"submissionyear": "submission_year",
	"category":       "film_category",
	"filmcategory":   "film_category",
	"festivalyear":   "festival_year",
	"filmfestival":   "festival_year",
	"notes":          "notes",
}

// Parse reads a filmmaker contact CSV. The first row must be a header; rows
// missing a name or a plausible email are counted as skipped rather than
// failing the whole upload.
func Parse(r io.Reader) (*ParseResult, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}

	fields := make(map[int]string, len(header))
	for i, col := range header {
		key := strings.NewReplacer(" ", "", "_", "", "-", "").Replace(strings.ToLower(strings.TrimSpace(col)))
		if canonical, ok := headerAliases[key]; ok {
			fields[i] = canonical
		}
	}
	if !hasField(fields, "email") {
		return nil, fmt.Errorf("csv header has no email column")
	}

	result := &ParseResult{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.SkippedRows++
			continue
		}

		contact := models.FilmmakerContact{}
		for i, value := range record {
			value = strings.TrimSpace(value)
			if value == "" {
				continue
			}
			switch fields[i] {
			case "name":
				contact.Name = value
			case "email":
				contact.Email = strings.ToLower(value)
			case "film_title":
				contact.FilmTitle = value
			case "submission_year":
				if year, err := strconv.Atoi(value); err == nil {
					contact.SubmissionYear = year
				}
			case "film_category":
				contact.FilmCategory = value
			case "festival_year":
				if year, err := strconv.Atoi(value); err == nil {
					contact.FilmFestivalYear = year
				}
			case "notes":
				contact.Notes = value
			}
		}

		if contact.Name == "" || !plausibleEmail(contact.Email) {
			result.SkippedRows++
			continue
		}
		result.Contacts = append(result.Contacts, contact)
	}

	return result, nil
}

func hasField(fields map[int]string, name string) bool {
	for _, f := range fields {
		if f == name {
			return true
		}
	}
	return false
}

func plausibleEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && strings.Contains(email[at:], ".")
}
