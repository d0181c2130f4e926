package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/filmwire/filmwire/app/models"
	"github.com/filmwire/filmwire/app/repository"
	"github.com/filmwire/filmwire/internal/pkg/contactcsv"
	"github.com/filmwire/filmwire/internal/pkg/mail"
)

type importContactsRequest struct {
	CSVContent string `json:"csvContent"`
}

type inviteContactsRequest struct {
	FilmmakerIDs []uint `json:"filmmakerIds"`
	Subject      string `json:"subject"`
	Message      string `json:"message"`
	SentBy       uint   `json:"sentBy"`
}

// HandleListFilmmakers returns a page of outreach contacts, optionally
// filtered by a search term over name, email and film title, or by a
// comma-separated list of tags (matching any of them).
func HandleListFilmmakers(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 200 {
		limit = 20
	}
	search := strings.TrimSpace(c.Query("search"))
	tags := splitTags(c.Query("tags"))

	contacts := repository.GetGlobalFactory().GetContactRepository()

	var (
		rows []models.FilmmakerContact
		err  error
	)
	switch {
	case len(tags) > 0:
		rows, err = contacts.FindByTags(tags)
	case search != "":
		rows, err = contacts.Search(search)
	default:
		rows, err = contacts.List(limit, (page-1)*limit)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch filmmakers"})
	}

	total, err := contacts.Count()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch filmmakers"})
	}

	return c.JSON(fiber.Map{
		"filmmakers": rows,
		"total":      total,
		"page":       page,
		"limit":      limit,
	})
}

// splitTags turns a comma-separated query value into trimmed, non-empty tags.
func splitTags(raw string) []string {
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// HandleImportFilmmakers parses CSV content from the request body and bulk
// imports it, skipping duplicate emails.
func HandleImportFilmmakers(c *fiber.Ctx) error {
	var req importContactsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.CSVContent == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "CSV content is required"})
	}

	parsed, err := contactcsv.Parse(strings.NewReader(req.CSVContent))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := repository.GetGlobalFactory().GetContactRepository().Import(parsed.Contacts)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to import filmmakers"})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"imported": result.Imported,
		"failed":   result.Failed + parsed.SkippedRows,
	})
}

// HandleInviteFilmmakers emails account invitations to the selected
// contacts. Send failures are counted, never fatal.
func HandleInviteFilmmakers(c *fiber.Ctx) error {
	var req inviteContactsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if len(req.FilmmakerIDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No filmmakers selected"})
	}
	if req.SentBy == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Sender ID is required"})
	}

	sent, failed := inviteContacts(req)

	return c.JSON(fiber.Map{
		"success": true,
		"sent":    sent,
		"failed":  failed,
	})
}

func inviteContacts(req inviteContactsRequest) (sent, failed int) {
	factory := repository.GetGlobalFactory()
	contacts := factory.GetContactRepository()
	emails := factory.GetEmailRepository()

	var recipients []string
	for _, id := range req.FilmmakerIDs {
		contact, err := contacts.GetByID(id)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("Failed to load contact %d: %v", id, err)
			}
			failed++
			continue
		}

		if err := mail.SendInvitation(contact.Email, contact.Name); err != nil {
			failed++
			continue
		}
		if _, err := contacts.MarkInvited(contact.ID); err != nil {
			log.Printf("Failed to mark contact %d invited: %v", contact.ID, err)
		}
		recipients = append(recipients, contact.Email)
		sent++
	}

	if sent > 0 {
		subject := req.Subject
		if subject == "" {
			subject = "Distribute your film with FilmWire"
		}
		recipientsJSON, _ := json.Marshal(recipients)
		record := &models.EmailSent{
			Subject:    subject,
			Content:    req.Message,
			Recipients: recipientsJSON,
			SentBy:     req.SentBy,
		}
		if err := emails.RecordSent(record); err != nil {
			log.Printf("Failed to record sent invitations: %v", err)
		}
	}

	return sent, failed
}
