package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/filmwire/filmwire/app/models"
	"github.com/filmwire/filmwire/app/repository"
)

// HandleCreateRevenue appends a record to the revenue ledger.
func HandleCreateRevenue(c *fiber.Ctx) error {
	var revenue models.Revenue
	if err := c.BodyParser(&revenue); err != nil {
		return jsonMessage(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if revenue.VideoID == 0 || revenue.PlatformID == 0 {
		return jsonMessage(c, fiber.StatusBadRequest, "video_id and platform_id are required")
	}

	revenue.ID = 0
	if err := repository.GetGlobalFactory().GetRevenueRepository().Create(&revenue); err != nil {
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to record revenue")
	}
	return c.Status(fiber.StatusCreated).JSON(revenue)
}

// HandleListVideoRevenues returns a video's ledger entries.
func HandleListVideoRevenues(c *fiber.Ctx) error {
	videoID, err := parseIDParam(c, "id")
	if err != nil {
		return jsonMessage(c, fiber.StatusBadRequest, "Invalid video id")
	}

	revenues, err := repository.GetGlobalFactory().GetRevenueRepository().GetByVideo(videoID)
	if err != nil {
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to list revenues")
	}
	return c.JSON(revenues)
}

// HandleListUserRevenues returns ledger entries across the caller's videos.
func HandleListUserRevenues(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return jsonMessage(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	revenues, err := repository.GetGlobalFactory().GetRevenueRepository().GetByUser(userID)
	if err != nil {
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to list revenues")
	}
	return c.JSON(revenues)
}

// HandleRevenueStats returns the caller's revenue total and per-platform
// breakdown.
func HandleRevenueStats(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return jsonMessage(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	stats, err := repository.GetGlobalFactory().GetRevenueRepository().StatsByUser(userID)
	if err != nil {
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to compute revenue stats")
	}
	return c.JSON(stats)
}

// HandleListStatements returns the caller's monthly statements, newest
// period first.
func HandleListStatements(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return jsonMessage(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	statements, err := repository.GetGlobalFactory().GetRevenueStatementRepository().ListByUser(userID)
	if err != nil {
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to list statements")
	}
	return c.JSON(statements)
}

// HandleCreateStatement issues a monthly statement. At most one statement
// exists per user and period.
func HandleCreateStatement(c *fiber.Ctx) error {
	var statement models.RevenueStatement
	if err := c.BodyParser(&statement); err != nil {
		return jsonMessage(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if statement.UserID == 0 || statement.Month < 1 || statement.Month > 12 || statement.Year == 0 {
		return jsonMessage(c, fiber.StatusBadRequest, "user_id, month and year are required")
	}

	statements := repository.GetGlobalFactory().GetRevenueStatementRepository()
	if _, err := statements.GetMonthly(statement.UserID, statement.Month, statement.Year); err == nil {
		return jsonMessage(c, fiber.StatusConflict, "Statement for this period already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to create statement")
	}

	statement.ID = 0
	if err := statements.Create(&statement); err != nil {
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to create statement")
	}
	return c.Status(fiber.StatusCreated).JSON(statement)
}

type statementPaymentRequest struct {
	IsPaid      bool       `json:"is_paid"`
	PaymentDate *time.Time `json:"payment_date"`
}

// HandleUpdateStatementPayment marks a statement paid or unpaid.
func HandleUpdateStatementPayment(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return jsonMessage(c, fiber.StatusBadRequest, "Invalid statement id")
	}

	var req statementPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonMessage(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.IsPaid && req.PaymentDate == nil {
		now := time.Now()
		req.PaymentDate = &now
	}

	statement, err := repository.GetGlobalFactory().GetRevenueStatementRepository().
		UpdatePayment(id, req.IsPaid, req.PaymentDate)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonMessage(c, fiber.StatusNotFound, "Statement not found")
		}
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to update statement")
	}
	return c.JSON(statement)
}
