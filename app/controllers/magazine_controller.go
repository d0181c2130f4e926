package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/filmwire/filmwire/app/models"
	"github.com/filmwire/filmwire/app/repository"
)

type subscribeRequest struct {
	PaymentMethod  string                         `json:"payment_method"`
	Price          int                            `json:"price"` // cents
	SubscriberInfo *models.MagazineSubscriberInfo `json:"subscriber_info"`
}

// HandleMagazineSubscribe opens a magazine subscription for the caller and
// stores the mailing details when provided.
func HandleMagazineSubscribe(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return jsonMessage(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req subscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonMessage(c, fiber.StatusBadRequest, "Invalid request body")
	}

	magazines := repository.GetGlobalFactory().GetMagazineRepository()

	sub := &models.MagazineSubscription{
		UserID:        userID,
		StartDate:     time.Now(),
		PaymentMethod: req.PaymentMethod,
		Price:         req.Price,
	}
	if err := magazines.CreateSubscription(sub); err != nil {
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to create subscription")
	}

	if req.SubscriberInfo != nil {
		info := *req.SubscriberInfo
		info.ID = 0
		info.SubscriptionID = sub.ID
		if err := magazines.SaveSubscriberInfo(&info); err != nil {
			return jsonMessage(c, fiber.StatusInternalServerError, "Failed to save subscriber info")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(sub)
}

// HandleGetMagazineSubscription returns the caller's current subscription.
func HandleGetMagazineSubscription(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return jsonMessage(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	sub, err := repository.GetGlobalFactory().GetMagazineRepository().GetSubscriptionByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonMessage(c, fiber.StatusNotFound, "No subscription found")
		}
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to get subscription")
	}
	return c.JSON(sub)
}

// HandleCancelMagazineSubscription cancels the caller's subscription.
func HandleCancelMagazineSubscription(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return jsonMessage(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	magazines := repository.GetGlobalFactory().GetMagazineRepository()
	sub, err := magazines.GetSubscriptionByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonMessage(c, fiber.StatusNotFound, "No subscription found")
		}
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to cancel subscription")
	}

	cancelled, err := magazines.CancelSubscription(sub.ID)
	if err != nil {
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to cancel subscription")
	}
	return c.JSON(cancelled)
}

// HandleRenewMagazineSubscription reactivates the caller's subscription.
func HandleRenewMagazineSubscription(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return jsonMessage(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	magazines := repository.GetGlobalFactory().GetMagazineRepository()
	sub, err := magazines.GetSubscriptionByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonMessage(c, fiber.StatusNotFound, "No subscription found")
		}
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to renew subscription")
	}

	renewed, err := magazines.RenewSubscription(sub.ID)
	if err != nil {
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to renew subscription")
	}
	return c.JSON(renewed)
}

// HandleListMagazineIssues returns issues; subscribers with an active
// subscription see everything, everyone else only published issues.
func HandleListMagazineIssues(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	offset := c.QueryInt("offset", 0)

	magazines := repository.GetGlobalFactory().GetMagazineRepository()

	if userID, ok := currentUserID(c); ok {
		if sub, err := magazines.GetSubscriptionByUserID(userID); err == nil && sub.Status == models.MagazineStatusActive {
			issues, err := magazines.ListIssues(limit, offset)
			if err != nil {
				return jsonMessage(c, fiber.StatusInternalServerError, "Failed to list issues")
			}
			return c.JSON(issues)
		}
	}

	issues, err := magazines.ListPublishedIssues(limit, offset)
	if err != nil {
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to list issues")
	}
	return c.JSON(issues)
}

// HandleLatestMagazineIssue returns the newest published issue.
func HandleLatestMagazineIssue(c *fiber.Ctx) error {
	issue, err := repository.GetGlobalFactory().GetMagazineRepository().LatestIssue()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonMessage(c, fiber.StatusNotFound, "No published issues")
		}
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to get latest issue")
	}
	return c.JSON(issue)
}

// HandleCreateMagazineIssue creates a new (unpublished) issue.
func HandleCreateMagazineIssue(c *fiber.Ctx) error {
	var issue models.MagazineIssue
	if err := c.BodyParser(&issue); err != nil {
		return jsonMessage(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := issue.Validate(); err != nil {
		return jsonMessage(c, fiber.StatusBadRequest, "Invalid issue: "+err.Error())
	}

	issue.ID = 0
	issue.IsPublished = false
	if err := repository.GetGlobalFactory().GetMagazineRepository().CreateIssue(&issue); err != nil {
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to create issue")
	}
	return c.Status(fiber.StatusCreated).JSON(issue)
}

// HandlePublishMagazineIssue flips an issue to published.
func HandlePublishMagazineIssue(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return jsonMessage(c, fiber.StatusBadRequest, "Invalid issue id")
	}

	issue, err := repository.GetGlobalFactory().GetMagazineRepository().PublishIssue(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonMessage(c, fiber.StatusNotFound, "Issue not found")
		}
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to publish issue")
	}
	return c.JSON(issue)
}
