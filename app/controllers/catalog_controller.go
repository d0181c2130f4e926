package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/filmwire/filmwire/app/repository"
	"github.com/filmwire/filmwire/internal/pkg/statistics"
)

// HandleListPlatforms returns the distribution platform catalog.
func HandleListPlatforms(c *fiber.Ctx) error {
	platforms, err := repository.GetGlobalFactory().GetPlatformRepository().GetAll()
	if err != nil {
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to list platforms")
	}
	return c.JSON(platforms)
}

// HandleGetPlatform returns one platform.
func HandleGetPlatform(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return jsonMessage(c, fiber.StatusBadRequest, "Invalid platform id")
	}

	platform, err := repository.GetGlobalFactory().GetPlatformRepository().GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonMessage(c, fiber.StatusNotFound, "Platform not found")
		}
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to get platform")
	}
	return c.JSON(platform)
}

// HandleListSubscriptionPlans returns the filmmaker plan catalog.
func HandleListSubscriptionPlans(c *fiber.Ctx) error {
	plans, err := repository.GetGlobalFactory().GetSubscriptionPlanRepository().GetAll()
	if err != nil {
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to list subscription plans")
	}
	return c.JSON(plans)
}

// HandleGetSubscriptionPlan returns one plan.
func HandleGetSubscriptionPlan(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return jsonMessage(c, fiber.StatusBadRequest, "Invalid plan id")
	}

	plan, err := repository.GetGlobalFactory().GetSubscriptionPlanRepository().GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonMessage(c, fiber.StatusNotFound, "Plan not found")
		}
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to get plan")
	}
	return c.JSON(plan)
}

// HandleStatistics returns cached platform-wide totals.
func HandleStatistics(c *fiber.Ctx) error {
	return c.JSON(statistics.GetStatisticsData())
}
