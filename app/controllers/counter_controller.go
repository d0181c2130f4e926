package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/filmwire/filmwire/app/repository"
)

// HandleVisitorHit bumps the global visitor counter and returns the new
// value.
func HandleVisitorHit(c *fiber.Ctx) error {
	count, err := repository.GetGlobalFactory().GetCounterRepository().Increment()
	if err != nil {
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to update visitor counter")
	}
	return c.JSON(fiber.Map{"count": count})
}

// HandleVisitorCount returns the counter without bumping it.
func HandleVisitorCount(c *fiber.Ctx) error {
	count, err := repository.GetGlobalFactory().GetCounterRepository().Current()
	if err != nil {
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to read visitor counter")
	}
	return c.JSON(fiber.Map{"count": count})
}
