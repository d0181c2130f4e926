package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/filmwire/filmwire/internal/pkg/session"
	"github.com/filmwire/filmwire/internal/pkg/usercontext"
)

const (
	AUTH_KEY  string = "authenticated"
	USER_ID   string = "user_id"
	USER_NAME string = "username"
)

// jsonMessage writes the simple `{message}` error envelope.
func jsonMessage(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"message": message})
}

// jsonError writes the nested `{error: {message}}` envelope used by the
// payment endpoints.
func jsonError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": fiber.Map{"message": message}})
}

// currentUserID resolves the caller, preferring the request user context,
// then the session cookie, then the user-id header for API clients.
func currentUserID(c *fiber.Ctx) (uint, bool) {
	if id := usercontext.GetUserID(c); id > 0 {
		return id, true
	}
	if value := session.GetSessionValue(c, USER_ID); value != "" {
		if id, err := strconv.ParseUint(value, 10, 32); err == nil && id > 0 {
			return uint(id), true
		}
	}
	if value := c.Get("user-id"); value != "" {
		if id, err := strconv.ParseUint(value, 10, 32); err == nil && id > 0 {
			return uint(id), true
		}
	}
	return 0, false
}

// parseIDParam reads a positive numeric path parameter.
func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}
