package controllers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/filmwire/filmwire/app/models"
	"github.com/filmwire/filmwire/app/repository"
	"github.com/filmwire/filmwire/internal/pkg/session"
	"github.com/filmwire/filmwire/internal/pkg/utils"
)

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// HandleRegister creates a new account. The duplicate-username check runs
// before the duplicate-email check so the error messages stay predictable
// for the signup form.
func HandleRegister(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonMessage(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Username == "" || req.Password == "" || req.Email == "" || req.Name == "" {
		return jsonMessage(c, fiber.StatusBadRequest, "Username, password, email, and name are required")
	}

	users := repository.GetGlobalFactory().GetUserRepository()

	if _, err := users.GetByUsername(req.Username); err == nil {
		return jsonMessage(c, fiber.StatusBadRequest, "Username already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return jsonMessage(c, fiber.StatusInternalServerError, "Registration failed. Please try again.")
	}

	if _, err := users.GetByEmail(req.Email); err == nil {
		return jsonMessage(c, fiber.StatusBadRequest, "Email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return jsonMessage(c, fiber.StatusInternalServerError, "Registration failed. Please try again.")
	}

	user, err := models.CreateUser(req.Username, req.Password, req.Email, req.Name)
	if err != nil {
		return jsonMessage(c, fiber.StatusBadRequest, "Invalid registration data: "+err.Error())
	}
	if user.ProfileImage == "" {
		user.ProfileImage = utils.GetGravatarURL(user.Email, 200)
	}
	if err := users.Create(user); err != nil {
		return jsonMessage(c, fiber.StatusInternalServerError, "Registration failed. Please try again.")
	}

	markContactRegistered(user)

	return c.Status(fiber.StatusCreated).JSON(user)
}

// markContactRegistered links a new account back to the outreach contact it
// came from. Best effort only.
func markContactRegistered(user *models.User) {
	contacts := repository.GetGlobalFactory().GetContactRepository()
	contact, err := contacts.GetByEmail(user.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Failed to look up contact for %s: %v", user.Email, err)
		}
		return
	}
	if _, err := contacts.MarkRegistered(contact.ID, user.ID); err != nil {
		log.Printf("Failed to mark contact %d registered: %v", contact.ID, err)
	}
}

// HandleLogin verifies credentials and opens a session.
func HandleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonMessage(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Username == "" || req.Password == "" {
		return jsonMessage(c, fiber.StatusBadRequest, "Username and password are required")
	}

	users := repository.GetGlobalFactory().GetUserRepository()
	user, err := users.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonMessage(c, fiber.StatusUnauthorized, "Invalid username or password")
		}
		return jsonMessage(c, fiber.StatusInternalServerError, "Login failed")
	}

	if !user.CheckPassword(req.Password) {
		return jsonMessage(c, fiber.StatusUnauthorized, "Invalid username or password")
	}

	if err := session.SetSessionValue(c, USER_ID, strconv.FormatUint(uint64(user.ID), 10)); err != nil {
		log.Printf("Failed to persist session for user %d: %v", user.ID, err)
	}
	_ = session.SetSessionValue(c, USER_NAME, user.Username)

	return c.JSON(user)
}

// HandleLogout drops the caller's session.
func HandleLogout(c *fiber.Ctx) error {
	if err := session.DestroySession(c); err != nil {
		return jsonMessage(c, fiber.StatusInternalServerError, "Logout failed")
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleGetCurrentUser returns the logged-in user's account.
func HandleGetCurrentUser(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return jsonMessage(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	user, err := repository.GetGlobalFactory().GetUserRepository().GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonMessage(c, fiber.StatusNotFound, "User not found")
		}
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to get user")
	}

	return c.JSON(user)
}
