package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/filmwire/filmwire/app/controllers"
	"github.com/filmwire/filmwire/app/repository"
	"github.com/filmwire/filmwire/internal/pkg/session"
	"github.com/filmwire/filmwire/internal/pkg/usercontext"
)

const sessionKeyTier = "subscription_tier"
const sessionKeyIsAdmin = "is_admin"

// UserContextMiddleware resolves the caller's session into a request-scoped
// user context so controllers never have to touch the session store directly.
func UserContextMiddleware(c *fiber.Ctx) error {
	anonymous := usercontext.UserContext{IsLoggedIn: false, IsAdmin: false}

	store := session.GetSessionStore()
	if store == nil {
		c.Locals(usercontext.ContextKey, anonymous)
		return c.Next()
	}

	sess, err := store.Get(c)
	if err != nil {
		c.Locals(usercontext.ContextKey, anonymous)
		return c.Next()
	}

	rawID, _ := sess.Get(controllers.USER_ID).(string)
	userID, _ := strconv.ParseUint(rawID, 10, 32)
	if userID == 0 {
		c.Locals(usercontext.ContextKey, anonymous)
		return c.Next()
	}

	username := session.GetSessionValue(c, controllers.USER_NAME)

	// Session-first: look the user up only once per session and cache the
	// tier and admin flag for subsequent requests.
	tier := session.GetSessionValue(c, sessionKeyTier)
	isAdmin := session.GetSessionValue(c, sessionKeyIsAdmin)
	if tier == "" && isAdmin == "" {
		if user, err := repository.GetGlobalFactory().GetUserRepository().GetByID(uint(userID)); err == nil {
			tier = user.SubscriptionTier
			isAdmin = strconv.FormatBool(user.IsAdmin)
			_ = session.SetSessionValue(c, sessionKeyTier, tier)
			_ = session.SetSessionValue(c, sessionKeyIsAdmin, isAdmin)
		}
	}

	c.Locals(usercontext.ContextKey, usercontext.UserContext{
		UserID:           uint(userID),
		Username:         username,
		IsLoggedIn:       true,
		IsAdmin:          isAdmin == "true",
		SubscriptionTier: tier,
	})

	return c.Next()
}
