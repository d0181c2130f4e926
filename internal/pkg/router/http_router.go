package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/filmwire/filmwire/app/controllers"
	"github.com/filmwire/filmwire/internal/pkg/constants"
	"github.com/filmwire/filmwire/internal/pkg/session"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// Stripe sends customers back here after checkout.
	app.Get(constants.PaymentSuccessRoute, controllers.HandlePaymentSuccessPage)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
