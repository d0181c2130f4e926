package controllers

import (
	"errors"
	"log"
	"math"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/filmwire/filmwire/app/models"
	"github.com/filmwire/filmwire/app/repository"
	"github.com/filmwire/filmwire/internal/pkg/constants"
	"github.com/filmwire/filmwire/internal/pkg/env"
	"github.com/filmwire/filmwire/internal/pkg/mail"
	"github.com/filmwire/filmwire/internal/pkg/payment"
	"github.com/filmwire/filmwire/internal/pkg/subscription"
)

var stripeClient = payment.NewStripeClientFromEnv()

type createPaymentIntentRequest struct {
	Amount      string `json:"amount"` // dollars
	PlanID      uint   `json:"planId"`
	Description string `json:"description"`
}

type paymentSuccessRequest struct {
	PaymentIntentID string  `json:"paymentIntentId"`
	UserID          uint    `json:"userId"`
	Email           string  `json:"email"`
	Name            string  `json:"name"`
	PlanName        string  `json:"planName"`
	Amount          float64 `json:"amount"` // dollars
}

// HandleCreatePaymentIntent opens a Stripe payment for a subscription plan.
// The client sends the amount in dollars; Stripe wants cents.
func HandleCreatePaymentIntent(c *fiber.Ctx) error {
	var req createPaymentIntentRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	amount, err := strconv.ParseFloat(req.Amount, 64)
	if err != nil || amount <= 0 {
		return jsonError(c, fiber.StatusBadRequest, "Invalid amount provided")
	}

	log.Printf("Creating payment intent for: $%s, planId: %d", req.Amount, req.PlanID)

	intent, err := stripeClient.CreatePaymentIntent(c.Context(),
		int64(math.Round(amount*100)),
		"usd",
		map[string]string{"planId": strconv.FormatUint(uint64(req.PlanID), 10)},
	)
	if err != nil {
		log.Printf("Payment intent creation error: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{"clientSecret": intent.ClientSecret})
}

// HandlePaymentWebhook receives Stripe events. The signature is verified
// when a webhook secret is configured; without one (development) events are
// accepted as-is.
func HandlePaymentWebhook(c *fiber.Ctx) error {
	payload := c.Body()

	if secret := env.GetEnv("STRIPE_WEBHOOK_SECRET", ""); secret != "" {
		if !payment.VerifyStripeWebhookSignature(payload, c.Get("Stripe-Signature"), secret) {
			log.Printf("Webhook signature verification failed")
			return c.Status(fiber.StatusBadRequest).SendString("Webhook Error: invalid signature")
		}
	}

	event, err := payment.ParseWebhookEvent(payload)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Webhook Error: " + err.Error())
	}

	switch event.Type {
	case "payment_intent.succeeded":
		if err := handleSuccessfulPayment(&event.Data.Object); err != nil {
			// Logged but never surfaced; Stripe retries on non-2xx.
			log.Printf("Error handling successful payment: %v", err)
		}
	case "charge.succeeded":
		// Covered by payment_intent.succeeded.
	default:
		log.Printf("Unhandled event type %s", event.Type)
	}

	return c.JSON(fiber.Map{"received": true})
}

// handleSuccessfulPayment activates the filmmaker subscription named in the
// payment intent's metadata.
func handleSuccessfulPayment(intent *payment.PaymentIntent) error {
	planName := intent.Metadata["planName"]
	if planName == "" {
		if plan := lookupPlan(intent.Metadata["planId"]); plan != nil {
			planName = plan.Name
		}
	}

	email := intent.ReceiptEmail
	if email == "" {
		email = intent.Metadata["email"]
	}
	if email == "" {
		return errors.New("payment intent carries no customer email")
	}

	users := repository.GetGlobalFactory().GetUserRepository()
	user, err := users.GetByEmail(email)
	if err != nil {
		return err
	}

	now := time.Now()
	endDate := now.AddDate(0, subscription.PlanDurationMonths(planName), 0)
	if _, err := users.UpdateFilmmakerSubscription(user.ID, planName, now, endDate); err != nil {
		return err
	}
	if intent.CustomerID != "" {
		if _, err := users.UpdateStripeCustomerID(user.ID, intent.CustomerID); err != nil {
			return err
		}
	}

	if err := mail.SendPaymentConfirmation(user.Email, user.Name, planName, int(intent.Amount)); err != nil {
		log.Printf("Failed to send confirmation email to %s: %v", user.Email, err)
	}

	log.Printf("Successfully processed payment for user: %s, Plan: %s", user.Email, planName)
	return nil
}

func lookupPlan(planID string) *models.SubscriptionPlan {
	id, err := strconv.ParseUint(planID, 10, 32)
	if err != nil || id == 0 {
		return nil
	}
	plan, err := repository.GetGlobalFactory().GetSubscriptionPlanRepository().GetByID(uint(id))
	if err != nil {
		return nil
	}
	return plan
}

// HandlePaymentSuccess is the manual confirmation endpoint the frontend
// calls after the Stripe redirect.
func HandlePaymentSuccess(c *fiber.Ctx) error {
	var req paymentSuccessRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.PaymentIntentID == "" || req.UserID == 0 || req.Email == "" || req.PlanName == "" || req.Amount == 0 {
		return jsonError(c, fiber.StatusBadRequest, "Missing required payment information")
	}

	intent, err := stripeClient.RetrievePaymentIntent(c.Context(), req.PaymentIntentID)
	if err != nil {
		log.Printf("Error handling payment success: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !intent.Succeeded() {
		return jsonError(c, fiber.StatusBadRequest, "Payment has not been completed successfully")
	}

	now := time.Now()
	endDate := now.AddDate(0, subscription.PlanDurationMonths(req.PlanName), 0)

	users := repository.GetGlobalFactory().GetUserRepository()
	if _, err := users.UpdateFilmmakerSubscription(req.UserID, req.PlanName, now, endDate); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "User not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if intent.CustomerID != "" {
		if _, err := users.UpdateStripeCustomerID(req.UserID, intent.CustomerID); err != nil {
			log.Printf("Failed to store customer id for user %d: %v", req.UserID, err)
		}
	}

	if err := mail.SendPaymentConfirmation(req.Email, req.Name, req.PlanName, int(math.Round(req.Amount*100))); err != nil {
		log.Printf("Failed to send confirmation email: %v", err)
	}

	return c.JSON(fiber.Map{
		"success":         true,
		"subscriptionEnd": endDate,
	})
}

// HandlePaymentSuccessPage renders the post-checkout landing page.
func HandlePaymentSuccessPage(c *fiber.Ctx) error {
	return c.Render("payment_success", fiber.Map{})
}

// HandlePaymentSuccessRedirect bounces the Stripe return URL to the page.
func HandlePaymentSuccessRedirect(c *fiber.Ctx) error {
	return c.Redirect(constants.PaymentSuccessRoute)
}
