package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/filmwire/filmwire/app/controllers"
	"github.com/filmwire/filmwire/internal/pkg/constants"
	"github.com/filmwire/filmwire/internal/pkg/middleware"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group(constants.APIPrefix, limiter.New(limiter.Config{Max: 120}), middleware.UserContextMiddleware)

	// auth
	api.Post("/register", controllers.HandleRegister)
	api.Post("/login", controllers.HandleLogin)
	api.Post("/logout", controllers.HandleLogout)
	api.Get("/user", controllers.HandleGetCurrentUser)

	// payments
	api.Post("/create-payment-intent", controllers.HandleCreatePaymentIntent)
	api.Post("/payment-webhook", controllers.HandlePaymentWebhook)
	api.Post("/handle-payment-success", controllers.HandlePaymentSuccess)
	api.Get("/payment-success", controllers.HandlePaymentSuccessRedirect)

	// videos and distribution
	api.Post("/videos", controllers.HandleCreateVideo)
	api.Get("/videos", controllers.HandleListUserVideos)
	api.Get("/videos/:id", controllers.HandleGetVideo)
	api.Patch("/videos/:id", controllers.HandleUpdateVideo)
	api.Delete("/videos/:id", controllers.HandleDeleteVideo)
	api.Get("/videos/:id/distributions", controllers.HandleListVideoDistributions)
	api.Get("/videos/:id/revenues", controllers.HandleListVideoRevenues)
	api.Get("/videos/:id/reports", controllers.HandleListVideoReports)

	api.Post("/distributions", controllers.HandleCreateDistribution)
	api.Get("/distributions", controllers.HandleListUserDistributions)
	api.Patch("/distributions/:id", controllers.HandleUpdateDistribution)
	api.Post("/distributions/:id/view", controllers.HandleDistributionView)

	// revenue ledger and statements
	api.Post("/revenues", controllers.HandleCreateRevenue)
	api.Get("/revenues", controllers.HandleListUserRevenues)
	api.Get("/revenues/stats", controllers.HandleRevenueStats)
	api.Get("/statements", controllers.HandleListStatements)
	api.Post("/statements", controllers.HandleCreateStatement)
	api.Patch("/statements/:id/payment", controllers.HandleUpdateStatementPayment)

	// catalogs
	api.Get("/platforms", controllers.HandleListPlatforms)
	api.Get("/platforms/:id", controllers.HandleGetPlatform)
	api.Get("/subscription-plans", controllers.HandleListSubscriptionPlans)
	api.Get("/subscription-plans/:id", controllers.HandleGetSubscriptionPlan)
	api.Get("/statistics", controllers.HandleStatistics)

	// moderation
	api.Post("/reports", controllers.HandleCreateContentReport)
	api.Get("/reports/pending", controllers.HandleListPendingReports)
	api.Patch("/reports/:id", controllers.HandleResolveReport)
	api.Get("/moderation-queue", controllers.HandleListModerationQueue)
	api.Post("/moderation-queue/:id/assign", controllers.HandleAssignModeration)
	api.Post("/moderation-queue/:id/decision", controllers.HandleModerationDecision)

	// filmmaker outreach
	api.Get("/filmmakers", controllers.HandleListFilmmakers)
	api.Post("/filmmakers/import", controllers.HandleImportFilmmakers)
	api.Post("/filmmakers/invite", controllers.HandleInviteFilmmakers)
	api.Post("/email/bulk-invite", controllers.HandleInviteFilmmakers)

	// magazine
	api.Post("/magazine/subscribe", controllers.HandleMagazineSubscribe)
	api.Get("/magazine/subscription", controllers.HandleGetMagazineSubscription)
	api.Post("/magazine/subscription/cancel", controllers.HandleCancelMagazineSubscription)
	api.Post("/magazine/subscription/renew", controllers.HandleRenewMagazineSubscription)
	api.Get("/magazine/issues", controllers.HandleListMagazineIssues)
	api.Get("/magazine/issues/latest", controllers.HandleLatestMagazineIssue)
	api.Post("/magazine/issues", controllers.HandleCreateMagazineIssue)
	api.Post("/magazine/issues/:id/publish", controllers.HandlePublishMagazineIssue)

	// visitor counter
	api.Post("/visit", controllers.HandleVisitorHit)
	api.Get("/visit", controllers.HandleVisitorCount)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
