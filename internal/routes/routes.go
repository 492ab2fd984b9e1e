package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/example/otpking/internal/config"
	"github.com/example/otpking/internal/handlers"
	"github.com/example/otpking/internal/ledger"
	"github.com/example/otpking/internal/middleware"
	"github.com/example/otpking/internal/services"
	"github.com/example/otpking/internal/store"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config, log *zap.Logger) {
	st := store.New(db)
	lg := ledger.New(db, log)
	telegram := services.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramAdminChat)

	authHandler := handlers.NewAuthHandler(st, lg, cfg, telegram)
	numberHandler := handlers.NewNumberHandler(st, lg)
	walletHandler := handlers.NewWalletHandler(st, lg)
	contentHandler := handlers.NewContentHandler(st, telegram)
	adminHandler := handlers.NewAdminHandler(st, lg)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "message": "Backend is running!"})
	})

	api := app.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)

	api.Get("/faqs", contentHandler.ListFaqs)
	api.Get("/welcome-message", contentHandler.WelcomeMessage)
	api.Get("/announcements", contentHandler.ListAnnouncements)

	// Authenticated routes
	protected := api.Group("", middleware.AuthMiddleware(cfg, st))

	protected.Get("/auth/me", authHandler.Me)
	protected.Post("/auth/welcome-ack", authHandler.AcknowledgeWelcome)

	protected.Get("/countries", numberHandler.ListCountries)
	protected.Post("/numbers/claim", numberHandler.ClaimNumber)
	protected.Get("/numbers/history", numberHandler.History)
	protected.Get("/sms/:phoneNumber", numberHandler.SmsMessages)

	protected.Get("/saved-numbers", numberHandler.ListSavedNumbers)
	protected.Get("/saved-numbers/check", numberHandler.IsSaved)
	protected.Post("/saved-numbers", numberHandler.SaveNumber)
	protected.Delete("/saved-numbers/:id", numberHandler.DeleteSavedNumber)

	protected.Get("/wallet", walletHandler.ListWallet)
	protected.Post("/gift-codes/claim", walletHandler.ClaimGiftCode)

	protected.Get("/notifications", contentHandler.ListNotifications)
	protected.Post("/notifications/:id/read", contentHandler.MarkNotificationRead)

	protected.Get("/support-messages", contentHandler.ListSupportMessages)
	protected.Post("/support-messages", contentHandler.CreateSupportMessage)

	// Staff routes (admins and moderators). Registered before the admin-only
	// group so its RequireAdmin middleware does not shadow them.
	protected.Get("/admin/support-messages", middleware.RequireStaff(), adminHandler.ListSupportMessages)
	protected.Post("/admin/support-messages/reply", middleware.RequireStaff(), adminHandler.ReplySupportMessage)
	protected.Post("/admin/support-messages/:id/read", middleware.RequireStaff(), adminHandler.MarkSupportMessageRead)

	// Admin-only routes
	admin := protected.Group("/admin", middleware.RequireAdmin())

	admin.Get("/stats", adminHandler.Stats)

	admin.Get("/users", adminHandler.ListUsers)
	admin.Patch("/users/:id", adminHandler.UpdateUser)
	admin.Delete("/users/:id", adminHandler.DeleteUser)

	admin.Post("/countries", adminHandler.CreateCountry)
	admin.Put("/countries/:id", adminHandler.UpdateCountry)
	admin.Delete("/countries/:id", adminHandler.DeleteCountry)

	admin.Get("/gift-codes", adminHandler.ListGiftCodes)
	admin.Post("/gift-codes", adminHandler.CreateGiftCode)
	admin.Patch("/gift-codes/:id", adminHandler.UpdateGiftCode)
	admin.Delete("/gift-codes/:id", adminHandler.DeleteGiftCode)

	admin.Get("/faqs", adminHandler.ListFaqs)
	admin.Post("/faqs", adminHandler.CreateFaq)
	admin.Patch("/faqs/:id", adminHandler.UpdateFaq)
	admin.Delete("/faqs/:id", adminHandler.DeleteFaq)

	admin.Get("/welcome-messages", adminHandler.ListWelcomeMessages)
	admin.Post("/welcome-messages", adminHandler.CreateWelcomeMessage)
	admin.Patch("/welcome-messages/:id", adminHandler.UpdateWelcomeMessage)
	admin.Delete("/welcome-messages/:id", adminHandler.DeleteWelcomeMessage)

	admin.Get("/announcements", adminHandler.ListAnnouncements)
	admin.Post("/announcements", adminHandler.CreateAnnouncement)
	admin.Put("/announcements/:id", adminHandler.UpdateAnnouncement)
	admin.Patch("/announcements/:id/toggle", adminHandler.ToggleAnnouncement)
	admin.Delete("/announcements/:id", adminHandler.DeleteAnnouncement)

	admin.Post("/notifications", adminHandler.CreateNotification)
	admin.Delete("/support-messages/:id", adminHandler.DeleteSupportMessage)

	admin.Get("/settings/:key", adminHandler.GetSetting)
	admin.Post("/settings", adminHandler.SetSetting)

	admin.Post("/sms", adminHandler.CreateSmsMessage)
}
