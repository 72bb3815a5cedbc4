// Package routes defines the API routing configuration.
// It sets up all HTTP routes and their corresponding handlers,
// including middleware and authentication requirements.
package routes

import (
	"ledgr/internal/handlers"
	"ledgr/internal/middleware"
	"ledgr/internal/models"
	"ledgr/internal/repositories"
	"ledgr/internal/services/auth"
	"ledgr/internal/services/item"
	"ledgr/internal/services/transfer"
	"ledgr/internal/services/user"
	"ledgr/internal/services/wallet"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
// It groups routes by functionality and applies appropriate middleware.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize repositories
	walletRepo := repositories.NewWalletRepository(db)
	userRepo := repositories.NewUserRepository(db)
	itemRepo := repositories.NewItemRepository(db)

	// Initialize services
	authService := auth.NewService(userRepo)
	userService := user.NewService(userRepo)
	walletService := wallet.NewService(walletRepo, repositories.CacheService)
	transferService := transfer.NewService(walletRepo, repositories.CacheService)
	itemService := item.NewService(itemRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, userService)
	userHandler := handlers.NewUserHandler(userService)
	walletHandler := handlers.NewWalletHandler(walletService, transferService)
	itemHandler := handlers.NewItemHandler(itemService)
	adminHandler := handlers.NewAdminHandler(userService, walletRepo)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to Ledgr API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})
	app.Get("/health", handlers.HealthCheck)

	api := app.Group("/api")

	// Public endpoints (no auth required)
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Post("/refresh", authHandler.Refresh)

	// Protected routes with auth middleware
	authMiddleware := middleware.NewAuthMiddleware(authService)
	protected := api.Use(authMiddleware.Handler)

	protected.Post("/logout", authHandler.Logout)
	protected.Post("/change-password", middleware.HasPermission(models.PermissionChangePassword), authHandler.ChangePassword)

	setupUserRoutes(protected, userHandler)
	setupWalletRoutes(protected, walletHandler)
	setupItemRoutes(protected, itemHandler)
	setupAdminRoutes(app, authMiddleware, adminHandler, walletHandler)
}

func setupUserRoutes(router fiber.Router, h *handlers.UserHandler) {
	users := router.Group("/users")
	users.Get("/me", h.Me)
	users.Patch("/me", h.UpdateMe)
}

func setupWalletRoutes(router fiber.Router, h *handlers.WalletHandler) {
	wallets := router.Group("/wallets")
	wallets.Post("/", middleware.HasPermission(models.PermissionWalletWrite), h.CreateWallet)
	wallets.Get("/", middleware.HasPermission(models.PermissionWalletRead), h.ListWallets)
	wallets.Post("/transfer", middleware.HasPermission(models.PermissionWalletWrite), h.Transfer)
	wallets.Get("/:id", middleware.HasPermission(models.PermissionWalletRead), h.GetWallet)
	wallets.Post("/:id/transactions", middleware.HasPermission(models.PermissionTransactionWrite), h.CreateTransaction)
	wallets.Get("/:id/transactions", middleware.HasPermission(models.PermissionTransactionRead), h.ListTransactions)
}

func setupItemRoutes(router fiber.Router, h *handlers.ItemHandler) {
	items := router.Group("/items")
	items.Post("/", middleware.HasPermission(models.PermissionItemWrite), h.Create)
	items.Get("/", middleware.HasPermission(models.PermissionItemRead), h.List)
	items.Get("/:id", middleware.HasPermission(models.PermissionItemRead), h.Get)
	items.Put("/:id", middleware.HasPermission(models.PermissionItemWrite), h.Update)
	items.Delete("/:id", middleware.HasPermission(models.PermissionItemWrite), h.Delete)
}

func setupAdminRoutes(app *fiber.App, authMiddleware *middleware.AuthMiddleware, h *handlers.AdminHandler, walletHandler *handlers.WalletHandler) {
	admin := app.Group("/api/admin", authMiddleware.Handler, middleware.AdminOnly)

	admin.Get("/users", middleware.HasPermission(models.PermissionReadAdmin), h.ListUsers)
	admin.Post("/users", middleware.HasPermission(models.PermissionWriteAdmin), h.CreateUser)
	admin.Get("/users/:id", middleware.HasPermission(models.PermissionReadAdmin), h.GetUser)
	admin.Delete("/users/:id", middleware.HasPermission(models.PermissionWriteAdmin), h.DeleteUser)
	admin.Get("/wallets", middleware.HasPermission(models.PermissionReadAdmin), walletHandler.ListWallets)
	admin.Get("/stats", middleware.HasPermission(models.PermissionReadAdmin), h.Stats)
}
