// Package routes defines the API routing configuration. It wires
// repositories, services and handlers together and applies middleware.
package routes

import (
	"log"

	"moneyflow/internal/config"
	"moneyflow/internal/handlers"
	"moneyflow/internal/messaging"
	"moneyflow/internal/middleware"
	"moneyflow/internal/models"
	"moneyflow/internal/repositories"
	"moneyflow/internal/services/commission"
	"moneyflow/internal/services/deposit"
	"moneyflow/internal/services/fee"
	"moneyflow/internal/services/notification"
	"moneyflow/internal/services/settlement"
	"moneyflow/internal/services/withdrawal"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Repositories
	balanceRepo := repositories.NewBalanceRepository(db, repositories.CacheService)
	transferRepo := repositories.NewTransferRepository(db, repositories.CacheService)
	accountRepo := repositories.NewAccountRepository(db)
	merchantRepo := repositories.NewMerchantRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)

	// Notification dispatch, with an optional RabbitMQ fan-out
	var publisher notification.EventPublisher
	if url := config.GetEnv("RABBITMQ_URL", ""); url != "" {
		p, err := messaging.NewPublisher(url, config.GetEnv("RABBITMQ_EXCHANGE", "moneyflow.notifications"))
		if err != nil {
			log.Printf("RabbitMQ unavailable, notifications stay in-app only: %v", err)
		} else {
			publisher = p
		}
	}
	notificationService := notification.NewService(notificationRepo, publisher)

	// Services
	feeCalculator := fee.NewCalculator()
	settlementService := settlement.NewService(
		feeCalculator,
		balanceRepo,
		transferRepo,
		transferRepo,
		accountRepo,
		merchantRepo,
		notificationService,
		nil,
	)
	withdrawalService := withdrawal.NewService(balanceRepo, transferRepo)
	depositService := deposit.NewService(balanceRepo, transferRepo)
	aggregator := commission.NewAggregator()

	// Handlers
	transferHandler := handlers.NewTransferHandler(settlementService)
	withdrawalHandler := handlers.NewWithdrawalHandler(withdrawalService)
	depositHandler := handlers.NewDepositHandler(depositService)
	feeHandler := handlers.NewFeeHandler(feeCalculator)
	commissionHandler := handlers.NewCommissionHandler(transferRepo, aggregator)

	// Public routes
	app.Get("/health", handlers.HealthCheck)

	api := app.Group("/api")
	authenticated := api.Group("/", middleware.AuthMiddleware)

	authenticated.Post("/transfers", transferHandler.Transfer)
	authenticated.Post("/deposits", depositHandler.Deposit)
	authenticated.Get("/fees/quote", feeHandler.Quote)

	// Agent routes
	authenticated.Post("/withdrawals", middleware.RequireRole(models.RoleAgent), withdrawalHandler.Withdraw)
	authenticated.Get("/commissions/summary", middleware.RequireRole(models.RoleAgent, models.RoleAdmin), commissionHandler.Summary)
}
