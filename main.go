package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"studynotion/config"
	paymentController "studynotion/controllers/payment"
	"studynotion/database"
	"studynotion/middleware"
	"studynotion/routers/paymentRoutes"
	"studynotion/services/paymentService"
	"studynotion/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := utils.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := database.ConnectDb(cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	service := paymentService.NewPaymentService(
		db,
		cfg,
		utils.NewRazorpayClient(cfg),
		utils.NewMailerFromConfig(cfg, zapLogger.With(zap.String("component", "mailer"))),
		utils.NewInvoiceRenderer(cfg.Currency),
		zapLogger.With(zap.String("component", "payment")),
	)

	scheduler, err := utils.InitializeOrderScheduler(db, cfg, zapLogger.With(zap.String("component", "order-sweeper")))
	if err != nil {
		zapLogger.Fatal("Failed to start order scheduler", zap.Error(err))
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     "GET,POST",
		AllowHeaders:     "Content-Type,Authorization",
		AllowCredentials: true,
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Server is up and running...", nil)
	})

	paymentRoutes.SetupPaymentRoutes(app, paymentController.NewPaymentController(service, zapLogger), db, cfg.JWTKey)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		zapLogger.Info("Shutting down server...")
		<-scheduler.Stop().Done()
		if err := app.Shutdown(); err != nil {
			zapLogger.Error("Server shutdown error", zap.Error(err))
		}
	}()

	zapLogger.Info("Server is running", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zapLogger.Fatal("Server stopped", zap.Error(err))
	}
}
