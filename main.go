package main

import (
	"log"
	"parkguide/config"
	"parkguide/database"
	adminRoutes "parkguide/routers/adminRoutes"
	authRoutes "parkguide/routers/authRoutes"
	catalogRoutes "parkguide/routers/catalogRoutes"
	chatbotRoutes "parkguide/routers/chatbotRoutes"
	feedbackRoutes "parkguide/routers/feedbackRoutes"
	guideRoutes "parkguide/routers/guideRoutes"
	iotRoutes "parkguide/routers/iotRoutes"
	parkRoutes "parkguide/routers/parkRoutes"
	paymentRoutes "parkguide/routers/paymentRoutes"
	trainingRoutes "parkguide/routers/trainingRoutes"
	"parkguide/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded receipts, plant images and documents
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	adminRoutes.SetupAdminRoutes(app)
	guideRoutes.SetupGuideRoutes(app)
	parkRoutes.SetupParkRoutes(app)
	trainingRoutes.SetupTrainingRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)
	feedbackRoutes.SetupFeedbackRoutes(app)
	catalogRoutes.SetupCatalogRoutes(app)
	iotRoutes.SetupIotRoutes(app)
	chatbotRoutes.SetupChatbotRoutes(app)

	utils.InitializeExpiryScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
