package chatbotRoutes

import (
	chatbotController "parkguide/controllers/chatbot"

	"github.com/gofiber/fiber/v2"
)

func SetupChatbotRoutes(app *fiber.App) {
	chatbot := app.Group("/api/v1/chatbot")

	chatbot.Post("/ask", chatbotController.Ask)
}
