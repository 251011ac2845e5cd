package feedbackRoutes

import (
	feedbackController "parkguide/controllers/feedback"
	"parkguide/middleware"
	feedbackValidator "parkguide/validators/feedback"

	"github.com/gofiber/fiber/v2"
)

func SetupFeedbackRoutes(app *fiber.App) {
	feedback := app.Group("/api/v1/feedback")

	// Public submission endpoint for visitors
	feedback.Post("/", feedbackValidator.Feedback(), feedbackController.SubmitFeedback)

	feedback.Get("/", middleware.JWTMiddleware, middleware.RequireRole("admin"), feedbackController.FeedbackList)
	feedback.Get("/:id", middleware.JWTMiddleware, middleware.RequireRole("admin"), feedbackValidator.FeedbackID(), feedbackController.GetFeedback)
	feedback.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole("admin"), feedbackValidator.FeedbackID(), feedbackValidator.FeedbackUpdate(), feedbackController.UpdateFeedback)
	feedback.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole("admin"), feedbackValidator.FeedbackID(), feedbackController.DeleteFeedback)
}
