package paymentRoutes

import (
	paymentController "parkguide/controllers/payment"
	"parkguide/middleware"
	paymentValidator "parkguide/validators/payment"

	"github.com/gofiber/fiber/v2"
)

func SetupPaymentRoutes(app *fiber.App) {
	payments := app.Group("/api/v1/payments", middleware.JWTMiddleware)

	payments.Post("/", middleware.RequireRole("park_guide"), paymentValidator.Payment(), paymentController.CreatePayment)
	payments.Get("/history", paymentController.UserPaymentHistory)

	payments.Get("/", middleware.RequireRole("admin"), paymentController.PaymentList)
	payments.Get("/:id", middleware.RequireRole("admin"), paymentValidator.PaymentID(), paymentController.GetPayment)
	payments.Put("/:id", middleware.RequireRole("admin"), paymentValidator.PaymentID(), paymentValidator.PaymentStatus(), paymentController.UpdatePaymentStatus)
	payments.Delete("/:id", middleware.RequireRole("admin"), paymentValidator.PaymentID(), paymentController.DeletePayment)
}
