package authRoutes

import (
	authController "parkguide/controllers/auth"
	"parkguide/middleware"
	authValidator "parkguide/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/api/v1/auth")

	auth.Post("/signup", authValidator.Signup(), authController.Signup)
	auth.Post("/login", authValidator.Login(), authController.Login)

	auth.Get("/profile", middleware.JWTMiddleware, authController.GetProfile)
	auth.Put("/profile", middleware.JWTMiddleware, authController.UpdateProfile)
	auth.Put("/change-password", middleware.JWTMiddleware, authController.ChangePassword)
	auth.Get("/login-history", middleware.JWTMiddleware, authValidator.LoginHistoryList(), authController.LoginHistoryList)
}
