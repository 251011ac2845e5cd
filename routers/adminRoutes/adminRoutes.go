package adminRoutes

import (
	adminController "parkguide/controllers/admin"
	"parkguide/middleware"
	adminValidator "parkguide/validators/admin"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	admin := app.Group("/api/v1/admin", middleware.JWTMiddleware, middleware.RequireRole("admin"))

	admin.Get("/users", adminValidator.UserList(), adminController.UserList)
	admin.Post("/users", adminValidator.CreateUser(), adminController.CreateUser)
	admin.Put("/users/:id/approve", adminValidator.UserID(), adminController.ApproveUser)
	admin.Put("/users/:id/reject", adminValidator.UserID(), adminController.RejectUser)
	admin.Delete("/users/:id", adminValidator.UserID(), adminController.DeleteUser)
}
