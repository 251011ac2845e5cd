package parkRoutes

import (
	parkController "parkguide/controllers/park"
	"parkguide/middleware"
	parkValidator "parkguide/validators/park"

	"github.com/gofiber/fiber/v2"
)

func SetupParkRoutes(app *fiber.App) {
	parks := app.Group("/api/v1/parks")

	parks.Get("/", parkController.ParkList)
	parks.Get("/:id", parkValidator.ParkID(), parkController.GetPark)

	parks.Post("/", middleware.JWTMiddleware, middleware.RequireRole("admin"), parkValidator.ParkBody(), parkController.CreatePark)
	parks.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole("admin"), parkValidator.ParkID(), parkValidator.ParkBody(), parkController.UpdatePark)
	parks.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole("admin"), parkValidator.ParkID(), parkController.DeletePark)
}
