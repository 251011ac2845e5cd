package catalogRoutes

import (
	catalogController "parkguide/controllers/catalog"
	"parkguide/middleware"
	catalogValidator "parkguide/validators/catalog"

	"github.com/gofiber/fiber/v2"
)

func SetupCatalogRoutes(app *fiber.App) {
	plants := app.Group("/api/v1/plants")

	plants.Get("/", catalogController.PlantList)
	plants.Get("/:id", catalogValidator.PlantID(), catalogController.GetPlant)

	plants.Post("/", middleware.JWTMiddleware, middleware.RequireRole("admin"), catalogValidator.PlantBody(), catalogController.CreatePlant)
	plants.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole("admin"), catalogValidator.PlantID(), catalogValidator.PlantBody(), catalogController.UpdatePlant)
	plants.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole("admin"), catalogValidator.PlantID(), catalogController.DeletePlant)
	plants.Put("/:id/info", middleware.JWTMiddleware, middleware.RequireRole("admin"), catalogValidator.PlantID(), catalogValidator.PlantInfoBody(), catalogController.UpsertPlantInfo)

	docs := app.Group("/api/v1/documents", middleware.JWTMiddleware)

	docs.Get("/", catalogController.InfoDocList)
	docs.Get("/:id", catalogValidator.DocID(), catalogController.GetInfoDoc)
	docs.Post("/", middleware.RequireRole("admin"), catalogValidator.InfoDocBody(), catalogController.CreateInfoDoc)
	docs.Put("/:id", middleware.RequireRole("admin"), catalogValidator.DocID(), catalogValidator.InfoDocBody(), catalogController.UpdateInfoDoc)
	docs.Delete("/:id", middleware.RequireRole("admin"), catalogValidator.DocID(), catalogController.DeleteInfoDoc)
}
