package iotRoutes

import (
	iotController "parkguide/controllers/iot"
	"parkguide/middleware"
	iotValidator "parkguide/validators/iot"

	"github.com/gofiber/fiber/v2"
)

func SetupIotRoutes(app *fiber.App) {
	iot := app.Group("/api/v1/iot", middleware.JWTMiddleware)

	iot.Post("/readings", iotValidator.Reading(), iotController.SubmitReading)
	iot.Get("/readings", iotController.ReadingList)
	iot.Get("/alerts", iotController.ActiveAlerts)

	iot.Get("/thresholds", middleware.RequireRole("admin"), iotController.ThresholdList)
	iot.Put("/thresholds", middleware.RequireRole("admin"), iotValidator.Threshold(), iotController.UpsertThreshold)
}
