package iotValidator

import (
	"parkguide/middleware"

	"github.com/gofiber/fiber/v2"
)

var allowedReadingTypes = map[string]bool{
	"temperature": true,
	"humidity":    true,
	"motion":      true,
}

func Reading() fiber.Handler {
	return func(c *fiber.Ctx) error {
		type readingRequest struct {
			SensorID    string  `json:"sensorId"`
			ParkID      uint    `json:"parkId"`
			ReadingType string  `json:"readingType"`
			Value       float64 `json:"value"`
		}

		var reqData readingRequest
		if err := c.BodyParser(&reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request format!", nil)
		}

		errors := make(map[string]string)
		if reqData.SensorID == "" {
			errors["sensorId"] = "Sensor ID is required!"
		}
		if reqData.ParkID == 0 {
			errors["parkId"] = "Park ID is required!"
		}
		if !allowedReadingTypes[reqData.ReadingType] {
			errors["readingType"] = "Reading type must be one of: temperature, humidity, motion!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReading", &struct {
			SensorID    string  `json:"sensorId"`
			ParkID      uint    `json:"parkId"`
			ReadingType string  `json:"readingType"`
			Value       float64 `json:"value"`
		}{
			SensorID:    reqData.SensorID,
			ParkID:      reqData.ParkID,
			ReadingType: reqData.ReadingType,
			Value:       reqData.Value,
		})
		return c.Next()
	}
}

func Threshold() fiber.Handler {
	return func(c *fiber.Ctx) error {
		type thresholdRequest struct {
			ParkID      uint    `json:"parkId"`
			ReadingType string  `json:"readingType"`
			MinValue    float64 `json:"minValue"`
			MaxValue    float64 `json:"maxValue"`
		}

		var reqData thresholdRequest
		if err := c.BodyParser(&reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request format!", nil)
		}

		errors := make(map[string]string)
		if reqData.ParkID == 0 {
			errors["parkId"] = "Park ID is required!"
		}
		if !allowedReadingTypes[reqData.ReadingType] {
			errors["readingType"] = "Reading type must be one of: temperature, humidity, motion!"
		}
		if reqData.MinValue >= reqData.MaxValue {
			errors["minValue"] = "Minimum value must be less than maximum value!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedThreshold", &struct {
			ParkID      uint    `json:"parkId"`
			ReadingType string  `json:"readingType"`
			MinValue    float64 `json:"minValue"`
			MaxValue    float64 `json:"maxValue"`
		}{
			ParkID:      reqData.ParkID,
			ReadingType: reqData.ReadingType,
			MinValue:    reqData.MinValue,
			MaxValue:    reqData.MaxValue,
		})
		return c.Next()
	}
}
