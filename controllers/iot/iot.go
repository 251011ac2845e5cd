package iotController

import (
	"parkguide/database"
	"parkguide/middleware"
	"parkguide/models"
	"time"

	"github.com/gofiber/fiber/v2"
)

// SensorAlert flags a reading that breached its park's threshold.
type SensorAlert struct {
	Reading     models.SensorReading `json:"reading"`
	MinValue    float64              `json:"minValue"`
	MaxValue    float64              `json:"maxValue"`
	Breach      string               `json:"breach"` // above, below
	TriggeredAt time.Time            `json:"triggeredAt"`
}

// SubmitReading records a sensor measurement.
func SubmitReading(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedReading").(*struct {
		SensorID    string  `json:"sensorId"`
		ParkID      uint    `json:"parkId"`
		ReadingType string  `json:"readingType"`
		Value       float64 `json:"value"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	reading := models.SensorReading{
		SensorID:    reqData.SensorID,
		ParkID:      reqData.ParkID,
		ReadingType: reqData.ReadingType,
		Value:       reqData.Value,
		RecordedAt:  time.Now(),
	}
	if err := database.Database.Db.Create(&reading).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record sensor reading!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Sensor reading recorded successfully.", reading)
}

// ReadingList lists recent readings, filterable by park, sensor and type.
func ReadingList(c *fiber.Ctx) error {
	query := database.Database.Db.Where("is_deleted = ?", false)
	if parkID := c.QueryInt("parkId"); parkID > 0 {
		query = query.Where("park_id = ?", parkID)
	}
	if sensorID := c.Query("sensorId"); sensorID != "" {
		query = query.Where("sensor_id = ?", sensorID)
	}
	if readingType := c.Query("type"); readingType != "" {
		query = query.Where("reading_type = ?", readingType)
	}

	limit := c.QueryInt("limit", 100)
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	var readings []models.SensorReading
	if err := query.Order("recorded_at desc").Limit(limit).Find(&readings).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch sensor readings!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sensor readings fetched successfully.", fiber.Map{
		"readings": readings,
		"total":    len(readings),
	})
}

// ActiveAlerts compares the latest readings against thresholds for a park.
func ActiveAlerts(c *fiber.Ctx) error {
	parkID := c.QueryInt("parkId")
	if parkID <= 0 {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"parkId": "Park ID query parameter is required!",
		})
	}

	db := database.Database.Db

	var thresholds []models.AlertThreshold
	if err := db.Where("park_id = ? AND is_deleted = ?", parkID, false).Find(&thresholds).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch alert thresholds!", nil)
	}

	alerts := make([]SensorAlert, 0)
	for _, threshold := range thresholds {
		var reading models.SensorReading
		err := db.Where("park_id = ? AND reading_type = ? AND is_deleted = ?", parkID, threshold.ReadingType, false).
			Order("recorded_at desc").
			First(&reading).Error
		if err != nil {
			continue
		}

		var breach string
		if reading.Value > threshold.MaxValue {
			breach = "above"
		} else if reading.Value < threshold.MinValue {
			breach = "below"
		} else {
			continue
		}

		alerts = append(alerts, SensorAlert{
			Reading:     reading,
			MinValue:    threshold.MinValue,
			MaxValue:    threshold.MaxValue,
			Breach:      breach,
			TriggeredAt: reading.RecordedAt,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Active alerts fetched successfully.", fiber.Map{
		"alerts": alerts,
		"total":  len(alerts),
	})
}

// ThresholdList lists alert thresholds (admin).
func ThresholdList(c *fiber.Ctx) error {
	query := database.Database.Db.Where("is_deleted = ?", false)
	if parkID := c.QueryInt("parkId"); parkID > 0 {
		query = query.Where("park_id = ?", parkID)
	}

	var thresholds []models.AlertThreshold
	if err := query.Find(&thresholds).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch thresholds!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Thresholds fetched successfully.", fiber.Map{
		"thresholds": thresholds,
		"total":      len(thresholds),
	})
}

// UpsertThreshold creates or replaces the threshold for a park and reading type.
func UpsertThreshold(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedThreshold").(*struct {
		ParkID      uint    `json:"parkId"`
		ReadingType string  `json:"readingType"`
		MinValue    float64 `json:"minValue"`
		MaxValue    float64 `json:"maxValue"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var threshold models.AlertThreshold
	if err := db.Where("park_id = ? AND reading_type = ? AND is_deleted = ?", reqData.ParkID, reqData.ReadingType, false).
		First(&threshold).Error; err != nil {
		threshold = models.AlertThreshold{
			ParkID:      reqData.ParkID,
			ReadingType: reqData.ReadingType,
		}
	}

	threshold.MinValue = reqData.MinValue
	threshold.MaxValue = reqData.MaxValue

	if err := db.Save(&threshold).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save threshold!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Threshold saved successfully.", threshold)
}
