package parkController

import (
	"parkguide/database"
	"parkguide/middleware"
	"parkguide/models"

	"github.com/gofiber/fiber/v2"
)

func ParkList(c *fiber.Ctx) error {
	var parks []models.Park
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("park_name asc").Find(&parks).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch parks!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Park list fetched successfully.", fiber.Map{
		"parks": parks,
		"total": len(parks),
	})
}

func GetPark(c *fiber.Ctx) error {
	parkID := c.Locals("parkID").(int)

	var park models.Park
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", parkID, false).First(&park).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Park not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Park fetched successfully.", park)
}

func CreatePark(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPark").(*struct {
		ParkName    string `json:"parkName"`
		Location    string `json:"location"`
		Description string `json:"description"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	park := models.Park{
		ParkName:    reqData.ParkName,
		Location:    reqData.Location,
		Description: reqData.Description,
	}
	if err := database.Database.Db.Create(&park).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create park!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Park created successfully.", park)
}

func UpdatePark(c *fiber.Ctx) error {
	parkID := c.Locals("parkID").(int)

	reqData, ok := c.Locals("validatedPark").(*struct {
		ParkName    string `json:"parkName"`
		Location    string `json:"location"`
		Description string `json:"description"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var park models.Park
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", parkID, false).First(&park).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Park not found!", nil)
	}

	park.ParkName = reqData.ParkName
	park.Location = reqData.Location
	park.Description = reqData.Description

	if err := database.Database.Db.Save(&park).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update park!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Park updated successfully.", park)
}

func DeletePark(c *fiber.Ctx) error {
	parkID := c.Locals("parkID").(int)

	result := database.Database.Db.Model(&models.Park{}).
		Where("id = ? AND is_deleted = ?", parkID, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete park!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Park not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Park deleted successfully.", nil)
}
