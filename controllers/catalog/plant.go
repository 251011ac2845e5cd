package catalogController

import (
	"log"
	"parkguide/config"
	"parkguide/database"
	"parkguide/middleware"
	"parkguide/models"
	"parkguide/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PlantWithInfo pairs a plant with its guidebook entry when one exists.
type PlantWithInfo struct {
	models.Plant
	Info *models.PlantInfo `json:"info,omitempty"`
}

func PlantList(c *fiber.Ctx) error {
	db := database.Database.Db

	query := db.Where("is_deleted = ?", false)
	if parkID := c.QueryInt("parkId"); parkID > 0 {
		query = query.Where("park_id = ?", parkID)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("common_name LIKE ? OR scientific_name LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var plants []models.Plant
	if err := query.Order("common_name asc").Find(&plants).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch plants!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Plant list fetched successfully.", fiber.Map{
		"plants": plants,
		"total":  len(plants),
	})
}

func GetPlant(c *fiber.Ctx) error {
	plantID := c.Locals("plantID").(int)

	db := database.Database.Db

	var plant models.Plant
	if err := db.Where("id = ? AND is_deleted = ?", plantID, false).First(&plant).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Plant not found!", nil)
	}

	result := PlantWithInfo{Plant: plant}

	var info models.PlantInfo
	if err := db.Where("plant_id = ? AND is_deleted = ?", plant.ID, false).First(&info).Error; err == nil {
		result.Info = &info
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Plant fetched successfully.", result)
}

func CreatePlant(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPlant").(*struct {
		CommonName     string `json:"commonName"`
		ScientificName string `json:"scientificName"`
		Description    string `json:"description"`
		ParkID         *uint  `json:"parkId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	imageURL := ""
	if file, err := c.FormFile("image"); err == nil && file != nil {
		saved, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
		if err != nil {
			log.Printf("Error saving plant image: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save plant image!", nil)
		}
		imageURL = utils.GetFileURL(saved)
	}

	plant := models.Plant{
		CommonName:     reqData.CommonName,
		ScientificName: reqData.ScientificName,
		Description:    reqData.Description,
		ImageURL:       imageURL,
		ParkID:         reqData.ParkID,
	}
	if err := database.Database.Db.Create(&plant).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create plant!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Plant created successfully.", plant)
}

func UpdatePlant(c *fiber.Ctx) error {
	plantID := c.Locals("plantID").(int)

	reqData, ok := c.Locals("validatedPlant").(*struct {
		CommonName     string `json:"commonName"`
		ScientificName string `json:"scientificName"`
		Description    string `json:"description"`
		ParkID         *uint  `json:"parkId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var plant models.Plant
	if err := db.Where("id = ? AND is_deleted = ?", plantID, false).First(&plant).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Plant not found!", nil)
	}

	plant.CommonName = reqData.CommonName
	plant.ScientificName = reqData.ScientificName
	plant.Description = reqData.Description
	plant.ParkID = reqData.ParkID

	if file, err := c.FormFile("image"); err == nil && file != nil {
		saved, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
		if err != nil {
			log.Printf("Error saving plant image: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save plant image!", nil)
		}
		plant.ImageURL = utils.GetFileURL(saved)
	}

	if err := db.Save(&plant).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update plant!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Plant updated successfully.", plant)
}

// DeletePlant soft deletes a plant and its guidebook entry together.
func DeletePlant(c *fiber.Ctx) error {
	plantID := c.Locals("plantID").(int)

	db := database.Database.Db

	var plant models.Plant
	if err := db.Where("id = ? AND is_deleted = ?", plantID, false).First(&plant).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Plant not found!", nil)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Plant{}).Where("id = ?", plant.ID).Update("is_deleted", true).Error; err != nil {
			return err
		}
		return tx.Model(&models.PlantInfo{}).Where("plant_id = ?", plant.ID).Update("is_deleted", true).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete plant!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Plant deleted successfully.", nil)
}

// UpsertPlantInfo creates or replaces the guidebook entry for a plant.
func UpsertPlantInfo(c *fiber.Ctx) error {
	plantID := c.Locals("plantID").(int)

	reqData, ok := c.Locals("validatedPlantInfo").(*struct {
		Habitat      string `json:"habitat"`
		Uses         string `json:"uses"`
		Conservation string `json:"conservation"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var plant models.Plant
	if err := db.Where("id = ? AND is_deleted = ?", plantID, false).First(&plant).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Plant not found!", nil)
	}

	var info models.PlantInfo
	if err := db.Where("plant_id = ? AND is_deleted = ?", plant.ID, false).First(&info).Error; err != nil {
		info = models.PlantInfo{PlantID: plant.ID}
	}

	info.Habitat = reqData.Habitat
	info.Uses = reqData.Uses
	info.Conservation = reqData.Conservation

	if err := db.Save(&info).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save plant information!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Plant information saved successfully.", info)
}
