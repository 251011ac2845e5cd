package catalogController

import (
	"log"
	"parkguide/config"
	"parkguide/database"
	"parkguide/middleware"
	"parkguide/models"
	"parkguide/utils"

	"github.com/gofiber/fiber/v2"
)

func InfoDocList(c *fiber.Ctx) error {
	query := database.Database.Db.Where("is_deleted = ?", false)
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var docs []models.InfoDoc
	if err := query.Order("title asc").Find(&docs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch documents!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Document list fetched successfully.", fiber.Map{
		"documents": docs,
		"total":     len(docs),
	})
}

func GetInfoDoc(c *fiber.Ctx) error {
	docID := c.Locals("docID").(int)

	var doc models.InfoDoc
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", docID, false).First(&doc).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Document not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Document fetched successfully.", doc)
}

func CreateInfoDoc(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedInfoDoc").(*struct {
		Title    string `json:"title"`
		Category string `json:"category"`
		Content  string `json:"content"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	fileURL := ""
	if file, err := c.FormFile("file"); err == nil && file != nil {
		saved, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
		if err != nil {
			log.Printf("Error saving document file: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save document file!", nil)
		}
		fileURL = utils.GetFileURL(saved)
	}

	doc := models.InfoDoc{
		Title:    reqData.Title,
		Category: reqData.Category,
		Content:  reqData.Content,
		FileURL:  fileURL,
	}
	if err := database.Database.Db.Create(&doc).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create document!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Document created successfully.", doc)
}

func UpdateInfoDoc(c *fiber.Ctx) error {
	docID := c.Locals("docID").(int)

	reqData, ok := c.Locals("validatedInfoDoc").(*struct {
		Title    string `json:"title"`
		Category string `json:"category"`
		Content  string `json:"content"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var doc models.InfoDoc
	if err := db.Where("id = ? AND is_deleted = ?", docID, false).First(&doc).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Document not found!", nil)
	}

	doc.Title = reqData.Title
	doc.Category = reqData.Category
	doc.Content = reqData.Content

	if file, err := c.FormFile("file"); err == nil && file != nil {
		saved, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
		if err != nil {
			log.Printf("Error saving document file: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save document file!", nil)
		}
		doc.FileURL = utils.GetFileURL(saved)
	}

	if err := db.Save(&doc).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update document!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Document updated successfully.", doc)
}

func DeleteInfoDoc(c *fiber.Ctx) error {
	docID := c.Locals("docID").(int)

	result := database.Database.Db.Model(&models.InfoDoc{}).
		Where("id = ? AND is_deleted = ?", docID, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete document!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Document not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Document deleted successfully.", nil)
}
