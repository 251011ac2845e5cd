package trainingController

import (
	"parkguide/database"
	"parkguide/middleware"
	"parkguide/models/training"

	"github.com/gofiber/fiber/v2"
)

func ModuleList(c *fiber.Ctx) error {
	var modules []training.Module
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("is_compulsory desc, module_name asc").Find(&modules).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch training modules!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Training module list.", fiber.Map{
		"modules": modules,
		"total":   len(modules),
	})
}

func GetModule(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(int)

	var module training.Module
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Training module not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Training module fetched successfully.", module)
}

// AvailableModules lists modules the caller does not own yet, flagged free
// or paid so the client can route to enrollment or purchase.
func AvailableModules(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var ownedIDs []uint
	db.Model(&training.ModulePurchase{}).
		Where("user_id = ? AND is_active = ? AND is_deleted = ?", userID, true, false).
		Pluck("module_id", &ownedIDs)

	query := db.Where("is_deleted = ?", false)
	if len(ownedIDs) > 0 {
		query = query.Where("id NOT IN ?", ownedIDs)
	}

	var modules []training.Module
	if err := query.Order("is_compulsory desc, module_name asc").Find(&modules).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch available modules!", nil)
	}

	type AvailableModule struct {
		training.Module
		IsFree bool `json:"is_free"`
	}

	result := make([]AvailableModule, len(modules))
	for i, m := range modules {
		result[i] = AvailableModule{Module: m, IsFree: m.Price == 0}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Available modules fetched successfully.", fiber.Map{
		"modules": result,
		"total":   len(result),
	})
}

// ModuleAccess reports whether the caller owns an active purchase of the
// module.
func ModuleAccess(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	moduleID := c.Locals("moduleID").(int)

	var module training.Module
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Training module not found!", nil)
	}

	var purchase training.ModulePurchase
	err := database.Database.Db.
		Where("user_id = ? AND module_id = ? AND is_active = ? AND is_deleted = ?", userID, moduleID, true, false).
		First(&purchase).Error

	hasAccess := err == nil

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module access checked.", fiber.Map{
		"moduleId":  module.ID,
		"hasAccess": hasAccess,
	})
}

// PurchaseStatus reports the state of the caller's purchase of a module,
// including one still pending payment approval.
func PurchaseStatus(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	moduleID := c.Locals("moduleID").(int)

	var purchase training.ModulePurchase
	err := database.Database.Db.
		Where("user_id = ? AND module_id = ? AND is_deleted = ?", userID, moduleID, false).
		Order("created_at desc").
		First(&purchase).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Module purchase status.", fiber.Map{
			"purchased": false,
			"status":    "none",
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module purchase status.", fiber.Map{
		"purchased":            purchase.IsActive,
		"status":               purchase.Status,
		"completionPercentage": purchase.CompletionPercentage,
	})
}

// CreateModule adds a module to the catalog (admin).
func CreateModule(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedModule").(*struct {
		ModuleName    string  `json:"moduleName"`
		Description   string  `json:"description"`
		Price         float64 `json:"price"`
		IsCompulsory  bool    `json:"isCompulsory"`
		VideoURL      string  `json:"videoUrl"`
		CourseContent string  `json:"courseContent"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	module := training.Module{
		ModuleName:    reqData.ModuleName,
		Description:   reqData.Description,
		Price:         reqData.Price,
		IsCompulsory:  reqData.IsCompulsory,
		VideoURL:      reqData.VideoURL,
		CourseContent: reqData.CourseContent,
	}

	if err := database.Database.Db.Create(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create training module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Training module created successfully.", module)
}

// UpdateModule edits a catalog module (admin).
func UpdateModule(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(int)

	reqData, ok := c.Locals("validatedModule").(*struct {
		ModuleName    string  `json:"moduleName"`
		Description   string  `json:"description"`
		Price         float64 `json:"price"`
		IsCompulsory  bool    `json:"isCompulsory"`
		VideoURL      string  `json:"videoUrl"`
		CourseContent string  `json:"courseContent"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var module training.Module
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Training module not found!", nil)
	}

	module.ModuleName = reqData.ModuleName
	module.Description = reqData.Description
	module.Price = reqData.Price
	module.IsCompulsory = reqData.IsCompulsory
	module.VideoURL = reqData.VideoURL
	module.CourseContent = reqData.CourseContent

	if err := database.Database.Db.Save(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update training module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Training module updated successfully.", module)
}

// DeleteModule soft deletes a catalog module (admin).
func DeleteModule(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(int)

	result := database.Database.Db.Model(&training.Module{}).
		Where("id = ? AND is_deleted = ?", moduleID, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete training module!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Training module not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Training module deleted successfully.", nil)
}
