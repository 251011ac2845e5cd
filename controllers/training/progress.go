package trainingController

import (
	"parkguide/database"
	"parkguide/middleware"
	"parkguide/models"
	"parkguide/models/training"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ProgressWithModule joins a progress row with the module name for lists.
type ProgressWithModule struct {
	training.GuideTrainingProgress
	ModuleName string `json:"module_name"`
}

// ProgressList lists all guides' progress rows (admin).
func ProgressList(c *fiber.Ctx) error {
	var rows []training.GuideTrainingProgress
	if err := database.Database.Db.Where("is_deleted = ?", false).Find(&rows).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch training progress!", nil)
	}

	result := make([]ProgressWithModule, len(rows))
	for i, p := range rows {
		var module training.Module
		database.Database.Db.Where("id = ?", p.ModuleID).First(&module)
		result[i] = ProgressWithModule{GuideTrainingProgress: p, ModuleName: module.ModuleName}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Training progress list.", fiber.Map{
		"progress": result,
		"total":    len(result),
	})
}

// ProgressSelf lists the authenticated guide's progress rows.
func ProgressSelf(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var guide models.ParkGuide
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).First(&guide).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Park guide not found!", nil)
	}

	var rows []training.GuideTrainingProgress
	if err := database.Database.Db.Where("guide_id = ? AND is_deleted = ?", guide.ID, false).Find(&rows).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch training progress!", nil)
	}

	result := make([]ProgressWithModule, len(rows))
	for i, p := range rows {
		var module training.Module
		database.Database.Db.Where("id = ?", p.ModuleID).First(&module)
		result[i] = ProgressWithModule{GuideTrainingProgress: p, ModuleName: module.ModuleName}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Training progress fetched successfully.", fiber.Map{
		"progress": result,
		"total":    len(result),
	})
}

// UpdateProgress sets the completion percentage of one progress row.
// Reaching 100 marks the row completed and stamps the completion date.
func UpdateProgress(c *fiber.Ctx) error {
	progressID := c.Locals("progressID").(int)

	reqData, ok := c.Locals("validatedProgress").(*struct {
		CompletionPercentage float64 `json:"completionPercentage"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var progress training.GuideTrainingProgress
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", progressID, false).First(&progress).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Training progress not found!", nil)
	}

	// Guides can only update their own progress rows.
	if role, _ := c.Locals("userRole").(string); role != "admin" {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}
		var guide models.ParkGuide
		if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).First(&guide).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Park guide not found!", nil)
		}
		if guide.ID != progress.GuideID {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only update your own training progress!", nil)
		}
	}

	progress.CompletionPercentage = reqData.CompletionPercentage
	if progress.CompletionPercentage >= 100 {
		progress.CompletionPercentage = 100
		progress.Status = training.ProgressCompleted
		now := time.Now()
		progress.CompletionDate = &now
	} else {
		progress.Status = training.ProgressInProgress
		progress.CompletionDate = nil
	}

	if err := database.Database.Db.Save(&progress).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update training progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Training progress updated successfully.", progress)
}

// DeleteProgress soft deletes a progress row (admin).
func DeleteProgress(c *fiber.Ctx) error {
	progressID := c.Locals("progressID").(int)

	result := database.Database.Db.Model(&training.GuideTrainingProgress{}).
		Where("id = ? AND is_deleted = ?", progressID, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete training progress!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Training progress not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Training progress deleted successfully.", nil)
}
