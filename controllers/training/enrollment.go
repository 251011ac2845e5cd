package trainingController

import (
	"fmt"
	"parkguide/database"
	"parkguide/middleware"
	"parkguide/models"
	"parkguide/models/training"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// EnrollFreeModule enrolls the caller directly into a zero-price module.
// Paid modules must go through the purchase flow instead.
func EnrollFreeModule(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	moduleID := c.Locals("moduleID").(int)

	db := database.Database.Db

	var module training.Module
	if err := db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Training module not found!", nil)
	}

	if module.Price != 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "This is a premium module and requires payment!", nil)
	}

	// Duplicate enrollment answers idempotently
	var existing training.ModulePurchase
	if err := db.Where("user_id = ? AND module_id = ? AND is_active = ? AND is_deleted = ?", userID, moduleID, true, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "You are already enrolled in this module.", existing)
	}

	var purchase training.ModulePurchase

	err := db.Transaction(func(tx *gorm.DB) error {
		payment := models.PaymentTransaction{
			UserID:          userID,
			ModuleID:        &module.ID,
			AmountPaid:      0,
			PaymentPurpose:  fmt.Sprintf("Free Module: %s", module.ModuleName),
			PaymentMethod:   "debit",
			PaymentStatus:   models.PaymentStatusApproved,
			TransactionDate: time.Now(),
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		purchase = training.ModulePurchase{
			UserID:    userID,
			ModuleID:  module.ID,
			PaymentID: payment.ID,
			Status:    "active",
			IsActive:  true,
		}
		if err := tx.Create(&purchase).Error; err != nil {
			return err
		}

		return seedTrainingProgress(tx, userID, module.ID)
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Successfully enrolled in free module.", fiber.Map{
		"moduleId": module.ID,
		"status":   purchase.Status,
	})
}

// seedTrainingProgress creates the guide's progress row for a module if the
// user is a park guide and no row exists yet.
func seedTrainingProgress(tx *gorm.DB, userID, moduleID uint) error {
	var guide models.ParkGuide
	if err := tx.Where("user_id = ? AND is_deleted = ?", userID, false).First(&guide).Error; err != nil {
		// Admins buying modules for preview have no guide row
		return nil
	}

	var existing training.GuideTrainingProgress
	if err := tx.Where("guide_id = ? AND module_id = ? AND is_deleted = ?", guide.ID, moduleID, false).First(&existing).Error; err == nil {
		return nil
	}

	progress := training.GuideTrainingProgress{
		GuideID:   guide.ID,
		ModuleID:  moduleID,
		Status:    training.ProgressInProgress,
		StartDate: time.Now(),
	}
	return tx.Create(&progress).Error
}
