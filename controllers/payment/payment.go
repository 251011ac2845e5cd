package paymentController

import (
	"fmt"
	"log"
	"parkguide/config"
	"parkguide/database"
	"parkguide/middleware"
	"parkguide/models"
	"parkguide/models/training"
	"parkguide/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreatePayment records a module purchase as a pending transaction with an
// inactive ownership row. An admin approval activates the module.
func CreatePayment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedPayment").(*struct {
		ModuleID      uint   `json:"moduleId"`
		PaymentMethod string `json:"paymentMethod"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var module training.Module
	if err := db.Where("id = ? AND is_deleted = ?", reqData.ModuleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Training module not found!", nil)
	}

	if module.Price == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "This module is free. Use the enrollment endpoint instead.", nil)
	}

	// Already owned or pending approval
	var existing training.ModulePurchase
	if err := db.Where("user_id = ? AND module_id = ? AND is_deleted = ?", userID, reqData.ModuleID, false).First(&existing).Error; err == nil {
		if existing.IsActive {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "You already own this module!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A payment for this module is already pending approval!", nil)
	}

	// Optional modules stay locked until every compulsory module is owned
	if !module.IsCompulsory {
		unowned, err := unownedCompulsoryCount(db, userID)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check compulsory modules!", nil)
		}
		if unowned > 0 {
			return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Complete all compulsory modules before purchasing optional ones!", fiber.Map{
				"unownedCompulsoryModules": unowned,
			})
		}
	}

	// Optional receipt upload
	receiptPath := ""
	if file, err := c.FormFile("receipt"); err == nil && file != nil {
		saved, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
		if err != nil {
			log.Printf("Error saving receipt upload: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save receipt!", nil)
		}
		receiptPath = saved
	}

	var payment models.PaymentTransaction

	err := db.Transaction(func(tx *gorm.DB) error {
		payment = models.PaymentTransaction{
			UserID:          userID,
			ModuleID:        &module.ID,
			AmountPaid:      module.Price,
			PaymentPurpose:  fmt.Sprintf("Module Purchase: %s", module.ModuleName),
			PaymentMethod:   reqData.PaymentMethod,
			PaymentStatus:   models.PaymentStatusPending,
			ReceiptImage:    receiptPath,
			TransactionDate: time.Now(),
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		purchase := training.ModulePurchase{
			UserID:    userID,
			ModuleID:  module.ID,
			PaymentID: payment.ID,
			Status:    "pending",
			IsActive:  false,
		}
		return tx.Create(&purchase).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create payment transaction!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Payment transaction created successfully. Awaiting admin approval.", payment)
}

func unownedCompulsoryCount(db *gorm.DB, userID uint) (int64, error) {
	var compulsoryIDs []uint
	if err := db.Model(&training.Module{}).
		Where("is_compulsory = ? AND is_deleted = ?", true, false).
		Pluck("id", &compulsoryIDs).Error; err != nil {
		return 0, err
	}
	if len(compulsoryIDs) == 0 {
		return 0, nil
	}

	var owned int64
	if err := db.Model(&training.ModulePurchase{}).
		Where("user_id = ? AND module_id IN ? AND is_active = ? AND is_deleted = ?", userID, compulsoryIDs, true, false).
		Count(&owned).Error; err != nil {
		return 0, err
	}

	return int64(len(compulsoryIDs)) - owned, nil
}

// PaymentList lists all payment transactions (admin).
func PaymentList(c *fiber.Ctx) error {
	status := c.Query("status")

	query := database.Database.Db.Where("is_deleted = ?", false)
	if status != "" {
		query = query.Where("payment_status = ?", status)
	}

	var payments []models.PaymentTransaction
	if err := query.Order("transaction_date desc").Find(&payments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payment transactions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment transaction list.", fiber.Map{
		"transactions": payments,
		"total":        len(payments),
	})
}

// GetPayment fetches one payment transaction.
func GetPayment(c *fiber.Ctx) error {
	paymentID := c.Locals("paymentID").(int)

	var payment models.PaymentTransaction
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", paymentID, false).First(&payment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Payment transaction not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment transaction fetched successfully.", payment)
}

// UserPaymentHistory lists the caller's transactions, newest first.
func UserPaymentHistory(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var payments []models.PaymentTransaction
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("transaction_date desc").
		Find(&payments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payment history!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment history fetched successfully.", fiber.Map{
		"transactions": payments,
		"total":        len(payments),
	})
}

// UpdatePaymentStatus approves or rejects a pending transaction (admin).
// Approval activates the linked module purchase and seeds the guide's
// training progress. The update is a blind last write; concurrent admins
// both succeed.
func UpdatePaymentStatus(c *fiber.Ctx) error {
	paymentID := c.Locals("paymentID").(int)

	reqData, ok := c.Locals("validatedPaymentStatus").(*struct {
		PaymentStatus string `json:"paymentStatus"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var payment models.PaymentTransaction
	if err := db.Where("id = ? AND is_deleted = ?", paymentID, false).First(&payment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Payment transaction not found!", nil)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		payment.PaymentStatus = reqData.PaymentStatus
		if err := tx.Save(&payment).Error; err != nil {
			return err
		}

		if reqData.PaymentStatus != models.PaymentStatusApproved {
			return nil
		}

		if err := tx.Model(&training.ModulePurchase{}).
			Where("payment_id = ? AND is_deleted = ?", payment.ID, false).
			Updates(map[string]interface{}{"status": "active", "is_active": true}).Error; err != nil {
			return err
		}

		if payment.ModuleID != nil {
			return seedProgressForUser(tx, payment.UserID, *payment.ModuleID)
		}
		return nil
	})
	if err != nil {
		log.Printf("Error updating payment transaction %d: %v", paymentID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update payment transaction!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment transaction updated successfully.", payment)
}

func seedProgressForUser(tx *gorm.DB, userID, moduleID uint) error {
	var guide models.ParkGuide
	if err := tx.Where("user_id = ? AND is_deleted = ?", userID, false).First(&guide).Error; err != nil {
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

// DeletePayment soft deletes a transaction (admin).
func DeletePayment(c *fiber.Ctx) error {
	paymentID := c.Locals("paymentID").(int)

	result := database.Database.Db.Model(&models.PaymentTransaction{}).
		Where("id = ? AND is_deleted = ?", paymentID, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete payment transaction!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Payment transaction not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment transaction deleted successfully.", nil)
}
