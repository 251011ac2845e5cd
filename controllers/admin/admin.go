package adminController

import (
	"log"
	"parkguide/config"
	"parkguide/database"
	"parkguide/middleware"
	"parkguide/models"
	"parkguide/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserList returns a paginated list of non-admin accounts, optionally
// filtered by status (pending, approved, rejected).
func UserList(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUserList").(*struct {
		Page   *int   `json:"page"`
		Limit  *int   `json:"limit"`
		Status string `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	offset := (*reqData.Page - 1) * (*reqData.Limit)

	query := database.Database.Db.Model(&models.User{}).
		Where("is_deleted = ? AND role != ?", false, "admin")

	if reqData.Status != "" {
		query = query.Where("status = ?", reqData.Status)
	}

	var total int64
	query.Count(&total)

	var users []models.User
	if err := query.Offset(offset).Limit(*reqData.Limit).Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user list!", nil)
	}

	for i := range users {
		users[i].Password = ""
	}

	response := map[string]interface{}{
		"users": users,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  *reqData.Page,
			"limit": *reqData.Limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User List.", response)
}

// ApproveUser flips a pending account to approved and notifies the user.
func ApproveUser(c *fiber.Ctx) error {
	userID := c.Locals("targetUserID").(int)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if user.Status != "pending" {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User is not pending approval!", nil)
	}

	user.Status = "approved"
	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to approve user!", nil)
	}

	go func(u models.User) {
		if err := utils.SendAccountApprovedEmail(u.Email, u.FirstName); err != nil {
			log.Printf("Error sending approval email to %s: %v", u.Email, err)
		}
	}(user)

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User approved successfully.", user)
}

// RejectUser flips a pending account to rejected and notifies the user.
func RejectUser(c *fiber.Ctx) error {
	userID := c.Locals("targetUserID").(int)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if user.Status != "pending" {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User is not pending approval!", nil)
	}

	user.Status = "rejected"
	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reject user!", nil)
	}

	go func(u models.User) {
		if err := utils.SendAccountRejectedEmail(u.Email, u.FirstName); err != nil {
			log.Printf("Error sending rejection email to %s: %v", u.Email, err)
		}
	}(user)

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User rejected.", user)
}

// CreateUser registers a pre-approved account (admin or park guide) from
// the admin panel.
func CreateUser(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCreateUser").(*struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Password  string `json:"password"`
		Role      string `json:"role"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		FirstName: reqData.FirstName,
		LastName:  reqData.LastName,
		Email:     reqData.Email,
		Password:  string(hashedPassword),
		Role:      reqData.Role,
		Status:    "approved",
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newUser).Error; err != nil {
			return err
		}
		if newUser.Role == "park_guide" {
			guide := models.ParkGuide{
				UserID:              newUser.ID,
				CertificationStatus: models.CertStatusNotApplicable,
			}
			if err := tx.Create(&guide).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create user!", nil)
	}

	newUser.Password = ""

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User created successfully.", newUser)
}

// DeleteUser soft deletes an account and, for park guides, the guide row.
func DeleteUser(c *fiber.Ctx) error {
	userID := c.Locals("targetUserID").(int)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&user).Update("is_deleted", true).Error; err != nil {
			return err
		}
		if user.Role == "park_guide" {
			if err := tx.Model(&models.ParkGuide{}).
				Where("user_id = ?", user.ID).
				Update("is_deleted", true).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully.", nil)
}
