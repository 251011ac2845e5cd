package guideController

import (
	"parkguide/database"
	"parkguide/middleware"
	"parkguide/models"

	"github.com/gofiber/fiber/v2"
)

// GuideWithUser joins the guide row with the user fields the admin tables
// display.
type GuideWithUser struct {
	models.ParkGuide
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	ParkName  string `json:"park_name"`
}

func GuideList(c *fiber.Ctx) error {
	var guides []models.ParkGuide
	if err := database.Database.Db.Where("is_deleted = ?", false).Find(&guides).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch park guides!", nil)
	}

	result := make([]GuideWithUser, len(guides))
	for i, g := range guides {
		var user models.User
		database.Database.Db.Where("id = ?", g.UserID).First(&user)

		var park models.Park
		if g.AssignedParkID != nil {
			database.Database.Db.Where("id = ?", *g.AssignedParkID).First(&park)
		}

		result[i] = GuideWithUser{
			ParkGuide: g,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
			ParkName:  park.ParkName,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Park guide list.", fiber.Map{
		"guides": result,
		"total":  len(result),
	})
}

func GetGuide(c *fiber.Ctx) error {
	guideID := c.Locals("guideID").(int)

	var guide models.ParkGuide
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", guideID, false).First(&guide).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Park guide not found!", nil)
	}

	var user models.User
	database.Database.Db.Where("id = ?", guide.UserID).First(&user)

	var park models.Park
	if guide.AssignedParkID != nil {
		database.Database.Db.Where("id = ?", *guide.AssignedParkID).First(&park)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Park guide fetched successfully.", GuideWithUser{
		ParkGuide: guide,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		ParkName:  park.ParkName,
	})
}

// GetGuideSelf resolves the guide row for the authenticated user.
func GetGuideSelf(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var guide models.ParkGuide
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).First(&guide).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Park guide not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Park guide fetched successfully.", guide)
}

// UpdateGuide lets an admin reassign a guide's park.
func UpdateGuide(c *fiber.Ctx) error {
	guideID := c.Locals("guideID").(int)

	reqData := new(struct {
		AssignedParkID *uint `json:"assignedParkId"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to parse request body!", nil)
	}

	var guide models.ParkGuide
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", guideID, false).First(&guide).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Park guide not found!", nil)
	}

	if reqData.AssignedParkID != nil {
		var park models.Park
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", *reqData.AssignedParkID, false).First(&park).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Park not found!", nil)
		}
		guide.AssignedParkID = reqData.AssignedParkID
	}

	if err := database.Database.Db.Save(&guide).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update park guide!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Park guide updated successfully.", guide)
}

// DeleteGuide soft deletes a guide row.
func DeleteGuide(c *fiber.Ctx) error {
	guideID := c.Locals("guideID").(int)

	result := database.Database.Db.Model(&models.ParkGuide{}).
		Where("id = ? AND is_deleted = ?", guideID, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete park guide!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Park guide not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Park guide deleted successfully.", nil)
}
