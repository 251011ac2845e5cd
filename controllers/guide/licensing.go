package guideController

import (
	"log"
	"parkguide/database"
	"parkguide/middleware"
	"parkguide/models"
	"parkguide/models/training"
	"parkguide/utils"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// EligibleForLicense is the single authority on license eligibility: the
// guide's certification status must read "not applicable" (any casing) and
// the guide must hold at least two compulsory-module certifications.
func EligibleForLicense(certificationStatus string, compulsoryCerts int64) bool {
	status := strings.ToLower(strings.TrimSpace(certificationStatus))
	return status == models.CertStatusNotApplicable && compulsoryCerts >= 2
}

// CompulsoryCertCount counts the distinct compulsory modules for which a
// guide holds an active certification.
func CompulsoryCertCount(db *gorm.DB, guideID uint) (int64, error) {
	var count int64
	err := db.Model(&training.Certification{}).
		Distinct("modules.id").
		Joins("JOIN modules ON modules.id = certifications.module_id").
		Where("certifications.guide_id = ? AND certifications.status = ? AND certifications.is_deleted = ?", guideID, "active", false).
		Where("modules.is_compulsory = ? AND modules.is_deleted = ?", true, false).
		Count(&count).Error
	return count, err
}

// RequestLicenseApproval puts a guide into the admin's pending-license
// queue. Eligibility is recomputed here rather than trusted from the
// caller.
func RequestLicenseApproval(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedLicenseRequest").(*struct {
		RequestedParkID uint `json:"requestedParkId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var guide models.ParkGuide
	if err := db.Where("user_id = ? AND is_deleted = ?", userID, false).First(&guide).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Park guide not found!", nil)
	}

	var park models.Park
	if err := db.Where("id = ? AND is_deleted = ?", reqData.RequestedParkID, false).First(&park).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Park not found!", nil)
	}

	if strings.EqualFold(guide.CertificationStatus, models.CertStatusPending) {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "License approval request already pending!", nil)
	}

	compulsoryCerts, err := CompulsoryCertCount(db, guide.ID)
	if err != nil {
		log.Printf("Error counting compulsory certifications for guide %d: %v", guide.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check eligibility!", nil)
	}

	if !EligibleForLicense(guide.CertificationStatus, compulsoryCerts) {
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "You are not yet eligible for an official license. Complete at least two compulsory modules first.", fiber.Map{
			"certificationStatus": guide.CertificationStatus,
			"compulsoryCerts":     compulsoryCerts,
		})
	}

	guide.CertificationStatus = models.CertStatusPending
	guide.RequestedParkID = &reqData.RequestedParkID
	if err := db.Save(&guide).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit license approval request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "License approval request submitted successfully.", guide)
}

// PendingCertifications lists guides awaiting a license decision, joined
// with their user details and requested park.
func PendingCertifications(c *fiber.Ctx) error {
	type PendingGuide struct {
		models.ParkGuide
		FirstName         string `json:"first_name"`
		LastName          string `json:"last_name"`
		Email             string `json:"email"`
		RequestedParkName string `json:"requested_park_name"`
	}

	var guides []models.ParkGuide
	if err := database.Database.Db.
		Where("certification_status = ? AND requested_park_id IS NOT NULL AND is_deleted = ?", models.CertStatusPending, false).
		Find(&guides).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch pending certifications!", nil)
	}

	result := make([]PendingGuide, len(guides))
	for i, g := range guides {
		var user models.User
		database.Database.Db.Where("id = ?", g.UserID).First(&user)

		var park models.Park
		if g.RequestedParkID != nil {
			database.Database.Db.Where("id = ?", *g.RequestedParkID).First(&park)
		}

		result[i] = PendingGuide{
			ParkGuide:         g,
			FirstName:         user.FirstName,
			LastName:          user.LastName,
			Email:             user.Email,
			RequestedParkName: park.ParkName,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending certification requests.", fiber.Map{
		"guides": result,
		"total":  len(result),
	})
}

// ApproveLicense grants the official license: the guide becomes certified,
// is assigned the requested park and the license runs for one year.
func ApproveLicense(c *fiber.Ctx) error {
	guideID := c.Locals("guideID").(int)

	db := database.Database.Db

	var guide models.ParkGuide
	if err := db.Where("id = ? AND is_deleted = ?", guideID, false).First(&guide).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Park guide not found!", nil)
	}

	if !strings.EqualFold(guide.CertificationStatus, models.CertStatusPending) {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Guide has no pending license request!", nil)
	}

	expiry := time.Now().AddDate(1, 0, 0)
	guide.CertificationStatus = models.CertStatusCertified
	guide.LicenseExpiryDate = &expiry
	guide.LicenseReminderSent = false
	guide.AssignedParkID = guide.RequestedParkID
	guide.RequestedParkID = nil

	if err := db.Save(&guide).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to approve license!", nil)
	}

	go func(g models.ParkGuide) {
		var user models.User
		if err := database.Database.Db.Where("id = ?", g.UserID).First(&user).Error; err != nil {
			return
		}
		var park models.Park
		if g.AssignedParkID != nil {
			database.Database.Db.Where("id = ?", *g.AssignedParkID).First(&park)
		}
		if err := utils.SendLicenseApprovedEmail(user.Email, user.FirstName, park.ParkName, expiry); err != nil {
			log.Printf("Error sending license approval email to %s: %v", user.Email, err)
		}
	}(guide)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "License approved successfully.", guide)
}

// RejectLicense declines a pending request and returns the guide to the
// "not applicable" status so they can reapply later.
func RejectLicense(c *fiber.Ctx) error {
	guideID := c.Locals("guideID").(int)

	db := database.Database.Db

	var guide models.ParkGuide
	if err := db.Where("id = ? AND is_deleted = ?", guideID, false).First(&guide).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Park guide not found!", nil)
	}

	if !strings.EqualFold(guide.CertificationStatus, models.CertStatusPending) {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Guide has no pending license request!", nil)
	}

	guide.CertificationStatus = models.CertStatusNotApplicable
	guide.RequestedParkID = nil

	if err := db.Save(&guide).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reject license request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "License request rejected.", guide)
}
