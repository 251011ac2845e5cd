package trainingController

import (
	"parkguide/database"
	"parkguide/middleware"
	"parkguide/models"
	"parkguide/models/training"

	"github.com/gofiber/fiber/v2"
)

// CertificationWithModule joins a certification with the module fields the
// clients display.
type CertificationWithModule struct {
	training.Certification
	ModuleName   string `json:"module_name"`
	IsCompulsory bool   `json:"is_compulsory"`
}

func withModules(certs []training.Certification) []CertificationWithModule {
	result := make([]CertificationWithModule, len(certs))
	for i, cert := range certs {
		var module training.Module
		database.Database.Db.Where("id = ?", cert.ModuleID).First(&module)
		result[i] = CertificationWithModule{
			Certification: cert,
			ModuleName:    module.ModuleName,
			IsCompulsory:  module.IsCompulsory,
		}
	}
	return result
}

// CertificationList lists all certifications (admin).
func CertificationList(c *fiber.Ctx) error {
	var certs []training.Certification
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("issued_date desc").Find(&certs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certifications!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certification list.", fiber.Map{
		"certifications": withModules(certs),
		"total":          len(certs),
	})
}

// GuideCertifications returns a guide's certifications, 404 when none
// exist. Callers treat the 404 as an empty state.
func GuideCertifications(c *fiber.Ctx) error {
	guideID := c.Locals("guideID").(int)

	var certs []training.Certification
	if err := database.Database.Db.Where("guide_id = ? AND is_deleted = ?", guideID, false).Order("issued_date desc").Find(&certs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certifications!", nil)
	}

	if len(certs) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No certifications found for this guide!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certifications fetched successfully.", fiber.Map{
		"certifications": withModules(certs),
		"total":          len(certs),
	})
}

// CertificationsSelf returns the authenticated guide's certifications.
func CertificationsSelf(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var guide models.ParkGuide
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).First(&guide).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Park guide not found!", nil)
	}

	var certs []training.Certification
	if err := database.Database.Db.Where("guide_id = ? AND is_deleted = ?", guide.ID, false).Order("issued_date desc").Find(&certs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certifications!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certifications fetched successfully.", fiber.Map{
		"certifications": withModules(certs),
		"total":          len(certs),
	})
}

// DeleteCertification soft deletes a certification (admin).
func DeleteCertification(c *fiber.Ctx) error {
	certID := c.Locals("certID").(int)

	result := database.Database.Db.Model(&training.Certification{}).
		Where("id = ? AND is_deleted = ?", certID, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete certification!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certification not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certification deleted successfully.", nil)
}
