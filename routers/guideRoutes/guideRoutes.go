package guideRoutes

import (
	feedbackController "parkguide/controllers/feedback"
	guideController "parkguide/controllers/guide"
	"parkguide/middleware"
	guideValidator "parkguide/validators/guide"

	"github.com/gofiber/fiber/v2"
)

func SetupGuideRoutes(app *fiber.App) {
	guides := app.Group("/api/v1/guides", middleware.JWTMiddleware)

	// Self-service endpoints for logged-in guides
	guides.Get("/me", middleware.RequireRole("park_guide"), guideController.GetGuideSelf)
	guides.Get("/me/ratings", middleware.RequireRole("park_guide"), feedbackController.GuideRatingsSelf)
	guides.Post("/me/license-request", middleware.RequireRole("park_guide"), guideValidator.LicenseRequest(), guideController.RequestLicenseApproval)

	// Admin management
	guides.Get("/", middleware.RequireRole("admin"), guideController.GuideList)
	guides.Get("/pending-certifications", middleware.RequireRole("admin"), guideController.PendingCertifications)
	guides.Get("/:id", middleware.RequireRole("admin"), guideValidator.GuideID(), guideController.GetGuide)
	guides.Put("/:id", middleware.RequireRole("admin"), guideValidator.GuideID(), guideController.UpdateGuide)
	guides.Delete("/:id", middleware.RequireRole("admin"), guideValidator.GuideID(), guideController.DeleteGuide)
	guides.Put("/:id/license/approve", middleware.RequireRole("admin"), guideValidator.GuideID(), guideController.ApproveLicense)
	guides.Put("/:id/license/reject", middleware.RequireRole("admin"), guideValidator.GuideID(), guideController.RejectLicense)

	// Ratings visible to any authenticated user
	guides.Get("/:id/ratings", guideValidator.GuideID(), feedbackController.GuideRatings)
	guides.Get("/:id/comments", guideValidator.GuideID(), feedbackController.GuideComments)
}
