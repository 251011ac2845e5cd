package feedbackController

import (
	"math"
	"parkguide/database"
	"parkguide/middleware"
	"parkguide/models"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GuideRatingSummary holds per-axis averages across all feedback for a guide.
type GuideRatingSummary struct {
	GuideID            uint    `json:"guideId"`
	TotalFeedback      int64   `json:"totalFeedback"`
	LanguageRating     float64 `json:"languageRating"`
	KnowledgeRating    float64 `json:"knowledgeRating"`
	OrganizationRating float64 `json:"organizationRating"`
	EngagementRating   float64 `json:"engagementRating"`
	SafetyRating       float64 `json:"safetyRating"`
	OverallRating      float64 `json:"overallRating"`
}

// SubmitFeedback records visitor feedback for a guide. Open to the public;
// no authentication required.
func SubmitFeedback(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedFeedback").(*struct {
		VisitorID          uint   `json:"visitorId"`
		GuideID            uint   `json:"guideId"`
		LanguageRating     int    `json:"languageRating"`
		KnowledgeRating    int    `json:"knowledgeRating"`
		OrganizationRating int    `json:"organizationRating"`
		EngagementRating   int    `json:"engagementRating"`
		SafetyRating       int    `json:"safetyRating"`
		Comment            string `json:"comment"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var guide models.ParkGuide
	if err := db.Where("id = ? AND is_deleted = ?", reqData.GuideID, false).First(&guide).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Park guide not found!", nil)
	}

	feedback := models.VisitorFeedback{
		VisitorID:          reqData.VisitorID,
		GuideID:            reqData.GuideID,
		LanguageRating:     reqData.LanguageRating,
		KnowledgeRating:    reqData.KnowledgeRating,
		OrganizationRating: reqData.OrganizationRating,
		EngagementRating:   reqData.EngagementRating,
		SafetyRating:       reqData.SafetyRating,
		Comment:            reqData.Comment,
		SubmittedAt:        time.Now(),
	}
	if err := db.Create(&feedback).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit feedback!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Feedback submitted successfully. Thank you!", feedback)
}

// FeedbackList lists all feedback entries (admin).
func FeedbackList(c *fiber.Ctx) error {
	var feedback []models.VisitorFeedback
	if err := database.Database.Db.
		Where("is_deleted = ?", false).
		Order("submitted_at desc").
		Find(&feedback).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch feedback!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Feedback list fetched successfully.", fiber.Map{
		"feedback": feedback,
		"total":    len(feedback),
	})
}

// GetFeedback fetches a single feedback entry.
func GetFeedback(c *fiber.Ctx) error {
	feedbackID := c.Locals("feedbackID").(int)

	var feedback models.VisitorFeedback
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", feedbackID, false).First(&feedback).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Feedback not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Feedback fetched successfully.", feedback)
}

// UpdateFeedback edits a feedback entry (admin moderation).
func UpdateFeedback(c *fiber.Ctx) error {
	feedbackID := c.Locals("feedbackID").(int)

	reqData, ok := c.Locals("validatedFeedbackUpdate").(*struct {
		VisitorID          uint   `json:"visitorId"`
		GuideID            uint   `json:"guideId"`
		LanguageRating     int    `json:"languageRating"`
		KnowledgeRating    int    `json:"knowledgeRating"`
		OrganizationRating int    `json:"organizationRating"`
		EngagementRating   int    `json:"engagementRating"`
		SafetyRating       int    `json:"safetyRating"`
		Comment            string `json:"comment"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var feedback models.VisitorFeedback
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", feedbackID, false).First(&feedback).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Feedback not found!", nil)
	}

	var guide models.ParkGuide
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.GuideID, false).First(&guide).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Park guide not found!", nil)
	}

	feedback.VisitorID = reqData.VisitorID
	feedback.GuideID = reqData.GuideID
	feedback.LanguageRating = reqData.LanguageRating
	feedback.KnowledgeRating = reqData.KnowledgeRating
	feedback.OrganizationRating = reqData.OrganizationRating
	feedback.EngagementRating = reqData.EngagementRating
	feedback.SafetyRating = reqData.SafetyRating
	feedback.Comment = reqData.Comment
	if err := database.Database.Db.Save(&feedback).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update feedback!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Feedback updated successfully.", feedback)
}

// DeleteFeedback soft deletes a feedback entry.
func DeleteFeedback(c *fiber.Ctx) error {
	feedbackID := c.Locals("feedbackID").(int)

	result := database.Database.Db.Model(&models.VisitorFeedback{}).
		Where("id = ? AND is_deleted = ?", feedbackID, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete feedback!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Feedback not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Feedback deleted successfully.", nil)
}

// ComputeGuideRatings averages each rating axis across a guide's feedback.
// A guide with no feedback gets zeroed averages, not an error.
func ComputeGuideRatings(db *gorm.DB, guideID uint) (*GuideRatingSummary, error) {
	var feedback []models.VisitorFeedback
	if err := db.Where("guide_id = ? AND is_deleted = ?", guideID, false).Find(&feedback).Error; err != nil {
		return nil, err
	}

	summary := &GuideRatingSummary{
		GuideID:       guideID,
		TotalFeedback: int64(len(feedback)),
	}
	if len(feedback) == 0 {
		return summary, nil
	}

	for _, f := range feedback {
		summary.LanguageRating += float64(f.LanguageRating)
		summary.KnowledgeRating += float64(f.KnowledgeRating)
		summary.OrganizationRating += float64(f.OrganizationRating)
		summary.EngagementRating += float64(f.EngagementRating)
		summary.SafetyRating += float64(f.SafetyRating)
	}

	n := float64(len(feedback))
	summary.LanguageRating = round1(summary.LanguageRating / n)
	summary.KnowledgeRating = round1(summary.KnowledgeRating / n)
	summary.OrganizationRating = round1(summary.OrganizationRating / n)
	summary.EngagementRating = round1(summary.EngagementRating / n)
	summary.SafetyRating = round1(summary.SafetyRating / n)
	summary.OverallRating = round1((summary.LanguageRating + summary.KnowledgeRating +
		summary.OrganizationRating + summary.EngagementRating + summary.SafetyRating) / 5)

	return summary, nil
}

// round1 rounds to one decimal place for display.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// GuideRatings returns rating averages for a guide by ID.
func GuideRatings(c *fiber.Ctx) error {
	guideID := c.Locals("guideID").(int)

	db := database.Database.Db

	var guide models.ParkGuide
	if err := db.Where("id = ? AND is_deleted = ?", guideID, false).First(&guide).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Park guide not found!", nil)
	}

	summary, err := ComputeGuideRatings(db, guide.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute ratings!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Guide ratings fetched successfully.", summary)
}

// GuideRatingsSelf returns rating averages for the logged-in guide.
func GuideRatingsSelf(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var guide models.ParkGuide
	if err := db.Where("user_id = ? AND is_deleted = ?", userID, false).First(&guide).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Park guide profile not found!", nil)
	}

	summary, err := ComputeGuideRatings(db, guide.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute ratings!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Your ratings fetched successfully.", summary)
}

// GuideComments lists the written comments left for a guide, newest first.
func GuideComments(c *fiber.Ctx) error {
	guideID := c.Locals("guideID").(int)

	db := database.Database.Db

	var guide models.ParkGuide
	if err := db.Where("id = ? AND is_deleted = ?", guideID, false).First(&guide).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Park guide not found!", nil)
	}

	var feedback []models.VisitorFeedback
	if err := db.
		Where("guide_id = ? AND comment <> '' AND is_deleted = ?", guide.ID, false).
		Order("submitted_at desc").
		Find(&feedback).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch comments!", nil)
	}

	type commentEntry struct {
		FeedbackID  uint      `json:"feedbackId"`
		Comment     string    `json:"comment"`
		SubmittedAt time.Time `json:"submittedAt"`
	}

	comments := make([]commentEntry, 0, len(feedback))
	for _, f := range feedback {
		comments = append(comments, commentEntry{
			FeedbackID:  f.ID,
			Comment:     f.Comment,
			SubmittedAt: f.SubmittedAt,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Guide comments fetched successfully.", fiber.Map{
		"comments": comments,
		"total":    len(comments),
	})
}
