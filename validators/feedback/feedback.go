package feedbackValidator

import (
	"fmt"
	"parkguide/middleware"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func ratingInRange(v int) bool {
	return v >= 1 && v <= 5
}

// Feedback validates a visitor feedback submission. All five rating axes
// are required and must be between 1 and 5.
func Feedback() fiber.Handler {
	return func(c *fiber.Ctx) error {
		type feedbackRequest struct {
			VisitorID          uint   `json:"visitorId"`
			GuideID            uint   `json:"guideId"`
			LanguageRating     int    `json:"languageRating"`
			KnowledgeRating    int    `json:"knowledgeRating"`
			OrganizationRating int    `json:"organizationRating"`
			EngagementRating   int    `json:"engagementRating"`
			SafetyRating       int    `json:"safetyRating"`
			Comment            string `json:"comment"`
		}

		var reqData feedbackRequest
		if err := c.BodyParser(&reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request format!", nil)
		}

		errors := make(map[string]string)
		if reqData.GuideID == 0 {
			errors["guideId"] = "Guide ID is required!"
		}

		ratings := map[string]int{
			"languageRating":     reqData.LanguageRating,
			"knowledgeRating":    reqData.KnowledgeRating,
			"organizationRating": reqData.OrganizationRating,
			"engagementRating":   reqData.EngagementRating,
			"safetyRating":       reqData.SafetyRating,
		}
		for field, value := range ratings {
			if !ratingInRange(value) {
				errors[field] = "Rating must be between 1 and 5!"
			}
		}

		if len(reqData.Comment) > 2000 {
			errors["comment"] = "Comment must be at most 2000 characters!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedFeedback", &struct {
			VisitorID          uint   `json:"visitorId"`
			GuideID            uint   `json:"guideId"`
			LanguageRating     int    `json:"languageRating"`
			KnowledgeRating    int    `json:"knowledgeRating"`
			OrganizationRating int    `json:"organizationRating"`
			EngagementRating   int    `json:"engagementRating"`
			SafetyRating       int    `json:"safetyRating"`
			Comment            string `json:"comment"`
		}{
			VisitorID:          reqData.VisitorID,
			GuideID:            reqData.GuideID,
			LanguageRating:     reqData.LanguageRating,
			KnowledgeRating:    reqData.KnowledgeRating,
			OrganizationRating: reqData.OrganizationRating,
			EngagementRating:   reqData.EngagementRating,
			SafetyRating:       reqData.SafetyRating,
			Comment:            reqData.Comment,
		})
		return c.Next()
	}
}

// FeedbackUpdate validates a moderation edit. The full row is replaced,
// so the same rules apply as on submission.
func FeedbackUpdate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		type updateRequest struct {
			VisitorID          uint   `json:"visitorId"`
			GuideID            uint   `json:"guideId"`
			LanguageRating     int    `json:"languageRating"`
			KnowledgeRating    int    `json:"knowledgeRating"`
			OrganizationRating int    `json:"organizationRating"`
			EngagementRating   int    `json:"engagementRating"`
			SafetyRating       int    `json:"safetyRating"`
			Comment            string `json:"comment"`
		}

		var reqData updateRequest
		if err := c.BodyParser(&reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request format!", nil)
		}

		errors := make(map[string]string)
		if reqData.GuideID == 0 {
			errors["guideId"] = "Guide ID is required!"
		}

		ratings := map[string]int{
			"languageRating":     reqData.LanguageRating,
			"knowledgeRating":    reqData.KnowledgeRating,
			"organizationRating": reqData.OrganizationRating,
			"engagementRating":   reqData.EngagementRating,
			"safetyRating":       reqData.SafetyRating,
		}
		for field, value := range ratings {
			if !ratingInRange(value) {
				errors[field] = "Rating must be between 1 and 5!"
			}
		}

		if len(reqData.Comment) > 2000 {
			errors["comment"] = "Comment must be at most 2000 characters!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedFeedbackUpdate", &struct {
			VisitorID          uint   `json:"visitorId"`
			GuideID            uint   `json:"guideId"`
			LanguageRating     int    `json:"languageRating"`
			KnowledgeRating    int    `json:"knowledgeRating"`
			OrganizationRating int    `json:"organizationRating"`
			EngagementRating   int    `json:"engagementRating"`
			SafetyRating       int    `json:"safetyRating"`
			Comment            string `json:"comment"`
		}{
			VisitorID:          reqData.VisitorID,
			GuideID:            reqData.GuideID,
			LanguageRating:     reqData.LanguageRating,
			KnowledgeRating:    reqData.KnowledgeRating,
			OrganizationRating: reqData.OrganizationRating,
			EngagementRating:   reqData.EngagementRating,
			SafetyRating:       reqData.SafetyRating,
			Comment:            reqData.Comment,
		})
		return c.Next()
	}
}

// FeedbackID validates the :id path parameter.
func FeedbackID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id <= 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"id": fmt.Sprintf("Invalid feedback ID: %s", c.Params("id")),
			})
		}
		c.Locals("feedbackID", id)
		return c.Next()
	}
}
