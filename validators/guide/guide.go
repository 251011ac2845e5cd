package guideValidator

import (
	"parkguide/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GuideID validates the :id path parameter.
func GuideID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Guide ID is required!", nil)
		}

		guideID, err := strconv.Atoi(idStr)
		if err != nil || guideID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Guide ID!", nil)
		}

		c.Locals("guideID", guideID)
		return c.Next()
	}
}

// LicenseRequest validates the license approval request body.
func LicenseRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			RequestedParkID uint `json:"requestedParkId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.RequestedParkID == 0 {
			errors["requestedParkId"] = "Requested park is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLicenseRequest", reqData)
		return c.Next()
	}
}
