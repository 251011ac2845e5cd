package parkValidator

import (
	"fmt"
	"parkguide/middleware"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func ParkBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		type parkRequest struct {
			ParkName    string `json:"parkName"`
			Location    string `json:"location"`
			Description string `json:"description"`
		}

		var reqData parkRequest
		if err := c.BodyParser(&reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request format!", nil)
		}

		errors := make(map[string]string)
		if reqData.ParkName == "" {
			errors["parkName"] = "Park name is required!"
		}
		if reqData.Location == "" {
			errors["location"] = "Location is required!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPark", &struct {
			ParkName    string `json:"parkName"`
			Location    string `json:"location"`
			Description string `json:"description"`
		}{
			ParkName:    reqData.ParkName,
			Location:    reqData.Location,
			Description: reqData.Description,
		})
		return c.Next()
	}
}

func ParkID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id <= 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"id": fmt.Sprintf("Invalid park ID: %s", c.Params("id")),
			})
		}
		c.Locals("parkID", id)
		return c.Next()
	}
}
