package catalogValidator

import (
	"fmt"
	"parkguide/middleware"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func idParam(c *fiber.Ctx, label, localKey string) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"id": fmt.Sprintf("Invalid %s ID: %s", label, c.Params("id")),
		})
	}
	c.Locals(localKey, id)
	return c.Next()
}

func PlantID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return idParam(c, "plant", "plantID")
	}
}

func DocID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return idParam(c, "document", "docID")
	}
}

func PlantBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		type plantRequest struct {
			CommonName     string `json:"commonName" form:"commonName"`
			ScientificName string `json:"scientificName" form:"scientificName"`
			Description    string `json:"description" form:"description"`
			ParkID         *uint  `json:"parkId" form:"parkId"`
		}

		var reqData plantRequest
		if err := c.BodyParser(&reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request format!", nil)
		}

		if reqData.CommonName == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"commonName": "Common name is required!",
			})
		}

		c.Locals("validatedPlant", &struct {
			CommonName     string `json:"commonName"`
			ScientificName string `json:"scientificName"`
			Description    string `json:"description"`
			ParkID         *uint  `json:"parkId"`
		}{
			CommonName:     reqData.CommonName,
			ScientificName: reqData.ScientificName,
			Description:    reqData.Description,
			ParkID:         reqData.ParkID,
		})
		return c.Next()
	}
}

func PlantInfoBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		type infoRequest struct {
			Habitat      string `json:"habitat"`
			Uses         string `json:"uses"`
			Conservation string `json:"conservation"`
		}

		var reqData infoRequest
		if err := c.BodyParser(&reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request format!", nil)
		}

		c.Locals("validatedPlantInfo", &struct {
			Habitat      string `json:"habitat"`
			Uses         string `json:"uses"`
			Conservation string `json:"conservation"`
		}{
			Habitat:      reqData.Habitat,
			Uses:         reqData.Uses,
			Conservation: reqData.Conservation,
		})
		return c.Next()
	}
}

func InfoDocBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		type docRequest struct {
			Title    string `json:"title" form:"title"`
			Category string `json:"category" form:"category"`
			Content  string `json:"content" form:"content"`
		}

		var reqData docRequest
		if err := c.BodyParser(&reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request format!", nil)
		}

		if reqData.Title == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"title": "Title is required!",
			})
		}
		if reqData.Category == "" {
			reqData.Category = "GENERAL"
		}

		c.Locals("validatedInfoDoc", &struct {
			Title    string `json:"title"`
			Category string `json:"category"`
			Content  string `json:"content"`
		}{
			Title:    reqData.Title,
			Category: reqData.Category,
			Content:  reqData.Content,
		})
		return c.Next()
	}
}
