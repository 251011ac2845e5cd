package adminValidator

import (
	"fmt"
	"parkguide/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func isValidEmail(email string) bool {
	at := strings.Index(email, "@")
	dot := strings.LastIndex(email, ".")
	return at > 0 && dot > at+1 && dot < len(email)-1
}

// UserList validates pagination and the optional status filter.
func UserList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		type listRequest struct {
			Page   *int   `json:"page"`
			Limit  *int   `json:"limit"`
			Status string `json:"status"`
		}

		reqData := listRequest{}
		reqData.Status = c.Query("status")

		page := c.QueryInt("page", 1)
		limit := c.QueryInt("limit", 10)

		errors := make(map[string]string)
		if page <= 0 {
			errors["page"] = "Page must be a positive number!"
		}
		if limit <= 0 || limit > 100 {
			errors["limit"] = "Limit must be between 1 and 100!"
		}
		if reqData.Status != "" && reqData.Status != "pending" && reqData.Status != "approved" && reqData.Status != "rejected" {
			errors["status"] = "Status must be one of: pending, approved, rejected!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		reqData.Page = &page
		reqData.Limit = &limit

		c.Locals("validatedUserList", &struct {
			Page   *int   `json:"page"`
			Limit  *int   `json:"limit"`
			Status string `json:"status"`
		}{
			Page:   reqData.Page,
			Limit:  reqData.Limit,
			Status: reqData.Status,
		})
		return c.Next()
	}
}

// CreateUser validates an admin-panel account creation.
func CreateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		type createRequest struct {
			FirstName string `json:"firstName"`
			LastName  string `json:"lastName"`
			Email     string `json:"email"`
			Password  string `json:"password"`
			Role      string `json:"role"`
		}

		var reqData createRequest
		if err := c.BodyParser(&reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request format!", nil)
		}

		errors := make(map[string]string)
		if reqData.FirstName == "" {
			errors["firstName"] = "First name is required!"
		}
		if !isValidEmail(reqData.Email) {
			errors["email"] = "A valid email address is required!"
		}
		if len(reqData.Password) < 8 {
			errors["password"] = "Password must be at least 8 characters!"
		}
		if reqData.Role != "admin" && reqData.Role != "park_guide" && reqData.Role != "visitor" {
			errors["role"] = "Role must be one of: admin, park_guide, visitor!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateUser", &struct {
			FirstName string `json:"firstName"`
			LastName  string `json:"lastName"`
			Email     string `json:"email"`
			Password  string `json:"password"`
			Role      string `json:"role"`
		}{
			FirstName: reqData.FirstName,
			LastName:  reqData.LastName,
			Email:     reqData.Email,
			Password:  reqData.Password,
			Role:      reqData.Role,
		})
		return c.Next()
	}
}

// UserID validates the :id path parameter for user management routes.
func UserID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id <= 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"id": fmt.Sprintf("Invalid user ID: %s", c.Params("id")),
			})
		}
		c.Locals("targetUserID", id)
		return c.Next()
	}
}
