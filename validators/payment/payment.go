package paymentValidator

import (
	"fmt"
	"parkguide/middleware"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ValidateCardNumber checks for a 16 digit card number, ignoring spaces.
func ValidateCardNumber(cardNumber string) bool {
	digits := strings.ReplaceAll(cardNumber, " ", "")
	if len(digits) != 16 {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ValidateCardExpiry checks an MM/YY expiry that is not in the past.
func ValidateCardExpiry(expiry string, now time.Time) bool {
	parts := strings.Split(expiry, "/")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return false
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return false
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}
	year += 2000

	if year < now.Year() {
		return false
	}
	if year == now.Year() && month < int(now.Month()) {
		return false
	}
	return true
}

// ValidateCardCVV checks for a 3 or 4 digit CVV.
func ValidateCardCVV(cvv string) bool {
	if len(cvv) != 3 && len(cvv) != 4 {
		return false
	}
	for _, r := range cvv {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Payment validates a module purchase request. Card details are checked but
// never stored.
func Payment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		type paymentRequest struct {
			ModuleID      uint   `json:"moduleId" form:"moduleId"`
			PaymentMethod string `json:"paymentMethod" form:"paymentMethod"`
			CardNumber    string `json:"cardNumber" form:"cardNumber"`
			CardExpiry    string `json:"cardExpiry" form:"cardExpiry"`
			CardCVV       string `json:"cardCVV" form:"cardCVV"`
		}

		var reqData paymentRequest
		if err := c.BodyParser(&reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request format!", nil)
		}

		errors := make(map[string]string)

		if reqData.ModuleID == 0 {
			errors["moduleId"] = "Module ID is required!"
		}
		if reqData.PaymentMethod == "" {
			errors["paymentMethod"] = "Payment method is required!"
		}

		if reqData.PaymentMethod == "card" {
			if !ValidateCardNumber(reqData.CardNumber) {
				errors["cardNumber"] = "Card number must be 16 digits!"
			}
			if !ValidateCardExpiry(reqData.CardExpiry, time.Now()) {
				errors["cardExpiry"] = "Card expiry must be a valid MM/YY date that is not in the past!"
			}
			if !ValidateCardCVV(reqData.CardCVV) {
				errors["cardCVV"] = "CVV must be 3 or 4 digits!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPayment", &struct {
			ModuleID      uint   `json:"moduleId"`
			PaymentMethod string `json:"paymentMethod"`
		}{
			ModuleID:      reqData.ModuleID,
			PaymentMethod: reqData.PaymentMethod,
		})
		return c.Next()
	}
}

// PaymentStatus validates an admin status update.
func PaymentStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		type statusRequest struct {
			PaymentStatus string `json:"paymentStatus"`
		}

		var reqData statusRequest
		if err := c.BodyParser(&reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request format!", nil)
		}

		if reqData.PaymentStatus != "approved" && reqData.PaymentStatus != "rejected" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"paymentStatus": "Payment status must be either 'approved' or 'rejected'!",
			})
		}

		c.Locals("validatedPaymentStatus", &struct {
			PaymentStatus string `json:"paymentStatus"`
		}{PaymentStatus: reqData.PaymentStatus})
		return c.Next()
	}
}

// PaymentID validates the :id path parameter.
func PaymentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id <= 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"id": fmt.Sprintf("Invalid payment transaction ID: %s", c.Params("id")),
			})
		}
		c.Locals("paymentID", id)
		return c.Next()
	}
}
