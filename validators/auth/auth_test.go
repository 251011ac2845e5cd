package authValidator

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signupApp() *fiber.App {
	app := fiber.New()
	app.Post("/signup", Signup(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func postSignup(t *testing.T, app *fiber.App, payload fiber.Map) int {
	t.Helper()
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", "/signup", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestSignupValidator(t *testing.T) {
	app := signupApp()

	valid := fiber.Map{
		"firstName": "Aisha",
		"lastName":  "Rahman",
		"email":     "aisha@example.com",
		"password":  "supersecret",
		"role":      "park_guide",
	}
	assert.Equal(t, fiber.StatusOK, postSignup(t, app, valid))

	cases := []struct {
		name  string
		mutate func(m fiber.Map)
	}{
		{"short first name", func(m fiber.Map) { m["firstName"] = "A" }},
		{"missing email", func(m fiber.Map) { m["email"] = "" }},
		{"malformed email", func(m fiber.Map) { m["email"] = "not-an-email" }},
		{"short password", func(m fiber.Map) { m["password"] = "short" }},
		{"admin role not allowed", func(m fiber.Map) { m["role"] = "admin" }},
		{"unknown role", func(m fiber.Map) { m["role"] = "ranger" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := fiber.Map{}
			for k, v := range valid {
				payload[k] = v
			}
			tc.mutate(payload)
			assert.Equal(t, fiber.StatusUnprocessableEntity, postSignup(t, app, payload))
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, isValidEmail("user@example.com"))
	assert.True(t, isValidEmail("first.last+tag@sub.domain.co"))

	assert.False(t, isValidEmail("user@"))
	assert.False(t, isValidEmail("@example.com"))
	assert.False(t, isValidEmail("user@example"))
	assert.False(t, isValidEmail("user example.com"))
}
