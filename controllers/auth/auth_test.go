package authController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"parkguide/config"
	"parkguide/database"
	"parkguide/models"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	config.LoadConfig()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}
	return db
}

func loginApp() *fiber.App {
	app := fiber.New()
	app.Post("/login", func(c *fiber.Ctx) error {
		var raw struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.BodyParser(&raw); err != nil {
			return err
		}
		c.Locals("validatedLogin", &struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}{Email: raw.Email, Password: raw.Password})
		return Login(c)
	})
	return app
}

func createUser(t *testing.T, db *gorm.DB, email, password, status string) models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Password:  string(hashed),
		Role:      "park_guide",
		Status:    status,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func doLogin(t *testing.T, app *fiber.App, email, password string) (int, map[string]interface{}) {
	t.Helper()

	payload, _ := json.Marshal(fiber.Map{"email": email, "password": password})
	req := httptest.NewRequest("POST", "/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestLoginSuccess(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "guide@example.com", "secret123", "approved")

	app := loginApp()
	status, body := doLogin(t, app, user.Email, "secret123")

	assert.Equal(t, fiber.StatusOK, status)
	data := body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])

	// Login tracking row is recorded
	var tracking int64
	db.Model(&models.LoginTracking{}).Where("user_id = ?", user.ID).Count(&tracking)
	assert.Equal(t, int64(1), tracking)
}

func TestLoginLockoutAfterThreeFailures(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "locked@example.com", "secret123", "approved")

	app := loginApp()

	for i := 0; i < 3; i++ {
		status, body := doLogin(t, app, user.Email, "wrong-password")
		assert.Equal(t, fiber.StatusUnauthorized, status)

		data := body["data"].(map[string]interface{})
		assert.Equal(t, float64(2-i), data["remainingAttempts"])
	}

	// Fourth attempt hits the lock, even with the right password
	status, body := doLogin(t, app, user.Email, "secret123")
	assert.Equal(t, fiber.StatusTooManyRequests, status)

	data := body["data"].(map[string]interface{})
	lockedUntil, err := time.Parse(time.RFC3339, data["lockedUntil"].(string))
	require.NoError(t, err)
	assert.True(t, lockedUntil.After(time.Now()))
}

func TestLoginLockExpiryResets(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "expired-lock@example.com", "secret123", "approved")

	// Simulate a lock that has already run out
	past := time.Now().Add(-time.Minute)
	user.FailedLoginAttempts = 3
	user.LockedUntil = &past
	require.NoError(t, db.Save(&user).Error)

	app := loginApp()
	status, _ := doLogin(t, app, user.Email, "secret123")
	assert.Equal(t, fiber.StatusOK, status)

	var updated models.User
	require.NoError(t, db.Where("id = ?", user.ID).First(&updated).Error)
	assert.Equal(t, 0, updated.FailedLoginAttempts)
	assert.Nil(t, updated.LockedUntil)
}

func TestLoginBlocksUnapprovedAccounts(t *testing.T) {
	db := setupTestDB(t)
	pending := createUser(t, db, "pending@example.com", "secret123", "pending")
	rejected := createUser(t, db, "rejected@example.com", "secret123", "rejected")

	app := loginApp()

	status, _ := doLogin(t, app, pending.Email, "secret123")
	assert.Equal(t, fiber.StatusForbidden, status)

	status, _ = doLogin(t, app, rejected.Email, "secret123")
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestLoginUnknownEmail(t *testing.T) {
	setupTestDB(t)

	app := loginApp()
	status, _ := doLogin(t, app, "nobody@example.com", "whatever")
	assert.Equal(t, fiber.StatusUnauthorized, status)
}
