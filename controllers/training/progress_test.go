package trainingController

import (
	"bytes"
	"fmt"
	"net/http/httptest"
	"parkguide/models"
	"parkguide/models/training"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func progressApp(userID uint, role string) *fiber.App {
	app := fiber.New()
	app.Put("/progress/:id", func(c *fiber.Ctx) error {
		c.Locals("userId", userID)
		c.Locals("userRole", role)
		c.Locals("progressID", atoiParam(c))
		c.Locals("validatedProgress", &struct {
			CompletionPercentage float64 `json:"completionPercentage"`
		}{CompletionPercentage: 100})
		return UpdateProgress(c)
	})
	return app
}

func atoiParam(c *fiber.Ctx) int {
	id, _ := c.ParamsInt("id")
	return id
}

func putProgress(t *testing.T, app *fiber.App, progressID uint) int {
	t.Helper()
	req := httptest.NewRequest("PUT", fmt.Sprintf("/progress/%d", progressID), bytes.NewBufferString(`{"completionPercentage":100}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestUpdateProgressOwnRow(t *testing.T) {
	db := setupTestDB(t)

	user := models.User{FirstName: "Lena", Email: "lena@example.com", Role: "park_guide", Status: "approved"}
	require.NoError(t, db.Create(&user).Error)
	guide := models.ParkGuide{UserID: user.ID, CertificationStatus: models.CertStatusNotApplicable}
	require.NoError(t, db.Create(&guide).Error)

	row := training.GuideTrainingProgress{GuideID: guide.ID, ModuleID: 1, Status: training.ProgressInProgress, CompletionPercentage: 40}
	require.NoError(t, db.Create(&row).Error)

	app := progressApp(user.ID, "park_guide")
	assert.Equal(t, fiber.StatusOK, putProgress(t, app, row.ID))

	var updated training.GuideTrainingProgress
	require.NoError(t, db.First(&updated, row.ID).Error)
	assert.Equal(t, training.ProgressCompleted, updated.Status)
	assert.Equal(t, float64(100), updated.CompletionPercentage)
	assert.NotNil(t, updated.CompletionDate)
}

func TestUpdateProgressForeignRowForbidden(t *testing.T) {
	db := setupTestDB(t)

	owner := models.User{FirstName: "Owner", Email: "owner@example.com", Role: "park_guide", Status: "approved"}
	other := models.User{FirstName: "Other", Email: "other@example.com", Role: "park_guide", Status: "approved"}
	require.NoError(t, db.Create(&owner).Error)
	require.NoError(t, db.Create(&other).Error)

	ownerGuide := models.ParkGuide{UserID: owner.ID, CertificationStatus: models.CertStatusNotApplicable}
	otherGuide := models.ParkGuide{UserID: other.ID, CertificationStatus: models.CertStatusNotApplicable}
	require.NoError(t, db.Create(&ownerGuide).Error)
	require.NoError(t, db.Create(&otherGuide).Error)

	row := training.GuideTrainingProgress{GuideID: ownerGuide.ID, ModuleID: 1, Status: training.ProgressInProgress, CompletionPercentage: 40}
	require.NoError(t, db.Create(&row).Error)

	app := progressApp(other.ID, "park_guide")
	assert.Equal(t, fiber.StatusForbidden, putProgress(t, app, row.ID))

	// The row is untouched
	var unchanged training.GuideTrainingProgress
	require.NoError(t, db.First(&unchanged, row.ID).Error)
	assert.Equal(t, training.ProgressInProgress, unchanged.Status)
	assert.Equal(t, float64(40), unchanged.CompletionPercentage)
	assert.Nil(t, unchanged.CompletionDate)
}

func TestUpdateProgressAdminAnyRow(t *testing.T) {
	db := setupTestDB(t)

	user := models.User{FirstName: "Mara", Email: "mara@example.com", Role: "park_guide", Status: "approved"}
	require.NoError(t, db.Create(&user).Error)
	guide := models.ParkGuide{UserID: user.ID, CertificationStatus: models.CertStatusNotApplicable}
	require.NoError(t, db.Create(&guide).Error)

	row := training.GuideTrainingProgress{GuideID: guide.ID, ModuleID: 1, Status: training.ProgressInProgress, CompletionPercentage: 10}
	require.NoError(t, db.Create(&row).Error)

	admin := models.User{FirstName: "Admin", Email: "admin@example.com", Role: "admin", Status: "approved"}
	require.NoError(t, db.Create(&admin).Error)

	app := progressApp(admin.ID, "admin")
	assert.Equal(t, fiber.StatusOK, putProgress(t, app, row.ID))

	var updated training.GuideTrainingProgress
	require.NoError(t, db.First(&updated, row.ID).Error)
	assert.Equal(t, training.ProgressCompleted, updated.Status)
}
