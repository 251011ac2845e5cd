package trainingController

import (
	"fmt"
	"net/http/httptest"
	"parkguide/models"
	"parkguide/models/training"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enrollApp(userID uint, moduleID uint) *fiber.App {
	app := fiber.New()
	app.Post("/modules/:id/enroll", func(c *fiber.Ctx) error {
		c.Locals("userId", userID)
		c.Locals("moduleID", int(moduleID))
		return EnrollFreeModule(c)
	})
	return app
}

func TestEnrollFreeModule(t *testing.T) {
	db := setupTestDB(t)

	user := models.User{FirstName: "Hana", Email: "hana@example.com", Role: "park_guide", Status: "approved"}
	require.NoError(t, db.Create(&user).Error)

	guide := models.ParkGuide{UserID: user.ID, CertificationStatus: models.CertStatusNotApplicable}
	require.NoError(t, db.Create(&guide).Error)

	module := training.Module{ModuleName: "Park Orientation", Price: 0, IsCompulsory: true}
	require.NoError(t, db.Create(&module).Error)

	app := enrollApp(user.ID, module.ID)

	url := fmt.Sprintf("/modules/%d/enroll", module.ID)
	resp, err := app.Test(httptest.NewRequest("POST", url, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// A zero-amount approved payment is recorded
	var payment models.PaymentTransaction
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&payment).Error)
	assert.Equal(t, models.PaymentStatusApproved, payment.PaymentStatus)
	assert.Equal(t, float64(0), payment.AmountPaid)

	// The purchase is active immediately
	var purchase training.ModulePurchase
	require.NoError(t, db.Where("user_id = ? AND module_id = ?", user.ID, module.ID).First(&purchase).Error)
	assert.True(t, purchase.IsActive)
	assert.Equal(t, "active", purchase.Status)

	// Progress is seeded for the guide
	var progress training.GuideTrainingProgress
	require.NoError(t, db.Where("guide_id = ? AND module_id = ?", guide.ID, module.ID).First(&progress).Error)
	assert.Equal(t, training.ProgressInProgress, progress.Status)

	// Re-enrolling is idempotent
	resp, err = app.Test(httptest.NewRequest("POST", url, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var purchases int64
	db.Model(&training.ModulePurchase{}).Where("user_id = ? AND module_id = ?", user.ID, module.ID).Count(&purchases)
	assert.Equal(t, int64(1), purchases)
}

func TestEnrollFreeModuleRejectsPremium(t *testing.T) {
	db := setupTestDB(t)

	module := training.Module{ModuleName: "Advanced Tracking", Price: 99.00}
	require.NoError(t, db.Create(&module).Error)

	app := enrollApp(5, module.ID)

	resp, err := app.Test(httptest.NewRequest("POST", fmt.Sprintf("/modules/%d/enroll", module.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var purchases int64
	db.Model(&training.ModulePurchase{}).Where("module_id = ?", module.ID).Count(&purchases)
	assert.Equal(t, int64(0), purchases)
}
