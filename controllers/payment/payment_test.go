package paymentController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"parkguide/database"
	"parkguide/models"
	"parkguide/models/training"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}
	return db
}

func statusUpdateApp(paymentID uint) *fiber.App {
	app := fiber.New()
	app.Put("/payments/:id", func(c *fiber.Ctx) error {
		c.Locals("paymentID", int(paymentID))

		var raw struct {
			PaymentStatus string `json:"paymentStatus"`
		}
		if err := c.BodyParser(&raw); err != nil {
			return err
		}
		c.Locals("validatedPaymentStatus", &struct {
			PaymentStatus string `json:"paymentStatus"`
		}{PaymentStatus: raw.PaymentStatus})
		return UpdatePaymentStatus(c)
	})
	return app
}

func pendingPurchaseFixture(t *testing.T, db *gorm.DB) (models.User, models.ParkGuide, training.Module, models.PaymentTransaction) {
	t.Helper()

	user := models.User{FirstName: "Ravi", Email: "ravi@example.com", Role: "park_guide", Status: "approved"}
	require.NoError(t, db.Create(&user).Error)

	guide := models.ParkGuide{UserID: user.ID, CertificationStatus: models.CertStatusNotApplicable}
	require.NoError(t, db.Create(&guide).Error)

	module := training.Module{ModuleName: "Cave Exploration", Price: 59.90}
	require.NoError(t, db.Create(&module).Error)

	payment := models.PaymentTransaction{
		UserID:          user.ID,
		ModuleID:        &module.ID,
		AmountPaid:      module.Price,
		PaymentPurpose:  "Module Purchase: Cave Exploration",
		PaymentMethod:   "card",
		PaymentStatus:   models.PaymentStatusPending,
		TransactionDate: time.Now(),
	}
	require.NoError(t, db.Create(&payment).Error)

	require.NoError(t, db.Create(&training.ModulePurchase{
		UserID:    user.ID,
		ModuleID:  module.ID,
		PaymentID: payment.ID,
		Status:    "pending",
		IsActive:  false,
	}).Error)

	return user, guide, module, payment
}

func putStatus(t *testing.T, app *fiber.App, paymentID uint, status string) int {
	t.Helper()
	payload, _ := json.Marshal(fiber.Map{"paymentStatus": status})
	req := httptest.NewRequest("PUT", fmt.Sprintf("/payments/%d", paymentID), bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestApprovePaymentActivatesPurchase(t *testing.T) {
	db := setupTestDB(t)
	user, guide, module, payment := pendingPurchaseFixture(t, db)

	app := statusUpdateApp(payment.ID)
	assert.Equal(t, fiber.StatusOK, putStatus(t, app, payment.ID, "approved"))

	var updated models.PaymentTransaction
	require.NoError(t, db.Where("id = ?", payment.ID).First(&updated).Error)
	assert.Equal(t, models.PaymentStatusApproved, updated.PaymentStatus)

	var purchase training.ModulePurchase
	require.NoError(t, db.Where("user_id = ? AND module_id = ?", user.ID, module.ID).First(&purchase).Error)
	assert.True(t, purchase.IsActive)
	assert.Equal(t, "active", purchase.Status)

	var progress training.GuideTrainingProgress
	require.NoError(t, db.Where("guide_id = ? AND module_id = ?", guide.ID, module.ID).First(&progress).Error)
	assert.Equal(t, training.ProgressInProgress, progress.Status)
}

func TestApprovePaymentTwiceBothSucceed(t *testing.T) {
	db := setupTestDB(t)
	_, guide, module, payment := pendingPurchaseFixture(t, db)

	app := statusUpdateApp(payment.ID)
	assert.Equal(t, fiber.StatusOK, putStatus(t, app, payment.ID, "approved"))
	assert.Equal(t, fiber.StatusOK, putStatus(t, app, payment.ID, "approved"))

	// Progress is still seeded exactly once
	var count int64
	db.Model(&training.GuideTrainingProgress{}).Where("guide_id = ? AND module_id = ?", guide.ID, module.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRejectPaymentLeavesPurchaseInactive(t *testing.T) {
	db := setupTestDB(t)
	user, _, module, payment := pendingPurchaseFixture(t, db)

	app := statusUpdateApp(payment.ID)
	assert.Equal(t, fiber.StatusOK, putStatus(t, app, payment.ID, "rejected"))

	var purchase training.ModulePurchase
	require.NoError(t, db.Where("user_id = ? AND module_id = ?", user.ID, module.ID).First(&purchase).Error)
	assert.False(t, purchase.IsActive)
	assert.Equal(t, "pending", purchase.Status)
}

func TestUnownedCompulsoryCount(t *testing.T) {
	db := setupTestDB(t)

	m1 := training.Module{ModuleName: "First Aid", IsCompulsory: true}
	m2 := training.Module{ModuleName: "Navigation", IsCompulsory: true}
	optional := training.Module{ModuleName: "Photography"}
	require.NoError(t, db.Create(&m1).Error)
	require.NoError(t, db.Create(&m2).Error)
	require.NoError(t, db.Create(&optional).Error)

	userID := uint(11)

	count, err := unownedCompulsoryCount(db, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	require.NoError(t, db.Create(&training.ModulePurchase{
		UserID: userID, ModuleID: m1.ID, Status: "active", IsActive: true,
	}).Error)

	count, err = unownedCompulsoryCount(db, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, db.Create(&training.ModulePurchase{
		UserID: userID, ModuleID: m2.ID, Status: "active", IsActive: true,
	}).Error)

	count, err = unownedCompulsoryCount(db, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
