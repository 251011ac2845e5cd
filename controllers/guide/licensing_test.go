package guideController

import (
	"bytes"
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

func TestEligibleForLicense(t *testing.T) {
	cases := []struct {
		name     string
		status   string
		certs    int64
		eligible bool
	}{
		{"not applicable with two certs", "not applicable", 2, true},
		{"not applicable with three certs", "not applicable", 3, true},
		{"case insensitive status", "Not Applicable", 2, true},
		{"status with surrounding spaces", "  not applicable ", 2, true},
		{"only one cert", "not applicable", 1, false},
		{"no certs", "not applicable", 0, false},
		{"already pending", "pending", 5, false},
		{"already certified", "certified", 5, false},
		{"expired license", "expired", 5, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.eligible, EligibleForLicense(tc.status, tc.certs))
		})
	}
}

func TestCompulsoryCertCount(t *testing.T) {
	db := setupTestDB(t)

	guide := models.ParkGuide{UserID: 1, CertificationStatus: models.CertStatusNotApplicable}
	require.NoError(t, db.Create(&guide).Error)

	compulsory := training.Module{ModuleName: "Wildlife Safety", IsCompulsory: true}
	optional := training.Module{ModuleName: "Bird Photography", IsCompulsory: false}
	require.NoError(t, db.Create(&compulsory).Error)
	require.NoError(t, db.Create(&optional).Error)

	// One active compulsory cert, one optional cert, one expired compulsory cert
	require.NoError(t, db.Create(&training.Certification{
		GuideID: guide.ID, ModuleID: compulsory.ID, CertificateNumber: "SFC-TEST0001", Status: "active",
	}).Error)
	require.NoError(t, db.Create(&training.Certification{
		GuideID: guide.ID, ModuleID: optional.ID, CertificateNumber: "SFC-TEST0002", Status: "active",
	}).Error)
	require.NoError(t, db.Create(&training.Certification{
		GuideID: guide.ID, ModuleID: compulsory.ID, CertificateNumber: "SFC-TEST0003", Status: "expired",
	}).Error)

	count, err := CompulsoryCertCount(db, guide.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// A second active cert for the same module counts once
	require.NoError(t, db.Create(&training.Certification{
		GuideID: guide.ID, ModuleID: compulsory.ID, CertificateNumber: "SFC-TEST0004", Status: "active",
	}).Error)

	count, err = CompulsoryCertCount(db, guide.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func licenseRequestApp(userID uint, parkID uint) *fiber.App {
	app := fiber.New()
	app.Post("/license-request", func(c *fiber.Ctx) error {
		c.Locals("userId", userID)
		c.Locals("validatedLicenseRequest", &struct {
			RequestedParkID uint `json:"requestedParkId"`
		}{RequestedParkID: parkID})
		return RequestLicenseApproval(c)
	})
	return app
}

func TestRequestLicenseApproval(t *testing.T) {
	db := setupTestDB(t)

	user := models.User{FirstName: "Lena", Email: "lena@example.com", Role: "park_guide", Status: "approved"}
	require.NoError(t, db.Create(&user).Error)

	guide := models.ParkGuide{UserID: user.ID, CertificationStatus: models.CertStatusNotApplicable}
	require.NoError(t, db.Create(&guide).Error)

	park := models.Park{ParkName: "Bako National Park", Location: "Kuching"}
	require.NoError(t, db.Create(&park).Error)

	m1 := training.Module{ModuleName: "First Aid", IsCompulsory: true}
	m2 := training.Module{ModuleName: "Jungle Navigation", IsCompulsory: true}
	require.NoError(t, db.Create(&m1).Error)
	require.NoError(t, db.Create(&m2).Error)

	app := licenseRequestApp(user.ID, park.ID)

	// Not enough compulsory certifications yet
	req := httptest.NewRequest("POST", "/license-request", bytes.NewReader([]byte("{}")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	// Grant two compulsory certifications
	require.NoError(t, db.Create(&training.Certification{
		GuideID: guide.ID, ModuleID: m1.ID, CertificateNumber: "SFC-LIC00001", Status: "active",
	}).Error)
	require.NoError(t, db.Create(&training.Certification{
		GuideID: guide.ID, ModuleID: m2.ID, CertificateNumber: "SFC-LIC00002", Status: "active",
	}).Error)

	req = httptest.NewRequest("POST", "/license-request", bytes.NewReader([]byte("{}")))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated models.ParkGuide
	require.NoError(t, db.Where("id = ?", guide.ID).First(&updated).Error)
	assert.Equal(t, models.CertStatusPending, updated.CertificationStatus)
	require.NotNil(t, updated.RequestedParkID)
	assert.Equal(t, park.ID, *updated.RequestedParkID)

	// Resubmitting while pending conflicts
	req = httptest.NewRequest("POST", "/license-request", bytes.NewReader([]byte("{}")))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestApproveLicenseAssignsParkAndExpiry(t *testing.T) {
	db := setupTestDB(t)

	user := models.User{FirstName: "Amir", Email: "amir@example.com", Role: "park_guide", Status: "approved"}
	require.NoError(t, db.Create(&user).Error)

	park := models.Park{ParkName: "Niah National Park", Location: "Miri"}
	require.NoError(t, db.Create(&park).Error)

	guide := models.ParkGuide{
		UserID:              user.ID,
		CertificationStatus: models.CertStatusPending,
		RequestedParkID:     &park.ID,
	}
	require.NoError(t, db.Create(&guide).Error)

	app := fiber.New()
	app.Put("/approve/:id", func(c *fiber.Ctx) error {
		c.Locals("guideID", int(guide.ID))
		return ApproveLicense(c)
	})

	req := httptest.NewRequest("PUT", fmt.Sprintf("/approve/%d", guide.ID), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated models.ParkGuide
	require.NoError(t, db.Where("id = ?", guide.ID).First(&updated).Error)
	assert.Equal(t, models.CertStatusCertified, updated.CertificationStatus)
	require.NotNil(t, updated.AssignedParkID)
	assert.Equal(t, park.ID, *updated.AssignedParkID)
	assert.Nil(t, updated.RequestedParkID)

	require.NotNil(t, updated.LicenseExpiryDate)
	expected := time.Now().AddDate(1, 0, 0)
	assert.WithinDuration(t, expected, *updated.LicenseExpiryDate, time.Minute)

	// Approving again without a pending request conflicts
	resp, err = app.Test(httptest.NewRequest("PUT", fmt.Sprintf("/approve/%d", guide.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestRejectLicenseResetsStatus(t *testing.T) {
	db := setupTestDB(t)

	park := models.Park{ParkName: "Similajau National Park", Location: "Bintulu"}
	require.NoError(t, db.Create(&park).Error)

	guide := models.ParkGuide{
		UserID:              7,
		CertificationStatus: models.CertStatusPending,
		RequestedParkID:     &park.ID,
	}
	require.NoError(t, db.Create(&guide).Error)

	app := fiber.New()
	app.Put("/reject/:id", func(c *fiber.Ctx) error {
		c.Locals("guideID", int(guide.ID))
		return RejectLicense(c)
	})

	resp, err := app.Test(httptest.NewRequest("PUT", fmt.Sprintf("/reject/%d", guide.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated models.ParkGuide
	require.NoError(t, db.Where("id = ?", guide.ID).First(&updated).Error)
	assert.Equal(t, models.CertStatusNotApplicable, updated.CertificationStatus)
	assert.Nil(t, updated.RequestedParkID)
}
