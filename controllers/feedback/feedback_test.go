package feedbackController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"parkguide/database"
	"parkguide/models"
	feedbackValidator "parkguide/validators/feedback"
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

func addFeedback(t *testing.T, db *gorm.DB, guideID uint, lang, know, org, eng, safety int, comment string) {
	t.Helper()
	require.NoError(t, db.Create(&models.VisitorFeedback{
		GuideID:            guideID,
		LanguageRating:     lang,
		KnowledgeRating:    know,
		OrganizationRating: org,
		EngagementRating:   eng,
		SafetyRating:       safety,
		Comment:            comment,
		SubmittedAt:        time.Now(),
	}).Error)
}

func TestComputeGuideRatings(t *testing.T) {
	db := setupTestDB(t)

	guide := models.ParkGuide{UserID: 1, CertificationStatus: models.CertStatusCertified}
	require.NoError(t, db.Create(&guide).Error)

	addFeedback(t, db, guide.ID, 5, 4, 3, 5, 4, "Great tour")
	addFeedback(t, db, guide.ID, 3, 4, 5, 3, 4, "")

	summary, err := ComputeGuideRatings(db, guide.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(2), summary.TotalFeedback)
	assert.InDelta(t, 4.0, summary.LanguageRating, 0.001)
	assert.InDelta(t, 4.0, summary.KnowledgeRating, 0.001)
	assert.InDelta(t, 4.0, summary.OrganizationRating, 0.001)
	assert.InDelta(t, 4.0, summary.EngagementRating, 0.001)
	assert.InDelta(t, 4.0, summary.SafetyRating, 0.001)
	assert.InDelta(t, 4.0, summary.OverallRating, 0.001)
}

func TestComputeGuideRatingsPerAxis(t *testing.T) {
	db := setupTestDB(t)

	guide := models.ParkGuide{UserID: 2, CertificationStatus: models.CertStatusCertified}
	require.NoError(t, db.Create(&guide).Error)

	addFeedback(t, db, guide.ID, 5, 1, 2, 3, 4, "")
	addFeedback(t, db, guide.ID, 4, 3, 2, 1, 5, "")

	summary, err := ComputeGuideRatings(db, guide.ID)
	require.NoError(t, err)

	assert.InDelta(t, 4.5, summary.LanguageRating, 0.001)
	assert.InDelta(t, 2.0, summary.KnowledgeRating, 0.001)
	assert.InDelta(t, 2.0, summary.OrganizationRating, 0.001)
	assert.InDelta(t, 2.0, summary.EngagementRating, 0.001)
	assert.InDelta(t, 4.5, summary.SafetyRating, 0.001)
	assert.InDelta(t, 3.0, summary.OverallRating, 0.001)
}

func TestComputeGuideRatingsNoFeedback(t *testing.T) {
	db := setupTestDB(t)

	guide := models.ParkGuide{UserID: 3, CertificationStatus: models.CertStatusNotApplicable}
	require.NoError(t, db.Create(&guide).Error)

	summary, err := ComputeGuideRatings(db, guide.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(0), summary.TotalFeedback)
	assert.Zero(t, summary.OverallRating)
}

func TestComputeGuideRatingsSkipsDeleted(t *testing.T) {
	db := setupTestDB(t)

	guide := models.ParkGuide{UserID: 4, CertificationStatus: models.CertStatusCertified}
	require.NoError(t, db.Create(&guide).Error)

	addFeedback(t, db, guide.ID, 5, 5, 5, 5, 5, "")

	deleted := models.VisitorFeedback{
		GuideID: guide.ID, LanguageRating: 1, KnowledgeRating: 1, OrganizationRating: 1,
		EngagementRating: 1, SafetyRating: 1, SubmittedAt: time.Now(), IsDeleted: true,
	}
	require.NoError(t, db.Create(&deleted).Error)

	summary, err := ComputeGuideRatings(db, guide.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(1), summary.TotalFeedback)
	assert.InDelta(t, 5.0, summary.OverallRating, 0.001)
}

func feedbackApp() *fiber.App {
	app := fiber.New()
	app.Post("/feedback", feedbackValidator.Feedback(), SubmitFeedback)
	app.Get("/feedback/:id", feedbackValidator.FeedbackID(), GetFeedback)
	app.Put("/feedback/:id", feedbackValidator.FeedbackID(), feedbackValidator.FeedbackUpdate(), UpdateFeedback)
	app.Delete("/feedback/:id", feedbackValidator.FeedbackID(), DeleteFeedback)
	return app
}

func jsonRequest(t *testing.T, app *fiber.App, method, path string, payload interface{}) int {
	t.Helper()
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		require.NoError(t, err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestFeedbackCrudRoundTrip(t *testing.T) {
	db := setupTestDB(t)

	guide := models.ParkGuide{UserID: 9, CertificationStatus: models.CertStatusCertified}
	require.NoError(t, db.Create(&guide).Error)

	app := feedbackApp()

	submission := fiber.Map{
		"guideId":            guide.ID,
		"languageRating":     5,
		"knowledgeRating":    4,
		"organizationRating": 4,
		"engagementRating":   5,
		"safetyRating":       5,
		"comment":            "Very informative tour",
	}
	assert.Equal(t, fiber.StatusCreated, jsonRequest(t, app, "POST", "/feedback", submission))

	var created models.VisitorFeedback
	require.NoError(t, db.Where("guide_id = ?", guide.ID).First(&created).Error)
	path := fmt.Sprintf("/feedback/%d", created.ID)

	edit := fiber.Map{
		"guideId":            guide.ID,
		"languageRating":     5,
		"knowledgeRating":    4,
		"organizationRating": 4,
		"engagementRating":   5,
		"safetyRating":       5,
		"comment":            "edited",
	}

	assert.Equal(t, fiber.StatusOK, jsonRequest(t, app, "GET", path, nil))
	assert.Equal(t, fiber.StatusOK, jsonRequest(t, app, "PUT", path, edit))

	var updated models.VisitorFeedback
	require.NoError(t, db.Where("id = ?", created.ID).First(&updated).Error)
	assert.Equal(t, "edited", updated.Comment)

	assert.Equal(t, fiber.StatusOK, jsonRequest(t, app, "DELETE", path, nil))

	// Deleted entries answer 404 on every verb
	assert.Equal(t, fiber.StatusNotFound, jsonRequest(t, app, "GET", path, nil))
	assert.Equal(t, fiber.StatusNotFound, jsonRequest(t, app, "PUT", path, edit))
	assert.Equal(t, fiber.StatusNotFound, jsonRequest(t, app, "DELETE", path, nil))
}

func TestUpdateFeedbackFullRow(t *testing.T) {
	db := setupTestDB(t)

	guide := models.ParkGuide{UserID: 11, CertificationStatus: models.CertStatusCertified}
	otherGuide := models.ParkGuide{UserID: 12, CertificationStatus: models.CertStatusCertified}
	require.NoError(t, db.Create(&guide).Error)
	require.NoError(t, db.Create(&otherGuide).Error)

	feedback := models.VisitorFeedback{
		VisitorID:          7,
		GuideID:            guide.ID,
		LanguageRating:     2,
		KnowledgeRating:    2,
		OrganizationRating: 2,
		EngagementRating:   2,
		SafetyRating:       2,
		Comment:            "original",
		SubmittedAt:        time.Now(),
	}
	require.NoError(t, db.Create(&feedback).Error)

	app := feedbackApp()
	path := fmt.Sprintf("/feedback/%d", feedback.ID)

	assert.Equal(t, fiber.StatusOK, jsonRequest(t, app, "PUT", path, fiber.Map{
		"visitorId":          8,
		"guideId":            otherGuide.ID,
		"languageRating":     5,
		"knowledgeRating":    4,
		"organizationRating": 3,
		"engagementRating":   5,
		"safetyRating":       4,
		"comment":            "corrected",
	}))

	var updated models.VisitorFeedback
	require.NoError(t, db.First(&updated, feedback.ID).Error)
	assert.Equal(t, uint(8), updated.VisitorID)
	assert.Equal(t, otherGuide.ID, updated.GuideID)
	assert.Equal(t, 5, updated.LanguageRating)
	assert.Equal(t, 4, updated.KnowledgeRating)
	assert.Equal(t, 3, updated.OrganizationRating)
	assert.Equal(t, 5, updated.EngagementRating)
	assert.Equal(t, 4, updated.SafetyRating)
	assert.Equal(t, "corrected", updated.Comment)

	// Ratings stay mandatory on edit
	assert.Equal(t, fiber.StatusUnprocessableEntity, jsonRequest(t, app, "PUT", path, fiber.Map{
		"guideId": guide.ID,
		"comment": "no ratings",
	}))

	// The target guide must exist
	assert.Equal(t, fiber.StatusNotFound, jsonRequest(t, app, "PUT", path, fiber.Map{
		"visitorId":          8,
		"guideId":            99999,
		"languageRating":     5,
		"knowledgeRating":    4,
		"organizationRating": 3,
		"engagementRating":   5,
		"safetyRating":       4,
	}))
}

func TestSubmitFeedbackValidation(t *testing.T) {
	db := setupTestDB(t)

	guide := models.ParkGuide{UserID: 10, CertificationStatus: models.CertStatusCertified}
	require.NoError(t, db.Create(&guide).Error)

	app := feedbackApp()

	// Out-of-range rating
	assert.Equal(t, fiber.StatusUnprocessableEntity, jsonRequest(t, app, "POST", "/feedback", fiber.Map{
		"guideId":            guide.ID,
		"languageRating":     6,
		"knowledgeRating":    4,
		"organizationRating": 4,
		"engagementRating":   5,
		"safetyRating":       5,
	}))

	// Unknown guide
	assert.Equal(t, fiber.StatusNotFound, jsonRequest(t, app, "POST", "/feedback", fiber.Map{
		"guideId":            99999,
		"languageRating":     5,
		"knowledgeRating":    4,
		"organizationRating": 4,
		"engagementRating":   5,
		"safetyRating":       5,
	}))
}
