package trainingController

import (
	"log"
	"math"
	"parkguide/database"
	"parkguide/middleware"
	"parkguide/models"
	"parkguide/models/training"
	"parkguide/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const defaultPassingScore = 0.70

// QuizAnswer is one selected option in a scored submission.
type QuizAnswer struct {
	QuestionID       uint `json:"questionId"`
	SelectedOptionID uint `json:"selectedOptionId"`
}

// PassQuiz reports whether a score passes against a total at the given
// passing ratio. The boundary is inclusive: exactly the passing ratio
// passes.
func PassQuiz(score, totalQuestions int, passingScore float64) bool {
	if totalQuestions <= 0 {
		return false
	}
	return float64(score)/float64(totalQuestions) >= passingScore
}

// ScoreAnswers counts answers whose selected option is the stored correct
// option for that question.
func ScoreAnswers(db *gorm.DB, answers []QuizAnswer) (int, error) {
	score := 0
	for _, ans := range answers {
		var option training.QuestionOption
		err := db.Where("id = ? AND question_id = ? AND is_deleted = ?", ans.SelectedOptionID, ans.QuestionID, false).
			First(&option).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				continue
			}
			return 0, err
		}
		if option.IsCorrect {
			score++
		}
	}
	return score, nil
}

// SubmitQuizCompletion records a quiz submission. The web client sends the
// selected answers for server-side scoring; the mobile client sends a raw
// score and question count. On a pass the module is marked complete and a
// certification issued if none exists yet.
func SubmitQuizCompletion(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := new(struct {
		ModuleID       uint         `json:"moduleId"`
		Answers        []QuizAnswer `json:"answers"`
		Score          *int         `json:"score"`
		TotalQuestions *int         `json:"totalQuestions"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.ModuleID == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing required field: moduleId!", nil)
	}

	db := database.Database.Db

	var module training.Module
	if err := db.Where("id = ? AND is_deleted = ?", reqData.ModuleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Training module not found!", nil)
	}

	var purchase training.ModulePurchase
	if err := db.Where("user_id = ? AND module_id = ? AND is_active = ? AND is_deleted = ?", userID, reqData.ModuleID, true, false).First(&purchase).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have access to this module!", nil)
	}

	passingScore := defaultPassingScore
	var quiz training.Quiz
	if err := db.Where("module_id = ? AND is_deleted = ?", reqData.ModuleID, false).First(&quiz).Error; err == nil && quiz.PassingScore > 0 {
		passingScore = quiz.PassingScore
	}

	var score, totalQuestions int

	if len(reqData.Answers) > 0 {
		// Web path: score the selected answers server-side
		var count int64
		db.Model(&training.QuizQuestion{}).Where("quiz_id = ? AND is_deleted = ?", quiz.ID, false).Count(&count)
		totalQuestions = int(count)
		if totalQuestions == 0 {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No quiz found for this module!", nil)
		}

		var err error
		score, err = ScoreAnswers(db, reqData.Answers)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to score quiz answers!", nil)
		}
	} else {
		// Mobile path: raw score and total
		if reqData.Score == nil || reqData.TotalQuestions == nil || *reqData.TotalQuestions <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing required fields: score and totalQuestions are required!", nil)
		}
		score = *reqData.Score
		totalQuestions = *reqData.TotalQuestions
	}

	passed := PassQuiz(score, totalQuestions, passingScore)
	now := time.Now()

	completion := training.QuizCompletion{
		UserID:         userID,
		ModuleID:       reqData.ModuleID,
		Score:          score,
		TotalQuestions: totalQuestions,
		Passed:         passed,
		CompletionDate: now,
	}

	var issuedCert *training.Certification

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&completion).Error; err != nil {
			return err
		}

		if !passed {
			return nil
		}

		if err := tx.Model(&training.ModulePurchase{}).
			Where("user_id = ? AND module_id = ? AND is_deleted = ?", userID, reqData.ModuleID, false).
			Update("completion_percentage", 100).Error; err != nil {
			return err
		}

		var guide models.ParkGuide
		if err := tx.Where("user_id = ? AND is_deleted = ?", userID, false).First(&guide).Error; err != nil {
			// No guide row, nothing to certify
			return nil
		}

		if err := tx.Model(&training.GuideTrainingProgress{}).
			Where("guide_id = ? AND module_id = ? AND is_deleted = ?", guide.ID, reqData.ModuleID, false).
			Updates(map[string]interface{}{
				"status":                training.ProgressCompleted,
				"completion_percentage": 100,
				"completion_date":       now,
			}).Error; err != nil {
			return err
		}

		var existingCert training.Certification
		if err := tx.Where("guide_id = ? AND module_id = ? AND is_deleted = ?", guide.ID, reqData.ModuleID, false).First(&existingCert).Error; err == nil {
			log.Printf("Certification already exists for guide %d, module %d", guide.ID, reqData.ModuleID)
			return nil
		}

		cert := training.Certification{
			GuideID:           guide.ID,
			ModuleID:          reqData.ModuleID,
			CertificateNumber: utils.GenerateCertificateNumber(),
			IssuedDate:        now,
			ExpiryDate:        now.AddDate(1, 0, 0),
			Status:            "active",
		}
		if err := tx.Create(&cert).Error; err != nil {
			// Keep the completion even when the certificate insert fails
			log.Printf("Error creating certification: %v", err)
			return nil
		}
		issuedCert = &cert

		return nil
	})
	if err != nil {
		log.Printf("Error recording quiz completion: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record quiz completion!", nil)
	}

	if issuedCert != nil {
		go func(cert training.Certification, moduleName string) {
			var guide models.ParkGuide
			if err := database.Database.Db.Where("id = ?", cert.GuideID).First(&guide).Error; err != nil {
				return
			}
			var user models.User
			if err := database.Database.Db.Where("id = ?", guide.UserID).First(&user).Error; err != nil {
				return
			}
			if err := utils.SendCertificationEmail(user.Email, user.FirstName, moduleName, cert.CertificateNumber); err != nil {
				log.Printf("Error sending certification email to %s: %v", user.Email, err)
			}
		}(*issuedCert, module.ModuleName)
	}

	message := "You did not pass the quiz. Please try again."
	if passed {
		message = "Congratulations! You passed the quiz and earned a certificate."
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"passed":         passed,
		"score":          score,
		"totalQuestions": totalQuestions,
		"passPercentage": int(math.Round(float64(score) / float64(totalQuestions) * 100)),
	})
}

// QuizCompletionList lists the caller's quiz completions, newest first,
// optionally filtered by module.
func QuizCompletionList(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	query := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false)

	if moduleID := c.QueryInt("moduleId", 0); moduleID > 0 {
		query = query.Where("module_id = ?", moduleID)
	}

	var completions []training.QuizCompletion
	if err := query.Order("completion_date desc").Find(&completions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quiz completions!", nil)
	}

	type CompletionWithModule struct {
		training.QuizCompletion
		ModuleName string `json:"module_name"`
	}

	result := make([]CompletionWithModule, len(completions))
	for i, qc := range completions {
		var module training.Module
		database.Database.Db.Where("id = ?", qc.ModuleID).First(&module)
		result[i] = CompletionWithModule{QuizCompletion: qc, ModuleName: module.ModuleName}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz completions fetched successfully.", fiber.Map{
		"completions": result,
		"total":       len(result),
	})
}
