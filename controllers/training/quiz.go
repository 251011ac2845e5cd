package trainingController

import (
	"parkguide/database"
	"parkguide/middleware"
	"parkguide/models/training"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// QuestionWithOptions carries a question and its options. Option
// correctness is never serialized here; scoring happens server-side.
type QuestionWithOptions struct {
	training.QuizQuestion
	Options []training.QuestionOption `json:"options"`
}

// GetModuleQuiz returns the quiz for a module with questions and options,
// for a guide who owns the module.
func GetModuleQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	moduleID := c.Locals("moduleID").(int)

	db := database.Database.Db

	// The quiz is gated behind module ownership
	var purchase training.ModulePurchase
	if err := db.Where("user_id = ? AND module_id = ? AND is_active = ? AND is_deleted = ?", userID, moduleID, true, false).First(&purchase).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have access to this module!", nil)
	}

	var quiz training.Quiz
	if err := db.Where("module_id = ? AND is_deleted = ?", moduleID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No quiz found for this module!", nil)
	}

	questions, err := loadQuestions(db, quiz.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quiz questions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully.", fiber.Map{
		"quiz":      quiz,
		"questions": questions,
	})
}

// GetQuiz returns one quiz with its questions (admin).
func GetQuiz(c *fiber.Ctx) error {
	quizID := c.Locals("quizID").(int)

	var quiz training.Quiz
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	questions, err := loadQuestions(database.Database.Db, quiz.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quiz questions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully.", fiber.Map{
		"quiz":      quiz,
		"questions": questions,
	})
}

func loadQuestions(db *gorm.DB, quizID uint) ([]QuestionWithOptions, error) {
	var questions []training.QuizQuestion
	if err := db.Where("quiz_id = ? AND is_deleted = ?", quizID, false).Order("order_index asc").Find(&questions).Error; err != nil {
		return nil, err
	}

	result := make([]QuestionWithOptions, len(questions))
	for i, q := range questions {
		var options []training.QuestionOption
		if err := db.Where("question_id = ? AND is_deleted = ?", q.ID, false).Order("order_index asc").Find(&options).Error; err != nil {
			return nil, err
		}
		result[i] = QuestionWithOptions{QuizQuestion: q, Options: options}
	}
	return result, nil
}

// CreateQuiz attaches a quiz to a module (admin). One quiz per module.
func CreateQuiz(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedQuiz").(*struct {
		ModuleID     uint    `json:"moduleId"`
		Title        string  `json:"title"`
		PassingScore float64 `json:"passingScore"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var module training.Module
	if err := db.Where("id = ? AND is_deleted = ?", reqData.ModuleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Training module not found!", nil)
	}

	var existing training.Quiz
	if err := db.Where("module_id = ? AND is_deleted = ?", reqData.ModuleID, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Module already has a quiz!", nil)
	}

	passingScore := reqData.PassingScore
	if passingScore == 0 {
		passingScore = 0.7
	}

	quiz := training.Quiz{
		ModuleID:     reqData.ModuleID,
		Title:        reqData.Title,
		PassingScore: passingScore,
	}

	if err := db.Create(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz created successfully.", quiz)
}

// CreateQuestion adds a question with its options to a quiz (admin).
func CreateQuestion(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedQuestion").(*struct {
		QuizID       uint   `json:"quizId"`
		QuestionText string `json:"questionText"`
		OrderIndex   int    `json:"orderIndex"`
		Options      []struct {
			OptionText string `json:"optionText"`
			IsCorrect  bool   `json:"isCorrect"`
		} `json:"options"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var quiz training.Quiz
	if err := db.Where("id = ? AND is_deleted = ?", reqData.QuizID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	question := training.QuizQuestion{
		QuizID:       reqData.QuizID,
		QuestionText: reqData.QuestionText,
		OrderIndex:   reqData.OrderIndex,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&question).Error; err != nil {
			return err
		}
		for i, opt := range reqData.Options {
			option := training.QuestionOption{
				QuestionID: question.ID,
				OptionText: opt.OptionText,
				IsCorrect:  opt.IsCorrect,
				OrderIndex: i,
			}
			if err := tx.Create(&option).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question created successfully.", question)
}

// DuplicateQuestion copies a question and its options within the same quiz
// (admin).
func DuplicateQuestion(c *fiber.Ctx) error {
	questionID := c.Locals("questionID").(int)

	db := database.Database.Db

	var question training.QuizQuestion
	if err := db.Where("id = ? AND is_deleted = ?", questionID, false).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	var options []training.QuestionOption
	db.Where("question_id = ? AND is_deleted = ?", question.ID, false).Order("order_index asc").Find(&options)

	copyQuestion := training.QuizQuestion{
		QuizID:       question.QuizID,
		QuestionText: question.QuestionText + " (copy)",
		OrderIndex:   question.OrderIndex + 1,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&copyQuestion).Error; err != nil {
			return err
		}
		for _, opt := range options {
			option := training.QuestionOption{
				QuestionID: copyQuestion.ID,
				OptionText: opt.OptionText,
				IsCorrect:  opt.IsCorrect,
				OrderIndex: opt.OrderIndex,
			}
			if err := tx.Create(&option).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to duplicate question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question duplicated successfully.", copyQuestion)
}

// DeleteQuestion soft deletes a question and its options (admin).
func DeleteQuestion(c *fiber.Ctx) error {
	questionID := c.Locals("questionID").(int)

	db := database.Database.Db

	var question training.QuizQuestion
	if err := db.Where("id = ? AND is_deleted = ?", questionID, false).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&question).Update("is_deleted", true).Error; err != nil {
			return err
		}
		return tx.Model(&training.QuestionOption{}).
			Where("question_id = ?", question.ID).
			Update("is_deleted", true).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question deleted successfully.", nil)
}
