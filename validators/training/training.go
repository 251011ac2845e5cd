package trainingValidator

import (
	"parkguide/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func idParam(c *fiber.Ctx, name, localKey string) (bool, error) {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return false, middleware.JsonResponse(c, fiber.StatusBadRequest, false, name+" is required!", nil)
	}

	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return false, middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid "+name+"!", nil)
	}

	c.Locals(localKey, id)
	return true, nil
}

// ModuleID validates the :id path parameter on module routes.
func ModuleID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := idParam(c, "Module ID", "moduleID"); !ok {
			return err
		}
		return c.Next()
	}
}

// ProgressID validates the :id path parameter on progress routes.
func ProgressID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := idParam(c, "Progress ID", "progressID"); !ok {
			return err
		}
		return c.Next()
	}
}

// QuizID validates the :id path parameter on quiz routes.
func QuizID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := idParam(c, "Quiz ID", "quizID"); !ok {
			return err
		}
		return c.Next()
	}
}

// QuestionID validates the :id path parameter on question routes.
func QuestionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := idParam(c, "Question ID", "questionID"); !ok {
			return err
		}
		return c.Next()
	}
}

// CertID validates the :id path parameter on certification routes.
func CertID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := idParam(c, "Certification ID", "certID"); !ok {
			return err
		}
		return c.Next()
	}
}

// ModuleBody validates the module create/update body.
func ModuleBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ModuleName    string  `json:"moduleName"`
			Description   string  `json:"description"`
			Price         float64 `json:"price"`
			IsCompulsory  bool    `json:"isCompulsory"`
			VideoURL      string  `json:"videoUrl"`
			CourseContent string  `json:"courseContent"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.ModuleName)) < 3 {
			errors["moduleName"] = "Module name must be at least 3 characters long!"
		}
		if reqData.Price < 0 {
			errors["price"] = "Price cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

// QuizBody validates the quiz create body.
func QuizBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ModuleID     uint    `json:"moduleId"`
			Title        string  `json:"title"`
			PassingScore float64 `json:"passingScore"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ModuleID == 0 {
			errors["moduleId"] = "Module ID is required!"
		}
		if reqData.PassingScore < 0 || reqData.PassingScore > 1 {
			errors["passingScore"] = "Passing score must be between 0 and 1!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}

// QuestionBody validates the question create body.
func QuestionBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			QuizID       uint   `json:"quizId"`
			QuestionText string `json:"questionText"`
			OrderIndex   int    `json:"orderIndex"`
			Options      []struct {
				OptionText string `json:"optionText"`
				IsCorrect  bool   `json:"isCorrect"`
			} `json:"options"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.QuizID == 0 {
			errors["quizId"] = "Quiz ID is required!"
		}
		if len(strings.TrimSpace(reqData.QuestionText)) == 0 {
			errors["questionText"] = "Question text is required!"
		}
		if len(reqData.Options) < 2 {
			errors["options"] = "At least two options are required!"
		} else {
			correct := 0
			for _, opt := range reqData.Options {
				if opt.IsCorrect {
					correct++
				}
			}
			if correct != 1 {
				errors["options"] = "Exactly one option must be marked correct!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuestion", reqData)
		return c.Next()
	}
}

// ProgressBody validates the progress update body.
func ProgressBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CompletionPercentage float64 `json:"completionPercentage"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CompletionPercentage < 0 || reqData.CompletionPercentage > 100 {
			errors["completionPercentage"] = "Completion percentage must be between 0 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}
