package trainingRoutes

import (
	trainingController "parkguide/controllers/training"
	"parkguide/middleware"
	guideValidator "parkguide/validators/guide"
	trainingValidator "parkguide/validators/training"

	"github.com/gofiber/fiber/v2"
)

func SetupTrainingRoutes(app *fiber.App) {
	modules := app.Group("/api/v1/modules", middleware.JWTMiddleware)

	modules.Get("/", trainingController.ModuleList)
	modules.Get("/available", middleware.RequireRole("park_guide"), trainingController.AvailableModules)
	modules.Post("/", middleware.RequireRole("admin"), trainingValidator.ModuleBody(), trainingController.CreateModule)
	modules.Get("/:id", trainingValidator.ModuleID(), trainingController.GetModule)
	modules.Put("/:id", middleware.RequireRole("admin"), trainingValidator.ModuleID(), trainingValidator.ModuleBody(), trainingController.UpdateModule)
	modules.Delete("/:id", middleware.RequireRole("admin"), trainingValidator.ModuleID(), trainingController.DeleteModule)
	modules.Get("/:id/access", middleware.RequireRole("park_guide"), trainingValidator.ModuleID(), trainingController.ModuleAccess)
	modules.Get("/:id/purchase-status", middleware.RequireRole("park_guide"), trainingValidator.ModuleID(), trainingController.PurchaseStatus)
	modules.Post("/:id/enroll", middleware.RequireRole("park_guide"), trainingValidator.ModuleID(), trainingController.EnrollFreeModule)
	modules.Get("/:id/quiz", middleware.RequireRole("park_guide", "admin"), trainingValidator.ModuleID(), trainingController.GetModuleQuiz)

	quizzes := app.Group("/api/v1/quizzes", middleware.JWTMiddleware)

	quizzes.Post("/", middleware.RequireRole("admin"), trainingValidator.QuizBody(), trainingController.CreateQuiz)
	quizzes.Get("/:id", middleware.RequireRole("admin"), trainingValidator.QuizID(), trainingController.GetQuiz)

	questions := app.Group("/api/v1/questions", middleware.JWTMiddleware, middleware.RequireRole("admin"))

	questions.Post("/", trainingValidator.QuestionBody(), trainingController.CreateQuestion)
	questions.Post("/:id/duplicate", trainingValidator.QuestionID(), trainingController.DuplicateQuestion)
	questions.Delete("/:id", trainingValidator.QuestionID(), trainingController.DeleteQuestion)

	completions := app.Group("/api/v1/quiz-completions", middleware.JWTMiddleware, middleware.RequireRole("park_guide"))

	completions.Post("/", trainingController.SubmitQuizCompletion)
	completions.Get("/", trainingController.QuizCompletionList)

	progress := app.Group("/api/v1/progress", middleware.JWTMiddleware)

	progress.Get("/", middleware.RequireRole("admin"), trainingController.ProgressList)
	progress.Get("/me", middleware.RequireRole("park_guide"), trainingController.ProgressSelf)
	progress.Put("/:id", middleware.RequireRole("park_guide", "admin"), trainingValidator.ProgressID(), trainingValidator.ProgressBody(), trainingController.UpdateProgress)
	progress.Delete("/:id", middleware.RequireRole("admin"), trainingValidator.ProgressID(), trainingController.DeleteProgress)

	certs := app.Group("/api/v1/certifications", middleware.JWTMiddleware)

	certs.Get("/", middleware.RequireRole("admin"), trainingController.CertificationList)
	certs.Get("/me", middleware.RequireRole("park_guide"), trainingController.CertificationsSelf)
	certs.Get("/guide/:id", middleware.RequireRole("admin"), guideValidator.GuideID(), trainingController.GuideCertifications)
	certs.Delete("/:id", middleware.RequireRole("admin"), trainingValidator.CertID(), trainingController.DeleteCertification)
}
