package training

import (
	"time"

	"gorm.io/gorm"
)

// QuizCompletion is the immutable record of one quiz submission.
type QuizCompletion struct {
	gorm.Model
	UserID         uint      `json:"user_id" gorm:"index;not null"`
	ModuleID       uint      `json:"module_id" gorm:"index;not null"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	Passed         bool      `json:"passed" gorm:"default:false"`
	CompletionDate time.Time `json:"completion_date"`
	IsDeleted      bool      `gorm:"default:false"`
}
