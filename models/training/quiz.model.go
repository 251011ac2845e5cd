package training

import "gorm.io/gorm"

// Quiz is the assessment attached to a module. PassingScore is the ratio
// of correct answers required to pass, 0.70 by default.
type Quiz struct {
	gorm.Model
	ModuleID     uint    `json:"module_id" gorm:"index;not null"`
	Title        string  `json:"title"`
	PassingScore float64 `json:"passing_score" gorm:"default:0.7"`
	IsDeleted    bool    `gorm:"default:false"`
}

type QuizQuestion struct {
	gorm.Model
	QuizID       uint   `json:"quiz_id" gorm:"index;not null"`
	QuestionText string `json:"question_text" gorm:"type:text"`
	OrderIndex   int    `json:"order_index" gorm:"default:0"`
	IsDeleted    bool   `gorm:"default:false"`
}

type QuestionOption struct {
	gorm.Model
	QuestionID uint   `json:"question_id" gorm:"index;not null"`
	OptionText string `json:"option_text"`
	IsCorrect  bool   `json:"-" gorm:"default:false"`
	OrderIndex int    `json:"order_index" gorm:"default:0"`
	IsDeleted  bool   `gorm:"default:false"`
}
