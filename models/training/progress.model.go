package training

import (
	"time"

	"gorm.io/gorm"
)

const (
	ProgressInProgress = "in progress"
	ProgressCompleted  = "completed"
)

// GuideTrainingProgress tracks a guide's path through one module.
type GuideTrainingProgress struct {
	gorm.Model
	GuideID              uint       `json:"guide_id" gorm:"index;not null"`
	ModuleID             uint       `json:"module_id" gorm:"index;not null"`
	Status               string     `json:"status" gorm:"default:'in progress'"`
	CompletionPercentage float64    `json:"completion_percentage" gorm:"default:0"`
	StartDate            time.Time  `json:"start_date"`
	CompletionDate       *time.Time `json:"completion_date"`
	IsDeleted            bool       `gorm:"default:false"`
}
