package models

import (
	"time"

	"gorm.io/gorm"
)

// VisitorFeedback holds one visitor's rating of a guided tour across the
// five scoring axes shown on the guide's radar chart.
type VisitorFeedback struct {
	gorm.Model
	VisitorID          uint      `json:"visitor_id" gorm:"index"`
	GuideID            uint      `json:"guide_id" gorm:"index;not null"`
	LanguageRating     int       `json:"language_rating"`
	KnowledgeRating    int       `json:"knowledge_rating"`
	OrganizationRating int       `json:"organization_rating"`
	EngagementRating   int       `json:"engagement_rating"`
	SafetyRating       int       `json:"safety_rating"`
	Comment            string    `json:"comment" gorm:"type:text"`
	SubmittedAt        time.Time `json:"submitted_at"`
	IsDeleted          bool      `gorm:"default:false"`
}
