package training

import "gorm.io/gorm"

// Module is one training module in the catalog. Compulsory modules must
// all be owned before a guide may buy optional ones, and two compulsory
// certifications are required before a license request.
type Module struct {
	gorm.Model
	ModuleName    string  `json:"module_name" gorm:"not null"`
	Description   string  `json:"description" gorm:"type:text"`
	Price         float64 `json:"price" gorm:"default:0"`
	IsCompulsory  bool    `json:"is_compulsory" gorm:"default:false"`
	VideoURL      string  `json:"video_url"`
	CourseContent string  `json:"course_content" gorm:"type:text"`
	IsDeleted     bool    `gorm:"default:false"`
}
