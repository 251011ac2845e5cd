package models

import "gorm.io/gorm"

type Park struct {
	gorm.Model
	ParkName    string `json:"park_name" gorm:"not null"`
	Location    string `json:"location"`
	Description string `json:"description" gorm:"type:text"`
	IsDeleted   bool   `gorm:"default:false"`
}
