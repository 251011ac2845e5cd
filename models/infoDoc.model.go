package models

import "gorm.io/gorm"

type InfoDoc struct {
	gorm.Model
	Title     string `json:"title" gorm:"not null"`
	Category  string `json:"category" gorm:"default:'GENERAL'"`
	Content   string `json:"content" gorm:"type:text"`
	FileURL   string `json:"file_url"`
	IsDeleted bool   `gorm:"default:false"`
}
