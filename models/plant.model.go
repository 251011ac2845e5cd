package models

import "gorm.io/gorm"

type Plant struct {
	gorm.Model
	CommonName     string `json:"common_name" gorm:"not null"`
	ScientificName string `json:"scientific_name"`
	Description    string `json:"description" gorm:"type:text"`
	ImageURL       string `json:"image_url"`
	ParkID         *uint  `json:"park_id"`
	IsDeleted      bool   `gorm:"default:false"`
}

// PlantInfo carries the extended guidebook entry for a plant.
type PlantInfo struct {
	gorm.Model
	PlantID      uint   `json:"plant_id" gorm:"index;not null"`
	Habitat      string `json:"habitat"`
	Uses         string `json:"uses" gorm:"type:text"`
	Conservation string `json:"conservation"`
	IsDeleted    bool   `gorm:"default:false"`
}
