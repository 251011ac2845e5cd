package models

import (
	"time"

	"gorm.io/gorm"
)

// SensorReading is one measurement reported by a park sensor.
type SensorReading struct {
	gorm.Model
	SensorID    string    `json:"sensor_id" gorm:"index;not null"`
	ParkID      uint      `json:"park_id" gorm:"index"`
	ReadingType string    `json:"reading_type"` // temperature, humidity, motion
	Value       float64   `json:"value"`
	RecordedAt  time.Time `json:"recorded_at"`
	IsDeleted   bool      `gorm:"default:false"`
}

// AlertThreshold defines the acceptable range for a reading type in a park.
type AlertThreshold struct {
	gorm.Model
	ParkID      uint    `json:"park_id" gorm:"index"`
	ReadingType string  `json:"reading_type" gorm:"not null"`
	MinValue    float64 `json:"min_value"`
	MaxValue    float64 `json:"max_value"`
	IsDeleted   bool    `gorm:"default:false"`
}
