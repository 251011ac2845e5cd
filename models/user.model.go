package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	FirstName           string     `json:"first_name" gorm:"default:''"`
	LastName            string     `json:"last_name" gorm:"default:''"`
	Email               string     `json:"email" gorm:"unique;not null"`
	Password            string     `json:"-" gorm:"not null"`
	Role                string     `json:"role" gorm:"default:'visitor'"`    // visitor, park_guide, admin
	Status              string     `json:"status" gorm:"default:'approved'"` // pending, approved, rejected
	LastLogin           time.Time  `json:"last_login" gorm:"default:NULL"`
	FailedLoginAttempts int        `json:"failed_login_attempts" gorm:"default:0"`
	LastFailedLogin     *time.Time `json:"last_failed_login"`
	LockedUntil         *time.Time `json:"locked_until"`
	IsDeleted           bool       `gorm:"default:false"`
}
