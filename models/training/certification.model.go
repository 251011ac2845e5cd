package training

import (
	"time"

	"gorm.io/gorm"
)

// Certification is issued when a guide passes a module's quiz. Valid for
// one year from the issue date.
type Certification struct {
	gorm.Model
	GuideID           uint      `json:"guide_id" gorm:"index;not null"`
	ModuleID          uint      `json:"module_id" gorm:"index;not null"`
	CertificateNumber string    `json:"certificate_number" gorm:"unique"`
	IssuedDate        time.Time `json:"issued_date"`
	ExpiryDate        time.Time `json:"expiry_date"`
	Status            string    `json:"status" gorm:"default:'active'"` // active, expired
	ReminderSent      bool      `json:"reminder_sent" gorm:"default:false"`
	IsDeleted         bool      `gorm:"default:false"`
}
