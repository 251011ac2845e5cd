package models

import (
	"time"

	"gorm.io/gorm"
)

// CertificationStatus values for a park guide. A guide starts at
// "not applicable", moves to "pending" once they request an official
// license, and to "certified" when an admin approves the request.
const (
	CertStatusNotApplicable = "not applicable"
	CertStatusPending       = "pending"
	CertStatusCertified     = "certified"
	CertStatusExpired       = "expired"
)

type ParkGuide struct {
	gorm.Model
	UserID              uint       `json:"user_id" gorm:"index;not null"`
	AssignedParkID      *uint      `json:"assigned_park_id"`
	RequestedParkID     *uint      `json:"requested_park_id"`
	CertificationStatus string     `json:"certification_status" gorm:"default:'not applicable'"`
	LicenseExpiryDate   *time.Time `json:"license_expiry_date"`
	LicenseReminderSent bool       `json:"license_reminder_sent" gorm:"default:false"`
	IsDeleted           bool       `gorm:"default:false"`
}
