package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusApproved = "approved"
	PaymentStatusRejected = "rejected"
)

type PaymentTransaction struct {
	gorm.Model
	UserID          uint      `json:"user_id" gorm:"index;not null"`
	ModuleID        *uint     `json:"module_id" gorm:"index"`
	AmountPaid      float64   `json:"amount_paid" gorm:"default:0"`
	PaymentPurpose  string    `json:"payment_purpose"`
	PaymentMethod   string    `json:"payment_method"` // card, debit, ewallet
	PaymentStatus   string    `json:"payment_status" gorm:"default:'pending'"`
	ReceiptImage    string    `json:"receipt_image" gorm:"default:''"`
	TransactionDate time.Time `json:"transaction_date"`
	IsDeleted       bool      `gorm:"default:false"`
}
