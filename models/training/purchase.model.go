package training

import "gorm.io/gorm"

// ModulePurchase records a user's ownership of a module. A purchase stays
// inactive while its payment transaction is pending admin approval; free
// enrollments are created active right away.
type ModulePurchase struct {
	gorm.Model
	UserID               uint    `json:"user_id" gorm:"index;not null"`
	ModuleID             uint    `json:"module_id" gorm:"index;not null"`
	PaymentID            uint    `json:"payment_id" gorm:"index"`
	Status               string  `json:"status" gorm:"default:'pending'"` // pending, active
	IsActive             bool    `json:"is_active" gorm:"default:false"`
	CompletionPercentage float64 `json:"completion_percentage" gorm:"default:0"`
	IsDeleted            bool    `gorm:"default:false"`
}
